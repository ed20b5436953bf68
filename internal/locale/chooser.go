package locale

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/glamorous-css/website/internal/theme"
	"github.com/glamorous-css/website/pkg/render"
	"github.com/glamorous-css/website/pkg/vdom"
)

// Chooser lists the supported languages as links to the current page.
type Chooser struct {
	Pathname  string
	Current   language.Tag
	Languages []language.Tag
	Top       bool

	// Base, when set, returns the path prefix of each language's pages and
	// the links point there. Otherwise they select the language with the
	// lang query parameter.
	Base func(language.Tag) string
}

// Option is one entry of the chooser.
type Option struct {
	Tag    language.Tag
	Label  string
	Href   string
	Active bool
}

// Options returns the entries in display order. Labels are each language's
// own name for itself.
func (c Chooser) Options() []Option {
	opts := make([]Option, 0, len(c.Languages))
	for _, tag := range c.Languages {
		label := display.Self.Name(tag)
		if label == "" {
			label = tag.String()
		}
		opts = append(opts, Option{
			Tag:    tag,
			Label:  label,
			Href:   c.href(tag),
			Active: tag == c.Current,
		})
	}
	return opts
}

func (c Chooser) href(tag language.Tag) string {
	if c.Base == nil {
		return URL(c.Pathname, tag)
	}
	return Prefixed(c.Base(tag), c.Pathname)
}

// Render implements vdom.Component.
func (c Chooser) Render() *vdom.VNode {
	return vdom.Ul(
		vdom.Class("LocaleChooser"),
		vdom.AriaLabel("Language"),
		vdom.Range(c.Options(), func(o Option, _ int) *vdom.VNode {
			var current vdom.Attr
			if o.Active {
				current = vdom.AriaCurrent("true")
			}
			return vdom.Li(vdom.A(
				vdom.Href(o.Href),
				vdom.Hreflang(o.Tag.String()),
				vdom.Lang(o.Tag.String()),
				current,
				o.Label,
			))
		}),
	)
}

// Sheet returns the chooser rules. The list runs in a row in top mode and
// in a column otherwise, on large viewports only.
func (c Chooser) Sheet(t theme.Theme) render.Sheet {
	dir := "column"
	if c.Top {
		dir = "row"
	}
	var sheet render.Sheet
	sheet = sheet.Add("", ".LocaleChooser", vdom.Style{
		{Prop: "list-style", Value: "none"},
		{Prop: "display", Value: "flex"},
		{Prop: "justify-content", Value: "center"},
		{Prop: "padding", Value: "0"},
		{Prop: "margin", Value: "0"},
		{Prop: "font-size", Value: "0.75em"},
	})
	sheet = sheet.Add("", ".LocaleChooser a[aria-current]", vdom.Style{
		{Prop: "font-weight", Value: "bold"},
	})
	sheet = sheet.Add("", ".LocaleChooser li", vdom.Style{
		{Prop: "padding", Value: "0 4px"},
	})
	sheet = sheet.Add(t.MediaQueries.LargeUp, ".LocaleChooser", vdom.Style{
		{Prop: "flex-direction", Value: dir},
	})
	return sheet
}
