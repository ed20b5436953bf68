package render

import (
	"fmt"
	"io"

	"github.com/glamorous-css/website/pkg/vdom"
)

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is the root VNode for the page content
	Body *vdom.VNode

	// Title is the page title
	Title string

	// Meta contains meta tags for the page
	Meta []MetaTag

	// Scripts contains script tags appended to the end of the body
	Scripts []ScriptTag

	// Styles contains inline CSS blocks placed in the head
	Styles []string

	// Lang is the language attribute for the html element.
	// Defaults to "en".
	Lang string
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name    string
	Content string
}

// ScriptTag represents a script element.
type ScriptTag struct {
	Src    string
	Defer  bool
	Inline string
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	head := vdom.Head(
		vdom.Meta(vdom.Charset("utf-8")),
		vdom.Meta(vdom.Name("viewport"), vdom.Content("width=device-width, initial-scale=1")),
		vdom.Range(page.Meta, func(m MetaTag, _ int) *vdom.VNode {
			return vdom.Meta(vdom.Name(m.Name), vdom.Content(m.Content))
		}),
		vdom.Title(page.Title),
		vdom.Range(page.Styles, func(css string, _ int) *vdom.VNode {
			return vdom.StyleEl(vdom.Text(css))
		}),
	)

	body := vdom.Body(
		page.Body,
		vdom.Range(page.Scripts, func(s ScriptTag, _ int) *vdom.VNode {
			if s.Inline != "" {
				return vdom.Script(vdom.Text(s.Inline))
			}
			var d vdom.Attr
			if s.Defer {
				d = vdom.Defer()
			}
			return vdom.Script(vdom.Src(s.Src), d)
		}),
	)

	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	if err := r.RenderToWriter(w, vdom.Html(vdom.Lang(lang), head, body)); err != nil {
		return fmt.Errorf("render page %q: %w", page.Title, err)
	}
	return nil
}
