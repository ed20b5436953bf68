package nav

import (
	"github.com/glamorous-css/website/internal/assets"
	"github.com/glamorous-css/website/internal/theme"
	"github.com/glamorous-css/website/pkg/render"
	"github.com/glamorous-css/website/pkg/vdom"
)

// Class names of the styled elements.
const (
	ClassBar       = "Navbar"
	ClassToggle    = "NavToggle"
	ClassSeparator = "NavSeparator"
	ClassList      = "NavList"
	ClassItem      = "NavItem"
	ClassHome      = "NavHome"
	ClassSearch    = "algolia_searchbox"
	ClassHidden    = "Hidden"
)

// Input is everything the resolver depends on.
type Input struct {
	Top   bool
	Open  bool
	Theme theme.Theme
}

// Pseudo is a declaration block for a pseudo-class or pseudo-element,
// e.g. ":focus" or "::before".
type Pseudo struct {
	Selector string
	Style    vdom.Style
}

// Rule is the styling of one element: declarations that always apply,
// pseudo-class blocks, and one override block per viewport class.
type Rule struct {
	Base    vdom.Style
	Pseudo  []Pseudo
	Large   vdom.Style
	Compact vdom.Style
}

// At returns the declarations in effect at viewport v, ignoring pseudo
// blocks.
func (r Rule) At(v theme.Viewport) vdom.Style {
	if v == theme.Large {
		return r.Base.Merge(r.Large)
	}
	return r.Base.Merge(r.Compact)
}

// Styles holds the rule of every element of the bar.
type Styles struct {
	Bar       Rule
	Toggle    Rule
	Separator Rule
	List      Rule
	Item      Rule
	Home      Rule
	Search    Rule
	Hidden    Rule
}

// Computed is the effective style of every element at one viewport.
type Computed struct {
	Bar       vdom.Style
	Toggle    vdom.Style
	Separator vdom.Style
	List      vdom.Style
	Item      vdom.Style
	Search    vdom.Style
}

// At resolves the styles for one viewport class.
func (s Styles) At(v theme.Viewport) Computed {
	return Computed{
		Bar:       s.Bar.At(v),
		Toggle:    s.Toggle.At(v),
		Separator: s.Separator.At(v),
		List:      s.List.At(v),
		Item:      s.Item.At(v),
		Search:    s.Search.At(v),
	}
}

// decls builds a style from prop/value pairs, dropping empty values.
// An empty value means "not set at this layer".
func decls(pairs ...string) vdom.Style {
	var s vdom.Style
	for i := 0; i+1 < len(pairs); i += 2 {
		s = s.Set(pairs[i], pairs[i+1])
	}
	return s
}

// pick returns a when cond holds and b otherwise.
func pick(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}

// Resolve maps the bar mode, open state and theme to element styles. It is
// pure: equal inputs give equal outputs.
func Resolve(in Input) Styles {
	top, open := in.Top, in.Open
	colors := in.Theme.Colors

	return Styles{
		Bar: Rule{
			Base: decls(
				"width", "100%",
				"margin", "0",
			),
			Large: decls(
				"display", pick(top, "flex", ""),
				"justify-content", pick(top, "flex-end", "flex-start"),
				"flex-direction", pick(top, "row", "column"),
				"flex", pick(top, "", "none"),
				"width", pick(top, "", "300px"),
				"align-items", "center",
				"padding-top", "0.5rem",
			),
			Compact: decls(
				"margin-top", "0",
				"justify-content", "flex-end",
				"flex-direction", "column",
			),
		},

		Toggle: Rule{
			Base: decls(
				"fill", colors.PrimaryMed,
				"background-color", colors.White,
				"display", "flex",
				"justify-content", "flex-end",
				"width", "100%",
				"padding-top", "0.25rem",
				"padding-bottom", "0.25rem",
				"padding-right", "0.25rem",
				"cursor", "pointer",
			),
			Large: decls("display", "none"),
		},

		Separator: Rule{
			Base: decls(
				"height", "1px",
				"margin", "0",
				"border", "0",
				"background-color", colors.PrimaryMed,
			),
			Large: decls("display", "none"),
		},

		List: Rule{
			Base: decls(
				"list-style", "none",
				"display", "block",
				"font-size", "1.25em",
				"margin", "0 auto",
				"height", "auto",
				"overflow", "visible",
				"background-color", colors.White,
				"padding", "0",
			),
			Large: decls(
				"display", "flex",
				"justify-content", pick(top, "center", "flex-start"),
				"flex-direction", pick(top, "row", "column"),
				"width", pick(top, "auto", ""),
				"max-height", pick(top, "4rem", ""),
				"background-color", "inherit",
				"opacity", "1",
				"visibility", "visible",
			),
			Compact: decls(
				"display", "block",
				"text-align", "center",
				"width", "100%",
				"padding", pick(open, "1rem 0", "0"),
				"max-height", pick(open, "100%", "0"),
				"opacity", pick(open, "1", "0"),
				"visibility", pick(open, "visible", "hidden"),
				"overflow", pick(open, "visible", "hidden"),
				"justify-content", "center",
				"flex-direction", "row",
			),
		},

		Item: Rule{
			Base: decls(
				"padding-left", "10px",
				"padding-right", "10px",
				"padding-bottom", "4px",
			),
			Pseudo: []Pseudo{{Selector: "::before", Style: decls("display", "none")}},
		},

		Home: Rule{
			Base: decls("text-align", "center"),
		},

		Search: Rule{
			Base: decls(
				"width", "130px",
				"border-radius", "50px",
				"padding-top", "4px",
				"padding-bottom", "4px",
				"padding-left", "30px",
				"padding-right", "10px",
				"font-family", "inherit",
				"font-size", "0.75em",
				"line-height", "12px",
				"background-image", `url("`+assets.SearchIconURI()+`")`,
				"background-repeat", "no-repeat",
				"background-position", "5px center",
				"background-size", "auto 80%",
				"border", "1px solid "+colors.PrimaryMed,
				"transition", "width 0.2s",
				"transition-timing-function", "cubic-bezier(0.075, 0.485, 0.605, 1.085)",
				"color", colors.DarkGray,
			),
			Pseudo: []Pseudo{
				{Selector: ":focus", Style: decls(
					"width", "220px",
					"outline", "none",
					"border-color", colors.PrimaryMed,
				)},
				{Selector: ":valid", Style: decls(
					"max-width", "220px",
					"min-width", "100px",
				)},
			},
		},

		Hidden: Rule{
			Base: decls(
				"position", "absolute",
				"left", "-10000px",
				"top", "auto",
				"width", "1px",
				"height", "1px",
				"overflow", "hidden",
			),
		},
	}
}

// Sheet renders the styles as CSS rules keyed by the element class names.
func (s Styles) Sheet(t theme.Theme) render.Sheet {
	var sheet render.Sheet
	for _, el := range s.elements() {
		sheet = el.rule.blocks(sheet, t, el.selector)
	}
	return sheet
}

// OpenListSheet returns the open-state list rules scoped under an open bar,
// for pages served without a live session where the client flips the
// data-open attribute itself.
func OpenListSheet(in Input) render.Sheet {
	in.Open = true
	return Resolve(in).List.blocks(nil, in.Theme, "."+ClassBar+"[data-open] ."+ClassList)
}

type element struct {
	selector string
	rule     Rule
}

// elements lists the rules in cascade order: later entries win.
func (s Styles) elements() []element {
	return []element{
		{"." + ClassBar, s.Bar},
		{"." + ClassToggle, s.Toggle},
		{"." + ClassSeparator, s.Separator},
		{"." + ClassList, s.List},
		{"." + ClassItem, s.Item},
		{"." + ClassHome, s.Home},
		{"." + ClassSearch, s.Search},
		{"." + ClassHidden, s.Hidden},
	}
}

func (r Rule) blocks(sheet render.Sheet, t theme.Theme, selector string) render.Sheet {
	sheet = sheet.Add("", selector, r.Base)
	for _, p := range r.Pseudo {
		sheet = sheet.Add("", selector+p.Selector, p.Style)
	}
	sheet = sheet.Add(t.MediaQueries.LargeUp, selector, r.Large)
	sheet = sheet.Add(t.MediaQueries.LargeDown, selector, r.Compact)
	return sheet
}
