// Package nav renders the site navigation bar.
//
// The bar has two layouts selected by Props.Top (docked on top, or as a side
// column) and collapses into a toggleable menu below the large breakpoint.
// Styling is derived by Resolve from the mode, the open state and the theme;
// the open state lives in a signal owned by the bar instance and changes
// only through Dispatch.
package nav

import (
	"golang.org/x/text/language"

	"github.com/glamorous-css/website/internal/anchor"
	"github.com/glamorous-css/website/internal/assets"
	"github.com/glamorous-css/website/internal/content"
	"github.com/glamorous-css/website/internal/locale"
	"github.com/glamorous-css/website/internal/search"
	"github.com/glamorous-css/website/internal/theme"
	"github.com/glamorous-css/website/pkg/reactive"
	"github.com/glamorous-css/website/pkg/render"
	"github.com/glamorous-css/website/pkg/vdom"
)

// Element IDs referenced by the client runtime.
const (
	ListID   = "nav-links"
	StyleID  = "nav-style"
	ToggleID = "nav-toggle"
	SearchID = "nav-search"
)

// Props are supplied by the page embedding the bar.
type Props struct {
	Pathname string
	Top      bool
}

// Options are the collaborators of a bar instance.
type Options struct {
	Theme   theme.Theme
	Content content.Nav

	// Prefetch is passed to every page link.
	Prefetch bool

	// Locale and Languages feed the locale chooser.
	Locale    language.Tag
	Languages []language.Tag

	// Search runs once when the instance mounts. Nil disables it.
	Search search.Bootstrapper

	// Base prefixes every page link of the bar. Props.Pathname is given
	// without it.
	Base string

	// LocaleBase, when set, links the chooser to each language's copy of
	// the current page under its prefix.
	LocaleBase func(language.Tag) string

	// LiveURL is the WebSocket endpoint of the live session. When empty the
	// bar is rendered for static hosting and the client toggles it locally.
	LiveURL string
}

// Link is one page entry of the bar.
type Link struct {
	Href  string
	Label string
}

// Links returns the page entries after the brand link, in display order.
func Links(c content.Nav) []Link {
	return []Link{
		{"/getting-started", c.GettingStarted},
		{"/basics", c.Basics},
		{"/advanced", c.Advanced},
		{"/examples", c.Examples},
		{"/integrations", c.Integrations},
		{"/api", c.API},
	}
}

// NavBar is one instance of the navigation bar.
type NavBar struct {
	props Props
	opts  Options
	owner *reactive.Owner
	state *reactive.Signal[State]
}

// New creates a closed bar. The search bootstrap is registered as the
// instance's mount hook.
func New(props Props, opts Options) *NavBar {
	n := &NavBar{
		props: props,
		opts:  opts,
		owner: reactive.NewOwner(),
		state: reactive.NewSignal(State{}),
	}
	if opts.Search != nil {
		n.owner.OnMount(opts.Search.Bootstrap)
	}
	return n
}

// State returns the current state.
func (n *NavBar) State() State {
	return n.state.Get()
}

// Props returns the instance props.
func (n *NavBar) Props() Props {
	return n.props
}

// Dispatch applies a named action. It reports whether the action is known.
func (n *NavBar) Dispatch(action string) bool {
	switch a := Action(action); a {
	case ActionToggle:
		n.state.Update(func(s State) State { return Reduce(s, a) })
		return true
	default:
		return false
	}
}

// Toggle flips the menu.
func (n *NavBar) Toggle() {
	n.Dispatch(string(ActionToggle))
}

// OnChange registers fn to run after every state change.
func (n *NavBar) OnChange(fn func(State)) (unsubscribe func()) {
	return n.state.Subscribe(fn)
}

// Commit marks the last render as delivered. The first commit runs the
// search bootstrap; its error is returned unchanged and never retried.
func (n *NavBar) Commit() error {
	return n.owner.Commit()
}

// Dispose ends the instance lifetime.
func (n *NavBar) Dispose() {
	n.owner.Dispose()
}

// Styles resolves the styles for the current state.
func (n *NavBar) Styles() Styles {
	return Resolve(Input{Top: n.props.Top, Open: n.state.Get().Open, Theme: n.opts.Theme})
}

// Sheet returns every CSS rule the bar needs in its current state.
func (n *NavBar) Sheet() render.Sheet {
	sheet := n.Styles().Sheet(n.opts.Theme)
	sheet = append(sheet, n.chooser().Sheet(n.opts.Theme)...)
	if n.opts.LiveURL == "" {
		sheet = append(sheet, OpenListSheet(Input{Top: n.props.Top, Theme: n.opts.Theme})...)
	}
	return sheet
}

// Render implements vdom.Component. It returns the bar preceded by its
// stylesheet.
func (n *NavBar) Render() *vdom.VNode {
	open := n.state.Get().Open
	c := n.opts.Content

	var live, openAttr vdom.Attr
	if n.opts.LiveURL != "" {
		live = vdom.Data("live", n.opts.LiveURL)
	} else {
		live = vdom.Data("static", "true")
	}
	if open {
		openAttr = vdom.Data("open", "true")
	}

	brandWidth := 40
	if n.props.Top {
		brandWidth = 20
	}

	return vdom.Fragment(
		render.StyleNode(n.Sheet(), vdom.ID(StyleID)),
		vdom.Nav(
			vdom.Class(ClassBar),
			live,
			openAttr,
			vdom.Data("top", pick(n.props.Top, "true", "false")),

			vdom.A(
				vdom.ID(ToggleID),
				vdom.Class(ClassToggle),
				vdom.Role("button"),
				vdom.TabIndex(0),
				vdom.AriaLabel("Menu"),
				vdom.AriaExpanded(open),
				vdom.AriaControls(ListID),
				vdom.OnClick(string(ActionToggle)),
				vdom.Raw(assets.MenuIcon()),
			),
			vdom.Hr(vdom.Class(ClassSeparator)),

			vdom.Ul(
				vdom.ID(ListID),
				vdom.Class(ClassList),
				n.item(ClassHome, "/",
					vdom.Raw(assets.BrandIcon(brandWidth)),
					vdom.Span(vdom.Class(ClassHidden), c.Home),
				),
				vdom.Range(Links(c), func(l Link, _ int) *vdom.VNode {
					return n.item("", l.Href, l.Label)
				}),
				vdom.Li(vdom.Class(ClassItem),
					vdom.Input(
						vdom.ID(SearchID),
						vdom.Class(ClassSearch),
						vdom.Type("text"),
						vdom.Required(),
						vdom.Pattern(".*"),
						vdom.Placeholder(c.Search),
						vdom.AriaLabel(c.Search),
					),
				),
				vdom.Li(vdom.Class(ClassItem), n.chooser()),
			),
		),
	)
}

// item renders one list entry whose link is delegated to anchor.Anchor.
func (n *NavBar) item(class, href string, children ...any) *vdom.VNode {
	return vdom.Li(
		vdom.Class(ClassItem, class),
		anchor.Anchor{
			Href:     locale.Prefixed(n.opts.Base, href),
			Pathname: locale.Prefixed(n.opts.Base, n.props.Pathname),
			Prefetch: n.opts.Prefetch,
			Children: children,
		},
	)
}

func (n *NavBar) chooser() locale.Chooser {
	return locale.Chooser{
		Pathname:  n.props.Pathname,
		Current:   n.opts.Locale,
		Languages: n.opts.Languages,
		Top:       n.props.Top,
		Base:      n.opts.LocaleBase,
	}
}
