// Package anchor renders site links that know whether they point at the
// current page.
package anchor

import (
	"strings"

	"github.com/glamorous-css/website/pkg/vdom"
)

// Anchor is a navigation link. Pathname is the page being rendered; Href is
// the link target. A link is active when both name the same page.
type Anchor struct {
	Href     string
	Pathname string
	Prefetch bool
	Class    string
	Children []any
}

// Active reports whether the anchor points at the current page. Matching is
// exact after trailing-slash normalization, so "/basics" does not mark
// "/basics/theming" active.
func (a Anchor) Active() bool {
	return Normalize(a.Href) == Normalize(a.Pathname)
}

// Render implements vdom.Component.
func (a Anchor) Render() *vdom.VNode {
	active := a.Active()

	var current, prefetch vdom.Attr
	class := a.Class
	if active {
		current = vdom.AriaCurrent("page")
		class = strings.TrimSpace(class + " active")
	}
	if a.Prefetch {
		prefetch = vdom.Data("prefetch", "true")
	}

	args := []any{vdom.Href(a.Href), vdom.Class(class), current, prefetch}
	return vdom.A(append(args, a.Children...)...)
}

// Normalize strips the query, fragment and trailing slashes from a path.
// The empty path normalizes to "/".
func Normalize(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	p = strings.TrimRight(p, "/")
	if p == "" {
		return "/"
	}
	return p
}
