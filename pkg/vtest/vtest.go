package vtest

import (
	"strings"
	"testing"

	"github.com/glamorous-css/website/pkg/render"
	"github.com/glamorous-css/website/pkg/vdom"
)

// RenderToString renders a VNode and returns the HTML string.
// Render errors are reported as an empty string.
func RenderToString(node *vdom.VNode) string {
	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains asserts that rendered output contains expected substring.
func ExpectContains(t testing.TB, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
func ExpectNotContains(t testing.TB, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectElement asserts that rendered output contains a specific tag.
func ExpectElement(t testing.TB, node *vdom.VNode, tag string) {
	t.Helper()
	if Find(node, ByTag(tag)) == nil {
		t.Errorf("expected a <%s> element, got:\n%s", tag, truncate(RenderToString(node), 500))
	}
}

// ExpectAttribute asserts that some element carries attr with value.
func ExpectAttribute(t testing.TB, node *vdom.VNode, attr, value string) {
	t.Helper()
	if Find(node, ByAttr(attr, value)) == nil {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(RenderToString(node), 500))
	}
}

// Matcher selects nodes in Find and FindAll.
type Matcher func(*vdom.VNode) bool

// ByTag matches elements with the given tag.
func ByTag(tag string) Matcher {
	return func(n *vdom.VNode) bool {
		return n.Kind == vdom.KindElement && n.Tag == tag
	}
}

// ByAttr matches elements whose attribute renders to value.
func ByAttr(attr, value string) Matcher {
	return func(n *vdom.VNode) bool {
		if n.Kind != vdom.KindElement {
			return false
		}
		v, ok := n.Props[attr]
		if !ok {
			return false
		}
		s, isString := v.(string)
		return isString && s == value || !isString && value == AttrString(v)
	}
}

// ByClass matches elements whose class list contains class.
func ByClass(class string) Matcher {
	return func(n *vdom.VNode) bool {
		s, _ := n.Props["class"].(string)
		for _, c := range strings.Fields(s) {
			if c == class {
				return true
			}
		}
		return false
	}
}

// Find returns the first node matching m in depth-first order, or nil.
func Find(root *vdom.VNode, m Matcher) *vdom.VNode {
	var found *vdom.VNode
	vdom.Walk(root, func(n *vdom.VNode) bool {
		if found != nil {
			return false
		}
		if m(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindAll returns every node matching m in depth-first order.
func FindAll(root *vdom.VNode, m Matcher) []*vdom.VNode {
	var out []*vdom.VNode
	vdom.Walk(root, func(n *vdom.VNode) bool {
		if m(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// TextContent concatenates the text of a subtree.
func TextContent(root *vdom.VNode) string {
	var b strings.Builder
	vdom.Walk(root, func(n *vdom.VNode) bool {
		if n.Kind == vdom.KindText {
			b.WriteString(n.Text)
		}
		return true
	})
	return b.String()
}

// AttrString renders a non-string attribute value the way the renderer does.
func AttrString(v any) string {
	html := RenderToString(vdom.Span(vdom.Custom("v", v)))
	html = strings.TrimPrefix(html, `<span v="`)
	return strings.TrimSuffix(html, `"></span>`)
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
