package render

import (
	"strings"
	"testing"

	"github.com/glamorous-css/website/pkg/vdom"
)

func TestWriteCSSGroupsMedia(t *testing.T) {
	var sheet Sheet
	sheet = sheet.Add("", ".a", vdom.Style{{Prop: "width", Value: "100%"}})
	sheet = sheet.Add("@media (min-width: 1024px)", ".a", vdom.Style{{Prop: "display", Value: "flex"}})
	sheet = sheet.Add("@media (min-width: 1024px)", ".b", vdom.Style{{Prop: "display", Value: "none"}})
	sheet = sheet.Add("", ".c", nil)

	want := ".a{width:100%}@media (min-width: 1024px){.a{display:flex}.b{display:none}}"
	if got := CSSString(sheet); got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestWriteCSSStripsDelimiters(t *testing.T) {
	sheet := Sheet{{Selector: ".x", Style: vdom.Style{{Prop: "color", Value: "red}</style><script>"}}}}
	got := CSSString(sheet)
	if strings.Contains(got, "</style") || strings.Count(got, "}") != 1 {
		t.Errorf("unsafe css: %q", got)
	}
}

func TestStyleNode(t *testing.T) {
	sheet := Sheet{{Selector: ".x", Style: vdom.Style{{Prop: "background-image", Value: `url("data:image/svg+xml;base64,AAA")`}}}}
	html := renderString(t, StyleNode(sheet, vdom.ID("nav-style")))
	want := `<style id="nav-style">.x{background-image:url("data:image/svg+xml;base64,AAA")}</style>`
	if html != want {
		t.Errorf("got %q\nwant %q", html, want)
	}
}
