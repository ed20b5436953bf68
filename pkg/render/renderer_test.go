package render

import (
	"strings"
	"testing"

	"github.com/glamorous-css/website/pkg/vdom"
)

func renderString(t *testing.T, node *vdom.VNode) string {
	t.Helper()
	html, err := NewRenderer(RendererConfig{}).RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return html
}

func TestRenderText(t *testing.T) {
	if got := renderString(t, vdom.Text("Hello, World!")); got != "Hello, World!" {
		t.Errorf("got %q, want %q", got, "Hello, World!")
	}
}

func TestRenderTextEscaping(t *testing.T) {
	html := renderString(t, vdom.Text("<script>alert('xss')</script>"))
	if strings.Contains(html, "<script>") {
		t.Errorf("HTML should be escaped, got %q", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Errorf("should contain escaped script tag, got %q", html)
	}
}

func TestRenderElement(t *testing.T) {
	html := renderString(t, vdom.Nav(vdom.Class("Navbar"),
		vdom.Ul(vdom.Li(vdom.A(vdom.Href("/basics"), "Basics"))),
	))
	want := `<nav class="Navbar"><ul><li><a href="/basics">Basics</a></li></ul></nav>`
	if html != want {
		t.Errorf("got %q\nwant %q", html, want)
	}
}

func TestRenderVoidAndBooleanAttributes(t *testing.T) {
	tests := []struct {
		name string
		node *vdom.VNode
		want string
	}{
		{
			name: "search input",
			node: vdom.Input(vdom.Type("text"), vdom.Required(), vdom.Pattern(".*")),
			want: `<input pattern=".*" required type="text">`,
		},
		{
			name: "false boolean omitted",
			node: vdom.Input(vdom.Custom("required", false)),
			want: `<input>`,
		},
		{
			name: "aria bool rendered as value",
			node: vdom.A(vdom.AriaExpanded(false)),
			want: `<a aria-expanded="false"></a>`,
		},
		{
			name: "numeric attribute",
			node: vdom.Img(vdom.Width(20)),
			want: `<img width="20">`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderString(t, tt.node); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderAttributeEscaping(t *testing.T) {
	html := renderString(t, vdom.A(vdom.Href(`/x?a="b"&c`)))
	if !strings.Contains(html, `href="/x?a=&quot;b&quot;&amp;c"`) {
		t.Errorf("attribute not escaped: %q", html)
	}
}

func TestRenderEventMarkers(t *testing.T) {
	html := renderString(t, vdom.A(vdom.Class("toggle"), vdom.OnClick("toggle")))
	want := `<a class="toggle" data-on-click="toggle"></a>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderComponentAndFragment(t *testing.T) {
	comp := vdom.Func(func() *vdom.VNode {
		return vdom.Fragment(vdom.Span("a"), vdom.Span("b"))
	})
	html := renderString(t, vdom.Div(comp))
	if html != "<div><span>a</span><span>b</span></div>" {
		t.Errorf("got %q", html)
	}
}

func TestRenderRawAndScriptText(t *testing.T) {
	html := renderString(t, vdom.Div(vdom.Raw("<svg></svg>"), vdom.Script(vdom.Text(`x("</script>")`))))
	if !strings.Contains(html, "<svg></svg>") {
		t.Errorf("raw node escaped: %q", html)
	}
	if strings.Contains(html, `x("</script>")`) {
		t.Errorf("script close sequence not neutralized: %q", html)
	}
}

func TestRenderElementWithoutTag(t *testing.T) {
	_, err := NewRenderer(RendererConfig{}).RenderToString(vdom.Div(&vdom.VNode{Kind: vdom.KindElement}))
	if err == nil {
		t.Fatal("expected error for element without tag")
	}
}

func TestRenderPretty(t *testing.T) {
	html, err := NewRenderer(RendererConfig{Pretty: true}).RenderToString(vdom.Ul(vdom.Li("a")))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(html, "<ul>\n  <li>") || !strings.HasSuffix(html, "</ul>\n") {
		t.Errorf("pretty output not indented: %q", html)
	}
}
