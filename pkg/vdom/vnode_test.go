package vdom

import "testing"

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindFragment, "Fragment"},
		{KindComponent, "Component"},
		{KindRaw, "Raw"},
		{VKind(255), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("VKind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVNodeIsInteractive(t *testing.T) {
	tests := []struct {
		name string
		node *VNode
		want bool
	}{
		{name: "nil node", node: nil, want: false},
		{name: "text node", node: Text("hello"), want: false},
		{name: "element without handlers", node: Div(Class("x")), want: false},
		{name: "element with onclick", node: A(OnClick("toggle")), want: true},
		{name: "plain string under on prefix", node: &VNode{Kind: KindElement, Props: Props{"one": "x"}}, want: false},
		{name: "fragment node", node: Fragment(A(OnClick("toggle"))), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.IsInteractive(); got != tt.want {
				t.Errorf("IsInteractive() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWalkExpandsComponents(t *testing.T) {
	inner := Func(func() *VNode { return Span("inner") })
	tree := Div(Ul(Li("a"), Li("b")), inner)

	var tags []string
	Walk(tree, func(n *VNode) bool {
		if n.Kind == KindElement {
			tags = append(tags, n.Tag)
		}
		return true
	})

	want := []string{"div", "ul", "li", "li", "span"}
	if len(tags) != len(want) {
		t.Fatalf("visited %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("tags[%d] = %q, want %q", i, tags[i], want[i])
		}
	}
}

func TestWalkStopsDescent(t *testing.T) {
	tree := Div(Ul(Li("a")))
	count := 0
	Walk(tree, func(n *VNode) bool {
		count++
		return n.Tag != "ul"
	})
	if count != 2 {
		t.Errorf("visited %d nodes, want 2", count)
	}
}
