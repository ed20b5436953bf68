package vdom

import "testing"

func TestStyleSetKeepsFirstPosition(t *testing.T) {
	var s Style
	s = s.Set("display", "block").Set("width", "100%").Set("display", "flex")

	if got := s.String(); got != "display:flex;width:100%" {
		t.Errorf("String() = %q", got)
	}
}

func TestStyleSetEmptyRemoves(t *testing.T) {
	s := Style{{"display", "flex"}, {"width", "300px"}}
	s = s.Set("display", "")
	if _, ok := s.Get("display"); ok {
		t.Error("display should be removed")
	}
	if v, _ := s.Get("width"); v != "300px" {
		t.Errorf("width = %q", v)
	}
	if got := Style(nil).Set("x", ""); len(got) != 0 {
		t.Errorf("unset on empty style = %v", got)
	}
}

func TestStyleMergeDoesNotMutateBase(t *testing.T) {
	base := Style{{"opacity", "1"}, {"height", "auto"}}
	merged := base.Merge(Style{{"opacity", "0"}, {"padding", "0"}})

	if v, _ := base.Get("opacity"); v != "1" {
		t.Errorf("base mutated: opacity = %q", v)
	}
	if got := merged.String(); got != "opacity:0;height:auto;padding:0" {
		t.Errorf("merged = %q", got)
	}
}
