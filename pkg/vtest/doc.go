// Package vtest provides testing helpers for site components.
//
// Render assertions work on the HTML a component produces:
//
//	func TestNavShowsBasics(t *testing.T) {
//	    vtest.ExpectContains(t, bar.Render(), "Basics")
//	    vtest.ExpectAttribute(t, bar.Render(), "href", "/basics")
//	}
//
// Tree queries work on the VNode structure directly, which keeps tests
// independent of attribute ordering:
//
//	link := vtest.Find(tree, vtest.ByAttr("href", "/basics"))
package vtest
