// Package vdom provides the virtual node tree the site components render into.
//
// Components build trees with element functions that accept a mix of
// attributes, children, text and event handlers:
//
//	Nav(Class("nav-bar"),
//	    A(Href("/basics"), "Basics"),
//	    Input(Type("text"), Required()),
//	)
//
// Nil arguments are ignored so conditional attributes and children can be
// written inline. Styles are ordered declaration lists (see Style) so the
// rendered CSS is deterministic.
package vdom
