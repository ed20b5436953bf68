// Package render turns vdom trees into HTML and per-element style rules into
// CSS.
//
// The Renderer writes element attributes in sorted order so output is stable
// across runs, which keeps live fragment pushes and exported pages diffable.
// Event handlers are not rendered as attributes; each becomes a
// data-on-<event> marker carrying the action name for the client runtime.
package render
