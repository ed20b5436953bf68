package render

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
	"\n", "&#10;",
	"\r", "&#13;",
	"\t", "&#9;",
)

// cssStripper drops characters that could close a rule or the enclosing
// <style> element.
var cssStripper = strings.NewReplacer(
	"<", "",
	">", "",
	"{", "",
	"}", "",
)

// escapeHTML escapes text for safe inclusion in HTML content.
func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// escapeAttr escapes text for safe inclusion in HTML attribute values.
// Whitespace control characters are encoded as well.
func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

// sanitizeCSS strips rule and markup delimiters from a CSS token.
func sanitizeCSS(s string) string {
	return cssStripper.Replace(s)
}
