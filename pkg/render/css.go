package render

import (
	"bytes"
	"io"

	"github.com/glamorous-css/website/pkg/vdom"
)

// Block is one CSS rule, optionally wrapped in an at-rule such as
// "@media (min-width: 1024px)".
type Block struct {
	Media    string
	Selector string
	Style    vdom.Style
}

// Sheet is an ordered list of rules. Order is preserved in the output so
// later blocks win over earlier ones of equal specificity.
type Sheet []Block

// Add appends a block unless its style is empty.
func (s Sheet) Add(media, selector string, style vdom.Style) Sheet {
	if len(style) == 0 {
		return s
	}
	return append(s, Block{Media: media, Selector: selector, Style: style})
}

// WriteCSS writes the sheet as compact CSS. Consecutive blocks sharing the
// same media query are emitted inside one at-rule.
func WriteCSS(w io.Writer, sheet Sheet) error {
	var buf bytes.Buffer
	open := ""
	for _, b := range sheet {
		if b.Media != open {
			if open != "" {
				buf.WriteByte('}')
			}
			if b.Media != "" {
				buf.WriteString(sanitizeCSS(b.Media))
				buf.WriteByte('{')
			}
			open = b.Media
		}
		buf.WriteString(sanitizeCSS(b.Selector))
		buf.WriteByte('{')
		for i, d := range b.Style {
			if i > 0 {
				buf.WriteByte(';')
			}
			buf.WriteString(sanitizeCSS(d.Prop))
			buf.WriteByte(':')
			buf.WriteString(sanitizeCSS(d.Value))
		}
		buf.WriteByte('}')
	}
	if open != "" {
		buf.WriteByte('}')
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// CSSString renders the sheet to a string.
func CSSString(sheet Sheet) string {
	var buf bytes.Buffer
	_ = WriteCSS(&buf, sheet)
	return buf.String()
}

// StyleNode wraps a sheet in a <style> element.
func StyleNode(sheet Sheet, attrs ...any) *vdom.VNode {
	return vdom.StyleEl(append(attrs, vdom.Text(CSSString(sheet)))...)
}
