package vdom

import "strings"

// Decl is one CSS declaration.
type Decl struct {
	Prop  string
	Value string
}

// Style is an ordered list of CSS declarations. Setting a property that is
// already present replaces its value in place, so output order follows the
// first assignment.
type Style []Decl

// Set assigns value to prop. An empty value removes the property, which is
// how a rule "unsets" a declaration inherited from a less specific layer.
func (s Style) Set(prop, value string) Style {
	for i, d := range s {
		if d.Prop != prop {
			continue
		}
		if value == "" {
			return append(s[:i:i], s[i+1:]...)
		}
		s[i].Value = value
		return s
	}
	if value == "" {
		return s
	}
	return append(s, Decl{Prop: prop, Value: value})
}

// Get returns the value of prop and whether it is set.
func (s Style) Get(prop string) (string, bool) {
	for _, d := range s {
		if d.Prop == prop {
			return d.Value, true
		}
	}
	return "", false
}

// Merge returns a copy of s with every declaration of over applied on top.
func (s Style) Merge(over Style) Style {
	out := make(Style, len(s), len(s)+len(over))
	copy(out, s)
	for _, d := range over {
		out = out.Set(d.Prop, d.Value)
	}
	return out
}

// String renders the declarations as an inline style value.
func (s Style) String() string {
	var b strings.Builder
	for i, d := range s {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(d.Prop)
		b.WriteByte(':')
		b.WriteString(d.Value)
	}
	return b.String()
}
