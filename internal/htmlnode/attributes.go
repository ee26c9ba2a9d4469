package htmlnode

import (
	"slices"
	"strings"
)

// Attribute is a single name="value" pair.
type Attribute struct {
	Name  string
	Value string
}

// Attr is shorthand for constructing an Attribute.
func Attr(name, value string) Attribute {
	return Attribute{Name: name, Value: value}
}

// Attributes keeps attributes in insertion order. Names are unique.
type Attributes []Attribute

// Set returns a copy of a with name set to value. An existing name keeps its
// position. The receiver is never modified.
func (a Attributes) Set(name, value string) Attributes {
	out := slices.Clone(a)
	if i := slices.IndexFunc(out, func(attr Attribute) bool { return attr.Name == name }); i >= 0 {
		out[i].Value = value
		return out
	}
	return append(out, Attribute{Name: name, Value: value})
}

// Get returns the value stored under name.
func (a Attributes) Get(name string) (string, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// RenderAttributes returns the attributes as ` name="value"` pairs in insertion
// order, or an empty string when there are none. Values are written as-is.
func RenderAttributes(attrs Attributes) string {
	if len(attrs) == 0 {
		return ""
	}

	var b strings.Builder
	for _, attr := range attrs {
		b.WriteByte(' ')
		b.WriteString(attr.Name)
		b.WriteString(`="`)
		b.WriteString(attr.Value)
		b.WriteByte('"')
	}
	return b.String()
}
