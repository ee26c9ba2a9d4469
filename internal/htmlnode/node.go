package htmlnode

import (
	"errors"
	"slices"
	"strings"
)

var (
	// ErrMissingValue is returned when a Leaf is rendered without a value.
	ErrMissingValue = errors.New("htmlnode: leaf node must have a value")
	// ErrMissingTag is returned when a Parent is rendered without a tag.
	ErrMissingTag = errors.New("htmlnode: parent node must have a tag")
	// ErrMissingChildren is returned when a Parent is rendered with no children.
	ErrMissingChildren = errors.New("htmlnode: parent node must have children")
)

// voidElements lists the tags rendered in self-closing form.
var voidElements = map[string]struct{}{
	"img":   {},
	"br":    {},
	"hr":    {},
	"input": {},
	"meta":  {},
	"link":  {},
}

// IsVoid reports whether tag renders as a self-closing element.
func IsVoid(tag string) bool {
	_, ok := voidElements[tag]
	return ok
}

// Node is a renderable HTML tree node. The set of implementations is closed:
// Leaf and Parent.
type Node interface {
	Render() (string, error)
	render(b *strings.Builder) error
}

// Leaf is a node without children. An empty Tag renders the raw value.
type Leaf struct {
	Tag   string
	Value *string
	Attrs Attributes
}

// NewLeaf returns a leaf carrying value.
func NewLeaf(tag, value string, attrs ...Attribute) Leaf {
	return Leaf{
		Tag:   tag,
		Value: &value,
		Attrs: slices.Clone(Attributes(attrs)),
	}
}

// Text returns a tagless leaf that renders value verbatim.
func Text(value string) Leaf {
	return NewLeaf("", value)
}

// Render serialises the leaf.
func (l Leaf) Render() (string, error) {
	var b strings.Builder
	if err := l.render(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (l Leaf) render(b *strings.Builder) error {
	if l.Value == nil {
		return ErrMissingValue
	}
	if l.Tag == "" {
		b.WriteString(*l.Value)
		return nil
	}

	b.WriteByte('<')
	b.WriteString(l.Tag)
	b.WriteString(RenderAttributes(l.Attrs))
	if IsVoid(l.Tag) {
		b.WriteString("/>")
		return nil
	}
	b.WriteByte('>')
	b.WriteString(*l.Value)
	writeClose(b, l.Tag)
	return nil
}

// Parent is a tagged node with an ordered list of children.
type Parent struct {
	Tag      string
	Children []Node
	Attrs    Attributes
}

// NewParent returns a parent node wrapping children.
func NewParent(tag string, children []Node, attrs ...Attribute) Parent {
	return Parent{
		Tag:      tag,
		Children: slices.Clone(children),
		Attrs:    slices.Clone(Attributes(attrs)),
	}
}

// Render serialises the parent and, recursively, every child in order.
func (p Parent) Render() (string, error) {
	var b strings.Builder
	if err := p.render(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (p Parent) render(b *strings.Builder) error {
	if p.Tag == "" {
		return ErrMissingTag
	}
	if len(p.Children) == 0 {
		return ErrMissingChildren
	}

	b.WriteByte('<')
	b.WriteString(p.Tag)
	b.WriteString(RenderAttributes(p.Attrs))
	b.WriteByte('>')
	for _, child := range p.Children {
		if child == nil {
			return ErrMissingValue
		}
		if err := child.render(b); err != nil {
			return err
		}
	}
	writeClose(b, p.Tag)
	return nil
}

func writeClose(b *strings.Builder, tag string) {
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
}

var (
	_ Node = Leaf{}
	_ Node = Parent{}
)
