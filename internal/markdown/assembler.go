package markdown

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/goliatone/go-sitemark/internal/blocks"
	"github.com/goliatone/go-sitemark/internal/htmlnode"
	"github.com/goliatone/go-sitemark/internal/inline"
)

// ErrUnknownSpanKind indicates a span whose kind has no HTML mapping.
var ErrUnknownSpanKind = errors.New("markdown: unknown span kind")

const rootTag = "div"

// ToHTML converts a markdown document into an HTML fragment rooted at a div.
// Any failure aborts the conversion; no partial output is returned.
func ToHTML(markdown string) (string, error) {
	root, err := ToHTMLNode(markdown)
	if err != nil {
		return "", err
	}
	return root.Render()
}

// ToHTMLNode builds the HTML tree for markdown without serialising it. The
// root has one child per block, in source order.
func ToHTMLNode(markdown string) (htmlnode.Parent, error) {
	parsed := blocks.Parse(markdown)

	children := make([]htmlnode.Node, 0, len(parsed))
	for _, block := range parsed {
		node, err := BlockToNode(block)
		if err != nil {
			return htmlnode.Parent{}, err
		}
		children = append(children, node)
	}
	return htmlnode.NewParent(rootTag, children), nil
}

// BlockToNode builds the container node for a single classified block.
func BlockToNode(block blocks.Block) (htmlnode.Node, error) {
	switch block.Type {
	case blocks.Heading:
		return headingNode(block)
	case blocks.Code:
		return codeNode(block), nil
	case blocks.Quote:
		return quoteNode(block)
	case blocks.UnorderedList:
		return listNode("ul", block, func(int) string { return blocks.UnorderedMarker })
	case blocks.OrderedList:
		return listNode("ol", block, blocks.OrderedMarker)
	default:
		return textContainer("p", block.Text)
	}
}

// SpanToNode maps one inline span onto a leaf node.
func SpanToNode(span inline.Span) (htmlnode.Node, error) {
	switch span.Kind {
	case inline.Plain:
		return htmlnode.Text(span.Text), nil
	case inline.Bold:
		return htmlnode.NewLeaf("b", span.Text), nil
	case inline.Italic:
		return htmlnode.NewLeaf("i", span.Text), nil
	case inline.Code:
		return htmlnode.NewLeaf("code", span.Text), nil
	case inline.Link:
		return htmlnode.NewLeaf("a", span.Text, htmlnode.Attr("href", span.Target)), nil
	case inline.Image:
		return htmlnode.NewLeaf("img", "",
			htmlnode.Attr("src", span.Target),
			htmlnode.Attr("alt", span.Text),
		), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownSpanKind, span.Kind)
	}
}

// TextToChildren runs the inline parser over text and maps every span.
func TextToChildren(text string) ([]htmlnode.Node, error) {
	spans, err := inline.Parse(text)
	if err != nil {
		return nil, err
	}

	children := make([]htmlnode.Node, 0, len(spans))
	for _, span := range spans {
		node, err := SpanToNode(span)
		if err != nil {
			return nil, err
		}
		children = append(children, node)
	}
	return children, nil
}

func textContainer(tag, text string) (htmlnode.Node, error) {
	children, err := TextToChildren(text)
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent(tag, children), nil
}

func headingNode(block blocks.Block) (htmlnode.Node, error) {
	text := block.Text[block.Level+1:]
	return textContainer(fmt.Sprintf("h%d", block.Level), text)
}

// codeNode keeps the fenced content verbatim, including its trailing newline.
func codeNode(block blocks.Block) htmlnode.Node {
	text := strings.TrimPrefix(block.Text, blocks.CodeFence+"\n")
	text = strings.TrimSuffix(text, blocks.CodeFence)

	code := htmlnode.NewParent("code", []htmlnode.Node{htmlnode.Text(text)})
	return htmlnode.NewParent("pre", []htmlnode.Node{code})
}

func quoteNode(block blocks.Block) (htmlnode.Node, error) {
	lines := strings.Split(block.Text, "\n")
	stripped := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimLeftFunc(line, unicode.IsSpace)
		line = strings.TrimPrefix(line, string(blocks.QuoteMarker))
		line = strings.TrimPrefix(line, " ")
		stripped = append(stripped, line)
	}
	return textContainer("blockquote", strings.Join(stripped, " "))
}

func listNode(tag string, block blocks.Block, marker func(int) string) (htmlnode.Node, error) {
	lines := strings.Split(block.Text, "\n")
	items := make([]htmlnode.Node, 0, len(lines))
	for i, line := range lines {
		item, err := textContainer("li", strings.TrimPrefix(line, marker(i+1)))
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return htmlnode.NewParent(tag, items), nil
}
