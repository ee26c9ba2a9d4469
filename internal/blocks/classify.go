package blocks

import (
	"strconv"
	"strings"
	"unicode"
)

// Type is the structural type of a block.
type Type uint8

const (
	Paragraph Type = iota
	Heading
	Code
	Quote
	UnorderedList
	OrderedList
)

// String returns the lower case type name.
func (t Type) String() string {
	switch t {
	case Paragraph:
		return "paragraph"
	case Heading:
		return "heading"
	case Code:
		return "code"
	case Quote:
		return "quote"
	case UnorderedList:
		return "unordered_list"
	case OrderedList:
		return "ordered_list"
	default:
		return "unknown"
	}
}

const maxHeadingLevel = 6

// Line markers recognised by Classify.
const (
	CodeFence       = "```"
	QuoteMarker     = '>'
	UnorderedMarker = "- "
)

// Classify returns the block type and, for headings, the heading level
// (1-6). The checks run in a fixed order and the first match wins; anything
// that matches none of them is a Paragraph.
func Classify(block string) (Type, int) {
	if level := headingLevel(block); level > 0 {
		return Heading, level
	}

	lines := strings.Split(block, "\n")
	switch {
	case isCode(lines):
		return Code, 0
	case isQuote(lines):
		return Quote, 0
	case isUnorderedList(lines):
		return UnorderedList, 0
	case isOrderedList(lines):
		return OrderedList, 0
	default:
		return Paragraph, 0
	}
}

// headingLevel counts leading '#' and requires a space right after them.
func headingLevel(block string) int {
	level := 0
	for level < len(block) && block[level] == '#' {
		level++
	}
	if level == 0 || level > maxHeadingLevel {
		return 0
	}
	if level >= len(block) || block[level] != ' ' {
		return 0
	}
	return level
}

func isCode(lines []string) bool {
	if len(lines) < 2 {
		return false
	}
	return lines[0] == CodeFence && lines[len(lines)-1] == CodeFence
}

// isQuote requires every line to start with '>' once leading whitespace is
// removed; a blank line disqualifies the block.
func isQuote(lines []string) bool {
	for _, line := range lines {
		trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
		if trimmed == "" || trimmed[0] != QuoteMarker {
			return false
		}
	}
	return true
}

func isUnorderedList(lines []string) bool {
	for _, line := range lines {
		if !strings.HasPrefix(line, UnorderedMarker) {
			return false
		}
	}
	return true
}

// isOrderedList requires "1. ", "2. ", ... strictly incrementing from 1.
func isOrderedList(lines []string) bool {
	for i, line := range lines {
		if !strings.HasPrefix(line, OrderedMarker(i+1)) {
			return false
		}
	}
	return true
}

// OrderedMarker returns the list prefix expected on line n (1-based).
func OrderedMarker(n int) string {
	return strconv.Itoa(n) + ". "
}
