package blocks

import "strings"

const separator = "\n\n"

// Block is a classified unit of markdown source.
type Block struct {
	Text  string
	Type  Type
	Level int
}

// Split breaks markdown into blocks separated by a blank line. Each block is
// trimmed of surrounding whitespace and empty blocks are discarded; single
// newlines inside a block are kept.
func Split(markdown string) []string {
	candidates := strings.Split(markdown, separator)
	out := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		trimmed := strings.TrimSpace(candidate)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

// Parse splits markdown and classifies every block, preserving order.
func Parse(markdown string) []Block {
	raw := Split(markdown)
	out := make([]Block, 0, len(raw))
	for _, text := range raw {
		typ, level := Classify(text)
		out = append(out, Block{
			Text:  text,
			Type:  typ,
			Level: level,
		})
	}
	return out
}
