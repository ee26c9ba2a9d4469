package markdown

import (
	"strings"

	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-sitemark/internal/blocks"
)

// ExtractTitle returns the text of the first level 1 heading, without the
// "# " marker and trimmed.
func ExtractTitle(markdown string) (string, error) {
	for _, block := range blocks.Parse(markdown) {
		if block.Type == blocks.Heading && block.Level == 1 {
			return strings.TrimSpace(block.Text[2:]), nil
		}
	}
	return "", ErrTitleNotFound
}

// deriveSlug normalises title with go-slug and falls back to the trimmed
// title when normalisation yields nothing.
func deriveSlug(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}
	normalized, err := slug.Normalize(title)
	if err != nil || normalized == "" {
		return title
	}
	return normalized
}
