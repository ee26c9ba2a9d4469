package markdown

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// NormalizeSource decodes source to UTF-8, honouring a UTF-8 or UTF-16 byte
// order mark and dropping it, then rewrites CRLF and lone CR line endings as
// LF. Input without a BOM is read as UTF-8.
func NormalizeSource(source []byte) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	decoded, _, err := transform.Bytes(decoder, source)
	if err != nil {
		return "", fmt.Errorf("markdown: decode source: %w", err)
	}

	text := strings.ReplaceAll(string(decoded), "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n"), nil
}
