package markdown

import (
	"github.com/goliatone/go-sitemark/pkg/interfaces"
)

// NativeParser renders the sitemark dialect through ToHTML. It holds no state
// and is safe for concurrent use.
type NativeParser struct{}

var _ interfaces.MarkdownParser = NativeParser{}

// NewNativeParser returns the dialect parser.
func NewNativeParser() NativeParser {
	return NativeParser{}
}

// Parse converts markdown into a div-rooted HTML fragment.
func (NativeParser) Parse(markdown []byte) ([]byte, error) {
	html, err := ToHTML(string(markdown))
	if err != nil {
		return nil, err
	}
	return []byte(html), nil
}

// ParseWithOptions ignores opts; the dialect has no extensions or raw HTML.
func (p NativeParser) ParseWithOptions(markdown []byte, _ interfaces.ParseOptions) ([]byte, error) {
	return p.Parse(markdown)
}
