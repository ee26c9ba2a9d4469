package markdown

import (
	gomarkdown "github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	mdparser "github.com/gomarkdown/markdown/parser"

	"github.com/goliatone/go-sitemark/pkg/interfaces"
)

// GomarkdownParser renders CommonMark through gomarkdown/markdown.
type GomarkdownParser struct {
	defaultOptions interfaces.ParseOptions
}

var _ interfaces.MarkdownParser = (*GomarkdownParser)(nil)

// NewGomarkdownParser returns a gomarkdown-backed parser. With no extensions
// configured it uses the library's common extension set.
func NewGomarkdownParser(defaults interfaces.ParseOptions) *GomarkdownParser {
	return &GomarkdownParser{defaultOptions: defaults}
}

// Parse renders markdown with the parser defaults.
func (p *GomarkdownParser) Parse(markdown []byte) ([]byte, error) {
	return p.ParseWithOptions(markdown, p.defaultOptions)
}

// ParseWithOptions renders markdown using opts. A fresh parser is built per
// call because gomarkdown parsers are single use.
func (p *GomarkdownParser) ParseWithOptions(markdown []byte, opts interfaces.ParseOptions) ([]byte, error) {
	extensions := gomarkdownExtensions(opts.Extensions) | mdparser.AutoHeadingIDs
	if opts.HardWraps {
		extensions |= mdparser.HardLineBreak
	}
	doc := mdparser.NewWithExtensions(extensions).Parse(markdown)

	flags := mdhtml.CommonFlags
	if opts.SafeMode || opts.Sanitize {
		flags |= mdhtml.SkipHTML | mdhtml.Safelink
	}
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: flags})

	return gomarkdown.Render(doc, renderer), nil
}

var gomarkdownRegistry = map[string]mdparser.Extensions{
	"gfm":           mdparser.CommonExtensions,
	"table":         mdparser.Tables,
	"tables":        mdparser.Tables,
	"strikethrough": mdparser.Strikethrough,
	"linkify":       mdparser.Autolink,
	"autolink":      mdparser.Autolink,
	"definition":    mdparser.DefinitionLists,
	"footnote":      mdparser.Footnotes,
}

func gomarkdownExtensions(names []string) mdparser.Extensions {
	if len(names) == 0 {
		return mdparser.CommonExtensions
	}
	var extensions mdparser.Extensions
	for _, key := range extensionKeys(names) {
		extensions |= gomarkdownRegistry[key]
	}
	return extensions | mdparser.FencedCode
}
