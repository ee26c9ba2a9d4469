package markdown

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-sitemark/pkg/interfaces"
)

// Engine names understood by NewParser.
const (
	EngineNative     = "native"
	EngineGoldmark   = "goldmark"
	EngineGomarkdown = "gomarkdown"
)

type parserFactory func(defaults interfaces.ParseOptions) interfaces.MarkdownParser

var engines = map[string]parserFactory{
	EngineNative: func(interfaces.ParseOptions) interfaces.MarkdownParser {
		return NewNativeParser()
	},
	EngineGoldmark: func(defaults interfaces.ParseOptions) interfaces.MarkdownParser {
		return NewGoldmarkParser(defaults)
	},
	EngineGomarkdown: func(defaults interfaces.ParseOptions) interfaces.MarkdownParser {
		return NewGomarkdownParser(defaults)
	},
}

// NewParser returns the parser registered under engine. A blank name selects
// the native dialect parser.
func NewParser(engine string, defaults interfaces.ParseOptions) (interfaces.MarkdownParser, error) {
	factory, ok := engines[normalizeEngine(engine)]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownEngine, engine, strings.Join(Engines(), ", "))
	}
	return factory(defaults), nil
}

// Engines lists the registered engine names in sorted order.
func Engines() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizeEngine(engine string) string {
	engine = strings.ToLower(strings.TrimSpace(engine))
	if engine == "" {
		return EngineNative
	}
	return engine
}
