package sitemark

import (
	markdowncmd "github.com/goliatone/go-sitemark/internal/commands/markdown"
	"github.com/goliatone/go-sitemark/internal/di"
	"github.com/goliatone/go-sitemark/internal/htmlnode"
	"github.com/goliatone/go-sitemark/internal/inline"
	"github.com/goliatone/go-sitemark/internal/markdown"
	"github.com/goliatone/go-sitemark/internal/validation"
	"github.com/goliatone/go-sitemark/pkg/interfaces"
)

// Conversion errors. Each one stays matchable with errors.Is after the
// service and command layers have categorised it.
var (
	ErrUnmatchedDelimiter = inline.ErrUnmatchedDelimiter
	ErrMissingValue       = htmlnode.ErrMissingValue
	ErrMissingTag         = htmlnode.ErrMissingTag
	ErrMissingChildren    = htmlnode.ErrMissingChildren
	ErrUnknownSpanKind    = markdown.ErrUnknownSpanKind
	ErrUnknownEngine      = markdown.ErrUnknownEngine
	ErrTitleNotFound      = markdown.ErrTitleNotFound
	ErrFrontMatterInvalid = validation.ErrFrontMatterInvalid
)

type (
	MarkdownService = interfaces.MarkdownService
	MarkdownParser  = interfaces.MarkdownParser
	ParseOptions    = interfaces.ParseOptions
	Document        = interfaces.Document
	FrontMatter     = interfaces.FrontMatter
	Logger          = interfaces.Logger
	LoggerProvider  = interfaces.LoggerProvider

	RenderMarkdownCommand = markdowncmd.RenderMarkdownCommand
	RenderDocumentCommand = markdowncmd.RenderDocumentCommand
	ResultEnvelope        = markdowncmd.ResultEnvelope
	CommandHandlers       = markdowncmd.HandlerSet
)

// Option customises the container built by New.
type Option = di.Option

var (
	WithLoggerProvider  = di.WithLoggerProvider
	WithMarkdownParser  = di.WithMarkdownParser
	WithMarkdownService = di.WithMarkdownService
	WithCommandRegistry = di.WithCommandRegistry
	WithDispatcher      = di.WithDispatcher
)

// MarkdownToHTML converts a markdown document into an HTML fragment wrapped
// in a single div. It does no I/O and keeps no state.
func MarkdownToHTML(source string) (string, error) {
	return markdown.ToHTML(source)
}

// Module represents the top level runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a module using the provided configuration and optional DI overrides.
func New(cfg Config, opts ...Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Markdown returns the configured render service.
func (m *Module) Markdown() MarkdownService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.MarkdownService()
}

// Commands returns the render command handlers, or nil unless
// Features.Commands is set.
func (m *Module) Commands() *CommandHandlers {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.CommandHandlers()
}

// Close releases dispatcher subscriptions held by the module.
func (m *Module) Close() {
	if m == nil || m.container == nil {
		return
	}
	m.container.Close()
}
