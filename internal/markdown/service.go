package markdown

import (
	"context"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/goliatone/go-sitemark/internal/blocks"
	"github.com/goliatone/go-sitemark/internal/logging"
	"github.com/goliatone/go-sitemark/internal/validation"
	"github.com/goliatone/go-sitemark/pkg/interfaces"
)

// Config controls how the service prepares and renders sources.
type Config struct {
	Engine          string
	NormalizeSource bool
	DeriveSlugs     bool
	Parser          interfaces.ParseOptions

	// FrontMatterSchema, when set, is checked by RenderDocument before the
	// body is rendered. See validation.CompileSchema for accepted forms.
	FrontMatterSchema map[string]any
}

// DefaultServiceConfig selects the native engine with source normalisation
// and slug derivation on.
func DefaultServiceConfig() Config {
	return Config{
		Engine:          EngineNative,
		NormalizeSource: true,
		DeriveSlugs:     true,
	}
}

// ServiceOption customises a Service.
type ServiceOption func(*Service)

// WithLogger sets the logger used for render events. Defaults to NoOp.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *Service) {
		if logger == nil {
			logger = logging.NoOp()
		}
		s.logger = logger
	}
}

// WithParser replaces the engine selected by Config.Engine.
func WithParser(parser interfaces.MarkdownParser) ServiceOption {
	return func(s *Service) {
		if parser != nil {
			s.parser = parser
		}
	}
}

// Service implements interfaces.MarkdownService on top of a MarkdownParser.
type Service struct {
	cfg    Config
	parser interfaces.MarkdownParser
	schema *validation.Schema
	logger interfaces.Logger
}

var _ interfaces.MarkdownService = (*Service)(nil)

// NewService builds the parser named by cfg.Engine and applies opts.
func NewService(cfg Config, opts ...ServiceOption) (*Service, error) {
	cfg.Engine = normalizeEngine(cfg.Engine)

	svc := &Service{
		cfg:    cfg,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(svc)
	}

	if svc.parser == nil {
		parser, err := NewParser(cfg.Engine, cfg.Parser)
		if err != nil {
			return nil, err
		}
		svc.parser = parser
	}

	schema, err := validation.CompileSchema(cfg.FrontMatterSchema)
	if err != nil {
		return nil, err
	}
	svc.schema = schema
	return svc, nil
}

// Engine reports the configured engine name.
func (s *Service) Engine() string {
	return s.cfg.Engine
}

// Render converts markdown to HTML. The context is only checked before work
// starts; conversion itself is not interruptible.
func (s *Service) Render(ctx context.Context, markdown []byte, opts interfaces.ParseOptions) ([]byte, error) {
	return s.render(ctx, "", markdown, opts)
}

// RenderString is Render for string input using the configured options.
func (s *Service) RenderString(ctx context.Context, markdown string) (string, error) {
	html, err := s.render(ctx, "", []byte(markdown), interfaces.ParseOptions{})
	if err != nil {
		return "", err
	}
	return string(html), nil
}

// RenderDocument renders doc.Body into doc.BodyHTML. With DeriveSlugs on, a
// missing title is taken from the first h1 and a missing slug from the title.
// Front matter is checked against the configured schema first.
func (s *Service) RenderDocument(ctx context.Context, doc *interfaces.Document, opts interfaces.ParseOptions) ([]byte, error) {
	if doc == nil {
		return nil, wrapRenderError(ErrDocumentRequired)
	}
	if err := s.schema.Validate(doc.FilePath, doc.FrontMatter.Raw); err != nil {
		return nil, s.fail(logging.WithMarkdownContext(s.logger, doc.FilePath, s.cfg.Engine), err)
	}

	html, err := s.render(ctx, doc.FilePath, doc.Body, opts)
	if err != nil {
		return nil, err
	}
	doc.BodyHTML = html

	if s.cfg.DeriveSlugs {
		s.deriveMetadata(doc)
	}
	return html, nil
}

// Title returns the first level 1 heading of markdown.
func (s *Service) Title(ctx context.Context, markdown []byte) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return "", wrapRenderError(err)
	}
	source, err := s.prepare(markdown)
	if err != nil {
		return "", err
	}
	return ExtractTitle(source)
}

func (s *Service) render(ctx context.Context, path string, markdown []byte, opts interfaces.ParseOptions) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	logger := logging.WithMarkdownContext(s.logger, path, s.cfg.Engine)
	logger = logging.WithRenderID(logger, uuid.NewString())
	logger = logger.WithContext(ctx)

	if err := ctx.Err(); err != nil {
		return nil, s.fail(logger, err)
	}

	source, err := s.prepare(markdown)
	if err != nil {
		return nil, s.fail(logger, err)
	}

	logger.Debug("markdown.render.start", "input_size", humanize.Bytes(uint64(len(markdown))))

	html, err := s.parser.ParseWithOptions([]byte(source), mergeParseOptions(s.cfg.Parser, opts))
	if err != nil {
		return nil, s.fail(logger, err)
	}

	logger.Debug("markdown.render.completed",
		"input_size", humanize.Bytes(uint64(len(markdown))),
		"output_size", humanize.Bytes(uint64(len(html))),
		"blocks", len(blocks.Split(source)),
	)
	return html, nil
}

func (s *Service) prepare(markdown []byte) (string, error) {
	if !s.cfg.NormalizeSource {
		return string(markdown), nil
	}
	source, err := NormalizeSource(markdown)
	if err != nil {
		return "", wrapSourceError(err)
	}
	return source, nil
}

func (s *Service) fail(logger interfaces.Logger, err error) error {
	wrapped := wrapRenderError(err)
	logger.Warn("markdown.render.failed", "error", err, "error_code", ErrorCode(err))
	return wrapped
}

func (s *Service) deriveMetadata(doc *interfaces.Document) {
	if doc.FrontMatter.Title == "" {
		if source, err := s.prepare(doc.Body); err == nil {
			if title, err := ExtractTitle(source); err == nil {
				doc.FrontMatter.Title = title
			}
		}
	}
	if doc.FrontMatter.Slug == "" {
		doc.FrontMatter.Slug = deriveSlug(doc.FrontMatter.Title)
	}
}

func mergeParseOptions(base, override interfaces.ParseOptions) interfaces.ParseOptions {
	result := base
	if len(override.Extensions) > 0 {
		result.Extensions = append([]string(nil), override.Extensions...)
	}
	if override.Sanitize {
		result.Sanitize = true
	}
	if override.HardWraps {
		result.HardWraps = true
	}
	if override.SafeMode {
		result.SafeMode = true
	}
	return result
}
