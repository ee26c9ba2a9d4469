package markdowncmd

import (
	"errors"

	"github.com/goliatone/go-sitemark/internal/commands"
	"github.com/goliatone/go-sitemark/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// HandlerSet groups the handlers built by RegisterMarkdownCommands.
type HandlerSet struct {
	Render         *RenderMarkdownHandler
	RenderDocument *RenderDocumentHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	gates         FeatureGates
	renderOpts    []commands.HandlerOption[RenderMarkdownCommand]
	renderDocOpts []commands.HandlerOption[RenderDocumentCommand]
}

// WithFeatureGates sets the gates consulted by both handlers.
func WithFeatureGates(gates FeatureGates) Option {
	return func(cfg *options) {
		cfg.gates = gates
	}
}

// WithRenderHandlerOptions forwards options to NewRenderMarkdownHandler.
func WithRenderHandlerOptions(opts ...commands.HandlerOption[RenderMarkdownCommand]) Option {
	return func(cfg *options) {
		cfg.renderOpts = append(cfg.renderOpts, opts...)
	}
}

// WithRenderDocumentHandlerOptions forwards options to NewRenderDocumentHandler.
func WithRenderDocumentHandlerOptions(opts ...commands.HandlerOption[RenderDocumentCommand]) Option {
	return func(cfg *options) {
		cfg.renderDocOpts = append(cfg.renderDocOpts, opts...)
	}
}

// RegisterMarkdownCommands builds both render handlers and registers them on
// reg when it is not nil. The handlers are returned either way.
func RegisterMarkdownCommands(reg CommandRegistry, service interfaces.MarkdownService, provider interfaces.LoggerProvider, opts ...Option) (*HandlerSet, error) {
	if service == nil {
		return nil, errors.New("markdown command registration: service is nil")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := commands.CommandLogger(provider, "markdown")
	set := &HandlerSet{
		Render:         NewRenderMarkdownHandler(service, logger, cfg.gates, cfg.renderOpts...),
		RenderDocument: NewRenderDocumentHandler(service, logger, cfg.gates, cfg.renderDocOpts...),
	}

	if reg != nil {
		if err := reg.RegisterCommand(set.Render); err != nil {
			return nil, err
		}
		if err := reg.RegisterCommand(set.RenderDocument); err != nil {
			return nil, err
		}
	}
	return set, nil
}
