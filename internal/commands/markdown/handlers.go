package markdowncmd

import (
	"context"
	"errors"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-sitemark/internal/commands"
	"github.com/goliatone/go-sitemark/internal/logging"
	"github.com/goliatone/go-sitemark/internal/markdown"
	"github.com/goliatone/go-sitemark/pkg/interfaces"
)

const (
	renderOperation         = "markdown.render"
	renderDocumentOperation = "markdown.render_document"
)

// ErrMarkdownCommandsDisabled is returned when the commands feature gate is off.
var ErrMarkdownCommandsDisabled = errors.New("markdown command: feature disabled")

var (
	_ command.Commander[RenderMarkdownCommand] = (*RenderMarkdownHandler)(nil)
	_ command.Commander[RenderDocumentCommand] = (*RenderDocumentHandler)(nil)
)

// RenderMarkdownHandler renders markdown strings through the service.
type RenderMarkdownHandler struct {
	inner *commands.Handler[RenderMarkdownCommand]
}

// NewRenderMarkdownHandler binds a handler to service.
func NewRenderMarkdownHandler(service interfaces.MarkdownService, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[RenderMarkdownCommand]) *RenderMarkdownHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg RenderMarkdownCommand) error {
		if !gates.commandsEnabled() {
			return ErrMarkdownCommandsDisabled
		}

		html, err := service.Render(ctx, []byte(msg.Markdown), msg.Options)
		if err != nil {
			return err
		}

		invokeCallback(msg.ResultCallback, ResultEnvelope{
			HTML: string(html),
			Metadata: map[string]any{
				"operation": renderOperation,
			},
		})
		return nil
	}

	handlerOpts := []commands.HandlerOption[RenderMarkdownCommand]{
		commands.WithLogger[RenderMarkdownCommand](baseLogger),
		commands.WithOperation[RenderMarkdownCommand](renderOperation),
		commands.WithMessageFields(func(msg RenderMarkdownCommand) map[string]any {
			return map[string]any{
				"markdown_bytes": len(msg.Markdown),
			}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[RenderMarkdownCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &RenderMarkdownHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[RenderMarkdownCommand].
func (h *RenderMarkdownHandler) Execute(ctx context.Context, msg RenderMarkdownCommand) error {
	return h.inner.Execute(ctx, msg)
}

// RenderDocumentHandler builds a document from source and renders its body.
type RenderDocumentHandler struct {
	inner *commands.Handler[RenderDocumentCommand]
}

// NewRenderDocumentHandler binds a handler to service.
func NewRenderDocumentHandler(service interfaces.MarkdownService, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[RenderDocumentCommand]) *RenderDocumentHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg RenderDocumentCommand) error {
		if !gates.commandsEnabled() {
			return ErrMarkdownCommandsDisabled
		}

		doc, err := markdown.BuildDocument(msg.Path, msg.Source)
		if err != nil {
			return err
		}
		html, err := service.RenderDocument(ctx, doc, msg.Options)
		if err != nil {
			return err
		}

		logging.WithMarkdownContext(baseLogger, msg.Path, "").Debug("markdown.command.render_document.completed",
			"title", doc.FrontMatter.Title,
			"slug", doc.FrontMatter.Slug,
		)

		invokeCallback(msg.ResultCallback, ResultEnvelope{
			HTML:     string(html),
			Document: doc,
			Metadata: map[string]any{
				"operation": renderDocumentOperation,
				"path":      msg.Path,
			},
		})
		return nil
	}

	handlerOpts := []commands.HandlerOption[RenderDocumentCommand]{
		commands.WithLogger[RenderDocumentCommand](baseLogger),
		commands.WithOperation[RenderDocumentCommand](renderDocumentOperation),
		commands.WithMessageFields(func(msg RenderDocumentCommand) map[string]any {
			return map[string]any{
				"markdown_path":  msg.Path,
				"markdown_bytes": len(msg.Source),
			}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[RenderDocumentCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &RenderDocumentHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[RenderDocumentCommand].
func (h *RenderDocumentHandler) Execute(ctx context.Context, msg RenderDocumentCommand) error {
	return h.inner.Execute(ctx, msg)
}

func invokeCallback(cb ResultCallback, envelope ResultEnvelope) {
	if cb == nil {
		return
	}
	cb(envelope)
}
