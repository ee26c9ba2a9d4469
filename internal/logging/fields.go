package logging

import (
	"context"
	"maps"

	"github.com/goliatone/go-sitemark/pkg/interfaces"
)

// Field names shared by the render service, command handlers and providers.
const (
	FieldModule       = "module"
	FieldRenderID     = "render_id"
	FieldEngine       = "engine"
	FieldMarkdownPath = "markdown_path"
)

type fieldsKey struct{}

// WithFields attaches a copy of fields when logger implements
// interfaces.FieldsLogger. Other loggers are returned as is.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	with, ok := logger.(interfaces.FieldsLogger)
	if !ok || len(fields) == 0 {
		return logger
	}
	return with.WithFields(maps.Clone(fields))
}

// WithRenderID tags every entry of a single render with id.
func WithRenderID(logger interfaces.Logger, id string) interfaces.Logger {
	return WithFields(logger, map[string]any{FieldRenderID: id})
}

// ContextWithFields layers fields over those already on ctx. Providers merge
// them into entries of loggers bound with WithContext.
func ContextWithFields(ctx context.Context, fields map[string]any) context.Context {
	if ctx == nil || len(fields) == 0 {
		return ctx
	}
	merged := ContextFields(ctx)
	if merged == nil {
		merged = make(map[string]any, len(fields))
	}
	maps.Copy(merged, fields)
	return context.WithValue(ctx, fieldsKey{}, merged)
}

// ContextFields returns a copy of the fields on ctx, nil when there are none.
func ContextFields(ctx context.Context) map[string]any {
	if ctx == nil {
		return nil
	}
	fields, _ := ctx.Value(fieldsKey{}).(map[string]any)
	if len(fields) == 0 {
		return nil
	}
	return maps.Clone(fields)
}
