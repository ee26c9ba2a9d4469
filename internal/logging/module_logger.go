package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-sitemark/pkg/interfaces"
)

const (
	rootModule     = "sitemark"
	markdownModule = "sitemark.markdown"
	commandsPrefix = "sitemark.commands"
)

// ModuleLogger returns a logger scoped to module. A nil provider, or one that
// returns nil, yields NoOp. The module name is attached as a field.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		FieldModule: module,
	})
}

// MarkdownLogger returns the logger used by the render service.
func MarkdownLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, markdownModule)
}

// CommandLogger returns the logger for the named command handler, for
// example "markdown.render" becomes sitemark.commands.markdown.render.
func CommandLogger(provider interfaces.LoggerProvider, command string) interfaces.Logger {
	command = strings.Trim(strings.TrimSpace(command), ".")
	if command == "" {
		return ModuleLogger(provider, commandsPrefix)
	}
	return ModuleLogger(provider, commandsPrefix+"."+command)
}

// WithMarkdownContext attaches the source path and engine name. Blank values
// are skipped.
func WithMarkdownContext(logger interfaces.Logger, path, engine string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		fields[FieldMarkdownPath] = trimmed
	}
	if trimmed := strings.TrimSpace(engine); trimmed != "" {
		fields[FieldEngine] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
