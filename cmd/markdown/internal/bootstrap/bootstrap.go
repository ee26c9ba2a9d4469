package bootstrap

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goliatone/go-sitemark"
	"github.com/goliatone/go-sitemark/internal/logging"
	"github.com/goliatone/go-sitemark/internal/logging/console"
	"github.com/goliatone/go-sitemark/pkg/interfaces"
)

// Options captures configuration for markdown CLI bootstraps.
type Options struct {
	Engine         string
	LogLevel       string
	LogWriter      io.Writer
	HardWraps      bool
	Extensions     []string
	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the sitemark module with its render service, handlers and logger.
type Module struct {
	Module   *sitemark.Module
	Service  interfaces.MarkdownService
	Handlers *sitemark.CommandHandlers
	Logger   interfaces.Logger
}

// BuildModule constructs a module with the command layer switched on. Logs go
// to LogWriter (stderr by default) only when LogLevel is set.
func BuildModule(opts Options) (*Module, error) {
	cfg := sitemark.DefaultConfig()
	cfg.Features.Commands = true
	if engine := strings.TrimSpace(opts.Engine); engine != "" {
		cfg.Markdown.Engine = engine
	}
	cfg.Markdown.Parser.HardWraps = opts.HardWraps
	cfg.Markdown.Parser.Extensions = cloneStrings(opts.Extensions)

	provider := opts.LoggerProvider
	if provider == nil && strings.TrimSpace(opts.LogLevel) != "" {
		level, err := console.ParseLevel(opts.LogLevel)
		if err != nil {
			return nil, err
		}
		writer := opts.LogWriter
		if writer == nil {
			writer = os.Stderr
		}
		provider = console.NewProvider(console.Options{Writer: writer, MinLevel: &level})
	}

	var diOpts []sitemark.Option
	if provider != nil {
		cfg.Features.Logger = true
		diOpts = append(diOpts, sitemark.WithLoggerProvider(provider))
	}

	module, err := sitemark.New(cfg, diOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise sitemark module: %w", err)
	}

	service := module.Markdown()
	if service == nil {
		return nil, fmt.Errorf("markdown service not configured")
	}

	return &Module{
		Module:   module,
		Service:  service,
		Handlers: module.Commands(),
		Logger:   logging.ModuleLogger(module.Container().LoggerProvider(), "sitemark.cli"),
	}, nil
}

// SplitList parses a comma separated list into a trimmed slice.
func SplitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func cloneStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}
