package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-sitemark/internal/validation"
)

var (
	ErrMarkdownEngineUnknown    = errors.New("sitemark config: markdown engine is invalid")
	ErrFrontMatterSchemaInvalid = errors.New("sitemark config: front matter schema is invalid")
	ErrLoggingProviderRequired  = errors.New("sitemark config: logging provider is required when logging feature is enabled")
	ErrLoggingProviderUnknown   = errors.New("sitemark config: logging provider is invalid")
	ErrLoggingLevelInvalid      = errors.New("sitemark config: logging level is invalid")
	ErrLoggingFormatInvalid     = errors.New("sitemark config: logging format is invalid")
	ErrCommandTimeoutInvalid    = errors.New("sitemark config: command timeout must be zero or positive")
)

// Engine names accepted by MarkdownConfig.Engine.
const (
	EngineNative     = "native"
	EngineGoldmark   = "goldmark"
	EngineGomarkdown = "gomarkdown"
)

// Config aggregates the settings used to build a sitemark module.
type Config struct {
	Markdown MarkdownConfig
	Features Features
	Logging  LoggingConfig
	Commands CommandsConfig
}

// Features toggles optional layers around the converter.
type Features struct {
	Logger   bool
	Commands bool
}

// MarkdownConfig selects the render engine and the pre/post processing done
// by the service.
type MarkdownConfig struct {
	Engine            string
	NormalizeSource   bool
	DeriveSlugs       bool
	Parser            MarkdownParserConfig
	FrontMatterSchema map[string]any
}

// MarkdownParserConfig mirrors interfaces.ParseOptions for runtime configuration.
type MarkdownParserConfig struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// CommandsConfig controls the command layer. A zero Timeout disables the
// per-command deadline.
type CommandsConfig struct {
	Timeout time.Duration
}

// DefaultConfig returns a config using the native engine with source
// normalisation and slug derivation switched on.
func DefaultConfig() Config {
	return Config{
		Markdown: MarkdownConfig{
			Engine:          EngineNative,
			NormalizeSource: true,
			DeriveSlugs:     true,
		},
		Features: Features{},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
		Commands: CommandsConfig{},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if engine := NormalizeEngine(cfg.Markdown.Engine); !isSupportedEngine(engine) {
		return fmt.Errorf("%w: %s", ErrMarkdownEngineUnknown, cfg.Markdown.Engine)
	}
	if err := validation.ValidateSchema(cfg.Markdown.FrontMatterSchema); err != nil {
		return fmt.Errorf("%w: %v", ErrFrontMatterSchemaInvalid, err)
	}
	if cfg.Commands.Timeout < 0 {
		return fmt.Errorf("%w: %s", ErrCommandTimeoutInvalid, cfg.Commands.Timeout)
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

// NormalizeEngine lower-cases and trims an engine name; blank selects native.
func NormalizeEngine(engine string) string {
	engine = strings.ToLower(strings.TrimSpace(engine))
	if engine == "" {
		return EngineNative
	}
	return engine
}

func isSupportedEngine(engine string) bool {
	switch engine {
	case EngineNative, EngineGoldmark, EngineGomarkdown:
		return true
	default:
		return false
	}
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
