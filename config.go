package sitemark

import "github.com/goliatone/go-sitemark/internal/runtimeconfig"

var (
	ErrMarkdownEngineUnknown    = runtimeconfig.ErrMarkdownEngineUnknown
	ErrFrontMatterSchemaInvalid = runtimeconfig.ErrFrontMatterSchemaInvalid
	ErrLoggingProviderRequired  = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown   = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid      = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid     = runtimeconfig.ErrLoggingFormatInvalid
	ErrCommandTimeoutInvalid    = runtimeconfig.ErrCommandTimeoutInvalid
)

type (
	Config               = runtimeconfig.Config
	Features             = runtimeconfig.Features
	MarkdownConfig       = runtimeconfig.MarkdownConfig
	MarkdownParserConfig = runtimeconfig.MarkdownParserConfig
	LoggingConfig        = runtimeconfig.LoggingConfig
	CommandsConfig       = runtimeconfig.CommandsConfig
)

// Engine names accepted by MarkdownConfig.Engine.
const (
	EngineNative     = runtimeconfig.EngineNative
	EngineGoldmark   = runtimeconfig.EngineGoldmark
	EngineGomarkdown = runtimeconfig.EngineGomarkdown
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
