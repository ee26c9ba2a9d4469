package commands

import (
	"github.com/goliatone/go-sitemark/internal/logging"
	"github.com/goliatone/go-sitemark/pkg/interfaces"
)

// CommandLogger returns the logger for a command group such as "markdown",
// tagged with component=command.
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	logger := logging.CommandLogger(provider, module)
	return logging.WithFields(logger, map[string]any{
		"component":      "command",
		"command_module": module,
	})
}

// EnsureLogger returns logger, or a no-op logger when nil.
func EnsureLogger(logger interfaces.Logger) interfaces.Logger {
	if logger == nil {
		return logging.NoOp()
	}
	return logger
}
