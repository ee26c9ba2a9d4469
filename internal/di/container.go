package di

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-command/dispatcher"

	"github.com/goliatone/go-sitemark/internal/commands"
	markdowncmd "github.com/goliatone/go-sitemark/internal/commands/markdown"
	"github.com/goliatone/go-sitemark/internal/logging"
	"github.com/goliatone/go-sitemark/internal/logging/console"
	"github.com/goliatone/go-sitemark/internal/logging/gologger"
	"github.com/goliatone/go-sitemark/internal/markdown"
	"github.com/goliatone/go-sitemark/internal/runtimeconfig"
	"github.com/goliatone/go-sitemark/pkg/interfaces"
)

// Container wires the logger provider, the markdown service and the command
// handlers from a runtime config.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	parser         interfaces.MarkdownParser
	markdownSvc    interfaces.MarkdownService

	commandRegistry markdowncmd.CommandRegistry
	dispatch        bool
	handlers        *markdowncmd.HandlerSet
	unsubscribe     []func()
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the provider built from Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		if provider != nil {
			c.loggerProvider = provider
		}
	}
}

// WithMarkdownParser replaces the engine named by Config.Markdown.Engine.
func WithMarkdownParser(parser interfaces.MarkdownParser) Option {
	return func(c *Container) {
		if parser != nil {
			c.parser = parser
		}
	}
}

// WithMarkdownService replaces the markdown service entirely.
func WithMarkdownService(svc interfaces.MarkdownService) Option {
	return func(c *Container) {
		if svc != nil {
			c.markdownSvc = svc
		}
	}
}

// WithCommandRegistry registers the markdown command handlers on reg.
func WithCommandRegistry(reg markdowncmd.CommandRegistry) Option {
	return func(c *Container) {
		c.commandRegistry = reg
	}
}

// WithDispatcher subscribes the markdown command handlers to the go-command
// dispatcher. Call Close to remove the subscriptions.
func WithDispatcher() Option {
	return func(c *Container) {
		c.dispatch = true
	}
}

// NewContainer validates cfg and builds every configured component.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLoggerProvider(); err != nil {
		return nil, err
	}
	if err := c.configureMarkdown(); err != nil {
		return nil, err
	}
	if err := c.configureCommands(); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider != nil || !c.Config.Features.Logger {
		return nil
	}

	switch strings.ToLower(strings.TrimSpace(c.Config.Logging.Provider)) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     c.Config.Logging.Level,
			Format:    c.Config.Logging.Format,
			AddSource: c.Config.Logging.AddSource,
			Focus:     c.Config.Logging.Focus,
		})
		if err != nil {
			return fmt.Errorf("di: configure go-logger provider: %w", err)
		}
		c.loggerProvider = provider
	default:
		opts := console.Options{}
		if name := strings.TrimSpace(c.Config.Logging.Level); name != "" {
			level, err := console.ParseLevel(name)
			if err != nil {
				return fmt.Errorf("di: configure console provider: %w", err)
			}
			opts.MinLevel = &level
		}
		c.loggerProvider = console.NewProvider(opts)
	}
	return nil
}

func (c *Container) configureMarkdown() error {
	logger := logging.MarkdownLogger(c.loggerProvider)
	if c.markdownSvc != nil {
		logger.Debug("markdown.service.configured", "engine", "custom")
		return nil
	}

	md := c.Config.Markdown
	svcOpts := []markdown.ServiceOption{markdown.WithLogger(logger)}
	if c.parser != nil {
		svcOpts = append(svcOpts, markdown.WithParser(c.parser))
	}

	svc, err := markdown.NewService(markdown.Config{
		Engine:          md.Engine,
		NormalizeSource: md.NormalizeSource,
		DeriveSlugs:     md.DeriveSlugs,
		Parser: interfaces.ParseOptions{
			Extensions: append([]string(nil), md.Parser.Extensions...),
			Sanitize:   md.Parser.Sanitize,
			HardWraps:  md.Parser.HardWraps,
			SafeMode:   md.Parser.SafeMode,
		},
		FrontMatterSchema: md.FrontMatterSchema,
	}, svcOpts...)
	if err != nil {
		return err
	}
	c.markdownSvc = svc

	logger.Debug("markdown.service.configured", "engine", svc.Engine())
	return nil
}

func (c *Container) configureCommands() error {
	if !c.Config.Features.Commands {
		return nil
	}

	gates := markdowncmd.FeatureGates{
		CommandsEnabled: func() bool { return c.Config.Features.Commands },
	}
	timeout := c.Config.Commands.Timeout

	set, err := markdowncmd.RegisterMarkdownCommands(c.commandRegistry, c.markdownSvc, c.loggerProvider,
		markdowncmd.WithFeatureGates(gates),
		markdowncmd.WithRenderHandlerOptions(commands.WithTimeout[markdowncmd.RenderMarkdownCommand](timeout)),
		markdowncmd.WithRenderDocumentHandlerOptions(commands.WithTimeout[markdowncmd.RenderDocumentCommand](timeout)),
	)
	if err != nil {
		return fmt.Errorf("di: register markdown commands: %w", err)
	}
	c.handlers = set

	if c.dispatch {
		render := dispatcher.SubscribeCommand(set.Render)
		document := dispatcher.SubscribeCommand(set.RenderDocument)
		c.unsubscribe = append(c.unsubscribe, render.Unsubscribe, document.Unsubscribe)
	}

	logging.ModuleLogger(c.loggerProvider, "sitemark.commands").Info("commands.configured",
		"registry", c.commandRegistry != nil,
		"dispatcher", c.dispatch,
		"timeout", timeout.String(),
	)
	return nil
}

// LoggerProvider returns the configured provider, nil when logging is off.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// MarkdownService returns the render service.
func (c *Container) MarkdownService() interfaces.MarkdownService {
	return c.markdownSvc
}

// CommandHandlers returns the markdown handlers, nil when commands are off.
func (c *Container) CommandHandlers() *markdowncmd.HandlerSet {
	return c.handlers
}

// Close removes dispatcher subscriptions. It is safe to call more than once.
func (c *Container) Close() {
	if c == nil {
		return
	}
	for _, fn := range c.unsubscribe {
		fn()
	}
	c.unsubscribe = nil
}
