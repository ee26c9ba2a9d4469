package di_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-command/dispatcher"

	"github.com/goliatone/go-sitemark/internal/commands/fixtures"
	markdowncmd "github.com/goliatone/go-sitemark/internal/commands/markdown"
	"github.com/goliatone/go-sitemark/internal/di"
	"github.com/goliatone/go-sitemark/internal/markdown"
	"github.com/goliatone/go-sitemark/internal/runtimeconfig"
	"github.com/goliatone/go-sitemark/pkg/interfaces"
)

type staticParser struct {
	calls int
}

func (p *staticParser) Parse(md []byte) ([]byte, error) {
	return p.ParseWithOptions(md, interfaces.ParseOptions{})
}

func (p *staticParser) ParseWithOptions([]byte, interfaces.ParseOptions) ([]byte, error) {
	p.calls++
	return []byte("<p>static</p>"), nil
}

func TestNewContainerRejectsInvalidConfig(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Markdown.Engine = "blackfriday"

	if _, err := di.NewContainer(cfg); !errors.Is(err, runtimeconfig.ErrMarkdownEngineUnknown) {
		t.Fatalf("expected ErrMarkdownEngineUnknown, got %v", err)
	}
}

func TestNewContainerDefaultsRenderNativeDialect(t *testing.T) {
	container, err := di.NewContainer(runtimeconfig.DefaultConfig())
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}

	html, err := container.MarkdownService().RenderString(context.Background(), "# Title\n\nSome **bold** text")
	if err != nil {
		t.Fatalf("RenderString: %v", err)
	}
	want := "<div><h1>Title</h1><p>Some <b>bold</b> text</p></div>"
	if html != want {
		t.Fatalf("unexpected html\nwant %s\ngot  %s", want, html)
	}
	if container.CommandHandlers() != nil {
		t.Fatal("expected no command handlers when the feature is off")
	}
}

func TestNewContainerSelectsConfiguredEngine(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Markdown.Engine = "goldmark"

	container, err := di.NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}
	svc, ok := container.MarkdownService().(*markdown.Service)
	if !ok {
		t.Fatalf("expected *markdown.Service, got %T", container.MarkdownService())
	}
	if svc.Engine() != markdown.EngineGoldmark {
		t.Fatalf("expected goldmark engine, got %s", svc.Engine())
	}
}

func TestNewContainerUsesParserOverride(t *testing.T) {
	parser := &staticParser{}
	container, err := di.NewContainer(runtimeconfig.DefaultConfig(), di.WithMarkdownParser(parser))
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}

	html, err := container.MarkdownService().RenderString(context.Background(), "anything")
	if err != nil {
		t.Fatalf("RenderString: %v", err)
	}
	if html != "<p>static</p>" || parser.calls != 1 {
		t.Fatalf("expected override parser to render once, got %q (%d calls)", html, parser.calls)
	}
}

func TestNewContainerRegistersCommandHandlers(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Commands = true
	cfg.Commands.Timeout = time.Second

	reg := fixtures.NewRecordingRegistry()
	container, err := di.NewContainer(cfg, di.WithCommandRegistry(reg))
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}

	set := container.CommandHandlers()
	if set == nil {
		t.Fatal("expected command handlers")
	}
	if len(reg.Handlers) != 2 {
		t.Fatalf("expected 2 registered handlers, got %d", len(reg.Handlers))
	}

	var got string
	err = set.Render.Execute(context.Background(), markdowncmd.RenderMarkdownCommand{
		Markdown:       "- a\n- b",
		ResultCallback: func(env markdowncmd.ResultEnvelope) { got = env.HTML },
	})
	if err != nil {
		t.Fatalf("execute render: %v", err)
	}
	if got != "<div><ul><li>a</li><li>b</li></ul></div>" {
		t.Fatalf("unexpected html %q", got)
	}
}

func TestNewContainerPropagatesRegistryFailure(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Commands = true

	failure := errors.New("registry unavailable")
	reg := fixtures.NewRecordingRegistry()
	reg.Fail(failure)

	if _, err := di.NewContainer(cfg, di.WithCommandRegistry(reg)); !errors.Is(err, failure) {
		t.Fatalf("expected registry failure, got %v", err)
	}
}

func TestNewContainerSubscribesToDispatcher(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Commands = true

	container, err := di.NewContainer(cfg, di.WithDispatcher())
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}
	t.Cleanup(container.Close)

	var got string
	err = dispatcher.Dispatch(context.Background(), markdowncmd.RenderMarkdownCommand{
		Markdown:       "> quoted",
		ResultCallback: func(env markdowncmd.ResultEnvelope) { got = env.HTML },
	})
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if got != "<div><blockquote>quoted</blockquote></div>" {
		t.Fatalf("unexpected html %q", got)
	}
}
