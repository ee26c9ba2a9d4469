package logging

import (
	"context"
	"testing"

	"github.com/goliatone/go-sitemark/pkg/interfaces"
)

type recordingLogger struct {
	fields   []map[string]any
	contexts []context.Context
}

func (r *recordingLogger) Trace(string, ...any) {}
func (r *recordingLogger) Debug(string, ...any) {}
func (r *recordingLogger) Info(string, ...any)  {}
func (r *recordingLogger) Warn(string, ...any)  {}
func (r *recordingLogger) Error(string, ...any) {}
func (r *recordingLogger) Fatal(string, ...any) {}

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	r.fields = append(r.fields, copied)
	return r
}

func (r *recordingLogger) WithContext(ctx context.Context) interfaces.Logger {
	r.contexts = append(r.contexts, ctx)
	return r
}

type stubProvider struct {
	requested []string
	logger    interfaces.Logger
}

func (s *stubProvider) GetLogger(name string) interfaces.Logger {
	s.requested = append(s.requested, name)
	return s.logger
}

func TestModuleLoggerFallsBackToNoOp(t *testing.T) {
	logger := ModuleLogger(nil, "sitemark.test")
	if _, ok := logger.(noopLogger); !ok {
		t.Fatalf("expected noopLogger fallback, got %T", logger)
	}
	logger = logger.WithContext(context.Background())
	logger.Debug("noop")

	nilProvider := &stubProvider{}
	if _, ok := ModuleLogger(nilProvider, markdownModule).(noopLogger); !ok {
		t.Fatalf("expected noopLogger when provider returns nil")
	}
}

func TestModuleLoggerUsesProviderAndAnnotatesFields(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	MarkdownLogger(provider).Info("with provider")

	if len(provider.requested) != 1 || provider.requested[0] != markdownModule {
		t.Fatalf("expected module %s, got %v", markdownModule, provider.requested)
	}
	if len(rec.fields) != 1 {
		t.Fatalf("expected module fields to be applied once, got %d", len(rec.fields))
	}
	if got := rec.fields[0][FieldModule]; got != markdownModule {
		t.Fatalf("expected module field %s, got %v", markdownModule, got)
	}
}

func TestModuleLoggerDefaultsToRootModule(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	_ = ModuleLogger(provider, "")

	if len(provider.requested) != 1 || provider.requested[0] != rootModule {
		t.Fatalf("expected default module %s, got %v", rootModule, provider.requested)
	}
}

func TestCommandLoggerNamespaces(t *testing.T) {
	cases := map[string]string{
		"markdown.render":  "sitemark.commands.markdown.render",
		" .markdown.doc. ": "sitemark.commands.markdown.doc",
		"":                 commandsPrefix,
	}
	for input, want := range cases {
		provider := &stubProvider{logger: &recordingLogger{}}
		_ = CommandLogger(provider, input)
		if len(provider.requested) != 1 || provider.requested[0] != want {
			t.Fatalf("CommandLogger(%q): expected %s, got %v", input, want, provider.requested)
		}
	}
}

func TestWithMarkdownContextSkipsBlankValues(t *testing.T) {
	rec := &recordingLogger{}

	WithMarkdownContext(rec, " docs/intro.md ", "")
	if len(rec.fields) != 1 {
		t.Fatalf("expected one WithFields call, got %d", len(rec.fields))
	}
	if rec.fields[0][FieldMarkdownPath] != "docs/intro.md" {
		t.Fatalf("expected trimmed path, got %v", rec.fields[0][FieldMarkdownPath])
	}
	if _, ok := rec.fields[0][FieldEngine]; ok {
		t.Fatalf("blank engine should not be attached: %v", rec.fields[0])
	}

	WithMarkdownContext(rec, "", "  ")
	if len(rec.fields) != 1 {
		t.Fatalf("expected no WithFields call for empty context, got %d", len(rec.fields))
	}
}

func TestContextWithFieldsMerges(t *testing.T) {
	ctx := ContextWithFields(context.Background(), map[string]any{"render_id": "a"})
	ctx = ContextWithFields(ctx, map[string]any{"command": "markdown.render"})

	fields := ContextFields(ctx)
	if fields["render_id"] != "a" || fields["command"] != "markdown.render" {
		t.Fatalf("expected merged fields, got %v", fields)
	}

	fields["render_id"] = "mutated"
	if ContextFields(ctx)["render_id"] != "a" {
		t.Fatalf("ContextFields must return a copy")
	}
}

func TestWithRenderID(t *testing.T) {
	rec := &recordingLogger{}

	WithRenderID(rec, "r-42")
	if len(rec.fields) != 1 || rec.fields[0][FieldRenderID] != "r-42" {
		t.Fatalf("expected render_id field, got %v", rec.fields)
	}

	if got := WithFields(noopLogger{}, nil); got != (noopLogger{}) {
		t.Fatalf("expected logger returned unchanged for empty fields, got %T", got)
	}
}

func TestContextWithFieldsIgnoresEmptyInput(t *testing.T) {
	ctx := context.Background()
	if ContextWithFields(ctx, nil) != ctx {
		t.Fatal("expected ctx unchanged for nil fields")
	}
	if ContextFields(ctx) != nil {
		t.Fatal("expected no fields on a bare context")
	}
}
