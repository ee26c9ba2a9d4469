package markdown

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-sitemark/internal/inline"
	"github.com/goliatone/go-sitemark/pkg/interfaces"
)

func TestParseFrontMatter(t *testing.T) {
	data := readFixture(t, "testdata/basic.md")

	fm, body, err := ParseFrontMatter(data)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	if fm.Title != "Sample Document" {
		t.Fatalf("FrontMatter Title mismatch, got %q", fm.Title)
	}
	if fm.Slug != "sample-document" {
		t.Fatalf("FrontMatter Slug mismatch, got %q", fm.Slug)
	}
	if len(fm.Tags) != 2 || fm.Tags[0] != "sitemark" {
		t.Fatalf("FrontMatter Tags mismatch: %#v", fm.Tags)
	}
	if fm.Custom["custom_flag"] != true {
		t.Fatalf("FrontMatter Custom flag missing: %#v", fm.Custom)
	}
	if fm.Raw["summary"] != "Sample summary goes here" {
		t.Fatalf("FrontMatter Raw summary missing: %#v", fm.Raw)
	}
	if !strings.HasPrefix(strings.TrimSpace(string(body)), "# Sample Document") {
		t.Fatalf("Markdown body not returned correctly: %q", string(body))
	}
}

func TestParseFrontMatterWithoutMetadata(t *testing.T) {
	fm, body, err := ParseFrontMatter([]byte("# Plain\n\ntext"))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if fm.Title != "" || len(fm.Custom) != 0 {
		t.Fatalf("expected empty front matter, got %#v", fm)
	}
	if string(body) != "# Plain\n\ntext" {
		t.Fatalf("expected body to be the whole input, got %q", string(body))
	}
}

func TestBuildDocument(t *testing.T) {
	data := readFixture(t, "testdata/basic.md")

	doc, err := BuildDocument("testdata/basic.md", data)
	if err != nil {
		t.Fatalf("BuildDocument: %v", err)
	}

	if doc.FilePath != "testdata/basic.md" {
		t.Fatalf("expected FilePath to be set, got %q", doc.FilePath)
	}
	if len(doc.Body) == 0 {
		t.Fatalf("expected Body to contain markdown content")
	}
	if len(doc.BodyHTML) != 0 {
		t.Fatalf("expected BodyHTML to stay empty until rendered")
	}
}

func TestNativeParserIgnoresOptions(t *testing.T) {
	parser := NewNativeParser()

	plain, err := parser.Parse([]byte("line one\nline two"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	withOpts, err := parser.ParseWithOptions([]byte("line one\nline two"), interfaces.ParseOptions{
		HardWraps:  true,
		SafeMode:   true,
		Extensions: []string{"gfm"},
	})
	if err != nil {
		t.Fatalf("ParseWithOptions: %v", err)
	}
	if string(plain) != string(withOpts) {
		t.Fatalf("expected options to be ignored, got %q vs %q", plain, withOpts)
	}
	if string(plain) != "<div><p>line one\nline two</p></div>" {
		t.Fatalf("unexpected html %q", plain)
	}
}

func TestNativeParserSurfacesCoreErrors(t *testing.T) {
	_, err := NewNativeParser().Parse([]byte("_open"))
	if !errors.Is(err, inline.ErrUnmatchedDelimiter) {
		t.Fatalf("expected ErrUnmatchedDelimiter, got %v", err)
	}
}

func TestGoldmarkParser_Parse(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.Parse([]byte("# Heading\n\nHello **world**"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	got := string(html)
	if !strings.Contains(got, "<h1") || !strings.Contains(got, "Heading</h1>") {
		t.Fatalf("expected rendered HTML to include <h1>Heading</h1>, got %q", got)
	}
	if !strings.Contains(got, "<strong>world</strong>") {
		t.Fatalf("expected rendered HTML to include <strong>, got %q", got)
	}
}

func TestGoldmarkParser_ParseWithOptions(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.ParseWithOptions([]byte("line one\nline two"), interfaces.ParseOptions{
		HardWraps: true,
	})
	if err != nil {
		t.Fatalf("ParseWithOptions: %v", err)
	}
	if !strings.Contains(string(html), "line one<br>") {
		t.Fatalf("expected hard wraps in HTML output, got %q", string(html))
	}

	safe, err := parser.ParseWithOptions([]byte("text <span>raw</span>"), interfaces.ParseOptions{SafeMode: true})
	if err != nil {
		t.Fatalf("ParseWithOptions safe: %v", err)
	}
	if strings.Contains(string(safe), "<span>") {
		t.Fatalf("expected raw HTML to be omitted in safe mode, got %q", string(safe))
	}
}

func TestGomarkdownParser(t *testing.T) {
	parser := NewGomarkdownParser(interfaces.ParseOptions{})

	html, err := parser.Parse([]byte("# Heading\n\nHello **world**"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := string(html)
	if !strings.Contains(got, "Heading</h1>") || !strings.Contains(got, "<strong>world</strong>") {
		t.Fatalf("unexpected gomarkdown output %q", got)
	}

	wrapped, err := parser.ParseWithOptions([]byte("line one\nline two"), interfaces.ParseOptions{HardWraps: true})
	if err != nil {
		t.Fatalf("ParseWithOptions: %v", err)
	}
	if !strings.Contains(string(wrapped), "<br") {
		t.Fatalf("expected hard break, got %q", string(wrapped))
	}

	safe, err := parser.ParseWithOptions([]byte("text <span>raw</span>"), interfaces.ParseOptions{Sanitize: true})
	if err != nil {
		t.Fatalf("ParseWithOptions safe: %v", err)
	}
	if strings.Contains(string(safe), "<span>") {
		t.Fatalf("expected raw HTML to be skipped, got %q", string(safe))
	}
}

func TestNewParser(t *testing.T) {
	cases := map[string]string{
		"":           "markdown.NativeParser",
		"native":     "markdown.NativeParser",
		" GOLDMARK ": "*markdown.GoldmarkParser",
		"gomarkdown": "*markdown.GomarkdownParser",
	}
	for engine, want := range cases {
		parser, err := NewParser(engine, interfaces.ParseOptions{})
		if err != nil {
			t.Fatalf("NewParser(%q): %v", engine, err)
		}
		if got := typeName(parser); got != want {
			t.Fatalf("NewParser(%q): expected %s, got %s", engine, want, got)
		}
	}

	if _, err := NewParser("blackfriday", interfaces.ParseOptions{}); !errors.Is(err, ErrUnknownEngine) {
		t.Fatalf("expected ErrUnknownEngine, got %v", err)
	}
}

func TestEnginesSorted(t *testing.T) {
	got := strings.Join(Engines(), ",")
	if got != "gomarkdown,goldmark,native" {
		t.Fatalf("unexpected engines %s", got)
	}
}

func TestExtensionKeys(t *testing.T) {
	got := extensionKeys([]string{" GFM", "tables", "", "gfm", "Tables "})
	if strings.Join(got, ",") != "gfm,tables" {
		t.Fatalf("unexpected keys %v", got)
	}
}

func typeName(v any) string {
	switch v.(type) {
	case NativeParser:
		return "markdown.NativeParser"
	case *GoldmarkParser:
		return "*markdown.GoldmarkParser"
	case *GomarkdownParser:
		return "*markdown.GomarkdownParser"
	default:
		return "unknown"
	}
}
