package validation

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestCompileSchemaEmptyAcceptsEverything(t *testing.T) {
	schema, err := CompileSchema(nil)
	if err != nil {
		t.Fatalf("CompileSchema: %v", err)
	}
	if schema != nil {
		t.Fatalf("expected nil schema, got %#v", schema)
	}
	if err := schema.Validate("a.md", map[string]any{"anything": 1}); err != nil {
		t.Fatalf("expected nil schema to accept input, got %v", err)
	}
}

func TestCompileSchemaRejectsInvalidDefinition(t *testing.T) {
	_, err := CompileSchema(map[string]any{"type": 12})
	if !errors.Is(err, ErrSchemaInvalid) {
		t.Fatalf("expected ErrSchemaInvalid, got %v", err)
	}
	if err := ValidateSchema(map[string]any{"type": "object"}); err != nil {
		t.Fatalf("expected valid schema, got %v", err)
	}
}

func TestShortFormRequiresFields(t *testing.T) {
	schema, err := CompileSchema(map[string]any{
		"fields": []any{
			map[string]any{"name": "title", "type": "string", "required": true},
			map[string]any{"name": "tags", "type": "array"},
			"draft",
		},
	})
	if err != nil {
		t.Fatalf("CompileSchema: %v", err)
	}

	err = schema.Validate("posts/a.md", map[string]any{"tags": []string{"go"}})
	if !errors.Is(err, ErrFrontMatterInvalid) {
		t.Fatalf("expected ErrFrontMatterInvalid, got %v", err)
	}
	if !strings.Contains(err.Error(), "posts/a.md") {
		t.Fatalf("expected path in error, got %q", err.Error())
	}
	if issues := Issues(err); len(issues) == 0 {
		t.Fatalf("expected issues, got none")
	}

	valid := map[string]any{
		"title": "Hello",
		"tags":  []string{"go", "markdown"},
		"date":  time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		"extra": map[any]any{"nested": true},
	}
	if err := schema.Validate("posts/a.md", valid); err != nil {
		t.Fatalf("expected valid front matter, got %v", err)
	}
}

func TestJSONSchemaTypeMismatch(t *testing.T) {
	schema, err := CompileSchema(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"draft": map[string]any{"type": "boolean"},
		},
	})
	if err != nil {
		t.Fatalf("CompileSchema: %v", err)
	}

	err = schema.Validate("", map[string]any{"draft": "yes"})
	issues := Issues(err)
	if len(issues) != 1 {
		t.Fatalf("expected one issue, got %#v", issues)
	}
	if !strings.HasSuffix(issues[0].Location, "/draft") {
		t.Fatalf("expected draft location, got %q", issues[0].Location)
	}
}

func TestNormalizeSchemaAdditionalProperties(t *testing.T) {
	normalized := NormalizeSchema(map[string]any{
		"fields":               []any{"title"},
		"additionalProperties": false,
	})
	if normalized["additionalProperties"] != false {
		t.Fatalf("expected additionalProperties override, got %#v", normalized)
	}
	if _, ok := normalized["required"]; ok {
		t.Fatalf("expected no required list, got %#v", normalized["required"])
	}
	if NormalizeSchema(map[string]any{"unrelated": 1}) != nil {
		t.Fatal("expected nil for definitions without fields")
	}
}
