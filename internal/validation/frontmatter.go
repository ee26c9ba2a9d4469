package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	ErrSchemaInvalid      = errors.New("validation: front matter schema invalid")
	ErrFrontMatterInvalid = errors.New("validation: front matter does not match schema")
)

const schemaResource = "frontmatter.schema.json"

// Issue captures a single validation failure.
type Issue struct {
	Location string
	Message  string
}

// FrontMatterError lists every schema violation found in one document.
type FrontMatterError struct {
	Path   string
	Issues []Issue
	Cause  error
}

func (e *FrontMatterError) Error() string {
	prefix := ErrFrontMatterInvalid.Error()
	if e.Path != "" {
		prefix = fmt.Sprintf("%s (%s)", prefix, e.Path)
	}
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return prefix + ": " + e.Cause.Error()
		}
		return prefix
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if location == "" {
			location = "#"
		} else if !strings.HasPrefix(location, "#") {
			location = "#" + location
		}
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return prefix + ": " + strings.Join(parts, "; ")
}

func (e *FrontMatterError) Unwrap() error {
	return ErrFrontMatterInvalid
}

// Issues extracts validation issues from err.
func Issues(err error) []Issue {
	if err == nil {
		return nil
	}
	var fmErr *FrontMatterError
	if errors.As(err, &fmErr) && fmErr != nil {
		return fmErr.Issues
	}
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) && validationErr != nil {
		return collectIssues(validationErr)
	}
	return []Issue{{Message: err.Error()}}
}

// Schema is a compiled front matter schema, safe for concurrent use.
type Schema struct {
	compiled *jsonschema.Schema
}

// CompileSchema accepts either a JSON Schema document or the short form
//
//	fields: [{name: title, type: string, required: true}, tags]
//
// An empty definition yields a nil Schema, which accepts everything.
func CompileSchema(definition map[string]any) (*Schema, error) {
	normalized := NormalizeSchema(definition)
	if normalized == nil {
		return nil, nil
	}
	compiled, err := compile(normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	return &Schema{compiled: compiled}, nil
}

// ValidateSchema reports whether definition compiles.
func ValidateSchema(definition map[string]any) error {
	_, err := CompileSchema(definition)
	return err
}

// Validate checks front matter for the document at path. A nil Schema
// accepts any front matter.
func (s *Schema) Validate(path string, frontMatter map[string]any) error {
	if s == nil || s.compiled == nil {
		return nil
	}

	payload, err := jsonValue(frontMatter)
	if err != nil {
		return &FrontMatterError{Path: path, Cause: err}
	}
	if err := s.compiled.Validate(payload); err != nil {
		return &FrontMatterError{
			Path:   path,
			Issues: Issues(err),
			Cause:  err,
		}
	}
	return nil
}

// NormalizeSchema converts a schema definition into a JSON schema.
func NormalizeSchema(definition map[string]any) map[string]any {
	if len(definition) == 0 {
		return nil
	}
	if isJSONSchema(definition) {
		return cloneMap(definition)
	}
	fields, ok := definition["fields"]
	if !ok {
		return nil
	}
	properties, required := normalizeFields(fields)
	if len(properties) == 0 {
		return nil
	}
	normalized := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if override, ok := definition["additionalProperties"].(bool); ok {
		normalized["additionalProperties"] = override
	}
	if len(required) > 0 {
		normalized["required"] = required
	}
	return normalized
}

func isJSONSchema(definition map[string]any) bool {
	for _, key := range []string{"$schema", "type", "properties", "oneOf", "anyOf", "allOf"} {
		if _, ok := definition[key]; ok {
			return true
		}
	}
	return false
}

func normalizeFields(fields any) (map[string]any, []any) {
	properties := make(map[string]any)
	required := make([]any, 0)

	switch typed := fields.(type) {
	case []any:
		for _, entry := range typed {
			switch field := entry.(type) {
			case map[string]any:
				addField(properties, &required, field)
			case string:
				addField(properties, &required, map[string]any{"name": field})
			}
		}
	case []map[string]any:
		for _, field := range typed {
			addField(properties, &required, field)
		}
	}

	return properties, required
}

func addField(properties map[string]any, required *[]any, field map[string]any) {
	name, _ := field["name"].(string)
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}

	switch {
	case field["schema"] != nil:
		if schema, ok := field["schema"].(map[string]any); ok {
			properties[name] = cloneMap(schema)
		} else {
			properties[name] = map[string]any{}
		}
	default:
		fieldType, _ := field["type"].(string)
		if jsonType := normalizeJSONType(fieldType); jsonType != "" {
			properties[name] = map[string]any{"type": jsonType}
		} else {
			properties[name] = map[string]any{}
		}
	}

	if flag, ok := field["required"].(bool); ok && flag {
		*required = append(*required, name)
	}
}

func normalizeJSONType(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	switch value {
	case "string", "number", "integer", "boolean", "object", "array", "null":
		return value
	default:
		return ""
	}
}

func cloneMap(input map[string]any) map[string]any {
	if input == nil {
		return nil
	}
	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = cloneValue(value)
	}
	return out
}

func cloneValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return cloneMap(typed)
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return value
	}
}

func compile(schema map[string]any) (*jsonschema.Schema, error) {
	encoded, err := json.Marshal(schema)
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(schemaResource, bytes.NewReader(encoded)); err != nil {
		return nil, err
	}
	return compiler.Compile(schemaResource)
}

// jsonValue turns decoded YAML/TOML front matter into the plain JSON shapes
// the validator understands. Keys of nested maps are stringified and times
// become RFC 3339 strings.
func jsonValue(frontMatter map[string]any) (any, error) {
	encoded, err := json.Marshal(plain(frontMatter))
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(encoded, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}

func plain(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			out[key] = plain(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			out[fmt.Sprint(key)] = plain(item)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = plain(item)
		}
		return out
	case time.Time:
		return typed.UTC().Format(time.RFC3339)
	default:
		return value
	}
}

func collectIssues(err *jsonschema.ValidationError) []Issue {
	issues := []Issue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, Issue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
