package markdowncmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-sitemark/pkg/interfaces"
)

const (
	renderMarkdownMessageType = "sitemark.markdown.render"
	renderDocumentMessageType = "sitemark.markdown.render_document"
)

// ResultCallback receives the rendered output. It is optional and runs
// synchronously inside the handler.
type ResultCallback func(ResultEnvelope)

// ResultEnvelope carries the HTML produced by a render command.
type ResultEnvelope struct {
	HTML     string
	Document *interfaces.Document
	Metadata map[string]any
}

// RenderMarkdownCommand renders a markdown string.
type RenderMarkdownCommand struct {
	Markdown       string                  `json:"markdown"`
	Options        interfaces.ParseOptions `json:"options,omitempty"`
	ResultCallback ResultCallback          `json:"-"`
}

// Type implements command.Message.
func (RenderMarkdownCommand) Type() string { return renderMarkdownMessageType }

// Validate rejects blank markdown.
func (cmd RenderMarkdownCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Markdown, validation.Required, validation.By(notBlank(
			"sitemark.markdown.render.markdown_required", "markdown is required",
		))),
	)
}

// RenderDocumentCommand parses front matter from Source and renders the body.
// Path identifies the source in logs and on the resulting document.
type RenderDocumentCommand struct {
	Path           string                  `json:"path"`
	Source         []byte                  `json:"source"`
	Options        interfaces.ParseOptions `json:"options,omitempty"`
	ResultCallback ResultCallback          `json:"-"`
}

// Type implements command.Message.
func (RenderDocumentCommand) Type() string { return renderDocumentMessageType }

// Validate requires a path and a non-empty source.
func (cmd RenderDocumentCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(cmd.Path) == "" {
		errs["path"] = validation.NewError("sitemark.markdown.render_document.path_required", "path is required")
	}
	if len(cmd.Source) == 0 {
		errs["source"] = validation.NewError("sitemark.markdown.render_document.source_required", "source is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func notBlank(code, message string) validation.RuleFunc {
	return func(value any) error {
		if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
			return validation.NewError(code, message)
		}
		return nil
	}
}
