package markdown

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-sitemark/internal/htmlnode"
	"github.com/goliatone/go-sitemark/internal/inline"
	"github.com/goliatone/go-sitemark/internal/validation"
)

var (
	// ErrUnknownEngine is returned by NewParser for engine names it does not know.
	ErrUnknownEngine = errors.New("markdown: unknown engine")
	// ErrTitleNotFound is returned by ExtractTitle when no level 1 heading exists.
	ErrTitleNotFound = errors.New("markdown: no level 1 heading found")
	// ErrDocumentRequired is returned by RenderDocument for a nil document.
	ErrDocumentRequired = errors.New("markdown: document is required")
)

const (
	codeUnmatchedDelimiter = "MARKDOWN_UNMATCHED_DELIMITER"
	codeUnknownSpanKind    = "MARKDOWN_UNKNOWN_SPAN_KIND"
	codeMissingValue       = "HTML_MISSING_VALUE"
	codeMissingTag         = "HTML_MISSING_TAG"
	codeMissingChildren    = "HTML_MISSING_CHILDREN"
	codeRenderCanceled     = "MARKDOWN_RENDER_CANCELED"
	codeDocumentRequired   = "MARKDOWN_DOCUMENT_REQUIRED"
	codeSourceInvalid      = "MARKDOWN_SOURCE_INVALID"
	codeFrontMatterInvalid = "MARKDOWN_FRONTMATTER_INVALID"
	codeRenderFailed       = "MARKDOWN_RENDER_FAILED"
)

type classification struct {
	sentinel error
	category goerrors.Category
	code     string
	message  string
}

var classifications = []classification{
	{inline.ErrUnmatchedDelimiter, goerrors.CategoryValidation, codeUnmatchedDelimiter, "markdown has an unmatched inline delimiter"},
	{ErrDocumentRequired, goerrors.CategoryValidation, codeDocumentRequired, "markdown document is required"},
	{validation.ErrFrontMatterInvalid, goerrors.CategoryValidation, codeFrontMatterInvalid, "markdown front matter does not match schema"},
	{htmlnode.ErrMissingValue, goerrors.CategoryInternal, codeMissingValue, "html leaf is missing a value"},
	{htmlnode.ErrMissingTag, goerrors.CategoryInternal, codeMissingTag, "html parent is missing a tag"},
	{htmlnode.ErrMissingChildren, goerrors.CategoryInternal, codeMissingChildren, "html parent has no children"},
	{ErrUnknownSpanKind, goerrors.CategoryInternal, codeUnknownSpanKind, "inline span kind has no html mapping"},
	{context.Canceled, goerrors.CategoryCommand, codeRenderCanceled, "markdown render cancelled"},
	{context.DeadlineExceeded, goerrors.CategoryCommand, codeRenderCanceled, "markdown render deadline exceeded"},
}

// ErrorCode returns the text code render failures are tagged with.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range classifications {
		if errors.Is(err, c.sentinel) {
			return c.code
		}
	}
	return codeRenderFailed
}

// wrapRenderError tags err with a go-errors category and text code. Errors
// that are already wrapped pass through untouched.
func wrapRenderError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	for _, c := range classifications {
		if errors.Is(err, c.sentinel) {
			return goerrors.Wrap(err, c.category, c.message).WithTextCode(c.code)
		}
	}
	return goerrors.Wrap(err, goerrors.CategoryInternal, "markdown render failed").
		WithTextCode(codeRenderFailed)
}

func wrapSourceError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "markdown source could not be decoded").
		WithTextCode(codeSourceInvalid)
}
