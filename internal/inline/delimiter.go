package inline

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnmatchedDelimiter is returned when a plain span holds an odd number of
// occurrences of a delimiter.
var ErrUnmatchedDelimiter = errors.New("inline: unmatched delimiter")

// SplitDelimiter splits every Plain span on delimiter. Text between a pair of
// delimiters becomes a span of kind; everything else stays Plain. Non-Plain
// spans pass through unchanged and empty segments are dropped.
func SplitDelimiter(spans []Span, delimiter string, kind Kind) ([]Span, error) {
	out := make([]Span, 0, len(spans))
	for _, span := range spans {
		if span.Kind != Plain {
			out = append(out, span)
			continue
		}
		split, err := splitText(span.Text, delimiter, kind)
		if err != nil {
			return nil, err
		}
		out = append(out, split...)
	}
	return out, nil
}

func splitText(text, delimiter string, kind Kind) ([]Span, error) {
	if delimiter == "" {
		return []Span{NewSpan(Plain, text)}, nil
	}
	if strings.Count(text, delimiter)%2 != 0 {
		return nil, fmt.Errorf("%w %q in %q", ErrUnmatchedDelimiter, delimiter, text)
	}

	segments := strings.Split(text, delimiter)
	out := make([]Span, 0, len(segments))
	for i, segment := range segments {
		if segment == "" {
			continue
		}
		if i%2 == 0 {
			out = append(out, NewSpan(Plain, segment))
		} else {
			out = append(out, NewSpan(kind, segment))
		}
	}
	return out, nil
}
