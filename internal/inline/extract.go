package inline

import "regexp"

// Label and URL captures are non-greedy and stop at the first closing bracket
// or paren. Nested brackets are not supported.
var (
	imagePattern = regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`)
	linkPattern  = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
)

// Reference is a label/URL pair extracted from image or link syntax.
type Reference struct {
	Label string
	URL   string
}

type match struct {
	start int
	end   int
	ref   Reference
}

// ExtractImages returns every `![alt](url)` reference in text, in source order.
func ExtractImages(text string) []Reference {
	return references(findImages(text))
}

// ExtractLinks returns every `[label](url)` reference in text that is not
// immediately preceded by `!`, in source order.
func ExtractLinks(text string) []Reference {
	return references(findLinks(text))
}

// SplitImages replaces image syntax inside Plain spans with Image spans.
func SplitImages(spans []Span) []Span {
	return splitMatches(spans, Image, findImages)
}

// SplitLinks replaces link syntax inside Plain spans with Link spans.
func SplitLinks(spans []Span) []Span {
	return splitMatches(spans, Link, findLinks)
}

func splitMatches(spans []Span, kind Kind, find func(string) []match) []Span {
	out := make([]Span, 0, len(spans))
	for _, span := range spans {
		if span.Kind != Plain {
			out = append(out, span)
			continue
		}

		matches := find(span.Text)
		if len(matches) == 0 {
			out = append(out, span)
			continue
		}

		pos := 0
		for _, m := range matches {
			if m.start > pos {
				out = append(out, NewSpan(Plain, span.Text[pos:m.start]))
			}
			out = append(out, NewTarget(kind, m.ref.Label, m.ref.URL))
			pos = m.end
		}
		if pos < len(span.Text) {
			out = append(out, NewSpan(Plain, span.Text[pos:]))
		}
	}
	return out
}

func findImages(text string) []match {
	var out []match
	for pos := 0; pos < len(text); {
		loc := imagePattern.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			break
		}
		out = append(out, newMatch(text, pos, loc))
		pos += loc[1]
	}
	return out
}

// findLinks emulates a negative lookbehind for `!`, which RE2 lacks: a
// candidate preceded by `!` is skipped and the scan resumes one byte later.
func findLinks(text string) []match {
	var out []match
	for pos := 0; pos < len(text); {
		loc := linkPattern.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			break
		}
		start := pos + loc[0]
		if start > 0 && text[start-1] == '!' {
			pos = start + 1
			continue
		}
		out = append(out, newMatch(text, pos, loc))
		pos += loc[1]
	}
	return out
}

func newMatch(text string, offset int, loc []int) match {
	return match{
		start: offset + loc[0],
		end:   offset + loc[1],
		ref: Reference{
			Label: text[offset+loc[2] : offset+loc[3]],
			URL:   text[offset+loc[4] : offset+loc[5]],
		},
	}
}

func references(matches []match) []Reference {
	if len(matches) == 0 {
		return nil
	}
	out := make([]Reference, len(matches))
	for i, m := range matches {
		out[i] = m.ref
	}
	return out
}
