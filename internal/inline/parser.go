package inline

// delimiters are applied in order; each pass only sees Plain spans left by the
// previous one.
var delimiters = []struct {
	marker string
	kind   Kind
}{
	{marker: "**", kind: Bold},
	{marker: "_", kind: Italic},
	{marker: "`", kind: Code},
}

// Parse converts raw inline text into typed spans in source order. Delimiter
// splitting runs first, then image and link extraction over the remaining
// Plain spans. Empty spans are omitted, so an empty input yields no spans.
//
// Any unmatched delimiter aborts the whole parse with ErrUnmatchedDelimiter.
func Parse(text string) ([]Span, error) {
	spans := []Span{NewSpan(Plain, text)}

	var err error
	for _, d := range delimiters {
		spans, err = SplitDelimiter(spans, d.marker, d.kind)
		if err != nil {
			return nil, err
		}
	}

	spans = SplitImages(spans)
	spans = SplitLinks(spans)
	return spans, nil
}
