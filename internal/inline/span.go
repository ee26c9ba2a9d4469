package inline

// Kind identifies the styling applied to a span of inline text.
type Kind uint8

const (
	Plain Kind = iota
	Bold
	Italic
	Code
	Link
	Image
)

// String returns the lower case kind name.
func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Code:
		return "code"
	case Link:
		return "link"
	case Image:
		return "image"
	default:
		return "unknown"
	}
}

// HasTarget reports whether spans of this kind carry a destination URL.
func (k Kind) HasTarget() bool {
	return k == Link || k == Image
}

// Span is a run of inline text. For Link and Image spans Text holds the label
// or alt text and Target the URL; Target is empty for every other kind.
type Span struct {
	Kind   Kind
	Text   string
	Target string
}

// NewSpan returns a span of kind without a target.
func NewSpan(kind Kind, text string) Span {
	return Span{Kind: kind, Text: text}
}

// NewTarget returns a Link or Image span.
func NewTarget(kind Kind, text, target string) Span {
	return Span{Kind: kind, Text: text, Target: target}
}
