package domain

import "strings"

// Cloze markers understood by the Anki importer. Do not change.
const (
	clozeOpen  = "{{c1::"
	clozeClose = "}}"
)

// splitAtSpan partitions text around the first highlighted span.
func splitAtSpan(text string, spans []Span) (prefix, highlighted, suffix string, err error) {
	if len(spans) == 0 {
		return "", "", "", &SpanError{Empty: true}
	}
	runes := []rune(text)
	sp := spans[0]
	if sp.Start < 0 || sp.Start > sp.End || sp.End > len(runes) {
		return "", "", "", &SpanError{Start: sp.Start, End: sp.End, Len: len(runes)}
	}
	return string(runes[:sp.Start]), string(runes[sp.Start:sp.End]), string(runes[sp.End:]), nil
}

// ExtractHighlighted returns the text covered by the first span.
// It fails with a *SpanError (ErrSpanOutOfRange) when spans is empty or the
// span does not fit the text.
func ExtractHighlighted(text string, spans []Span) (string, error) {
	_, highlighted, _, err := splitAtSpan(text, spans)
	if err != nil {
		return "", err
	}
	return highlighted, nil
}

// BuildCloze wraps the first highlighted span of text in {{c1::...}}.
func BuildCloze(text string, spans []Span) (string, error) {
	prefix, highlighted, suffix, err := splitAtSpan(text, spans)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.Grow(len(text) + len(clozeOpen) + len(clozeClose))
	b.WriteString(prefix)
	b.WriteString(clozeOpen)
	b.WriteString(highlighted)
	b.WriteString(clozeClose)
	b.WriteString(suffix)
	return b.String(), nil
}
