package reverso

import (
	"html"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/heartmarshall/reverso-notes/internal/domain"
)

const (
	emOpen  = "<em>"
	emClose = "</em>"
)

// parseHighlighted strips the <em> markers from s, unescapes HTML entities
// and returns the plain text with the marked ranges as rune offsets.
// Marked ranges separated only by whitespace are merged, so a phrase match
// like "<em>big</em> <em>cat</em>" becomes a single span.
func parseHighlighted(s string) domain.Sentence {
	var (
		b     strings.Builder
		spans []domain.Span
		pos   int
		start = -1
	)

	write := func(seg string) {
		seg = html.UnescapeString(seg)
		b.WriteString(seg)
		pos += utf8.RuneCountInString(seg)
	}

	for s != "" {
		tag, i := nextTag(s)
		if i < 0 {
			write(s)
			break
		}
		write(s[:i])
		s = s[i+len(tag):]

		switch {
		case tag == emOpen && start < 0:
			start = pos
		case tag == emClose && start >= 0:
			spans = append(spans, domain.Span{Start: start, End: pos})
			start = -1
		}
	}
	// An unclosed marker runs to the end of the sentence.
	if start >= 0 {
		spans = append(spans, domain.Span{Start: start, End: pos})
	}

	text := b.String()
	return domain.Sentence{Text: text, Highlighted: mergeAdjacent([]rune(text), spans)}
}

// nextTag finds the earliest <em> or </em> in s.
func nextTag(s string) (string, int) {
	open := strings.Index(s, emOpen)
	closing := strings.Index(s, emClose)
	switch {
	case open < 0 && closing < 0:
		return "", -1
	case closing < 0 || (open >= 0 && open < closing):
		return emOpen, open
	default:
		return emClose, closing
	}
}

func mergeAdjacent(text []rune, spans []domain.Span) []domain.Span {
	if len(spans) < 2 {
		return spans
	}
	out := []domain.Span{spans[0]}
	for _, sp := range spans[1:] {
		last := &out[len(out)-1]
		if onlySpace(text[last.End:sp.Start]) {
			last.End = sp.End
			continue
		}
		out = append(out, sp)
	}
	return out
}

func onlySpace(rs []rune) bool {
	for _, r := range rs {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
