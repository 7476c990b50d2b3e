package notemaker

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/reverso-notes/internal/domain"
)

// Column separators expected by the Anki note type.
const (
	clozeSeparator     = "\n\n"
	hintSeparator      = " | "
	frequencySeparator = "; "
)

// ToRow renders a note as one output row:
// query, clozes, hints, frequencies.
func ToRow(note domain.Note) []string {
	return []string{
		note.Query,
		strings.Join(note.ClozeTexts, clozeSeparator),
		strings.Join(note.Hints, hintSeparator),
		FormatFrequencies(note.Frequencies),
	}
}

// FormatFrequencies renders translations for the back of the card.
// The top translation is bold on its own line; the rest follow as
// "text (ratio)" where ratio is relative to the top frequency, e.g.
//
//	<b>cat</b></br>kitty (0.25); pussy (0.12)
func FormatFrequencies(freqs []domain.TranslationCandidate) string {
	if len(freqs) == 0 {
		return ""
	}
	top := freqs[0].Frequency

	rest := make([]string, 0, len(freqs)-1)
	for _, f := range freqs[1:] {
		ratio := 0.0
		if top > 0 {
			ratio = float64(f.Frequency) / float64(top)
		}
		rest = append(rest, fmt.Sprintf("%s (%.2f)", f.Text, ratio))
	}

	return fmt.Sprintf("<b>%s</b></br>", freqs[0].Text) + strings.Join(rest, frequencySeparator)
}
