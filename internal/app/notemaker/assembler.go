package notemaker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/reverso-notes/internal/domain"
)

// AssembleStats counts per-example problems that did not stop the note.
type AssembleStats struct {
	HintErrors  int
	ClozeErrors int
}

// Assembler turns a lookup result into a Note.
type Assembler struct {
	log            *slog.Logger
	selector       ExampleSelector
	threshold      float64
	maxFrequencies int
}

// NewAssembler creates an Assembler.
func NewAssembler(log *slog.Logger, selector ExampleSelector, threshold float64, maxFrequencies int) *Assembler {
	return &Assembler{
		log:            log,
		selector:       selector,
		threshold:      threshold,
		maxFrequencies: maxFrequencies,
	}
}

// Assemble builds the note for query from res. The returned note may have no
// cloze texts; callers must not emit it in that case.
//
// A source sentence whose span is unusable drops the whole example. A target
// sentence whose span is unusable drops only the hint.
func (a *Assembler) Assemble(ctx context.Context, query string, res *domain.LookupResult) (domain.Note, AssembleStats, error) {
	var stats AssembleStats
	note := domain.Note{Query: query}
	if res == nil {
		return note, stats, nil
	}

	note.Frequencies = capFrequencies(FilterByFrequency(res.Translations, a.threshold), a.maxFrequencies)

	for i, ex := range a.selector.Select(res.Examples) {
		cloze, err := domain.BuildCloze(ex.Source.Text, ex.Source.Highlighted)
		if err != nil {
			if !errors.Is(err, domain.ErrSpanOutOfRange) {
				return note, stats, fmt.Errorf("cloze for example %d: %w", i, err)
			}
			stats.ClozeErrors++
			a.log.WarnContext(ctx, "cloze failed, example dropped",
				slog.String("query", query),
				slog.Int("example", i),
				slog.String("error", err.Error()),
			)
			continue
		}
		note.ClozeTexts = append(note.ClozeTexts, cloze)

		// Hints are not colocated with their sentence on the card, so a
		// missing one only shortens the list.
		hint, err := domain.ExtractHighlighted(ex.Target.Text, ex.Target.Highlighted)
		if err != nil {
			if !errors.Is(err, domain.ErrSpanOutOfRange) {
				return note, stats, fmt.Errorf("hint for example %d: %w", i, err)
			}
			stats.HintErrors++
			a.log.WarnContext(ctx, "hint failed",
				slog.String("query", query),
				slog.Int("example", i),
				slog.String("error", err.Error()),
			)
			continue
		}
		note.Hints = append(note.Hints, hint)
	}

	return note, stats, nil
}
