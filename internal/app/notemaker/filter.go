package notemaker

import "github.com/heartmarshall/reverso-notes/internal/domain"

// FilterByFrequency keeps the first candidate and every later candidate whose
// frequency is strictly above threshold * (first candidate's frequency).
// Candidates are expected in descending frequency order; order is preserved.
//
// Reverso's tail of translations is noisy, so a threshold of 0.1 drops
// anything seen less than 10% as often as the top translation.
func FilterByFrequency(candidates []domain.TranslationCandidate, threshold float64) []domain.TranslationCandidate {
	if len(candidates) == 0 {
		return nil
	}
	cutoff := float64(candidates[0].Frequency) * threshold

	out := make([]domain.TranslationCandidate, 0, len(candidates))
	out = append(out, candidates[0])
	for _, c := range candidates[1:] {
		if float64(c.Frequency) > cutoff {
			out = append(out, c)
		}
	}
	return out
}

// capFrequencies truncates to at most limit entries.
func capFrequencies(candidates []domain.TranslationCandidate, limit int) []domain.TranslationCandidate {
	if limit >= 0 && len(candidates) > limit {
		return candidates[:limit]
	}
	return candidates
}
