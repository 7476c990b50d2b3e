package notemaker

import (
	"slices"
	"unicode/utf8"

	"github.com/heartmarshall/reverso-notes/internal/domain"
)

// ExampleSelector picks which examples end up on a note.
type ExampleSelector interface {
	// Window is how many examples the provider should pull for Select.
	Window() int
	// Select returns the examples to use, at most the selector's maximum.
	Select(examples []domain.Example) []domain.Example
}

// PrefixSelector takes the first Max examples in the order Reverso returned them.
type PrefixSelector struct {
	Max int
}

func (s PrefixSelector) Window() int { return s.Max }

func (s PrefixSelector) Select(examples []domain.Example) []domain.Example {
	return firstN(examples, s.Max)
}

// ShortestSelector pulls a larger candidate window, orders it by source
// sentence length (stable, so equal lengths keep Reverso's order) and takes
// the first Max.
type ShortestSelector struct {
	Max       int
	Candidate int
}

func (s ShortestSelector) Window() int { return max(s.Candidate, s.Max) }

func (s ShortestSelector) Select(examples []domain.Example) []domain.Example {
	window := slices.Clone(firstN(examples, s.Window()))
	slices.SortStableFunc(window, func(a, b domain.Example) int {
		return utf8.RuneCountInString(a.Source.Text) - utf8.RuneCountInString(b.Source.Text)
	})
	return firstN(window, s.Max)
}

// NewSelector returns a ShortestSelector when preferShort is set, a
// PrefixSelector otherwise.
func NewSelector(preferShort bool, maxExamples, window int) ExampleSelector {
	if preferShort {
		return ShortestSelector{Max: maxExamples, Candidate: window}
	}
	return PrefixSelector{Max: maxExamples}
}

func firstN(examples []domain.Example, n int) []domain.Example {
	if n < 0 {
		n = 0
	}
	if len(examples) > n {
		return examples[:n]
	}
	return examples
}
