package notemaker

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/reverso-notes/internal/domain"
)

func examplesOfLengths(lengths ...int) []domain.Example {
	out := make([]domain.Example, len(lengths))
	for i, n := range lengths {
		out[i] = domain.Example{Source: domain.Sentence{Text: strings.Repeat("x", n)}}
	}
	return out
}

func sourceLengths(examples []domain.Example) []int {
	out := make([]int, len(examples))
	for i, ex := range examples {
		out[i] = utf8.RuneCountInString(ex.Source.Text)
	}
	return out
}

func TestPrefixSelector(t *testing.T) {
	t.Parallel()

	sel := PrefixSelector{Max: 3}

	assert.Equal(t, 3, sel.Window())
	assert.Equal(t, []int{50, 10, 30}, sourceLengths(sel.Select(examplesOfLengths(50, 10, 30, 5, 20))))
	assert.Equal(t, []int{7}, sourceLengths(sel.Select(examplesOfLengths(7))))
	assert.Empty(t, sel.Select(nil))
}

func TestShortestSelector_SortsThenTruncates(t *testing.T) {
	t.Parallel()

	sel := ShortestSelector{Max: 3, Candidate: 15}

	got := sel.Select(examplesOfLengths(50, 10, 30, 5, 20))
	assert.Equal(t, []int{5, 10, 20}, sourceLengths(got))
}

func TestShortestSelector_StableOnTies(t *testing.T) {
	t.Parallel()

	in := []domain.Example{
		{Source: domain.Sentence{Text: "ccc"}, Target: domain.Sentence{Text: "first"}},
		{Source: domain.Sentence{Text: "a"}},
		{Source: domain.Sentence{Text: "bbb"}, Target: domain.Sentence{Text: "second"}},
	}

	got := ShortestSelector{Max: 3, Candidate: 10}.Select(in)
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].Source.Text)
	assert.Equal(t, "first", got[1].Target.Text)
	assert.Equal(t, "second", got[2].Target.Text)
}

func TestShortestSelector_OnlyLooksAtWindow(t *testing.T) {
	t.Parallel()

	sel := ShortestSelector{Max: 2, Candidate: 3}

	// The 1-rune example sits outside the window.
	got := sel.Select(examplesOfLengths(9, 8, 7, 1))
	assert.Equal(t, []int{7, 8}, sourceLengths(got))
}

func TestShortestSelector_CountsRunes(t *testing.T) {
	t.Parallel()

	in := []domain.Example{
		{Source: domain.Sentence{Text: "котик"}}, // 5 runes, 10 bytes
		{Source: domain.Sentence{Text: "abcdefg"}},
	}

	got := ShortestSelector{Max: 1, Candidate: 2}.Select(in)
	require.Len(t, got, 1)
	assert.Equal(t, "котик", got[0].Source.Text)
}

func TestShortestSelector_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	in := examplesOfLengths(3, 1, 2)
	ShortestSelector{Max: 3, Candidate: 3}.Select(in)

	assert.Equal(t, []int{3, 1, 2}, sourceLengths(in))
}

func TestNewSelector(t *testing.T) {
	t.Parallel()

	assert.Equal(t, PrefixSelector{Max: 3}, NewSelector(false, 3, 15))

	short := NewSelector(true, 3, 15)
	assert.Equal(t, ShortestSelector{Max: 3, Candidate: 15}, short)
	assert.Equal(t, 15, short.Window())
	assert.Equal(t, 4, ShortestSelector{Max: 4, Candidate: 2}.Window())
}
