package reverso

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/heartmarshall/reverso-notes/internal/domain"
)

func TestParseHighlighted(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    string
		text  string
		spans []domain.Span
	}{
		{
			name:  "single match",
			in:    "I have a <em>cat</em>.",
			text:  "I have a cat.",
			spans: []domain.Span{{Start: 9, End: 12}},
		},
		{
			name:  "offsets in runes",
			in:    "У меня есть <em>кот</em>.",
			text:  "У меня есть кот.",
			spans: []domain.Span{{Start: 12, End: 15}},
		},
		{
			name:  "entities unescaped before counting",
			in:    "Tom &amp; <em>Jerry</em>",
			text:  "Tom & Jerry",
			spans: []domain.Span{{Start: 6, End: 11}},
		},
		{
			name:  "entity touching a marker",
			in:    "&laquo;&amp;<em>кот</em>&raquo;",
			text:  "«&кот»",
			spans: []domain.Span{{Start: 2, End: 5}},
		},
		{
			name:  "entity inside a marker",
			in:    "<em>R&amp;D</em> rocks",
			text:  "R&D rocks",
			spans: []domain.Span{{Start: 0, End: 3}},
		},
		{
			name:  "phrase parts merged",
			in:    "a <em>big</em> <em>cat</em> here",
			text:  "a big cat here",
			spans: []domain.Span{{Start: 2, End: 9}},
		},
		{
			name:  "separate matches kept apart",
			in:    "<em>cat</em> and <em>cat</em>",
			text:  "cat and cat",
			spans: []domain.Span{{Start: 0, End: 3}, {Start: 8, End: 11}},
		},
		{
			name:  "unclosed marker runs to end",
			in:    "the <em>end",
			text:  "the end",
			spans: []domain.Span{{Start: 4, End: 7}},
		},
		{
			name: "no markers",
			in:   "plain text",
			text: "plain text",
		},
		{
			name: "stray close ignored",
			in:   "a</em>b",
			text: "ab",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := parseHighlighted(tt.in)
			assert.Equal(t, tt.text, got.Text)
			assert.Equal(t, tt.spans, got.Highlighted)
		})
	}
}

func TestParseHighlighted_FeedsCloze(t *testing.T) {
	t.Parallel()

	s := parseHighlighted("Мой <em>кот</em> спит.")

	cloze, err := domain.BuildCloze(s.Text, s.Highlighted)
	assert.NoError(t, err)
	assert.Equal(t, "Мой {{c1::кот}} спит.", cloze)
}
