package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCloze(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		spans []Span
		want  string
	}{
		{name: "middle", text: "I love cats.", spans: []Span{{7, 11}}, want: "I love {{c1::cats}}."},
		{name: "start", text: "Cats sleep.", spans: []Span{{0, 4}}, want: "{{c1::Cats}} sleep."},
		{name: "end", text: "I love cats", spans: []Span{{7, 11}}, want: "I love {{c1::cats}}"},
		{name: "empty span", text: "abc", spans: []Span{{1, 1}}, want: "a{{c1::}}bc"},
		{name: "only first span used", text: "a b c", spans: []Span{{0, 1}, {4, 5}}, want: "{{c1::a}} b c"},
		{name: "cyrillic rune offsets", text: "Я люблю кошек.", spans: []Span{{8, 13}}, want: "Я люблю {{c1::кошек}}."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := BuildCloze(tt.text, tt.spans)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Every valid span must satisfy text[:s] + "{{c1::" + text[s:e] + "}}" + text[e:].
func TestBuildCloze_AllSpans(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "x", "hello", "чай и кофе"} {
		runes := []rune(text)
		for s := 0; s <= len(runes); s++ {
			for e := s; e <= len(runes); e++ {
				got, err := BuildCloze(text, []Span{{s, e}})
				require.NoError(t, err)
				want := string(runes[:s]) + "{{c1::" + string(runes[s:e]) + "}}" + string(runes[e:])
				assert.Equal(t, want, got, "text=%q span=[%d:%d]", text, s, e)
			}
		}
	}
}

func TestExtractHighlighted(t *testing.T) {
	t.Parallel()

	got, err := ExtractHighlighted("I love cats.", []Span{{7, 11}})
	require.NoError(t, err)
	assert.Equal(t, "cats", got)

	got, err = ExtractHighlighted("Я люблю кошек.", []Span{{2, 7}})
	require.NoError(t, err)
	assert.Equal(t, "люблю", got)
}

func TestExtractHighlighted_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		spans []Span
	}{
		{name: "no spans", text: "abc", spans: nil},
		{name: "end past text", text: "abc", spans: []Span{{1, 4}}},
		{name: "negative start", text: "abc", spans: []Span{{-1, 2}}},
		{name: "start after end", text: "abc", spans: []Span{{2, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ExtractHighlighted(tt.text, tt.spans)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrSpanOutOfRange))

			_, err = BuildCloze(tt.text, tt.spans)
			assert.True(t, errors.Is(err, ErrSpanOutOfRange))
		})
	}
}
