package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// strippedPunctuation is ASCII punctuation minus the apostrophe, which is
// part of words like "don't" or "п'ять".
const strippedPunctuation = "!\"#$%&()*+,-./:;<=>?@[\\]^_`{|}~"

// shortIReplacer folds и + combining breve (U+0306) into the precomposed й.
// Reverso treats the two spellings as different words.
var shortIReplacer = strings.NewReplacer("\u0438\u0306", "\u0439")

// Normalizer canonicalizes raw queries before they are sent to the remote
// service. It is not safe for concurrent use.
type Normalizer struct {
	lower           cases.Caser
	keepPunctuation bool
}

// NewNormalizer returns a Normalizer that lowercases with the rules of
// sourceLang (falling back to language-neutral rules for unknown codes).
func NewNormalizer(sourceLang string, keepPunctuation bool) *Normalizer {
	tag, err := language.Parse(sourceLang)
	if err != nil {
		tag = language.Und
	}
	return &Normalizer{
		lower:           cases.Lower(tag),
		keepPunctuation: keepPunctuation,
	}
}

// Normalize prepares a query for lookup:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - removes ASCII punctuation except the apostrophe, unless punctuation is kept
//   - replaces и + U+0306 with й
func (n *Normalizer) Normalize(query string) string {
	s := strings.TrimSpace(query)
	if s == "" {
		return ""
	}
	s = n.lower.String(s)
	if !n.keepPunctuation {
		s = strings.TrimSpace(StripPunctuation(s))
	}
	// Folding last: stripping can join и and the breve.
	return shortIReplacer.Replace(s)
}

// StripPunctuation removes ASCII punctuation other than the apostrophe.
func StripPunctuation(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(strippedPunctuation, r) {
			return -1
		}
		return r
	}, s)
}
