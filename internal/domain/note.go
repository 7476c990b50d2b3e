package domain

// Span is a highlighted [Start, End) range inside a sentence.
// Offsets count runes, not bytes.
type Span struct {
	Start int
	End   int
}

// Sentence is one side of a usage example.
type Sentence struct {
	Text        string
	Highlighted []Span
}

// Example pairs a source-language sentence with its translation.
type Example struct {
	Source Sentence
	Target Sentence
}

// TranslationCandidate is a translation the remote service suggests for a
// query, with its occurrence count. The service returns candidates in
// descending frequency order.
type TranslationCandidate struct {
	Text      string
	Frequency int
}

// LookupRequest describes one remote lookup.
type LookupRequest struct {
	Query      string // normalized
	SourceLang string
	TargetLang string
	// MaxExamples bounds how many examples the provider pulls (across pages).
	MaxExamples int
}

// LookupResult is everything the remote service returned for one query.
type LookupResult struct {
	Translations []TranslationCandidate
	Examples     []Example
}

// Note is a flashcard-ready record for one query.
// A Note always has at least one cloze text.
type Note struct {
	Query       string
	Hints       []string
	ClozeTexts  []string
	Frequencies []TranslationCandidate
}
