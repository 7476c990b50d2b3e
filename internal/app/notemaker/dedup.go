package notemaker

// SeenSet holds the raw queries that already have a note in the output.
// It is filled before the run and only grows during it.
type SeenSet struct {
	keys map[string]struct{}
}

// NewSeenSet builds a SeenSet from previously written keys
// (the first column of existing output rows).
func NewSeenSet(keys []string) *SeenSet {
	s := &SeenSet{keys: make(map[string]struct{}, len(keys))}
	for _, k := range keys {
		s.keys[k] = struct{}{}
	}
	return s
}

// ShouldSkip reports whether query was already processed.
func (s *SeenSet) ShouldSkip(query string) bool {
	_, ok := s.keys[query]
	return ok
}

// Add marks query as processed.
func (s *SeenSet) Add(query string) {
	s.keys[query] = struct{}{}
}

// Len returns the number of known keys.
func (s *SeenSet) Len() int { return len(s.keys) }
