package notemaker

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/heartmarshall/reverso-notes/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockProvider struct {
	lookupFunc func(ctx context.Context, req domain.LookupRequest) (*domain.LookupResult, error)
	requests   []domain.LookupRequest
}

func (m *mockProvider) Lookup(ctx context.Context, req domain.LookupRequest) (*domain.LookupResult, error) {
	m.requests = append(m.requests, req)
	if m.lookupFunc != nil {
		return m.lookupFunc(ctx, req)
	}
	return &domain.LookupResult{}, nil
}

func (m *mockProvider) queries() []string {
	out := make([]string, 0, len(m.requests))
	for _, r := range m.requests {
		out = append(out, r.Query)
	}
	return out
}

type mockSink struct {
	writeNoteFunc func(ctx context.Context, note domain.Note) error
	notes         []domain.Note
}

func (m *mockSink) WriteNote(ctx context.Context, note domain.Note) error {
	if m.writeNoteFunc != nil {
		if err := m.writeNoteFunc(ctx, note); err != nil {
			return err
		}
	}
	m.notes = append(m.notes, note)
	return nil
}

// recordingSleep replaces the pipeline's delay and remembers each call.
type recordingSleep struct {
	calls []time.Duration
}

func (r *recordingSleep) sleep(ctx context.Context, d time.Duration) error {
	r.calls = append(r.calls, d)
	return ctx.Err()
}

// example builds an Example whose source and target both highlight the
// given word.
func example(source, sourceWord, target, targetWord string) domain.Example {
	return domain.Example{
		Source: sentence(source, sourceWord),
		Target: sentence(target, targetWord),
	}
}

func sentence(text, word string) domain.Sentence {
	runes := []rune(text)
	w := []rune(word)
	for i := 0; i+len(w) <= len(runes); i++ {
		if string(runes[i:i+len(w)]) == word {
			return domain.Sentence{Text: text, Highlighted: []domain.Span{{Start: i, End: i + len(w)}}}
		}
	}
	return domain.Sentence{Text: text}
}
