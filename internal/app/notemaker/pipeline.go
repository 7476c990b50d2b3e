package notemaker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/reverso-notes/internal/config"
	"github.com/heartmarshall/reverso-notes/internal/domain"
	"github.com/heartmarshall/reverso-notes/pkg/ctxutil"
)

// Provider looks up a normalized query on the remote service.
type Provider interface {
	Lookup(ctx context.Context, req domain.LookupRequest) (*domain.LookupResult, error)
}

// NoteSink persists finished notes. A note must be durable when WriteNote
// returns so an interrupted run can resume.
type NoteSink interface {
	WriteNote(ctx context.Context, note domain.Note) error
}

// KeySource lists the queries a sink already holds notes for.
type KeySource interface {
	ExistingKeys(ctx context.Context) ([]string, error)
}

// Options holds pipeline tunables.
type Options struct {
	SourceLang         string
	TargetLang         string
	MaxExamples        int
	MaxFrequencies     int
	FrequencyThreshold float64
	PreferShort        bool
	PreferShortWindow  int
	KeepPunctuation    bool
	MaxAttempts        int
	RetryWait          time.Duration
	RequestDelay       time.Duration
}

// OptionsFromConfig maps the loaded configuration onto pipeline options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		SourceLang:         cfg.Lang.Source,
		TargetLang:         cfg.Lang.Target,
		MaxExamples:        cfg.Notes.MaxExamples,
		MaxFrequencies:     cfg.Notes.MaxFrequencies,
		FrequencyThreshold: cfg.Notes.FrequencyThreshold,
		PreferShort:        cfg.Notes.PreferShort,
		PreferShortWindow:  cfg.Notes.PreferShortWindow,
		KeepPunctuation:    cfg.Notes.KeepPunctuation,
		MaxAttempts:        cfg.Remote.MaxRetries,
		RetryWait:          cfg.Remote.RetryWait,
		RequestDelay:       cfg.Remote.RequestDelay,
	}
}

// Result holds run statistics.
type Result struct {
	Total       int
	Written     int
	Skipped     int // already present in the output
	Missed      int // nothing usable on the remote side
	Failed      int // lookup failed after retries or with a permanent error
	HintErrors  int
	ClozeErrors int
}

// Pipeline turns queries into notes, one query at a time.
type Pipeline struct {
	log        *slog.Logger
	provider   Provider
	seen       *SeenSet
	opts       Options
	normalizer *domain.Normalizer
	selector   ExampleSelector
	assembler  *Assembler
	retrier    *Retrier

	sleep func(ctx context.Context, d time.Duration) error
}

// NewPipeline creates a Pipeline. seen must already hold the keys present in
// the sink.
func NewPipeline(log *slog.Logger, provider Provider, seen *SeenSet, opts Options) *Pipeline {
	log = log.With("component", "notemaker")
	selector := NewSelector(opts.PreferShort, opts.MaxExamples, opts.PreferShortWindow)

	return &Pipeline{
		log:        log,
		provider:   provider,
		seen:       seen,
		opts:       opts,
		normalizer: domain.NewNormalizer(opts.SourceLang, opts.KeepPunctuation),
		selector:   selector,
		assembler:  NewAssembler(log, selector, opts.FrequencyThreshold, opts.MaxFrequencies),
		retrier:    NewRetrier(log, opts.MaxAttempts, opts.RetryWait),
		sleep:      sleepWithCtx,
	}
}

// Run processes queries in order and writes one note per query that yields
// at least one cloze. Per-query failures are counted and logged; the run only
// stops early on context cancellation or a sink error.
func (p *Pipeline) Run(ctx context.Context, queries []string, sink NoteSink) (Result, error) {
	var result Result
	result.Total = len(queries)

	if _, ok := ctxutil.RunIDFromCtx(ctx); !ok {
		ctx = ctxutil.WithRunID(ctx, uuid.New())
	}

	p.log.InfoContext(ctx, "run started",
		slog.Int("queries", len(queries)),
		slog.Int("known", p.seen.Len()),
		slog.String("source_lang", p.opts.SourceLang),
		slog.String("target_lang", p.opts.TargetLang),
	)

	for _, query := range queries {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if p.seen.ShouldSkip(query) {
			result.Skipped++
			continue
		}

		normalized := p.normalizer.Normalize(query)
		if normalized == "" {
			p.log.WarnContext(ctx, "empty query after normalization", slog.String("query", query))
			result.Missed++
			continue
		}

		res, err := p.fetch(ctx, normalized)
		if err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			p.log.ErrorContext(ctx, "lookup failed",
				slog.String("query", query),
				slog.String("error", err.Error()),
			)
			result.Failed++
			continue
		}

		note, stats, err := p.assembler.Assemble(ctx, query, res)
		result.HintErrors += stats.HintErrors
		result.ClozeErrors += stats.ClozeErrors
		if err != nil {
			p.log.ErrorContext(ctx, "assemble note",
				slog.String("query", query),
				slog.String("error", err.Error()),
			)
			result.Failed++
			continue
		}
		if len(note.ClozeTexts) == 0 {
			p.log.WarnContext(ctx, "nothing found on reverso", slog.String("query", query))
			result.Missed++
			continue
		}

		if err := sink.WriteNote(ctx, note); err != nil {
			return result, fmt.Errorf("write note %q: %w", query, err)
		}
		p.seen.Add(query)
		result.Written++
		p.log.DebugContext(ctx, "note written",
			slog.String("query", query),
			slog.Int("clozes", len(note.ClozeTexts)),
			slog.Int("hints", len(note.Hints)),
		)
	}

	p.log.InfoContext(ctx, "run complete",
		slog.Int("total", result.Total),
		slog.Int("written", result.Written),
		slog.Int("skipped", result.Skipped),
		slog.Int("missed", result.Missed),
		slog.Int("failed", result.Failed),
		slog.Int("hint_errors", result.HintErrors),
		slog.Int("cloze_errors", result.ClozeErrors),
	)
	return result, nil
}

// fetch looks up one normalized query with retries, then waits out the
// request delay whatever the outcome.
func (p *Pipeline) fetch(ctx context.Context, normalized string) (*domain.LookupResult, error) {
	req := domain.LookupRequest{
		Query:       normalized,
		SourceLang:  p.opts.SourceLang,
		TargetLang:  p.opts.TargetLang,
		MaxExamples: p.selector.Window(),
	}

	var res *domain.LookupResult
	err := p.retrier.Do(ctx, func(ctx context.Context) error {
		var lookupErr error
		res, lookupErr = p.provider.Lookup(ctx, req)
		return lookupErr
	})

	if sleepErr := p.sleep(ctx, p.opts.RequestDelay); sleepErr != nil && err == nil {
		err = sleepErr
	}
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, errors.New("provider returned no result")
	}
	return res, nil
}

func sleepWithCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
