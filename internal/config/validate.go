package config

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/reverso-notes/internal/domain"
)

// Validate checks the loaded configuration. Load calls it automatically.
// All problems are reported at once as a *domain.ValidationError.
func (c *Config) Validate() error {
	var errs []domain.FieldError
	add := func(field, format string, args ...any) {
		errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if strings.TrimSpace(c.Lang.Source) == "" {
		add("lang.source", "no source language given")
	}
	if strings.TrimSpace(c.Lang.Target) == "" {
		add("lang.target", "must not be empty")
	}
	if c.Files.Queries == "" {
		add("files.queries", "must not be empty")
	}

	if c.Notes.MaxExamples < 1 {
		add("notes.max_examples", "must be >= 1 (got %d)", c.Notes.MaxExamples)
	}
	if c.Notes.MaxFrequencies < 1 {
		add("notes.max_frequencies", "must be >= 1 (got %d)", c.Notes.MaxFrequencies)
	}
	if c.Notes.FrequencyThreshold < 0 || c.Notes.FrequencyThreshold > 1 {
		add("notes.frequency_threshold", "must be within [0, 1] (got %v)", c.Notes.FrequencyThreshold)
	}
	if c.Notes.PreferShortWindow < c.Notes.MaxExamples {
		add("notes.prefer_short_window", "must be >= max_examples (got %d < %d)", c.Notes.PreferShortWindow, c.Notes.MaxExamples)
	}

	if c.Remote.MaxRetries < 1 {
		add("remote.max_retries", "must be >= 1 (got %d)", c.Remote.MaxRetries)
	}
	if c.Remote.RetryWait < 0 {
		add("remote.retry_wait", "must not be negative (got %s)", c.Remote.RetryWait)
	}
	if c.Remote.RequestDelay < 0 {
		add("remote.request_delay", "must not be negative (got %s)", c.Remote.RequestDelay)
	}

	switch c.Sink.Kind {
	case SinkCSV:
		if c.Files.Output == "" {
			add("files.output", "must not be empty for csv sink")
		}
	case SinkPostgres:
		if c.Database.DSN == "" {
			add("database.dsn", "required for postgres sink")
		}
	default:
		add("sink.kind", "unknown sink %q (want csv or postgres)", c.Sink.Kind)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
