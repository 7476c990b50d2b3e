package notemaker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/heartmarshall/reverso-notes/internal/domain"
)

// Retrier runs an operation, retrying transient (connectivity) failures with
// a fixed wait. Any other error is returned on the spot.
type Retrier struct {
	attempts int
	wait     time.Duration
	log      *slog.Logger
}

// NewRetrier creates a Retrier making at most attempts calls in total.
func NewRetrier(log *slog.Logger, attempts int, wait time.Duration) *Retrier {
	if attempts < 1 {
		attempts = 1
	}
	return &Retrier{attempts: attempts, wait: wait, log: log}
}

// Do calls op until it succeeds, fails with a non-transient error, or the
// attempt budget runs out. The last case returns an error wrapping both
// domain.ErrRetriesExhausted and the final transient error.
func (r *Retrier) Do(ctx context.Context, op func(ctx context.Context) error) error {
	attempt := 0
	backoff := retry.WithMaxRetries(uint64(r.attempts-1), constantBackoff(r.wait))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := op(ctx)
		if err == nil || !errors.Is(err, domain.ErrTransient) {
			return err
		}
		if attempt < r.attempts {
			r.log.WarnContext(ctx, "connection error, retrying",
				slog.Int("attempt", attempt),
				slog.Int("max_attempts", r.attempts),
				slog.Duration("wait", r.wait),
				slog.String("error", err.Error()),
			)
		}
		return retry.RetryableError(err)
	})

	// A transient error only escapes retry.Do once the budget is spent.
	if err != nil && errors.Is(err, domain.ErrTransient) {
		return fmt.Errorf("%w after %d attempts: %w", domain.ErrRetriesExhausted, attempt, err)
	}
	return err
}

func constantBackoff(wait time.Duration) retry.Backoff {
	if wait <= 0 {
		return retry.BackoffFunc(func() (time.Duration, bool) { return 0, false })
	}
	return retry.NewConstant(wait)
}
