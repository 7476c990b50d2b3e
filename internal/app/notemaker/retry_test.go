package notemaker

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/reverso-notes/internal/domain"
)

var errConn = fmt.Errorf("dial tcp: connection refused: %w", domain.ErrTransient)

func TestRetrier_SucceedsAfterTransientFailures(t *testing.T) {
	t.Parallel()

	calls := 0
	r := NewRetrier(discardLogger(), 5, 0)

	err := r.Do(context.Background(), func(ctx context.Context) error {
		calls++
		if calls <= 2 {
			return errConn
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls, "two retries after two failures")
}

func TestRetrier_NonTransientReturnedImmediately(t *testing.T) {
	t.Parallel()

	calls := 0
	permanent := &domain.UpstreamError{Status: http.StatusBadRequest}
	r := NewRetrier(discardLogger(), 5, 0)

	err := r.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return permanent
	})

	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, error(permanent))
	assert.NotErrorIs(t, err, domain.ErrRetriesExhausted)
}

func TestRetrier_Exhausted(t *testing.T) {
	t.Parallel()

	calls := 0
	r := NewRetrier(discardLogger(), 3, 0)

	err := r.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return &domain.UpstreamError{Status: http.StatusServiceUnavailable}
	})

	assert.Equal(t, 3, calls)
	require.ErrorIs(t, err, domain.ErrRetriesExhausted)
	assert.ErrorIs(t, err, domain.ErrTransient)

	var upErr *domain.UpstreamError
	require.True(t, errors.As(err, &upErr))
	assert.Equal(t, http.StatusServiceUnavailable, upErr.Status)
}

func TestRetrier_SingleAttempt(t *testing.T) {
	t.Parallel()

	calls := 0
	r := NewRetrier(discardLogger(), 0, 0)

	err := r.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return errConn
	})

	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, domain.ErrRetriesExhausted)
}

func TestRetrier_StopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	r := NewRetrier(discardLogger(), 5, time.Hour)

	err := r.Do(ctx, func(ctx context.Context) error {
		calls++
		cancel()
		return errConn
	})

	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, context.Canceled)
}
