package ctxutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestRunID_RoundTrip(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	ctx := WithRunID(context.Background(), id)

	got, ok := RunIDFromCtx(ctx)
	if !ok {
		t.Fatal("RunIDFromCtx: ok = false")
	}
	if got != id {
		t.Errorf("RunIDFromCtx = %s, want %s", got, id)
	}
}

func TestRunID_Missing(t *testing.T) {
	t.Parallel()

	if _, ok := RunIDFromCtx(context.Background()); ok {
		t.Error("expected ok = false for empty context")
	}
	if _, ok := RunIDFromCtx(WithRunID(context.Background(), uuid.Nil)); ok {
		t.Error("expected ok = false for nil UUID")
	}
}
