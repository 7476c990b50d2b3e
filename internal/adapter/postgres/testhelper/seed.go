package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UniqueQuery returns a query string no other test uses, so parallel tests
// can share one database.
func UniqueQuery(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

// SeedNote inserts a minimal stored note for query.
func SeedNote(t *testing.T, pool *pgxpool.Pool, sourceLang, targetLang, query string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO reverso_notes (id, query, clozes, source_lang, target_lang, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.New(), query, "{{c1::"+query+"}}", sourceLang, targetLang, time.Now().UTC(),
	)
	if err != nil {
		t.Fatalf("testhelper: seed note %q: %v", query, err)
	}
}
