// Package note stores notes in PostgreSQL, one row per query and language
// pair, as an alternative to the CSV output.
package note

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/reverso-notes/internal/adapter/postgres"
	"github.com/heartmarshall/reverso-notes/internal/app/notemaker"
	"github.com/heartmarshall/reverso-notes/internal/domain"
	"github.com/heartmarshall/reverso-notes/pkg/ctxutil"
)

const table = "reverso_notes"

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides note persistence backed by PostgreSQL.
type Repo struct {
	q          postgres.Querier
	sourceLang string
	targetLang string
	now        func() time.Time
}

// New creates a note repository scoped to one language pair.
func New(q postgres.Querier, sourceLang, targetLang string) *Repo {
	return &Repo{
		q:          q,
		sourceLang: sourceLang,
		targetLang: targetLang,
		now:        time.Now,
	}
}

// WriteNote inserts the note with its fields rendered the same way as the
// CSV columns. A note already stored for the query is left untouched.
func (r *Repo) WriteNote(ctx context.Context, n domain.Note) error {
	row := notemaker.ToRow(n)

	var runID *uuid.UUID
	if id, ok := ctxutil.RunIDFromCtx(ctx); ok {
		runID = &id
	}

	sql, args, err := psql.
		Insert(table).
		Columns("id", "query", "clozes", "hints", "frequencies", "source_lang", "target_lang", "run_id", "created_at").
		Values(uuid.New(), row[0], row[1], row[2], row[3], r.sourceLang, r.targetLang, runID, r.now().UTC()).
		Suffix("ON CONFLICT (query, source_lang, target_lang) DO NOTHING").
		ToSql()
	if err != nil {
		return postgres.MapError(err, "build insert note")
	}

	_, err = r.q.Exec(ctx, sql, args...)
	return postgres.MapError(err, "insert note")
}

// ExistingKeys returns the queries already stored for this language pair,
// oldest first.
func (r *Repo) ExistingKeys(ctx context.Context) ([]string, error) {
	sql, args, err := psql.
		Select("query").
		From(table).
		Where(squirrel.Eq{"source_lang": r.sourceLang, "target_lang": r.targetLang}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "build list notes")
	}

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "list notes")
	}

	keys, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, postgres.MapError(err, "scan notes")
	}
	return keys, nil
}
