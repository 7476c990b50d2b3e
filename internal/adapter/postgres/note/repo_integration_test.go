package note_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/reverso-notes/internal/adapter/postgres/note"
	"github.com/heartmarshall/reverso-notes/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/reverso-notes/internal/domain"
)

func TestRepo_Integration_WriteAndResume(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	ctx := context.Background()

	// A unique source language isolates this test's rows.
	lang := testhelper.UniqueQuery("src")
	testhelper.SeedNote(t, pool, lang, "en", "kot")

	repo := note.New(pool, lang, "en")

	keys, err := repo.ExistingKeys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"kot"}, keys)

	n := domain.Note{Query: "pes", ClozeTexts: []string{"{{c1::pes}} štěká"}, Hints: []string{"dog"}}
	require.NoError(t, repo.WriteNote(ctx, n))
	// Second write of the same query is a no-op.
	require.NoError(t, repo.WriteNote(ctx, n))

	keys, err = repo.ExistingKeys(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"kot", "pes"}, keys)

	other, err := note.New(pool, lang, "de").ExistingKeys(ctx)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestRepo_Integration_RejectsEmptyNote(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)

	repo := note.New(pool, testhelper.UniqueQuery("src"), "en")
	err := repo.WriteNote(context.Background(), domain.Note{Query: "nic"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}
