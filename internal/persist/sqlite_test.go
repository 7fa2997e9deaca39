package persist

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/markpad/internal/editor/models"

	_ "modernc.org/sqlite"
)

var at = time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func TestSave_RoundTripWithMarker(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	rec := &Record{
		Document: models.FirstRepresentation("u1", "- [ ] a", "letter", at),
		Secret:   "s3cret",
	}
	require.NoError(t, r.Save(ctx, rec))

	got, err := r.GetByUUID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "- [ ] a", got.Document.Content)
	assert.Equal(t, "letter", got.Document.Template)
	assert.Equal(t, "s3cret", got.Secret)
	require.NotNil(t, got.Document.LastModifiedLocally)
	assert.Equal(t, at, *got.Document.LastModifiedLocally)
}

func TestSave_RoundTripWithoutMarker(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	rec := &Record{Document: models.LoadedDocument("u1", "c", ""), Secret: "s"}
	require.NoError(t, r.Save(ctx, rec))

	got, err := r.GetByUUID(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, got.Document.LastModifiedLocally)
}

func TestSave_UpsertReplacesColumns(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, &Record{
		Document: models.FirstRepresentation("u1", "old", "letter", at),
		Secret:   "s1",
	}))
	require.NoError(t, r.Save(ctx, &Record{
		Document: models.LoadedDocument("u1", "new", "invoice"),
		Secret:   "s2",
	}))

	got, err := r.GetByUUID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "new", got.Document.Content)
	assert.Equal(t, "invoice", got.Document.Template)
	assert.Equal(t, "s2", got.Secret)
	assert.Nil(t, got.Document.LastModifiedLocally)
}

func TestGetByUUID_NotFound(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	_, err := r.GetByUUID(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetAll(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	got, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, r.Save(ctx, &Record{Document: models.LoadedDocument("b", "2", ""), Secret: "s"}))
	require.NoError(t, r.Save(ctx, &Record{Document: models.LoadedDocument("a", "1", ""), Secret: "s"}))

	got, err = r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Document.UUID)
	assert.Equal(t, "b", got[1].Document.UUID)
}
