package persist

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/markpad/internal/editor/models"
	"github.com/dmitrijs2005/markpad/internal/editor/store"
	"github.com/dmitrijs2005/markpad/internal/logging"
)

type fakeRepo struct {
	saved []*Record
	err   error
}

func (f *fakeRepo) Save(_ context.Context, rec *Record) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, rec)
	return nil
}

func (f *fakeRepo) GetByUUID(context.Context, string) (*Record, error) { return nil, ErrNotFound }
func (f *fakeRepo) GetAll(context.Context) ([]*Record, error)          { return nil, nil }

func syncedState(doc *models.Document, secret string) models.State {
	return models.State{Current: doc, Loaded: true, Identity: models.SynchronizedIdentity(secret)}
}

func TestSaver_PersistsOnSignal(t *testing.T) {
	repo := &fakeRepo{}
	s := NewSaver(repo, logging.NewNop())

	doc := models.FirstRepresentation("u1", "c", "", at)
	s.OnAction(syncedState(doc, "s3cret"), store.LocalPersistDue{})

	require.Len(t, repo.saved, 1)
	assert.Same(t, doc, repo.saved[0].Document)
	assert.Equal(t, "s3cret", repo.saved[0].Secret)
}

func TestSaver_IgnoresOtherActions(t *testing.T) {
	repo := &fakeRepo{}
	s := NewSaver(repo, logging.NewNop())

	st := syncedState(models.LoadedDocument("u1", "c", ""), "s")
	s.OnAction(st, store.UpdateContent{Content: "c", At: at})
	s.OnAction(st, store.SynchronizeStarted{})

	assert.Empty(t, repo.saved)
}

func TestSaver_SkipsDocumentsWithoutIdentity(t *testing.T) {
	repo := &fakeRepo{}
	s := NewSaver(repo, logging.NewNop())

	s.OnAction(models.InitialState(), store.LocalPersistDue{})

	assert.Empty(t, repo.saved)
}

func TestSaver_SwallowsRepositoryErrors(t *testing.T) {
	repo := &fakeRepo{err: errors.New("disk full")}
	s := NewSaver(repo, logging.NewNop())

	st := syncedState(models.LoadedDocument("u1", "c", ""), "s")
	assert.NotPanics(t, func() {
		s.OnAction(st, store.LocalPersistDue{})
	})
}
