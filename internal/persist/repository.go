// Package persist is the local persistence collaborator: a
// sqlite-backed document repository plus a Saver that reacts to
// local-persist-due signals from the store.
package persist

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/markpad/internal/editor/models"
)

// ErrNotFound is returned when no document exists under a uuid.
// Callers match it with errors.Is.
var ErrNotFound = errors.New("document not found")

// Record pairs a document snapshot with the secret it syncs under.
type Record struct {
	Document *models.Document
	Secret   string
}

// Repository stores document records keyed by uuid.
type Repository interface {
	// Save upserts the record.
	Save(ctx context.Context, rec *Record) error

	// GetByUUID returns the record stored under uuid, or ErrNotFound.
	GetByUUID(ctx context.Context, uuid string) (*Record, error)

	// GetAll returns every stored record.
	GetAll(ctx context.Context) ([]*Record, error)
}
