// Package syncx is the synchronization collaborator: it watches for
// synchronize-started signals, decides whether the active document has
// anything to sync, and reports the outcome back through the store.
//
// The core never branches on these reports; they exist for other
// subscribers and for the user-facing surface.
package syncx

import (
	"context"

	"github.com/dmitrijs2005/markpad/internal/editor/models"
	"github.com/dmitrijs2005/markpad/internal/editor/store"
	"github.com/dmitrijs2005/markpad/internal/logging"
)

// Remote accepts a document snapshot under its sync secret and returns
// the authoritative representation.
type Remote interface {
	Acknowledge(ctx context.Context, doc *models.Document, secret string) (*models.Document, error)
}

// LocalAcknowledger accepts every snapshot as-is, with the unsynced
// marker cleared. It stands in for a wire client, which this core
// deliberately does not carry.
type LocalAcknowledger struct{}

func (LocalAcknowledger) Acknowledge(_ context.Context, doc *models.Document, _ string) (*models.Document, error) {
	return doc.Synced(), nil
}

// Service reacts to synchronize-started signals on a store.
type Service struct {
	d      dispatcher
	remote Remote
	log    logging.Logger
}

type dispatcher interface {
	Dispatch(a store.Action) models.State
}

// New returns a Service dispatching its reports into d. Register it
// with the store via store.Subscribe(svc.OnAction).
func New(d dispatcher, remote Remote, log logging.Logger) *Service {
	return &Service{d: d, remote: remote, log: log}
}

// OnAction is the store subscription entry point.
//
// A document without unsynced local edits, or without a remote identity
// yet, reports no-sync-needed. Otherwise the snapshot is acknowledged
// by the remote and installed back (marker cleared) before the success
// report.
func (s *Service) OnAction(st models.State, a store.Action) {
	if _, ok := a.(store.SynchronizeStarted); !ok {
		return
	}

	ctx := context.Background()
	cur := st.Current

	secret, synchronized := st.Identity.Secret()
	if cur == nil || cur.LastModifiedLocally == nil || !synchronized {
		s.d.Dispatch(store.NoSyncNeeded{})
		return
	}

	acked, err := s.remote.Acknowledge(ctx, cur, secret)
	if err != nil {
		s.log.Error(ctx, "synchronization failed", "uuid", cur.UUID, "error", err)
		return
	}

	s.d.Dispatch(store.UpdateCurrentDocument{Document: acked})
	s.d.Dispatch(store.SynchronizeSuccess{})
}
