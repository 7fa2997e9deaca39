package persist

import (
	"context"

	"github.com/dmitrijs2005/markpad/internal/editor/models"
	"github.com/dmitrijs2005/markpad/internal/editor/store"
	"github.com/dmitrijs2005/markpad/internal/logging"
)

// Saver writes the current snapshot to the repository whenever a
// local-persist-due signal passes through the store. Fire-and-forget:
// failures are logged, never surfaced to the dispatching code.
type Saver struct {
	repo Repository
	log  logging.Logger
}

// NewSaver returns a Saver persisting into repo. Register it with the
// store via store.Subscribe(saver.OnAction).
func NewSaver(repo Repository, log logging.Logger) *Saver {
	return &Saver{repo: repo, log: log}
}

// OnAction is the store subscription entry point. Documents without a
// remote identity yet (no uuid) are skipped; they get persisted once
// their first full representation is installed.
func (s *Saver) OnAction(st models.State, a store.Action) {
	if _, ok := a.(store.LocalPersistDue); !ok {
		return
	}
	doc := st.Current
	if doc == nil || doc.UUID == "" {
		return
	}

	secret, _ := st.Identity.Secret()

	ctx := context.Background()
	if err := s.repo.Save(ctx, &Record{Document: doc, Secret: secret}); err != nil {
		s.log.Error(ctx, "local persist failed", "uuid", doc.UUID, "error", err)
		return
	}
	s.log.Debug(ctx, "document persisted", "uuid", doc.UUID)
}
