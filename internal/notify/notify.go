// Package notify is the notification collaborator: it consumes
// user-facing notification signals from the store, logs them, and keeps
// the latest ones for the interactive surface to display.
package notify

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/markpad/internal/editor/models"
	"github.com/dmitrijs2005/markpad/internal/editor/store"
	"github.com/dmitrijs2005/markpad/internal/logging"
)

// defaultKeep bounds the retained notification history.
const defaultKeep = 10

// Service retains and logs user-facing notifications.
type Service struct {
	log logging.Logger

	mu     sync.Mutex
	recent []store.Notification
}

// New returns a notification service logging through log. Register it
// with the store via store.Subscribe(svc.OnAction).
func New(log logging.Logger) *Service {
	return &Service{log: log}
}

// OnAction is the store subscription entry point.
func (s *Service) OnAction(_ models.State, a store.Action) {
	n, ok := a.(store.Notification)
	if !ok {
		return
	}

	ctx := context.Background()
	switch n.Level {
	case store.LevelError:
		s.log.Error(ctx, n.Message)
	default:
		s.log.Info(ctx, n.Message, "level", string(n.Level))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.recent = append(s.recent, n)
	if len(s.recent) > defaultKeep {
		s.recent = s.recent[len(s.recent)-defaultKeep:]
	}
}

// Recent returns the retained notifications, oldest first.
func (s *Service) Recent() []store.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]store.Notification, len(s.recent))
	copy(out, s.recent)
	return out
}
