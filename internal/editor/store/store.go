package store

import (
	"sync"

	"github.com/dmitrijs2005/markpad/internal/editor/models"
)

// Subscriber receives the post-reduction state together with the action
// that produced it.
type Subscriber func(models.State, Action)

// Store holds the single document state slice. Dispatch is the only
// writer; everything else reads value snapshots.
//
// Fan-out to subscribers happens outside the lock and in subscription
// order, so a subscriber may dispatch follow-up actions from within its
// callback. Dispatch is cooperative: each action is reduced and fanned
// out to completion before the caller regains control.
type Store struct {
	mu    sync.Mutex
	state models.State
	subs  []Subscriber
}

// New returns a store holding the initial state.
func New() *Store {
	return &Store{state: models.InitialState()}
}

// State returns a snapshot of the current state.
func (s *Store) State() models.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn for every subsequently dispatched action.
func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Dispatch runs the action through the reducer, notifies subscribers,
// and returns the resulting state.
func (s *Store) Dispatch(a Action) models.State {
	s.mu.Lock()
	s.state = Reduce(s.state, a)
	next := s.state
	subs := s.subs
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next, a)
	}
	return next
}
