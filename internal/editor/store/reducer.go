package store

import (
	"github.com/dmitrijs2005/markpad/internal/editor/models"
	"github.com/dmitrijs2005/markpad/internal/editor/tasklist"
)

// Reduce computes the next state from the current state and an action.
// It is pure and total: actions it does not interpret (signals,
// unknown actions) return the state unchanged.
//
// Every transition that changes the logical content of Current yields a
// new *models.Document; a no-op toggle keeps both the document pointer
// and the local-modification marker untouched. ForceUpdate survives
// only until the next interpreted action.
func Reduce(s models.State, a Action) models.State {
	switch a := a.(type) {
	case LoadDefault:
		s.Current = models.NewDocument()
		s.Loaded = true
		s.Identity = models.NewDocumentIdentity()
		s.ForceUpdate = false

	case LoadSuccess:
		s.Current = a.Document
		s.Identity = models.SynchronizedIdentity(a.Secret)
		s.Loaded = true
		s.ForceUpdate = false

	case UpdateTemplate:
		s.Current = s.Current.WithTemplate(a.Template, a.At)
		s.ForceUpdate = false

	case UpdateContent:
		s.Current = s.Current.WithContent(a.Content, a.At)
		s.ForceUpdate = false

	case ToggleTaskListItem:
		if next := tasklist.Toggle(s.Current.Content, a.Index); next != s.Current.Content {
			s.Current = s.Current.WithContent(next, a.At)
		}
		s.ForceUpdate = false

	case ForceUpdateCurrentDocument:
		s.Current = a.Document
		s.ForceUpdate = true

	case UpdateCurrentDocument:
		s.Current = a.Document
		s.ForceUpdate = false
	}

	return s
}
