// Package store implements the document state store: the action
// vocabulary, the pure reducer, and the dispatcher that fans actions
// out to collaborator subsystems.
package store

import (
	"time"

	"github.com/dmitrijs2005/markpad/internal/editor/models"
)

// Action is anything that can flow through the store. Edit actions are
// interpreted by the reducer; signal actions pass the state through
// untouched and exist for subscribers.
type Action interface {
	isAction()
}

// LoadDefault resets the editor to a blank default document.
type LoadDefault struct{}

// LoadSuccess installs a document delivered by an authoritative source
// together with the secret it syncs under.
type LoadSuccess struct {
	Document *models.Document
	Secret   string
}

// UpdateTemplate applies a local template edit. At is the edit time,
// captured by the action creator so the reducer stays pure.
type UpdateTemplate struct {
	Template string
	At       time.Time
}

// UpdateContent applies a local content edit.
type UpdateContent struct {
	Content string
	At      time.Time
}

// ToggleTaskListItem flips the checkbox of the Index-th task-list item
// in the current document.
type ToggleTaskListItem struct {
	Index int
	At    time.Time
}

// ForceUpdateCurrentDocument replaces the active document on behalf of
// a non-local actor, e.g. a remote push.
type ForceUpdateCurrentDocument struct {
	Document *models.Document
}

// UpdateCurrentDocument replaces the active document through a
// locally-driven path, e.g. a programmatic reset or a sync acknowledge.
type UpdateCurrentDocument struct {
	Document *models.Document
}

// SynchronizeStarted asks the synchronization subsystem for a sync
// round on the current document.
type SynchronizeStarted struct{}

// NoSyncNeeded is the synchronization subsystem's report that the
// current document has nothing to sync.
type NoSyncNeeded struct{}

// SynchronizeSuccess is the synchronization subsystem's report that a
// sync round completed.
type SynchronizeSuccess struct{}

// LocalPersistDue tells the persistence subsystem that the current
// document should be written to local storage.
type LocalPersistDue struct{}

// Level classifies a user-facing notification.
type Level string

const (
	LevelError Level = "error"
	LevelInfo  Level = "info"
)

// Notification carries a user-facing message for the notification
// subsystem.
type Notification struct {
	Level   Level
	Message string
}

func (LoadDefault) isAction()                {}
func (LoadSuccess) isAction()                {}
func (UpdateTemplate) isAction()             {}
func (UpdateContent) isAction()              {}
func (ToggleTaskListItem) isAction()         {}
func (ForceUpdateCurrentDocument) isAction() {}
func (UpdateCurrentDocument) isAction()      {}
func (SynchronizeStarted) isAction()         {}
func (NoSyncNeeded) isAction()               {}
func (SynchronizeSuccess) isAction()         {}
func (LocalPersistDue) isAction()            {}
func (Notification) isAction()               {}
