// Package intents turns user-level editing intents into ordered action
// sequences and emits them through the store.
//
// Each intent is planned as a single []store.Action so the emission
// order is explicit data rather than incidental call order; between the
// emissions of one plan, subscribers may observe intermediate states.
package intents

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/markpad/internal/editor/models"
	"github.com/dmitrijs2005/markpad/internal/editor/store"
)

// Dispatcher is the store surface the intents layer needs.
type Dispatcher interface {
	State() models.State
	Dispatch(a store.Action) models.State
}

// Intents plans and emits action sequences for editor intents.
type Intents struct {
	d Dispatcher

	// Seams for deterministic tests.
	now       func() time.Time
	newUUID   func() string
	newSecret func() string
}

// New returns an Intents layer bound to the given store.
func New(d Dispatcher) *Intents {
	return &Intents{
		d:         d,
		now:       time.Now,
		newUUID:   uuid.NewString,
		newSecret: randomSecret,
	}
}

// LoadDefault resets the editor to a blank default document.
func (it *Intents) LoadDefault() {
	it.emit([]store.Action{store.LoadDefault{}})
}

// LoadSuccess installs an authoritative document and unconditionally
// requests a synchronization round; the sync subsystem reports its own
// outcome through independent signals.
func (it *Intents) LoadSuccess(doc *models.Document, secret string) {
	it.emit([]store.Action{
		store.LoadSuccess{Document: doc, Secret: secret},
		store.SynchronizeStarted{},
	})
}

// UpdateContent applies a local content edit. On a document that never
// had a remote identity, the edit becomes the document's first full
// representation under a fresh uuid and secret instead of an
// incremental update against an identity that does not yet exist.
func (it *Intents) UpdateContent(content string) {
	st := it.d.State()
	if st.Identity.IsNew() {
		doc := models.FirstRepresentation(it.newUUID(), content, st.Current.Template, it.now())
		it.emit(firstRepresentationPlan(doc, it.newSecret()))
		return
	}
	it.emit([]store.Action{
		store.UpdateContent{Content: content, At: it.now()},
		store.LocalPersistDue{},
	})
}

// UpdateTemplate applies a local template edit, with the same
// new-document rule as UpdateContent.
func (it *Intents) UpdateTemplate(template string) {
	st := it.d.State()
	if st.Identity.IsNew() {
		doc := models.FirstRepresentation(it.newUUID(), st.Current.Content, template, it.now())
		it.emit(firstRepresentationPlan(doc, it.newSecret()))
		return
	}
	it.emit([]store.Action{
		store.UpdateTemplate{Template: template, At: it.now()},
		store.LocalPersistDue{},
	})
}

// ToggleTaskListItem flips the index-th checkbox of the current
// document. Synchronized documents are also scheduled for a local
// persist; a document without a remote identity is not promoted by a
// toggle alone.
func (it *Intents) ToggleTaskListItem(index int) {
	plan := []store.Action{store.ToggleTaskListItem{Index: index, At: it.now()}}
	if !it.d.State().Identity.IsNew() {
		plan = append(plan, store.LocalPersistDue{})
	}
	it.emit(plan)
}

// NotFound reports a missing document and falls back to a blank
// default document.
func (it *Intents) NotFound() {
	it.emit(failurePlan("the requested document could not be found"))
}

// DecryptionFailed reports a document that could not be decrypted and
// falls back to a blank default document.
func (it *Intents) DecryptionFailed() {
	it.emit(failurePlan("the document could not be decrypted with the given secret"))
}

// ServerUnreachable reports an unreachable remote and falls back to a
// blank default document.
func (it *Intents) ServerUnreachable() {
	it.emit(failurePlan("the server is unreachable"))
}

func (it *Intents) emit(plan []store.Action) {
	for _, a := range plan {
		it.d.Dispatch(a)
	}
}

func firstRepresentationPlan(doc *models.Document, secret string) []store.Action {
	return []store.Action{
		store.LoadSuccess{Document: doc, Secret: secret},
		store.SynchronizeStarted{},
		store.LocalPersistDue{},
	}
}

// failurePlan is the uniform recovery for externally-detected load
// failures: notify, then reset to a default document. The user is never
// left on a half-initialized document.
func failurePlan(message string) []store.Action {
	return []store.Action{
		store.Notification{Level: store.LevelError, Message: message},
		store.LoadDefault{},
	}
}

// randomSecret generates the opaque capability string a document syncs
// under.
func randomSecret() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}
