package models

// Identity tells whether the active document has ever been bound to a
// remote identity and, if so, under which secret. It replaces a
// null-secret sentinel: callers branch on IsNew instead of comparing
// against nil.
type Identity struct {
	synchronized bool
	secret       string
}

// NewDocumentIdentity is the identity of a document that was never
// persisted remotely.
func NewDocumentIdentity() Identity {
	return Identity{}
}

// SynchronizedIdentity is the identity of a document known to the
// remote under the given secret.
func SynchronizedIdentity(secret string) Identity {
	return Identity{synchronized: true, secret: secret}
}

// IsNew reports whether the document has no remote identity yet.
func (i Identity) IsNew() bool {
	return !i.synchronized
}

// Secret returns the sync secret and whether one exists.
func (i Identity) Secret() (string, bool) {
	return i.secret, i.synchronized
}

// State is the single document state slice. It is written exclusively
// by the reducer; everything else reads value snapshots of it.
type State struct {
	// Current is the active document.
	Current *Document

	// Loaded becomes true once any load action has been processed.
	Loaded bool

	// Identity discriminates new documents from synchronized ones.
	Identity Identity

	// ForceUpdate is true only in the state immediately following a
	// forced replacement of Current by a non-local actor. Consumers use
	// it to suppress re-render loops and conflict prompts.
	ForceUpdate bool
}

// InitialState is the state before any action was dispatched.
func InitialState() State {
	return State{Current: NewDocument()}
}
