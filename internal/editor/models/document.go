// Package models defines the document snapshot and editor state types
// used by the markpad store.
package models

import "time"

// Document is one markdown document together with its sync status.
//
// Values are immutable snapshots: the With* helpers return a fresh
// *Document and never modify the receiver, so callers can compare
// pointers to detect change cheaply.
type Document struct {
	// UUID is empty until the document is first given a remote identity.
	UUID string

	// Content is the raw markdown source.
	Content string

	// Template names the rendering style applied to the document.
	Template string

	// LastModifiedLocally is nil while there is no unsynced local edit.
	// It is set whenever content or template is changed through a local
	// edit path and cleared only by authoritative replacement.
	LastModifiedLocally *time.Time
}

// NewDocument returns a blank default document.
func NewDocument() *Document {
	return &Document{}
}

// LoadedDocument returns a snapshot as delivered by an authoritative
// source. The local-modification marker is clear.
func LoadedDocument(uuid, content, template string) *Document {
	return &Document{UUID: uuid, Content: content, Template: template}
}

// FirstRepresentation builds the initial snapshot for a document that
// was edited before it ever had a remote identity. The edit counts as
// unsynced local history.
func FirstRepresentation(uuid, content, template string, at time.Time) *Document {
	return &Document{UUID: uuid, Content: content, Template: template, LastModifiedLocally: &at}
}

// WithContent returns a snapshot with Content replaced. The marker is
// stamped when the value actually changed, or refreshed when the
// document already carries unsynced local history.
func (d *Document) WithContent(content string, at time.Time) *Document {
	next := *d
	next.Content = content
	next.stamp(d.Content != content, at)
	return &next
}

// WithTemplate returns a snapshot with Template replaced, following the
// same marker rule as WithContent.
func (d *Document) WithTemplate(template string, at time.Time) *Document {
	next := *d
	next.Template = template
	next.stamp(d.Template != template, at)
	return &next
}

// Synced returns the snapshot with its unsynced-edit marker cleared, as
// it would come back from an authoritative source.
func (d *Document) Synced() *Document {
	next := *d
	next.LastModifiedLocally = nil
	return &next
}

func (d *Document) stamp(changed bool, at time.Time) {
	if changed || d.LastModifiedLocally != nil {
		d.LastModifiedLocally = &at
	}
}
