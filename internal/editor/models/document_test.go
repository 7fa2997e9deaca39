package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var at = time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)

func TestWithContent_ChangeSetsMarker(t *testing.T) {
	doc := NewDocument()

	next := doc.WithContent("hello", at)

	require.NotSame(t, doc, next)
	assert.Equal(t, "hello", next.Content)
	require.NotNil(t, next.LastModifiedLocally)
	assert.Equal(t, at, *next.LastModifiedLocally)

	// The prior snapshot is untouched.
	assert.Equal(t, "", doc.Content)
	assert.Nil(t, doc.LastModifiedLocally)
}

func TestWithContent_SameValueKeepsCleanMarker(t *testing.T) {
	doc := LoadedDocument("u1", "hello", "")

	next := doc.WithContent("hello", at)

	require.NotSame(t, doc, next)
	assert.Nil(t, next.LastModifiedLocally)
}

func TestWithContent_SameValueRefreshesDirtyMarker(t *testing.T) {
	earlier := at.Add(-time.Hour)
	doc := FirstRepresentation("u1", "hello", "", earlier)

	next := doc.WithContent("hello", at)

	require.NotNil(t, next.LastModifiedLocally)
	assert.Equal(t, at, *next.LastModifiedLocally)
}

func TestWithTemplate(t *testing.T) {
	doc := LoadedDocument("u1", "hello", "letter")

	same := doc.WithTemplate("letter", at)
	require.NotSame(t, doc, same)
	assert.Nil(t, same.LastModifiedLocally)

	changed := doc.WithTemplate("invoice", at)
	assert.Equal(t, "invoice", changed.Template)
	require.NotNil(t, changed.LastModifiedLocally)
	assert.Equal(t, at, *changed.LastModifiedLocally)
}

func TestSynced_ClearsMarker(t *testing.T) {
	doc := FirstRepresentation("u1", "hello", "", at)

	synced := doc.Synced()

	assert.Nil(t, synced.LastModifiedLocally)
	assert.Equal(t, doc.Content, synced.Content)
	require.NotNil(t, doc.LastModifiedLocally)
}

func TestConstructors(t *testing.T) {
	blank := NewDocument()
	assert.Equal(t, &Document{}, blank)

	loaded := LoadedDocument("u1", "c", "letter")
	assert.Nil(t, loaded.LastModifiedLocally)

	first := FirstRepresentation("u1", "c", "letter", at)
	require.NotNil(t, first.LastModifiedLocally)
	assert.Equal(t, at, *first.LastModifiedLocally)
}

func TestIdentity(t *testing.T) {
	fresh := NewDocumentIdentity()
	assert.True(t, fresh.IsNew())
	_, ok := fresh.Secret()
	assert.False(t, ok)

	synced := SynchronizedIdentity("s3cret")
	assert.False(t, synced.IsNew())
	secret, ok := synced.Secret()
	assert.True(t, ok)
	assert.Equal(t, "s3cret", secret)
}

func TestInitialState(t *testing.T) {
	st := InitialState()

	assert.False(t, st.Loaded)
	assert.False(t, st.ForceUpdate)
	assert.True(t, st.Identity.IsNew())
	require.NotNil(t, st.Current)
	assert.Nil(t, st.Current.LastModifiedLocally)
}
