package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_TextRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info", "text")
	ctx := context.Background()

	log.Debug(ctx, "hidden")
	log.Info(ctx, "shown", "key", "value")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "key=value")
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info", "json")

	log.Error(context.Background(), "boom", "uuid", "u1")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "boom", entry["msg"])
	assert.Equal(t, "u1", entry["uuid"])
	assert.Equal(t, "ERROR", entry["level"])
}

func TestWith_AddsPersistentAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "debug", "text").With("component", "saver")

	log.Warn(context.Background(), "slow write")

	assert.Contains(t, buf.String(), "component=saver")
}

func TestParseLevel_UnknownFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "bogus", "text")
	ctx := context.Background()

	log.Debug(ctx, "hidden")
	log.Info(ctx, "shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
