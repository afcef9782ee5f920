package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Config{Level: "debug", Format: FormatJSON, Writer: &buf}))
	t.Cleanup(func() { _ = Init(Config{}) })

	logger := Component("render")
	logger.Debug().Str("format", "css").Msg("rendered")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "render", entry["component"])
	assert.Equal(t, "css", entry["format"])
	assert.Equal(t, "debug", entry["level"])
}

func TestInitFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Config{Level: "warn", Format: FormatJSON, Writer: &buf}))
	t.Cleanup(func() { _ = Init(Config{}) })

	logger := Component("watch")
	logger.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	logger.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestInitRejectsBadInput(t *testing.T) {
	assert.Error(t, Init(Config{Level: "loud"}))
	assert.Error(t, Init(Config{Format: "xml"}))
}
