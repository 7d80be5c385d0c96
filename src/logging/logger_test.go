package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithComponentWritesStructuredLine(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "info", Output: &buf})
	t.Cleanup(func() { Configure(Config{}) })

	l := WithComponent("compose")
	l.Warn().Str("package", "eslint-plugin-jsx-a11y").Msg("missing")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "compose", entry["component"])
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "eslint-plugin-jsx-a11y", entry["package"])
	assert.Equal(t, "missing", entry["message"])
}

func TestLevelFiltersBelowThreshold(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "error", Output: &buf})
	t.Cleanup(func() { Configure(Config{}) })

	l := Base()
	l.Warn().Msg("dropped")

	assert.Zero(t, buf.Len())
}

func TestDefaultLevelIsWarn(t *testing.T) {
	t.Setenv("ASTROMATE_LOG_LEVEL", "")
	var buf bytes.Buffer
	Configure(Config{Output: &buf})
	t.Cleanup(func() { Configure(Config{}) })

	l := Base()
	l.Info().Msg("dropped")
	l.Warn().Msg("kept")

	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")))
}
