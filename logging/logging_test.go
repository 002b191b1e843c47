package logging_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/perceptron/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_LevelFiltering checks that entries below the level are dropped.
func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New("trainer", logging.Config{Level: logging.LevelInfo, Output: &buf})
	require.NoError(t, err)

	log.Debugw("hidden", "epoch", 1)
	log.Infow("training started", "samples", 4)
	require.NoError(t, log.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[INFO]")
	assert.Contains(t, out, "trainer")
	assert.Contains(t, out, "training started")
	assert.Contains(t, out, `{"samples": 4}`)
}

// TestNew_Debug enables debug entries.
func TestNew_Debug(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New("trainer", logging.Config{Level: "debug", Output: &buf, ShowLine: true})
	require.NoError(t, err)

	log.Debug("epoch done")
	assert.Contains(t, buf.String(), "[DEBUG]")
	assert.Contains(t, buf.String(), "logging_test.go")
}

// TestNew_BadLevel rejects unknown level names.
func TestNew_BadLevel(t *testing.T) {
	_, err := logging.New("x", logging.Config{Level: "loud"})
	assert.ErrorIs(t, err, logging.ErrBadLevel)
}

// TestNew_ZeroConfig logs at info level without caller annotations.
func TestNew_ZeroConfig(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New("x", logging.Config{Output: &buf})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Warnw("slow epoch", "epoch", 3)
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARN]")
	assert.NotContains(t, out, "logging_test.go")
}
