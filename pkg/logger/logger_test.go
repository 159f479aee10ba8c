package logger

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(&buf, "warn")
	require.NoError(t, err)

	log.Info("checkout started for room=%s", "room_1")
	log.Warn("dates unavailable for room=%s", "room_1")

	out := buf.String()
	assert.NotContains(t, out, "checkout started")
	assert.Contains(t, out, "dates unavailable for room=room_1")
	assert.Contains(t, out, "level=warning")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("", "verbose")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLevel)
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.log")

	log, err := New(path, "info")
	require.NoError(t, err)
	log.Error("payment provider failed: %v", "timeout")
	require.NoError(t, log.Close())

	assert.FileExists(t, path)
}
