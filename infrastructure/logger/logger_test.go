package logger

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileLogger_WritesJSONLines(t *testing.T) {
	dir := t.TempDir()

	l, err := NewFileLogger(dir, "factory", false)
	require.NoError(t, err)

	l.Info("server starting")
	l.Warning("refresh token missing")
	l.Error("upload failed", errors.New("quota exceeded"))
	l.Close()

	files, err := filepath.Glob(filepath.Join(dir, "factory_*.json"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	raw, err := os.ReadFile(files[0])
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "upload failed", entry["msg"])
	assert.Equal(t, "quota exceeded", entry["error"])
	assert.Contains(t, entry["caller"], "logger_test.go")
}

func TestNop_DoesNotPanic(t *testing.T) {
	l := NewNop()
	l.Info("x")
	l.Error("x", nil)
	l.Warning("x")
	l.Close()
	assert.NotNil(t, l.Zap())
}
