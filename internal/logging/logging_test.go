package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(zapcore.AddSync(&buf), zapcore.InfoLevel)

	logger.Debug("hidden")
	logger.Info("page loaded", zap.String("path", "/top"))
	require.NoError(t, logger.Sync())

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "page loaded", entry["msg"])
	assert.Equal(t, "/top", entry["path"])
	assert.Equal(t, "schemegrip", entry["service"])
	assert.Contains(t, entry, "ts")
}

func TestSetupInstallsGlobalLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schemegrip.log")

	closeFn, err := Setup(path, "debug")
	require.NoError(t, err)
	zap.L().Debug("hello")
	closeFn()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestSetupRejectsBadLevel(t *testing.T) {
	_, err := Setup(filepath.Join(t.TempDir(), "x.log"), "loud")
	assert.Error(t, err)
}
