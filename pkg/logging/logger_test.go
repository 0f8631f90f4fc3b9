package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "otomai.log")

	logger, err := New(path, "debug")
	require.NoError(t, err)

	logger.Debug("progress saved")
	_ = logger.Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"message":"progress saved"`)
	assert.Contains(t, string(raw), `"level":"debug"`)
}

func TestNewInvalidLevelFallsBackToInfo(t *testing.T) {
	logger, err := New(filepath.Join(t.TempDir(), "otomai.log"), "verbose")
	require.NoError(t, err)

	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
}
