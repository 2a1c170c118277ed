package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLReturnsNopBeforeInit(t *testing.T) {
	mu.Lock()
	globalLogger = nil
	mu.Unlock()

	logger := L()
	require.NotNil(t, logger)
	assert.False(t, logger.Core().Enabled(zap.ErrorLevel))
}

func TestInitWritesToOutputPath(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nav.log")
	require.NoError(t, Init(Config{Level: "debug", Format: "json", OutputPath: out}))
	t.Cleanup(func() {
		mu.Lock()
		globalLogger = nil
		mu.Unlock()
	})

	L().Debug("dispatched", zap.String("action", "open"))
	require.NoError(t, Sync())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"action":"open"`), "log output: %s", data)
}

func TestSetLevelFiltersEntries(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nav.log")
	require.NoError(t, Init(Config{Level: "info", Format: "json", OutputPath: out}))
	t.Cleanup(func() {
		mu.Lock()
		globalLogger = nil
		mu.Unlock()
	})

	L().Debug("hidden")
	SetLevel("debug")
	L().Debug("shown")
	SetLevel("not-a-level")
	require.NoError(t, Sync())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	logger, err := New(Config{Level: "loud", OutputPath: filepath.Join(t.TempDir(), "x.log")})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.InfoLevel))
	assert.False(t, logger.Core().Enabled(zap.DebugLevel))
}
