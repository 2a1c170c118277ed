package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	fsutil "github.com/kk-code-lab/vfsnav/internal/fs"
	"github.com/kk-code-lab/vfsnav/internal/logging"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vfsnav.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.NotEmpty(t, cfg.Log.OutputPath)
	assert.Equal(t, "/", cfg.StartPath)
	assert.False(t, cfg.RetainMutations)
	assert.Empty(t, cfg.Tree)

	store, err := cfg.Store()
	require.NoError(t, err)
	assert.Equal(t, len(fsutil.DefaultTree()), store.Len())
}

func TestLoadTreeFromFile(t *testing.T) {
	path := writeConfig(t, `
start: /Projects
mutations:
  retain: true
log:
  level: debug
tree:
  - path: /
    children: [Projects, README.md]
  - path: /Projects
    children: [vfsnav, Notes.TXT]
`)

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.File)
	assert.Equal(t, "/Projects", cfg.StartPath)
	assert.True(t, cfg.RetainMutations)
	assert.Equal(t, "debug", cfg.Log.Level)

	require.Len(t, cfg.Tree, 2)
	// values keep their case even though viper lower-cases keys
	assert.Equal(t, []string{"vfsnav", "Notes.TXT"}, cfg.Tree[1].Children)

	store, err := cfg.Store()
	require.NoError(t, err)
	names, err := store.ListChildren("/Projects")
	require.NoError(t, err)
	assert.Equal(t, []string{"vfsnav", "Notes.TXT"}, names)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "log:\n  level: debug\n")
	t.Setenv("VFSNAV_LOG_LEVEL", "warn")
	t.Setenv("VFSNAV_START", "/documents")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/documents", cfg.StartPath)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("VFSNAV_LOG_LEVEL", "warn")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(flags)
	require.NoError(t, flags.Parse([]string{"--log-level=error", "--retain-mutations"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.True(t, cfg.RetainMutations)
}

func TestUnchangedFlagsKeepLowerPrecedenceValues(t *testing.T) {
	t.Setenv("VFSNAV_LOG_FORMAT", "json")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(flags)
	require.NoError(t, flags.Parse(nil))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("relative start", func(t *testing.T) {
		_, err := Load(writeConfig(t, "start: documents\n"), nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, fsutil.ErrInvalidPath))
	})

	t.Run("unknown log format", func(t *testing.T) {
		_, err := Load(writeConfig(t, "log:\n  format: xml\n"), nil)
		require.Error(t, err)
	})

	t.Run("tree without root", func(t *testing.T) {
		_, err := Load(writeConfig(t, "tree:\n  - path: /a\n    children: [b]\n"), nil)
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
		require.Error(t, err)
	})
}

func TestStoreRejectsInvalidTree(t *testing.T) {
	cfg := &Config{StartPath: "/", Log: logging.Config{Level: "info", Format: "console"}, Tree: []fsutil.Directory{
		{Path: "/", Children: []string{"a/b"}},
	}}
	require.NoError(t, cfg.Validate())

	_, err := cfg.Store()
	require.Error(t, err)
	assert.True(t, errors.Is(err, fsutil.ErrInvalidName))
}
