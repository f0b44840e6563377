package paths

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDefaults(t *testing.T) {
	base := filepath.Join("opt", "peekshell")
	p := Resolve(base, "", "")

	assert.Equal(t, filepath.Join(base, "data"), p.DataDir)
	assert.Equal(t, filepath.Join(base, "profile"), p.ProfileDir)
	assert.Equal(t, filepath.Join(base, "data", "settings.json"), p.SettingsFile())
	assert.Equal(t, filepath.Join(base, "data", "history.json"), p.HistoryFile())
	assert.Equal(t, filepath.Join(base, "data", "history.db"), p.HistoryDB())
	assert.Equal(t, filepath.Join(base, "data", "last_url.txt"), p.LastURLFile())
	assert.Equal(t, filepath.Join(base, "profile", "Cache"), p.CacheDir())
}

func TestResolveOverrides(t *testing.T) {
	p := Resolve("ignored", "/srv/state", "/srv/web")

	assert.Equal(t, "/srv/state", p.DataDir)
	assert.Equal(t, "/srv/web", p.ProfileDir)
}

func TestBaseDirUsesExecutableDir(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "peekshell")
	require.NoError(t, os.WriteFile(exe, []byte{}, 0o755))

	original := executable
	t.Cleanup(func() { executable = original })
	executable = func() (string, error) { return exe, nil }

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, want, BaseDir())
}

func TestBaseDirFallsBackToWorkingDir(t *testing.T) {
	original := executable
	t.Cleanup(func() { executable = original })
	executable = func() (string, error) { return "", errors.New("unsupported") }

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, BaseDir())
}
