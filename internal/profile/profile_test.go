package profile

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T) (Tree, string) {
	t.Helper()
	root := filepath.Join(t.TempDir(), "profile")
	tree := New(root)
	require.NoError(t, os.MkdirAll(filepath.Join(tree.CacheDir(), "js"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tree.CacheDir(), "js", "a.bin"), []byte("x"), 0o644))
	sibling := filepath.Join(root, "Local Storage")
	require.NoError(t, os.MkdirAll(sibling, 0o755))
	return tree, sibling
}

func TestClearCacheSoftKeepsSiblings(t *testing.T) {
	tree, sibling := seed(t)

	require.NoError(t, tree.ClearCache(false))

	assert.NoDirExists(t, tree.CacheDir())
	assert.DirExists(t, sibling)
	assert.True(t, tree.Exists())
}

func TestClearCacheHardRemovesRoot(t *testing.T) {
	tree, _ := seed(t)

	require.NoError(t, tree.ClearCache(true))

	assert.NoDirExists(t, tree.Root)
	assert.False(t, tree.Exists())
}

func TestClearCacheIsIdempotent(t *testing.T) {
	tree := New(filepath.Join(t.TempDir(), "never-created"))

	require.NoError(t, tree.ClearCache(false))
	require.NoError(t, tree.ClearCache(true))
	require.NoError(t, tree.ClearCache(true))
}

func TestEnsure(t *testing.T) {
	tree := New(filepath.Join(t.TempDir(), "a", "profile"))

	require.NoError(t, tree.Ensure())
	require.NoError(t, tree.Ensure())
	assert.DirExists(t, tree.Root)

	assert.Error(t, New("").Ensure())
}

func TestUserDataEnv(t *testing.T) {
	tree := New(t.TempDir())
	name, value := tree.UserDataEnv()

	if runtime.GOOS == "windows" {
		assert.Equal(t, "WEBVIEW2_USER_DATA_FOLDER", name)
		assert.Equal(t, tree.Root, value)
		t.Setenv(name, "")
		exported, err := tree.ExportUserDataEnv()
		require.NoError(t, err)
		assert.Equal(t, name, exported)
		assert.Equal(t, tree.Root, os.Getenv(name))
		return
	}

	assert.Empty(t, name)
	assert.Empty(t, value)
	exported, err := tree.ExportUserDataEnv()
	require.NoError(t, err)
	assert.Empty(t, exported)
}
