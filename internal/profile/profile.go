// Package profile manages the embedded web engine's profile tree: the root
// folder and its Cache subdirectory.
package profile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cristianoliveira/peekshell/internal/jsonstore"
	"github.com/cristianoliveira/peekshell/internal/paths"
)

// Tree is a profile root on disk.
type Tree struct {
	Root string
}

// New returns the Tree rooted at root.
func New(root string) Tree {
	return Tree{Root: root}
}

// CacheDir returns <root>/Cache.
func (t Tree) CacheDir() string {
	return filepath.Join(t.Root, paths.CacheDirName)
}

// Ensure creates the profile root if it is missing.
func (t Tree) Ensure() error {
	if t.Root == "" {
		return fmt.Errorf("profile root is empty")
	}
	return jsonstore.EnsureDir(t.Root)
}

// ClearCache removes the Cache directory. With hard set it removes the whole
// root as well. Both steps are no-ops when the target is already gone.
func (t Tree) ClearCache(hard bool) error {
	if err := jsonstore.RemoveDirIfExists(t.CacheDir()); err != nil {
		return err
	}
	if hard {
		return jsonstore.RemoveDirIfExists(t.Root)
	}
	return nil
}

// Exists reports whether the root is present as a directory.
func (t Tree) Exists() bool {
	info, err := os.Stat(t.Root)
	return err == nil && info.IsDir()
}

// UserDataEnv returns the environment variable the platform's web renderer
// reads its profile location from. Both values are empty where the renderer
// takes the location some other way.
func (t Tree) UserDataEnv() (name, value string) {
	if userDataEnvName == "" {
		return "", ""
	}
	return userDataEnvName, t.Root
}

// ExportUserDataEnv sets the renderer's profile variable for this process and
// its children. It returns the variable name, or "" when nothing was set.
func (t Tree) ExportUserDataEnv() (string, error) {
	name, value := t.UserDataEnv()
	if name == "" {
		return "", nil
	}
	if err := os.Setenv(name, value); err != nil {
		return "", fmt.Errorf("export %s: %w", name, err)
	}
	return name, nil
}
