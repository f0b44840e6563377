// Package paths resolves where peekshell keeps its state.
//
// The shell is portable: by default everything lives beside the executable,
// in a "data" directory for JSON/text state and a "profile" directory for the
// embedded web engine.
package paths

import (
	"os"
	"path/filepath"
)

// Directory and file names inside the base directory.
const (
	DataDirName    = "data"
	ProfileDirName = "profile"
	CacheDirName   = "Cache"

	SettingsFileName  = "settings.json"
	HistoryFileName   = "history.json"
	HistoryDBFileName = "history.db"
	LastURLFileName   = "last_url.txt"
)

var executable = os.Executable

// BaseDir returns the directory of the running executable, falling back to
// the working directory when the executable path is unavailable.
func BaseDir() string {
	if exePath, err := executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exePath); err == nil {
			exePath = resolved
		}
		return filepath.Dir(exePath)
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

// Paths holds the two roots every state operation works under.
type Paths struct {
	DataDir    string
	ProfileDir string
}

// Resolve builds Paths under base. Non-empty dataDir or profileDir override the defaults.
func Resolve(base, dataDir, profileDir string) Paths {
	if dataDir == "" {
		dataDir = filepath.Join(base, DataDirName)
	}
	if profileDir == "" {
		profileDir = filepath.Join(base, ProfileDirName)
	}
	return Paths{DataDir: dataDir, ProfileDir: profileDir}
}

// SettingsFile returns <data>/settings.json.
func (p Paths) SettingsFile() string {
	return filepath.Join(p.DataDir, SettingsFileName)
}

// HistoryFile returns <data>/history.json.
func (p Paths) HistoryFile() string {
	return filepath.Join(p.DataDir, HistoryFileName)
}

// HistoryDB returns <data>/history.db.
func (p Paths) HistoryDB() string {
	return filepath.Join(p.DataDir, HistoryDBFileName)
}

// LastURLFile returns <data>/last_url.txt.
func (p Paths) LastURLFile() string {
	return filepath.Join(p.DataDir, LastURLFileName)
}

// CacheDir returns <profile>/Cache.
func (p Paths) CacheDir() string {
	return filepath.Join(p.ProfileDir, CacheDirName)
}
