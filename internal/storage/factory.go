package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cristianoliveira/peekshell/internal/colors"
	"github.com/cristianoliveira/peekshell/internal/paths"
	"github.com/cristianoliveira/peekshell/internal/storage/sqlite"
)

const (
	// BackendJSON selects the history.json file (default).
	BackendJSON = "json"
	// BackendSQLite selects history.db.
	BackendSQLite = sqlite.BackendName

	// HistoryFileName is the JSON history file inside the data directory.
	HistoryFileName = paths.HistoryFileName
	// HistoryDBFileName is the SQLite history database inside the data directory.
	HistoryDBFileName = paths.HistoryDBFileName
)

var _ HistoryStore = (*sqlite.SQLiteStorage)(nil)
var _ HistoryStore = (*FileStorage)(nil)

var importJSONHistory = sqlite.ImportJSONHistory

// NewForBackend creates a history store for the provided backend name inside dataDir.
// Unknown backends and SQLite initialization failures fall back to JSON.
func NewForBackend(backend, dataDir string) (HistoryStore, error) {
	if strings.TrimSpace(dataDir) == "" {
		return nil, fmt.Errorf("storage: data directory cannot be empty")
	}
	jsonPath := filepath.Join(dataDir, HistoryFileName)

	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendJSON:
		return NewFileStorage(jsonPath), nil
	case BackendSQLite:
		dbPath := filepath.Join(dataDir, HistoryDBFileName)
		dbExisted, err := pathExists(dbPath)
		if err != nil {
			colors.Warning(fmt.Sprintf("unable to inspect %s, falling back to json: %v", dbPath, err))
			return NewFileStorage(jsonPath), nil
		}

		sqliteStorage, err := sqlite.NewSQLiteStorage(dbPath)
		if err != nil {
			colors.Warning(fmt.Sprintf("failed to initialize sqlite backend, falling back to json: %v", err))
			return NewFileStorage(jsonPath), nil
		}

		if !dbExisted {
			if err := maybeImportJSONHistory(jsonPath, sqliteStorage); err != nil {
				_ = sqliteStorage.Close()
				_ = os.Remove(dbPath)
				colors.Warning(fmt.Sprintf("history import failed, falling back to json: %v", err))
				return NewFileStorage(jsonPath), nil
			}
		}
		return sqliteStorage, nil
	default:
		colors.Warning(fmt.Sprintf("unknown history backend '%s', falling back to json", backend))
		return NewFileStorage(jsonPath), nil
	}
}

func maybeImportJSONHistory(jsonPath string, target *sqlite.SQLiteStorage) error {
	hasJSONData, err := fileHasContent(jsonPath)
	if err != nil {
		return fmt.Errorf("check json history: %w", err)
	}
	if !hasJSONData {
		return nil
	}

	colors.Info("Detected history.json. Importing into SQLite...")
	stats, err := importJSONHistory(jsonPath, target)
	if err != nil {
		return err
	}
	colors.Success(fmt.Sprintf("History import complete: %d imported, %d skipped", stats.Imported, stats.Skipped))
	return nil
}

func pathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func fileHasContent(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if info.IsDir() {
		return false, fmt.Errorf("expected file but found directory: %s", path)
	}
	return info.Size() > 0, nil
}
