package sqlite

import (
	"fmt"
	"strings"

	"github.com/cristianoliveira/peekshell/internal/jsonstore"
)

// ImportStats summarizes a JSON to SQLite history import.
type ImportStats struct {
	Imported int
	Skipped  int
}

// ImportJSONHistory copies the entries of a history.json file into an empty
// SQLite database. Blank entries are skipped. A database that already holds
// rows is left untouched so the import is safe to repeat.
func ImportJSONHistory(jsonPath string, target *SQLiteStorage) (ImportStats, error) {
	stats := ImportStats{}

	if strings.TrimSpace(jsonPath) == "" {
		return stats, fmt.Errorf("import: json path cannot be empty")
	}
	if target == nil {
		return stats, fmt.Errorf("import: target storage cannot be nil")
	}

	existing, err := target.Count()
	if err != nil {
		return stats, fmt.Errorf("import: %w", err)
	}
	if existing > 0 {
		return stats, nil
	}

	urls, err := jsonstore.ReadOrDefault(jsonPath, []string{})
	if err != nil {
		return stats, fmt.Errorf("import: %w", err)
	}

	kept := make([]string, 0, len(urls))
	for _, url := range urls {
		if strings.TrimSpace(url) == "" {
			stats.Skipped++
			continue
		}
		kept = append(kept, url)
	}

	if err := target.Save(kept); err != nil {
		return stats, fmt.Errorf("import: %w", err)
	}
	stats.Imported = len(kept)
	return stats, nil
}
