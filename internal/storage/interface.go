// Package storage provides history backend selection and implementations.
package storage

// HistoryStore persists the ordered browsing history, most recent last.
// Implementations store exactly the list they are given; trimming is the caller's job.
type HistoryStore interface {
	// Load returns the persisted list, or an empty list when nothing was stored yet.
	Load() ([]string, error)
	// Save replaces the persisted list.
	Save(urls []string) error
	// Name identifies the backend.
	Name() string
	// Close releases backend resources.
	Close() error
}
