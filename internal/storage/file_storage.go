package storage

import (
	"github.com/cristianoliveira/peekshell/internal/jsonstore"
)

// FileStorage keeps history as a pretty-printed JSON array.
type FileStorage struct {
	path string
}

// NewFileStorage creates a JSON history store at path. The file is created on first Save.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Load reads the history file, returning an empty list if it does not exist.
func (fs *FileStorage) Load() ([]string, error) {
	return jsonstore.ReadOrDefault(fs.path, []string{})
}

// Save replaces the history file with urls.
func (fs *FileStorage) Save(urls []string) error {
	if urls == nil {
		urls = []string{}
	}
	return jsonstore.WriteValue(fs.path, urls)
}

// Name returns the backend name.
func (fs *FileStorage) Name() string {
	return BackendJSON
}

// Path returns the history file location.
func (fs *FileStorage) Path() string {
	return fs.path
}

// Close is a no-op for file storage.
func (fs *FileStorage) Close() error {
	return nil
}
