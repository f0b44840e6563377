// Package jsonstore persists typed values as pretty-printed JSON files.
//
// A missing file is a normal state and yields the caller's default. Malformed
// content is never silently replaced: it surfaces as a KindDeserialize error.
package jsonstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// File permission constants
const (
	// FileModeDir is the permission for directories (rwxr-xr-x)
	FileModeDir os.FileMode = 0755
	// FileModeFile is the permission for data files (rw-r--r--)
	FileModeFile os.FileMode = 0644
)

// EnsureDir creates path and any missing parents. An existing directory is not an error.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, FileModeDir); err != nil {
		return newError(KindIO, "ensure dir", path, err)
	}
	return nil
}

// ErrNullDocument is returned by Decode for a file holding only JSON null.
var ErrNullDocument = errors.New("null document")

// Decode turns (file existence, file content) into a value.
// When the file does not exist def is returned unchanged. Otherwise data is
// decoded into a fresh zero T; def never fills in absent keys.
func Decode[T any](data []byte, exists bool, def T) (T, error) {
	var value T
	if !exists {
		return def, nil
	}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return value, ErrNullDocument
	}
	if err := json.Unmarshal(data, &value); err != nil {
		var zero T
		return zero, err
	}
	return value, nil
}

// ReadOrDefault reads path and decodes it as JSON, returning def if the file is absent.
func ReadOrDefault[T any](path string, def T) (T, error) {
	data, exists, err := readFile(path)
	if err != nil {
		var zero T
		return zero, newError(KindIO, "read", path, err)
	}
	value, err := Decode(data, exists, def)
	if err != nil {
		var zero T
		return zero, newError(KindDeserialize, "read", path, err)
	}
	return value, nil
}

// WriteValue encodes value with two-space indentation and replaces path atomically.
// Parent directories are created as needed.
func WriteValue[T any](path string, value T) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return newError(KindSerialize, "write", path, err)
	}
	if err := writeAtomic(path, data); err != nil {
		return newError(KindIO, "write", path, err)
	}
	return nil
}

// ReadText returns the raw content of path. Unlike ReadOrDefault a missing
// file is reported as a KindIO error wrapping fs.ErrNotExist.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", newError(KindIO, "read", path, err)
	}
	return string(data), nil
}

// WriteText replaces path with text, unwrapped.
func WriteText(path, text string) error {
	if err := writeAtomic(path, []byte(text)); err != nil {
		return newError(KindIO, "write", path, err)
	}
	return nil
}

// RemoveDirIfExists deletes the subtree at path. A missing path is not an error.
func RemoveDirIfExists(path string) error {
	if _, err := os.Lstat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return newError(KindIO, "remove", path, err)
	}
	if err := os.RemoveAll(path); err != nil {
		return newError(KindIO, "remove", path, err)
	}
	return nil
}

func readFile(path string) ([]byte, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

// writeAtomic writes data to a sibling temp file and renames it over path.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, FileModeDir); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Chmod(FileModeFile); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
