package jsonstore

import (
	"errors"
	"fmt"
)

// Kind classifies a store failure.
type Kind string

const (
	// KindIO covers filesystem failures: permissions, disk full, concurrent deletion.
	KindIO Kind = "io"
	// KindDeserialize means the persisted content is not valid JSON or has the wrong shape.
	KindDeserialize Kind = "deserialize"
	// KindSerialize means the value could not be encoded.
	KindSerialize Kind = "serialize"
)

// Error is returned by every fallible store operation.
type Error struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %s: %v", e.Op, e.Path, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, op, path string, err error) error {
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var storeErr *Error
	if errors.As(err, &storeErr) {
		return storeErr.Kind
	}
	return ""
}

// IsKind reports whether err carries a store error of the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
