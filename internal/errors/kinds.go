// Package errors maps domain failures onto the outer surfaces: CLI exit codes,
// bridge error kinds and console output.
package errors

import (
	stderrors "errors"

	"github.com/cristianoliveira/peekshell/internal/jsonstore"
	"github.com/cristianoliveira/peekshell/internal/settings"
	"github.com/cristianoliveira/peekshell/internal/state"
)

// Error kinds reported across the bridge.
const (
	KindIO          = string(jsonstore.KindIO)
	KindDeserialize = string(jsonstore.KindDeserialize)
	KindSerialize   = string(jsonstore.KindSerialize)
	KindInvalid     = "invalid"
	KindUnavailable = "unavailable"
	KindInternal    = "internal"
)

// ErrUsage marks a bad command line value.
var ErrUsage = stderrors.New("usage error")

// Exit codes follow sysexits(3).
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitUsage       = 64
	ExitData        = 65
	ExitUnavailable = 69
	ExitSoftware    = 70
	ExitIO          = 74
)

// Kind classifies err. Store errors keep their own kind; domain sentinels map
// to invalid or unavailable. Anything else is internal. A nil error has no kind.
func Kind(err error) string {
	if err == nil {
		return ""
	}
	if k := jsonstore.KindOf(err); k != "" {
		return string(k)
	}
	switch {
	case stderrors.Is(err, settings.ErrInvalid), stderrors.Is(err, state.ErrEmptyURL), stderrors.Is(err, ErrUsage):
		return KindInvalid
	case stderrors.Is(err, state.ErrNoWindowHost):
		return KindUnavailable
	}
	return KindInternal
}

// ExitCode returns the process exit code for err.
func ExitCode(err error) int {
	switch Kind(err) {
	case "":
		return ExitOK
	case KindIO:
		return ExitIO
	case KindDeserialize:
		return ExitData
	case KindSerialize:
		return ExitSoftware
	case KindInvalid:
		return ExitUsage
	case KindUnavailable:
		return ExitUnavailable
	default:
		return ExitFailure
	}
}
