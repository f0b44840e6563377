// Package state is the application state manager: settings, bounded history,
// the last visited URL, the opacity cycle and the profile cache, all rooted
// at explicitly injected paths.
package state

import (
	"errors"
	"sync"

	"github.com/cristianoliveira/peekshell/internal/logging"
	"github.com/cristianoliveira/peekshell/internal/opacity"
	"github.com/cristianoliveira/peekshell/internal/paths"
	"github.com/cristianoliveira/peekshell/internal/profile"
	"github.com/cristianoliveira/peekshell/internal/storage"
	"github.com/google/uuid"
)

var (
	// ErrEmptyURL is returned when a blank URL is appended or recorded.
	ErrEmptyURL = errors.New("url cannot be empty")
	// ErrNoWindowHost is returned by window operations when no window is attached.
	ErrNoWindowHost = errors.New("no window host attached")
)

// WindowHost is the native window the shell runs in.
type WindowHost interface {
	SetIgnoreCursorEvents(ignore bool) error
}

// Options configures a Manager.
type Options struct {
	Paths paths.Paths
	// HistoryStore defaults to the JSON file under Paths.DataDir.
	HistoryStore storage.HistoryStore
	// Logger defaults to the global logger.
	Logger logging.Logger
	// WindowHost is optional; without it SetIgnoreCursor fails with ErrNoWindowHost.
	WindowHost WindowHost
}

// Manager owns all persisted and in-memory shell state for one process.
type Manager struct {
	paths     paths.Paths
	history   storage.HistoryStore
	log       logging.Logger
	window    WindowHost
	opacity   *opacity.Cycler
	profile   profile.Tree
	sessionID string

	// historyMu serializes the load-append-save cycle within this process.
	historyMu sync.Mutex
}

// New returns a Manager for opts.
func New(opts Options) *Manager {
	sessionID := uuid.NewString()
	history := opts.HistoryStore
	if history == nil {
		history = storage.NewFileStorage(opts.Paths.HistoryFile())
	}
	log := opts.Logger
	if log == nil {
		log = logging.GetGlobal()
	}
	return &Manager{
		paths:     opts.Paths,
		history:   history,
		log:       log.With("component", "state", "session", sessionID),
		window:    opts.WindowHost,
		opacity:   opacity.NewCycler(),
		profile:   profile.New(opts.Paths.ProfileDir),
		sessionID: sessionID,
	}
}

// SessionID identifies this Manager instance in logs and status output.
func (m *Manager) SessionID() string {
	return m.sessionID
}

// Paths returns the directories the Manager works under.
func (m *Manager) Paths() paths.Paths {
	return m.paths
}

// Close releases the history backend.
func (m *Manager) Close() error {
	return m.history.Close()
}
