package state

import (
	"fmt"

	"github.com/cristianoliveira/peekshell/internal/profile"
)

// CycleOpacity advances the window opacity and returns the new level.
func (m *Manager) CycleOpacity() float64 {
	v := m.opacity.Next()
	m.log.Debug("opacity cycled", "opacity", v)
	return v
}

// Opacity returns the current opacity level without advancing it.
func (m *Manager) Opacity() float64 {
	return m.opacity.Current()
}

// SetIgnoreCursor toggles click-through on the attached window.
func (m *Manager) SetIgnoreCursor(ignore bool) error {
	if m.window == nil {
		return fmt.Errorf("set ignore cursor: %w", ErrNoWindowHost)
	}
	if err := m.window.SetIgnoreCursorEvents(ignore); err != nil {
		return fmt.Errorf("set ignore cursor: %w", err)
	}
	return nil
}

// ClearCache removes the profile cache, or the whole profile when hard is set.
func (m *Manager) ClearCache(hard bool) error {
	if err := m.profile.ClearCache(hard); err != nil {
		m.log.Error("clear cache failed", "error", err, "hard", hard)
		return fmt.Errorf("clear cache: %w", err)
	}
	m.log.Info("cache cleared", "hard", hard)
	return nil
}

// EnsureProfile creates the profile root and exports the renderer's
// user-data variable where the platform needs one.
func (m *Manager) EnsureProfile() error {
	if err := m.profile.Ensure(); err != nil {
		return fmt.Errorf("ensure profile: %w", err)
	}
	if name, err := m.profile.ExportUserDataEnv(); err != nil {
		return fmt.Errorf("ensure profile: %w", err)
	} else if name != "" {
		m.log.Debug("profile exported", "env", name, "dir", m.profile.Root)
	}
	return nil
}

// Profile returns the profile tree.
func (m *Manager) Profile() profile.Tree {
	return m.profile
}
