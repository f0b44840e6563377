package state

import (
	"fmt"

	"github.com/cristianoliveira/peekshell/internal/jsonstore"
	"github.com/cristianoliveira/peekshell/internal/settings"
)

// Settings returns the persisted settings, or the defaults when none were
// saved. Reading never creates the settings file.
func (m *Manager) Settings() (*settings.Settings, error) {
	s, err := jsonstore.ReadOrDefault(m.paths.SettingsFile(), settings.DefaultSettings())
	if err != nil {
		m.log.Error("read settings failed", "error", err)
		return nil, fmt.Errorf("read settings: %w", err)
	}
	return s, nil
}

// SetSettings replaces the whole persisted record. Field values are stored
// as given.
func (m *Manager) SetSettings(s *settings.Settings) error {
	if s == nil {
		return fmt.Errorf("write settings: %w", settings.ErrInvalid)
	}
	if err := jsonstore.WriteValue(m.paths.SettingsFile(), s); err != nil {
		m.log.Error("write settings failed", "error", err)
		return fmt.Errorf("write settings: %w", err)
	}
	m.log.Info("settings written", "lang", s.Lang)
	return nil
}

// ResetSettings persists the defaults and returns them.
func (m *Manager) ResetSettings() (*settings.Settings, error) {
	s := settings.DefaultSettings()
	if err := m.SetSettings(s); err != nil {
		return nil, err
	}
	return s, nil
}
