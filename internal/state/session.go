package state

import (
	"fmt"
	"strings"

	"github.com/cristianoliveira/peekshell/internal/jsonstore"
)

// LastURL returns the last recorded URL. Missing or unreadable files yield "".
func (m *Manager) LastURL() string {
	text, err := jsonstore.ReadText(m.paths.LastURLFile())
	if err != nil {
		m.log.Debug("last url unavailable", "error", err)
		return ""
	}
	return text
}

// RecordLastURL overwrites the last visited URL.
func (m *Manager) RecordLastURL(url string) error {
	if strings.TrimSpace(url) == "" {
		return fmt.Errorf("record last url: %w", ErrEmptyURL)
	}
	if err := jsonstore.WriteText(m.paths.LastURLFile(), url); err != nil {
		m.log.Warn("record last url failed", "error", err)
		return fmt.Errorf("record last url: %w", err)
	}
	return nil
}
