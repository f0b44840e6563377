package state

import (
	"fmt"
	"strings"
)

// MaxHistory is the number of URLs kept after any append.
const MaxHistory = 200

// AppendBounded appends url to list and keeps only the last max entries.
// The result never aliases list.
func AppendBounded(list []string, url string, max int) []string {
	out := make([]string, 0, len(list)+1)
	out = append(out, list...)
	out = append(out, url)
	if max >= 0 && len(out) > max {
		out = out[len(out)-max:]
	}
	return out
}

// AppendHistory adds url as the most recent entry and trims the oldest
// entries beyond MaxHistory.
func (m *Manager) AppendHistory(url string) error {
	if strings.TrimSpace(url) == "" {
		return fmt.Errorf("append history: %w", ErrEmptyURL)
	}

	m.historyMu.Lock()
	defer m.historyMu.Unlock()

	list, err := m.history.Load()
	if err != nil {
		m.log.Error("load history failed", "error", err, "backend", m.history.Name())
		return fmt.Errorf("append history: %w", err)
	}
	list = AppendBounded(list, url, MaxHistory)
	if err := m.history.Save(list); err != nil {
		m.log.Error("save history failed", "error", err, "backend", m.history.Name())
		return fmt.Errorf("append history: %w", err)
	}
	m.log.Debug("history appended", "url", url, "length", len(list))
	return nil
}

// History returns the persisted list, oldest first.
func (m *Manager) History() ([]string, error) {
	m.historyMu.Lock()
	defer m.historyMu.Unlock()

	list, err := m.history.Load()
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return list, nil
}

// ClearHistory persists an empty list.
func (m *Manager) ClearHistory() error {
	m.historyMu.Lock()
	defer m.historyMu.Unlock()

	if err := m.history.Save([]string{}); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	m.log.Info("history cleared")
	return nil
}

// HistoryBackend names the active history backend.
func (m *Manager) HistoryBackend() string {
	return m.history.Name()
}
