package state

import "fmt"

// Status is a snapshot of the Manager for diagnostics.
type Status struct {
	SessionID      string  `json:"sessionId"`
	DataDir        string  `json:"dataDir"`
	ProfileDir     string  `json:"profileDir"`
	ProfileExists  bool    `json:"profileExists"`
	HistoryBackend string  `json:"historyBackend"`
	HistoryLength  int     `json:"historyLength"`
	LastURL        string  `json:"lastUrl"`
	Opacity        float64 `json:"opacity"`
}

// Status reports the current state. History read failures are returned.
func (m *Manager) Status() (Status, error) {
	list, err := m.History()
	if err != nil {
		return Status{}, fmt.Errorf("status: %w", err)
	}
	return Status{
		SessionID:      m.sessionID,
		DataDir:        m.paths.DataDir,
		ProfileDir:     m.paths.ProfileDir,
		ProfileExists:  m.profile.Exists(),
		HistoryBackend: m.history.Name(),
		HistoryLength:  len(list),
		LastURL:        m.LastURL(),
		Opacity:        m.opacity.Current(),
	}, nil
}
