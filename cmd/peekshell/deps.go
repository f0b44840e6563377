/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"fmt"
	"sync"

	"github.com/cristianoliveira/peekshell/internal/config"
	"github.com/cristianoliveira/peekshell/internal/logging"
	"github.com/cristianoliveira/peekshell/internal/paths"
	"github.com/cristianoliveira/peekshell/internal/profile"
	"github.com/cristianoliveira/peekshell/internal/settings"
	"github.com/cristianoliveira/peekshell/internal/state"
	"github.com/cristianoliveira/peekshell/internal/storage"
)

// appClient opens the state manager on first use, after the root command has
// loaded configuration and applied flags.
type appClient struct {
	once sync.Once
	m    *state.Manager
	err  error
}

func newAppClient() *appClient {
	return &appClient{}
}

func (a *appClient) Manager() (*state.Manager, error) {
	a.once.Do(func() {
		p := paths.Resolve(
			config.Get("base_dir", paths.BaseDir()),
			config.Get("data_dir", ""),
			config.Get("profile_dir", ""),
		)
		store, err := storage.NewForBackend(config.Get("history_backend", storage.BackendJSON), p.DataDir)
		if err != nil {
			a.err = fmt.Errorf("open history: %w", err)
			return
		}
		a.m = state.New(state.Options{
			Paths:        p,
			HistoryStore: store,
			Logger:       logging.GetGlobal(),
		})
	})
	return a.m, a.err
}

// Close releases the manager if it was opened.
func (a *appClient) Close() error {
	if a.m == nil {
		return nil
	}
	return a.m.Close()
}

func (a *appClient) Settings() (*settings.Settings, error) {
	m, err := a.Manager()
	if err != nil {
		return nil, err
	}
	return m.Settings()
}

func (a *appClient) SetSettings(s *settings.Settings) error {
	m, err := a.Manager()
	if err != nil {
		return err
	}
	return m.SetSettings(s)
}

func (a *appClient) ResetSettings() (*settings.Settings, error) {
	m, err := a.Manager()
	if err != nil {
		return nil, err
	}
	return m.ResetSettings()
}

func (a *appClient) AppendHistory(url string) error {
	m, err := a.Manager()
	if err != nil {
		return err
	}
	return m.AppendHistory(url)
}

func (a *appClient) History() ([]string, error) {
	m, err := a.Manager()
	if err != nil {
		return nil, err
	}
	return m.History()
}

func (a *appClient) ClearHistory() error {
	m, err := a.Manager()
	if err != nil {
		return err
	}
	return m.ClearHistory()
}

func (a *appClient) LastURL() (string, error) {
	m, err := a.Manager()
	if err != nil {
		return "", err
	}
	return m.LastURL(), nil
}

func (a *appClient) RecordLastURL(url string) error {
	m, err := a.Manager()
	if err != nil {
		return err
	}
	return m.RecordLastURL(url)
}

func (a *appClient) CycleOpacity() (float64, error) {
	m, err := a.Manager()
	if err != nil {
		return 0, err
	}
	return m.CycleOpacity(), nil
}

func (a *appClient) ClearCache(hard bool) error {
	m, err := a.Manager()
	if err != nil {
		return err
	}
	return m.ClearCache(hard)
}

func (a *appClient) EnsureProfile() error {
	m, err := a.Manager()
	if err != nil {
		return err
	}
	return m.EnsureProfile()
}

func (a *appClient) Status() (state.Status, error) {
	m, err := a.Manager()
	if err != nil {
		return state.Status{}, err
	}
	return m.Status()
}

func (a *appClient) Profile() (profile.Tree, error) {
	m, err := a.Manager()
	if err != nil {
		return profile.Tree{}, err
	}
	return m.Profile(), nil
}
