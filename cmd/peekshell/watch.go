/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cristianoliveira/peekshell/internal/colors"
	"github.com/cristianoliveira/peekshell/internal/config"
	"github.com/cristianoliveira/peekshell/internal/logging"
	"github.com/cristianoliveira/peekshell/internal/settings"
	"github.com/cristianoliveira/peekshell/internal/state"
	"github.com/cristianoliveira/peekshell/internal/watch"
	"github.com/spf13/cobra"
)

type managerClient interface {
	Manager() (*state.Manager, error)
}

const watchCommandLong = `Watch settings.json and print the settings each time it changes.

Every debounced burst of writes prints one JSON line with the reloaded
settings. A file that cannot be read prints a warning and the defaults.
Stops on Ctrl+C.

USAGE:
    peekshell watch [OPTIONS]

OPTIONS:
    --debounce=<duration>    Quiet period before reloading (default: watch_debounce)`

// NewWatchCmd creates the watch command with explicit dependencies.
func NewWatchCmd(client managerClient) *cobra.Command {
	if client == nil {
		panic("NewWatchCmd: client dependency cannot be nil")
	}

	var debounce time.Duration
	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Print settings whenever they change on disk",
		Long:  watchCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("debounce") {
				debounce = configDuration("watch_debounce", watch.DefaultDebounce)
			}
			m, err := client.Manager()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			colors.Info(fmt.Sprintf("Watching %s (Ctrl+C to stop)", m.Paths().SettingsFile()))
			return watchSettings(ctx, m, debounce, cmd.OutOrStdout(), nil)
		},
	}
	watchCmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "Quiet period before reloading")
	return watchCmd
}

// watchSettings writes one JSON line to out per reload until ctx is done.
func watchSettings(ctx context.Context, m *state.Manager, debounce time.Duration, out io.Writer, ready chan<- struct{}) error {
	enc := json.NewEncoder(out)
	w, err := watch.New(watch.Options{
		Path:     m.Paths().SettingsFile(),
		Load:     m.Settings,
		Debounce: debounce,
		Logger:   logging.GetGlobal(),
		OnChange: func(s *settings.Settings, err error) {
			if err != nil {
				colors.Warning(fmt.Sprintf("settings reload failed: %v", err))
				s = settings.DefaultSettings()
			}
			if encErr := enc.Encode(s); encErr != nil {
				colors.Error(fmt.Sprintf("write settings: %v", encErr))
			}
		},
	})
	if err != nil {
		return err
	}
	return w.Run(ctx, ready)
}

// configDuration reads a duration key, falling back to def when it is unset or invalid.
func configDuration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(config.Get(key, def.String()))
	if err != nil || d <= 0 {
		return def
	}
	return d
}
