/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cristianoliveira/peekshell/internal/colors"
	"github.com/cristianoliveira/peekshell/internal/format"
	"github.com/cristianoliveira/peekshell/internal/settings"
	"github.com/spf13/cobra"
)

type settingsClient interface {
	Settings() (*settings.Settings, error)
	SetSettings(s *settings.Settings) error
	ResetSettings() (*settings.Settings, error)
}

const (
	settingsCommandLong = `Manage browser shell settings.

USAGE:
    peekshell settings <subcommand>

SUBCOMMANDS:
    show     Display current settings
    write    Replace settings from a JSON file or stdin
    set      Change a single setting
    get      Print a single setting
    reset    Restore the default settings

EXAMPLES:
    peekshell settings show --format=table
    peekshell settings set onTop true
    peekshell settings write new-settings.json`
	settingsShowLong = `Display current settings. Defaults are shown when nothing was saved yet;
showing never creates the settings file.

USAGE:
    peekshell settings show [OPTIONS]

OPTIONS:
    --format=<format>    Output format: json, simple, table (default: json)`
	settingsWriteLong = `Replace the whole settings record.

The input is a JSON object using the persisted keys (lang, showAddress,
showTabs, onTop, rememberSession, borderPx, ribbon, hud, snap, bookmarks).
Keys that are left out take their default value; a present key must not
be null.

USAGE:
    peekshell settings write [FILE]

With no FILE, or FILE "-", the record is read from stdin.`
	settingsSetLong = `Change a single setting, keeping all others.

USAGE:
    peekshell settings set <key> <value>

KEYS:
    lang, showAddress, showTabs, onTop, rememberSession, borderPx,
    ribbon.enabled, ribbon.width, ribbon.height, hud, snap, bookmarks

Booleans accept true/false, yes/no, on/off and 1/0. bookmarks takes a
comma-separated list; an empty value clears it.`
	settingsResetLong = `Restore the default settings.

USAGE:
    peekshell settings reset [OPTIONS]

OPTIONS:
    --force    Reset without confirmation`
)

// NewSettingsCmd creates the settings command with explicit dependencies.
func NewSettingsCmd(client settingsClient) *cobra.Command {
	if client == nil {
		panic("NewSettingsCmd: client dependency cannot be nil")
	}

	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change browser shell settings",
		Long:  settingsCommandLong,
	}
	settingsCmd.AddCommand(
		newSettingsShowCmd(client),
		newSettingsWriteCmd(client),
		newSettingsSetCmd(client),
		newSettingsGetCmd(client),
		newSettingsResetCmd(client),
	)
	return settingsCmd
}

func newSettingsShowCmd(client settingsClient) *cobra.Command {
	var outputFormat string
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Display current settings",
		Long:  settingsShowLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := format.ParseFormatterType(outputFormat)
			if err != nil {
				return err
			}
			s, err := client.Settings()
			if err != nil {
				return err
			}
			return format.Settings(cmd.OutOrStdout(), s, t)
		},
	}
	showCmd.Flags().StringVar(&outputFormat, "format", string(format.FormatterTypeJSON), "Output format: json, simple, table")
	return showCmd
}

func newSettingsWriteCmd(client settingsClient) *cobra.Command {
	return &cobra.Command{
		Use:   "write [file]",
		Short: "Replace settings from JSON",
		Long:  settingsWriteLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open settings input: %w", err)
				}
				defer f.Close()
				in = f
			}
			data, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("read settings input: %w", err)
			}
			s, err := settings.Merge(settings.DefaultSettings(), data)
			if err != nil {
				return err
			}
			if err := client.SetSettings(s); err != nil {
				return err
			}
			colors.Success("Settings saved")
			return nil
		},
	}
}

func newSettingsSetCmd(client settingsClient) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change a single setting",
		Long:  settingsSetLong,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := client.Settings()
			if err != nil {
				return err
			}
			if err := s.Set(args[0], args[1]); err != nil {
				return err
			}
			if args[0] == settings.KeyLang && !settings.IsSupportedLanguage(s.Lang) {
				colors.Warning(fmt.Sprintf("language %q has no translations; it is stored as given", s.Lang))
			}
			if err := client.SetSettings(s); err != nil {
				return err
			}
			colors.Success(fmt.Sprintf("%s updated", args[0]))
			return nil
		},
	}
}

func newSettingsGetCmd(client settingsClient) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print a single setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := client.Settings()
			if err != nil {
				return err
			}
			v, err := s.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}

func newSettingsResetCmd(client settingsClient) *cobra.Command {
	var force bool
	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore default settings",
		Long:  settingsResetLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force && !confirmFunc(cmd.InOrStdin(), cmd.OutOrStdout(), "Reset all settings to defaults?") {
				colors.Info("Operation cancelled")
				return nil
			}
			if _, err := client.ResetSettings(); err != nil {
				return fmt.Errorf("failed to reset settings: %w", err)
			}
			colors.Success("Settings reset to defaults")
			return nil
		},
	}
	resetCmd.Flags().BoolVar(&force, "force", false, "Reset without confirmation")
	return resetCmd
}
