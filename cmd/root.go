/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/cristianoliveira/peekshell/internal/colors"
	"github.com/cristianoliveira/peekshell/internal/config"
	"github.com/cristianoliveira/peekshell/internal/logging"
	"github.com/cristianoliveira/peekshell/internal/version"
	"github.com/spf13/cobra"
)

// commandOrder is the order commands appear in the help text.
var commandOrder = []string{
	"settings",
	"history",
	"last-url",
	"opacity",
	"cache",
	"profile",
	"status",
	"watch",
	"serve",
	"config",
	"version",
}

// NewRootCmd creates the base command. Subcommands are added by the caller.
//
// Before any subcommand runs, configuration is loaded, persistent flags are
// applied on top of it, and console/file logging is set up.
func NewRootCmd() *cobra.Command {
	var (
		dataDir    string
		profileDir string
		debug      bool
		quiet      bool
	)

	root := &cobra.Command{
		Use:           "peekshell",
		Short:         "Portable state keeper for a pocket browser shell.",
		Long:          `Portable state keeper for a pocket browser shell.`,
		Version:       version.String(),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.Load()
			flags := cmd.Flags()
			if flags.Changed("data-dir") {
				config.Set("data_dir", dataDir)
			}
			if flags.Changed("profile-dir") {
				config.Set("profile_dir", profileDir)
			}
			if flags.Changed("debug") {
				config.Set("debug", fmt.Sprint(debug))
			}
			if flags.Changed("quiet") {
				config.Set("quiet", fmt.Sprint(quiet))
			}
			colors.SetDebug(config.GetBool("debug", false))
			colors.SetQuiet(config.GetBool("quiet", false))
			if err := logging.InitGlobal(); err != nil {
				colors.Warning(fmt.Sprintf("file logging disabled: %v", err))
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return logging.ShutdownGlobal()
		},
	}

	root.CompletionOptions.HiddenDefaultCmd = true

	pf := root.PersistentFlags()
	pf.StringVar(&dataDir, "data-dir", "", "Directory for settings, history and last URL (default <exe dir>/data)")
	pf.StringVar(&profileDir, "profile-dir", "", "Web engine profile directory (default <exe dir>/profile)")
	pf.BoolVar(&debug, "debug", false, "Print debug output")
	pf.BoolVarP(&quiet, "quiet", "q", false, "Suppress informational output")

	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != root {
			// Subcommands keep cobra's help, which prints their Long text.
			fmt.Fprintln(cmd.OutOrStdout(), cmd.Long)
			return
		}
		printHelpText(cmd, cmd.OutOrStdout())
	})

	return root
}

func printHelpText(cmd *cobra.Command, w io.Writer) {
	var cmdLines []string
	for _, name := range commandOrder {
		var found *cobra.Command
		for _, c := range cmd.Commands() {
			if c.Name() == name {
				found = c
				break
			}
		}
		if found == nil {
			continue
		}
		cmdLines = append(cmdLines, fmt.Sprintf("    %-16s %s", found.Name(), found.Short))
	}

	helpText := fmt.Sprintf(`peekshell v%s

Portable state keeper for a pocket browser shell.

USAGE:
    peekshell [COMMAND] [OPTIONS]

COMMANDS:
%s

OPTIONS:
    --data-dir <dir>      Override the data directory
    --profile-dir <dir>   Override the profile directory
    --debug               Print debug output
    -q, --quiet           Suppress informational output
    -h, --help            Show help message
    -v, --version         Show version
`, version.String(), strings.Join(cmdLines, "\n"))
	fmt.Fprint(w, helpText)
}
