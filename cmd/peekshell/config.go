/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"fmt"

	"github.com/cristianoliveira/peekshell/internal/colors"
	"github.com/cristianoliveira/peekshell/internal/config"
	"github.com/spf13/cobra"
)

const configCommandLong = `Inspect or create the peekshell configuration file.

Configuration is read from PEEKSHELL_* environment variables, a .env file
and peekshell.toml next to the executable (or PEEKSHELL_CONFIG_PATH).
Environment variables take precedence.

USAGE:
    peekshell config <subcommand>

SUBCOMMANDS:
    show    Print the effective configuration
    path    Print the configuration file location
    init    Write a sample configuration file`

// NewConfigCmd creates the config command.
func NewConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show or initialize configuration",
		Long:  configCommandLong,
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, kv := range config.All() {
				value := kv[1]
				if kv[0] == "api_token" && value != "" {
					value = "[REDACTED]"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", kv[0], value)
			}
			return nil
		},
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), config.ConfigPath())
			return nil
		},
	}

	var path string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a sample configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				path = config.ConfigPath()
			}
			if err := config.WriteSample(path); err != nil {
				return err
			}
			colors.Success(fmt.Sprintf("Configuration written to %s", path))
			return nil
		},
	}
	initCmd.Flags().StringVar(&path, "path", "", "Destination file (default: config path)")

	configCmd.AddCommand(showCmd, pathCmd, initCmd)
	return configCmd
}
