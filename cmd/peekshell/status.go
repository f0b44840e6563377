/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"github.com/cristianoliveira/peekshell/internal/format"
	"github.com/cristianoliveira/peekshell/internal/state"
	"github.com/spf13/cobra"
)

type statusClient interface {
	Status() (state.Status, error)
}

const statusCommandLong = `Show where state lives and a summary of it.

USAGE:
    peekshell status [OPTIONS]

OPTIONS:
    --format=<format>    Output format: simple, table, json (default: table)`

// NewStatusCmd creates the status command with explicit dependencies.
func NewStatusCmd(client statusClient) *cobra.Command {
	if client == nil {
		panic("NewStatusCmd: client dependency cannot be nil")
	}

	var outputFormat string
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show state locations and summary",
		Long:  statusCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := format.ParseFormatterType(outputFormat)
			if err != nil {
				return err
			}
			st, err := client.Status()
			if err != nil {
				return err
			}
			return format.Status(cmd.OutOrStdout(), st, t)
		},
	}
	statusCmd.Flags().StringVar(&outputFormat, "format", string(format.FormatterTypeTable), "Output format: simple, table, json")
	return statusCmd
}
