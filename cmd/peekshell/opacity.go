/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"fmt"

	perrors "github.com/cristianoliveira/peekshell/internal/errors"
	"github.com/cristianoliveira/peekshell/internal/format"
	"github.com/spf13/cobra"
)

type opacityClient interface {
	CycleOpacity() (float64, error)
}

const opacityCommandLong = `Step through the window opacity levels 1.0, 0.9, 0.8, 0.7, 0.6.

The cycle lives only for the duration of one process, so a standalone
invocation always starts from 1.0. Use --times to step several levels.

USAGE:
    peekshell opacity cycle [OPTIONS]

OPTIONS:
    --times=<n>    Number of steps to take (default: 1)`

// NewOpacityCmd creates the opacity command with explicit dependencies.
func NewOpacityCmd(client opacityClient) *cobra.Command {
	if client == nil {
		panic("NewOpacityCmd: client dependency cannot be nil")
	}

	opacityCmd := &cobra.Command{
		Use:   "opacity",
		Short: "Cycle the window opacity",
		Long:  opacityCommandLong,
	}

	var times int
	cycleCmd := &cobra.Command{
		Use:   "cycle",
		Short: "Advance to the next opacity level",
		Long:  opacityCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if times < 1 {
				return fmt.Errorf("%w: --times must be at least 1, got %d", perrors.ErrUsage, times)
			}
			var value float64
			for range times {
				v, err := client.CycleOpacity()
				if err != nil {
					return err
				}
				value = v
			}
			fmt.Fprintln(cmd.OutOrStdout(), format.FormatOpacity(value))
			return nil
		},
	}
	cycleCmd.Flags().IntVar(&times, "times", 1, "Number of steps to take")

	opacityCmd.AddCommand(cycleCmd)
	return opacityCmd
}
