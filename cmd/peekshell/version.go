/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"fmt"

	"github.com/cristianoliveira/peekshell/internal/version"
	"github.com/spf13/cobra"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	var verbose bool
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				fmt.Fprintln(cmd.OutOrStdout(), version.Full())
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "peekshell %s\n", version.String())
			return nil
		},
	}
	versionCmd.Flags().BoolVar(&verbose, "verbose", false, "Include commit, build date and platform")
	return versionCmd
}
