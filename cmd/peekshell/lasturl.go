/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"fmt"

	"github.com/cristianoliveira/peekshell/internal/colors"
	"github.com/spf13/cobra"
)

type lastURLClient interface {
	LastURL() (string, error)
	RecordLastURL(url string) error
}

const lastURLCommandLong = `Print the URL the shell should reopen on start.

Prints nothing when no URL was recorded or the file cannot be read.

USAGE:
    peekshell last-url
    peekshell last-url record <url>`

// NewLastURLCmd creates the last-url command with explicit dependencies.
func NewLastURLCmd(client lastURLClient) *cobra.Command {
	if client == nil {
		panic("NewLastURLCmd: client dependency cannot be nil")
	}

	lastURLCmd := &cobra.Command{
		Use:   "last-url",
		Short: "Print or record the last visited URL",
		Long:  lastURLCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := client.LastURL()
			if err != nil {
				return err
			}
			if url != "" {
				fmt.Fprintln(cmd.OutOrStdout(), url)
			}
			return nil
		},
	}

	recordCmd := &cobra.Command{
		Use:   "record <url>",
		Short: "Store the URL to reopen on next start",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.RecordLastURL(args[0]); err != nil {
				return err
			}
			colors.Success("Last URL recorded")
			return nil
		},
	}

	lastURLCmd.AddCommand(recordCmd)
	return lastURLCmd
}
