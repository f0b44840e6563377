/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"fmt"

	"github.com/cristianoliveira/peekshell/internal/colors"
	perrors "github.com/cristianoliveira/peekshell/internal/errors"
	"github.com/cristianoliveira/peekshell/internal/format"
	"github.com/spf13/cobra"
)

type historyClient interface {
	AppendHistory(url string) error
	History() ([]string, error)
	ClearHistory() error
}

const (
	historyCommandLong = `Manage the bounded browsing history.

The history keeps at most 200 URLs, oldest first. Appending past the
limit drops the oldest entries.

USAGE:
    peekshell history <subcommand>

SUBCOMMANDS:
    add      Append a URL
    list     Print the history
    clear    Remove every entry`
	historyListLong = `Print the browsing history, oldest first.

USAGE:
    peekshell history list [OPTIONS]

OPTIONS:
    --limit=<n>          Show only the n most recent entries (0 = all)
    --format=<format>    Output format: simple, table, json (default: simple)

EXAMPLES:
    peekshell history list --limit=10
    peekshell history list --format=json`
)

// NewHistoryCmd creates the history command with explicit dependencies.
func NewHistoryCmd(client historyClient) *cobra.Command {
	if client == nil {
		panic("NewHistoryCmd: client dependency cannot be nil")
	}

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Add, list or clear visited URLs",
		Long:  historyCommandLong,
	}

	addCmd := &cobra.Command{
		Use:   "add <url>",
		Short: "Append a URL to the history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.AppendHistory(args[0]); err != nil {
				return err
			}
			colors.Success("Added to history")
			return nil
		},
	}

	var (
		limit        int
		outputFormat string
	)
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print the history",
		Long:  historyListLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("%w: --limit must be zero or positive, got %d", perrors.ErrUsage, limit)
			}
			t, err := format.ParseFormatterType(outputFormat)
			if err != nil {
				return err
			}
			urls, err := client.History()
			if err != nil {
				return err
			}
			if limit > 0 && len(urls) > limit {
				urls = urls[len(urls)-limit:]
			}
			if len(urls) == 0 && t != format.FormatterTypeJSON {
				colors.Info("History is empty")
				return nil
			}
			return format.History(cmd.OutOrStdout(), urls, t)
		},
	}
	listCmd.Flags().IntVar(&limit, "limit", 0, "Show only the most recent entries (0 = all)")
	listCmd.Flags().StringVar(&outputFormat, "format", string(format.FormatterTypeSimple), "Output format: simple, table, json")

	var force bool
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every history entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force && !confirmFunc(cmd.InOrStdin(), cmd.OutOrStdout(), "Clear the whole history?") {
				colors.Info("Operation cancelled")
				return nil
			}
			if err := client.ClearHistory(); err != nil {
				return fmt.Errorf("failed to clear history: %w", err)
			}
			colors.Success("History cleared")
			return nil
		},
	}
	clearCmd.Flags().BoolVar(&force, "force", false, "Clear without confirmation")

	historyCmd.AddCommand(addCmd, listCmd, clearCmd)
	return historyCmd
}
