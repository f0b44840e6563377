/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"fmt"

	"github.com/cristianoliveira/peekshell/internal/colors"
	"github.com/spf13/cobra"
)

type cacheClient interface {
	ClearCache(hard bool) error
}

const cacheCommandLong = `Clear the web engine cache inside the profile directory.

A soft clear removes the cache directory only. A hard clear removes the
whole profile: cookies, local storage and cache. Both recreate an empty
directory and succeed when nothing exists yet.

USAGE:
    peekshell cache clear [OPTIONS]

OPTIONS:
    --hard     Wipe the whole profile, not only the cache
    --force    Skip the confirmation of a hard clear`

// NewCacheCmd creates the cache command with explicit dependencies.
func NewCacheCmd(client cacheClient) *cobra.Command {
	if client == nil {
		panic("NewCacheCmd: client dependency cannot be nil")
	}

	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Clear the web engine cache",
		Long:  cacheCommandLong,
	}

	var hard, force bool
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear the cache or the whole profile",
		Long:  cacheCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if hard && !force && !confirmFunc(cmd.InOrStdin(), cmd.OutOrStdout(), "Wipe the whole browser profile?") {
				colors.Info("Operation cancelled")
				return nil
			}
			if err := client.ClearCache(hard); err != nil {
				return fmt.Errorf("failed to clear cache: %w", err)
			}
			if hard {
				colors.Success("Profile wiped")
			} else {
				colors.Success("Cache cleared")
			}
			return nil
		},
	}
	clearCmd.Flags().BoolVar(&hard, "hard", false, "Wipe the whole profile")
	clearCmd.Flags().BoolVar(&force, "force", false, "Skip confirmation")

	cacheCmd.AddCommand(clearCmd)
	return cacheCmd
}
