/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"fmt"

	"github.com/cristianoliveira/peekshell/internal/colors"
	"github.com/cristianoliveira/peekshell/internal/profile"
	"github.com/spf13/cobra"
)

type profileClient interface {
	EnsureProfile() error
	Profile() (profile.Tree, error)
}

const (
	profileCommandLong = `Manage the portable web engine profile.

USAGE:
    peekshell profile <subcommand>

SUBCOMMANDS:
    init    Create the profile directory
    path    Print the profile directory
    env     Print the variable the renderer reads its profile location from`
	profileEnvLong = `Print the renderer profile variable as NAME=VALUE.

Only platforms whose renderer takes its profile location from the
environment print anything. Elsewhere the profile is passed directly.

USAGE:
    peekshell profile env`
)

// NewProfileCmd creates the profile command with explicit dependencies.
func NewProfileCmd(client profileClient) *cobra.Command {
	if client == nil {
		panic("NewProfileCmd: client dependency cannot be nil")
	}

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "Create or locate the browser profile",
		Long:  profileCommandLong,
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create the profile directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.EnsureProfile(); err != nil {
				return err
			}
			tree, err := client.Profile()
			if err != nil {
				return err
			}
			colors.Success(fmt.Sprintf("Profile ready at %s", tree.Root))
			return nil
		},
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the profile directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := client.Profile()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tree.Root)
			return nil
		},
	}

	envCmd := &cobra.Command{
		Use:   "env",
		Short: "Print the renderer profile variable",
		Long:  profileEnvLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := client.Profile()
			if err != nil {
				return err
			}
			name, value := tree.UserDataEnv()
			if name == "" {
				colors.Debug("renderer takes the profile location directly on this platform")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", name, value)
			return nil
		},
	}

	profileCmd.AddCommand(initCmd, pathCmd, envCmd)
	return profileCmd
}
