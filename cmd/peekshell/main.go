/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"os"

	"github.com/cristianoliveira/peekshell/cmd"
	"github.com/cristianoliveira/peekshell/internal/colors"
	perrors "github.com/cristianoliveira/peekshell/internal/errors"
	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// newRootCmd assembles the full command tree around client.
func newRootCmd(client *appClient) *cobra.Command {
	root := cmd.NewRootCmd()
	root.AddCommand(
		NewSettingsCmd(client),
		NewHistoryCmd(client),
		NewLastURLCmd(client),
		NewOpacityCmd(client),
		NewCacheCmd(client),
		NewProfileCmd(client),
		NewStatusCmd(client),
		NewWatchCmd(client),
		NewServeCmd(client),
		NewConfigCmd(),
		NewVersionCmd(),
	)
	return root
}

// run executes args and returns the process exit code.
func run(args []string) int {
	colors.StructuredInfo("startup", "main", "started", nil, "", nil)

	client := newAppClient()
	defer client.Close()

	root := newRootCmd(client)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		colors.StructuredError("startup", "main", "failed", err, "", nil)
		return perrors.NewDefaultCLIHandler().Report(err)
	}
	colors.StructuredInfo("startup", "main", "completed", nil, "", nil)
	return 0
}
