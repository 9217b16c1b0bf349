// Package cli implements the zuid commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCommand assembles the zuid command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "zuid",
		Short: "zuid generates short, prefixed, optionally time-ordered random ids",
		Long: `zuid generates short, URL-safe, collision-resistant identifiers.

Ids are a prefix followed by an optional nanosecond timestamp and random
entropy, all written in a configurable charset (base62 by default).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCommand(), newGenCommand(), newEstimateCommand())
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

// exitCode maps an Execute error to a process exit status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprintln(os.Stderr, "error:", err)
	return 1
}

// Main runs the CLI and returns the process exit status.
func Main() int {
	return exitCode(Execute())
}
