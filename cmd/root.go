package cmd

import (
	"github.com/grovetools/core/cli"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for meetlogs.
func NewRootCmd() *cobra.Command {
	rootCmd := cli.NewStandardCommand(
		"meetlogs",
		"Meeting transcript normalization and extraction",
	)

	rootCmd.AddCommand(newNormalizeCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newTailCmd())
	rootCmd.AddCommand(newActionsCmd())
	rootCmd.AddCommand(newAttendeesCmd())
	rootCmd.AddCommand(newDetectCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newSchemaCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}
