package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apperrors "reposearch/internal/errors"
)

var version = "dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(apperrors.ExitCode(err))
	}
}

func newRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "reposearch",
		Short: "Search GitHub repositories from the terminal",
		Long: `reposearch is a terminal UI for searching GitHub repositories.

Type a query, press Enter to search, and open a result to view it.
Set GITHUB_TOKEN (or the variable named by github.token_env) to raise
the API rate limit.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), configPath)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: user config dir)")

	rootCmd.AddCommand(newSearchCommand(&configPath))

	return rootCmd
}
