// Package cli implements the wordbank command line.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrlokans/wordbank/internal/config"
	"github.com/mrlokans/wordbank/internal/entrypoint"
)

// NewRootCommand builds the command tree. Running the root command without a
// subcommand starts the server.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wordbank",
		Short:         "Vocabulary store with tag search and quizzes",
		Long:          `Keeps a vocabulary of words and tags, searches it and builds quizzes from unfamiliar words.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			entrypoint.Run(cfg, version)
			return nil
		},
	}

	rootCmd.AddCommand(
		newServeCommand(cfg, version),
		newImportCommand(cfg),
		newExportCommand(cfg),
		newSearchCommand(cfg),
		newQuizCommand(cfg),
	)
	return rootCmd
}

func newServeCommand(cfg *config.Config, version string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entrypoint.Run(cfg, version)
			return nil
		},
	}
}

// openStore opens the configured storage for a one-shot command.
func openStore(cfg *config.Config) (*entrypoint.Storage, error) {
	return entrypoint.OpenStorage(cfg)
}
