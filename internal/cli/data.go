package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrlokans/wordbank/internal/config"
	"github.com/mrlokans/wordbank/internal/entities"
	"github.com/mrlokans/wordbank/internal/storage"
)

func newImportCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the vocabulary with the contents of a JSON snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			var snap entities.Snapshot
			if err := json.Unmarshal(data, &snap); err != nil {
				return fmt.Errorf("invalid snapshot: %w", err)
			}
			for _, w := range snap.Words {
				if err := w.Validate(); err != nil {
					return fmt.Errorf("word %q: %w", w.ID, err)
				}
			}

			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Store.ReplaceAllData(snap); err != nil {
				return fmt.Errorf("save imported data: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d words and %d tags\n", len(snap.Words), len(snap.Tags))
			return nil
		},
	}
}

func newExportCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write the vocabulary as a JSON snapshot to a file or stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			snap := st.Store.Snapshot()

			if len(args) == 0 {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(snap)
			}

			adapter := storage.NewAdapter(storage.NewFileBackend(args[0]), "")
			if err := adapter.SaveSync(snap); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d words and %d tags to %s\n", len(snap.Words), len(snap.Tags), args[0])
			return nil
		},
	}
}
