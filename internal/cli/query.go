package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mrlokans/wordbank/internal/config"
	"github.com/mrlokans/wordbank/internal/entities"
)

func newSearchCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query...>",
		Short: "Search words by text and #tag terms",
		Long: `Search words by text and #tag terms. A word matches when any term does:
plain terms look in the term and definition, #tag terms in the tag names.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			words := st.Store.Search(strings.Join(args, " "))
			printWords(cmd.OutOrStdout(), words)
			fmt.Fprintf(cmd.OutOrStdout(), "%d words found\n", len(words))
			return nil
		},
	}
}

func newQuizCommand(cfg *config.Config) *cobra.Command {
	var (
		count            int
		minUnfamiliarity int
		tags             []string
	)

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Pick random words for a quiz",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			q, err := st.Store.GenerateQuiz(entities.QuizConfig{
				Count:         count,
				Unfamiliarity: minUnfamiliarity,
				Tags:          tags,
			})
			if err != nil {
				return fmt.Errorf("cannot build quiz: %w", err)
			}

			printWords(cmd.OutOrStdout(), q.Questions)
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 10, "Number of questions")
	cmd.Flags().IntVar(&minUnfamiliarity, "min-unfamiliarity", 0, "Only words with at least this unfamiliarity")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Only words with one of these tag ids (repeatable)")
	return cmd
}

func printWords(out io.Writer, words []entities.Word) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, w := range words {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", w.Term, w.Definition, w.Unfamiliarity)
	}
	tw.Flush()
}
