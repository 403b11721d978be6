package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/happyhackingspace/wordalign"
	"github.com/spf13/cobra"
)

func (c *CLI) newEvaluateCommand() *cobra.Command {
	var flags trainFlags

	cmd := &cobra.Command{
		Use:     "evaluate",
		Short:   "Score alignments against gold links (precision, recall, AER)",
		Example: `  wordalign evaluate --data-folder data --model ibm2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.Info("Evaluating", "model", flags.model, "data-folder", flags.dataFolder)
			start := time.Now()
			result, err := wordalign.Evaluate(flags.dataFolder, flags.config(c.verbose))
			if err != nil {
				return err
			}
			slog.Debug("Evaluation completed", "duration", time.Since(start))

			m := result.Metrics
			fmt.Printf("Pairs with gold links: %d\n", result.Pairs)
			fmt.Printf("Precision: %.1f%% (%d/%d)\n", result.Precision*100, m.ProposedPossible, m.Proposed)
			fmt.Printf("Recall:    %.1f%% (%d/%d)\n", result.Recall*100, m.ProposedSure, m.Sure)
			fmt.Printf("AER:       %.1f%%\n", result.AER*100)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
