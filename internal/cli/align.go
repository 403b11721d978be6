package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/happyhackingspace/wordalign"
	"github.com/spf13/cobra"
)

func (c *CLI) newAlignCommand() *cobra.Command {
	var flags trainFlags
	var output string

	cmd := &cobra.Command{
		Use:   "align",
		Short: "Train an aligner on a parallel corpus and print its alignments",
		Example: `  wordalign align --data-folder data
  wordalign align --data-folder data --model ibm1 --iterations 10 --output data/out.align
  wordalign align --data-folder data --workers 4 --lowercase -v`,
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.Info("Aligning", "model", flags.model, "data-folder", flags.dataFolder)
			start := time.Now()
			result, err := wordalign.Align(flags.dataFolder, flags.config(c.verbose))
			if err != nil {
				return err
			}
			slog.Debug("Alignment completed", "pairs", len(result.Alignments), "duration", time.Since(start))

			var w io.Writer = os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create %s: %w", output, err)
				}
				defer func() { _ = f.Close() }()
				w = f
			}
			if err := writeAlignments(w, result); err != nil {
				return err
			}
			if output != "" {
				slog.Info("Alignments saved", "path", output, "pairs", len(result.Alignments))
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write alignments to this file instead of stdout")
	return cmd
}

// writeAlignments writes one Pharaoh-format line per pair.
func writeAlignments(w io.Writer, result *wordalign.Result) error {
	bw := bufio.NewWriter(w)
	for _, a := range result.Alignments {
		if _, err := fmt.Fprintln(bw, a.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}
