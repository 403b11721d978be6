package cli

import (
	"fmt"
	"strings"

	"github.com/happyhackingspace/wordalign"
	"github.com/spf13/cobra"
)

// trainFlags are the corpus and model flags shared by align and evaluate.
type trainFlags struct {
	dataFolder string
	model      string
	iterations int
	workers    int
	lowercase  bool
	maxLength  int
}

func (f *trainFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.dataFolder, "data-folder", "data", "Path to parallel corpus folder")
	cmd.Flags().StringVar(&f.model, "model", "ibm2", fmt.Sprintf("Aligner to train (%s)", strings.Join(wordalign.Models(), ", ")))
	cmd.Flags().IntVar(&f.iterations, "iterations", 15, "EM iterations per training stage")
	cmd.Flags().IntVar(&f.workers, "workers", 1, "Parallel E-step workers")
	cmd.Flags().BoolVar(&f.lowercase, "lowercase", false, "Lowercase tokens before training")
	cmd.Flags().IntVar(&f.maxLength, "max-length", 0, "Skip pairs with a side longer than this (0 = no limit)")
}

func (f *trainFlags) config(verbose bool) *wordalign.TrainConfig {
	return &wordalign.TrainConfig{
		Model: f.model,
		Aligner: wordalign.Config{
			Iterations: f.iterations,
			Workers:    f.workers,
		},
		Lowercase: f.lowercase,
		MaxLength: f.maxLength,
		Verbose:   verbose,
	}
}
