package wordalign

import (
	"fmt"
	"log/slog"

	"github.com/happyhackingspace/wordalign/corpus"
	"github.com/happyhackingspace/wordalign/internal/storage"
)

// TrainConfig holds configuration for training on a data folder.
type TrainConfig struct {
	Model     string // registered aligner name; "" means "ibm2"
	Aligner   Config
	Lowercase bool
	MaxLength int
	Verbose   bool
}

// Result holds the alignments produced for a data folder, in folder order.
type Result struct {
	Documents  []string
	Lines      []int
	Alignments []corpus.Alignment
}

// EvalResult holds alignment quality against the folder's gold links.
type EvalResult struct {
	Precision float64
	Recall    float64
	AER       float64
	Pairs     int // pairs with gold links
	Metrics   corpus.Metrics
}

// Align trains an aligner on every pair in dataDir and aligns each of them.
func Align(dataDir string, config *TrainConfig) (*Result, error) {
	records, aligner, err := trainFolder(dataDir, config)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Documents:  make([]string, len(records)),
		Lines:      make([]int, len(records)),
		Alignments: make([]corpus.Alignment, len(records)),
	}
	for i, rec := range records {
		a, err := aligner.Align(rec.Pair)
		if err != nil {
			return nil, fmt.Errorf("wordalign: %s:%d: %w", rec.Document, rec.Line, err)
		}
		result.Documents[i] = rec.Document
		result.Lines[i] = rec.Line
		result.Alignments[i] = a
	}
	return result, nil
}

// Evaluate trains on every pair in dataDir (training is unsupervised) and
// scores the pairs that carry gold links.
func Evaluate(dataDir string, config *TrainConfig) (*EvalResult, error) {
	records, aligner, err := trainFolder(dataDir, config)
	if err != nil {
		return nil, err
	}

	result := &EvalResult{}
	for _, rec := range records {
		if rec.Gold == nil {
			continue
		}
		a, err := aligner.Align(rec.Pair)
		if err != nil {
			return nil, fmt.Errorf("wordalign: %s:%d: %w", rec.Document, rec.Line, err)
		}
		result.Metrics.Add(a, *rec.Gold)
		result.Pairs++
	}
	if result.Pairs == 0 {
		return nil, fmt.Errorf("wordalign: no gold links found in %s", dataDir)
	}
	result.Precision = result.Metrics.Precision()
	result.Recall = result.Metrics.Recall()
	result.AER = result.Metrics.AER()
	return result, nil
}

func trainFolder(dataDir string, config *TrainConfig) ([]storage.Record, Aligner, error) {
	cfg := TrainConfig{}
	if config != nil {
		cfg = *config
	}
	if cfg.Model == "" {
		cfg.Model = "ibm2"
	}

	aligner, err := New(cfg.Model, &cfg.Aligner)
	if err != nil {
		return nil, nil, err
	}

	store := storage.NewStorage(dataDir)
	opts := storage.DefaultIterOptions()
	opts.Lowercase = cfg.Lowercase
	opts.MaxLength = cfg.MaxLength
	opts.Verbose = cfg.Verbose
	records, err := store.IterPairs(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("wordalign: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("wordalign: no sentence pairs found in %s", dataDir)
	}

	slog.Debug("Training aligner", "model", cfg.Model, "pairs", len(records))
	if err := aligner.Train(storage.Pairs(records)); err != nil {
		return nil, nil, fmt.Errorf("wordalign: train %s: %w", cfg.Model, err)
	}
	return records, aligner, nil
}
