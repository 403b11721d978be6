// Package wordalign estimates word-level alignments for a parallel corpus.
//
// It provides IBM Model 1 and Model 2 aligners trained with EM, and a
// co-occurrence (PMI) baseline.
//
//	a, _ := wordalign.New("ibm2", nil)
//	_ = a.Train(pairs)
//	alignment, _ := a.Align(pairs[0])
//	fmt.Println(alignment) // "0-0 1-2 2-1"
package wordalign

import (
	"fmt"
	"sort"

	"github.com/happyhackingspace/wordalign/corpus"
	"github.com/happyhackingspace/wordalign/ibm"
	"github.com/happyhackingspace/wordalign/pmi"
)

// Aligner is a trainable word aligner.
type Aligner interface {
	// Train estimates the aligner's parameters from pairs, replacing any
	// earlier state.
	Train(pairs []corpus.SentencePair) error
	// Align returns the alignment of one pair. It fails with
	// corpus.ErrNotTrained before Train.
	Align(pair corpus.SentencePair) (corpus.Alignment, error)
}

// Config holds aligner hyperparameters.
type Config struct {
	Iterations int // EM iterations per stage; 0 means the default of 15
	Workers    int // E-step shards; 0 means 1
}

// Factory builds an aligner from a config.
type Factory func(cfg Config) Aligner

var registry = map[string]Factory{}

// Register makes an aligner available to New under name.
func Register(name string, f Factory) {
	registry[name] = f
}

// Models returns the registered aligner names, sorted.
func Models() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New creates an untrained aligner by name. A nil config uses the defaults.
func New(name string, cfg *Config) (Aligner, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("wordalign: unknown model %q (available: %v)", name, Models())
	}
	var c Config
	if cfg != nil {
		c = *cfg
	}
	return f(c), nil
}

func init() {
	Register("ibm1", func(cfg Config) Aligner {
		return ibm.NewModel1(cfg.trainerConfig())
	})
	Register("ibm2", func(cfg Config) Aligner {
		return ibm.NewModel2(ibm.Model2Config{
			Lexical:    cfg.trainerConfig(),
			Distortion: cfg.trainerConfig(),
		})
	})
	Register("pmi", func(Config) Aligner {
		return pmi.New()
	})
}

func (c Config) trainerConfig() ibm.TrainerConfig {
	tc := ibm.DefaultTrainerConfig()
	if c.Iterations > 0 {
		tc.Iterations = c.Iterations
	}
	if c.Workers > 0 {
		tc.Workers = c.Workers
	}
	return tc
}
