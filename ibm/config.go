// Package ibm implements IBM Model 1 and Model 2 word alignment trained with
// Expectation-Maximization.
package ibm

import (
	"fmt"

	"github.com/happyhackingspace/wordalign/corpus"
)

// ErrNotTrained is returned by Align before Train has been called.
var ErrNotTrained = corpus.ErrNotTrained

// TrainerConfig holds EM training parameters.
type TrainerConfig struct {
	Iterations        int
	ConvergenceThresh float64 // stop early when the log-likelihood gain drops below this; 0 disables
	Workers           int     // number of E-step shards
}

// DefaultTrainerConfig returns the default EM settings: 15 iterations, no
// convergence test, single worker.
func DefaultTrainerConfig() TrainerConfig {
	return TrainerConfig{
		Iterations: 15,
		Workers:    1,
	}
}

func (c TrainerConfig) validate() error {
	if c.Iterations < 0 {
		return fmt.Errorf("iterations must be non-negative, got %d", c.Iterations)
	}
	if c.ConvergenceThresh < 0 {
		return fmt.Errorf("convergence threshold must be non-negative, got %v", c.ConvergenceThresh)
	}
	return nil
}

// Model2Config configures Model 2 training. Lexical drives the Model 1 warm
// start; Distortion drives the joint Model 2 EM loop that follows it.
type Model2Config struct {
	Lexical    TrainerConfig
	Distortion TrainerConfig
}

// DefaultModel2Config returns 15 warm-start iterations followed by 15
// Model 2 iterations.
func DefaultModel2Config() Model2Config {
	return Model2Config{
		Lexical:    DefaultTrainerConfig(),
		Distortion: DefaultTrainerConfig(),
	}
}
