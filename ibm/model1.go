package ibm

import (
	"log/slog"

	"github.com/happyhackingspace/wordalign/corpus"
)

// Model1 aligns with lexical translation probabilities only.
type Model1 struct {
	cfg     TrainerConfig
	lex     *LexicalModel
	trained bool
}

// NewModel1 creates an untrained Model 1 aligner.
func NewModel1(cfg TrainerConfig) *Model1 {
	return &Model1{cfg: cfg}
}

// Train estimates the lexical table from pairs, discarding any earlier state.
func (m *Model1) Train(pairs []corpus.SentencePair) error {
	slog.Debug("Training IBM Model 1", "pairs", len(pairs), "iterations", m.cfg.Iterations)
	lex := NewLexicalModel()
	if err := lex.Train(pairs, m.cfg); err != nil {
		return err
	}
	m.lex = lex
	m.trained = true
	return nil
}

// Align links each source word to its most probable target word, or leaves
// it unaligned when NULL is at least as probable.
func (m *Model1) Align(pair corpus.SentencePair) (corpus.Alignment, error) {
	if !m.trained {
		return corpus.Alignment{}, ErrNotTrained
	}
	return decode(pair,
		func(j, i int) float64 { return m.lex.Prob(pair.Source[i], pair.Target[j]) },
		func(i int) float64 { return m.lex.NullProb(pair.Source[i]) },
	), nil
}

// Lexical returns the trained lexical model, or nil before training.
func (m *Model1) Lexical() *LexicalModel {
	return m.lex
}

// LogLikelihood returns the corpus log-likelihood under the current table.
func (m *Model1) LogLikelihood(pairs []corpus.SentencePair) (float64, error) {
	if !m.trained {
		return 0, ErrNotTrained
	}
	return logLikelihood(pairs, model1Estimator{lex: m.lex}), nil
}
