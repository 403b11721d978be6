package ibm

import (
	"fmt"
	"log/slog"

	"github.com/happyhackingspace/wordalign/corpus"
)

// Model2 aligns with lexical translation probabilities weighted by a
// positional distortion model. Its lexical table is warm-started from a full
// Model 1 training run on the same corpus.
type Model2 struct {
	cfg     Model2Config
	warm    *LexicalModel
	lex     *LexicalModel
	dist    *DistortionModel
	trained bool
}

// NewModel2 creates an untrained Model 2 aligner.
func NewModel2(cfg Model2Config) *Model2 {
	return &Model2{cfg: cfg}
}

// Train runs the Model 1 warm start, then joint EM over the lexical and
// distortion tables. Any earlier state is discarded.
func (m *Model2) Train(pairs []corpus.SentencePair) error {
	if err := m.cfg.Distortion.validate(); err != nil {
		return fmt.Errorf("distortion: %w", err)
	}

	slog.Debug("Warm-starting IBM Model 2 from Model 1", "pairs", len(pairs), "iterations", m.cfg.Lexical.Iterations)
	warm := NewLexicalModel()
	if err := warm.Train(pairs, m.cfg.Lexical); err != nil {
		return fmt.Errorf("warm start: %w", err)
	}

	lex := warm.Clone()
	dist := NewDistortionModel()
	dist.Init(pairs)
	slog.Debug("Training IBM Model 2", "iterations", m.cfg.Distortion.Iterations, "distortion_entries", dist.q.Len())
	runEM("ibm2", pairs, m.cfg.Distortion, model2Estimator{lex: lex, dist: dist})

	m.warm, m.lex, m.dist = warm, lex, dist
	m.trained = true
	return nil
}

// Align links each source word i to the target position j maximizing
// t(f_i|e_j)·q(j|i,l,m), unless the NULL score is at least as large.
func (m *Model2) Align(pair corpus.SentencePair) (corpus.Alignment, error) {
	if !m.trained {
		return corpus.Alignment{}, ErrNotTrained
	}
	src, l := pair.Lengths()
	return decode(pair,
		func(j, i int) float64 {
			return m.lex.Prob(pair.Source[i], pair.Target[j]) * m.dist.Prob(j, i, l, src)
		},
		func(i int) float64 {
			return m.lex.NullProb(pair.Source[i]) * m.dist.Prob(corpus.NullIndex, i, l, src)
		},
	), nil
}

// WarmStart returns the Model 1 lexical table Model 2 started from.
func (m *Model2) WarmStart() *LexicalModel {
	return m.warm
}

// Lexical returns the trained lexical model, or nil before training.
func (m *Model2) Lexical() *LexicalModel {
	return m.lex
}

// Distortion returns the trained distortion model, or nil before training.
func (m *Model2) Distortion() *DistortionModel {
	return m.dist
}

// LogLikelihood returns the corpus log-likelihood under the current tables.
func (m *Model2) LogLikelihood(pairs []corpus.SentencePair) (float64, error) {
	if !m.trained {
		return 0, ErrNotTrained
	}
	return logLikelihood(pairs, model2Estimator{lex: m.lex, dist: m.dist}), nil
}
