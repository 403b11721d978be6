// Package pmi implements a non-iterative co-occurrence baseline aligner.
package pmi

import (
	"log/slog"

	"github.com/happyhackingspace/wordalign/corpus"
	"github.com/happyhackingspace/wordalign/prob"
)

// ErrNotTrained is returned by Align before Train has been called.
var ErrNotTrained = corpus.ErrNotTrained

type wordPair struct {
	Source, Target string
}

// Aligner scores source/target word pairs by
// count(s,t) / (count(s) · count(t)) over one pass of the corpus.
//
// Every (source token, target token) combination within a sentence pair
// increments count(s), count(t) and count(s,t) by one; repeats are not
// deduplicated.
type Aligner struct {
	source  *prob.Table[string]
	target  *prob.Table[string]
	joint   *prob.Table[wordPair]
	pairs   int
	trained bool
}

// New creates an untrained PMI aligner.
func New() *Aligner {
	return &Aligner{}
}

// Train counts co-occurrences in pairs, discarding any earlier counts.
func (a *Aligner) Train(pairs []corpus.SentencePair) error {
	a.source = prob.NewTable[string]()
	a.target = prob.NewTable[string]()
	a.joint = prob.NewTable[wordPair]()
	a.pairs = len(pairs)

	for _, p := range pairs {
		for _, s := range p.Source {
			for _, t := range p.Target {
				a.source.Add(s, 1)
				a.target.Add(t, 1)
				a.joint.Add(wordPair{Source: s, Target: t}, 1)
			}
		}
	}
	a.trained = true
	slog.Debug("PMI counts collected", "pairs", a.pairs, "word_pairs", a.joint.Len())
	return nil
}

// Score returns count(s,t) / (count(s) · count(t)), or 0 when either word
// was never seen.
func (a *Aligner) Score(source, target string) float64 {
	cs, ct := a.source.Get(source), a.target.Get(target)
	if cs == 0 || ct == 0 {
		return 0
	}
	return a.joint.Get(wordPair{Source: source, Target: target}) / (cs * ct)
}

// Threshold is the score a link must strictly exceed: 1 / number of
// training pairs.
func (a *Aligner) Threshold() float64 {
	return 1.0 / float64(a.pairs)
}

// Align links each source word to its best-scoring target word when that
// score exceeds Threshold.
func (a *Aligner) Align(pair corpus.SentencePair) (corpus.Alignment, error) {
	if !a.trained {
		return corpus.Alignment{}, ErrNotTrained
	}
	alignment := corpus.NewAlignment()
	if a.pairs == 0 {
		return alignment, nil
	}
	threshold := a.Threshold()
	for i, s := range pair.Source {
		best, bestJ := 0.0, 0
		for j, t := range pair.Target {
			if score := a.Score(s, t); score > best {
				best, bestJ = score, j
			}
		}
		if threshold < best {
			alignment.Add(bestJ, i)
		}
	}
	return alignment, nil
}
