package ibm

import (
	"log/slog"

	"github.com/happyhackingspace/wordalign/corpus"
	"github.com/happyhackingspace/wordalign/prob"
)

// LexKey indexes the lexical table: the probability of Source given Target.
// Target may be corpus.NullWord.
type LexKey struct {
	Target string
	Source string
}

// LexicalModel holds the sparse translation table t(source | target),
// including the NULL target row.
type LexicalModel struct {
	t *prob.Table[LexKey]
}

// NewLexicalModel creates an empty lexical model.
func NewLexicalModel() *LexicalModel {
	return &LexicalModel{t: prob.NewTable[LexKey]()}
}

// Init resets the table to 1/(|V|+1) for every co-occurring (source, target)
// pair and for every (source, NULL) pair.
func (lm *LexicalModel) Init(pairs []corpus.SentencePair) {
	lm.t = prob.NewTable[LexKey]()
	uniform := corpus.SourceVocabulary(pairs).UniformInit()
	for _, p := range pairs {
		for _, src := range p.Source {
			for _, tgt := range p.Target {
				lm.t.Set(LexKey{Target: tgt, Source: src}, uniform)
			}
			lm.t.Set(LexKey{Target: corpus.NullWord, Source: src}, uniform)
		}
	}
}

// Train runs Model 1 EM from a fresh uniform table.
func (lm *LexicalModel) Train(pairs []corpus.SentencePair, cfg TrainerConfig) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	lm.Init(pairs)
	slog.Debug("Lexical table initialized", "entries", lm.t.Len())
	runEM("ibm1", pairs, cfg, model1Estimator{lex: lm})
	return nil
}

// Prob returns t(source | target); unseen pairs are 0.
func (lm *LexicalModel) Prob(source, target string) float64 {
	return lm.t.Get(LexKey{Target: target, Source: source})
}

// NullProb returns t(source | NULL).
func (lm *LexicalModel) NullProb(source string) float64 {
	return lm.t.Get(LexKey{Target: corpus.NullWord, Source: source})
}

// Table returns a copy of the translation table.
func (lm *LexicalModel) Table() *prob.Table[LexKey] {
	return lm.t.Clone()
}

// Clone returns an independent copy of the model.
func (lm *LexicalModel) Clone() *LexicalModel {
	return &LexicalModel{t: lm.t.Clone()}
}

// RowSums returns Σ_source t(source | target) for every target row.
func (lm *LexicalModel) RowSums() map[string]float64 {
	return prob.RowSums(lm.t, func(k LexKey) string { return k.Target })
}

// maximize replaces every nonzero entry by its expected count divided by the
// expected total of its target row.
func (lm *LexicalModel) maximize(c *counts) {
	for _, k := range lm.t.Keys() {
		if lm.t.Get(k) == 0 {
			continue
		}
		total := c.lexTotal.Get(k.Target)
		if total == 0 {
			continue
		}
		lm.t.Set(k, c.lex.Get(k)/total)
	}
}
