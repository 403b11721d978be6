package ibm

import (
	"github.com/happyhackingspace/wordalign/corpus"
	"github.com/happyhackingspace/wordalign/prob"
)

// DistKey indexes the distortion table q(J | I, L, M): target position J
// (or corpus.NullIndex) for source position I in a pair whose target has
// length L and source has length M.
type DistKey struct {
	J, I, L, M int
}

// DistRow is the conditioning part of a DistKey. Each row of q sums to 1
// after training.
type DistRow struct {
	I, L, M int
}

// Row returns the conditioning row of k.
func (k DistKey) Row() DistRow {
	return DistRow{I: k.I, L: k.L, M: k.M}
}

// DistortionModel holds the sparse positional table q(j | i, l, m).
type DistortionModel struct {
	q *prob.Table[DistKey]
}

// NewDistortionModel creates an empty distortion model.
func NewDistortionModel() *DistortionModel {
	return &DistortionModel{q: prob.NewTable[DistKey]()}
}

// Init resets the table to 1/(|V|+1) for every (j, i) position pair of every
// observed (l, m) length combination, plus the NULL position.
func (dm *DistortionModel) Init(pairs []corpus.SentencePair) {
	dm.q = prob.NewTable[DistKey]()
	uniform := corpus.SourceVocabulary(pairs).UniformInit()
	for _, p := range pairs {
		m, l := p.Lengths()
		for i := range m {
			for j := range l {
				dm.q.Set(DistKey{J: j, I: i, L: l, M: m}, uniform)
			}
			dm.q.Set(DistKey{J: corpus.NullIndex, I: i, L: l, M: m}, uniform)
		}
	}
}

// Prob returns q(j | i, l, m); unseen combinations are 0.
func (dm *DistortionModel) Prob(j, i, l, m int) float64 {
	return dm.q.Get(DistKey{J: j, I: i, L: l, M: m})
}

// Table returns a copy of the distortion table.
func (dm *DistortionModel) Table() *prob.Table[DistKey] {
	return dm.q.Clone()
}

// RowSums returns Σ_j q(j | i, l, m) for every (i, l, m) row.
func (dm *DistortionModel) RowSums() map[DistRow]float64 {
	return prob.RowSums(dm.q, DistKey.Row)
}

func (dm *DistortionModel) maximize(c *counts) {
	for _, k := range dm.q.Keys() {
		if dm.q.Get(k) == 0 {
			continue
		}
		total := c.distTotal.Get(k.Row())
		if total == 0 {
			continue
		}
		dm.q.Set(k, c.dist.Get(k)/total)
	}
}
