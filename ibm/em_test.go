package ibm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitShards(t *testing.T) {
	tests := []struct {
		n, workers int
		want       [][2]int
	}{
		{0, 4, nil},
		{5, 1, [][2]int{{0, 5}}},
		{5, 0, [][2]int{{0, 5}}},
		{5, 2, [][2]int{{0, 3}, {3, 5}}},
		{3, 8, [][2]int{{0, 1}, {1, 2}, {2, 3}}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, splitShards(tt.n, tt.workers), "n=%d workers=%d", tt.n, tt.workers)
	}
}

func TestDecodeNullTie(t *testing.T) {
	p := pair("x", "a b")
	score := func(j, i int) float64 { return []float64{0.5, 0.5}[j] }

	a := decode(p, score, func(int) float64 { return 0.5 })
	assert.Equal(t, 0, a.Len(), "equal NULL score must leave the word unaligned")

	a = decode(p, score, func(int) float64 { return 0.4 })
	assert.True(t, a.Contains(0, 0), "equal non-NULL scores keep the leftmost target")
}

func TestDecodeZeroScores(t *testing.T) {
	p := pair("x y", "a")
	a := decode(p,
		func(j, i int) float64 { return 0 },
		func(int) float64 { return 0 },
	)
	assert.Equal(t, 0, a.Len())
}

func TestModel1FirstIteration(t *testing.T) {
	lex := NewLexicalModel()
	lex.Init(catDog)
	assert.InDelta(t, 0.25, lex.Prob("the", "le"), 1e-12)
	assert.InDelta(t, 0.25, lex.NullProb("dog"), 1e-12)
	assert.Equal(t, 0.0, lex.Prob("cat", "chien"))

	c, _ := expectAll(catDog, 1, model1Estimator{lex: lex})
	lex.maximize(c)

	// Each source token spreads 1/3 over {le, chat|chien, NULL}.
	assert.InDelta(t, 0.5, lex.Prob("the", "le"), 1e-12)
	assert.InDelta(t, 0.25, lex.Prob("cat", "le"), 1e-12)
	assert.InDelta(t, 0.5, lex.Prob("the", "chat"), 1e-12)
	assert.InDelta(t, 0.5, lex.NullProb("the"), 1e-12)
}
