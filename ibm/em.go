package ibm

import (
	"log/slog"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/happyhackingspace/wordalign/corpus"
	"github.com/happyhackingspace/wordalign/prob"
)

// counts holds the expected counts gathered by one E-step.
type counts struct {
	lex       *prob.Table[LexKey]
	lexTotal  *prob.Table[string]
	dist      *prob.Table[DistKey]
	distTotal *prob.Table[DistRow]
}

func newCounts() *counts {
	return &counts{
		lex:       prob.NewTable[LexKey](),
		lexTotal:  prob.NewTable[string](),
		dist:      prob.NewTable[DistKey](),
		distTotal: prob.NewTable[DistRow](),
	}
}

func (c *counts) merge(other *counts) {
	c.lex.Merge(other.lex)
	c.lexTotal.Merge(other.lexTotal)
	c.dist.Merge(other.dist)
	c.distTotal.Merge(other.distTotal)
}

// estimator is a model trainable by runEM.
type estimator interface {
	// expect adds the expected counts of one pair into c under the current
	// parameters and returns the pair's log-likelihood. c may be nil, in
	// which case only the log-likelihood is computed. expect must not
	// modify the model.
	expect(pair corpus.SentencePair, c *counts) float64
	// maximize re-estimates the model from the merged counts.
	maximize(c *counts)
}

// runEM runs cfg.Iterations rounds of E-step and M-step. Each round starts
// from fresh accumulators.
func runEM(name string, pairs []corpus.SentencePair, cfg TrainerConfig, est estimator) {
	prevLL := math.Inf(-1)
	for iter := range cfg.Iterations {
		c, ll := expectAll(pairs, cfg.Workers, est)
		est.maximize(c)
		slog.Debug("IBM training iteration", "model", name, "iteration", iter+1, "log_likelihood", ll)

		if cfg.ConvergenceThresh > 0 && ll-prevLL < cfg.ConvergenceThresh {
			slog.Debug("IBM training converged", "model", name, "iteration", iter+1, "log_likelihood", ll)
			break
		}
		prevLL = ll
	}
}

// expectAll runs the E-step over pairs split into contiguous shards, one
// goroutine per shard. Shard accumulators are merged in shard order so the
// result does not depend on scheduling.
func expectAll(pairs []corpus.SentencePair, workers int, est estimator) (*counts, float64) {
	shards := splitShards(len(pairs), workers)
	partial := make([]*counts, len(shards))
	lls := make([]float64, len(shards))

	var g errgroup.Group
	for s, bounds := range shards {
		g.Go(func() error {
			c := newCounts()
			ll := 0.0
			for _, p := range pairs[bounds[0]:bounds[1]] {
				ll += est.expect(p, c)
			}
			partial[s] = c
			lls[s] = ll
			return nil
		})
	}
	_ = g.Wait()

	total := newCounts()
	ll := 0.0
	for s := range shards {
		total.merge(partial[s])
		ll += lls[s]
	}
	return total, ll
}

// splitShards divides n items into at most workers contiguous [start, end)
// ranges of near-equal size.
func splitShards(n, workers int) [][2]int {
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	if workers == 0 {
		return nil
	}
	shards := make([][2]int, workers)
	size, rem := n/workers, n%workers
	start := 0
	for w := range workers {
		end := start + size
		if w < rem {
			end++
		}
		shards[w] = [2]int{start, end}
		start = end
	}
	return shards
}

// logLikelihood sums the per-pair log-likelihood of est over pairs.
func logLikelihood(pairs []corpus.SentencePair, est estimator) float64 {
	ll := 0.0
	for _, p := range pairs {
		ll += est.expect(p, nil)
	}
	return ll
}

// model1Estimator trains the lexical table alone.
type model1Estimator struct {
	lex *LexicalModel
}

func (e model1Estimator) expect(pair corpus.SentencePair, c *counts) float64 {
	ll := 0.0
	for _, src := range pair.Source {
		nullProb := e.lex.NullProb(src)
		denom := nullProb
		for _, tgt := range pair.Target {
			denom += e.lex.Prob(src, tgt)
		}
		if denom == 0 {
			continue
		}
		ll += math.Log(denom)
		if c == nil {
			continue
		}
		for _, tgt := range pair.Target {
			p := e.lex.Prob(src, tgt) / denom
			c.lex.Add(LexKey{Target: tgt, Source: src}, p)
			c.lexTotal.Add(tgt, p)
		}
		p := nullProb / denom
		c.lex.Add(LexKey{Target: corpus.NullWord, Source: src}, p)
		c.lexTotal.Add(corpus.NullWord, p)
	}
	return ll
}

func (e model1Estimator) maximize(c *counts) {
	e.lex.maximize(c)
}

// model2Estimator trains the lexical and distortion tables jointly. Every
// term, the NULL term included, is weighted by its distortion probability.
type model2Estimator struct {
	lex  *LexicalModel
	dist *DistortionModel
}

func (e model2Estimator) expect(pair corpus.SentencePair, c *counts) float64 {
	m, l := pair.Lengths()
	ll := 0.0
	for i, src := range pair.Source {
		nullScore := e.lex.NullProb(src) * e.dist.Prob(corpus.NullIndex, i, l, m)
		denom := nullScore
		for j, tgt := range pair.Target {
			denom += e.lex.Prob(src, tgt) * e.dist.Prob(j, i, l, m)
		}
		if denom == 0 {
			continue
		}
		ll += math.Log(denom)
		if c == nil {
			continue
		}
		row := DistRow{I: i, L: l, M: m}
		for j, tgt := range pair.Target {
			p := e.lex.Prob(src, tgt) * e.dist.Prob(j, i, l, m) / denom
			c.lex.Add(LexKey{Target: tgt, Source: src}, p)
			c.lexTotal.Add(tgt, p)
			c.dist.Add(DistKey{J: j, I: i, L: l, M: m}, p)
			c.distTotal.Add(row, p)
		}
		p := nullScore / denom
		c.lex.Add(LexKey{Target: corpus.NullWord, Source: src}, p)
		c.lexTotal.Add(corpus.NullWord, p)
		c.dist.Add(DistKey{J: corpus.NullIndex, I: i, L: l, M: m}, p)
		c.distTotal.Add(row, p)
	}
	return ll
}

func (e model2Estimator) maximize(c *counts) {
	e.lex.maximize(c)
	e.dist.maximize(c)
}
