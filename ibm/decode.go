package ibm

import "github.com/happyhackingspace/wordalign/corpus"

// decode links each source position i to the highest-scoring target position
// when that score is strictly greater than the NULL score. Equal non-NULL
// scores keep the leftmost position; a tie with NULL leaves i unaligned.
func decode(pair corpus.SentencePair, score func(j, i int) float64, nullScore func(i int) float64) corpus.Alignment {
	a := corpus.NewAlignment()
	for i := range pair.Source {
		best, bestJ := 0.0, 0
		for j := range pair.Target {
			if s := score(j, i); s > best {
				best, bestJ = s, j
			}
		}
		if nullScore(i) < best {
			a.Add(bestJ, i)
		}
	}
	return a
}
