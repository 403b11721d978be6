package corpus

// Gold holds reference links for one sentence pair. Every sure link is also
// a possible link.
type Gold struct {
	Sure     map[Link]bool
	Possible map[Link]bool
}

// NewGold creates an empty reference alignment.
func NewGold() Gold {
	return Gold{
		Sure:     make(map[Link]bool),
		Possible: make(map[Link]bool),
	}
}

// AddSure records a sure link.
func (g Gold) AddSure(target, source int) {
	l := Link{Target: target, Source: source}
	g.Sure[l] = true
	g.Possible[l] = true
}

// AddPossible records a possible link.
func (g Gold) AddPossible(target, source int) {
	g.Possible[Link{Target: target, Source: source}] = true
}

// Metrics accumulates alignment quality counts over a test set.
type Metrics struct {
	Proposed         int // |A|
	Sure             int // |S|
	ProposedSure     int // |A ∩ S|
	ProposedPossible int // |A ∩ P|
}

// Add scores one predicted alignment against its reference.
func (m *Metrics) Add(predicted Alignment, gold Gold) {
	for _, l := range predicted.Links() {
		m.Proposed++
		if gold.Sure[l] {
			m.ProposedSure++
		}
		if gold.Possible[l] {
			m.ProposedPossible++
		}
	}
	m.Sure += len(gold.Sure)
}

// Precision is |A ∩ P| / |A|.
func (m Metrics) Precision() float64 {
	if m.Proposed == 0 {
		return 0
	}
	return float64(m.ProposedPossible) / float64(m.Proposed)
}

// Recall is |A ∩ S| / |S|.
func (m Metrics) Recall() float64 {
	if m.Sure == 0 {
		return 0
	}
	return float64(m.ProposedSure) / float64(m.Sure)
}

// AER is the alignment error rate 1 - (|A∩S| + |A∩P|) / (|A| + |S|).
func (m Metrics) AER() float64 {
	if m.Proposed+m.Sure == 0 {
		return 0
	}
	return 1 - float64(m.ProposedSure+m.ProposedPossible)/float64(m.Proposed+m.Sure)
}
