package corpus

// Vocabulary maps tokens to dense integer IDs in first-seen order.
type Vocabulary struct {
	ToID  map[string]int `json:"to_id"`
	ToStr []string       `json:"to_str"`
}

// NewVocabulary creates an empty vocabulary.
func NewVocabulary() *Vocabulary {
	return &Vocabulary{
		ToID: make(map[string]int),
	}
}

// SourceVocabulary collects the distinct source tokens of pairs.
func SourceVocabulary(pairs []SentencePair) *Vocabulary {
	v := NewVocabulary()
	for _, p := range pairs {
		for _, w := range p.Source {
			v.Add(w)
		}
	}
	return v
}

// Add adds a token if not already present and returns its ID.
func (v *Vocabulary) Add(s string) int {
	if id, ok := v.ToID[s]; ok {
		return id
	}
	id := len(v.ToStr)
	v.ToID[s] = id
	v.ToStr = append(v.ToStr, s)
	return id
}

// Get returns the ID for a token, or -1 if not found.
func (v *Vocabulary) Get(s string) int {
	if id, ok := v.ToID[s]; ok {
		return id
	}
	return -1
}

// Size returns the number of entries.
func (v *Vocabulary) Size() int {
	return len(v.ToStr)
}

// UniformInit is the starting probability 1/(|V|+1); the extra slot reserves
// mass for NULL.
func (v *Vocabulary) UniformInit() float64 {
	return 1.0 / float64(v.Size()+1)
}
