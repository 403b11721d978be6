// Package corpus defines the sentence pairs consumed by word aligners and the
// alignments they produce.
package corpus

import "errors"

// NullWord is the reserved target token meaning "aligned to nothing".
// It takes part in every normalization like an ordinary target word.
const NullWord = "<null>"

// NullIndex is the reserved target position paired with NullWord.
const NullIndex = -1

// ErrNotTrained is returned when an aligner is asked to align before training.
var ErrNotTrained = errors.New("aligner not trained")

// SentencePair is a source sentence and its target-language translation.
type SentencePair struct {
	Source []string `json:"source"`
	Target []string `json:"target"`
}

// NewSentencePair copies the token slices so the pair cannot be changed by
// the caller afterwards.
func NewSentencePair(source, target []string) SentencePair {
	return SentencePair{
		Source: append([]string(nil), source...),
		Target: append([]string(nil), target...),
	}
}

// Lengths returns the source length m and target length l.
func (p SentencePair) Lengths() (m, l int) {
	return len(p.Source), len(p.Target)
}
