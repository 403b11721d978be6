package corpus

import (
	"fmt"
	"sort"
	"strings"
)

// Link connects a target position to a source position.
type Link struct {
	Target int `json:"target"`
	Source int `json:"source"`
}

// Alignment is a partial mapping from source positions to target positions.
// Each source position is linked to at most one target position.
type Alignment struct {
	bySource map[int]int
}

// NewAlignment creates an empty alignment.
func NewAlignment() Alignment {
	return Alignment{bySource: make(map[int]int)}
}

// Add links target position to source position, replacing any earlier link
// for the same source position.
func (a *Alignment) Add(target, source int) {
	if a.bySource == nil {
		a.bySource = make(map[int]int)
	}
	a.bySource[source] = target
}

// Target returns the target position linked to source, if any.
func (a Alignment) Target(source int) (int, bool) {
	t, ok := a.bySource[source]
	return t, ok
}

// Contains reports whether the link (target, source) is present.
func (a Alignment) Contains(target, source int) bool {
	t, ok := a.bySource[source]
	return ok && t == target
}

// Len returns the number of links.
func (a Alignment) Len() int {
	return len(a.bySource)
}

// Links returns the links sorted by source position.
func (a Alignment) Links() []Link {
	links := make([]Link, 0, len(a.bySource))
	for s, t := range a.bySource {
		links = append(links, Link{Target: t, Source: s})
	}
	sort.Slice(links, func(i, j int) bool {
		return links[i].Source < links[j].Source
	})
	return links
}

// String renders the alignment in Pharaoh format: "source-target" pairs,
// 0-based, sorted by source position.
func (a Alignment) String() string {
	links := a.Links()
	parts := make([]string, len(links))
	for i, l := range links {
		parts[i] = fmt.Sprintf("%d-%d", l.Source, l.Target)
	}
	return strings.Join(parts, " ")
}
