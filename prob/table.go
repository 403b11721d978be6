// Package prob provides sparse probability and expected-count tables.
package prob

import "sort"

// Table is a sparse mapping from a comparable composite key to a
// non-negative value. Absent keys read as 0.
type Table[K comparable] struct {
	m map[K]float64
}

// NewTable creates an empty table.
func NewTable[K comparable]() *Table[K] {
	return &Table[K]{m: make(map[K]float64)}
}

// Get returns the value for k, or 0 if k was never set.
func (t *Table[K]) Get(k K) float64 {
	return t.m[k]
}

// Has reports whether k was ever set.
func (t *Table[K]) Has(k K) bool {
	_, ok := t.m[k]
	return ok
}

// Set stores v under k.
func (t *Table[K]) Set(k K, v float64) {
	t.m[k] = v
}

// Add accumulates v into the value stored under k.
func (t *Table[K]) Add(k K, v float64) {
	t.m[k] += v
}

// Len returns the number of stored keys.
func (t *Table[K]) Len() int {
	return len(t.m)
}

// Keys returns all stored keys in unspecified order.
func (t *Table[K]) Keys() []K {
	keys := make([]K, 0, len(t.m))
	for k := range t.m {
		keys = append(keys, k)
	}
	return keys
}

// SortedKeys returns all stored keys ordered by less.
func (t *Table[K]) SortedKeys(less func(a, b K) bool) []K {
	keys := t.Keys()
	sort.Slice(keys, func(i, j int) bool { return less(keys[i], keys[j]) })
	return keys
}

// Merge adds every entry of other into t.
func (t *Table[K]) Merge(other *Table[K]) {
	for k, v := range other.m {
		t.m[k] += v
	}
}

// Clone returns an independent copy of t.
func (t *Table[K]) Clone() *Table[K] {
	c := &Table[K]{m: make(map[K]float64, len(t.m))}
	for k, v := range t.m {
		c.m[k] = v
	}
	return c
}

// Equal reports whether t and other hold the same keys with values within tol.
func (t *Table[K]) Equal(other *Table[K], tol float64) bool {
	if len(t.m) != len(other.m) {
		return false
	}
	for k, v := range t.m {
		ov, ok := other.m[k]
		if !ok {
			return false
		}
		d := v - ov
		if d < -tol || d > tol {
			return false
		}
	}
	return true
}

// RowSums groups stored values by row(k) and sums each group.
func RowSums[K, R comparable](t *Table[K], row func(K) R) map[R]float64 {
	sums := make(map[R]float64)
	for k, v := range t.m {
		sums[row(k)] += v
	}
	return sums
}
