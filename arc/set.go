package arc

import "sort"

// Set is a mutable collection of pairwise disjoint, non-touching arcs.
// Every insertion path runs the merge pass, so arcs that overlap or
// touch — including transitive cascades — collapse into one stored arc.
//
// A Set exclusively owns its arcs: insertion copies, Arcs returns a
// snapshot, and nothing is aliased across sets. Not safe for concurrent
// use; the computation is a single-shot batch pass.
type Set struct {
	arcs []Arc
	// consistent tracks whether arcs currently satisfies the disjointness
	// invariant. Reads that depend on it re-merge when the flag is down.
	consistent bool
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{consistent: true}
}

// NewSetOf returns a set holding first, or an empty set when first is
// empty.
func NewSetOf(first Arc) *Set {
	s := NewSet()
	s.Add(first)
	return s
}

// NewSetSpan returns a set holding the single arc [lower, upper].
func NewSetSpan(lower, upper Angle) *Set {
	return NewSetOf(New(lower, upper))
}

// merge restores the disjointness invariant: an outer arc is repeatedly
// combined against every arc still present after it; whenever the union
// is a single arc, the absorbed arc is removed and the outer arc grows,
// and the inner scan continues against the shrunk tail. Cascades
// collapse transitively (A touches B, B touches C ⇒ one arc), and the
// pass is idempotent.
func (s *Set) merge() {
	if len(s.arcs) >= 2 {
		for i := len(s.arcs) - 2; i >= 0; i-- {
			for j := len(s.arcs) - 1; j > i; j-- {
				u := s.arcs[i].Union(s.arcs[j])
				if !u.IsEmpty() {
					s.arcs[i] = u
					s.arcs = append(s.arcs[:j], s.arcs[j+1:]...)
				}
			}
		}
	}
	s.consistent = true
}

// IsEmpty reports whether the set holds no arcs.
func (s *Set) IsEmpty() bool {
	return len(s.arcs) == 0
}

// Len returns the number of stored arcs. It does not force a merge, so
// after plain insertions (which merge eagerly) it is the number of
// disjoint arcs.
func (s *Set) Len() int {
	return len(s.arcs)
}

// IsFull reports whether the set covers the entire turn, i.e. the merge
// pass has collapsed it to a single full-circle arc.
func (s *Set) IsFull() bool {
	if !s.consistent {
		s.merge()
	}
	if s.IsEmpty() {
		return false
	}
	return s.arcs[0].IsFull()
}

// Add inserts a copy of a and re-merges. Empty arcs are ignored. The
// stored copy is pinned to ByLower so that Sort yields a left-to-right
// ordering by lower bound.
func (s *Set) Add(a Arc) {
	if a.IsEmpty() {
		return
	}
	a.SetSortMode(ByLower)
	s.arcs = append(s.arcs, a)
	s.merge()
}

// AddSpan inserts the arc [lower, upper] and re-merges.
func (s *Set) AddSpan(lower, upper Angle) {
	s.Add(New(lower, upper))
}

// AddSet bulk-inserts copies of every arc in other, then runs a single
// merge pass over the combined storage.
func (s *Set) AddSet(other *Set) {
	if other == nil || len(other.arcs) == 0 {
		return
	}
	s.Reserve(len(s.arcs) + len(other.arcs))
	s.arcs = append(s.arcs, other.arcs...)
	s.consistent = false
	s.merge()
}

// Reserve grows the underlying storage to hold at least n arcs without
// reallocation. A capacity hint only, never required for correctness.
func (s *Set) Reserve(n int) {
	if n > cap(s.arcs) {
		grown := make([]Arc, len(s.arcs), n)
		copy(grown, s.arcs)
		s.arcs = grown
	}
}

// Clear removes all arcs.
func (s *Set) Clear() {
	s.arcs = s.arcs[:0]
	s.consistent = true
}

// Sort stably sorts the stored arcs by their own comparison mode. All
// insertion paths pin arcs to ByLower, so in practice this is a
// left-to-right ordering by lower bound.
func (s *Set) Sort() {
	sort.SliceStable(s.arcs, func(i, j int) bool {
		return s.arcs[i].Less(s.arcs[j])
	})
}

// Arcs returns a snapshot copy of the stored arcs, merging first if an
// earlier bulk operation left the set inconsistent.
func (s *Set) Arcs() []Arc {
	if !s.consistent {
		s.merge()
	}
	out := make([]Arc, len(s.arcs))
	copy(out, s.arcs)
	return out
}

// View returns the internal storage without copying, for fast
// iteration. Callers must treat the slice as read-only; any mutation
// breaks the disjointness invariant behind the set's back.
func (s *Set) View() []Arc {
	if !s.consistent {
		s.merge()
	}
	return s.arcs
}

// Intersect returns a fresh set holding every non-empty pairwise
// intersection of the stored arcs with other. The result merges as it
// accumulates, so overlapping fragments collapse.
func (s *Set) Intersect(other Arc) *Set {
	if !s.consistent {
		s.merge()
	}
	out := NewSet()
	for _, a := range s.arcs {
		out.Add(a.Intersect(other))
	}
	return out
}

// IntersectSet returns a fresh set intersecting s with every arc of
// other, accumulating all non-empty results.
func (s *Set) IntersectSet(other *Set) *Set {
	out := NewSet()
	if other == nil {
		return out
	}
	for _, a := range other.View() {
		out.AddSet(s.Intersect(a))
	}
	return out
}
