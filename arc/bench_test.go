package arc_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/latticematch/arc"
)

// benchmarkArcs builds n narrow, pairwise disjoint arcs spread over the
// turn — the worst case for the merge pass, since nothing collapses.
func benchmarkArcs(n int) []arc.Arc {
	arcs := make([]arc.Arc, n)
	step := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		lo := float64(i) * step
		arcs[i] = arc.New(arc.NewAngle(lo), arc.NewAngle(lo+step/4))
	}
	return arcs
}

// BenchmarkSet_AddDisjoint measures eager-merge insertion with no merges
// firing.
func BenchmarkSet_AddDisjoint(b *testing.B) {
	arcs := benchmarkArcs(256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := arc.NewSet()
		s.Reserve(len(arcs))
		for _, a := range arcs {
			s.Add(a)
		}
	}
}

// BenchmarkSet_AddOverlapping measures insertion where every arc overlaps
// its neighbour, so each insert collapses into the running arc.
func BenchmarkSet_AddOverlapping(b *testing.B) {
	n := 256
	step := 2 * math.Pi / float64(n+1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := arc.NewSet()
		for k := 0; k < n; k++ {
			lo := float64(k) * step
			s.AddSpan(arc.NewAngle(lo), arc.NewAngle(lo+1.5*step))
		}
	}
}

// BenchmarkSet_IntersectSet measures set-against-set intersection on two
// moderately fragmented sets.
func BenchmarkSet_IntersectSet(b *testing.B) {
	a := arc.NewSet()
	for _, x := range benchmarkArcs(64) {
		a.Add(x)
	}
	other := arc.NewSet()
	for _, x := range benchmarkArcs(48) {
		other.Add(x)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.IntersectSet(other)
	}
}
