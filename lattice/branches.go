package lattice

import (
	"math"

	"github.com/katalvlaran/latticematch/arc"
)

// Branch enumeration for one epitaxy-matrix entry.
//
// Every entry has the shape k = b·sin(φ)/(a·sin α) with k integer and
// φ an affine function of θ. Solving for θ yields, per |k| from 0 to
// maxK = ⌊|bmax/(a·sin α)|⌋, four arcs (two for k = 0): the two asin
// branches (asin x and π−asin x) for positive k and their mirror images
// for negative k. With s = a·sin α, the asin endpoints over b ∈
// [bmin, bmax] are
//
//	u = asin(clamp(k·s/bmin))   (clamped: bmin may be 0 or too small)
//	v = asin(k·s/bmax)          (|k·s/bmax| ≤ 1 by choice of maxK)
//
// whose min/max give the endpoints of every branch arc regardless of
// the sign of sin α, collapsing the positive/negative sin α case split
// of the textbook derivation into one template.
//
// Two entry shapes occur:
//
//	θ = c − asin(k·s/b)   (px with c = α, qx with c = α−β)
//	θ = asin(k·s/b) − c   (qy with c = 0, py with c = β)
//
// where c itself spans [cLo, cHi] when β is a range.

// minusBranches enumerates the arcs of θ = c − asin(k·s/b) for
// c ∈ [cLo, cHi], b ∈ [b.Min, b.Max].
func minusBranches(cLo, cHi, s float64, b Span) *arc.Set {
	set := arc.NewSet()
	maxK := branchCount(s, b.Max)
	set.Reserve(4*maxK + 2)

	// k = 0: the asin vanishes; only the two branches of the base remain.
	addSpan(set, cLo, cHi)
	addSpan(set, cLo-math.Pi, cHi-math.Pi)

	for k := 1; k <= maxK; k++ {
		lo, hi := asinSpan(float64(k)*s, b)
		addSpan(set, cLo-hi, cHi-lo)                 // k > 0, principal branch
		addSpan(set, cLo-math.Pi+lo, cHi-math.Pi+hi) // k > 0, mirror branch
		addSpan(set, cLo+lo, cHi+hi)                 // k < 0, principal branch
		addSpan(set, cLo-math.Pi-hi, cHi-math.Pi-lo) // k < 0, mirror branch
	}
	return set
}

// plusBranches enumerates the arcs of θ = asin(k·s/b) − c for
// c ∈ [cLo, cHi], b ∈ [b.Min, b.Max].
func plusBranches(cLo, cHi, s float64, b Span) *arc.Set {
	set := arc.NewSet()
	maxK := branchCount(s, b.Max)
	set.Reserve(4*maxK + 2)

	addSpan(set, -cHi, -cLo)
	addSpan(set, math.Pi-cHi, math.Pi-cLo)

	for k := 1; k <= maxK; k++ {
		lo, hi := asinSpan(float64(k)*s, b)
		addSpan(set, lo-cHi, hi-cLo)                 // k > 0, principal branch
		addSpan(set, math.Pi-hi-cHi, math.Pi-lo-cLo) // k > 0, mirror branch
		addSpan(set, -hi-cHi, -lo-cLo)               // k < 0, principal branch
		addSpan(set, math.Pi+lo-cHi, math.Pi+hi-cLo) // k < 0, mirror branch
	}
	return set
}

// branchCount returns maxK = ⌊|bmax/s|⌋, the largest reachable integer
// matrix entry. bmax may be zero, in which case only the k = 0 arcs
// exist.
func branchCount(s, bmax float64) int {
	return int(math.Abs(bmax / s))
}

// asinSpan returns the ordered inverse-sine endpoints for the argument
// range ks/b, b ∈ [bMin, bMax]. The bMin endpoint can exceed unit
// magnitude (bMin may even be zero, dividing to ±Inf) and is clamped
// into [-1, 1]; the bMax endpoint cannot, by construction of maxK.
func asinSpan(ks float64, b Span) (lo, hi float64) {
	u := math.Asin(clampUnit(ks / b.Min))
	v := math.Asin(ks / b.Max)
	if u < v {
		return u, v
	}
	return v, u
}

func clampUnit(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}

func addSpan(set *arc.Set, lo, hi float64) {
	set.AddSpan(arc.NewAngle(lo), arc.NewAngle(hi))
}
