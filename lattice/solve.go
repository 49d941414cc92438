package lattice

import (
	"math"

	"github.com/katalvlaran/latticematch/arc"
)

// Solve computes the admissible interface angles for the given substrate
// and adlayer cells. Inputs are trusted as sanitized (run Sanitize first
// on anything user-supplied).
//
// Pipeline:
//  1. Enumerate the inverse-sine solution branches of each epitaxy-matrix
//     entry into four arc sets (px, qx, qy, py).
//  2. CoincidentX = px ∩ qx, CoincidentY = qy ∩ py.
//  3. Commensurate = CoincidentX ∩ CoincidentY.
//
// All three result sets come back sorted by lower bound.
//
// Errors:
//   - ErrNonPositiveLattice when a1 or a2 is zero.
//   - ErrDegenerateAlpha when sin(alpha) is zero.
func Solve(sub Substrate, ad Adlayer) (*Result, error) {
	if sub.A1 == 0 || sub.A2 == 0 {
		return nil, ErrNonPositiveLattice
	}
	sinAlpha := math.Sin(sub.Alpha)
	if sinAlpha == 0 {
		return nil, ErrDegenerateAlpha
	}

	// px = b1·sin(α−θ)/(a1·sin α)    → θ = α − asin(k·s/b1)
	px := minusBranches(sub.Alpha, sub.Alpha, sub.A1*sinAlpha, ad.B1)
	// qx = b2·sin(α−θ−β)/(a1·sin α)  → θ = (α−β) − asin(k·s/b2)
	qx := minusBranches(sub.Alpha-ad.Beta.Max, sub.Alpha-ad.Beta.Min, sub.A1*sinAlpha, ad.B2)
	// qy = b1·sin θ/(a2·sin α)       → θ = asin(k·s/b1)
	qy := plusBranches(0, 0, sub.A2*sinAlpha, ad.B1)
	// py = b2·sin(θ+β)/(a2·sin α)    → θ = asin(k·s/b2) − β
	py := plusBranches(ad.Beta.Min, ad.Beta.Max, sub.A2*sinAlpha, ad.B2)

	res := &Result{
		CoincidentX: px.IntersectSet(qx),
		CoincidentY: qy.IntersectSet(py),
	}
	res.Commensurate = res.CoincidentX.IntersectSet(res.CoincidentY)

	res.CoincidentX.Sort()
	res.CoincidentY.Sort()
	res.Commensurate.Sort()
	return res, nil
}

// Arcs returns the final sets in reporting order: coincident px/qx,
// coincident qy/py, commensurate.
func (r *Result) Arcs() (x, y, both []arc.Arc) {
	return r.CoincidentX.Arcs(), r.CoincidentY.Arcs(), r.Commensurate.Arcs()
}
