// Package lattice derives admissible interface angles for a
// substrate/adlayer pairing in heteroepitaxy.
//
// 🚀 The governing equations
//
//	The interface unit cells are related by the epitaxy matrix
//
//	    ( px  qy )
//	    ( qx  py )
//
//	with
//
//	    px = b1·sin(α−θ) / (a1·sin α)
//	    qx = b2·sin(α−θ−β) / (a1·sin α)
//	    qy = b1·sin θ     / (a2·sin α)
//	    py = b2·sin(θ+β)  / (a2·sin α)
//
//	where a1, a2, α describe the substrate cell, b1, b2, β the adlayer
//	cell, and θ is the angle between a1 and b1. A coincident match has an
//	integer column (px,qx or qy,py); a commensurate match is integer in
//	all four entries.
//
// ✨ The analytic trick
//
//	Fix an integer value k for one matrix entry and solve for θ: because
//	b1, b2 and β are given as ranges, each k yields closed-form angular
//	intervals via the multi-branch inverse sine (asin is two-valued per
//	turn, and its sign follows sin α). Enumerating every reachable k
//	gives 4·maxK+2 candidate arcs per entry, where
//	maxK = ⌊|bmax/(a·sin α)|⌋ — as few as two arcs when bmax is zero.
//	The matches are then pure interval intersections:
//
//	    CoincidentX  = arcs(px) ∩ arcs(qx)
//	    CoincidentY  = arcs(qy) ∩ arcs(py)
//	    Commensurate = CoincidentX ∩ CoincidentY
//
//	carried out by the circular-interval engine in package arc.
//
// ⚙️ Usage:
//
//	sub := lattice.Substrate{A1: 1, A2: 1, Alpha: math.Pi / 2}
//	ad := lattice.Adlayer{
//	  B1:   lattice.Span{Min: 1, Max: 1},
//	  B2:   lattice.Span{Min: 1, Max: 1},
//	  Beta: lattice.Span{Min: math.Pi / 2, Max: math.Pi / 2},
//	}
//	sub, ad, warns := lattice.Sanitize(sub, ad)
//	res, err := lattice.Solve(sub, ad)
//
// Errors:
//   - ErrNonPositiveLattice — a substrate vector length is zero.
//   - ErrDegenerateAlpha    — sin α is zero, every entry divides by zero.
//
// Inverse-sine arguments on the bmin side are clamped into [-1,1] here,
// in the generator; the arc engine propagates whatever it is given.
package lattice
