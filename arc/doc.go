// Package arc implements circular angular-interval algebra: a normalized
// Angle value, a single clockwise Arc between two angles, and a Set of
// pairwise disjoint arcs maintained under union and intersection.
//
// 🚀 Why a dedicated package?
//
//	Intervals on a circle break every assumption linear intervals enjoy:
//	there is no total order, arcs may wrap the 0/2π branch cut, and the
//	degenerate cases multiply (both operands wrapping, one wrapping,
//	neither, full-circle absorption). All of that case analysis lives
//	here, once, so the solver above never has to reason about wraparound.
//
// Conventions (they permeate every operation):
//
//   - An Angle is always normalized into the half-open turn [0, 2π).
//   - An Arc sweeps clockwise from Lower to Upper, inclusive on both ends.
//   - Lower > Upper means the arc wraps through the branch cut at zero.
//   - An Arc has two explicit degenerate states: empty (the absorbing
//     element of both Intersect and Union) and full-circle (the identity
//     of Intersect and the absorbing element of Union).
//   - Union of two arcs that do not touch is empty: a single Arc cannot
//     represent a disjoint pair. Keep both pieces in a Set instead.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/latticematch/arc"
//
//	s := arc.NewSet()
//	s.AddSpan(arc.NewAngle(0), arc.NewAngle(math.Pi/2))
//	s.AddSpan(arc.NewAngle(3*math.Pi/2), arc.NewAngle(math.Pi/4)) // wraps
//	hits := s.Intersect(arc.New(arc.NewAngle(math.Pi/4), arc.NewAngle(math.Pi)))
//
// Complexity:
//
//   - Arc operations are O(1).
//   - Set insertion runs the merge pass, worst case O(n²) over the stored
//     arcs; in practice merged sets stay tiny.
//
// There is no concurrency support: a Set is a plain mutable value owned
// by a single computation pass.
package arc
