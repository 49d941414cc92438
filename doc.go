// Package latticematch computes admissible interface angles for
// crystalline heteroepitaxy — analytically, without brute force.
//
// 🚀 What is latticematch?
//
//	Given a substrate interface unit cell (lengths a1, a2 and the angle
//	alpha between them) and ranges for the adlayer unit cell (b1, b2 and
//	beta), latticematch derives the ranges of the interface angle theta
//	for which the epitaxy matrix
//
//	    ( px  qy )
//	    ( qx  py )
//
//	has an integer column (a coincident match) or is integer in all four
//	entries (a commensurate match). Each entry is a ratio of sines, so
//	every integer condition unfolds — via the multi-branch inverse sine —
//	into closed-form angular intervals, and the matches are interval
//	intersections.
//
// ✨ Why choose latticematch?
//
//   - Analytic, not brute-force: exact solution ranges, no angle sweep
//   - Correct circular topology: arcs may wrap the 0°/360° branch cut
//   - Small, explicit API: two packages, no hidden state
//
// Under the hood, everything is organized under two subpackages:
//
//	arc/     — circular angular-interval algebra: Angle, Arc, Set
//	lattice/ — input sanitization, branch enumeration and the solver
//
// plus a thin CLI in cmd/latticematch.
//
// Quick ASCII picture:
//
//	      0°
//	  ╭───┼───╮     the arc [350°,10°] wraps the branch cut;
//	  │   ●   │     intersecting it with [0°,5°] yields [0°,5°]
//	  ╰───────╯
//
// Dive into arc/doc.go for the interval conventions and lattice/doc.go
// for the governing equations.
//
//	go get github.com/katalvlaran/latticematch
package latticematch
