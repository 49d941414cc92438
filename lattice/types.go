package lattice

import "github.com/katalvlaran/latticematch/arc"

// Span is a closed numeric range [Min, Max]. Sanitize swaps inverted
// spans; Solve trusts Min <= Max.
type Span struct {
	Min float64
	Max float64
}

// Substrate describes the substrate interface unit cell: the lengths of
// the two lattice vectors and the angle between them.
type Substrate struct {
	// A1, A2 are the lattice vector lengths (any consistent length unit).
	A1 float64
	A2 float64
	// Alpha is the angle between a1 and a2, in radians.
	Alpha float64
}

// Adlayer describes the adlayer interface unit cell as ranges: the
// lattice vector lengths and the angle between them are each allowed to
// vary within a Span.
type Adlayer struct {
	// B1, B2 bound the adlayer lattice vector lengths, same unit as the
	// substrate lengths.
	B1 Span
	B2 Span
	// Beta bounds the angle between b1 and b2, in radians.
	Beta Span
}

// Result holds the admissible ranges of the interface angle θ, each as a
// sorted set of disjoint arcs.
type Result struct {
	// CoincidentX are the θ ranges where the px,qx column is integer.
	CoincidentX *arc.Set
	// CoincidentY are the θ ranges where the qy,py column is integer.
	CoincidentY *arc.Set
	// Commensurate are the θ ranges where all four entries are integer,
	// i.e. the intersection of the two coincident families.
	Commensurate *arc.Set
}
