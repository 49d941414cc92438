package arc

import "fmt"

// SortMode selects which attribute the relational methods of Arc compare.
//
//   - ByLower — compare lower bounds (the default; Set insertion uses it).
//   - ByUpper — compare upper bounds.
//   - BySize  — compare clockwise spans; a full-circle arc sorts greater
//     than any non-full arc regardless of numeric span.
type SortMode int

const (
	// ByLower compares arcs by their lower bound.
	ByLower SortMode = iota
	// ByUpper compares arcs by their upper bound.
	ByUpper
	// BySize compares arcs by their clockwise span.
	BySize
)

// Arc is a clockwise angular interval from Lower to Upper, inclusive on
// both ends. Lower > Upper means the arc wraps through the branch cut at
// the zero angle.
//
// The zero value is the empty arc. Empty is the absorbing element of
// both Intersect and Union; a full-circle arc (see SetFull) is the
// identity of Intersect and the absorbing element of Union.
//
// Arcs are small values: operations return fresh arcs and never mutate
// their operands, except for the explicit Set* mutators.
type Arc struct {
	lower    Angle
	upper    Angle
	lowerSet bool
	upperSet bool
	full     bool
	mode     SortMode
}

// New returns the arc sweeping clockwise from lower to upper, both ends
// inclusive. The pair relationship is trusted as-is: lower > upper is a
// deliberate wrap through the branch cut, not an error.
func New(lower, upper Angle) Arc {
	return Arc{lower: lower, upper: upper, lowerSet: true, upperSet: true}
}

// Lower returns the lower bound. It does not check emptiness: after
// SetEmpty the returned value is stale and must not be relied upon.
func (a Arc) Lower() Angle {
	return a.lower
}

// Upper returns the upper bound. Same staleness caveat as Lower.
func (a Arc) Upper() Angle {
	return a.upper
}

// Mode returns the active SortMode.
func (a Arc) Mode() SortMode {
	return a.mode
}

// SetLower sets the lower bound and marks it as set.
func (a *Arc) SetLower(v Angle) {
	a.lower = v
	a.lowerSet = true
}

// SetUpper sets the upper bound and marks it as set.
func (a *Arc) SetUpper(v Angle) {
	a.upper = v
	a.upperSet = true
}

// SetEmpty marks the arc empty by clearing both bound flags. The stored
// bounds are left untouched, so Lower/Upper read stale values afterwards.
func (a *Arc) SetEmpty() {
	a.lowerSet = false
	a.upperSet = false
}

// SetFull marks or unmarks the arc as covering the entire turn. Marking
// full pins both bounds to the zero angle and marks them set.
func (a *Arc) SetFull(full bool) {
	a.full = full
	if full {
		a.lower = 0
		a.upper = 0
		a.lowerSet = true
		a.upperSet = true
	}
}

// SetSortMode sets the comparison mode used by Less and friends. Arcs
// produced by Intersect and Union inherit the receiver's mode.
func (a *Arc) SetSortMode(m SortMode) {
	a.mode = m
}

// IsEmpty reports whether the arc is empty, that is, whether either
// bound is unset.
func (a Arc) IsEmpty() bool {
	return !a.lowerSet || !a.upperSet
}

// IsFull reports whether the arc covers the entire turn.
func (a Arc) IsFull() bool {
	return a.full && !a.IsEmpty()
}

// Size returns the clockwise span from Lower to Upper as an Angle in
// [0, 2π). Angle subtraction wraps, so wrapping arcs report the correct
// sweep. Note the pinned bounds make a full-circle arc report size zero;
// BySize comparisons special-case full arcs for exactly that reason.
func (a Arc) Size() Angle {
	return a.upper.Sub(a.lower)
}

// Contains reports whether v lies on the arc. An empty arc contains
// nothing, a full arc everything; a wrapping arc contains v when v is
// past the lower bound or before the upper one.
func (a Arc) Contains(v Angle) bool {
	if a.IsEmpty() {
		return false
	}
	if a.IsFull() {
		return true
	}
	if a.lower > a.upper {
		return v >= a.lower || v <= a.upper
	}
	return v >= a.lower && v <= a.upper
}

// Intersect returns the overlap of a and other as a new arc carrying a's
// SortMode.
//
// Empty absorbs: if either operand is empty, so is the result. Full is
// the identity: intersecting with a full circle returns the other
// operand. Otherwise the computation splits four ways on which operands
// wrap the branch cut; the <=/>= choices at the branch boundaries encode
// that both bounds are inclusive, and their order is load-bearing.
func (a Arc) Intersect(other Arc) Arc {
	out := Arc{mode: a.mode}
	if a.IsEmpty() || other.IsEmpty() {
		return out
	}
	if a.IsFull() {
		out = other
		out.mode = a.mode
		return out
	}
	if other.IsFull() {
		return a
	}
	if a.lower > a.upper {
		if other.lower > other.upper {
			// Both wrap, so both contain the zero angle and overlap is
			// guaranteed. Plain max/min of the representatives is safe here.
			out.SetLower(maxAngle(a.lower, other.lower))
			out.SetUpper(minAngle(a.upper, other.upper))
		} else {
			// a wraps, other is regular. a cannot lie inside other, but
			// other can lie inside a; the overlap never contains zero.
			switch {
			case other.upper <= a.upper || other.lower >= a.lower:
				out.SetLower(other.lower)
				out.SetUpper(other.upper)
			case other.upper >= a.lower: // not >: the lower bound is on the arc
				out.SetLower(a.lower)
				out.SetUpper(other.upper)
			case other.lower <= a.upper: // not <: the upper bound is on the arc
				out.SetLower(other.lower)
				out.SetUpper(a.upper)
			}
		}
	} else {
		if other.lower > other.upper {
			// a is regular, other wraps: mirror of the case above.
			switch {
			case a.upper <= other.upper || a.lower >= other.lower:
				out.SetLower(a.lower)
				out.SetUpper(a.upper)
			case a.lower <= other.upper:
				out.SetLower(a.lower)
				out.SetUpper(other.upper)
			case a.upper >= other.lower:
				out.SetLower(other.lower)
				out.SetUpper(a.upper)
			}
		} else {
			// Both regular: ordinary linear interval intersection.
			hi := minAngle(a.upper, other.upper)
			lo := maxAngle(a.lower, other.lower)
			if hi >= lo {
				out.SetLower(lo)
				out.SetUpper(hi)
			}
		}
	}
	return out
}

// Union returns the covering union of a and other as a new arc carrying
// a's SortMode.
//
// Empty absorbs here too: union with an empty operand is empty, not the
// other operand. If either operand is full, the union is full. When the
// two arcs jointly close the circle the result is explicitly marked
// full rather than given numeric bounds. When neither arc wraps and they
// do not touch, the union would be two disjoint pieces — a single Arc
// cannot hold that, so the result is empty and the caller must keep both
// pieces in a Set.
func (a Arc) Union(other Arc) Arc {
	out := Arc{mode: a.mode}
	if a.IsEmpty() || other.IsEmpty() {
		return out
	}
	if a.IsFull() || other.IsFull() {
		out.SetFull(true)
		return out
	}
	if a.lower > a.upper {
		if other.lower > other.upper {
			// Both wrap: both contain zero, so the union is connected.
			// It closes the circle exactly when one arc's tail reaches
			// into the other's gap from both sides.
			if a.lower <= other.upper || other.lower <= a.upper {
				out.SetFull(true)
				return out
			}
			out.SetLower(minAngle(a.lower, other.lower))
			out.SetUpper(maxAngle(a.upper, other.upper))
		} else {
			// a wraps, other is regular.
			switch {
			case other.upper <= a.upper || other.lower >= a.lower:
				// other lies inside a.
				out.SetLower(a.lower)
				out.SetUpper(a.upper)
			case other.lower <= a.upper && other.upper >= a.lower:
				// other bridges a's gap: the circle is closed.
				out.SetFull(true)
			case other.upper >= a.lower:
				// other extends a backwards past its lower bound.
				out.SetLower(other.lower)
				out.SetUpper(a.upper)
			case other.lower <= a.upper:
				// other extends a forwards past its upper bound.
				out.SetLower(a.lower)
				out.SetUpper(other.upper)
			}
		}
	} else if other.lower > other.upper {
		// a is regular, other wraps: mirror of the case above.
		switch {
		case a.upper <= other.upper || a.lower >= other.lower:
			out.SetLower(other.lower)
			out.SetUpper(other.upper)
		case a.lower <= other.upper && a.upper >= other.lower:
			out.SetFull(true)
		case a.upper >= other.lower:
			out.SetLower(a.lower)
			out.SetUpper(other.upper)
		case a.lower <= other.upper:
			out.SetLower(other.lower)
			out.SetUpper(a.upper)
		}
	} else {
		// Both regular: the union is a single arc only if they touch.
		if maxAngle(a.lower, other.lower) <= minAngle(a.upper, other.upper) {
			out.SetLower(minAngle(a.lower, other.lower))
			out.SetUpper(maxAngle(a.upper, other.upper))
		}
	}
	return out
}

// Less reports whether a orders before other under a's SortMode. Any
// comparison involving an empty arc is false. An unknown SortMode is a
// fatal configuration error: silently defaulting would corrupt
// sort-dependent merge behavior, so it panics.
func (a Arc) Less(other Arc) bool {
	if a.IsEmpty() || other.IsEmpty() {
		return false
	}
	switch a.mode {
	case ByLower:
		return a.lower < other.lower
	case ByUpper:
		return a.upper < other.upper
	case BySize:
		if a.IsFull() {
			return false
		}
		if other.IsFull() {
			return true
		}
		return a.Size() < other.Size()
	default:
		panic(fmt.Sprintf("arc: invalid sort mode %d", a.mode))
	}
}

// Greater reports whether a orders after other under a's SortMode, with
// the same empty and invalid-mode rules as Less.
func (a Arc) Greater(other Arc) bool {
	if a.IsEmpty() || other.IsEmpty() {
		return false
	}
	switch a.mode {
	case ByLower:
		return a.lower > other.lower
	case ByUpper:
		return a.upper > other.upper
	case BySize:
		if other.IsFull() {
			return false
		}
		if a.IsFull() {
			return true
		}
		return a.Size() > other.Size()
	default:
		panic(fmt.Sprintf("arc: invalid sort mode %d", a.mode))
	}
}

// LessEq is the negation of Greater — except that empty operands still
// compare false, so this is NOT a plain boolean negation. The emptiness
// check must run on both paths independently.
func (a Arc) LessEq(other Arc) bool {
	if a.IsEmpty() || other.IsEmpty() {
		return false
	}
	return !a.Greater(other)
}

// GreaterEq is the negation of Less, with the same emptiness
// short-circuit as LessEq.
func (a Arc) GreaterEq(other Arc) bool {
	if a.IsEmpty() || other.IsEmpty() {
		return false
	}
	return !a.Less(other)
}

// Equal reports arc equality independently of SortMode: two empty arcs
// are equal, an empty and a non-empty arc are not, and two non-empty
// arcs are equal iff both bounds match exactly.
func (a Arc) Equal(other Arc) bool {
	if a.IsEmpty() && other.IsEmpty() {
		return true
	}
	if a.IsEmpty() != other.IsEmpty() {
		return false
	}
	return a.lower == other.lower && a.upper == other.upper
}

// String renders the arc in degrees for diagnostics: "∅" when empty,
// "full" for a full circle, "[l°,u°]" otherwise.
func (a Arc) String() string {
	if a.IsEmpty() {
		return "∅"
	}
	if a.IsFull() {
		return "full"
	}
	return fmt.Sprintf("[%g°,%g°]", a.lower.Deg(), a.upper.Deg())
}

func minAngle(a, b Angle) Angle {
	if a < b {
		return a
	}
	return b
}

func maxAngle(a, b Angle) Angle {
	if a > b {
		return a
	}
	return b
}
