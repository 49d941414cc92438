package lattice

import (
	"math"
	"testing"

	"github.com/katalvlaran/latticematch/arc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setContains reports whether any stored arc contains v.
func setContains(s *arc.Set, v arc.Angle) bool {
	for _, a := range s.View() {
		if a.Contains(v) {
			return true
		}
	}
	return false
}

// TestBranchCount verifies maxK = ⌊|bmax/s|⌋, including the bmax = 0
// degenerate case that leaves only the two k = 0 arcs.
func TestBranchCount(t *testing.T) {
	assert.Equal(t, 2, branchCount(1, 2.5))
	assert.Equal(t, 2, branchCount(-1, 2.5), "sign of s must not matter")
	assert.Equal(t, 0, branchCount(1, 0))
	assert.Equal(t, 1, branchCount(0.5, 0.5))
}

// TestAsinSpan_Clamping: the bmin endpoint may divide past unit
// magnitude (or by zero); it is clamped to the asin domain. The bmax
// endpoint is in range by construction.
func TestAsinSpan_Clamping(t *testing.T) {
	lo, hi := asinSpan(1, Span{Min: 0.5, Max: 2})
	assert.InDelta(t, math.Asin(0.5), lo, eps)
	assert.InDelta(t, math.Pi/2, hi, eps, "1/0.5 = 2 must clamp to asin(1)")

	lo, hi = asinSpan(1, Span{Min: 0, Max: 2})
	assert.InDelta(t, math.Pi/2, hi, eps, "division by bmin = 0 must clamp, not poison")
	assert.InDelta(t, math.Asin(0.5), lo, eps)

	// Negative s: endpoints are negative and ordered the other way round.
	lo, hi = asinSpan(-1, Span{Min: 0.5, Max: 2})
	assert.InDelta(t, -math.Pi/2, lo, eps)
	assert.InDelta(t, math.Asin(-0.5), hi, eps)
}

// TestMinusBranches_UnitSquare: for s = 1, b1 = [1,1] and base angle
// α = 90° the px entry degenerates to cos θ ∈ {-1,0,1}, i.e. the four
// point arcs 0°, 90°, 180°, 270°.
func TestMinusBranches_UnitSquare(t *testing.T) {
	set := minusBranches(math.Pi/2, math.Pi/2, 1, Span{Min: 1, Max: 1})

	require.Equal(t, 4, set.Len(), "expected exactly four point arcs")
	for _, want := range []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2} {
		assert.True(t, setContains(set, arc.NewAngle(want)),
			"solution %v rad missing", want)
	}
}

// TestMinusBranches_ZeroBMax: bmax = 0 yields only the two k = 0 arcs.
func TestMinusBranches_ZeroBMax(t *testing.T) {
	set := minusBranches(math.Pi/3, math.Pi/3, 1, Span{Min: 0, Max: 0})

	require.Equal(t, 2, set.Len())
	assert.True(t, setContains(set, arc.NewAngle(math.Pi/3)))
	assert.True(t, setContains(set, arc.NewAngle(math.Pi/3-math.Pi)))
}

// TestPlusBranches_UnitSquare: the qy entry for the same cell is sin θ,
// with the same four point solutions.
func TestPlusBranches_UnitSquare(t *testing.T) {
	set := plusBranches(0, 0, 1, Span{Min: 1, Max: 1})

	require.Equal(t, 4, set.Len())
	for _, want := range []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2} {
		assert.True(t, setContains(set, arc.NewAngle(want)),
			"solution %v rad missing", want)
	}
}

// TestPlusBranches_BetaOffset: a fixed β shifts every qy-style solution
// by −β; check the k = 0 arcs of py.
func TestPlusBranches_BetaOffset(t *testing.T) {
	beta := math.Pi / 3
	set := plusBranches(beta, beta, 1, Span{Min: 0, Max: 0})

	require.Equal(t, 2, set.Len())
	assert.True(t, setContains(set, arc.NewAngle(-beta)))
	assert.True(t, setContains(set, arc.NewAngle(math.Pi-beta)))
}

// TestBranches_RangesWiden: widening the b range turns point solutions
// into genuine arcs that still contain the point solutions.
func TestBranches_RangesWiden(t *testing.T) {
	points := plusBranches(0, 0, 1, Span{Min: 1, Max: 1})
	widened := plusBranches(0, 0, 1, Span{Min: 1, Max: 1.2})

	for _, p := range points.View() {
		assert.True(t, setContains(widened, p.Lower()),
			"widened family must cover the point solution %v", p)
	}
	// And the widened family has nonzero measure somewhere.
	grew := false
	for _, a := range widened.View() {
		if a.Size().Rad() > 0 {
			grew = true
		}
	}
	assert.True(t, grew, "a widened b range must widen at least one arc")
}

const eps = 1e-12
