package arc_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/latticematch/arc"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-12

// TestNewAngle_Normalization verifies that construction shifts any real
// input into the canonical half-open turn [0, 2π).
func TestNewAngle_Normalization(t *testing.T) {
	inputs := []float64{0, 1, -1, math.Pi, -math.Pi, 7, -7, 100, -100, 6.28, 2 * math.Pi}
	for _, x := range inputs {
		got := arc.NewAngle(x).Rad()
		assert.GreaterOrEqual(t, got, 0.0, "NewAngle(%v) must be >= 0", x)
		assert.Less(t, got, 2*math.Pi, "NewAngle(%v) must be < 2π", x)
	}
}

// TestNewAngle_TurnInvariance verifies that adding whole turns does not
// change the stored representative (up to floating-point tolerance).
func TestNewAngle_TurnInvariance(t *testing.T) {
	for _, x := range []float64{0.1, 1.5, 3.0, 5.9} {
		base := arc.NewAngle(x).Rad()
		for _, k := range []float64{-3, -1, 1, 2, 10} {
			shifted := arc.NewAngle(x + k*2*math.Pi).Rad()
			assert.InDelta(t, base, shifted, 1e-9, "x=%v k=%v", x, k)
		}
	}
}

// TestAngle_Arithmetic verifies that Add and Sub re-normalize their
// results, in particular across the branch cut.
func TestAngle_Arithmetic(t *testing.T) {
	a := arc.NewAngle(3 * math.Pi / 2) // 270°
	b := arc.NewAngle(math.Pi)         // 180°

	sum := a.Add(b) // 450° → 90°
	assert.InDelta(t, math.Pi/2, sum.Rad(), eps, "270°+180° must wrap to 90°")

	diff := b.Sub(a) // -90° → 270°
	assert.InDelta(t, 3*math.Pi/2, diff.Rad(), eps, "180°-270° must wrap to 270°")

	// Sub of equal angles is the zero angle.
	assert.Equal(t, 0.0, a.Sub(a).Rad(), "a-a must be exactly zero")
}

// TestAngle_MulDiv verifies the generic-arithmetic conveniences: results
// are normalized, and division by the zero angle follows IEEE semantics
// (the intermediate infinity normalizes to NaN) rather than erroring.
func TestAngle_MulDiv(t *testing.T) {
	p := arc.NewAngle(3)
	q := arc.NewAngle(4)
	assert.InDelta(t, 12-2*math.Pi, p.Mul(q).Rad(), eps, "3·4 must wrap to 12-2π")

	half := arc.NewAngle(math.Pi).Div(arc.NewAngle(2))
	assert.InDelta(t, math.Pi/2, half.Rad(), eps)

	nan := p.Div(arc.NewAngle(0))
	assert.True(t, math.IsNaN(nan.Rad()), "division by the zero angle must poison as NaN")
}

// TestAngle_Deg verifies the degree accessor used by the CLI reporting.
func TestAngle_Deg(t *testing.T) {
	assert.InDelta(t, 180.0, arc.NewAngle(math.Pi).Deg(), 1e-9)
	assert.InDelta(t, 90.0, arc.NewAngle(math.Pi/2).Deg(), 1e-9)
	assert.InDelta(t, 270.0, arc.NewAngle(-math.Pi/2).Deg(), 1e-9)
}

// TestAngle_LinearOrder verifies that comparison is a plain linear order
// on the representative, not a circular order: 359° > 1° even though the
// two are neighbours on the circle.
func TestAngle_LinearOrder(t *testing.T) {
	lo := arc.NewAngle(1 * math.Pi / 180)
	hi := arc.NewAngle(359 * math.Pi / 180)
	assert.True(t, hi > lo, "ordering compares representatives only")
	assert.True(t, lo < hi)
}
