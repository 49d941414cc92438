package lattice

import (
	"fmt"
	"math"
)

// Sanitize repairs physically nonsensical inputs instead of rejecting
// them, mirroring the tool's traditional behavior: never trust the user,
// but keep going. It returns cleaned copies and a human-readable warning
// for every repair it applied.
//
// Repairs, in order:
//
//   - A negative adlayer length flips the cell's orientation, which is
//     the same cell with beta replaced by π−beta. The lengths are then
//     taken absolute.
//   - Same for the substrate: negative a1/a2 rewrite alpha as π−alpha.
//   - Alpha and both Beta endpoints are normalized into [0, 2π).
//   - Every Span with Min > Max is swapped.
//   - A sanitized Beta span wider than π almost certainly means the
//     caller wanted a range through zero, which this parametrization
//     cannot express; that earns a warning but no repair.
func Sanitize(sub Substrate, ad Adlayer) (Substrate, Adlayer, []string) {
	var warnings []string

	if ad.B1.Min*ad.B2.Min < 0 || ad.B1.Max*ad.B2.Max < 0 || ad.B1.Min*ad.B1.Max < 0 {
		warnings = append(warnings,
			"negative values for b1, b2 don't make any sense; putting them back in order")
		ad.Beta.Min = math.Pi - ad.Beta.Min
		ad.Beta.Max = math.Pi - ad.Beta.Max
	}
	if sub.A1*sub.A2 < 0 {
		warnings = append(warnings,
			"negative values for a1, a2 don't make any sense; putting them back in order")
		sub.Alpha = math.Pi - sub.Alpha
	}

	ad.B1.Min = math.Abs(ad.B1.Min)
	ad.B1.Max = math.Abs(ad.B1.Max)
	ad.B2.Min = math.Abs(ad.B2.Min)
	ad.B2.Max = math.Abs(ad.B2.Max)
	sub.A1 = math.Abs(sub.A1)
	sub.A2 = math.Abs(sub.A2)

	sub.Alpha = wrapTurn(sub.Alpha)
	ad.Beta.Min = wrapTurn(ad.Beta.Min)
	ad.Beta.Max = wrapTurn(ad.Beta.Max)

	ad.B1 = orderSpan(ad.B1)
	ad.B2 = orderSpan(ad.B2)
	ad.Beta = orderSpan(ad.Beta)

	if ad.Beta.Max-ad.Beta.Min > math.Pi {
		warnings = append(warnings, fmt.Sprintf(
			"sanitized beta bounds are more than 180 degrees apart (betamin %.6g°, betamax %.6g°); "+
				"a beta range through zero cannot be expressed this way",
			ad.Beta.Min*180/math.Pi, ad.Beta.Max*180/math.Pi))
	}

	return sub, ad, warnings
}

// wrapTurn shifts rad into [0, 2π). Same normalization the arc engine
// applies, duplicated here so sanitization stays free of arc types.
func wrapTurn(rad float64) float64 {
	return rad - 2*math.Pi*math.Floor(rad/(2*math.Pi))
}

func orderSpan(s Span) Span {
	if s.Min > s.Max {
		s.Min, s.Max = s.Max, s.Min
	}
	return s
}
