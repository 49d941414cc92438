// Command latticematch computes coincident and commensurate lattice
// matches for a substrate/adlayer pairing.
//
// Usage:
//
//	latticematch a1 a2 alpha b1min b1max b2min b2max betamin betamax
//
// Lengths share any consistent unit; angles are given in degrees. The
// three report sections list one angular range per line, lower and
// upper bound in degrees.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/fatih/color"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/katalvlaran/latticematch/arc"
	"github.com/katalvlaran/latticematch/lattice"
)

var (
	app = kingpin.New("latticematch",
		"Analytic coincident/commensurate lattice match calculator.\n\n"+
			"Computes the admissible ranges of the interface angle theta between\n"+
			"the substrate lattice vector a1 and the adlayer lattice vector b1.\n"+
			"Please input angles in degrees.")

	a1      = app.Arg("a1", "substrate lattice vector length |a1|").Required().Float64()
	a2      = app.Arg("a2", "substrate lattice vector length |a2|").Required().Float64()
	alpha   = app.Arg("alpha", "substrate angle between a1 and a2, degrees").Required().Float64()
	b1min   = app.Arg("b1min", "adlayer |b1| lower bound").Required().Float64()
	b1max   = app.Arg("b1max", "adlayer |b1| upper bound").Required().Float64()
	b2min   = app.Arg("b2min", "adlayer |b2| lower bound").Required().Float64()
	b2max   = app.Arg("b2max", "adlayer |b2| upper bound").Required().Float64()
	betamin = app.Arg("betamin", "adlayer angle between b1 and b2, lower bound, degrees").Required().Float64()
	betamax = app.Arg("betamax", "adlayer angle between b1 and b2, upper bound, degrees").Required().Float64()
)

func main() {
	app.HelpFlag.Short('h')
	kingpin.MustParse(app.Parse(os.Args[1:]))

	sub := lattice.Substrate{A1: *a1, A2: *a2, Alpha: deg2rad(*alpha)}
	ad := lattice.Adlayer{
		B1:   lattice.Span{Min: *b1min, Max: *b1max},
		B2:   lattice.Span{Min: *b2min, Max: *b2max},
		Beta: lattice.Span{Min: deg2rad(*betamin), Max: deg2rad(*betamax)},
	}

	sub, ad, warnings := lattice.Sanitize(sub, ad)
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, color.YellowString("warning:"), w)
	}

	res, err := lattice.Solve(sub, ad)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}

	report("Possible coincident lattice matches with px, qx:", res.CoincidentX)
	report("Possible coincident lattice matches with qy, py:", res.CoincidentY)
	report("Possible commensurate lattice matches:", res.Commensurate)
}

func report(header string, s *arc.Set) {
	fmt.Println(color.CyanString(header))
	for _, a := range s.View() {
		fmt.Printf("%g %g\n", a.Lower().Deg(), a.Upper().Deg())
	}
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180
}
