package lattice

import "errors"

var (
	// ErrNonPositiveLattice indicates a substrate vector length of zero;
	// every epitaxy-matrix entry would divide by it.
	ErrNonPositiveLattice = errors.New("lattice: substrate vector lengths must be positive")

	// ErrDegenerateAlpha indicates sin(alpha) == 0: the substrate cell is
	// degenerate and the matrix entries are undefined.
	ErrDegenerateAlpha = errors.New("lattice: substrate angle must not be a multiple of pi")
)
