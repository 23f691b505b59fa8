// SPDX-License-Identifier: MIT

package order

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/sphectra/sphectra/box"
	"github.com/sphectra/sphectra/locality"
	"github.com/sphectra/sphectra/sph"
)

// SteinhardtQ computes the per-particle Steinhardt order parameters
//
//	q_l = sqrt( 4π/(2l+1) · Σ_m |<Y_lm>|² )
//
// for even degrees l = 2, 4, ..., lmax, where <Y_lm> is the mean bond
// harmonic over the particle's neighbors. The result has one row per
// particle and one column per even degree, ascending. Particles with no
// neighbors report q_l = 0. rmaxGuess only affects neighbor-resolution
// speed.
func SteinhardtQ(b *box.Box, positions []r3.Vec, neighbors locality.Source, lmax int, rmaxGuess float64) (*mat.Dense, error) {
	if b == nil {
		return nil, ErrNilBox
	}
	if len(positions) == 0 {
		return nil, ErrNoPositions
	}
	if neighbors == nil {
		return nil, ErrNilSource
	}
	if lmax < 2 {
		return nil, ErrDegreeTooLow
	}

	nl, err := neighbors.Resolve(b, positions, locality.Options{RMaxGuess: rmaxGuess})
	if err != nil {
		return nil, err
	}

	n := len(positions)
	degrees := lmax / 2
	out := mat.NewDense(n, degrees, nil)
	if nl.Len() == 0 {
		return out, nil // no bonds anywhere: all q_l are zero
	}

	phi := make([]float64, nl.Len())
	theta := make([]float64, nl.Len())
	for row := range nl.I {
		d := b.Wrap(r3.Sub(positions[nl.J[row]], positions[nl.I[row]]))
		r := r3.Norm(d)
		phi[row] = math.Acos(d.Z / r)
		theta[row] = math.Atan2(d.Y, d.X)
	}

	ys, err := sph.Eval(phi, theta, lmax, true)
	if err != nil {
		return nil, err
	}

	absq := make([]float64, 2*lmax+1)
	for i := 0; i < n; i++ {
		lo, hi := nl.Segment(i)
		if nl.Counts[i] == 0 {
			continue
		}
		inv := complex(1/float64(nl.Counts[i]), 0)
		for li, l := 0, 2; l <= lmax; li, l = li+1, l+2 {
			terms := absq[:2*l+1]
			for m := -l; m <= l; m++ {
				var sum complex128
				c := sph.Index(l, m)
				for row := lo; row < hi; row++ {
					sum += ys.At(row, c)
				}
				qlm := sum * inv
				if math.IsNaN(real(qlm)) || math.IsNaN(imag(qlm)) {
					qlm = 0
				}
				a := cmplx.Abs(qlm)
				terms[m+l] = a * a
			}
			out.Set(i, li, math.Sqrt(4*math.Pi/float64(2*l+1)*floats.Sum(terms)))
		}
	}
	return out, nil
}
