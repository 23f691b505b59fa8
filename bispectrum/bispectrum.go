// SPDX-License-Identifier: MIT

package bispectrum

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/sphectra/sphectra/box"
	"github.com/sphectra/sphectra/locality"
	"github.com/sphectra/sphectra/sph"
)

// Compute assembles the bispectrum invariants of every particle's local
// environment and packs them into a dense real matrix with one row per
// particle and one adjacent (real, imag) column pair per surviving
// degree triple, in ascending (l1, l2, l) order.
//
// A nil opts means DefaultOptions(). Missing evaluators fail fast with
// ErrNoCoupling / ErrNoHarmonics before any particle data is touched.
// For fixed inputs the output is bit-identical across calls.
func Compute(b *box.Box, positions []r3.Vec, neighbors locality.Source, lmax int, opts *Options) (*mat.Dense, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	// Capability checks come first: fail before any particle work.
	if o.Coupling == nil {
		return nil, ErrNoCoupling
	}
	if o.Harmonics == nil {
		return nil, ErrNoHarmonics
	}
	if b == nil {
		return nil, ErrNilBox
	}
	if neighbors == nil {
		return nil, ErrNilSource
	}
	if lmax < 0 {
		return nil, ErrNegativeDegree
	}
	n := len(positions)
	if n == 0 {
		return nil, ErrNoPositions
	}

	nl, err := neighbors.Resolve(b, positions, locality.Options{
		RMaxGuess:   o.RMaxGuess,
		IncludeSelf: o.IncludeSelf,
	})
	if err != nil {
		return nil, err
	}

	avg, err := averagedHarmonics(b, positions, nl, lmax, o.Harmonics)
	if err != nil {
		return nil, err
	}

	triples := Triples(lmax)
	acc := make([][]complex128, len(triples))
	contributed := make([]bool, len(triples))
	for ti := range acc {
		acc[ti] = make([]complex128, n)
	}
	right := make([]complex128, n)

	for ti, tr := range triples {
		for m := -tr.L; m <= tr.L; m++ {
			for p := range right {
				right[p] = 0
			}
			any := false

			m1lo, m1hi := maxInt(-tr.L1, m-tr.L2), minInt(tr.L1, m+tr.L2)
			for m1 := m1lo; m1 <= m1hi; m1++ {
				c := o.Coupling.Get(tr.L1, tr.L2, tr.L, m1, m-m1, m)
				if c == 0 {
					// Forbidden term: skipped, and it does not mark the
					// triple as contributing.
					continue
				}
				any = true

				c1 := sph.Index(tr.L1, m1)
				c2 := sph.Index(tr.L2, m-m1)
				for p := 0; p < n; p++ {
					right[p] += complex(c, 0) *
						cmplx.Conj(avg.At(p, c1)) *
						cmplx.Conj(avg.At(p, c2))
				}
			}

			if any {
				contributed[ti] = true
				cl := sph.Index(tr.L, m)
				for p := 0; p < n; p++ {
					acc[ti][p] += avg.At(p, cl) * right[p]
				}
			}
		}
	}

	return pack(triples, contributed, acc, n), nil
}

// averagedHarmonics runs steps 1-3: bond geometry, raw harmonics, and
// the NaN-safe segmented mean. The result has one row per particle and
// the full negative-order column layout for lmax.
func averagedHarmonics(b *box.Box, positions []r3.Vec, nl *locality.List, lmax int, eval HarmonicEvaluator) (*mat.CDense, error) {
	n := len(positions)
	cols := sph.Count(lmax, true)
	avg := mat.NewCDense(n, cols, nil)
	if nl.Len() == 0 {
		// No bonds anywhere: every particle averages to exact zero.
		return avg, nil
	}

	phi := make([]float64, nl.Len())
	theta := make([]float64, nl.Len())
	for row := range nl.I {
		d := b.Wrap(r3.Sub(positions[nl.J[row]], positions[nl.I[row]]))
		r := r3.Norm(d)
		phi[row] = math.Acos(d.Z / r) // NaN for zero-length bonds
		theta[row] = math.Atan2(d.Y, d.X)
	}

	raw, err := eval(phi, theta, lmax, true)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		lo, hi := nl.Segment(i)
		if nl.Counts[i] == 0 {
			continue // isolated particle: stays exact zero
		}
		inv := complex(1/float64(nl.Counts[i]), 0)
		for c := 0; c < cols; c++ {
			var sum complex128
			for row := lo; row < hi; row++ {
				sum += raw.At(row, c)
			}
			v := sum * inv
			if math.IsNaN(real(v)) || math.IsNaN(imag(v)) {
				v = 0
			}
			avg.Set(i, c, v)
		}
	}
	return avg, nil
}

// pack serializes the surviving triples' complex accumulators into the
// real output layout: ascending triple order, (real, imag) adjacent.
// The interleaving is element-wise on purpose; no layout reinterpretation.
func pack(triples []Triple, contributed []bool, acc [][]complex128, n int) *mat.Dense {
	kept := make([]int, 0, len(triples))
	for ti := range triples {
		if contributed[ti] {
			kept = append(kept, ti)
		}
	}

	out := mat.NewDense(n, 2*len(kept), nil)
	for oi, ti := range kept {
		for p := 0; p < n; p++ {
			out.Set(p, 2*oi, real(acc[ti][p]))
			out.Set(p, 2*oi+1, imag(acc[ti][p]))
		}
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
