// SPDX-License-Identifier: MIT

package sph

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// LM is one (degree, order) pair of the harmonic column layout.
type LM struct {
	L, M int
}

// LMs enumerates the column order used by Eval: l ascending from 0 to
// lmax, m ascending from -l to l. With negativeM disabled m starts at 0.
func LMs(lmax int, negativeM bool) []LM {
	out := make([]LM, 0, Count(lmax, negativeM))
	for l := 0; l <= lmax; l++ {
		lo := -l
		if !negativeM {
			lo = 0
		}
		for m := lo; m <= l; m++ {
			out = append(out, LM{L: l, M: m})
		}
	}
	return out
}

// Count returns the number of (l, m) columns for degrees 0..lmax:
// (lmax+1)² with negative orders, (lmax+1)(lmax+2)/2 without.
func Count(lmax int, negativeM bool) int {
	if negativeM {
		return (lmax + 1) * (lmax + 1)
	}
	return (lmax + 1) * (lmax + 2) / 2
}

// Index returns the column of (l, m) in the negative-order layout.
// Closed form of the LMs enumeration: l² + l + m.
func Index(l, m int) int { return l*l + l + m }

// Eval computes Y_lm for every (phi, theta) pair and degrees 0..lmax.
// The result has one row per angle pair and one column per LMs entry.
//
// Returns ErrNegativeDegree, ErrLengthMismatch or ErrNoAngles on bad
// input; never errors on NaN angles (NaN rows propagate).
func Eval(phi, theta []float64, lmax int, negativeM bool) (*mat.CDense, error) {
	if lmax < 0 {
		return nil, ErrNegativeDegree
	}
	if len(phi) != len(theta) {
		return nil, ErrLengthMismatch
	}
	if len(phi) == 0 {
		return nil, ErrNoAngles
	}

	cols := Count(lmax, negativeM)
	out := mat.NewCDense(len(phi), cols, nil)

	// Scratch reused across rows: normalized Legendre values indexed by
	// tri(l)+m, and the azimuthal phases e^{i·m·theta} for m = 0..lmax.
	pbar := make([]float64, (lmax+1)*(lmax+2)/2)
	phase := make([]complex128, lmax+1)

	for row := range phi {
		x := math.Cos(phi[row])
		s := math.Sin(phi[row])
		legendre(pbar, lmax, x, s)

		phase[0] = 1
		for m := 1; m <= lmax; m++ {
			phase[m] = complex(math.Cos(float64(m)*theta[row]), math.Sin(float64(m)*theta[row]))
		}

		col := 0
		for l := 0; l <= lmax; l++ {
			if negativeM {
				// Y_{l,-m} = (-1)^m conj(Y_{l,m}); emit m = -l..-1 first.
				for m := l; m >= 1; m-- {
					y := complex(pbar[tri(l)+m], 0) * phase[m]
					if m%2 != 0 {
						y = -y
					}
					out.Set(row, col, complex(real(y), -imag(y)))
					col++
				}
			}
			for m := 0; m <= l; m++ {
				out.Set(row, col, complex(pbar[tri(l)+m], 0)*phase[m])
				col++
			}
		}
	}
	return out, nil
}

// tri is the offset of degree l in the packed (l, m>=0) triangle.
func tri(l int) int { return l * (l + 1) / 2 }

// legendre fills pbar with the fully normalized associated Legendre
// values Pbar_l^m(x) for 0 <= m <= l <= lmax, where
// Pbar_l^m = sqrt((2l+1)/(4π) · (l-m)!/(l+m)!) · P_l^m and s = sin of
// the polar angle. Condon-Shortley phase included.
func legendre(pbar []float64, lmax int, x, s float64) {
	pbar[0] = 1 / (2 * math.SqrtPi)
	// Diagonal: Pbar_m^m.
	for m := 1; m <= lmax; m++ {
		pbar[tri(m)+m] = -math.Sqrt(float64(2*m+1)/float64(2*m)) * s * pbar[tri(m-1)+m-1]
	}
	// First sub-diagonal: Pbar_{m+1}^m.
	for m := 0; m < lmax; m++ {
		pbar[tri(m+1)+m] = math.Sqrt(float64(2*m+3)) * x * pbar[tri(m)+m]
	}
	// Upward recurrence in l.
	for m := 0; m <= lmax; m++ {
		for l := m + 2; l <= lmax; l++ {
			a := math.Sqrt(float64(4*l*l-1) / float64(l*l-m*m))
			b := math.Sqrt(float64((l-1)*(l-1)-m*m) / float64(4*(l-1)*(l-1)-1))
			pbar[tri(l)+m] = a * (x*pbar[tri(l-1)+m] - b*pbar[tri(l-2)+m])
		}
	}
}
