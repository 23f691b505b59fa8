package sph_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sphectra/sphectra/sph"
)

// TestLMs_LayoutAndIndex verifies the enumeration order, the closed-form
// Index and the Count helpers agree.
func TestLMs_LayoutAndIndex(t *testing.T) {
	const lmax = 5
	lms := sph.LMs(lmax, true)
	require.Len(t, lms, sph.Count(lmax, true))
	require.Len(t, lms, (lmax+1)*(lmax+1))

	for i, lm := range lms {
		assert.Equal(t, i, sph.Index(lm.L, lm.M), "Index disagrees at %+v", lm)
	}

	half := sph.LMs(lmax, false)
	require.Len(t, half, sph.Count(lmax, false))
	for _, lm := range half {
		assert.GreaterOrEqual(t, lm.M, 0, "non-negative layout must not contain m<0")
	}
}

// TestEval_KnownLowDegrees checks Y_00, Y_10 and Y_11 against their
// textbook closed forms at several angles.
func TestEval_KnownLowDegrees(t *testing.T) {
	phis := []float64{0, math.Pi / 3, math.Pi / 2, 2.1, math.Pi}
	thetas := []float64{0, 0.4, -1.3, 2.9, -2.2}

	ys, err := sph.Eval(phis, thetas, 1, true)
	require.NoError(t, err)

	for i := range phis {
		p, th := phis[i], thetas[i]

		y00 := complex(1/(2*math.SqrtPi), 0)
		y10 := complex(math.Sqrt(3/(4*math.Pi))*math.Cos(p), 0)
		y11 := complex(-math.Sqrt(3/(8*math.Pi))*math.Sin(p), 0) *
			cmplx.Exp(complex(0, th))
		y1m1 := -cmplx.Conj(y11) // (-1)^1 conj

		assert.InDelta(t, real(y00), real(ys.At(i, sph.Index(0, 0))), 1e-14)
		assert.InDelta(t, real(y10), real(ys.At(i, sph.Index(1, 0))), 1e-14)
		assert.InDelta(t, imag(ys.At(i, sph.Index(1, 0))), 0, 1e-14)

		got11 := ys.At(i, sph.Index(1, 1))
		assert.InDelta(t, real(y11), real(got11), 1e-14)
		assert.InDelta(t, imag(y11), imag(got11), 1e-14)

		got1m1 := ys.At(i, sph.Index(1, -1))
		assert.InDelta(t, real(y1m1), real(got1m1), 1e-14)
		assert.InDelta(t, imag(y1m1), imag(got1m1), 1e-14)
	}
}

// TestEval_AdditionTheorem checks sum_m |Y_lm|² = (2l+1)/(4π) for every
// degree, a strong whole-row consistency property.
func TestEval_AdditionTheorem(t *testing.T) {
	const lmax = 8
	phis := []float64{0.1, 0.9, 1.7, 2.6, 3.0}
	thetas := []float64{-2.8, -0.6, 0.3, 1.9, 2.4}

	ys, err := sph.Eval(phis, thetas, lmax, true)
	require.NoError(t, err)

	for row := range phis {
		for l := 0; l <= lmax; l++ {
			sum := 0.0
			for m := -l; m <= l; m++ {
				sum += math.Pow(cmplx.Abs(ys.At(row, sph.Index(l, m))), 2)
			}
			want := float64(2*l+1) / (4 * math.Pi)
			assert.InDelta(t, want, sum, 1e-12, "addition theorem fails at l=%d row=%d", l, row)
		}
	}
}

// TestEval_ConjugationSymmetry checks Y_{l,-m} = (-1)^m conj(Y_{l,m})
// across the whole table.
func TestEval_ConjugationSymmetry(t *testing.T) {
	const lmax = 6
	phis := []float64{0.7, 1.2, 2.0}
	thetas := []float64{0.5, -1.1, 2.7}

	ys, err := sph.Eval(phis, thetas, lmax, true)
	require.NoError(t, err)

	for row := range phis {
		for l := 0; l <= lmax; l++ {
			for m := 1; m <= l; m++ {
				want := cmplx.Conj(ys.At(row, sph.Index(l, m)))
				if m%2 != 0 {
					want = -want
				}
				got := ys.At(row, sph.Index(l, -m))
				assert.InDelta(t, real(want), real(got), 1e-14)
				assert.InDelta(t, imag(want), imag(got), 1e-14)
			}
		}
	}
}

// TestEval_NaNPropagation: NaN angles yield NaN harmonics, not panics.
func TestEval_NaNPropagation(t *testing.T) {
	ys, err := sph.Eval([]float64{math.NaN()}, []float64{0}, 2, true)
	require.NoError(t, err)
	v := ys.At(0, sph.Index(1, 0))
	assert.True(t, math.IsNaN(real(v)), "NaN polar angle must propagate")
}

// TestEval_Errors exercises the sentinel surface.
func TestEval_Errors(t *testing.T) {
	_, err := sph.Eval([]float64{1}, []float64{1}, -1, true)
	assert.ErrorIs(t, err, sph.ErrNegativeDegree)

	_, err = sph.Eval([]float64{1, 2}, []float64{1}, 2, true)
	assert.ErrorIs(t, err, sph.ErrLengthMismatch)

	_, err = sph.Eval(nil, nil, 2, true)
	assert.ErrorIs(t, err, sph.ErrNoAngles)
}

// TestEval_NonNegativeLayout checks the reduced layout matches the
// corresponding columns of the full layout.
func TestEval_NonNegativeLayout(t *testing.T) {
	const lmax = 3
	phis := []float64{0.4, 1.9}
	thetas := []float64{1.0, -0.7}

	full, err := sph.Eval(phis, thetas, lmax, true)
	require.NoError(t, err)
	half, err := sph.Eval(phis, thetas, lmax, false)
	require.NoError(t, err)

	lms := sph.LMs(lmax, false)
	for row := range phis {
		for i, lm := range lms {
			want := full.At(row, sph.Index(lm.L, lm.M))
			got := half.At(row, i)
			assert.InDelta(t, real(want), real(got), 1e-14)
			assert.InDelta(t, imag(want), imag(got), 1e-14)
		}
	}
}
