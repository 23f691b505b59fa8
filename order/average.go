// SPDX-License-Identifier: MIT

package order

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sphectra/sphectra/box"
	"github.com/sphectra/sphectra/locality"
	"github.com/sphectra/sphectra/sph"
)

// NeighborAverage computes, for every environment size n in
// [NeighMin, NeighMax], the per-particle mean of the bond spherical
// harmonics over the n nearest neighbors, and stacks the blocks
// column-wise: the result has len(positions) rows and
// (NeighMax-NeighMin+1) · sph.Count(LMax, NegativeM) columns.
//
// Bond means ignore NaN bonds; a particle whose bonds are all degenerate
// keeps NaN entries rather than masking them. A nil opts means
// DefaultOptions().
func NeighborAverage(b *box.Box, positions []r3.Vec, opts *Options) (*mat.CDense, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if b == nil {
		return nil, ErrNilBox
	}
	if len(positions) == 0 {
		return nil, ErrNoPositions
	}
	if err := o.validate(len(positions)); err != nil {
		return nil, err
	}

	if o.NoiseSamples > 0 {
		return noiseAveraged(b, positions, o)
	}
	return neighborAverageOnce(b, positions, o)
}

// AbsNeighborAverage is NeighborAverage with element-wise moduli.
func AbsNeighborAverage(b *box.Box, positions []r3.Vec, opts *Options) (*mat.Dense, error) {
	cm, err := NeighborAverage(b, positions, opts)
	if err != nil {
		return nil, err
	}
	rows, cols := cm.Dims()
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, cmplx.Abs(cm.At(i, j)))
		}
	}
	return out, nil
}

// SystemAverage is the particle-mean of NeighborAverage: one complex
// value per harmonic column.
func SystemAverage(b *box.Box, positions []r3.Vec, opts *Options) ([]complex128, error) {
	cm, err := NeighborAverage(b, positions, opts)
	if err != nil {
		return nil, err
	}
	rows, cols := cm.Dims()
	out := make([]complex128, cols)
	inv := complex(1/float64(rows), 0)
	for j := 0; j < cols; j++ {
		var sum complex128
		for i := 0; i < rows; i++ {
			sum += cm.At(i, j)
		}
		out[j] = sum * inv
	}
	return out, nil
}

// AbsSystemAverage is SystemAverage with element-wise moduli.
func AbsSystemAverage(b *box.Box, positions []r3.Vec, opts *Options) ([]float64, error) {
	cs, err := SystemAverage(b, positions, opts)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(cs))
	for i, c := range cs {
		out[i] = cmplx.Abs(c)
	}
	return out, nil
}

// noiseAveraged repeats the computation on Gaussian-perturbed copies of
// the positions and averages the results element-wise.
func noiseAveraged(b *box.Box, positions []r3.Vec, o Options) (*mat.CDense, error) {
	noise := distuv.Normal{Mu: 0, Sigma: o.NoiseMagnitude, Src: o.NoiseSource}
	samples := o.NoiseSamples
	o.NoiseSamples = 0

	var sum *mat.CDense
	perturbed := make([]r3.Vec, len(positions))
	for s := 0; s < samples; s++ {
		for i, p := range positions {
			perturbed[i] = r3.Vec{
				X: p.X + noise.Rand(),
				Y: p.Y + noise.Rand(),
				Z: p.Z + noise.Rand(),
			}
		}
		one, err := neighborAverageOnce(b, perturbed, o)
		if err != nil {
			return nil, err
		}
		if sum == nil {
			sum = one
			continue
		}
		rows, cols := sum.Dims()
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				sum.Set(i, j, sum.At(i, j)+one.At(i, j))
			}
		}
	}

	rows, cols := sum.Dims()
	inv := complex(1/float64(samples), 0)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			sum.Set(i, j, sum.At(i, j)*inv)
		}
	}
	return sum, nil
}

// neighborAverageOnce is one resampling-free pass.
func neighborAverageOnce(b *box.Box, positions []r3.Vec, o Options) (*mat.CDense, error) {
	n := len(positions)
	frame := o.Frame
	if frame == FrameParticleLocal && o.Orientations == nil {
		o.logger().Error("particle-local reference frame requested without orientations; using identity")
		frame = FrameGlobal
	}

	nl, err := locality.KNearest(o.NeighMax).Resolve(b, positions, locality.Options{RMaxGuess: o.RMaxGuess})
	if err != nil {
		return nil, err
	}

	cols := sph.Count(o.LMax, o.NegativeM)
	blocks := o.NeighMax - o.NeighMin + 1
	out := mat.NewCDense(n, blocks*cols, nil)

	bonds := make([]r3.Vec, o.NeighMax)
	for bi := 0; bi < blocks; bi++ {
		nn := o.NeighMin + bi

		phi := make([]float64, n*nn)
		theta := make([]float64, n*nn)
		for i := 0; i < n; i++ {
			lo, _ := nl.Segment(i)
			bnds := bonds[:nn]
			for k := 0; k < nn; k++ {
				row := lo + k
				bnds[k] = b.Wrap(r3.Sub(positions[nl.J[row]], positions[nl.I[row]]))
			}
			switch frame {
			case FrameParticleLocal:
				rotateInto(o.Orientations[i], bnds)
			case FrameNeighborhood:
				if err := neighborhoodFrame(bnds); err != nil {
					return nil, err
				}
			}
			for k, d := range bnds {
				r := r3.Norm(d)
				phi[i*nn+k] = math.Acos(d.Z / r)
				theta[i*nn+k] = math.Atan2(d.Y, d.X)
			}
		}

		ys, err := sph.Eval(phi, theta, o.LMax, o.NegativeM)
		if err != nil {
			return nil, err
		}

		// Mean over each particle's nn bonds, ignoring NaN bonds.
		for i := 0; i < n; i++ {
			for c := 0; c < cols; c++ {
				var sum complex128
				kept := 0
				for k := 0; k < nn; k++ {
					v := ys.At(i*nn+k, c)
					if math.IsNaN(real(v)) || math.IsNaN(imag(v)) {
						continue
					}
					sum += v
					kept++
				}
				if kept == 0 {
					out.Set(i, bi*cols+c, cmplx.NaN())
					continue
				}
				out.Set(i, bi*cols+c, sum*complex(1/float64(kept), 0))
			}
		}
	}
	return out, nil
}
