// SPDX-License-Identifier: MIT

// Package order: reference-frame rotations applied to bond vectors
// before harmonic evaluation.
package order

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// rotateInto rotates every bond by the inverse of the particle
// orientation q, expressing the bonds in the particle's own frame.
func rotateInto(q quat.Number, bonds []r3.Vec) {
	rot := r3.Rotation(quat.Conj(q))
	for i := range bonds {
		bonds[i] = rot.Rotate(bonds[i])
	}
}

// neighborhoodFrame rotates the bonds into the principal-axis frame of
// their inertia tensor. Eigenvector signs are fixed so the largest
// component of every axis is positive, keeping the frame deterministic.
func neighborhoodFrame(bonds []r3.Vec) error {
	// Inertia tensor I_ab = Σ (|r|²·δ_ab - r_a·r_b) over the bonds.
	var xx, yy, zz, xy, xz, yz float64
	for _, r := range bonds {
		n2 := r3.Norm2(r)
		xx += n2 - r.X*r.X
		yy += n2 - r.Y*r.Y
		zz += n2 - r.Z*r.Z
		xy -= r.X * r.Y
		xz -= r.X * r.Z
		yz -= r.Y * r.Z
	}
	inertia := mat.NewSymDense(3, []float64{
		xx, xy, xz,
		xy, yy, yz,
		xz, yz, zz,
	})

	var es mat.EigenSym
	if !es.Factorize(inertia, true) {
		return ErrEigenFailed
	}
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	axes := make([]r3.Vec, 3)
	for k := 0; k < 3; k++ {
		a := r3.Vec{X: vecs.At(0, k), Y: vecs.At(1, k), Z: vecs.At(2, k)}
		axes[k] = fixSign(a)
	}

	for i, r := range bonds {
		bonds[i] = r3.Vec{
			X: r3.Dot(axes[0], r),
			Y: r3.Dot(axes[1], r),
			Z: r3.Dot(axes[2], r),
		}
	}
	return nil
}

// fixSign flips an axis so its largest-magnitude component is positive.
func fixSign(a r3.Vec) r3.Vec {
	lead := a.X
	if absf(a.Y) > absf(lead) {
		lead = a.Y
	}
	if absf(a.Z) > absf(lead) {
		lead = a.Z
	}
	if lead < 0 {
		return r3.Scale(-1, a)
	}
	return a
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
