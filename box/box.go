// SPDX-License-Identifier: MIT

package box

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Box is a periodic triclinic simulation box. The zero tilt factors
// reduce it to an orthorhombic (or cubic) box. Fields are read-only
// after construction; use the constructors so geometry is validated.
type Box struct {
	lx, ly, lz float64
	xy, xz, yz float64
}

// New constructs a triclinic Box from edge lengths and tilt factors.
// Returns ErrNonPositiveLength if any length is not strictly positive
// and finite, ErrBadTilt if any tilt factor is not finite.
func New(lx, ly, lz, xy, xz, yz float64) (*Box, error) {
	for _, l := range [3]float64{lx, ly, lz} {
		if !(l > 0) || math.IsInf(l, 0) {
			return nil, ErrNonPositiveLength
		}
	}
	for _, t := range [3]float64{xy, xz, yz} {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, ErrBadTilt
		}
	}
	return &Box{lx: lx, ly: ly, lz: lz, xy: xy, xz: xz, yz: yz}, nil
}

// NewOrthorhombic constructs a zero-tilt Box with the given edge lengths.
func NewOrthorhombic(lx, ly, lz float64) (*Box, error) {
	return New(lx, ly, lz, 0, 0, 0)
}

// NewCubic constructs a cubic Box with edge length l.
func NewCubic(l float64) (*Box, error) {
	return New(l, l, l, 0, 0, 0)
}

// Lx returns the box edge length along x.
func (b *Box) Lx() float64 { return b.lx }

// Ly returns the box edge length along y.
func (b *Box) Ly() float64 { return b.ly }

// Lz returns the box edge length along z.
func (b *Box) Lz() float64 { return b.lz }

// Tilt returns the three tilt factors (xy, xz, yz).
func (b *Box) Tilt() (xy, xz, yz float64) { return b.xy, b.xz, b.yz }

// Volume returns the box volume Lx·Ly·Lz (tilts are volume-preserving).
func (b *Box) Volume() float64 { return b.lx * b.ly * b.lz }

// Fractional converts a Cartesian vector into box-fraction coordinates
// (the h⁻¹·v transform). The inverse of Absolute.
func (b *Box) Fractional(v r3.Vec) r3.Vec {
	fz := v.Z / b.lz
	fy := (v.Y - b.yz*b.lz*fz) / b.ly
	fx := (v.X - b.xy*b.ly*fy - b.xz*b.lz*fz) / b.lx
	return r3.Vec{X: fx, Y: fy, Z: fz}
}

// Absolute converts box-fraction coordinates back into Cartesian space
// (the h·f transform). The inverse of Fractional.
func (b *Box) Absolute(f r3.Vec) r3.Vec {
	return r3.Vec{
		X: b.lx*f.X + b.xy*b.ly*f.Y + b.xz*b.lz*f.Z,
		Y: b.ly*f.Y + b.yz*b.lz*f.Z,
		Z: b.lz * f.Z,
	}
}

// Wrap applies the minimum-image convention to a displacement vector:
// the returned vector is the shortest periodic image of v. Rounding is
// done in fractional coordinates, so the same rule covers triclinic
// boxes without special cases.
func (b *Box) Wrap(v r3.Vec) r3.Vec {
	f := b.Fractional(v)
	f.X -= math.Round(f.X)
	f.Y -= math.Round(f.Y)
	f.Z -= math.Round(f.Z)
	return b.Absolute(f)
}

// WrapAll applies Wrap to every vector in vs, in place.
func (b *Box) WrapAll(vs []r3.Vec) {
	for i := range vs {
		vs[i] = b.Wrap(vs[i])
	}
}

// PerpendicularWidths returns the distances between opposite box faces.
// They bound the cell sizes a cutoff-based spatial grid may use; for an
// orthorhombic box they equal the edge lengths.
func (b *Box) PerpendicularWidths() (wx, wy, wz float64) {
	a1 := r3.Vec{X: b.lx}
	a2 := r3.Vec{X: b.xy * b.ly, Y: b.ly}
	a3 := r3.Vec{X: b.xz * b.lz, Y: b.yz * b.lz, Z: b.lz}
	v := b.Volume()
	wx = v / r3.Norm(r3.Cross(a2, a3))
	wy = v / r3.Norm(r3.Cross(a3, a1))
	wz = v / r3.Norm(r3.Cross(a1, a2))
	return wx, wy, wz
}
