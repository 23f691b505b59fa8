// SPDX-License-Identifier: MIT

// Package order: configuration shared by the averaging entry points.
package order

import (
	"log/slog"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/num/quat"
)

// Frame selects the reference frame bond vectors are expressed in
// before harmonic evaluation.
type Frame int

const (
	// FrameNeighborhood rotates each particle's bonds into the
	// principal-axis frame of the neighborhood inertia tensor.
	FrameNeighborhood Frame = iota

	// FrameParticleLocal rotates each particle's bonds by the inverse of
	// its own orientation quaternion.
	FrameParticleLocal

	// FrameGlobal evaluates bonds as-is, in simulation coordinates.
	FrameGlobal
)

// Options configures NeighborAverage and its derivatives.
//
// Fields:
//   - NeighMin, NeighMax - the range of environment sizes to stack
//     (inclusive). One block of harmonic columns per size.
//   - LMax        - maximum spherical-harmonic degree.
//   - NegativeM   - include negative orders in the output columns.
//   - Frame       - reference frame, see the Frame constants.
//   - Orientations - per-particle orientation quaternions; consulted
//     only by FrameParticleLocal. A nil slice there logs an error and
//     falls back to the identity orientation.
//   - RMaxGuess   - initial neighbor-search radius; speed only.
//   - NoiseSamples, NoiseMagnitude, NoiseSource - average the result
//     over NoiseSamples runs with i.i.d. Gaussian position noise of the
//     given magnitude. Disabled when NoiseSamples == 0; a positive
//     sample count requires an explicit NoiseSource.
//   - Logger      - structured logger for recoverable misuse (defaults
//     to slog.Default()).
type Options struct {
	NeighMin, NeighMax int
	LMax               int
	NegativeM          bool
	Frame              Frame
	Orientations       []quat.Number
	RMaxGuess          float64
	NoiseSamples       int
	NoiseMagnitude     float64
	NoiseSource        rand.Source
	Logger             *slog.Logger
}

// DefaultOptions returns the documented defaults: a single 4-neighbor
// environment, LMax = 4, negative orders on, neighborhood frame, and
// RMaxGuess = 1.0.
func DefaultOptions() Options {
	return Options{
		NeighMin:  4,
		NeighMax:  4,
		LMax:      4,
		NegativeM: true,
		Frame:     FrameNeighborhood,
		RMaxGuess: 1.0,
	}
}

// validate normalizes and checks an Options value.
func (o *Options) validate(particles int) error {
	if o.NeighMin < 1 || o.NeighMax < o.NeighMin {
		return ErrBadNeighborRange
	}
	if o.LMax < 0 {
		return ErrNegativeDegree
	}
	if o.NoiseSamples > 0 && o.NoiseSource == nil {
		return ErrNoNoiseSource
	}
	if o.Orientations != nil && len(o.Orientations) != particles {
		return ErrBadOrientations
	}
	return nil
}

// logger returns the configured logger or the process default.
func (o *Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
