// SPDX-License-Identifier: MIT

package order

import "errors"

var (
	// ErrNilBox is returned when the periodic box is nil.
	ErrNilBox = errors.New("order: box is nil")

	// ErrNoPositions is returned when there are no particles.
	ErrNoPositions = errors.New("order: positions must be non-empty")

	// ErrBadNeighborRange is returned when NeighMin < 1 or
	// NeighMax < NeighMin.
	ErrBadNeighborRange = errors.New("order: neighbor range must satisfy 1 <= NeighMin <= NeighMax")

	// ErrNegativeDegree is returned when LMax < 0.
	ErrNegativeDegree = errors.New("order: maximum degree must be >= 0")

	// ErrDegreeTooLow is returned by SteinhardtQ when lmax < 2 (no even
	// degree to report).
	ErrDegreeTooLow = errors.New("order: steinhardt lmax must be >= 2")

	// ErrNoNoiseSource is returned when NoiseSamples > 0 without an
	// explicit random source: implicit global randomness would break
	// the package's determinism guarantees.
	ErrNoNoiseSource = errors.New("order: noise resampling requires an explicit NoiseSource")

	// ErrBadOrientations is returned when orientations are given but do
	// not match the particle count.
	ErrBadOrientations = errors.New("order: orientations length must match positions")

	// ErrEigenFailed is returned when the neighborhood inertia tensor
	// cannot be diagonalized.
	ErrEigenFailed = errors.New("order: inertia eigendecomposition failed")

	// ErrNilSource is returned by SteinhardtQ when no neighbor source is
	// given.
	ErrNilSource = errors.New("order: neighbor source is nil")
)
