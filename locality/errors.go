// SPDX-License-Identifier: MIT

package locality

import "errors"

var (
	// ErrNilBox is returned when a resolver is given a nil box.
	ErrNilBox = errors.New("locality: box is nil")

	// ErrNoPositions is returned when a resolver is given no particles.
	ErrNoPositions = errors.New("locality: positions must be non-empty")

	// ErrNonPositiveCutoff is returned by Cutoff for r <= 0, NaN or Inf.
	ErrNonPositiveCutoff = errors.New("locality: cutoff must be positive and finite")

	// ErrNonPositiveCount is returned by KNearest for k <= 0.
	ErrNonPositiveCount = errors.New("locality: neighbor count must be positive")

	// ErrTooFewParticles is returned by KNearest when the system cannot
	// supply k neighbors per center (k > N-1 with self-exclusion).
	ErrTooFewParticles = errors.New("locality: too few particles for requested neighbor count")
)
