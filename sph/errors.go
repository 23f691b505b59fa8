// SPDX-License-Identifier: MIT

package sph

import "errors"

var (
	// ErrNegativeDegree is returned when lmax < 0.
	ErrNegativeDegree = errors.New("sph: maximum degree must be >= 0")

	// ErrLengthMismatch is returned when the angle arrays differ in length.
	ErrLengthMismatch = errors.New("sph: phi and theta must have equal length")

	// ErrNoAngles is returned when the angle arrays are empty.
	ErrNoAngles = errors.New("sph: angle arrays must be non-empty")
)
