// SPDX-License-Identifier: MIT

package bispectrum

import "errors"

var (
	// ErrNoCoupling is returned before any particle work when the
	// options carry no coupling-coefficient cache.
	ErrNoCoupling = errors.New("bispectrum: missing coupling-coefficient evaluator")

	// ErrNoHarmonics is returned before any particle work when the
	// options carry no spherical-harmonic evaluator.
	ErrNoHarmonics = errors.New("bispectrum: missing spherical-harmonic evaluator")

	// ErrNilBox is returned when the periodic box is nil.
	ErrNilBox = errors.New("bispectrum: box is nil")

	// ErrNoPositions is returned when there are no particles.
	ErrNoPositions = errors.New("bispectrum: positions must be non-empty")

	// ErrNilSource is returned when no neighbor source is given.
	ErrNilSource = errors.New("bispectrum: neighbor source is nil")

	// ErrNegativeDegree is returned for lmax < 0.
	ErrNegativeDegree = errors.New("bispectrum: maximum degree must be >= 0")
)
