// SPDX-License-Identifier: MIT

// Package bispectrum: configuration for the assembler.
package bispectrum

import (
	"gonum.org/v1/gonum/mat"

	"github.com/sphectra/sphectra/sph"
	"github.com/sphectra/sphectra/wigner"
)

// HarmonicEvaluator computes per-bond spherical harmonics: rows are
// bonds, columns follow the sph column layout for the given lmax with
// negative orders included when negativeM is true. sph.Eval is the
// canonical implementation.
type HarmonicEvaluator func(phi, theta []float64, lmax int, negativeM bool) (*mat.CDense, error)

// Options configures Compute.
//
// Fields:
//   - RMaxGuess   - initial neighbor-search radius. Affects resolution
//     speed only, never the result.
//   - IncludeSelf - keep (i, i) pairs in the neighbor list. Off by
//     default (a particle is not part of its own environment).
//   - Coupling    - the coupling-coefficient cache. Shared across calls
//     on purpose: coefficients depend only on their six-integer key, so
//     one process-wide cache amortizes evaluation over every call at
//     the same lmax. A nil cache makes Compute fail fast with
//     ErrNoCoupling.
//   - Harmonics   - the harmonic evaluator. A nil evaluator makes
//     Compute fail fast with ErrNoHarmonics.
type Options struct {
	RMaxGuess   float64
	IncludeSelf bool
	Coupling    *wigner.Cache
	Harmonics   HarmonicEvaluator
}

// sharedCache is the process-wide default coupling cache, handed to
// every Options produced by DefaultOptions. Entries are never evicted.
var sharedCache = wigner.NewCache()

// DefaultOptions returns the documented defaults: RMaxGuess = 2.0,
// self pairs excluded, the shared exact coupling cache, and sph.Eval.
func DefaultOptions() Options {
	return Options{
		RMaxGuess: 2.0,
		Coupling:  sharedCache,
		Harmonics: sph.Eval,
	}
}
