// Package sphectra is an in-memory toolkit for rotationally-invariant
// structural descriptors of particle neighborhoods - from periodic-box
// geometry to bispectrum invariants.
//
// 🚀 What is sphectra?
//
//	A deterministic, library-only toolkit that brings together:
//		• Periodic boxes: orthorhombic & triclinic minimum-image wrapping
//		• Neighbor lists: cutoff cell lists & k-nearest resolution
//		• Spherical harmonics: stable normalized evaluation up to any degree
//		• Coupling coefficients: exact Clebsch–Gordan values with memoization
//		• Bispectrum invariants: third-order rotation-invariant descriptors
//		• Order parameters: neighbor averages & Steinhardt q_l
//
// ✨ Why choose sphectra?
//
//   - Deterministic by design – identical inputs give bit-identical output
//   - Explicit failure modes – sentinel errors, errors.Is friendly
//   - No I/O, no network, no global state – pure in-memory computation
//   - Built on gonum – dense matrices, quaternions, spatial vectors
//
// Everything is organized under six subpackages:
//
//	box/        — periodic simulation boxes and minimum-image wrapping
//	locality/   — neighbor lists: cutoff and k-nearest resolution
//	sph/        — complex spherical harmonics Y_lm and column layout
//	wigner/     — exact Clebsch–Gordan coefficients and the memo cache
//	bispectrum/ — per-particle bispectrum invariants (the main entry point)
//	order/      — neighbor-averaged harmonics & Steinhardt order parameters
//
// Data flows box → locality → sph → bispectrum; wigner supplies the
// coupling scalars the bispectrum triple products are weighted with.
//
//	go get github.com/sphectra/sphectra
package sphectra
