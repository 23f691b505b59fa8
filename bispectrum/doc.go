// Package bispectrum computes per-particle bispectrum invariants:
// rotation-invariant third-order descriptors of local particle
// neighborhoods, built from Clebsch-Gordan-weighted triple products of
// neighbor-averaged spherical harmonics.
//
// Pipeline (one synchronous pass, no suspension points):
//  1. Resolve the neighbor list (locality.Source) and compute the
//     minimum-image bond vector of every (center, neighbor) row, then
//     its polar/azimuthal angles.
//  2. Evaluate raw spherical harmonics for every bond, degrees 0..lmax,
//     all orders (negative m included).
//  3. Reduce bond harmonics to one averaged value per particle per
//     (l, m) by segment-wise mean; NaNs (isolated particles, degenerate
//     bonds) are replaced with exact zero.
//  4. For every degree triple (l1, l2, l) and every order m in [-l, l],
//     sum over m1 the coupling coefficient times the conjugated averaged
//     harmonics at (l1, m1) and (l2, m-m1); zero coefficients are
//     skipped and do not mark the triple as contributing. Each surviving
//     m-term is multiplied by the non-conjugated harmonic at (l, m) and
//     accumulated per particle.
//  5. Triples with no nonzero coupling anywhere are dropped; the rest
//     are sorted by (l1, l2, l) and packed as adjacent (real, imag)
//     column pairs of a dense N x 2T matrix.
//
// Triples are pre-enumerated with the triangle filter
// |l1-l2| <= l <= l1+l2; the filtered-out triples can never contribute,
// so the output is identical to scanning the full [0,lmax]³ cube.
//
// Determinism: for fixed inputs two calls produce bit-identical
// matrices. The only shared mutable state is the coupling cache, whose
// entries are pure functions of their keys.
//
// Complexity: O(lmax³) triples, O(lmax⁵) cache keys, O(N·lmax⁵)
// accumulation work; roughly (lmax+1)³ invariant columns are produced.
package bispectrum
