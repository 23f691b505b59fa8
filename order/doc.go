// Package order computes neighbor-averaged spherical harmonics and
// classic rotation-invariant order parameters of particle environments.
//
// Entry points:
//   - NeighborAverage - per-particle mean of bond harmonics over the n
//     nearest neighbors, for every environment size n in
//     [NeighMin, NeighMax], blocks stacked column-wise.
//     AbsNeighborAverage returns the element moduli.
//   - SystemAverage / AbsSystemAverage - the particle-mean of the above,
//     one value per harmonic column.
//   - SteinhardtQ - the Steinhardt order parameters q_l for even degrees
//     2, 4, ..., lmax: q_l = sqrt(4π/(2l+1) · Σ_m |<Y_lm>|²).
//
// Reference frames: bond vectors can be evaluated in the global frame,
// rotated into each particle's own orientation (quaternions), or rotated
// into the principal-axis frame of the neighborhood's inertia tensor,
// which makes the averaged harmonics insensitive to global rotations.
// Eigenvector signs are fixed deterministically, so identical inputs
// give identical frames.
//
// Noise resampling: with NoiseSamples > 0 the computation is repeated on
// positions perturbed by i.i.d. Gaussian noise and averaged. The noise
// source is explicit (no hidden global randomness); omitting it is an
// error rather than a silent nondeterminism.
package order
