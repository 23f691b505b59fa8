// Package sph evaluates complex spherical harmonics Y_lm over arrays of
// spherical angles.
//
// Conventions:
//   - phi is the polar angle (angle from +z, acos(z/|r|)), theta is the
//     azimuthal angle (atan2(y, x)).
//   - Orthonormalized harmonics with the Condon-Shortley phase:
//     Y_lm(phi, theta) = Pbar_l^m(cos phi) · e^{i·m·theta}, and
//     Y_{l,-m} = (-1)^m · conj(Y_lm).
//   - Column layout: LMs enumerates (l, m) with l ascending and m from
//     -l to l (or 0 to l when negative orders are disabled). Index gives
//     the closed-form column of (l, m) in the negative-order layout.
//
// Numerics: Pbar is the fully normalized associated Legendre function,
// computed by the standard stable three-term recurrence directly in
// normalized form, so no factorial overflow occurs at any degree.
// NaN angles (e.g. from zero-length bond vectors) propagate to NaN
// harmonics; downstream reductions decide how to mask them.
//
// Complexity: O(bonds · (lmax+1)²) time, one output matrix allocation.
package sph
