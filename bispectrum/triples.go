// SPDX-License-Identifier: MIT

package bispectrum

// Triple is one ordered degree triple (L1, L2, L) indexing a candidate
// bispectrum invariant.
type Triple struct {
	L1, L2, L int
}

// Triples enumerates the candidate degree triples for a maximum degree:
// the full [0, lmax]³ cube filtered by the triangle inequality
// |l1-l2| <= l <= l1+l2. The filtered-out triples have identically zero
// coupling coefficients for every order, so they can never contribute
// to the output. The enumeration order is ascending lexicographic in
// (l1, l2, l), which is also the packing order of surviving columns.
//
// lmax < 0 yields an empty slice.
func Triples(lmax int) []Triple {
	var out []Triple
	for l1 := 0; l1 <= lmax; l1++ {
		for l2 := 0; l2 <= lmax; l2++ {
			lo := l1 - l2
			if lo < 0 {
				lo = -lo
			}
			hi := l1 + l2
			if hi > lmax {
				hi = lmax
			}
			for l := lo; l <= hi; l++ {
				out = append(out, Triple{L1: l1, L2: l2, L: l})
			}
		}
	}
	return out
}
