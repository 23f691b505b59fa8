// Package wigner computes angular-momentum coupling (Clebsch-Gordan)
// coefficients exactly and memoizes them.
//
// The coefficient <l1 m1 l2 m2 | l3 m3> governs how two angular momenta
// (l1, l2) combine into a third (l3). It is a pure function of six small
// integers, zero outside the selection rules
//
//	m1 + m2 = m3  and  |l1 - l2| <= l3 <= l1 + l2  and  |m| <= l,
//
// and is evaluated here through the Racah closed form in exact rational
// arithmetic (math/big): the radical part and the alternating sum are
// kept as big.Rat until a single 128-bit square root and product reduce
// them to a float64. Forbidden keys return 0 rather than erroring.
//
// Cache memoizes Coefficient per distinct six-integer key for the
// lifetime of the cache, with no eviction: the key space exercised by
// realistic degree bounds (lmax around 10) is a few thousand entries and
// every entry is reused across particles and calls. The underlying
// Evaluator is injectable so tests can count evaluations. Cache is safe
// for concurrent use (read-mostly RWMutex); a populate race recomputes
// the same deterministic value, which is wasteful but never wrong.
package wigner
