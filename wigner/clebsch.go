// SPDX-License-Identifier: MIT

package wigner

import "math/big"

// Evaluator computes a coupling coefficient from its six-integer key.
// Coefficient is the canonical implementation; tests may wrap it to
// observe evaluation counts.
type Evaluator func(l1, l2, l3, m1, m2, m3 int) float64

// Coefficient returns the exact Clebsch-Gordan coefficient
// <l1 m1 l2 m2 | l3 m3> as a float64, and 0 for any key outside the
// selection rules. It never fails: forbidden or nonsensical keys
// (including negative degrees) are simply zero, mirroring the closed
// form itself.
func Coefficient(l1, l2, l3, m1, m2, m3 int) float64 {
	if l1 < 0 || l2 < 0 || l3 < 0 {
		return 0
	}
	if m1+m2 != m3 {
		return 0
	}
	if l3 < abs(l1-l2) || l3 > l1+l2 {
		return 0
	}
	if abs(m1) > l1 || abs(m2) > l2 || abs(m3) > l3 {
		return 0
	}

	// Racah's closed form, split as value = S · sqrt(A) with S and A
	// exact rationals.
	//
	// A = (2l3+1) · (l1+l2-l3)! (l1-l2+l3)! (-l1+l2+l3)! / (l1+l2+l3+1)!
	//     · (l1+m1)! (l1-m1)! (l2+m2)! (l2-m2)! (l3+m3)! (l3-m3)!
	a := new(big.Rat).SetInt64(int64(2*l3 + 1))
	a.Mul(a, factRat(l1+l2-l3))
	a.Mul(a, factRat(l1-l2+l3))
	a.Mul(a, factRat(-l1+l2+l3))
	a.Quo(a, factRat(l1+l2+l3+1))
	a.Mul(a, factRat(l1+m1))
	a.Mul(a, factRat(l1-m1))
	a.Mul(a, factRat(l2+m2))
	a.Mul(a, factRat(l2-m2))
	a.Mul(a, factRat(l3+m3))
	a.Mul(a, factRat(l3-m3))

	// S = sum_k (-1)^k / (k! (l1+l2-l3-k)! (l1-m1-k)! (l2+m2-k)!
	//                     (l3-l2+m1+k)! (l3-l1-m2+k)!)
	kmin := max3(0, l2-l3-m1, l1-l3+m2)
	kmax := min3(l1+l2-l3, l1-m1, l2+m2)
	s := new(big.Rat)
	for k := kmin; k <= kmax; k++ {
		den := new(big.Rat).Set(factRat(k))
		den.Mul(den, factRat(l1+l2-l3-k))
		den.Mul(den, factRat(l1-m1-k))
		den.Mul(den, factRat(l2+m2-k))
		den.Mul(den, factRat(l3-l2+m1+k))
		den.Mul(den, factRat(l3-l1-m2+k))
		term := new(big.Rat).Inv(den)
		if k%2 != 0 {
			term.Neg(term)
		}
		s.Add(s, term)
	}
	if s.Sign() == 0 {
		return 0
	}

	const prec = 128
	root := new(big.Float).SetPrec(prec)
	root.Sqrt(new(big.Float).SetPrec(prec).SetRat(a))
	v := new(big.Float).SetPrec(prec).SetRat(s)
	v.Mul(v, root)
	out, _ := v.Float64()
	return out
}

// factRat returns n! as an exact rational. n is always small here
// (bounded by l1+l2+l3+1), so MulRange is cheap.
func factRat(n int) *big.Rat {
	if n <= 1 {
		return new(big.Rat).SetInt64(1)
	}
	return new(big.Rat).SetInt(new(big.Int).MulRange(1, int64(n)))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func max3(a, b, c int) int {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
