// SPDX-License-Identifier: MIT

// Package locality: the Cutoff and KNearest resolvers plus the shared
// periodic cell-list candidate search they are built on.
package locality

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/sphectra/sphectra/box"
)

// Cutoff resolves every minimum-image pair closer than the cutoff value.
type Cutoff float64

// KNearest resolves the k nearest minimum-image neighbors of every center.
type KNearest int

// candidate is one potential neighbor of a center during resolution.
type candidate struct {
	j  int
	d2 float64
}

// Resolve implements Source for a fixed distance cutoff.
// Complexity: O(N·ρ) with a cell list, O(N²) in the exhaustive fallback.
func (c Cutoff) Resolve(b *box.Box, positions []r3.Vec, opts Options) (*List, error) {
	r := float64(c)
	if !(r > 0) || math.IsInf(r, 0) {
		return nil, ErrNonPositiveCutoff
	}
	if b == nil {
		return nil, ErrNilBox
	}
	if len(positions) == 0 {
		return nil, ErrNoPositions
	}
	cands := gather(b, positions, r, opts.IncludeSelf)
	return flatten(cands), nil
}

// Resolve implements Source for a fixed neighbor count. The candidate
// radius starts at opts.RMaxGuess and doubles until every center has at
// least k candidates; the guess changes the number of rounds, never the
// resolved list.
func (k KNearest) Resolve(b *box.Box, positions []r3.Vec, opts Options) (*List, error) {
	n := len(positions)
	if k <= 0 {
		return nil, ErrNonPositiveCount
	}
	if b == nil {
		return nil, ErrNilBox
	}
	if n == 0 {
		return nil, ErrNoPositions
	}
	avail := n - 1
	if opts.IncludeSelf {
		avail = n
	}
	if int(k) > avail {
		return nil, ErrTooFewParticles
	}

	r := opts.RMaxGuess
	if !(r > 0) || math.IsInf(r, 0) {
		r = DefaultOptions().RMaxGuess
	}
	cover := coverRadius(b)
	for {
		cands := gather(b, positions, r, opts.IncludeSelf)
		if enough(cands, int(k)) {
			for i := range cands {
				cands[i] = cands[i][:k]
			}
			return flatten(cands), nil
		}
		if r >= cover {
			// r already sees every minimum-image pair, and k <= avail
			// was checked above, so this cannot happen. Guard anyway to
			// avoid spinning.
			return flatten(cands), nil
		}
		r *= 2
	}
}

// coverRadius returns a radius no minimum-image distance can exceed:
// half the sum of the edge vector norms. A candidate search at this
// radius is guaranteed to see every pair.
func coverRadius(b *box.Box) float64 {
	xy, xz, yz := b.Tilt()
	a1 := b.Lx()
	a2 := math.Hypot(xy*b.Ly(), b.Ly())
	a3 := math.Sqrt(xz*b.Lz()*xz*b.Lz() + yz*b.Lz()*yz*b.Lz() + b.Lz()*b.Lz())
	return (a1 + a2 + a3) / 2
}

// enough reports whether every center has at least k sorted candidates.
func enough(cands [][]candidate, k int) bool {
	for _, c := range cands {
		if len(c) < k {
			return false
		}
	}
	return true
}

// exhaustive reports whether radius r forces gather into the full pair scan.
func exhaustive(b *box.Box, r float64) bool {
	wx, wy, wz := b.PerpendicularWidths()
	return int(wx/r) < 3 || int(wy/r) < 3 || int(wz/r) < 3
}

// gather collects, for every center, the candidates within radius r,
// sorted by (distance, index). A periodic cell list is used whenever at
// least 3 cells of width >= r fit along every box axis; otherwise every
// pair is scanned, which is always correct.
func gather(b *box.Box, positions []r3.Vec, r float64, includeSelf bool) [][]candidate {
	n := len(positions)
	cands := make([][]candidate, n)
	r2 := r * r

	if exhaustive(b, r) {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if j == i && !includeSelf {
					continue
				}
				d := b.Wrap(r3.Sub(positions[j], positions[i]))
				if d2 := r3.Norm2(d); d2 <= r2 {
					cands[i] = append(cands[i], candidate{j: j, d2: d2})
				}
			}
		}
		sortCandidates(cands)
		return cands
	}

	wx, wy, wz := b.PerpendicularWidths()
	ncx, ncy, ncz := int(wx/r), int(wy/r), int(wz/r)

	// Bin particles by wrapped fractional coordinate.
	cells := make(map[[3]int][]int, n)
	bins := make([][3]int, n)
	for i, p := range positions {
		f := b.Fractional(p)
		cx := bin(f.X, ncx)
		cy := bin(f.Y, ncy)
		cz := bin(f.Z, ncz)
		bins[i] = [3]int{cx, cy, cz}
		cells[bins[i]] = append(cells[bins[i]], i)
	}

	for i := 0; i < n; i++ {
		c := bins[i]
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				for dz := -1; dz <= 1; dz++ {
					key := [3]int{
						mod(c[0]+dx, ncx),
						mod(c[1]+dy, ncy),
						mod(c[2]+dz, ncz),
					}
					for _, j := range cells[key] {
						if j == i && !includeSelf {
							continue
						}
						d := b.Wrap(r3.Sub(positions[j], positions[i]))
						if d2 := r3.Norm2(d); d2 <= r2 {
							cands[i] = append(cands[i], candidate{j: j, d2: d2})
						}
					}
				}
			}
		}
	}
	sortCandidates(cands)
	return cands
}

// sortCandidates orders every center's block by (distance, index) so
// identical inputs always yield identical lists.
func sortCandidates(cands [][]candidate) {
	for i := range cands {
		c := cands[i]
		sort.Slice(c, func(a, b int) bool {
			if c[a].d2 != c[b].d2 {
				return c[a].d2 < c[b].d2
			}
			return c[a].j < c[b].j
		})
	}
}

// flatten packs per-center candidate blocks into a List, computing the
// segment offsets and counts.
func flatten(cands [][]candidate) *List {
	n := len(cands)
	total := 0
	for _, c := range cands {
		total += len(c)
	}
	l := &List{
		I:        make([]int, 0, total),
		J:        make([]int, 0, total),
		Segments: make([]int, n),
		Counts:   make([]int, n),
	}
	for i, c := range cands {
		l.Segments[i] = len(l.I)
		l.Counts[i] = len(c)
		for _, cd := range c {
			l.I = append(l.I, i)
			l.J = append(l.J, cd.j)
		}
	}
	return l
}

// bin maps a fractional coordinate onto [0, nc) with wrap-around.
func bin(f float64, nc int) int {
	f -= math.Floor(f)
	b := int(f * float64(nc))
	if b >= nc {
		b = nc - 1
	}
	return b
}

// mod is the non-negative remainder of a by n.
func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}
