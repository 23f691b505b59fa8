// SPDX-License-Identifier: MIT

// Package locality: neighbor-list data model and the Source contract.
package locality

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/sphectra/sphectra/box"
)

// List is a flat neighbor list: row r states that J[r] is a neighbor of
// center I[r]. Rows are grouped by ascending center index; within a
// block rows are ordered by (distance, neighbor index).
//
// Invariants (guaranteed by the resolvers in this package, assumed and
// never re-validated by consumers):
//   - len(I) == len(J)
//   - len(Segments) == len(Counts) == number of particles
//   - Segments[i] is the first row of center i's block; blocks are
//     contiguous and partition [0, len(I)) exactly
//   - Counts[i] == the size of block i (0 for isolated particles)
type List struct {
	I, J     []int
	Segments []int
	Counts   []int
}

// Len returns the number of (center, neighbor) rows.
func (l *List) Len() int { return len(l.I) }

// Particles returns the number of centers the list was built over.
func (l *List) Particles() int { return len(l.Segments) }

// Segment returns the half-open row range [lo, hi) of center i's block.
func (l *List) Segment(i int) (lo, hi int) {
	lo = l.Segments[i]
	if i+1 < len(l.Segments) {
		return lo, l.Segments[i+1]
	}
	return lo, len(l.I)
}

// Resolve lets a prebuilt List satisfy Source: it returns the receiver
// untouched. Well-formedness is the builder's contract, not re-checked.
func (l *List) Resolve(_ *box.Box, _ []r3.Vec, _ Options) (*List, error) {
	return l, nil
}

// Source resolves a box and particle positions into a neighbor List.
// Implementations in this package: Cutoff, KNearest, and *List itself.
type Source interface {
	Resolve(b *box.Box, positions []r3.Vec, opts Options) (*List, error)
}

// Options tunes neighbor resolution.
//
// Fields:
//   - RMaxGuess - initial candidate radius for KNearest. Affects only
//     the number of growth rounds, never the resolved list.
//   - IncludeSelf - keep (i, i) self pairs. Off by default.
type Options struct {
	RMaxGuess   float64
	IncludeSelf bool
}

// DefaultOptions returns the documented defaults: RMaxGuess = 2.0 and
// self pairs excluded.
func DefaultOptions() Options {
	return Options{RMaxGuess: 2.0, IncludeSelf: false}
}
