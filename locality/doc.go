// Package locality resolves particle neighborhoods into flat,
// segment-indexed neighbor lists.
//
// 🚀 What is a neighbor list?
//
//	A List is a relation over (center, neighbor) index pairs stored as
//	two row-aligned arrays I and J, grouped by ascending center index.
//	Segments[i] is the first row of center i's block and Counts[i] is
//	the number of neighbors of center i, so the blocks partition the
//	row range exactly - including empty blocks for isolated particles.
//
// Resolution strategies (all implement Source):
//   - Cutoff(r): every pair closer than r under the minimum-image
//     convention, found with a periodic cell list (falls back to an
//     exhaustive pair scan when the box is too small for 3 cells per
//     axis).
//   - KNearest(k): the k nearest neighbors of every center, found by
//     growing a candidate radius from Options.RMaxGuess until every
//     center has k candidates. The guess only affects speed, never the
//     result.
//   - A prebuilt *List resolves to itself, so callers may pass a list
//     they already own through any API that takes a Source.
//
// Determinism: within a segment neighbors are ordered by distance and
// ties are broken by neighbor index, so identical inputs always produce
// identical lists.
//
// Complexity: Cutoff is O(N·ρ) with ρ the mean cell occupancy
// (O(N²) in the exhaustive fallback); KNearest adds O(c·log c) per
// center to sort c candidates.
package locality
