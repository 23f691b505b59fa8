package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/sphectra/sphectra/box"
	"github.com/sphectra/sphectra/locality"
	"github.com/sphectra/sphectra/order"
)

// simpleCubic builds an n³ periodic lattice with unit spacing s.
func simpleCubic(n int, s float64) (*box.Box, []r3.Vec) {
	b, _ := box.NewCubic(float64(n) * s)
	var ps []r3.Vec
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for z := 0; z < n; z++ {
				ps = append(ps, r3.Vec{
					X: float64(x) * s, Y: float64(y) * s, Z: float64(z) * s,
				})
			}
		}
	}
	return b, ps
}

// TestSteinhardtQ_SimpleCubic pins the classic reference values of the
// simple-cubic environment with 6 neighbors: q2 = 0, q4 = sqrt(7/12),
// q6 = sqrt(1/8).
func TestSteinhardtQ_SimpleCubic(t *testing.T) {
	b, ps := simpleCubic(3, 2)

	q, err := order.SteinhardtQ(b, ps, locality.KNearest(6), 6, 2.5)
	require.NoError(t, err)

	rows, cols := q.Dims()
	require.Equal(t, len(ps), rows)
	require.Equal(t, 3, cols, "columns for l = 2, 4, 6")

	for i := 0; i < rows; i++ {
		assert.InDelta(t, 0, q.At(i, 0), 1e-10, "q2 of simple cubic")
		assert.InDelta(t, 0.76376261582597, q.At(i, 1), 1e-10, "q4 of simple cubic")
		assert.InDelta(t, 0.35355339059327, q.At(i, 2), 1e-10, "q6 of simple cubic")
	}
}

// TestSteinhardtQ_RotationInvariance: q_l must not move under a rigid
// rotation of an asymmetric cluster.
func TestSteinhardtQ_RotationInvariance(t *testing.T) {
	b, ps := cluster()
	moved, _ := rotated(ps, 0.9, r3.Vec{X: -1, Y: 2, Z: 1})

	base, err := order.SteinhardtQ(b, ps, locality.KNearest(4), 6, 2.0)
	require.NoError(t, err)
	rot, err := order.SteinhardtQ(b, moved, locality.KNearest(4), 6, 2.0)
	require.NoError(t, err)

	rows, cols := base.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			assert.InDelta(t, base.At(i, j), rot.At(i, j), 1e-10)
		}
	}
}

// TestSteinhardtQ_ZeroNeighborParticle: an isolated particle reports
// q_l = 0, never NaN.
func TestSteinhardtQ_ZeroNeighborParticle(t *testing.T) {
	b, err := box.NewCubic(10)
	require.NoError(t, err)
	ps := []r3.Vec{{X: 1, Y: 1, Z: 1}, {X: 2, Y: 1, Z: 1}, {X: 7, Y: 7, Z: 7}}
	nl := &locality.List{
		I:        []int{0, 1},
		J:        []int{1, 0},
		Segments: []int{0, 1, 2},
		Counts:   []int{1, 1, 0},
	}

	q, err := order.SteinhardtQ(b, ps, nl, 4, 2.0)
	require.NoError(t, err)
	assert.Zero(t, q.At(2, 0))
	assert.Zero(t, q.At(2, 1))
}

// TestSteinhardtQ_Validation exercises the sentinel surface.
func TestSteinhardtQ_Validation(t *testing.T) {
	b, ps := cluster()

	_, err := order.SteinhardtQ(nil, ps, locality.KNearest(4), 6, 2.0)
	assert.ErrorIs(t, err, order.ErrNilBox)

	_, err = order.SteinhardtQ(b, nil, locality.KNearest(4), 6, 2.0)
	assert.ErrorIs(t, err, order.ErrNoPositions)

	_, err = order.SteinhardtQ(b, ps, nil, 6, 2.0)
	assert.ErrorIs(t, err, order.ErrNilSource)

	_, err = order.SteinhardtQ(b, ps, locality.KNearest(4), 1, 2.0)
	assert.ErrorIs(t, err, order.ErrDegreeTooLow)
}
