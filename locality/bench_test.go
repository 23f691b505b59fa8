package locality_test

import (
	"testing"

	"github.com/sphectra/sphectra/box"
	"github.com/sphectra/sphectra/locality"
)

// benchmarkResolve measures one resolver over an n³ jittered lattice.
func benchmarkResolve(b *testing.B, src locality.Source, n int) {
	bx, err := box.NewCubic(float64(2 * n))
	if err != nil {
		b.Fatalf("box: %v", err)
	}
	ps := latticePositions(n, float64(2*n))
	opts := locality.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := src.Resolve(bx, ps, opts); err != nil {
			b.Fatalf("Resolve failed: %v", err)
		}
	}
}

// BenchmarkCutoff_Small: 125 particles, cell-list regime.
func BenchmarkCutoff_Small(b *testing.B) { benchmarkResolve(b, locality.Cutoff(2.5), 5) }

// BenchmarkCutoff_Medium: 1000 particles, cell-list regime.
func BenchmarkCutoff_Medium(b *testing.B) { benchmarkResolve(b, locality.Cutoff(2.5), 10) }

// BenchmarkKNearest_Small: 125 particles, k = 12.
func BenchmarkKNearest_Small(b *testing.B) { benchmarkResolve(b, locality.KNearest(12), 5) }

// BenchmarkKNearest_Medium: 1000 particles, k = 12.
func BenchmarkKNearest_Medium(b *testing.B) { benchmarkResolve(b, locality.KNearest(12), 10) }
