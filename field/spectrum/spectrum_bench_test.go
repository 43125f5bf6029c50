package spectrum_test

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-emc/field/spectrum"
	"github.com/cwbudde/algo-emc/internal/testutil"
)

func BenchmarkFromSeries(b *testing.B) {
	// Mixed power-of-two and arbitrary lengths to exercise both
	// backends.
	sizes := []int{1000, 1024, 10000, 16384}

	for _, n := range sizes {
		ts := testutil.SineSeries(50, 1e-4, n)

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := spectrum.FromSeries(ts); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
