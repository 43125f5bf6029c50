// Package testutil provides shared helpers for package tests.
package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-emc/field/series"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireSliceEqual fails t if got and want differ in length or in any
// element bitwise.
func RequireSliceEqual(t *testing.T, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// UniformGrid returns n timestamps starting at start with spacing step.
func UniformGrid(start, step float64, n int) []float64 {
	t := make([]float64, n)
	for i := range t {
		t[i] = start + float64(i)*step
	}
	return t
}

// Sine samples a sine of the given frequency and unit amplitude on t.
func Sine(t []float64, freqHz float64) []float64 {
	out := make([]float64, len(t))
	for i, ti := range t {
		out[i] = math.Sin(2 * math.Pi * freqHz * ti)
	}
	return out
}

// SineSeries returns a single-channel TimeSeries holding a unit sine on
// a uniform grid.
func SineSeries(freqHz, step float64, n int) series.TimeSeries {
	t := UniformGrid(0, step, n)
	return series.New(t, Sine(t, freqHz))
}
