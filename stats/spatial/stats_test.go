package spatial

import (
	"errors"
	"math"
	"testing"
)

func TestStatsAcrossRows(t *testing.T) {
	values := [][]float64{
		{1, 2, 3},
		{5, 4, 3},
		{3, 6, 3},
	}

	sum, err := Stats(values, AcrossRows)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}

	wantMin := []float64{1, 2, 3}
	wantMean := []float64{3, 4, 3}
	wantMax := []float64{5, 6, 3}

	for i := range wantMin {
		if sum.Min[i] != wantMin[i] || sum.Mean[i] != wantMean[i] || sum.Max[i] != wantMax[i] {
			t.Fatalf("column %d: got (%g, %g, %g), want (%g, %g, %g)",
				i, sum.Min[i], sum.Mean[i], sum.Max[i], wantMin[i], wantMean[i], wantMax[i])
		}
	}
}

func TestStatsAcrossColumns(t *testing.T) {
	values := [][]float64{
		{1, 2, 3},
		{40, 50, 60},
	}

	sum, err := Stats(values, AcrossColumns)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}

	if len(sum.Mean) != 2 {
		t.Fatalf("summary length: got %d, want one value per row", len(sum.Mean))
	}
	if sum.Min[0] != 1 || sum.Mean[0] != 2 || sum.Max[0] != 3 {
		t.Fatalf("row 0: got (%g, %g, %g)", sum.Min[0], sum.Mean[0], sum.Max[0])
	}
	if sum.Min[1] != 40 || sum.Mean[1] != 50 || sum.Max[1] != 60 {
		t.Fatalf("row 1: got (%g, %g, %g)", sum.Min[1], sum.Mean[1], sum.Max[1])
	}
}

func TestStatsBound(t *testing.T) {
	values := [][]float64{
		{-3.5, 0.25, 17, 2},
		{12, -0.5, 3, 2},
		{0.75, 8, -2, 2},
		{6, 1.5, 4, 2},
	}

	for _, axis := range []Axis{AcrossRows, AcrossColumns} {
		sum, err := Stats(values, axis)
		if err != nil {
			t.Fatalf("Stats(axis=%d): %v", axis, err)
		}

		for i := range sum.Mean {
			if sum.Min[i] > sum.Mean[i] || sum.Mean[i] > sum.Max[i] {
				t.Fatalf("axis %d position %d: min <= mean <= max violated: %g %g %g",
					axis, i, sum.Min[i], sum.Mean[i], sum.Max[i])
			}
		}
	}
}

func TestStatsExcludesInf(t *testing.T) {
	inf := math.Inf(1)
	values := [][]float64{
		{inf, 10},
		{4, 20},
		{6, 30},
	}

	sum, err := Stats(values, AcrossRows)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}

	// Column 0: the +Inf entry is excluded, statistics come from {4, 6}.
	if sum.Min[0] != 4 || sum.Mean[0] != 5 || sum.Max[0] != 6 {
		t.Fatalf("column 0: got (%g, %g, %g), want (4, 5, 6)", sum.Min[0], sum.Mean[0], sum.Max[0])
	}

	if sum.Mean[1] != 20 {
		t.Fatalf("column 1 mean: got %g, want 20", sum.Mean[1])
	}
}

func TestStatsAllInfColumn(t *testing.T) {
	inf := math.Inf(1)
	values := [][]float64{
		{inf, 1},
		{inf, 2},
	}

	sum, err := Stats(values, AcrossRows)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}

	if !math.IsInf(sum.Min[0], 1) || !math.IsInf(sum.Mean[0], 1) || !math.IsInf(sum.Max[0], 1) {
		t.Fatalf("all-Inf column must report +Inf, got (%g, %g, %g)", sum.Min[0], sum.Mean[0], sum.Max[0])
	}
}

func TestStatsErrors(t *testing.T) {
	if _, err := Stats(nil, AcrossRows); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty matrix, got %v", err)
	}

	if _, err := Stats([][]float64{{}}, AcrossRows); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty rows, got %v", err)
	}

	ragged := [][]float64{{1, 2}, {3}}
	if _, err := Stats(ragged, AcrossRows); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for ragged matrix, got %v", err)
	}

	if _, err := Stats([][]float64{{1}}, Axis(99)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown axis, got %v", err)
	}
}
