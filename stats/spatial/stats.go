// Package spatial reduces a matrix of per-bin, per-point values to
// summary statistics along a selectable axis.
//
// The intended input is a shielding-effectiveness matrix with one row
// per spatial sample point and one column per frequency bin, reduced
// across points to a min/mean/max curve over frequency.
package spatial

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrInvalidInput indicates an empty or ragged input matrix.
var ErrInvalidInput = errors.New("spatial: invalid input")

// Axis selects the reduction direction.
type Axis int

const (
	// AcrossRows reduces over the row axis, producing one statistic per
	// column.
	AcrossRows Axis = iota
	// AcrossColumns reduces over the column axis, producing one
	// statistic per row.
	AcrossColumns
)

// Summary holds per-position minimum, mean and maximum along the kept
// axis. Min[i] <= Mean[i] <= Max[i] holds wherever the values are
// finite.
type Summary struct {
	Min  []float64
	Mean []float64
	Max  []float64
}

// Stats reduces values along the given axis.
//
// +Inf entries are excluded from all three statistics so that a single
// perfectly-shielded sample point cannot pin the mean and maximum of a
// bin at infinity. A position whose entries are all +Inf reports +Inf
// for minimum, mean and maximum.
//
// ErrInvalidInput is returned for an empty matrix, ragged rows, or an
// unknown axis.
func Stats(values [][]float64, axis Axis) (Summary, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return Summary{}, fmt.Errorf("%w: empty matrix", ErrInvalidInput)
	}

	cols := len(values[0])
	for r, row := range values {
		if len(row) != cols {
			return Summary{}, fmt.Errorf("%w: row %d has %d columns, row 0 has %d", ErrInvalidInput, r, len(row), cols)
		}
	}

	switch axis {
	case AcrossRows:
		return acrossRows(values), nil
	case AcrossColumns:
		return acrossColumns(values), nil
	default:
		return Summary{}, fmt.Errorf("%w: unknown axis %d", ErrInvalidInput, axis)
	}
}

func acrossRows(values [][]float64) Summary {
	rows := len(values)
	cols := len(values[0])
	sum := newSummary(cols)

	scratch := make([]float64, 0, rows)
	for c := 0; c < cols; c++ {
		scratch = scratch[:0]
		for r := 0; r < rows; r++ {
			if v := values[r][c]; !math.IsInf(v, 1) {
				scratch = append(scratch, v)
			}
		}
		sum.set(c, scratch)
	}

	return sum
}

func acrossColumns(values [][]float64) Summary {
	rows := len(values)
	cols := len(values[0])
	sum := newSummary(rows)

	scratch := make([]float64, 0, cols)
	for r := 0; r < rows; r++ {
		scratch = scratch[:0]
		for _, v := range values[r] {
			if !math.IsInf(v, 1) {
				scratch = append(scratch, v)
			}
		}
		sum.set(r, scratch)
	}

	return sum
}

func newSummary(n int) Summary {
	return Summary{
		Min:  make([]float64, n),
		Mean: make([]float64, n),
		Max:  make([]float64, n),
	}
}

// set fills position i from the finite values remaining after +Inf
// exclusion. An empty slice means every value was +Inf.
func (s Summary) set(i int, finite []float64) {
	if len(finite) == 0 {
		inf := math.Inf(1)
		s.Min[i] = inf
		s.Mean[i] = inf
		s.Max[i] = inf
		return
	}

	s.Min[i] = floats.Min(finite)
	s.Mean[i] = stat.Mean(finite, nil)
	s.Max[i] = floats.Max(finite)
}
