package series

import (
	"fmt"
	"sort"
)

// Resample interpolates every channel of ts onto the strictly increasing
// grid targetT using piecewise-linear interpolation.
//
// Target times outside the source range clamp to the nearest endpoint
// amplitude. Target times that coincide with a source timestamp reproduce
// the source sample exactly, so resampling a series onto its own grid is
// an identity operation.
func Resample(ts TimeSeries, targetT []float64) (TimeSeries, error) {
	if err := ts.Validate(); err != nil {
		return TimeSeries{}, err
	}

	if ts.Len() < 2 {
		return TimeSeries{}, fmt.Errorf("%w: resampling needs at least 2 source samples", ErrInvalidInput)
	}

	if len(targetT) == 0 {
		return TimeSeries{}, fmt.Errorf("%w: empty target grid", ErrInvalidInput)
	}

	for i := 1; i < len(targetT); i++ {
		if !(targetT[i] > targetT[i-1]) {
			return TimeSeries{}, fmt.Errorf("%w: target grid must be strictly increasing at index %d", ErrInvalidInput, i)
		}
	}

	out := TimeSeries{
		T:        append([]float64(nil), targetT...),
		Channels: make([][]float64, ts.NumChannels()),
	}

	for c, ch := range ts.Channels {
		out.Channels[c] = interpolate(ts.T, ch, targetT)
	}

	return out, nil
}

// interpolate evaluates the piecewise-linear function through (x, y) at
// every query point. x must be strictly increasing.
func interpolate(x, y, query []float64) []float64 {
	out := make([]float64, len(query))
	last := len(x) - 1

	for i, q := range query {
		j := sort.SearchFloat64s(x, q)

		switch {
		case j <= last && x[j] == q:
			// Exact grid hit: reproduce the sample bitwise.
			out[i] = y[j]
		case j == 0:
			out[i] = y[0]
		case j > last:
			out[i] = y[last]
		default:
			x0, x1 := x[j-1], x[j]
			t := (q - x0) / (x1 - x0)
			out[i] = y[j-1] + t*(y[j]-y[j-1])
		}
	}

	return out
}
