package series

import "fmt"

// PadToTime extends a series so its last timestamp reaches at least
// targetEnd.
//
// If the series already extends to targetEnd it is returned unchanged.
// Otherwise samples are appended at the series' existing step size, with
// each channel holding its terminal amplitude, until the grid covers
// targetEnd. The input is never mutated.
func PadToTime(ts TimeSeries, targetEnd float64) (TimeSeries, error) {
	if err := ts.Validate(); err != nil {
		return TimeSeries{}, err
	}

	if ts.Len() < 2 {
		return TimeSeries{}, fmt.Errorf("%w: padding needs at least 2 samples to define a step size", ErrInvalidInput)
	}

	if targetEnd < ts.T[0] {
		return TimeSeries{}, fmt.Errorf("%w: target end time %g precedes series start %g", ErrInvalidInput, targetEnd, ts.T[0])
	}

	if ts.EndTime() >= targetEnd {
		return ts, nil
	}

	dt := ts.T[1] - ts.T[0]

	n := ts.Len()
	extra := 0
	for last := ts.T[n-1]; last < targetEnd; last += dt {
		extra++
	}

	out := TimeSeries{
		T:        make([]float64, n, n+extra),
		Channels: make([][]float64, ts.NumChannels()),
	}
	copy(out.T, ts.T)
	for i := 1; i <= extra; i++ {
		out.T = append(out.T, ts.T[n-1]+float64(i)*dt)
	}

	for c, ch := range ts.Channels {
		padded := make([]float64, n, n+extra)
		copy(padded, ch)
		hold := ch[n-1]
		for i := 0; i < extra; i++ {
			padded = append(padded, hold)
		}
		out.Channels[c] = padded
	}

	return out, nil
}
