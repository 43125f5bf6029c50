package series

import (
	"errors"
	"fmt"
)

// ErrInvalidInput indicates malformed or insufficient time-domain data.
var ErrInvalidInput = errors.New("series: invalid input")

// TimeSeries holds sampled time-domain data on a shared timestamp grid.
//
// T is in seconds and must be strictly increasing. Channels holds one
// amplitude slice per spatial sample point; every channel must have
// exactly len(T) samples. A reference waveform has a single channel.
type TimeSeries struct {
	T        []float64
	Channels [][]float64
}

// New returns a TimeSeries over t with the given channels.
//
// The slices are referenced, not copied.
func New(t []float64, channels ...[]float64) TimeSeries {
	return TimeSeries{T: t, Channels: channels}
}

// Len returns the number of time samples.
func (ts TimeSeries) Len() int {
	return len(ts.T)
}

// NumChannels returns the number of spatial sample points.
func (ts TimeSeries) NumChannels() int {
	return len(ts.Channels)
}

// EndTime returns the last timestamp, or 0 for an empty series.
func (ts TimeSeries) EndTime() float64 {
	if len(ts.T) == 0 {
		return 0
	}
	return ts.T[len(ts.T)-1]
}

// Validate checks the TimeSeries invariants: at least one sample, a
// strictly increasing grid, at least one channel, and matching channel
// lengths.
func (ts TimeSeries) Validate() error {
	if len(ts.T) == 0 {
		return fmt.Errorf("%w: empty timestamp grid", ErrInvalidInput)
	}

	for i := 1; i < len(ts.T); i++ {
		if !(ts.T[i] > ts.T[i-1]) {
			return fmt.Errorf("%w: timestamps must be strictly increasing at index %d", ErrInvalidInput, i)
		}
	}

	if len(ts.Channels) == 0 {
		return fmt.Errorf("%w: series has no channels", ErrInvalidInput)
	}

	for c, ch := range ts.Channels {
		if len(ch) != len(ts.T) {
			return fmt.Errorf("%w: channel %d has %d samples, grid has %d", ErrInvalidInput, c, len(ch), len(ts.T))
		}
	}

	return nil
}

// Clone returns a deep copy of the series.
func (ts TimeSeries) Clone() TimeSeries {
	out := TimeSeries{
		T:        append([]float64(nil), ts.T...),
		Channels: make([][]float64, len(ts.Channels)),
	}
	for c, ch := range ts.Channels {
		out.Channels[c] = append([]float64(nil), ch...)
	}
	return out
}
