// Package shielding computes frequency-domain shielding effectiveness
// from time-domain probe and reference captures.
//
// Shielding effectiveness at a bin is the logarithmic ratio of the
// reference field magnitude to the shielded field magnitude,
// 20*log10(|E_ref|/|E_probe|) in dB. A probe bin with exactly zero
// magnitude reports +Inf (perfect shielding), never an error.
package shielding

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-emc/field/series"
	"github.com/cwbudde/algo-emc/field/spectrum"
	"github.com/cwbudde/algo-emc/stats/spatial"
)

// ErrGridMismatch indicates probe and reference series that do not share
// a time grid.
var ErrGridMismatch = errors.New("shielding: time grid mismatch")

// gridTolerance is the allowed timestamp deviation between the two
// grids, relative to the grid span.
const gridTolerance = 1e-6

// Result holds shielding effectiveness in dB per frequency bin per
// spatial sample point. DB is channel-major: one row per point.
type Result struct {
	Freq []float64
	DB   [][]float64
}

// Points returns the number of spatial sample points.
func (r Result) Points() int {
	return len(r.DB)
}

// BinCount returns the number of frequency bins.
func (r Result) BinCount() int {
	return len(r.Freq)
}

// Stats reduces the result across its spatial sample points to per-bin
// minimum, mean and maximum. See [spatial.Stats] for the +Inf policy.
func (r Result) Stats() (spatial.Summary, error) {
	return spatial.Stats(r.DB, spatial.AcrossRows)
}

// FromSeries computes shielding effectiveness from a probe-array series
// and a single-channel reference series sharing the same time grid.
//
// Both series are converted to spectra; the caller is responsible for
// padding and resampling first if the grids differ (see
// [series.PadToTime] and [series.Resample]). ErrGridMismatch is returned
// when the grids differ in length or timestamps.
func FromSeries(probe, ref series.TimeSeries) (Result, error) {
	if err := probe.Validate(); err != nil {
		return Result{}, err
	}
	if err := ref.Validate(); err != nil {
		return Result{}, err
	}

	if ref.NumChannels() != 1 {
		return Result{}, fmt.Errorf("%w: reference must have exactly 1 channel, has %d", series.ErrInvalidInput, ref.NumChannels())
	}

	if err := matchGrids(probe.T, ref.T); err != nil {
		return Result{}, err
	}

	probeSpec, err := spectrum.FromSeries(probe)
	if err != nil {
		return Result{}, err
	}

	refSpec, err := spectrum.FromSeries(ref)
	if err != nil {
		return Result{}, err
	}

	refMag := spectrum.Magnitude(refSpec.Bins[0])

	out := Result{
		Freq: probeSpec.Freq,
		DB:   make([][]float64, probeSpec.NumChannels()),
	}

	for c, bins := range probeSpec.Bins {
		mag := spectrum.Magnitude(bins)
		row := make([]float64, len(mag))
		for k := range mag {
			row[k] = effectiveness(refMag[k], mag[k])
		}
		out.DB[c] = row
	}

	return out, nil
}

// effectiveness converts a reference/probe magnitude pair to dB. A zero
// probe magnitude means nothing penetrated at that bin: +Inf.
func effectiveness(ref, probe float64) float64 {
	if probe == 0 {
		return math.Inf(1)
	}
	return 20 * math.Log10(ref/probe)
}

func matchGrids(a, b []float64) error {
	if len(a) != len(b) {
		return fmt.Errorf("%w: %d vs %d samples", ErrGridMismatch, len(a), len(b))
	}

	span := a[len(a)-1] - a[0]
	if span <= 0 {
		span = 1
	}

	for i := range a {
		if math.Abs(a[i]-b[i]) > gridTolerance*span {
			return fmt.Errorf("%w: timestamps differ at index %d (%g vs %g)", ErrGridMismatch, i, a[i], b[i])
		}
	}

	return nil
}
