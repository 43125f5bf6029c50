package spectrum

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"github.com/mjibson/go-dsp/fft"

	"github.com/cwbudde/algo-emc/field/series"
)

// ErrNonUniformSampling indicates a time grid whose step varies beyond
// tolerance, which blocks spectral conversion.
var ErrNonUniformSampling = errors.New("spectrum: non-uniform sampling")

// stepTolerance is the allowed relative deviation of any step from the
// nominal step size.
const stepTolerance = 1e-6

// Spectrum holds a one-sided complex spectrum per spatial sample point.
//
// Freq is in Hz, non-negative and increasing. Bins is channel-major;
// every channel has len(Freq) bins.
type Spectrum struct {
	Freq []float64
	Bins [][]complex128
}

// BinCount returns the number of frequency bins.
func (s Spectrum) BinCount() int {
	return len(s.Freq)
}

// NumChannels returns the number of spatial sample points.
func (s Spectrum) NumChannels() int {
	return len(s.Bins)
}

// Resolution returns the bin spacing in Hz, or 0 for fewer than two bins.
func (s Spectrum) Resolution() float64 {
	if len(s.Freq) < 2 {
		return 0
	}
	return s.Freq[1] - s.Freq[0]
}

// Nyquist returns the highest retained frequency.
func (s Spectrum) Nyquist() float64 {
	if len(s.Freq) == 0 {
		return 0
	}
	return s.Freq[len(s.Freq)-1]
}

// FromSeries converts a uniformly sampled series to a one-sided spectrum.
//
// The time step must be uniform within a relative tolerance of 1e-6 or
// ErrNonUniformSampling is returned. Bin spacing is 1/(N*dt); only the
// non-negative frequencies 0..N/2 are retained and every bin is scaled by
// 2/N. The channel count of the input is preserved.
func FromSeries(ts series.TimeSeries) (Spectrum, error) {
	if err := ts.Validate(); err != nil {
		return Spectrum{}, err
	}

	n := ts.Len()
	if n < 2 {
		return Spectrum{}, fmt.Errorf("%w: conversion needs at least 2 samples", series.ErrInvalidInput)
	}

	dt, err := UniformStep(ts.T)
	if err != nil {
		return Spectrum{}, err
	}

	bins := n/2 + 1
	out := Spectrum{
		Freq: make([]float64, bins),
		Bins: make([][]complex128, ts.NumChannels()),
	}

	df := 1 / (float64(n) * dt)
	for k := range out.Freq {
		out.Freq[k] = float64(k) * df
	}

	var plan *algofft.Plan[complex128]
	if isPowerOfTwo(n) {
		plan, err = algofft.NewPlan64(n)
		if err != nil {
			return Spectrum{}, fmt.Errorf("spectrum: fft plan: %w", err)
		}
	}

	scale := complex(2/float64(n), 0)
	for c, ch := range ts.Channels {
		full, err := transform(ch, plan)
		if err != nil {
			return Spectrum{}, err
		}

		oneSided := make([]complex128, bins)
		for k := range oneSided {
			oneSided[k] = full[k] * scale
		}
		out.Bins[c] = oneSided
	}

	return out, nil
}

// UniformStep returns the nominal step of t, or ErrNonUniformSampling if
// any step deviates from it by more than the relative tolerance.
func UniformStep(t []float64) (float64, error) {
	if len(t) < 2 {
		return 0, fmt.Errorf("%w: step undefined for %d samples", series.ErrInvalidInput, len(t))
	}

	dt := t[1] - t[0]
	for i := 1; i < len(t); i++ {
		step := t[i] - t[i-1]
		if math.Abs(step-dt) > stepTolerance*math.Abs(dt) {
			return 0, fmt.Errorf("%w: step %g at index %d deviates from nominal %g", ErrNonUniformSampling, step, i, dt)
		}
	}

	return dt, nil
}

// transform computes the full-length complex DFT of x. A non-nil plan is
// used directly; otherwise the arbitrary-length backend runs.
func transform(x []float64, plan *algofft.Plan[complex128]) ([]complex128, error) {
	if plan == nil {
		return fft.FFTReal(x), nil
	}

	in := make([]complex128, len(x))
	for i, v := range x {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, len(x))
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectrum: forward fft: %w", err)
	}

	return out, nil
}

// Magnitude returns |X[k]| for each bin of a single channel.
func Magnitude(bins []complex128) []float64 {
	if len(bins) == 0 {
		return nil
	}

	re := make([]float64, len(bins))
	im := make([]float64, len(bins))
	for i, c := range bins {
		re[i] = real(c)
		im[i] = imag(c)
	}

	out := make([]float64, len(bins))
	vecmath.Magnitude(out, re, im)
	return out
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
