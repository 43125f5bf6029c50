// Package spectrum converts uniformly sampled time-domain series into
// one-sided complex spectra.
//
// The package does not implement FFT itself. Power-of-two lengths go
// through algo-fft plans; other lengths use go-dsp's arbitrary-length
// transform. Bins are normalized so that a full-scale sinusoid aligned
// with a bin reports its true amplitude.
package spectrum
