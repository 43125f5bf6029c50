// Package series provides the shared time-domain representation for probe
// and reference field captures, together with the grid-alignment helpers
// (padding and resampling) used to bring a reference waveform onto a probe
// array's time base.
//
// A TimeSeries pairs a strictly increasing timestamp grid with one or more
// amplitude channels, one channel per spatial sample point. All operations
// return new series and leave their inputs untouched.
package series
