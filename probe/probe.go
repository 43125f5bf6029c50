// Package probe loads probe and reference field captures from
// whitespace-column text files and writes shielding statistics back in
// the same column convention.
//
// The on-disk layout is one row per time sample: the first column is
// time in seconds, every further column is one spatial sample point's
// field amplitude. Blank lines are skipped.
package probe

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-emc/field/series"
	"github.com/cwbudde/algo-emc/stats/spatial"
)

var (
	// ErrNotFound indicates a missing data file.
	ErrNotFound = errors.New("probe: file not found")
	// ErrGridMismatch indicates box-probe files that do not share a
	// time grid.
	ErrGridMismatch = errors.New("probe: time grid mismatch")
)

// gridTolerance is the allowed timestamp deviation between box-probe
// files, relative to the grid span.
const gridTolerance = 1e-6

// LoadSeries reads a whitespace-column capture file into a TimeSeries.
//
// Every row must carry the same number of columns as the first row and
// at least two (time plus one channel).
func LoadSeries(path string) (series.TimeSeries, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return series.TimeSeries{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return series.TimeSeries{}, fmt.Errorf("probe: open %s: %w", path, err)
	}
	defer f.Close()

	var (
		t        []float64
		channels [][]float64
		cols     int
	)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for lineNo := 1; scanner.Scan(); lineNo++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		if cols == 0 {
			cols = len(fields)
			if cols < 2 {
				return series.TimeSeries{}, fmt.Errorf("%w: %s: need a time column and at least one channel", series.ErrInvalidInput, path)
			}
			channels = make([][]float64, cols-1)
		} else if len(fields) != cols {
			return series.TimeSeries{}, fmt.Errorf("%w: %s line %d: %d columns, expected %d", series.ErrInvalidInput, path, lineNo, len(fields), cols)
		}

		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return series.TimeSeries{}, fmt.Errorf("%w: %s line %d column %d: %v", series.ErrInvalidInput, path, lineNo, i+1, err)
			}
			if i == 0 {
				t = append(t, v)
			} else {
				channels[i-1] = append(channels[i-1], v)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return series.TimeSeries{}, fmt.Errorf("probe: read %s: %w", path, err)
	}

	ts := series.New(t, channels...)
	if err := ts.Validate(); err != nil {
		return series.TimeSeries{}, fmt.Errorf("probe: %s: %w", path, err)
	}

	return ts, nil
}

// LoadBoxProbes loads one or more box-probe files recorded on the same
// time grid and concatenates their channels into a single TimeSeries.
// ErrGridMismatch is returned if any file disagrees on the grid.
func LoadBoxProbes(paths ...string) (series.TimeSeries, error) {
	if len(paths) == 0 {
		return series.TimeSeries{}, fmt.Errorf("%w: no probe files given", series.ErrInvalidInput)
	}

	out, err := LoadSeries(paths[0])
	if err != nil {
		return series.TimeSeries{}, err
	}

	for _, path := range paths[1:] {
		next, err := LoadSeries(path)
		if err != nil {
			return series.TimeSeries{}, err
		}

		if err := matchGrids(out.T, next.T); err != nil {
			return series.TimeSeries{}, fmt.Errorf("%w (%s)", err, path)
		}

		out.Channels = append(out.Channels, next.Channels...)
	}

	return out, nil
}

// WriteStats writes a four-column statistics file: frequency, minimum,
// mean and maximum per row, matching the layout consumed by the
// plotting tools.
func WriteStats(path string, freq []float64, sum spatial.Summary) error {
	if len(freq) != len(sum.Min) || len(freq) != len(sum.Mean) || len(freq) != len(sum.Max) {
		return fmt.Errorf("%w: %d frequency bins, summary has %d/%d/%d", series.ErrInvalidInput, len(freq), len(sum.Min), len(sum.Mean), len(sum.Max))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("probe: create %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	for i, fr := range freq {
		fmt.Fprintf(w, "%.18e %.18e %.18e %.18e\n", fr, sum.Min[i], sum.Mean[i], sum.Max[i])
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("probe: write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("probe: write %s: %w", path, err)
	}

	return nil
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
			return fmt.Errorf("%w: timestamps differ at index %d", ErrGridMismatch, i)
		}
	}

	return nil
}
