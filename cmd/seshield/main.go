// Command seshield computes shielding-effectiveness statistics from
// box-probe captures and a plane-wave reference waveform.
//
// Usage:
//
//	seshield -ref Plane_Wave.dat -out se_stats.dat probe1.dat [probe2.dat ...]
//
// The reference waveform is padded (hold-last) and resampled onto the
// probe time grid, both signals are transformed to the frequency
// domain, and per-bin shielding effectiveness is reduced across all
// spatial sample points to min/mean/max curves written as a four-column
// text file.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-emc/field/series"
	"github.com/cwbudde/algo-emc/measure/shielding"
	"github.com/cwbudde/algo-emc/probe"
)

func main() {
	refPath := flag.String("ref", "", "reference waveform file (required)")
	outPath := flag.String("out", "se_stats.dat", "output statistics file")
	endTime := flag.Float64("end", 0, "pad reference to this end time (default: probe end time)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: seshield [flags] probe.dat [probe.dat ...]\n\n")
		fmt.Fprintf(os.Stderr, "Computes shielding-effectiveness statistics from box-probe captures.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *refPath == "" || flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "seshield: logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(logger, *refPath, *outPath, *endTime, flag.Args()); err != nil {
		logger.Error("shielding pipeline failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(logger *zap.Logger, refPath, outPath string, endTime float64, probePaths []string) error {
	probes, err := probe.LoadBoxProbes(probePaths...)
	if err != nil {
		return err
	}
	logger.Info("loaded box probes",
		zap.Int("files", len(probePaths)),
		zap.Int("points", probes.NumChannels()),
		zap.Int("samples", probes.Len()))

	ref, err := probe.LoadSeries(refPath)
	if err != nil {
		return err
	}

	target := probes.EndTime()
	if endTime > 0 {
		target = endTime
	}

	ref, err = series.PadToTime(ref, target)
	if err != nil {
		return err
	}

	ref, err = series.Resample(ref, probes.T)
	if err != nil {
		return err
	}

	result, err := shielding.FromSeries(probes, ref)
	if err != nil {
		return err
	}

	summary, err := result.Stats()
	if err != nil {
		return err
	}

	if err := probe.WriteStats(outPath, result.Freq, summary); err != nil {
		return err
	}

	logger.Info("wrote shielding statistics",
		zap.String("path", outPath),
		zap.Int("bins", result.BinCount()),
		zap.Int("points", result.Points()))

	return nil
}
