// Command planewave rewrites the plane-wave source definition across a
// set of simulation run directories.
//
// Usage:
//
//	planewave -base runs -name planewave_example.emin [-runs 12]
//
// Deck i (1-based) lives at base/i/name and receives the i-th canonical
// axis-aligned source orientation. Each deck is edited by its own
// editor instance; files are processed in parallel and independently,
// so one bad deck does not stop the rest.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-emc/deck"
)

func main() {
	base := flag.String("base", ".", "base directory containing numbered run directories")
	name := flag.String("name", "planewave_example.emin", "deck filename inside each run directory")
	runs := flag.Int("runs", 0, "number of run directories (default: one per canonical orientation)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: planewave [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Batch-edits plane-wave source definitions in numbered run directories.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "planewave: logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	sources := deck.CanonicalSources()
	n := *runs
	if n <= 0 {
		n = len(sources)
	}

	var g errgroup.Group
	for i := 0; i < n; i++ {
		path := filepath.Join(*base, strconv.Itoa(i+1), *name)
		src := sources[i%len(sources)]

		g.Go(func() error {
			if err := editDeck(path, src); err != nil {
				logger.Error("deck update failed", zap.String("path", path), zap.Error(err))
				return err
			}
			logger.Info("updated deck", zap.String("path", path), zap.String("orientation", src.Comment))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		os.Exit(1)
	}
}

func editDeck(path string, src deck.Source) error {
	d, err := deck.Load(path)
	if err != nil {
		return err
	}

	if err := deck.ApplySource(d, src); err != nil {
		return err
	}

	return d.Save()
}
