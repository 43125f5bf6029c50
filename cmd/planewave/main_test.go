package main

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/cwbudde/algo-emc/deck"
)

const testDeck = `* Example simulation deck
!PLANE WAVE SOURCE
1 1 1
100 100 100
2
waveform.dat
0.0000000000E+000    0.0000000000E+000    0.0000000000E+000    0.0000000000E+000
* placeholder
!END
`

func TestEditDeckAcrossRunDirectories(t *testing.T) {
	base := t.TempDir()
	sources := deck.CanonicalSources()

	for i := range sources {
		dir := filepath.Join(base, strconv.Itoa(i+1))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		path := filepath.Join(dir, "run.emin")
		if err := os.WriteFile(path, []byte(testDeck), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	for i, src := range sources {
		path := filepath.Join(base, strconv.Itoa(i+1), "run.emin")
		if err := editDeck(path, src); err != nil {
			t.Fatalf("deck %d: %v", i+1, err)
		}
	}

	for i, src := range sources {
		path := filepath.Join(base, strconv.Itoa(i+1), "run.emin")
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}

		lines := strings.Split(string(data), "\n")
		if lines[6] != src.ParamLine() {
			t.Fatalf("deck %d parameter line: got %q, want %q", i+1, lines[6], src.ParamLine())
		}
		if lines[7] != src.CommentLine() {
			t.Fatalf("deck %d comment line: got %q, want %q", i+1, lines[7], src.CommentLine())
		}
	}
}

func TestEditDeckMissingFile(t *testing.T) {
	err := editDeck(filepath.Join(t.TempDir(), "absent.emin"), deck.CanonicalSources()[0])
	if err == nil {
		t.Fatal("expected an error for a missing deck")
	}
}
