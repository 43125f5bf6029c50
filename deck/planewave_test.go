package deck

import (
	"math"
	"os"
	"strings"
	"testing"
)

func TestFormatField(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.0000000000E+000"},
		{math.Pi / 2, "1.5707963268E+000"},
		{math.Pi, "3.1415926536E+000"},
		{3 * math.Pi / 2, "4.7123889804E+000"},
		{-math.Pi / 2, "-1.5707963268E+000"},
		{1.5e-4, "1.5000000000E-004"},
	}

	for _, c := range cases {
		if got := formatField(c.in); got != c.want {
			t.Fatalf("formatField(%g): got %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSourceParamLine(t *testing.T) {
	src := Source{Theta: math.Pi / 2, Phi: math.Pi, Polarization: 0, Phase: math.Pi / 2}

	want := "1.5707963268E+000    3.1415926536E+000    0.0000000000E+000    1.5707963268E+000"
	if got := src.ParamLine(); got != want {
		t.Fatalf("ParamLine:\n%q\nwant\n%q", got, want)
	}
}

func TestSourceCommentLine(t *testing.T) {
	if got := (Source{Comment: "k: +Z | E: +X"}).CommentLine(); got != "* k: +Z | E: +X" {
		t.Fatalf("CommentLine: %q", got)
	}
	if got := (Source{Comment: "* verbatim"}).CommentLine(); got != "* verbatim" {
		t.Fatalf("CommentLine kept prefix: %q", got)
	}
	if got := (Source{}).CommentLine(); got != "*" {
		t.Fatalf("empty CommentLine: %q", got)
	}
}

func TestCanonicalSources(t *testing.T) {
	sources := CanonicalSources()
	if len(sources) != 12 {
		t.Fatalf("canonical source count: got %d, want 12", len(sources))
	}

	seen := make(map[string]bool)
	for _, src := range sources {
		line := src.ParamLine()
		if seen[line] {
			t.Fatalf("duplicate orientation: %q", line)
		}
		seen[line] = true

		if !strings.HasPrefix(src.CommentLine(), "* k:") {
			t.Fatalf("comment line %q does not label the orientation", src.CommentLine())
		}
	}
}

func TestApplySource(t *testing.T) {
	path := writeDeck(t, sampleDeck)

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	src := CanonicalSources()[2] // k: -X | E: +Z
	if err := ApplySource(d, src); err != nil {
		t.Fatalf("ApplySource: %v", err)
	}
	if err := d.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(string(got), "\n")
	if lines[6] != src.ParamLine() {
		t.Fatalf("parameter line: got %q, want %q", lines[6], src.ParamLine())
	}
	if lines[7] != src.CommentLine() {
		t.Fatalf("comment line: got %q, want %q", lines[7], src.CommentLine())
	}

	// Everything outside the replaced block is untouched.
	wantLines := strings.Split(sampleDeck, "\n")
	for i := range wantLines {
		if i == 6 || i == 7 {
			continue
		}
		if lines[i] != wantLines[i] {
			t.Fatalf("line %d changed: got %q, want %q", i, lines[i], wantLines[i])
		}
	}
}

func TestApplySourceMissingBlock(t *testing.T) {
	d, err := Load(writeDeck(t, "no sources here\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := ApplySource(d, CanonicalSources()[0]); err == nil {
		t.Fatal("expected an error for a deck without a plane-wave block")
	}
}
