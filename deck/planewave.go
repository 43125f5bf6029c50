package deck

import (
	"fmt"
	"math"
	"strings"
)

// PlaneWaveMarker is the directive header line that introduces a
// plane-wave source block in a deck.
const PlaneWaveMarker = "!PLANE WAVE SOURCE"

// ParamLineOffset is the distance from the directive header to the
// orientation/polarization parameter line. It is a fixed property of the
// deck format, not recomputed per file: the header is followed by a
// fixed number of metadata lines before the parameter line.
const ParamLineOffset = 5

// Source describes a plane-wave excitation: the propagation direction
// angles, the polarization angles of the electric field, all in
// radians, and an optional human-readable comment for the trailing
// comment line.
type Source struct {
	Theta        float64
	Phi          float64
	Polarization float64
	Phase        float64
	Comment      string
}

// ParamLine renders the four angles as the fixed-width parameter line
// the deck format expects: four Fortran-style floating-point fields
// separated by four spaces, e.g.
//
//	1.5707963268E+000    3.1415926536E+000    0.0000000000E+000    1.5707963268E+000
func (s Source) ParamLine() string {
	fields := []string{
		formatField(s.Theta),
		formatField(s.Phi),
		formatField(s.Polarization),
		formatField(s.Phase),
	}
	return strings.Join(fields, "    ")
}

// CommentLine renders the trailing comment line. Comment lines in the
// deck format begin with "*".
func (s Source) CommentLine() string {
	if strings.HasPrefix(s.Comment, "*") {
		return s.Comment
	}
	if s.Comment == "" {
		return "*"
	}
	return "* " + s.Comment
}

// ApplySource locates the first plane-wave directive in d and overwrites
// its parameter line and the comment line that follows it. ErrNotFound
// is returned if the deck has no plane-wave block, ErrIndexOutOfRange if
// the block is truncated.
func ApplySource(d *Deck, src Source) error {
	header, err := d.Find(PlaneWaveMarker)
	if err != nil {
		return err
	}

	return d.Replace(header+ParamLineOffset, []string{src.ParamLine(), src.CommentLine()})
}

// CanonicalSources returns the twelve axis-aligned propagation and
// polarization combinations used to characterize an enclosure from all
// six directions with both polarizations.
func CanonicalSources() []Source {
	const (
		half    = math.Pi / 2
		full    = math.Pi
		quarter = 3 * math.Pi / 2
	)

	return []Source{
		{Theta: 0, Phi: 0, Polarization: half, Phase: 0, Comment: "k: +Z | E: +X"},
		{Theta: 0, Phi: 0, Polarization: half, Phase: half, Comment: "k: +Z | E: +Y"},
		{Theta: half, Phi: full, Polarization: 0, Phase: half, Comment: "k: -X | E: +Z"},
		{Theta: half, Phi: full, Polarization: half, Phase: half, Comment: "k: -X | E: +Y"},
		{Theta: full, Phi: 0, Polarization: half, Phase: half, Comment: "k: -Z | E: +Y"},
		{Theta: full, Phi: 0, Polarization: half, Phase: 0, Comment: "k: -Z | E: +X"},
		{Theta: half, Phi: 0, Polarization: 0, Phase: full, Comment: "k: +X | E: +Z"},
		{Theta: half, Phi: 0, Polarization: half, Phase: half, Comment: "k: +X | E: +Y"},
		{Theta: half, Phi: quarter, Polarization: 0, Phase: full, Comment: "k: -Y | E: +Z"},
		{Theta: half, Phi: quarter, Polarization: half, Phase: 0, Comment: "k: -Y | E: +X"},
		{Theta: half, Phi: half, Polarization: half, Phase: 0, Comment: "k: +Y | E: +X"},
		{Theta: half, Phi: half, Polarization: 0, Phase: 0, Comment: "k: +Y | E: +Z"},
	}
}

// formatField renders v in the deck's fixed-width numeric form: ten
// fractional digits and a three-digit exponent (1.5707963268E+000).
func formatField(v float64) string {
	s := fmt.Sprintf("%.10E", v)

	e := strings.IndexByte(s, 'E')
	if e < 0 || e+2 > len(s) {
		return s
	}

	mantissa, sign, digits := s[:e], s[e+1:e+2], s[e+2:]
	for len(digits) < 3 {
		digits = "0" + digits
	}

	return mantissa + "E" + sign + digits
}
