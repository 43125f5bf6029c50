package deck

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrNotFound indicates a missing file or absent marker text.
	ErrNotFound = errors.New("deck: not found")
	// ErrIndexOutOfRange indicates an edit that exceeds the line buffer.
	ErrIndexOutOfRange = errors.New("deck: index out of range")
)

// line is one buffered line: content plus its own terminator. The final
// line of a file without a trailing newline has an empty eol.
type line struct {
	text string
	eol  string
}

// Deck is a line-indexed editor over a single deck file. Each Deck owns
// its buffer exclusively; batch processing of many files uses one Deck
// per file.
type Deck struct {
	path  string
	lines []line
}

// Load reads the file at path fully into a line buffer, preserving
// content and line terminators verbatim. ErrNotFound is returned if the
// path does not exist.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("deck: load %s: %w", path, err)
	}

	return &Deck{path: path, lines: splitLines(string(data))}, nil
}

// Path returns the path the deck was loaded from.
func (d *Deck) Path() string {
	return d.path
}

// Len returns the number of buffered lines.
func (d *Deck) Len() int {
	return len(d.lines)
}

// Line returns the content of line i without its terminator.
func (d *Deck) Line(i int) (string, error) {
	if i < 0 || i >= len(d.lines) {
		return "", fmt.Errorf("%w: line index %d of %d", ErrIndexOutOfRange, i, len(d.lines))
	}
	return d.lines[i].text, nil
}

// Find returns the index of the first line containing text as a
// case-sensitive substring. ErrNotFound is returned if no line matches.
func (d *Deck) Find(text string) (int, error) {
	return d.FindFrom(text, 0)
}

// FindFrom behaves like [Deck.Find] but starts the scan at index start.
func (d *Deck) FindFrom(text string, start int) (int, error) {
	if start < 0 {
		return 0, fmt.Errorf("%w: search start %d", ErrIndexOutOfRange, start)
	}

	for i := start; i < len(d.lines); i++ {
		if strings.Contains(d.lines[i].text, text) {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: marker %q", ErrNotFound, text)
}

// FindAll returns the indices of every line containing text as a
// substring, in order. The result is empty if no line matches.
func (d *Deck) FindAll(text string) []int {
	var indices []int
	for i := range d.lines {
		if strings.Contains(d.lines[i].text, text) {
			indices = append(indices, i)
		}
	}
	return indices
}

// Replace overwrites exactly len(newLines) buffered lines starting at
// index with the given content. This is a fixed-count overwrite, not an
// insert: the buffer length is unchanged. Each replacement line keeps
// the terminator of the line it overwrites.
//
// ErrIndexOutOfRange is returned if index is negative or index plus the
// replacement length exceeds the buffer.
func (d *Deck) Replace(index int, newLines []string) error {
	if len(newLines) == 0 {
		return fmt.Errorf("deck: replace needs at least one line")
	}

	if index < 0 || index+len(newLines) > len(d.lines) {
		return fmt.Errorf("%w: replacing %d lines at index %d in a %d-line buffer", ErrIndexOutOfRange, len(newLines), index, len(d.lines))
	}

	for k, text := range newLines {
		d.lines[index+k].text = text
	}

	return nil
}

// Insert splices newLines into the buffer before index without
// overwriting. index may equal Len to append at the end. Inserted lines
// take the deck's terminator convention.
func (d *Deck) Insert(index int, newLines []string) error {
	if index < 0 || index > len(d.lines) {
		return fmt.Errorf("%w: inserting at index %d in a %d-line buffer", ErrIndexOutOfRange, index, len(d.lines))
	}

	if len(newLines) == 0 {
		return nil
	}

	eol := d.defaultEOL()
	trailingNewline := len(d.lines) == 0 || d.lines[len(d.lines)-1].eol != ""

	spliced := make([]line, 0, len(d.lines)+len(newLines))
	spliced = append(spliced, d.lines[:index]...)
	for _, text := range newLines {
		spliced = append(spliced, line{text: text, eol: eol})
	}
	spliced = append(spliced, d.lines[index:]...)
	d.lines = spliced

	// Only the final line may go without a terminator, and the file
	// keeps its trailing-newline convention.
	for i := 0; i < len(d.lines)-1; i++ {
		if d.lines[i].eol == "" {
			d.lines[i].eol = eol
		}
	}
	if !trailingNewline {
		d.lines[len(d.lines)-1].eol = ""
	}

	return nil
}

// InsertAfter splices newLines immediately after line index.
func (d *Deck) InsertAfter(index int, newLines []string) error {
	if index < 0 || index >= len(d.lines) {
		return fmt.Errorf("%w: line index %d of %d", ErrIndexOutOfRange, index, len(d.lines))
	}
	return d.Insert(index+1, newLines)
}

// Save writes the buffer back to the original load path.
func (d *Deck) Save() error {
	return d.SaveAs(d.path)
}

// SaveAs writes the buffer to path, joining lines with their preserved
// terminators. The write is atomic: content goes to a temporary file in
// the destination directory which is renamed over the target, so a
// failure mid-write leaves any existing file untouched.
func (d *Deck) SaveAs(path string) error {
	var sb strings.Builder
	for _, l := range d.lines {
		sb.WriteString(l.text)
		sb.WriteString(l.eol)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("deck: save %s: %w", path, err)
	}

	if _, err := tmp.WriteString(sb.String()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("deck: save %s: %w", path, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("deck: save %s: %w", path, err)
	}

	if info, err := os.Stat(path); err == nil {
		// Carry the original permissions across the rename.
		os.Chmod(tmp.Name(), info.Mode().Perm())
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("deck: save %s: %w", path, err)
	}

	return nil
}

// LineToIndex converts a 1-based line number, the file's on-disk
// convention, to a 0-based buffer index.
func LineToIndex(lineNumber int) (int, error) {
	if lineNumber < 1 {
		return 0, fmt.Errorf("%w: line numbers are 1-based, got %d", ErrIndexOutOfRange, lineNumber)
	}
	return lineNumber - 1, nil
}

// IndexToLine converts a 0-based buffer index to a 1-based line number.
func IndexToLine(index int) int {
	return index + 1
}

// defaultEOL returns the deck's terminator convention: the first
// terminator seen in the buffer, or "\n" for an empty or single
// unterminated line.
func (d *Deck) defaultEOL() string {
	for _, l := range d.lines {
		if l.eol != "" {
			return l.eol
		}
	}
	return "\n"
}

// splitLines cuts raw file content into lines, each keeping its own
// terminator ("\n" or "\r\n"). Trailing content without a newline
// becomes a final line with an empty terminator.
func splitLines(data string) []line {
	var lines []line
	for len(data) > 0 {
		nl := strings.IndexByte(data, '\n')
		if nl < 0 {
			lines = append(lines, line{text: data})
			break
		}

		text, eol := data[:nl], "\n"
		if strings.HasSuffix(text, "\r") {
			text, eol = text[:len(text)-1], "\r\n"
		}
		lines = append(lines, line{text: text, eol: eol})
		data = data[nl+1:]
	}
	return lines
}
