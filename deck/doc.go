// Package deck edits line-oriented simulation input decks ("Emin"
// files) in place.
//
// A Deck loads a file into a line buffer, locates directive blocks by
// substring search, overwrites line ranges at computed offsets, and
// serializes back to disk. Every line keeps its own terminator, so
// content outside the edited region is reproduced byte-for-byte. Saves
// are atomic (write-then-rename): a failed save never leaves a
// truncated deck and the original stays on disk untouched.
//
// The editing model is deliberately offset-based rather than
// format-aware: a directive header is found by marker text and related
// lines are addressed by fixed offsets from it, matching the deck
// format's on-disk layout.
package deck
