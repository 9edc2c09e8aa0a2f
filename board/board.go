// Package board keeps the rows already submitted in a session.
// It does not score guesses; it only bounds how many may be made.
package board

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/wordrow/row"
)

// DefaultLines is the number of guess lines on a board
const DefaultLines = 5

var (
	ErrFull        = errors.New("board is full")
	ErrIncomplete  = errors.New("row is incomplete")
	ErrInvalidRows = errors.New("board needs at least one line")
)

// Board is an append-only list of submitted words
type Board struct {
	lines int
	words []string
}

// New creates a board with the given number of lines
func New(lines int) (*Board, error) {
	if lines < 1 {
		return nil, errors.Wrapf(ErrInvalidRows, "lines=%d", lines)
	}
	return &Board{
		lines: lines,
		words: make([]string, 0, lines),
	}, nil
}

// Submit records a full row as the next board line
func (b *Board) Submit(st row.State) error {
	if !st.Full() || !st.Valid() {
		return errors.Wrapf(ErrIncomplete, "cursor=%d", st.Cursor)
	}
	if b.Full() {
		return errors.Wrapf(ErrFull, "%d/%d lines used", len(b.words), b.lines)
	}
	b.words = append(b.words, st.Word())
	return nil
}

// Current is the index of the line being typed
func (b *Board) Current() int {
	return len(b.words)
}

func (b *Board) Lines() int {
	return b.lines
}

// Full reports whether every line has been submitted
func (b *Board) Full() bool {
	return len(b.words) >= b.lines
}

// Words returns a copy of the submitted words in order
func (b *Board) Words() []string {
	out := make([]string, len(b.words))
	copy(out, b.words)
	return out
}
