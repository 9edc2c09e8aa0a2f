// Package row implements the keystroke reducer for a six-letter guess row.
//
// The reducer is a pure function: it takes a key event and the current
// row state by value and returns the next state with a signal telling the
// caller whether the row was submitted. Unknown keys are absorbed.
package row

import "strings"

// Length is the number of cells in a row
const Length = 6

// Special key tokens understood by Apply
const (
	KeyBackspace = "Backspace"
	KeyEnter     = "Enter"
)

// Signal tells the caller whether the row was submitted
type Signal uint8

const (
	Continue Signal = iota // Row still being edited
	OK                     // Row full and Enter pressed
)

func (s Signal) String() string {
	if s == OK {
		return "OK"
	}
	return "CONTINUE"
}

// KeyEvent is a single key press as delivered by the host
// Key is one character or one of KeyBackspace / KeyEnter
type KeyEvent struct {
	Key string
}

// State is the editable row: cursor plus letter cells
// Cells at index >= Cursor are always empty
type State struct {
	Cursor  int
	Letters [Length]string
}

// Word returns the letters entered so far
func (s State) Word() string {
	return strings.Join(s.Letters[:], "")
}

// Full reports whether every cell holds a letter
func (s State) Full() bool {
	return s.Cursor == Length
}

// Valid reports whether the cursor is in range and the cells have no gaps
func (s State) Valid() bool {
	if s.Cursor < 0 || s.Cursor > Length {
		return false
	}
	for i, l := range s.Letters {
		if (i < s.Cursor) != (l != "") {
			return false
		}
		if l != "" && (len(l) != 1 || l[0] < 'A' || l[0] > 'Z') {
			return false
		}
	}
	return true
}

// Apply reduces one key event against the row state
// A cursor outside [0, Length] is left untouched
func Apply(ev KeyEvent, st State) (Signal, State) {
	if st.Cursor < 0 || st.Cursor > Length {
		return Continue, st
	}

	if c, ok := letter(ev.Key); ok {
		if st.Cursor < Length {
			st.Letters[st.Cursor] = string(c)
			st.Cursor++
		}
		return Continue, st
	}

	switch ev.Key {
	case KeyBackspace:
		if st.Cursor > 0 {
			st.Cursor--
			st.Letters[st.Cursor] = ""
		}
		return Continue, st
	case KeyEnter:
		if st.Cursor == Length {
			return OK, st
		}
	}
	return Continue, st
}

// letter matches exactly one ASCII letter and returns it uppercased
func letter(key string) (byte, bool) {
	if len(key) != 1 {
		return 0, false
	}
	c := key[0]
	switch {
	case c >= 'A' && c <= 'Z':
		return c, true
	case c >= 'a' && c <= 'z':
		return c - 'a' + 'A', true
	}
	return 0, false
}
