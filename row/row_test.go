package row

import (
	"testing"
)

func stateOf(word string) State {
	var st State
	for i, c := range word {
		st.Letters[i] = string(c)
	}
	st.Cursor = len(word)
	return st
}

func TestApplyLetterAdvancesCursor(t *testing.T) {
	for cursor := 0; cursor < Length; cursor++ {
		before := stateOf("CRANES"[:cursor])
		for _, key := range []string{"a", "Z", "q", "M"} {
			sig, after := Apply(KeyEvent{Key: key}, before)
			if sig != Continue {
				t.Errorf("cursor=%d key=%q: expected CONTINUE, got %s", cursor, key, sig)
			}
			if after.Cursor != cursor+1 {
				t.Errorf("cursor=%d key=%q: expected cursor %d, got %d", cursor, key, cursor+1, after.Cursor)
			}
			want := string(key[0] &^ 0x20)
			if after.Letters[cursor] != want {
				t.Errorf("cursor=%d key=%q: expected cell %q, got %q", cursor, key, want, after.Letters[cursor])
			}
			if !after.Valid() {
				t.Errorf("cursor=%d key=%q: state %+v breaks row invariant", cursor, key, after)
			}
		}
	}
}

func TestApplyLetterOnFullRowIgnored(t *testing.T) {
	before := stateOf("CRANES")
	sig, after := Apply(KeyEvent{Key: "x"}, before)
	if sig != Continue {
		t.Errorf("Expected CONTINUE, got %s", sig)
	}
	if after != before {
		t.Errorf("Expected unchanged state %+v, got %+v", before, after)
	}
}

func TestApplyBackspace(t *testing.T) {
	for cursor := 1; cursor <= Length; cursor++ {
		before := stateOf("CRANES"[:cursor])
		sig, after := Apply(KeyEvent{Key: KeyBackspace}, before)
		if sig != Continue {
			t.Errorf("cursor=%d: expected CONTINUE, got %s", cursor, sig)
		}
		if after.Cursor != cursor-1 {
			t.Errorf("cursor=%d: expected cursor %d, got %d", cursor, cursor-1, after.Cursor)
		}
		if after.Letters[cursor-1] != "" {
			t.Errorf("cursor=%d: expected cell %d cleared, got %q", cursor, cursor-1, after.Letters[cursor-1])
		}
		if !after.Valid() {
			t.Errorf("cursor=%d: state %+v breaks row invariant", cursor, after)
		}
	}
}

func TestApplyBackspaceOnEmptyRow(t *testing.T) {
	var before State
	sig, after := Apply(KeyEvent{Key: KeyBackspace}, before)
	if sig != Continue || after != before {
		t.Errorf("Expected no-op CONTINUE, got %s %+v", sig, after)
	}
}

func TestApplyEnter(t *testing.T) {
	for cursor := 0; cursor <= Length; cursor++ {
		before := stateOf("CRANES"[:cursor])
		sig, after := Apply(KeyEvent{Key: KeyEnter}, before)
		want := Continue
		if cursor == Length {
			want = OK
		}
		if sig != want {
			t.Errorf("cursor=%d: expected %s, got %s", cursor, want, sig)
		}
		if after != before {
			t.Errorf("cursor=%d: Enter must not mutate state, got %+v", cursor, after)
		}
	}
}

func TestApplyEnterTwiceOnFullRow(t *testing.T) {
	st := stateOf("CRANES")
	sig1, st1 := Apply(KeyEvent{Key: KeyEnter}, st)
	sig2, st2 := Apply(KeyEvent{Key: KeyEnter}, st1)
	if sig1 != OK || sig2 != OK {
		t.Errorf("Expected OK twice, got %s then %s", sig1, sig2)
	}
	if st1 != st || st2 != st {
		t.Errorf("Expected identical state after repeated Enter")
	}
}

func TestApplyUnrecognisedKeys(t *testing.T) {
	keys := []string{"", "Shift", "enter", "backspace", "1", " ", "é", "ab", "Left", "Ctrl+A"}
	for _, cursor := range []int{0, 3, Length} {
		before := stateOf("CRANES"[:cursor])
		for _, key := range keys {
			sig, after := Apply(KeyEvent{Key: key}, before)
			if sig != Continue {
				t.Errorf("key=%q cursor=%d: expected CONTINUE, got %s", key, cursor, sig)
			}
			if after != before {
				t.Errorf("key=%q cursor=%d: expected unchanged state, got %+v", key, cursor, after)
			}
		}
	}
}

func TestApplyScenarios(t *testing.T) {
	tests := []struct {
		name     string
		before   State
		key      string
		wantSig  Signal
		wantRow  [Length]string
		wantCurs int
	}{
		{"first letter lowercased input", State{}, "c", Continue, [Length]string{"C", "", "", "", "", ""}, 1},
		{"submit full row", stateOf("CRANES"), KeyEnter, OK, [Length]string{"C", "R", "A", "N", "E", "S"}, 6},
		{"erase third letter", stateOf("CRA"), KeyBackspace, Continue, [Length]string{"C", "R", "", "", "", ""}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig, after := Apply(KeyEvent{Key: tt.key}, tt.before)
			if sig != tt.wantSig {
				t.Errorf("Expected %s, got %s", tt.wantSig, sig)
			}
			if after.Cursor != tt.wantCurs {
				t.Errorf("Expected cursor %d, got %d", tt.wantCurs, after.Cursor)
			}
			if after.Letters != tt.wantRow {
				t.Errorf("Expected letters %q, got %q", tt.wantRow, after.Letters)
			}
		})
	}
}

func TestApplyDoesNotAliasInput(t *testing.T) {
	before := stateOf("CR")
	_, after := Apply(KeyEvent{Key: "a"}, before)
	if before.Cursor != 2 || before.Letters[2] != "" {
		t.Errorf("Expected caller state untouched, got %+v", before)
	}
	if after.Word() != "CRA" {
		t.Errorf("Expected word CRA, got %q", after.Word())
	}
}

func TestStateValid(t *testing.T) {
	tests := []struct {
		name string
		st   State
		want bool
	}{
		{"empty", State{}, true},
		{"full", stateOf("CRANES"), true},
		{"gap", State{Cursor: 2, Letters: [Length]string{"C", "", "", "", "", ""}}, false},
		{"letter past cursor", State{Cursor: 1, Letters: [Length]string{"C", "R", "", "", "", ""}}, false},
		{"lowercase cell", State{Cursor: 1, Letters: [Length]string{"c", "", "", "", "", ""}}, false},
		{"cursor out of range", State{Cursor: 7}, false},
		{"negative cursor", State{Cursor: -1}, false},
	}
	for _, tt := range tests {
		if got := tt.st.Valid(); got != tt.want {
			t.Errorf("%s: expected Valid()=%v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestSignalString(t *testing.T) {
	if Continue.String() != "CONTINUE" {
		t.Errorf("Expected CONTINUE, got %s", Continue.String())
	}
	if OK.String() != "OK" {
		t.Errorf("Expected OK, got %s", OK.String())
	}
}

func TestClassify(t *testing.T) {
	empty := State{}
	partial := stateOf("CRA")
	full := stateOf("CRANES")

	tests := []struct {
		name   string
		before State
		key    string
		want   Outcome
	}{
		{"letter typed", partial, "n", OutcomeTyped},
		{"letter on full row", full, "n", OutcomeIgnored},
		{"backspace erases", partial, KeyBackspace, OutcomeErased},
		{"backspace on empty row", empty, KeyBackspace, OutcomeIgnored},
		{"enter submits", full, KeyEnter, OutcomeSubmitted},
		{"enter on partial row", partial, KeyEnter, OutcomeIgnored},
		{"unknown key", partial, "Shift", OutcomeIgnored},
	}
	for _, tt := range tests {
		sig, after := Apply(KeyEvent{Key: tt.key}, tt.before)
		if got := Classify(tt.before, after, sig); got != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.name, tt.want, got)
		}
	}
}

func TestApplyOutOfRangeCursor(t *testing.T) {
	for _, cursor := range []int{-1, Length + 1} {
		before := State{Cursor: cursor}
		for _, key := range []string{"a", KeyBackspace, KeyEnter} {
			sig, after := Apply(KeyEvent{Key: key}, before)
			if sig != Continue || after != before {
				t.Errorf("cursor=%d key=%q: expected no-op CONTINUE, got %s %+v", cursor, key, sig, after)
			}
		}
	}
}
