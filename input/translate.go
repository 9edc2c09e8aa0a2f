package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/wordrow/row"
)

// Action is what the host should do with a terminal event
type Action uint8

const (
	ActionNone   Action = iota // Event carries nothing for the row (mouse, paste, focus)
	ActionKey                  // Forward Event to the reducer
	ActionQuit                 // Esc, Ctrl+C
	ActionResize               // Terminal size changed
)

// Result pairs an action with the reducer event it carries
type Result struct {
	Action Action
	Event  row.KeyEvent
}

// Process maps a tcell event to a host action
func Process(ev tcell.Event) Result {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if IsQuit(ev) {
			return Result{Action: ActionQuit}
		}
		return Result{Action: ActionKey, Event: Translate(ev)}
	case *tcell.EventResize:
		return Result{Action: ActionResize}
	}
	return Result{Action: ActionNone}
}

// IsQuit reports whether the key ends the session
func IsQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC
}

// Translate converts a tcell key into the reducer's key event
// Plain runes pass through as one-character strings, Backspace and Enter
// become their tokens, everything else uses tcell's key name and is
// therefore ignored by the reducer
func Translate(ev *tcell.EventKey) row.KeyEvent {
	switch ev.Key() {
	case tcell.KeyRune:
		// Alt+letter is a chord, not a letter
		if ev.Modifiers()&(tcell.ModAlt|tcell.ModCtrl|tcell.ModMeta) != 0 {
			return row.KeyEvent{Key: ev.Name()}
		}
		return row.KeyEvent{Key: string(ev.Rune())}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return row.KeyEvent{Key: row.KeyBackspace}
	case tcell.KeyEnter:
		return row.KeyEvent{Key: row.KeyEnter}
	}
	return row.KeyEvent{Key: ev.Name()}
}
