package game

import "github.com/lixenwraith/wordrow/row"

// Feedback reacts to the outcome of each reducer step
// audio.SoundManager satisfies it
type Feedback interface {
	PlayOutcome(o row.Outcome)
}

type silent struct{}

func (silent) PlayOutcome(row.Outcome) {}
