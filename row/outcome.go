package row

// Outcome classifies what a single Apply call did to the row
type Outcome uint8

const (
	OutcomeIgnored   Outcome = iota // State unchanged, row not submitted
	OutcomeTyped                    // Letter written, cursor advanced
	OutcomeErased                   // Cell cleared, cursor retreated
	OutcomeSubmitted                // Enter on a full row
)

var outcomeNames = [...]string{
	OutcomeIgnored:   "ignored",
	OutcomeTyped:     "typed",
	OutcomeErased:    "erased",
	OutcomeSubmitted: "submitted",
}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}

// Classify derives the outcome of a step from the states around it
func Classify(before, after State, sig Signal) Outcome {
	switch {
	case sig == OK:
		return OutcomeSubmitted
	case after.Cursor > before.Cursor:
		return OutcomeTyped
	case after.Cursor < before.Cursor:
		return OutcomeErased
	}
	return OutcomeIgnored
}
