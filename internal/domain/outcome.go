package domain

// Outcome is the state of a session after a day-end check.
type Outcome string

const (
	OutcomeContinue Outcome = "continue"
	OutcomeWin      Outcome = "win"
	OutcomeLoss     Outcome = "loss"
)

// Terminal reports whether the game is over.
func (o Outcome) Terminal() bool {
	return o == OutcomeWin || o == OutcomeLoss
}
