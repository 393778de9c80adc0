// Package outcome decides whether a session has been won or lost.
package outcome

import "github.com/aldenjg/cornharvest/internal/domain"

const (
	WinningMoney  = 5000
	BankruptMoney = -500
)

// Field is the part of a farm the loss check reads.
type Field interface {
	AllBarren() bool
}

// IsWin reports whether money has reached the goal.
func IsWin(money int) bool {
	return money >= WinningMoney
}

// IsLoss reports bankruptcy, or being unable to afford a seed with nothing
// left growing.
func IsLoss(money int, field Field) bool {
	if money <= BankruptMoney {
		return true
	}
	return money < domain.ItemSeed.Price() && field.AllBarren()
}

// Evaluate checks win before loss, so a state satisfying both is a win.
func Evaluate(money int, field Field) domain.Outcome {
	switch {
	case IsWin(money):
		return domain.OutcomeWin
	case IsLoss(money, field):
		return domain.OutcomeLoss
	default:
		return domain.OutcomeContinue
	}
}
