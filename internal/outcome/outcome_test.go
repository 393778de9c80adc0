package outcome

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aldenjg/cornharvest/internal/domain"
	"github.com/aldenjg/cornharvest/internal/farm"
)

type fieldStub bool

func (f fieldStub) AllBarren() bool { return bool(f) }

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		money  int
		barren bool
		want   domain.Outcome
	}{
		{"goal reached", 5000, false, domain.OutcomeWin},
		{"just short of goal", 4999, false, domain.OutcomeContinue},
		{"win beats barren field", 5000, true, domain.OutcomeWin},
		{"bankrupt", -500, false, domain.OutcomeLoss},
		{"in debt with live crops", -499, false, domain.OutcomeContinue},
		{"broke and barren", 5, true, domain.OutcomeLoss},
		{"exactly a seed left and barren", 10, true, domain.OutcomeContinue},
		{"broke with live crops", 5, false, domain.OutcomeContinue},
		{"in debt and barren", -10, true, domain.OutcomeLoss},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.money, fieldStub(tt.barren)))
		})
	}
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsWin(5000))
	assert.False(t, IsWin(4999))
	assert.True(t, IsLoss(-500, fieldStub(false)))
	assert.False(t, IsLoss(-499, fieldStub(false)))
}

func TestEvaluateWithFarm(t *testing.T) {
	f := farm.New(4)
	assert.Equal(t, domain.OutcomeLoss, Evaluate(0, f))

	p, err := f.At(2)
	assert.NoError(t, err)
	p.Plant()
	assert.Equal(t, domain.OutcomeContinue, Evaluate(0, f))

	p.Destroy()
	assert.Equal(t, domain.OutcomeLoss, Evaluate(0, f), "dead plots count as barren")
}
