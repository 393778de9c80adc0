package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldenjg/cornharvest/internal/action"
	"github.com/aldenjg/cornharvest/internal/crop"
	"github.com/aldenjg/cornharvest/internal/domain"
	"github.com/aldenjg/cornharvest/internal/rng"
)

// quietNight scripts a night with no event, no disaster and a 22°C morning.
var quietNight = []int{50, 50, 50, 0, 2}

func newScripted(t *testing.T, rules domain.Rules) (*Session, *rng.Sequence) {
	t.Helper()
	seq := rng.NewSequence(50, 0, 2)
	s, err := NewSession(Options{Source: seq, Rules: rules})
	require.NoError(t, err)
	require.Equal(t, 0, seq.Remaining())
	return s, seq
}

func act(t *testing.T, s *Session, kind domain.ActionKind, plots ...int) action.Result {
	t.Helper()
	require.NoError(t, s.SetAction(kind))
	require.NoError(t, s.Select(plots...))
	res, err := s.Execute()
	require.NoError(t, err)
	return res
}

func TestNewSessionDefaults(t *testing.T) {
	s, _ := newScripted(t, domain.Rules{})
	snap := s.Snapshot()

	assert.NotEmpty(t, snap.ID)
	assert.Equal(t, 1, snap.Day)
	assert.Equal(t, 500, snap.Money)
	assert.Equal(t, 22, snap.Temperature)
	assert.Len(t, snap.Plots, 16)
	assert.Equal(t, map[domain.ItemKind]int{
		domain.ItemSeed:          10,
		domain.ItemFertilizer:    3,
		domain.ItemBugKiller:     2,
		domain.ItemFarmHelper:    0,
		domain.ItemSecurityFence: 0,
	}, snap.Inventory)
	assert.Equal(t, domain.ActionNone, snap.PendingAction)
	assert.Equal(t, "None", snap.PendingActionName)
	assert.Equal(t, domain.OutcomeContinue, snap.Outcome)
}

func TestPlantWaterSleepScenario(t *testing.T) {
	s, seq := newScripted(t, domain.Rules{})

	res := act(t, s, domain.ActionPlant, 0, 1, 2, 3)
	assert.Equal(t, "Planted 4 corn seeds.", res.Message())
	assert.Equal(t, 6, s.Snapshot().Inventory[domain.ItemSeed])
	assert.Equal(t, domain.ActionNone, s.Pending())

	res = act(t, s, domain.ActionWater, 0, 1, 2, 3)
	assert.Equal(t, "Watered 4 crops.", res.Message())

	seq.Push(quietNight...)
	report, err := s.EndDay()
	require.NoError(t, err)
	assert.Equal(t, 0, seq.Remaining(), "watered plots draw nothing")

	assert.True(t, report.Peaceful)
	assert.Equal(t, []string{PeacefulMessage}, report.Lines())
	assert.Equal(t, 2, report.Day)
	assert.Equal(t, domain.OutcomeContinue, report.Outcome)
	assert.Equal(t, 500, report.Money)

	for i, v := range s.Snapshot().Plots {
		if i < 4 {
			assert.Equal(t, domain.StageSeed, v.Stage)
			assert.Equal(t, 10, v.Progress)
			assert.False(t, v.Watered)
		} else {
			assert.Equal(t, domain.StageEmpty, v.Stage)
		}
	}
}

func TestUnwateredPlotCanDie(t *testing.T) {
	s, seq := newScripted(t, domain.Rules{})
	act(t, s, domain.ActionPlant, 0)

	seq.Push(quietNight...)
	seq.Push(39)
	report, err := s.EndDay()
	require.NoError(t, err)
	assert.Equal(t, domain.StageDead, s.Snapshot().Plots[0].Stage)
	assert.Equal(t, domain.OutcomeContinue, report.Outcome, "money still buys seeds")
}

func TestSetActionPrecheck(t *testing.T) {
	s, _ := newScripted(t, domain.Rules{})
	s.inv.Clear()

	err := s.SetAction(domain.ActionPlant)
	assert.ErrorIs(t, err, domain.ErrMissingSupplies)
	assert.ErrorContains(t, err, "You don't have any seeds to plant!")
	assert.Equal(t, domain.ActionNone, s.Pending())

	assert.NoError(t, s.SetAction(domain.ActionHarvest))
	assert.ErrorIs(t, s.SetAction("dance"), domain.ErrUnknownAction)
}

func TestExecuteWithoutAction(t *testing.T) {
	s, _ := newScripted(t, domain.Rules{})
	_, err := s.Execute()
	assert.ErrorIs(t, err, domain.ErrNoActionSelected)
}

func TestExecuteNothingAppliedKeepsPending(t *testing.T) {
	s, _ := newScripted(t, domain.Rules{})
	res := act(t, s, domain.ActionHarvest, 0, 1)
	assert.Equal(t, action.MsgNoValidTiles, res.Message())
	assert.Equal(t, domain.ActionHarvest, s.Pending())
	assert.Empty(t, s.farm.Selected())
}

func TestHarvestBanksMoney(t *testing.T) {
	s, _ := newScripted(t, domain.Rules{})
	for _, i := range []int{2, 5} {
		p, err := s.farm.At(i)
		require.NoError(t, err)
		p.Plant()
		for !p.IsMature() {
			p.Water()
			p.Grow(rng.NewSequence())
		}
	}

	res := act(t, s, domain.ActionHarvest, 2, 5, 6)
	assert.Equal(t, "Harvested 2 crops for $60.", res.Message())
	assert.Equal(t, 560, s.Money())
}

func TestCancelAction(t *testing.T) {
	s, _ := newScripted(t, domain.Rules{})
	require.NoError(t, s.SetAction(domain.ActionWater))
	require.NoError(t, s.Select(1, 2))

	s.CancelAction()
	assert.Equal(t, domain.ActionNone, s.Pending())
	assert.Empty(t, s.farm.Selected())
}

func TestSelectOutOfRange(t *testing.T) {
	s, _ := newScripted(t, domain.Rules{})
	assert.ErrorIs(t, s.Select(0, 16), domain.ErrPlotOutOfRange)
	assert.Empty(t, s.farm.Selected())
}

func TestPurchase(t *testing.T) {
	tests := []struct {
		name      string
		order     map[domain.ItemKind]int
		wantErr   error
		wantSpent int
	}{
		{"seeds and fertilizer", map[domain.ItemKind]int{domain.ItemSeed: 5, domain.ItemFertilizer: 2}, nil, 100},
		{"everything affordable", map[domain.ItemKind]int{domain.ItemSeed: 50}, nil, 500},
		{"empty order", map[domain.ItemKind]int{domain.ItemSeed: 0}, domain.ErrEmptyPurchase, 0},
		{"nil order", nil, domain.ErrEmptyPurchase, 0},
		{"too many", map[domain.ItemKind]int{domain.ItemSeed: 101}, domain.ErrInvalidQuantity, 0},
		{"negative", map[domain.ItemKind]int{domain.ItemSeed: -1}, domain.ErrInvalidQuantity, 0},
		{"unknown item", map[domain.ItemKind]int{"tractor": 1}, domain.ErrUnknownItem, 0},
		{"over budget", map[domain.ItemKind]int{domain.ItemSecurityFence: 3}, domain.ErrInsufficientFunds, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newScripted(t, domain.Rules{})
			before := s.Snapshot()

			spent, err := s.Purchase(tt.order)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, before.Money, s.Money())
				assert.Equal(t, before.Inventory, s.Snapshot().Inventory)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantSpent, spent)
			assert.Equal(t, 500-tt.wantSpent, s.Money())
			for kind, qty := range tt.order {
				assert.Equal(t, before.Inventory[kind]+qty, s.Snapshot().Inventory[kind])
			}
		})
	}
}

func TestEndDayOutcomes(t *testing.T) {
	t.Run("win", func(t *testing.T) {
		s, seq := newScripted(t, domain.Rules{})
		s.money = 5000
		seq.Push(quietNight...)
		report, err := s.EndDay()
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeWin, report.Outcome)
	})

	t.Run("broke with a barren field", func(t *testing.T) {
		s, seq := newScripted(t, domain.Rules{})
		s.money = 5
		seq.Push(quietNight...)
		report, err := s.EndDay()
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeLoss, report.Outcome)
		assert.Equal(t, 2, report.Day)

		_, err = s.EndDay()
		assert.ErrorIs(t, err, domain.ErrGameOver)
		assert.ErrorIs(t, s.SetAction(domain.ActionWater), domain.ErrGameOver)
		assert.ErrorIs(t, s.Select(0), domain.ErrGameOver)
		_, err = s.Purchase(map[domain.ItemKind]int{domain.ItemSeed: 1})
		assert.ErrorIs(t, err, domain.ErrGameOver)
		_, err = s.Execute()
		assert.ErrorIs(t, err, domain.ErrGameOver)
	})

	t.Run("broke but still growing", func(t *testing.T) {
		s, seq := newScripted(t, domain.Rules{})
		act(t, s, domain.ActionPlant, 0)
		act(t, s, domain.ActionWater, 0)
		s.money = 5
		seq.Push(quietNight...)
		report, err := s.EndDay()
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeContinue, report.Outcome)
	})
}

func TestTornadoNight(t *testing.T) {
	s, seq := newScripted(t, domain.Rules{})
	act(t, s, domain.ActionPlant, 0, 1)
	act(t, s, domain.ActionWater, 0, 1)

	seq.Push(50, 9, 50, 0, 2)
	report, err := s.EndDay()
	require.NoError(t, err)
	assert.Equal(t, []string{"Tornado! All crops and inventory were lost!"}, report.Events)
	assert.False(t, report.Peaceful)

	snap := s.Snapshot()
	for _, v := range snap.Plots {
		assert.Equal(t, crop.View{Stage: domain.StageEmpty}, v)
	}
	assert.Equal(t, 0, snap.InventoryValue)
	assert.Equal(t, domain.OutcomeContinue, report.Outcome)
}

func TestRobberyMoneyRule(t *testing.T) {
	tests := []struct {
		name      string
		rules     domain.Rules
		wantMoney int
		wantLost  int
	}{
		{"inventory only", domain.Rules{}, 500, 0},
		{"takes money", domain.Rules{RobberyTakesMoney: true}, 250, 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, seq := newScripted(t, tt.rules)
			seq.Push(10, 40, 50, 50, 0, 2)
			report, err := s.EndDay()
			require.NoError(t, err)
			assert.Equal(t, tt.wantMoney, report.Money)
			assert.Equal(t, tt.wantLost, report.MoneyLost)
			assert.Equal(t, 5, s.Snapshot().Inventory[domain.ItemSeed])
		})
	}
}

func TestDroughtBlocksWateringRule(t *testing.T) {
	s, seq := newScripted(t, domain.Rules{DroughtBlocksWatering: true})
	act(t, s, domain.ActionPlant, 0)
	act(t, s, domain.ActionWater, 0)

	seq.Push(50, 4, 50, 0, 2)
	report, err := s.EndDay()
	require.NoError(t, err)
	assert.Contains(t, report.Events, "Drought has started! No water available for 2 days.")
	assert.True(t, s.Snapshot().DroughtActive)

	res := act(t, s, domain.ActionWater, 0)
	assert.True(t, res.Blocked)
	assert.Equal(t, 0, res.Applied)
	assert.False(t, s.Snapshot().Plots[0].Watered)
}

func TestDroughtIsCosmeticByDefault(t *testing.T) {
	s, seq := newScripted(t, domain.Rules{})
	act(t, s, domain.ActionPlant, 0)
	act(t, s, domain.ActionWater, 0)
	seq.Push(50, 4, 50, 0, 2)
	_, err := s.EndDay()
	require.NoError(t, err)

	res := act(t, s, domain.ActionWater, 0)
	assert.Equal(t, 1, res.Applied)
}

func TestNightFailureLeavesDay(t *testing.T) {
	s, seq := newScripted(t, domain.Rules{})
	act(t, s, domain.ActionPlant, 0)
	act(t, s, domain.ActionWater, 0)

	seq.Push(100)
	_, err := s.EndDay()
	assert.ErrorIs(t, err, domain.ErrRollOutOfRange)
	assert.Equal(t, 1, s.Day())
	assert.Equal(t, 0, s.Snapshot().Plots[0].Progress, "growth did not run")

	seq.Push(quietNight...)
	report, err := s.EndDay()
	require.NoError(t, err)
	assert.Equal(t, 2, report.Day)
	assert.Equal(t, 10, s.Snapshot().Plots[0].Progress)
}

func TestForecast(t *testing.T) {
	s, _ := newScripted(t, domain.Rules{})
	lines := s.Forecast()
	assert.Equal(t, "Weather:", lines[0])
	assert.Contains(t, lines, "- Tornado: 1%")
}

func TestSeededSessionsReplay(t *testing.T) {
	play := func() []*Snapshot {
		s, err := NewSession(Options{Seed: 99})
		require.NoError(t, err)
		var snaps []*Snapshot
		for day := 0; day < 15 && !s.Outcome().Terminal(); day++ {
			if s.inv.Has(domain.ItemSeed) {
				_ = s.SetAction(domain.ActionPlant)
				_ = s.Select(0, 1, 2, 3, 4, 5)
				_, _ = s.Execute()
			}
			require.NoError(t, s.SetAction(domain.ActionWater))
			require.NoError(t, s.Select(0, 1, 2, 3, 4, 5))
			_, err := s.Execute()
			require.NoError(t, err)
			require.NoError(t, s.SetAction(domain.ActionHarvest))
			require.NoError(t, s.Select(0, 1, 2, 3, 4, 5))
			_, err = s.Execute()
			require.NoError(t, err)
			s.CancelAction()

			_, err = s.EndDay()
			require.NoError(t, err)
			snap := s.Snapshot()
			snap.ID = ""
			snaps = append(snaps, snap)
		}
		return snaps
	}

	assert.Equal(t, play(), play())
}
