package crop

import (
	"github.com/aldenjg/cornharvest/internal/domain"
	"github.com/aldenjg/cornharvest/internal/rng"
)

// Tick returns the plot after one night of growth. It draws from src only
// when the crop was left unwatered.
//
// Order: death check, water reset, growth amount (fertilizer, then
// acceleration doubling, then delay zeroing), progress, stage, fertilizer
// reset. When acceleration and delay are both active the gain is zero and
// both counters still decrement.
func Tick(p Plot, src rng.Source) Plot {
	if !p.IsLive() {
		return p
	}

	if !p.watered && src.IntN(100) < DeathChancePercent {
		p.stage = domain.StageDead
		return p
	}
	p.watered = false

	amount := BaseGrowth
	if p.fertilized {
		amount = FertilizedGrowth
	}
	if p.accelDays > 0 {
		amount *= AccelerationFactor
		p.accelDays--
	}
	if p.delayDays > 0 {
		amount = 0
		p.delayDays--
	}

	p.progress += amount
	p.stage = stageFor(p.stage, p.progress)
	p.fertilized = false
	return p
}

// stageFor only ever advances the stage.
func stageFor(current domain.Stage, progress int) domain.Stage {
	switch {
	case progress >= MatureThreshold:
		return domain.StageMature
	case progress >= GrowingThreshold:
		return domain.StageGrowing
	case progress >= SeedlingThreshold:
		return domain.StageSeedling
	default:
		return current
	}
}
