// Package crop implements the growth automaton of a single farm plot.
package crop

import (
	"github.com/aldenjg/cornharvest/internal/domain"
	"github.com/aldenjg/cornharvest/internal/rng"
)

// Plot is one farmable cell. The zero value is an empty plot.
//
// Fields are unexported so every reset of stage and modifiers goes through
// the methods below and an Empty plot always has zero progress and no
// modifiers.
type Plot struct {
	stage      domain.Stage
	progress   int
	watered    bool
	fertilized bool
	protected  bool
	delayDays  int
	accelDays  int
	selected   bool
}

// View is a read-only copy of a plot for display and serialization.
type View struct {
	Stage            domain.Stage `json:"stage"`
	Progress         int          `json:"progress"`
	Watered          bool         `json:"watered"`
	Fertilized       bool         `json:"fertilized"`
	Protected        bool         `json:"protected"`
	DelayDays        int          `json:"growth_delay_days"`
	AccelerationDays int          `json:"growth_acceleration_days"`
	Selected         bool         `json:"selected"`
}

func (p *Plot) Stage() domain.Stage {
	if p.stage == "" {
		return domain.StageEmpty
	}
	return p.stage
}

func (p *Plot) Progress() int         { return p.progress }
func (p *Plot) Watered() bool         { return p.watered }
func (p *Plot) Fertilized() bool      { return p.fertilized }
func (p *Plot) Protected() bool       { return p.protected }
func (p *Plot) DelayDays() int        { return p.delayDays }
func (p *Plot) AccelerationDays() int { return p.accelDays }
func (p *Plot) Selected() bool        { return p.selected }
func (p *Plot) IsEmpty() bool         { return p.Stage() == domain.StageEmpty }
func (p *Plot) IsDead() bool          { return p.Stage() == domain.StageDead }
func (p *Plot) IsMature() bool        { return p.Stage() == domain.StageMature }
func (p *Plot) IsLive() bool          { return p.Stage().IsLive() }
func (p *Plot) SetSelected(on bool)   { p.selected = on }

// View copies the plot's state.
func (p *Plot) View() View {
	return View{
		Stage:            p.Stage(),
		Progress:         p.progress,
		Watered:          p.watered,
		Fertilized:       p.fertilized,
		Protected:        p.protected,
		DelayDays:        p.delayDays,
		AccelerationDays: p.accelDays,
		Selected:         p.selected,
	}
}

// Plant puts a seed in an empty plot. It reports false and changes nothing
// when the plot is not empty.
func (p *Plot) Plant() bool {
	if !p.IsEmpty() {
		return false
	}
	p.stage = domain.StageSeed
	p.progress = 0
	return true
}

func (p *Plot) Water() {
	p.watered = true
}

func (p *Plot) ApplyFertilizer() {
	p.fertilized = true
}

// ApplyBugKiller protects the crop from pests until it is harvested.
func (p *Plot) ApplyBugKiller() {
	p.protected = true
}

// Harvest clears a mature plot back to empty. Any other stage is left as is.
func (p *Plot) Harvest() bool {
	if !p.IsMature() {
		return false
	}
	p.Clear()
	return true
}

// AccelerateGrowth stacks days of doubled growth.
func (p *Plot) AccelerateGrowth(days int) {
	if days > 0 {
		p.accelDays += days
	}
}

// DelayGrowth stacks days of zero growth.
func (p *Plot) DelayGrowth(days int) {
	if days > 0 {
		p.delayDays += days
	}
}

// Destroy kills the crop. Modifiers stay until the plot is cleared.
func (p *Plot) Destroy() {
	p.stage = domain.StageDead
}

// Clear resets the plot to empty with every modifier removed. Selection is
// kept since it belongs to the player, not the crop.
func (p *Plot) Clear() {
	*p = Plot{stage: domain.StageEmpty, selected: p.selected}
}

// Grow runs the nightly tick in place.
func (p *Plot) Grow(src rng.Source) {
	*p = Tick(*p, src)
}
