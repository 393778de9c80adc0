// Package action applies a player's chosen action to the selected plots of a
// farm, spending inventory and earning money as it goes.
package action

import (
	"fmt"

	"github.com/aldenjg/cornharvest/internal/crop"
	"github.com/aldenjg/cornharvest/internal/domain"
	"github.com/aldenjg/cornharvest/internal/farm"
	"github.com/aldenjg/cornharvest/internal/inventory"
)

// Conditions carries day state that can veto an action.
type Conditions struct {
	WateringBlocked bool
}

// Result summarizes one pass over the selection.
type Result struct {
	Action    domain.ActionKind `json:"action"`
	Earned    int               `json:"earned"`
	Applied   int               `json:"applied"`
	Processed int               `json:"processed"`
	Blocked   bool              `json:"blocked,omitempty"`
}

// Message renders the result the way the status bar shows it.
func (r Result) Message() string {
	if r.Blocked {
		return MsgWateringBlocked
	}
	if r.Applied == 0 {
		return MsgNoValidTiles
	}
	switch r.Action {
	case domain.ActionPlant:
		return fmt.Sprintf(MsgPlantedFmt, r.Applied)
	case domain.ActionWater:
		return fmt.Sprintf(MsgWateredFmt, r.Applied)
	case domain.ActionHarvest:
		return fmt.Sprintf(MsgHarvestedFmt, r.Applied, r.Earned)
	case domain.ActionFertilize:
		return fmt.Sprintf(MsgFertilizedFmt, r.Applied)
	case domain.ActionProtect:
		return fmt.Sprintf(MsgProtectedFmt, r.Applied)
	}
	return MsgNoValidTiles
}

// supply is the item an action consumes per plot, if any.
func supply(kind domain.ActionKind) (domain.ItemKind, bool) {
	switch kind {
	case domain.ActionPlant:
		return domain.ItemSeed, true
	case domain.ActionFertilize:
		return domain.ItemFertilizer, true
	case domain.ActionProtect:
		return domain.ItemBugKiller, true
	}
	return "", false
}

// Precheck refuses an action the player holds no supplies for. Water and
// Harvest need nothing.
func Precheck(kind domain.ActionKind, inv *inventory.Inventory) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownAction, kind)
	}
	item, needs := supply(kind)
	if !needs || inv.Has(item) {
		return nil
	}
	return fmt.Errorf("%w: %s", domain.ErrMissingSupplies, missingMessage(kind))
}

func missingMessage(kind domain.ActionKind) string {
	switch kind {
	case domain.ActionPlant:
		return MsgNoSeeds
	case domain.ActionFertilize:
		return MsgNoFertilizer
	default:
		return MsgNoBugKiller
	}
}

// Apply runs kind over every selected plot in farm order. Plots that fail the
// action's precondition, or that cannot be paid for, are skipped. Every
// processed plot is deselected whether or not the action took.
func Apply(kind domain.ActionKind, f *farm.Farm, inv *inventory.Inventory, cond Conditions) (Result, error) {
	if !kind.Valid() {
		return Result{}, fmt.Errorf("%w: %q", domain.ErrUnknownAction, kind)
	}

	res := Result{Action: kind}
	if kind == domain.ActionWater && cond.WateringBlocked {
		res.Blocked = true
	}

	f.Each(func(_ int, p *crop.Plot) {
		if !p.Selected() {
			return
		}
		res.Processed++
		p.SetSelected(false)
		if res.Blocked {
			return
		}
		if applyOne(kind, p, inv, &res) {
			res.Applied++
		}
	})

	return res, nil
}

func applyOne(kind domain.ActionKind, p *crop.Plot, inv *inventory.Inventory, res *Result) bool {
	switch kind {
	case domain.ActionPlant:
		if !p.IsEmpty() || !inv.TryUse(domain.ItemSeed) {
			return false
		}
		return p.Plant()
	case domain.ActionWater:
		if !p.IsLive() {
			return false
		}
		p.Water()
	case domain.ActionHarvest:
		if !p.Harvest() {
			return false
		}
		res.Earned += HarvestValue
	case domain.ActionFertilize:
		if !p.IsLive() || !inv.TryUse(domain.ItemFertilizer) {
			return false
		}
		p.ApplyFertilizer()
	case domain.ActionProtect:
		if !p.IsLive() || !inv.TryUse(domain.ItemBugKiller) {
			return false
		}
		p.ApplyBugKiller()
	default:
		return false
	}
	return true
}
