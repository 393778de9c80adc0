package action

// HarvestValue is paid for each mature plot harvested.
const HarvestValue = 30

// Player-facing messages
const (
	MsgNoSeeds         = "You don't have any seeds to plant!"
	MsgNoFertilizer    = "You don't have any fertilizer!"
	MsgNoBugKiller     = "You don't have any bug killer!"
	MsgPlantedFmt      = "Planted %d corn seeds."
	MsgWateredFmt      = "Watered %d crops."
	MsgHarvestedFmt    = "Harvested %d crops for $%d."
	MsgFertilizedFmt   = "Applied fertilizer to %d crops."
	MsgProtectedFmt    = "Protected %d crops from bugs."
	MsgNoValidTiles    = "No valid tiles selected for this action!"
	MsgWateringBlocked = "The drought has dried up the wells. No crops could be watered!"
)
