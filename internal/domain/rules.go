package domain

// Rules toggles gameplay variants that the classic game leaves ambiguous.
// The zero value reproduces the classic behavior.
type Rules struct {
	// DroughtBlocksWatering skips Water on every plot while a drought is active.
	DroughtBlocksWatering bool `json:"drought_blocks_watering"`
	// RobberyTakesMoney removes the robbery percentage from positive money too.
	RobberyTakesMoney bool `json:"robbery_takes_money"`
}
