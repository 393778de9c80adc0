package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ActionKind is the pending action a player applies to selected plots.
type ActionKind string

const (
	ActionNone      ActionKind = ""
	ActionPlant     ActionKind = "plant"
	ActionWater     ActionKind = "water"
	ActionHarvest   ActionKind = "harvest"
	ActionFertilize ActionKind = "fertilize"
	ActionProtect   ActionKind = "protect"
)

var titleCaser = cases.Title(language.English)

// Valid reports whether a is one of the five playable actions.
func (a ActionKind) Valid() bool {
	switch a {
	case ActionPlant, ActionWater, ActionHarvest, ActionFertilize, ActionProtect:
		return true
	}
	return false
}

// DisplayName is used on status lines, "None" when nothing is pending.
func (a ActionKind) DisplayName() string {
	if a == ActionNone {
		return "None"
	}
	return titleCaser.String(string(a))
}

// ParseActionKind accepts the action name case-insensitively.
func ParseActionKind(s string) (ActionKind, error) {
	a := ActionKind(strings.ToLower(strings.TrimSpace(s)))
	if !a.Valid() {
		return ActionNone, fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}
	return a, nil
}
