package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Inventory errors
	ErrMsgInsufficientQuantity = "insufficient quantity"
	ErrMsgInvalidQuantity      = "invalid quantity"
	ErrMsgUnknownItem          = "unknown item"

	// Shop errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgEmptyPurchase     = "nothing to purchase"

	// Action errors
	ErrMsgUnknownAction    = "unknown action"
	ErrMsgNoActionSelected = "no action selected"
	ErrMsgMissingSupplies  = "missing supplies"
	ErrMsgPlotOutOfRange   = "plot index out of range"

	// Session errors
	ErrMsgSessionNotFound = "session not found"
	ErrMsgGameOver        = "game is over"

	// Night engine errors
	ErrMsgRollOutOfRange = "roll outside every bucket"
	ErrMsgInvalidTables  = "invalid probability tables"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Inventory errors
	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)
	ErrInvalidQuantity      = errors.New(ErrMsgInvalidQuantity)
	ErrUnknownItem          = errors.New(ErrMsgUnknownItem)

	// Shop errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrEmptyPurchase     = errors.New(ErrMsgEmptyPurchase)

	// Action errors
	ErrUnknownAction    = errors.New(ErrMsgUnknownAction)
	ErrNoActionSelected = errors.New(ErrMsgNoActionSelected)
	ErrMissingSupplies  = errors.New(ErrMsgMissingSupplies)
	ErrPlotOutOfRange   = errors.New(ErrMsgPlotOutOfRange)

	// Session errors
	ErrSessionNotFound = errors.New(ErrMsgSessionNotFound)
	ErrGameOver        = errors.New(ErrMsgGameOver)

	// Night engine errors
	ErrRollOutOfRange = errors.New(ErrMsgRollOutOfRange)
	ErrInvalidTables  = errors.New(ErrMsgInvalidTables)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
