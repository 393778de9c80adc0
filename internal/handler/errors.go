package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingSessionID      = "Missing session ID"
	ErrMsgInvalidSessionID      = "Invalid session ID"
	ErrMsgInvalidLimit          = "limit must be a positive integer"
)

// Query parameters
const (
	QueryParamLimit = "limit"
)

// Operation names used in logs
const (
	OpCreateSession = "Create session"
	OpGetSession    = "Get session"
	OpDeleteSession = "Delete session"
	OpSetAction     = "Set action"
	OpSelectPlots   = "Select plots"
	OpExecute       = "Execute action"
	OpCancel        = "Cancel action"
	OpPurchase      = "Purchase"
	OpEndDay        = "End day"
	OpForecast      = "Forecast"
	OpJournal       = "Journal"
)

// Success messages
const (
	MsgSessionDeleted = "Session deleted"
	MsgActionCleared  = "Action cancelled"
)
