package domain

// Event type constants used for event bus subscriptions and SSE filtering.
//
// Event types follow the pattern: <entity>.<action> (e.g., "farm.day_ended")
const (
	// EventTypeSessionStarted is published when a new farm session is created
	EventTypeSessionStarted = "farm.session_started"

	// EventTypeActionApplied is published after a pending action runs over the selection
	EventTypeActionApplied = "farm.action_applied"

	// EventTypeItemsPurchased is published after a successful shop order
	EventTypeItemsPurchased = "farm.items_purchased"

	// EventTypeDayEnded is published after the night and growth pass of a day
	EventTypeDayEnded = "farm.day_ended"

	// EventTypeGameOver is published once when a session reaches a win or loss
	EventTypeGameOver = "farm.game_over"
)
