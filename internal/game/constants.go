package game

import "time"

// Session defaults
const (
	StartingMoney   = 500
	StartingDay     = 1
	MaxPurchaseQty  = 100
	PeacefulMessage = "The night was peaceful. Nothing happened to your farm!"
)

// Store defaults
const (
	DefaultSessionCacheSize = 1000
	DefaultSessionTTL       = 24 * time.Hour
)

// Log messages
const (
	LogMsgSessionCreated    = "Farm session created"
	LogMsgSessionDeleted    = "Farm session deleted"
	LogMsgActionSet         = "Pending action set"
	LogMsgActionExecuted    = "Action executed"
	LogMsgPurchaseCompleted = "Purchase completed"
	LogMsgDayEnded          = "Day ended"
	LogMsgGameOver          = "Game over"
	LogMsgNightFailed       = "Night processing failed"
	LogMsgPublishFailed     = "Failed to publish farm event"
	LogMsgSessionEvicted    = "Farm session evicted"
)

// Service log messages
const (
	LogMsgServiceShutdown = "Farm service shutting down"
	LogMsgSessionsPurged  = "Farm sessions purged"
)
