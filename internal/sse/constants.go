package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// KeepaliveInterval is how often to send keepalive pings
const KeepaliveInterval = 30 * time.Second

// Event types for SSE
const (
	EventTypeConnected     = "connected"
	EventTypeKeepalive     = "keepalive"
	EventTypeActionApplied = "farm.action_applied"
	EventTypeDayEnded      = "farm.day_ended"
	EventTypeGameOver      = "farm.game_over"
)

// Query parameters accepted by the stream handler
const (
	QueryParamTypes   = "types"
	QueryParamSession = "session"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgEventDropped       = "SSE broadcast buffer full, event dropped"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgInvalidPayload     = "Invalid farm event payload"
	LogMsgSubscriberReady    = "SSE subscriber registered for event types"
	LogMsgStreamUnsupported  = "SSE not supported"
)
