package event

import (
	"time"

	"github.com/aldenjg/cornharvest/internal/domain"
)

// Farm event types
const (
	SessionStarted Type = domain.EventTypeSessionStarted
	ActionApplied  Type = domain.EventTypeActionApplied
	ItemsPurchased Type = domain.EventTypeItemsPurchased
	DayEnded       Type = domain.EventTypeDayEnded
	GameOver       Type = domain.EventTypeGameOver
)

// SessionStartedPayloadV1 is published when a farm session is created
type SessionStartedPayloadV1 struct {
	SessionID   string `json:"session_id"`
	Seed        int64  `json:"seed"`
	Money       int    `json:"money"`
	Temperature int    `json:"temperature"`
	Timestamp   int64  `json:"timestamp"`
}

// ActionAppliedPayloadV1 is published after Execute
type ActionAppliedPayloadV1 struct {
	SessionID string `json:"session_id"`
	Action    string `json:"action"`
	Applied   int    `json:"applied"`
	Earned    int    `json:"earned"`
	Money     int    `json:"money"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

// ItemsPurchasedPayloadV1 is published after a shop order
type ItemsPurchasedPayloadV1 struct {
	SessionID string         `json:"session_id"`
	Items     map[string]int `json:"items"`
	Spent     int            `json:"spent"`
	Money     int            `json:"money"`
	Timestamp int64          `json:"timestamp"`
}

// DayEndedPayloadV1 is published after the night and growth pass
type DayEndedPayloadV1 struct {
	SessionID   string   `json:"session_id"`
	Day         int      `json:"day"`
	Events      []string `json:"events"`
	Peaceful    bool     `json:"peaceful"`
	NightEvent  string   `json:"night_event"`
	Disaster    string   `json:"disaster"`
	Destroyed   int      `json:"destroyed"`
	MoneyLost   int      `json:"money_lost"`
	Money       int      `json:"money"`
	Temperature int      `json:"temperature"`
	Outcome     string   `json:"outcome"`
	Timestamp   int64    `json:"timestamp"`
}

// GameOverPayloadV1 is published once when a session is won or lost
type GameOverPayloadV1 struct {
	SessionID string `json:"session_id"`
	Outcome   string `json:"outcome"`
	Money     int    `json:"money"`
	Day       int    `json:"day"`
	Timestamp int64  `json:"timestamp"`
}

func sessionMetadata(sessionID string) map[string]any {
	return map[string]any{MetadataKeySessionID: sessionID}
}

// NewSessionStartedEvent creates a session started event
func NewSessionStartedEvent(sessionID string, seed int64, money, temperature int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SessionStarted,
		Payload: SessionStartedPayloadV1{
			SessionID:   sessionID,
			Seed:        seed,
			Money:       money,
			Temperature: temperature,
			Timestamp:   time.Now().Unix(),
		},
		Metadata: sessionMetadata(sessionID),
	}
}

// NewActionAppliedEvent creates an action applied event
func NewActionAppliedEvent(sessionID string, action domain.ActionKind, applied, earned, money int, message string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ActionApplied,
		Payload: ActionAppliedPayloadV1{
			SessionID: sessionID,
			Action:    string(action),
			Applied:   applied,
			Earned:    earned,
			Money:     money,
			Message:   message,
			Timestamp: time.Now().Unix(),
		},
		Metadata: sessionMetadata(sessionID),
	}
}

// NewItemsPurchasedEvent creates an items purchased event
func NewItemsPurchasedEvent(sessionID string, order map[domain.ItemKind]int, spent, money int) Event {
	items := make(map[string]int, len(order))
	for k, n := range order {
		if n > 0 {
			items[string(k)] = n
		}
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemsPurchased,
		Payload: ItemsPurchasedPayloadV1{
			SessionID: sessionID,
			Items:     items,
			Spent:     spent,
			Money:     money,
			Timestamp: time.Now().Unix(),
		},
		Metadata: sessionMetadata(sessionID),
	}
}

// NewDayEndedEvent creates a day ended event from the report fields
func NewDayEndedEvent(p DayEndedPayloadV1) Event {
	if p.Timestamp == 0 {
		p.Timestamp = time.Now().Unix()
	}
	if p.Events == nil {
		p.Events = []string{}
	}
	return Event{
		Version:  EventSchemaVersion,
		Type:     DayEnded,
		Payload:  p,
		Metadata: sessionMetadata(p.SessionID),
	}
}

// NewGameOverEvent creates a game over event
func NewGameOverEvent(sessionID string, outcome domain.Outcome, money, day int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    GameOver,
		Payload: GameOverPayloadV1{
			SessionID: sessionID,
			Outcome:   string(outcome),
			Money:     money,
			Day:       day,
			Timestamp: time.Now().Unix(),
		},
		Metadata: sessionMetadata(sessionID),
	}
}
