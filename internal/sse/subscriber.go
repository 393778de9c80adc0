package sse

import (
	"context"

	"github.com/aldenjg/cornharvest/internal/event"
	"github.com/aldenjg/cornharvest/internal/logger"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for the farm events players watch
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.ActionApplied, s.handleActionApplied)
	s.bus.Subscribe(event.DayEnded, s.handleDayEnded)
	s.bus.Subscribe(event.GameOver, s.handleGameOver)

	logger.Info(LogMsgSubscriberReady,
		"types", []string{
			string(event.ActionApplied),
			string(event.DayEnded),
			string(event.GameOver),
		})
}

func (s *Subscriber) handleActionApplied(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.ActionAppliedPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeActionApplied, p.SessionID, ActionPayload{
		SessionID: p.SessionID,
		Action:    p.Action,
		Applied:   p.Applied,
		Earned:    p.Earned,
		Money:     p.Money,
		Message:   p.Message,
	})
	return nil
}

func (s *Subscriber) handleDayEnded(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.DayEndedPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeDayEnded, p.SessionID, NightReportPayload{
		SessionID:   p.SessionID,
		Day:         p.Day,
		Lines:       p.Events,
		Peaceful:    p.Peaceful,
		Money:       p.Money,
		MoneyLost:   p.MoneyLost,
		Temperature: p.Temperature,
		Outcome:     p.Outcome,
	})

	logger.FromContext(ctx).Debug(LogMsgEventBroadcast,
		"event_type", EventTypeDayEnded,
		"session_id", p.SessionID,
		"day", p.Day)
	return nil
}

func (s *Subscriber) handleGameOver(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.GameOverPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeGameOver, p.SessionID, GameOverPayload{
		SessionID: p.SessionID,
		Outcome:   p.Outcome,
		Money:     p.Money,
		Days:      p.Day,
	})
	return nil
}
