package sse

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldenjg/cornharvest/internal/domain"
	"github.com/aldenjg/cornharvest/internal/event"
)

func TestSubscriberForwardsFarmEvents(t *testing.T) {
	h := NewHub()
	h.Start()
	defer h.Stop()

	bus := event.NewMemoryBus()
	NewSubscriber(h, bus).Subscribe()

	c := h.Register(nil, "")
	waitForClients(t, h, 1)
	ctx := context.Background()

	require.NoError(t, bus.Publish(ctx, event.NewActionAppliedEvent("s1", domain.ActionWater, 2, 0, 500, "Watered 2 crops.")))
	got := receive(t, c)
	assert.Equal(t, EventTypeActionApplied, got.Type)
	assert.Equal(t, "Watered 2 crops.", got.Payload.(ActionPayload).Message)

	require.NoError(t, bus.Publish(ctx, event.NewDayEndedEvent(event.DayEndedPayloadV1{
		SessionID: "s1",
		Day:       3,
		Events:    []string{"Flood! 2 crops were destroyed."},
		Money:     480,
		Outcome:   "continue",
	})))
	got = receive(t, c)
	assert.Equal(t, EventTypeDayEnded, got.Type)
	assert.Equal(t, "s1", got.SessionID)
	report := got.Payload.(NightReportPayload)
	assert.Equal(t, 3, report.Day)
	assert.Equal(t, []string{"Flood! 2 crops were destroyed."}, report.Lines)

	require.NoError(t, bus.Publish(ctx, event.NewGameOverEvent("s1", domain.OutcomeLoss, 4, 9)))
	got = receive(t, c)
	assert.Equal(t, GameOverPayload{SessionID: "s1", Outcome: "loss", Money: 4, Days: 9}, got.Payload)
}

func TestSubscriberIgnoresBadPayload(t *testing.T) {
	h := NewHub()
	s := NewSubscriber(h, event.NewMemoryBus())

	err := s.handleGameOver(context.Background(), event.Event{Type: event.GameOver, Payload: 12})
	assert.NoError(t, err)
}
