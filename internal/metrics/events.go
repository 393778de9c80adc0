package metrics

import (
	"context"

	"github.com/aldenjg/cornharvest/internal/event"
	"github.com/aldenjg/cornharvest/internal/logger"
	"github.com/aldenjg/cornharvest/internal/night"
)

// EventMetricsCollector subscribes to farm events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every farm event type
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.SessionStarted,
		event.ActionApplied,
		event.ItemsPurchased,
		event.DayEnded,
		event.GameOver,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics. Undecodable payloads
// are counted as handler errors but never fail the publish.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.SessionStarted:
		SessionsStarted.Inc()

	case event.ActionApplied:
		err = recordAction(evt)

	case event.ItemsPurchased:
		err = recordPurchase(evt)

	case event.DayEnded:
		err = recordDay(evt)

	case event.GameOver:
		err = recordGameOver(evt)
	}

	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func recordAction(evt event.Event) error {
	p, err := event.DecodePayload[event.ActionAppliedPayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	if p.Applied == 0 {
		return nil
	}
	ActionsApplied.WithLabelValues(p.Action).Inc()
	PlotsAffected.WithLabelValues(p.Action).Add(float64(p.Applied))
	if p.Earned > 0 {
		HarvestIncome.Add(float64(p.Earned))
	}
	return nil
}

func recordPurchase(evt event.Event) error {
	p, err := event.DecodePayload[event.ItemsPurchasedPayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	for item, n := range p.Items {
		ItemsBought.WithLabelValues(item).Add(float64(n))
	}
	MoneySpent.Add(float64(p.Spent))
	return nil
}

func recordDay(evt event.Event) error {
	p, err := event.DecodePayload[event.DayEndedPayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	DaysAdvanced.Inc()
	for _, kind := range []string{p.NightEvent, p.Disaster} {
		if kind != "" && kind != string(night.KindNothing) {
			NightEvents.WithLabelValues(kind).Inc()
		}
	}
	if p.Destroyed > 0 {
		PlotsDestroyed.Add(float64(p.Destroyed))
	}
	if p.MoneyLost > 0 {
		MoneyStolen.Add(float64(p.MoneyLost))
	}
	return nil
}

func recordGameOver(evt event.Event) error {
	p, err := event.DecodePayload[event.GameOverPayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	GameOutcomes.WithLabelValues(p.Outcome).Inc()
	DaysSurvived.Observe(float64(p.Day))
	return nil
}
