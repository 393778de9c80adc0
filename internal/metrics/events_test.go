package metrics

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldenjg/cornharvest/internal/domain"
	"github.com/aldenjg/cornharvest/internal/event"
)

func TestCollectorRecordsFarmEvents(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))
	ctx := context.Background()

	started := testutil.ToFloat64(SessionsStarted)
	require.NoError(t, bus.Publish(ctx, event.NewSessionStartedEvent("s1", 1, 500, 22)))
	assert.Equal(t, started+1, testutil.ToFloat64(SessionsStarted))

	harvests := testutil.ToFloat64(ActionsApplied.WithLabelValues("harvest"))
	plots := testutil.ToFloat64(PlotsAffected.WithLabelValues("harvest"))
	income := testutil.ToFloat64(HarvestIncome)
	require.NoError(t, bus.Publish(ctx, event.NewActionAppliedEvent("s1", domain.ActionHarvest, 3, 90, 590, "Harvested 3 crops for $90.")))
	assert.Equal(t, harvests+1, testutil.ToFloat64(ActionsApplied.WithLabelValues("harvest")))
	assert.Equal(t, plots+3, testutil.ToFloat64(PlotsAffected.WithLabelValues("harvest")))
	assert.Equal(t, income+90, testutil.ToFloat64(HarvestIncome))

	seeds := testutil.ToFloat64(ItemsBought.WithLabelValues("seed"))
	spent := testutil.ToFloat64(MoneySpent)
	require.NoError(t, bus.Publish(ctx, event.NewItemsPurchasedEvent("s1", map[domain.ItemKind]int{domain.ItemSeed: 4}, 40, 550)))
	assert.Equal(t, seeds+4, testutil.ToFloat64(ItemsBought.WithLabelValues("seed")))
	assert.Equal(t, spent+40, testutil.ToFloat64(MoneySpent))

	days := testutil.ToFloat64(DaysAdvanced)
	robberies := testutil.ToFloat64(NightEvents.WithLabelValues("robbery"))
	floods := testutil.ToFloat64(NightEvents.WithLabelValues("flood"))
	destroyed := testutil.ToFloat64(PlotsDestroyed)
	stolen := testutil.ToFloat64(MoneyStolen)
	require.NoError(t, bus.Publish(ctx, event.NewDayEndedEvent(event.DayEndedPayloadV1{
		SessionID:  "s1",
		Day:        2,
		NightEvent: "robbery",
		Disaster:   "flood",
		Destroyed:  2,
		MoneyLost:  55,
	})))
	assert.Equal(t, days+1, testutil.ToFloat64(DaysAdvanced))
	assert.Equal(t, robberies+1, testutil.ToFloat64(NightEvents.WithLabelValues("robbery")))
	assert.Equal(t, floods+1, testutil.ToFloat64(NightEvents.WithLabelValues("flood")))
	assert.Equal(t, destroyed+2, testutil.ToFloat64(PlotsDestroyed))
	assert.Equal(t, stolen+55, testutil.ToFloat64(MoneyStolen))

	wins := testutil.ToFloat64(GameOutcomes.WithLabelValues("win"))
	require.NoError(t, bus.Publish(ctx, event.NewGameOverEvent("s1", domain.OutcomeWin, 5010, 40)))
	assert.Equal(t, wins+1, testutil.ToFloat64(GameOutcomes.WithLabelValues("win")))
}

func TestCollectorIgnoresQuietNights(t *testing.T) {
	c := NewEventMetricsCollector()
	nothing := testutil.ToFloat64(NightEvents.WithLabelValues("nothing"))

	err := c.HandleEvent(context.Background(), event.NewDayEndedEvent(event.DayEndedPayloadV1{
		SessionID:  "s2",
		NightEvent: "nothing",
		Disaster:   "nothing",
	}))
	require.NoError(t, err)
	assert.Equal(t, nothing, testutil.ToFloat64(NightEvents.WithLabelValues("nothing")))
}

func TestCollectorCountsBadPayloads(t *testing.T) {
	c := NewEventMetricsCollector()
	before := testutil.ToFloat64(EventHandlerErrors.WithLabelValues(string(event.GameOver)))

	err := c.HandleEvent(context.Background(), event.Event{Type: event.GameOver, Payload: "garbage"})
	require.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(EventHandlerErrors.WithLabelValues(string(event.GameOver))))
}
