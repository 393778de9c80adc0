package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/aldenjg/cornharvest/internal/event"
	"github.com/aldenjg/cornharvest/internal/eventlog"
	"github.com/aldenjg/cornharvest/internal/metrics"
	"github.com/aldenjg/cornharvest/internal/sse"
)

// EventHandlerDependencies holds what the subscribers need.
type EventHandlerDependencies struct {
	EventBus event.Bus
	Hub      *sse.Hub
	Journal  eventlog.Service
}

// RegisterEventHandlers wires the metrics collector, the session journal and
// the SSE bridge onto the bus. Nil optional dependencies are skipped.
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.Journal != nil {
		if err := deps.Journal.Subscribe(deps.EventBus); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedSubscribeJournal, err)
		}
		slog.Info(LogMsgJournalSubscribed)
	}

	if deps.Hub != nil {
		sse.NewSubscriber(deps.Hub, deps.EventBus).Subscribe()
		slog.Info(LogMsgSSESubscriberRegistered)
	}

	return nil
}
