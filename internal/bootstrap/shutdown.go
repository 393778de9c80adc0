package bootstrap

import (
	"context"
	"log/slog"

	"github.com/aldenjg/cornharvest/internal/event"
	"github.com/aldenjg/cornharvest/internal/game"
	"github.com/aldenjg/cornharvest/internal/scheduler"
	"github.com/aldenjg/cornharvest/internal/server"
	"github.com/aldenjg/cornharvest/internal/sse"
	"github.com/aldenjg/cornharvest/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             *server.Server
	GameService        game.Service
	Hub                *sse.Hub
	Scheduler          *scheduler.Scheduler
	WorkerPool         *worker.Pool
	ResilientPublisher *event.ResilientPublisher
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Game service (drop live sessions)
// 3. SSE hub (disconnect streams)
// 4. Scheduler and worker pool (cancel housekeeping)
// 5. Event publisher (flush pending retries)
//
// Errors are logged and never stop the sequence. Nil components are skipped.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.GameService != nil {
		shutdownService(ctx, ServiceNameGame, components.GameService)
	}

	if components.Hub != nil {
		components.Hub.Stop()
	}

	if components.Scheduler != nil || components.WorkerPool != nil {
		slog.Info(LogMsgStoppingBackgroundJobs)
	}
	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}

type shutdownableService interface {
	Shutdown(context.Context) error
}

func shutdownService(ctx context.Context, name string, service shutdownableService) {
	if err := service.Shutdown(ctx); err != nil {
		slog.Error(name+LogMsgServiceShutdownFailed, "error", err)
	}
}
