package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/aldenjg/cornharvest/internal/bootstrap"
	"github.com/aldenjg/cornharvest/internal/config"
	"github.com/aldenjg/cornharvest/internal/domain"
	"github.com/aldenjg/cornharvest/internal/eventlog"
	"github.com/aldenjg/cornharvest/internal/game"
	"github.com/aldenjg/cornharvest/internal/server"
	"github.com/aldenjg/cornharvest/internal/sse"
	"github.com/aldenjg/cornharvest/internal/validation"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load reads .env, so it runs before the schema check
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	tables, err := bootstrap.LoadNightTables(cfg, validation.NewSchemaValidator())
	if err != nil {
		return err
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		return err
	}

	hub := sse.NewHub()
	hub.Start()

	journal := eventlog.NewService(eventlog.NewMemoryRepository(eventlog.MaxEntriesPerSession))

	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus: bus,
		Hub:      hub,
		Journal:  journal,
	}); err != nil {
		return err
	}

	pool, sched := bootstrap.StartBackgroundJobs(cfg, journal)

	gameService := game.NewService(game.ServiceConfig{
		Tables: tables,
		Rules: domain.Rules{
			DroughtBlocksWatering: cfg.DroughtBlocksWatering,
			RobberyTakesMoney:     cfg.RobberyTakesMoney,
		},
		FarmSize:  cfg.FarmSize,
		FixedSeed: cfg.RandomSeed,
		CacheSize: cfg.SessionCacheSize,
		TTL:       cfg.SessionTTL,
	}, publisher)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		RateLimit:      cfg.RateLimit,
		RateWindow:     cfg.RateWindow,
	}, gameService, journal, hub)

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-stop:
		slog.Info("Received shutdown signal", "signal", sig.String())
	case runErr = <-serveErr:
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:             srv,
		GameService:        gameService,
		Hub:                hub,
		Scheduler:          sched,
		WorkerPool:         pool,
		ResilientPublisher: publisher,
	})

	return runErr
}
