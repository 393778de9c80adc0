package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aldenjg/cornharvest/internal/eventlog"
	"github.com/aldenjg/cornharvest/internal/game"
	"github.com/aldenjg/cornharvest/internal/handler"
	"github.com/aldenjg/cornharvest/internal/logger"
	"github.com/aldenjg/cornharvest/internal/metrics"
	"github.com/aldenjg/cornharvest/internal/sse"
)

// Options configures the HTTP server
type Options struct {
	Port           int
	APIKey         string // empty disables auth
	TrustedProxies []string
	RateLimit      int
	RateWindow     time.Duration
}

// Server serves the farm API
type Server struct {
	httpServer *http.Server
}

// NewServer wires the router for the farm API
func NewServer(opts Options, svc game.Service, journal eventlog.Service, hub *sse.Hub) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, svc, journal, hub),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the route tree. A nil journal leaves the journal route out.
func NewRouter(opts Options, svc game.Service, journal eventlog.Service, hub *sse.Hub) http.Handler {
	r := chi.NewRouter()
	limiter := NewRateLimiter(opts.RateLimit, opts.RateWindow)

	if opts.APIKey == "" {
		logger.Warn(LogMsgAuthDisabled)
	}

	// Outermost first
	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(RateLimitMiddleware(opts.TrustedProxies, limiter))
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, limiter))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/events", sse.Handler(hub))

	sessions := handler.NewSessionHandler(svc)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog", handler.HandleCatalog())

		r.Post("/sessions", sessions.HandleCreate)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", sessions.HandleGet)
			r.Delete("/", sessions.HandleDelete)
			r.Post("/action", sessions.HandleSetAction)
			r.Post("/select", sessions.HandleSelect)
			r.Post("/execute", sessions.HandleExecute)
			r.Post("/cancel", sessions.HandleCancel)
			r.Post("/purchase", sessions.HandlePurchase)
			r.Post("/end-day", sessions.HandleEndDay)
			r.Get("/forecast", sessions.HandleForecast)
			if journal != nil {
				r.Get("/journal", handler.NewJournalHandler(journal).HandleJournal)
			}
		})
	})

	return r
}

// Start blocks serving HTTP until Stop
func (s *Server) Start() error {
	logger.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
