// Package server assembles the HTTP API: routing, middleware and graceful
// shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	reporthandler "github.com/availlac/releve/internal/domain/report/handler"
	"github.com/availlac/releve/pkg/config"
)

// WebAPI is the HTTP front of the analysis service.
type WebAPI struct {
	router *chi.Mux
	logger *slog.Logger
	server *http.Server
	cfg    *config.Config
}

// NewWebAPI wires the router, middleware and handlers.
func NewWebAPI(cfg *config.Config, h *reporthandler.Handler, logger *slog.Logger) *WebAPI {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(requestLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(rateLimit(cfg.Server.RateLimitPerSecond, cfg.Server.RateLimitBurst))
	router.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler)

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if cfg.Observability.MetricsEnabled {
		router.Handle("/metrics", promhttp.Handler())
	}

	router.Route("/v1", h.Routes)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	return &WebAPI{
		router: router,
		logger: logger,
		cfg:    cfg,
		server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Start runs the server until it fails or a shutdown signal arrives.
func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info("starting server", slog.String("addr", w.server.Addr))
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info("shutdown initiated")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error("graceful shutdown failed", slog.Any("error", err))
			err = w.server.Close()
		}
		if err != nil {
			return err
		}
	}

	return nil
}
