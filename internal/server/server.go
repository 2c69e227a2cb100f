package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	playersapp "github.com/Abhilekh0724/hoops-stats-service/internal/app/players"
	teamsapp "github.com/Abhilekh0724/hoops-stats-service/internal/app/teams"
	"github.com/Abhilekh0724/hoops-stats-service/internal/config"
	"github.com/Abhilekh0724/hoops-stats-service/internal/domain"
	apihttp "github.com/Abhilekh0724/hoops-stats-service/internal/http"
	"github.com/Abhilekh0724/hoops-stats-service/internal/http/handlers"
	"github.com/Abhilekh0724/hoops-stats-service/internal/http/middleware"
	"github.com/Abhilekh0724/hoops-stats-service/internal/loader"
	"github.com/Abhilekh0724/hoops-stats-service/internal/logging"
	"github.com/Abhilekh0724/hoops-stats-service/internal/metrics"
	"github.com/Abhilekh0724/hoops-stats-service/internal/store"
)

// Overridable in tests.
var (
	metricsSetup  = metrics.Setup
	newServerFunc = newHTTPServer
)

// Server owns the process lifecycle: telemetry, dataset load, HTTP serving,
// and graceful shutdown.
type Server struct {
	cfg    config.Config
	logger *slog.Logger
}

func New(cfg config.Config, logger *slog.Logger) *Server {
	return &Server{cfg: cfg, logger: logger}
}

// Run blocks until ctx is cancelled or a server fails. A failed initial
// dataset load is logged, not fatal: the API serves data_unavailable errors
// until an admin reload succeeds.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) error {
	defer stop()

	recorder, promHandler, metricsShutdown, err := metricsSetup(ctx, metrics.TelemetryConfig{
		Enabled:      s.cfg.Metrics.Enabled,
		Port:         s.cfg.Metrics.Port,
		ServiceName:  s.cfg.Metrics.ServiceName,
		OtlpEndpoint: s.cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: s.cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		return fmt.Errorf("setup metrics: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := metricsShutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown", "error", err)
		}
	}()

	memStore := store.NewMemoryStore()
	datasets := loader.New(s.cfg.Datasets, s.logger, recorder)
	if snap, err := datasets.Load(ctx); err != nil {
		logging.Error(s.logger, "initial dataset load failed, serving degraded", err)
	} else {
		memStore.Replace(snap)
	}

	apiServer := newServerFunc(":"+s.cfg.Port, s.buildHandler(memStore, datasets, recorder))

	servers := []httpServer{apiServer}
	if promHandler != nil {
		servers = append(servers, newServerFunc(":"+s.cfg.Metrics.Port, metricsMux(promHandler)))
	}

	errCh := make(chan error, len(servers))
	for _, srv := range servers {
		srv := srv
		go func() {
			logging.Info(s.logger, "server listening", slog.String("addr", srv.Addr()))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("listen on %s: %w", srv.Addr(), err)
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		logging.Info(s.logger, "shutdown signal received")
	case runErr = <-errCh:
		logging.Error(s.logger, "server failed", runErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	for _, srv := range servers {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "server shutdown", "error", err)
		}
	}
	return runErr
}

// buildHandler assembles handlers, optional admin routes, and middleware.
func (s *Server) buildHandler(memStore *store.MemoryStore, datasets *loader.Loader, recorder *metrics.Recorder) http.Handler {
	handler := handlers.New(
		playersapp.NewService(memStore),
		teamsapp.NewService(memStore),
		memStore,
		recorder,
		s.logger,
	)

	var admin *handlers.AdminHandler
	if s.cfg.AdminToken != "" {
		admin = handlers.NewAdminHandler(s.reloadFunc(memStore, datasets), s.cfg.AdminToken, s.logger)
	}

	routed := apihttp.NewRouter(handler, admin)
	return middleware.LoggingMiddleware(s.logger, recorder, middleware.CORSMiddleware(routed))
}

// reloadFunc loads a fresh snapshot and swaps it into the store only on
// success.
func (s *Server) reloadFunc(memStore *store.MemoryStore, datasets *loader.Loader) handlers.ReloadFunc {
	return func(ctx context.Context) (*domain.Snapshot, error) {
		snap, err := datasets.Load(ctx)
		if err != nil {
			return nil, err
		}
		memStore.Replace(snap)
		return snap, nil
	}
}

func metricsMux(promHandler http.Handler) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promHandler)
	return mux
}
