// Package briefservice wires configuration, storage and the HTTP API into a
// runnable server.
package briefservice

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/brieffast/brieffast-server/internal/api"
	"github.com/brieffast/brieffast-server/internal/config"
	"github.com/brieffast/brieffast-server/internal/factory"
	"github.com/brieffast/brieffast-server/internal/health"
	"github.com/brieffast/brieffast-server/internal/platform/logger"
	"github.com/brieffast/brieffast-server/internal/store"
)

// Run starts the brief service HTTP server and blocks until shutdown or error.
func Run() error {
	// Local overrides; absence of a .env file is not an error.
	_ = godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		return err
	}
	log := logger.New("brief-service", cfg.Environment == config.EnvDevelopment)

	log.Info().
		Str("environment", string(cfg.Environment)).
		Str("store_driver", cfg.StoreDriver).
		Int("http_port", cfg.HTTPPort).
		Msg("brief service starting")

	// Cancellable root context bound to SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := factory.NewStore(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("store unavailable")
		return err
	}
	defer func() { _ = st.Close() }()

	logo := loadLogo(cfg.PDFLogoPath, log)

	svcHealth := startHealthCheckers(ctx, cfg, log, st)
	router := api.NewRouter(cfg, st, svcHealth, logo, log)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server forced to shutdown")
			return err
		}
		log.Info().Msg("server exited")
		return nil
	case err := <-errCh:
		log.Error().Err(err).Msg("HTTP server failed")
		return err
	}
}

// startHealthCheckers starts the store checker and the service-level aggregator.
func startHealthCheckers(ctx context.Context, cfg *config.Config, log zerolog.Logger, st store.Store) *health.ServiceHealthChecker {
	interval := time.Duration(cfg.HealthCheckIntervalSeconds) * time.Second

	storeChecker := store.NewStoreHealthChecker(st, log, 2*time.Second)
	go storeChecker.Start(ctx, interval)

	svcHealth := health.NewServiceHealthChecker(log, storeChecker)
	go svcHealth.Start(ctx, interval)
	return svcHealth
}

// loadLogo reads the optional header logo. A missing or unreadable file only
// downgrades exports to the text-only header.
func loadLogo(path string, log zerolog.Logger) []byte {
	if path == "" {
		return nil
	}
	logo, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("could not read PDF logo; exports use text-only header")
		return nil
	}
	return logo
}
