// Package factory constructs configured service dependencies.
package factory

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/brieffast/brieffast-server/internal/config"
	storepkg "github.com/brieffast/brieffast-server/internal/store"
	storepg "github.com/brieffast/brieffast-server/internal/store/postgres"
	storeredis "github.com/brieffast/brieffast-server/internal/store/redis"
	storesqlite "github.com/brieffast/brieffast-server/internal/store/sqlite"
)

// NewStore returns the store.Store selected by cfg.StoreDriver. Connectivity
// is verified synchronously so health checks start from a known state.
func NewStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (storepkg.Store, error) {
	switch cfg.StoreDriver {
	case "redis":
		s, err := storeredis.Open(ctx, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("open redis store: %w", err)
		}
		log.Info().Str("driver", "redis").Msg("store ready")
		return s, nil
	case "sqlite":
		s, err := storesqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		log.Info().Str("driver", "sqlite").Str("path", cfg.SQLitePath).Msg("store ready")
		return s, nil
	case "postgres":
		s, err := storepg.Open(cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres store: %w", err)
		}
		log.Info().Str("driver", "postgres").Msg("store ready")
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store driver: %q", cfg.StoreDriver)
	}
}
