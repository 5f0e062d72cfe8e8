package store

import (
	"context"

	"github.com/brieffast/brieffast-server/internal/model"
)

// Store exposes the persistence operations required by services.
// Implementations live under internal/store/<driver>/ (redis, sqlite,
// postgres). Updates replace the whole briefing payload; partial patches
// are not supported.
type Store interface {
	CreateBriefing(ctx context.Context, category string, data model.BriefingData) (*model.Briefing, error)
	GetBriefing(ctx context.Context, id string) (*model.Briefing, error)
	UpdateBriefing(ctx context.Context, id string, data model.BriefingData) (*model.Briefing, error)

	// HealthPing verifies backend connectivity.
	HealthPing(ctx context.Context) error

	Close() error
}
