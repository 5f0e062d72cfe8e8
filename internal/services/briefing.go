// Package services wires domain logic onto the store for the HTTP handlers.
package services

import (
	"context"
	"fmt"

	"github.com/brieffast/brieffast-server/internal/brief"
	"github.com/brieffast/brieffast-server/internal/model"
	"github.com/brieffast/brieffast-server/internal/store"
)

// BriefingService persists briefings. Saves replace the whole payload, so a
// stale client overwrites rather than merges.
type BriefingService struct {
	store store.Store
}

func NewBriefingService(s store.Store) *BriefingService {
	return &BriefingService{store: s}
}

// CreateBriefing stores a new briefing under the given template category.
// When the payload carries answers but no rendered Markdown, the document is
// generated server-side before saving.
func (s *BriefingService) CreateBriefing(ctx context.Context, category string, data model.BriefingData) (*model.Briefing, error) {
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", model.ErrValidation)
	}
	if data.Markdown == "" && len(data.Answers) > 0 {
		data.Markdown = brief.Generate(data.Answers, category)
	}
	return s.store.CreateBriefing(ctx, category, data)
}

func (s *BriefingService) GetBriefing(ctx context.Context, id string) (*model.Briefing, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: briefing id is required", model.ErrValidation)
	}
	return s.store.GetBriefing(ctx, id)
}

// UpdateBriefing swaps the stored payload for an existing briefing.
func (s *BriefingService) UpdateBriefing(ctx context.Context, id string, data model.BriefingData) (*model.Briefing, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: briefing id is required", model.ErrValidation)
	}
	return s.store.UpdateBriefing(ctx, id, data)
}
