// Package redis implements the briefing store on Redis. Each briefing is a
// hash at brief:<id>; a per-category set and a time-sorted zset index the
// hashes for future listing.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/brieffast/brieffast-server/internal/model"
	"github.com/brieffast/brieffast-server/internal/store"
)

const byTimeKey = "briefs:by_time"

func briefKey(id string) string     { return "brief:" + id }
func categoryKey(cat string) string { return "category:" + cat }

// Open connects to Redis at the given URL (redis://host:port/db) and
// verifies connectivity.
func Open(ctx context.Context, url string) (store.Store, error) {
	if url == "" {
		return nil, fmt.Errorf("redis URL is empty")
	}
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return &redisStore{client: client}, nil
}

// NewWithClient wraps an existing client, used by tests with miniredis.
func NewWithClient(client *goredis.Client) store.Store {
	return &redisStore{client: client}
}

type redisStore struct {
	client *goredis.Client
}

func (s *redisStore) CreateBriefing(ctx context.Context, category string, data model.BriefingData) (*model.Briefing, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	now := time.Now().UTC()

	b := &model.Briefing{
		ID:        id,
		Category:  category,
		Data:      data,
		CreatedAt: now,
		UpdatedAt: now,
	}

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, briefKey(id), map[string]interface{}{
		"id":        id,
		"category":  category,
		"data":      string(payload),
		"createdAt": now.Format(time.RFC3339Nano),
		"updatedAt": now.Format(time.RFC3339Nano),
	})
	pipe.SAdd(ctx, categoryKey(category), briefKey(id))
	pipe.ZAdd(ctx, byTimeKey, goredis.Z{Score: float64(now.UnixMilli()), Member: briefKey(id)})
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *redisStore) GetBriefing(ctx context.Context, id string) (*model.Briefing, error) {
	fields, err := s.client.HGetAll(ctx, briefKey(id)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, model.ErrNotFound
	}
	return briefingFromHash(fields)
}

func (s *redisStore) UpdateBriefing(ctx context.Context, id string, data model.BriefingData) (*model.Briefing, error) {
	current, err := s.GetBriefing(ctx, id)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if !now.After(current.UpdatedAt) {
		now = current.UpdatedAt.Add(time.Millisecond)
	}

	if err := s.client.HSet(ctx, briefKey(id), map[string]interface{}{
		"data":      string(payload),
		"updatedAt": now.Format(time.RFC3339Nano),
	}).Err(); err != nil {
		return nil, err
	}

	current.Data = data
	current.UpdatedAt = now
	return current, nil
}

func (s *redisStore) HealthPing(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *redisStore) Close() error {
	return s.client.Close()
}

func briefingFromHash(fields map[string]string) (*model.Briefing, error) {
	var data model.BriefingData
	if raw, ok := fields["data"]; ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			return nil, fmt.Errorf("corrupt briefing payload: %w", err)
		}
	}
	createdAt, err := time.Parse(time.RFC3339Nano, fields["createdAt"])
	if err != nil {
		return nil, fmt.Errorf("corrupt createdAt: %w", err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, fields["updatedAt"])
	if err != nil {
		return nil, fmt.Errorf("corrupt updatedAt: %w", err)
	}
	return &model.Briefing{
		ID:        fields["id"],
		Category:  fields["category"],
		Data:      data,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}
