// Package postgres implements the briefing store on PostgreSQL via the pgx
// stdlib driver. The payload is stored as JSONB.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/brieffast/brieffast-server/internal/model"
	"github.com/brieffast/brieffast-server/internal/store"
)

// Open opens a PostgreSQL connection and verifies connectivity. Schema
// setup is handled by deployment migrations, not at runtime.
func Open(dsn string) (store.Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &pgStore{db: db}, nil
}

// NewWithDB wraps an existing connection pool.
func NewWithDB(db *sql.DB) store.Store { return &pgStore{db: db} }

type pgStore struct {
	db *sql.DB
}

func (s *pgStore) CreateBriefing(ctx context.Context, category string, data model.BriefingData) (*model.Briefing, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	id := uuid.New().String()

	var created time.Time
	row := s.db.QueryRowContext(ctx, `
        INSERT INTO briefings (id, category, data, created_at, updated_at)
        VALUES ($1, $2, $3, now(), now())
        RETURNING created_at
    `, id, category, payload)
	if err := row.Scan(&created); err != nil {
		return nil, err
	}
	return &model.Briefing{ID: id, Category: category, Data: data, CreatedAt: created, UpdatedAt: created}, nil
}

func (s *pgStore) GetBriefing(ctx context.Context, id string) (*model.Briefing, error) {
	var (
		b       model.Briefing
		payload []byte
	)
	row := s.db.QueryRowContext(ctx, `
        SELECT id, category, data, created_at, updated_at
        FROM briefings WHERE id = $1
    `, id)
	if err := row.Scan(&b.ID, &b.Category, &payload, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(payload, &b.Data); err != nil {
		return nil, fmt.Errorf("corrupt briefing payload: %w", err)
	}
	return &b, nil
}

func (s *pgStore) UpdateBriefing(ctx context.Context, id string, data model.BriefingData) (*model.Briefing, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	var b model.Briefing
	row := s.db.QueryRowContext(ctx, `
        UPDATE briefings
        SET data = $2, updated_at = GREATEST(now(), updated_at + interval '1 millisecond')
        WHERE id = $1
        RETURNING id, category, created_at, updated_at
    `, id, payload)
	if err := row.Scan(&b.ID, &b.Category, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	b.Data = data
	return &b, nil
}

func (s *pgStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *pgStore) Close() error { return s.db.Close() }
