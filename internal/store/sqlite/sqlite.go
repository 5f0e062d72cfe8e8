// Package sqlite implements the briefing store on a local SQLite file,
// suitable for single-node deployments and tests.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/brieffast/brieffast-server/internal/model"
	"github.com/brieffast/brieffast-server/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS briefings (
    id         TEXT PRIMARY KEY,
    category   TEXT NOT NULL,
    data       TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS briefings_category ON briefings(category);
CREATE INDEX IF NOT EXISTS briefings_created_at ON briefings(created_at);
`

// Open opens (or creates) the SQLite database at path, enables WAL journal
// mode and ensures the schema exists. Use ":memory:" for an in-memory
// database in tests.
func Open(path string) (store.Store, error) {
	dsn := path
	if path != ":memory:" {
		// ensure parent directory exists to avoid SQLITE_CANTOPEN errors
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
		dsn = fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)", path)
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

type sqliteStore struct {
	db *sql.DB
}

func (s *sqliteStore) CreateBriefing(ctx context.Context, category string, data model.BriefingData) (*model.Briefing, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	id := uuid.New().String()
	now := time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
        INSERT INTO briefings (id, category, data, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?)
    `, id, category, string(payload), now.Format(time.RFC3339Nano), now.Format(time.RFC3339Nano))
	if err != nil {
		return nil, err
	}
	return &model.Briefing{ID: id, Category: category, Data: data, CreatedAt: now, UpdatedAt: now}, nil
}

func (s *sqliteStore) GetBriefing(ctx context.Context, id string) (*model.Briefing, error) {
	row := s.db.QueryRowContext(ctx, `
        SELECT id, category, data, created_at, updated_at
        FROM briefings WHERE id = ?
    `, id)
	return scanBriefing(row)
}

func (s *sqliteStore) UpdateBriefing(ctx context.Context, id string, data model.BriefingData) (*model.Briefing, error) {
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

	_, err = s.db.ExecContext(ctx, `
        UPDATE briefings SET data = ?, updated_at = ? WHERE id = ?
    `, string(payload), now.Format(time.RFC3339Nano), id)
	if err != nil {
		return nil, err
	}

	current.Data = data
	current.UpdatedAt = now
	return current, nil
}

func (s *sqliteStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *sqliteStore) Close() error { return s.db.Close() }

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBriefing(row rowScanner) (*model.Briefing, error) {
	var (
		b       model.Briefing
		payload string
		created string
		updated string
	)
	if err := row.Scan(&b.ID, &b.Category, &payload, &created, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal([]byte(payload), &b.Data); err != nil {
		return nil, fmt.Errorf("corrupt briefing payload: %w", err)
	}
	var err error
	if b.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return nil, fmt.Errorf("corrupt created_at: %w", err)
	}
	if b.UpdatedAt, err = time.Parse(time.RFC3339Nano, updated); err != nil {
		return nil, fmt.Errorf("corrupt updated_at: %w", err)
	}
	return &b, nil
}
