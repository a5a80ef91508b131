// Package archive persists generated drawing sets in sqlite so renders
// can be retrieved later without re-running the projection pipeline.
package archive

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

	"github.com/atelierpx/orthograph/pkg/projection"
)

// ErrNotFound is returned when no archived project matches the key.
var ErrNotFound = errors.New("archive: design not found")

// Record is one archived render: the full drawing set plus enough
// columns to list and look it up without unpacking the blobs.
type Record struct {
	ID         string              `json:"id"`
	DesignID   string              `json:"designId"`
	Theme      string              `json:"theme"`
	Scale      float64             `json:"scale"`
	FloorCount int                 `json:"floorCount"`
	Documents  map[string]string   `json:"documents,omitempty"`
	Meta       projection.Metadata `json:"metadata"`
	CreatedAt  time.Time           `json:"createdAt"`
}

// Store wraps the sqlite handle. Open it once at startup.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS projects (
    id          TEXT PRIMARY KEY,
    design_id   TEXT NOT NULL,
    theme       TEXT NOT NULL,
    scale       REAL NOT NULL,
    floor_count INTEGER NOT NULL,
    documents   TEXT NOT NULL,
    metadata    TEXT NOT NULL,
    created_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_projects_design ON projects (design_id);
`

// Open opens (and if needed creates) the archive database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping reports whether the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Save stores a record and returns its id. A blank ID gets a fresh
// uuid; a zero CreatedAt is stamped with the current UTC time.
func (s *Store) Save(ctx context.Context, r *Record) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}

	docs, err := json.Marshal(r.Documents)
	if err != nil {
		return "", fmt.Errorf("marshal documents: %w", err)
	}
	meta, err := json.Marshal(r.Meta)
	if err != nil {
		return "", fmt.Errorf("marshal metadata: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
        INSERT INTO projects (id, design_id, theme, scale, floor_count, documents, metadata, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `, r.ID, r.DesignID, r.Theme, r.Scale, r.FloorCount, string(docs), string(meta), r.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return "", fmt.Errorf("insert project: %w", err)
	}
	return r.ID, nil
}

// Get returns the archived record whose id matches key, or failing
// that the newest record for that design id.
func (s *Store) Get(ctx context.Context, key string) (*Record, error) {
	row := s.db.QueryRowContext(ctx, `
        SELECT id, design_id, theme, scale, floor_count, documents, metadata, created_at
        FROM projects
        WHERE id = ? OR design_id = ?
        ORDER BY created_at DESC
        LIMIT 1
    `, key, key)

	var (
		r       Record
		docs    string
		meta    string
		created string
	)
	if err := row.Scan(&r.ID, &r.DesignID, &r.Theme, &r.Scale, &r.FloorCount, &docs, &meta, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal([]byte(docs), &r.Documents); err != nil {
		return nil, fmt.Errorf("unmarshal documents: %w", err)
	}
	if err := json.Unmarshal([]byte(meta), &r.Meta); err != nil {
		return nil, fmt.Errorf("unmarshal metadata: %w", err)
	}
	t, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	r.CreatedAt = t
	return &r, nil
}

// List returns every archived record, newest first, without the
// document payloads.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, design_id, theme, scale, floor_count, metadata, created_at
        FROM projects
        ORDER BY created_at DESC
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			r       Record
			meta    string
			created string
		)
		if err := rows.Scan(&r.ID, &r.DesignID, &r.Theme, &r.Scale, &r.FloorCount, &meta, &created); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(meta), &r.Meta); err != nil {
			return nil, fmt.Errorf("unmarshal metadata: %w", err)
		}
		t, err := time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		r.CreatedAt = t
		out = append(out, r)
	}
	return out, rows.Err()
}
