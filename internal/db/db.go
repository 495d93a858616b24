// Package db provides PostgreSQL access for stored CV records and rendered artifacts.
package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/cv-composer/internal/types"
)

// Schema creates the tables used by this package. It is idempotent.
const Schema = `
CREATE TABLE IF NOT EXISTS cv_records (
	id            UUID PRIMARY KEY,
	data          JSONB NOT NULL,
	theme_id      TEXT,
	theme_data    JSONB,
	section_order JSONB,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS render_artifacts (
	id         UUID PRIMARY KEY,
	cv_id      UUID NOT NULL REFERENCES cv_records(id) ON DELETE CASCADE,
	format     TEXT NOT NULL,
	content    BYTEA NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS render_artifacts_cv_format_idx
	ON render_artifacts (cv_id, format, created_at DESC);
`

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// EnsureSchema creates missing tables.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// GetCVRecord loads a stored CV. The theme and section order columns, when
// set, take precedence over the values embedded in the document.
func (db *DB) GetCVRecord(ctx context.Context, id uuid.UUID) (*types.CVRecord, error) {
	var (
		data         []byte
		themeID      *string
		themeData    []byte
		sectionOrder []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT data, theme_id, theme_data, section_order FROM cv_records WHERE id = $1`,
		id,
	).Scan(&data, &themeID, &themeData, &sectionOrder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCVNotFound
		}
		return nil, fmt.Errorf("failed to get cv record: %w", err)
	}
	return decodeRecord(id, data, themeID, themeData, sectionOrder)
}

func decodeRecord(id uuid.UUID, data []byte, themeID *string, themeData, sectionOrder []byte) (*types.CVRecord, error) {
	var cv types.CVRecord
	if err := json.Unmarshal(data, &cv); err != nil {
		return nil, fmt.Errorf("failed to decode cv record %s: %w", id, err)
	}
	cv.ID = id.String()
	if themeID != nil && *themeID != "" {
		cv.ThemeID = *themeID
	}
	if len(themeData) > 0 {
		cv.ThemeData = json.RawMessage(themeData)
	}
	if len(sectionOrder) > 0 {
		cv.SectionOrder = json.RawMessage(sectionOrder)
	}
	return &cv, nil
}

// SaveCVRecord inserts cv, or replaces it when its ID already exists, and
// returns the stored ID.
func (db *DB) SaveCVRecord(ctx context.Context, cv *types.CVRecord) (uuid.UUID, error) {
	id, err := recordID(cv)
	if err != nil {
		return uuid.Nil, err
	}

	data, err := json.Marshal(cv)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal cv record: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO cv_records (id, data, theme_id, theme_data, section_order)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE SET data = $2, theme_id = $3, theme_data = $4,
		   section_order = $5, updated_at = NOW()`,
		id, data, nullable(cv.ThemeID), nullableJSON(cv.ThemeData), nullableJSON(cv.SectionOrder),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save cv record: %w", err)
	}
	return id, nil
}

func recordID(cv *types.CVRecord) (uuid.UUID, error) {
	if cv == nil {
		return uuid.Nil, fmt.Errorf("cv record is nil")
	}
	if cv.ID == "" {
		return uuid.New(), nil
	}
	id, err := uuid.Parse(cv.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid cv id %q: %w", cv.ID, err)
	}
	return id, nil
}

// SaveArtifact stores rendered output for a CV and returns the artifact ID.
func (db *DB) SaveArtifact(ctx context.Context, cvID uuid.UUID, format string, content []byte) (uuid.UUID, error) {
	id := uuid.New()
	_, err := db.pool.Exec(ctx,
		`INSERT INTO render_artifacts (id, cv_id, format, content) VALUES ($1, $2, $3, $4)`,
		id, cvID, format, content,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save artifact %s: %w", format, err)
	}
	return id, nil
}

// GetLatestArtifact returns the newest artifact of format for a CV, or nil
// when none was stored.
func (db *DB) GetLatestArtifact(ctx context.Context, cvID uuid.UUID, format string) (*Artifact, error) {
	var a Artifact
	err := db.pool.QueryRow(ctx,
		`SELECT id, cv_id, format, content, created_at FROM render_artifacts
		 WHERE cv_id = $1 AND format = $2 ORDER BY created_at DESC LIMIT 1`,
		cvID, format,
	).Scan(&a.ID, &a.CVID, &a.Format, &a.Content, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get artifact %s: %w", format, err)
	}
	return &a, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullableJSON(raw json.RawMessage) []byte {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return raw
}
