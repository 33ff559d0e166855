package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store is the opt-in call journal. It records every inference call for
// later inspection and is never consulted when serving a request.
type Store struct {
	db *sql.DB
}

// CallRecord is one row of the journal.
type CallRecord struct {
	ID             string
	Action         string
	Model          string
	TargetLanguage string
	PromptChars    int
	Success        bool
	Error          string
	LatencyMs      int
	CreatedAt      time.Time
}

// Stats summarises the journal.
type Stats struct {
	Total        int
	Succeeded    int
	Failed       int
	AvgLatencyMs float64
}

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS inference_calls (
		id TEXT PRIMARY KEY,
		action TEXT NOT NULL,
		model TEXT NOT NULL,
		target_lang TEXT,
		prompt_chars INTEGER NOT NULL DEFAULT 0,
		success BOOLEAN NOT NULL,
		error TEXT,
		latency_ms INTEGER,
		created_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_calls_created ON inference_calls(created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Record appends rec to the journal, filling ID and CreatedAt when unset.
func (s *Store) Record(ctx context.Context, rec CallRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO inference_calls (id, action, model, target_lang, prompt_chars, success, error, latency_ms, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Action, rec.Model, rec.TargetLanguage, rec.PromptChars, rec.Success, rec.Error, rec.LatencyMs, rec.CreatedAt)
	return err
}

// List returns the most recent records first. A non-positive limit returns all.
func (s *Store) List(ctx context.Context, limit int) ([]CallRecord, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, action, model, target_lang, prompt_chars, success, error, latency_ms, created_at FROM inference_calls ORDER BY created_at DESC LIMIT ?`,
		limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []CallRecord
	for rows.Next() {
		var r CallRecord
		if err := rows.Scan(&r.ID, &r.Action, &r.Model, &r.TargetLanguage, &r.PromptChars, &r.Success, &r.Error, &r.LatencyMs, &r.CreatedAt); err != nil {
			return nil, err
		}
		results = append(results, r)
	}

	return results, rows.Err()
}

func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN success THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN success THEN 0 ELSE 1 END), 0),
			COALESCE(AVG(latency_ms), 0)
		FROM inference_calls`).Scan(
		&stats.Total,
		&stats.Succeeded,
		&stats.Failed,
		&stats.AvgLatencyMs,
	)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// Clear removes all records and reports how many were deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM inference_calls`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *Store) Close() error {
	return s.db.Close()
}
