// Package store pkg/store/store.go
//
// Dashboard blob persistence: one JSON blob per investigation, keyed
// by dashboard id. Timestamps inside the blob are RFC 3339 and are
// re-hydrated by the models' JSON decoding on load.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // sqlite driver

	"github.com/shahgahmed/llama-time/pkg/models"
)

// Store persists dashboards in a local sqlite database.
type Store struct {
	db *sql.DB
}

// DashboardSummary is the listing row: everything but the widgets.
type DashboardSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	MonitorID int64     `json:"monitorId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Open opens (creating if needed) the dashboard database at path and
// runs migrations.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000", path)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS dashboards (
		id         TEXT PRIMARY KEY,
		monitor_id INTEGER,
		title      TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		blob       TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("failed to migrate dashboards table: %w", err)
	}

	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores the dashboard's full entity graph as one JSON blob,
// replacing any previous blob with the same id.
func (s *Store) Save(ctx context.Context, dashboard *models.Dashboard) error {
	blob, err := json.Marshal(dashboard)
	if err != nil {
		return fmt.Errorf("failed to marshal dashboard: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO dashboards (id, monitor_id, title, created_at, blob)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET monitor_id=excluded.monitor_id,
		   title=excluded.title, created_at=excluded.created_at, blob=excluded.blob`,
		dashboard.ID, dashboard.MonitorID, dashboard.Title, dashboard.CreatedAt.UTC(), string(blob))
	if err != nil {
		return fmt.Errorf("failed to save dashboard: %w", err)
	}

	return nil
}

// Get loads one dashboard by id.
func (s *Store) Get(ctx context.Context, id string) (*models.Dashboard, error) {
	var blob string

	err := s.db.QueryRowContext(ctx, `SELECT blob FROM dashboards WHERE id = ?`, id).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDashboardNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard: %w", err)
	}

	var dashboard models.Dashboard
	if err := json.Unmarshal([]byte(blob), &dashboard); err != nil {
		return nil, fmt.Errorf("failed to decode dashboard blob: %w", err)
	}

	return &dashboard, nil
}

// List returns summaries of all stored dashboards, newest first.
func (s *Store) List(ctx context.Context) ([]DashboardSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, monitor_id, title, created_at FROM dashboards ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list dashboards: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	summaries := make([]DashboardSummary, 0)

	for rows.Next() {
		var summary DashboardSummary
		if err := rows.Scan(&summary.ID, &summary.MonitorID, &summary.Title, &summary.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan dashboard row: %w", err)
		}

		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate dashboard rows: %w", err)
	}

	return summaries, nil
}

// Delete removes one dashboard by id.
func (s *Store) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM dashboards WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete dashboard: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}

	if affected == 0 {
		return ErrDashboardNotFound
	}

	return nil
}
