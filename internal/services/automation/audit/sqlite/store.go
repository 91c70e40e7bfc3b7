// Package sqlite provides SQLite-backed persistence for the invocation audit
// trail.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/winforge/autoit-mcp/internal/platform/storage/sqlitemigrate"
	"github.com/winforge/autoit-mcp/internal/services/automation/audit"
	"github.com/winforge/autoit-mcp/internal/services/automation/audit/sqlite/migrations"
)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Store provides SQLite-backed persistence for invocation records.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite store at the provided path and applies migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return store, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Put persists one invocation record.
func (s *Store) Put(ctx context.Context, record audit.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(record.Tool) == "" {
		return fmt.Errorf("tool name is required")
	}
	if strings.TrimSpace(record.Outcome) == "" {
		return fmt.Errorf("outcome is required")
	}
	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO invocations (tool, outcome, detail, duration_ms, created_at)
VALUES (?, ?, ?, ?, ?)
`,
		strings.TrimSpace(record.Tool),
		strings.TrimSpace(record.Outcome),
		record.Detail,
		record.Duration.Milliseconds(),
		toMillis(createdAt),
	)
	if err != nil {
		return fmt.Errorf("put invocation record: %w", err)
	}
	return nil
}

// List returns the most recent invocation records, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]audit.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT tool, outcome, detail, duration_ms, created_at
FROM invocations
ORDER BY created_at DESC, id DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, fmt.Errorf("list invocation records: %w", err)
	}
	defer rows.Close()

	var records []audit.Record
	for rows.Next() {
		var (
			record     audit.Record
			durationMS int64
			createdAt  int64
		)
		if err := rows.Scan(&record.Tool, &record.Outcome, &record.Detail, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("scan invocation record: %w", err)
		}
		record.Duration = time.Duration(durationMS) * time.Millisecond
		record.CreatedAt = fromMillis(createdAt)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate invocation records: %w", err)
	}
	return records, nil
}
