package sqlitemigrate

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	return sqlDB
}

func TestApplyMigrationsOnce(t *testing.T) {
	migrations := fstest.MapFS{
		"0001_create.sql": &fstest.MapFile{
			Data: []byte(`CREATE TABLE widgets (id TEXT PRIMARY KEY);`),
		},
	}

	sqlDB := openTestDB(t)
	if err := ApplyMigrations(sqlDB, migrations); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	// Second run must be a no-op.
	if err := ApplyMigrations(sqlDB, migrations); err != nil {
		t.Fatalf("second apply: %v", err)
	}

	if _, err := sqlDB.Exec(`INSERT INTO widgets (id) VALUES ('w1')`); err != nil {
		t.Fatalf("migrated table unusable: %v", err)
	}

	var applied int
	if err := sqlDB.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&applied); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if applied != 1 {
		t.Errorf("expected 1 recorded migration, got %d", applied)
	}
}

func TestApplyMigrationsOrdersLexically(t *testing.T) {
	migrations := fstest.MapFS{
		"0002_add_column.sql": &fstest.MapFile{
			Data: []byte(`ALTER TABLE items ADD COLUMN label TEXT;`),
		},
		"0001_create.sql": &fstest.MapFile{
			Data: []byte(`CREATE TABLE items (id TEXT PRIMARY KEY);`),
		},
	}

	sqlDB := openTestDB(t)
	if err := ApplyMigrations(sqlDB, migrations); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if _, err := sqlDB.Exec(`INSERT INTO items (id, label) VALUES ('i1', 'first')`); err != nil {
		t.Fatalf("expected both migrations applied: %v", err)
	}
}

func TestApplyMigrationsNilDB(t *testing.T) {
	if err := ApplyMigrations(nil, fstest.MapFS{}); err == nil {
		t.Fatal("expected error for nil db")
	}
}
