package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/winforge/autoit-mcp/internal/services/automation/audit"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "audit.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(" "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestPutAndList(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	first := audit.Record{
		Tool:      "win_activate",
		Outcome:   "ok",
		Detail:    `Window "Notepad" activated with result: 1`,
		Duration:  12 * time.Millisecond,
		CreatedAt: time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC),
	}
	second := audit.Record{
		Tool:      "clip_get",
		Outcome:   "fault",
		Detail:    "clipboard access denied",
		CreatedAt: time.Date(2026, 8, 25, 10, 1, 0, 0, time.UTC),
	}

	if err := store.Put(ctx, first); err != nil {
		t.Fatalf("put first: %v", err)
	}
	if err := store.Put(ctx, second); err != nil {
		t.Fatalf("put second: %v", err)
	}

	records, err := store.List(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Tool != "clip_get" {
		t.Errorf("expected newest first, got %q", records[0].Tool)
	}
	if records[1].Detail != first.Detail {
		t.Errorf("expected detail round-trip, got %q", records[1].Detail)
	}
	if records[1].Duration != first.Duration {
		t.Errorf("expected duration round-trip, got %v", records[1].Duration)
	}
}

func TestPutValidation(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, audit.Record{Outcome: "ok"}); err == nil {
		t.Error("expected error for missing tool name")
	}
	if err := store.Put(ctx, audit.Record{Tool: "run"}); err == nil {
		t.Error("expected error for missing outcome")
	}
}

func TestListLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		record := audit.Record{
			Tool:      "mouse_move",
			Outcome:   "ok",
			CreatedAt: time.Date(2026, 8, 25, 10, 0, i, 0, time.UTC),
		}
		if err := store.Put(ctx, record); err != nil {
			t.Fatalf("put: %v", err)
		}
	}
	records, err := store.List(ctx, 3)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("expected 3 records, got %d", len(records))
	}
}
