package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/winforge/autoit-mcp/internal/autoit/autoittest"
	"github.com/winforge/autoit-mcp/internal/services/automation/audit"
)

func TestRunRejectsUnsupportedTransport(t *testing.T) {
	auditPath := filepath.Join(t.TempDir(), "audit.db")
	err := Run(context.Background(), Config{Transport: "tcp", AuditDBPath: auditPath})
	if err == nil {
		t.Fatal("expected error for unsupported transport")
	}
	if !strings.Contains(err.Error(), "not supported") {
		t.Errorf("unexpected error: %v", err)
	}
	if _, statErr := os.Stat(auditPath); !os.IsNotExist(statErr) {
		t.Error("unsupported transport must fail before opening resources")
	}
}

func TestNewServerRequiresAutomation(t *testing.T) {
	if _, err := newServer(nil, audit.NopRecorder{}); err == nil {
		t.Fatal("expected error for nil automation capability")
	}
}

func connectTestClient(t *testing.T, ctx context.Context, server *Server) *mcp.ClientSession {
	t.Helper()

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	go func() {
		_ = server.serveWithTransport(ctx, serverTransport)
	}()

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("connect client: %v", err)
	}
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func TestServerListsAllTools(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	server, err := newServer(autoittest.NewFake(), audit.NopRecorder{})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	session := connectTestClient(t, ctx, server)

	result, err := session.ListTools(ctx, nil)
	if err != nil {
		t.Fatalf("list tools: %v", err)
	}
	if len(result.Tools) != 49 {
		t.Errorf("expected 49 tools, got %d", len(result.Tools))
	}

	names := make(map[string]bool, len(result.Tools))
	for _, tool := range result.Tools {
		names[tool.Name] = true
	}
	for _, want := range []string{
		"mouse_move", "send_keys", "win_activate", "control_click",
		"run", "process_exists", "shutdown",
	} {
		if !names[want] {
			t.Errorf("expected tool %q to be registered", want)
		}
	}
}

func TestServerCallToolEndToEnd(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	fake := autoittest.NewFake()
	fake.IntResults["WinActivate"] = 1

	server, err := newServer(fake, audit.NopRecorder{})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	session := connectTestClient(t, ctx, server)

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "win_activate",
		Arguments: map[string]any{"title": "Notepad"},
	})
	if err != nil {
		t.Fatalf("call tool: %v", err)
	}
	if result.IsError {
		t.Fatal("expected a successful envelope")
	}
	text, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	want := `Window "Notepad" activated with result: 1`
	if text.Text != want {
		t.Errorf("expected %q, got %q", want, text.Text)
	}
}

type capturingRecorder struct {
	records []audit.Record
}

func (r *capturingRecorder) Put(_ context.Context, record audit.Record) error {
	r.records = append(r.records, record)
	return nil
}

func TestServerRecordsInvocations(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	fake := autoittest.NewFake()
	fake.IntResults["ProcessExists"] = 0
	recorder := &capturingRecorder{}

	server, err := newServer(fake, recorder)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	session := connectTestClient(t, ctx, server)

	if _, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "process_exists",
		Arguments: map[string]any{"process": "notepad.exe"},
	}); err != nil {
		t.Fatalf("call tool: %v", err)
	}

	if len(recorder.records) != 1 {
		t.Fatalf("expected 1 audit record, got %d", len(recorder.records))
	}
	record := recorder.records[0]
	if record.Tool != "process_exists" {
		t.Errorf("expected tool name in record, got %q", record.Tool)
	}
	if record.Outcome != "ok" {
		t.Errorf("expected ok outcome, got %q", record.Outcome)
	}
	if !strings.Contains(record.Detail, "does not exist") {
		t.Errorf("expected narrative detail, got %q", record.Detail)
	}
}
