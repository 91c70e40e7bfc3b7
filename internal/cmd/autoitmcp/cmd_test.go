package autoitmcp

import (
	"flag"
	"testing"

	"github.com/winforge/autoit-mcp/internal/platform/logging"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("autoit-mcp", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Transport != "stdio" {
		t.Fatalf("expected default transport stdio, got %q", cfg.Transport)
	}
	if cfg.WSAddr != "localhost:8089" {
		t.Fatalf("expected default ws addr, got %q", cfg.WSAddr)
	}
	if cfg.AuditDBPath != "" {
		t.Fatalf("expected audit trail off by default, got %q", cfg.AuditDBPath)
	}
	if len(cfg.AllowedHosts) != 0 {
		t.Fatalf("expected loopback-only default, got %v", cfg.AllowedHosts)
	}
}

func TestParseConfigEnv(t *testing.T) {
	t.Setenv("AUTOIT_MCP_TRANSPORT", "ws")
	t.Setenv("AUTOIT_MCP_WS_ADDR", "localhost:9100")
	t.Setenv("AUTOIT_MCP_ALLOWED_HOSTS", "automation.internal,ops.internal")
	t.Setenv("AUTOIT_MCP_AUTH_TOKEN", "secret")

	fs := flag.NewFlagSet("autoit-mcp", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Transport != "ws" {
		t.Fatalf("expected env transport, got %q", cfg.Transport)
	}
	if cfg.WSAddr != "localhost:9100" {
		t.Fatalf("expected env ws addr, got %q", cfg.WSAddr)
	}
	if len(cfg.AllowedHosts) != 2 || cfg.AllowedHosts[0] != "automation.internal" {
		t.Fatalf("expected env allowed hosts, got %v", cfg.AllowedHosts)
	}
	if cfg.AuthToken != "secret" {
		t.Fatalf("expected env auth token, got %q", cfg.AuthToken)
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("AUTOIT_MCP_TRANSPORT", "stdio")
	t.Setenv("AUTOIT_MCP_AUDIT_DB", "env.db")

	fs := flag.NewFlagSet("autoit-mcp", flag.ContinueOnError)
	args := []string{
		"-transport", "ws",
		"-ws-addr", "localhost:9200",
		"-audit-db", "flag.db",
		"-allowed-hosts", " automation.internal , ,ops.internal",
	}
	cfg, err := ParseConfig(fs, args)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Transport != "ws" {
		t.Fatalf("expected flag transport, got %q", cfg.Transport)
	}
	if cfg.WSAddr != "localhost:9200" {
		t.Fatalf("expected flag ws addr, got %q", cfg.WSAddr)
	}
	if cfg.AuditDBPath != "flag.db" {
		t.Fatalf("expected flag audit path, got %q", cfg.AuditDBPath)
	}
	if len(cfg.AllowedHosts) != 2 || cfg.AllowedHosts[1] != "ops.internal" {
		t.Fatalf("expected trimmed allowed hosts, got %v", cfg.AllowedHosts)
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := []struct {
		input string
		want  logging.Level
	}{
		{"debug", logging.LevelDebug},
		{"DEBUG", logging.LevelDebug},
		{"error", logging.LevelError},
		{"info", logging.LevelInfo},
		{"", logging.LevelInfo},
		{"bogus", logging.LevelInfo},
	}
	for _, tc := range cases {
		if got := parseLogLevel(tc.input); got != tc.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}
