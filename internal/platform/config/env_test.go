package config

import "testing"

type sampleEnv struct {
	Addr    string `env:"AUTOIT_MCP_TEST_ADDR" envDefault:"localhost:9000"`
	Verbose bool   `env:"AUTOIT_MCP_TEST_VERBOSE" envDefault:"false"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg sampleEnv
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Addr != "localhost:9000" {
		t.Errorf("expected default addr, got %q", cfg.Addr)
	}
	if cfg.Verbose {
		t.Error("expected verbose to default to false")
	}
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("AUTOIT_MCP_TEST_ADDR", "0.0.0.0:1234")
	t.Setenv("AUTOIT_MCP_TEST_VERBOSE", "true")

	var cfg sampleEnv
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Addr != "0.0.0.0:1234" {
		t.Errorf("expected env addr, got %q", cfg.Addr)
	}
	if !cfg.Verbose {
		t.Error("expected verbose from env")
	}
}

func TestParseEnvRejectsNonPointer(t *testing.T) {
	var cfg sampleEnv
	if err := ParseEnv(cfg); err == nil {
		t.Fatal("expected error for non-pointer target")
	}
}
