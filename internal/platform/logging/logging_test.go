package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerLevelFiltering(t *testing.T) {
	tests := []struct {
		name      string
		level     Level
		wantInfo  bool
		wantDebug bool
	}{
		{name: "error only", level: LevelError, wantInfo: false, wantDebug: false},
		{name: "info", level: LevelInfo, wantInfo: true, wantDebug: false},
		{name: "debug", level: LevelDebug, wantInfo: true, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(&buf, "[test] ", tt.level)

			logger.Errorf("boom")
			logger.Infof("hello")
			logger.Debugf("details")

			out := buf.String()
			if !strings.Contains(out, "ERROR boom") {
				t.Error("error line missing")
			}
			if got := strings.Contains(out, "INFO hello"); got != tt.wantInfo {
				t.Errorf("info emitted=%v, want %v", got, tt.wantInfo)
			}
			if got := strings.Contains(out, "DEBUG details"); got != tt.wantDebug {
				t.Errorf("debug emitted=%v, want %v", got, tt.wantDebug)
			}
		})
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var logger *Logger
	logger.Errorf("no panic")
	logger.Infof("no panic")
	logger.Debugf("no panic")
	if logger.Level() != LevelError {
		t.Error("nil logger should report error level")
	}
}

func TestLoggerPrefix(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "[autoit-mcp] ", LevelInfo)
	logger.Infof("started")
	if !strings.HasPrefix(buf.String(), "[autoit-mcp] ") {
		t.Errorf("expected prefix, got %q", buf.String())
	}
}
