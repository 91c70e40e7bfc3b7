package domain

import (
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func textOf(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result == nil {
		t.Fatal("expected non-nil tool result")
	}
	if len(result.Content) != 1 {
		t.Fatalf("expected single content item, got %d", len(result.Content))
	}
	text, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return text.Text
}

func TestOutcomeCallToolResult(t *testing.T) {
	t.Run("ok is not an error", func(t *testing.T) {
		result := OK("done").CallToolResult()
		if result.IsError {
			t.Error("ok outcome must not set the error flag")
		}
		if got := textOf(t, result); got != "done" {
			t.Errorf("expected %q, got %q", "done", got)
		}
	})

	t.Run("failed is not an error", func(t *testing.T) {
		result := Failed("no such window").CallToolResult()
		if result.IsError {
			t.Error("failed outcome must not set the error flag")
		}
	})

	t.Run("fault sets the error flag", func(t *testing.T) {
		result := Fault(errors.New("clipboard access denied")).CallToolResult()
		if !result.IsError {
			t.Error("fault outcome must set the error flag")
		}
		if got := textOf(t, result); got != "clipboard access denied" {
			t.Errorf("expected fault message, got %q", got)
		}
	})
}

func TestOutcomeCallOutcome(t *testing.T) {
	cases := []struct {
		name    string
		outcome Outcome
		tag     string
	}{
		{"ok", OK("x"), "ok"},
		{"failed", Failed("x"), "failed"},
		{"fault", Fault(errors.New("x")), "fault"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.outcome.CallOutcome().Outcome; got != tc.tag {
				t.Errorf("expected tag %q, got %q", tc.tag, got)
			}
		})
	}
}

func TestBoolOutcome(t *testing.T) {
	ok := OK("worked")
	failed := Failed("did not work")
	if got := boolOutcome(1, ok, failed); got.Kind != OutcomeOK {
		t.Errorf("code 1 should fold to ok, got %s", got.Kind)
	}
	if got := boolOutcome(0, ok, failed); got.Kind != OutcomeFailed {
		t.Errorf("code 0 should fold to failed, got %s", got.Kind)
	}
}

func TestInputDefaults(t *testing.T) {
	if got := buttonOrDefault(""); got != "left" {
		t.Errorf("expected default button left, got %q", got)
	}
	if got := buttonOrDefault("right"); got != "right" {
		t.Errorf("expected right, got %q", got)
	}
	if got := speedOrDefault(0); got != 10 {
		t.Errorf("expected default speed 10, got %d", got)
	}
	if got := clicksOrDefault(0); got != 1 {
		t.Errorf("expected default clicks 1, got %d", got)
	}
}
