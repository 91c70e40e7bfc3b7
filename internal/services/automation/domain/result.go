package domain

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/winforge/autoit-mcp/internal/autoit"
)

// OutcomeKind tags how a delegated automation call concluded.
type OutcomeKind string

const (
	// OutcomeOK means the delegated call reported success.
	OutcomeOK OutcomeKind = "ok"
	// OutcomeFailed means the delegated call completed but reported an
	// unsuccessful result, such as a window that was never found. Failed is
	// still a successful protocol call.
	OutcomeFailed OutcomeKind = "failed"
	// OutcomeFault means the delegated call itself threw. Fault is the only
	// kind that raises the envelope's error flag.
	OutcomeFault OutcomeKind = "fault"
)

// Outcome is the folded result of one delegated automation call.
type Outcome struct {
	Kind OutcomeKind
	Text string
}

// OK builds a success outcome with a formatted narrative.
func OK(format string, args ...any) Outcome {
	return Outcome{Kind: OutcomeOK, Text: fmt.Sprintf(format, args...)}
}

// Failed builds an operational-failure outcome with a formatted narrative.
func Failed(format string, args ...any) Outcome {
	return Outcome{Kind: OutcomeFailed, Text: fmt.Sprintf(format, args...)}
}

// Fault builds a fault outcome from a thrown error.
func Fault(err error) Outcome {
	return Outcome{Kind: OutcomeFault, Text: err.Error()}
}

// IsFault reports whether the outcome raises the error flag.
func (o Outcome) IsFault() bool {
	return o.Kind == OutcomeFault
}

// CallToolResult renders the outcome as an MCP response envelope.
func (o Outcome) CallToolResult() *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: o.Text}},
		IsError: o.IsFault(),
	}
}

// CallOutcome is the structured half of every tool result, mirroring the
// envelope's tag and narrative so callers can branch without parsing prose.
type CallOutcome struct {
	Outcome string `json:"outcome" jsonschema:"tagged outcome: ok, failed, or fault"`
	Detail  string `json:"detail" jsonschema:"narrative text describing the delegated call"`
}

// CallOutcome converts the outcome into its structured form.
func (o Outcome) CallOutcome() CallOutcome {
	return CallOutcome{Outcome: string(o.Kind), Detail: o.Text}
}

// Narration returns the embedded outcome. Tool results embed CallOutcome, so
// every result satisfies Narrated and middleware can observe how a call
// concluded without knowing its concrete type.
func (c CallOutcome) Narration() CallOutcome { return c }

// Narrated is implemented by every tool result through its embedded
// CallOutcome.
type Narrated interface {
	Narration() CallOutcome
}

// boolOutcome folds a 1-success/0-failure return code.
func boolOutcome(code int, okText, failedText Outcome) Outcome {
	if code == 1 {
		return okText
	}
	return failedText
}

// callCode runs a code-returning primitive after ensuring the native library
// is loaded.
func callCode(ctx context.Context, auto autoit.Automation, call func(context.Context) (int, error)) (int, error) {
	if err := auto.Initialize(ctx); err != nil {
		return 0, err
	}
	return call(ctx)
}

// callText runs a text-returning primitive after ensuring the native library
// is loaded.
func callText(ctx context.Context, auto autoit.Automation, call func(context.Context) (string, error)) (string, error) {
	if err := auto.Initialize(ctx); err != nil {
		return "", err
	}
	return call(ctx)
}

const (
	defaultMouseButton = "left"
	defaultMouseSpeed  = 10
	defaultClickCount  = 1
)

func buttonOrDefault(button string) string {
	if button == "" {
		return defaultMouseButton
	}
	return button
}

func speedOrDefault(speed int) int {
	if speed <= 0 {
		return defaultMouseSpeed
	}
	return speed
}

func clicksOrDefault(clicks int) int {
	if clicks <= 0 {
		return defaultClickCount
	}
	return clicks
}
