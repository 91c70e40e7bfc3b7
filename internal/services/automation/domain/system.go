package domain

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/winforge/autoit-mcp/internal/autoit"
)

// ShutdownInput represents the MCP tool input for a system shutdown request.
type ShutdownInput struct {
	Flags int `json:"flags" jsonschema:"shutdown flag combination: 1 shutdown, 2 reboot, 4 force, 8 power down, 32 suspend, 64 hibernate"`
}

// ShutdownResult represents the MCP tool output for a system shutdown
// request.
type ShutdownResult struct {
	CallOutcome
	Code int `json:"code" jsonschema:"delegated call return code"`
}

// ShutdownTool defines the MCP tool schema for a system shutdown request.
func ShutdownTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "shutdown",
		Description: "Requests a system shutdown, reboot, suspend, or hibernate",
	}
}

// ShutdownHandler requests a system shutdown.
func ShutdownHandler(auto autoit.Automation) mcp.ToolHandlerFor[ShutdownInput, ShutdownResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ShutdownInput) (*mcp.CallToolResult, ShutdownResult, error) {
		code, err := callCode(ctx, auto, func(ctx context.Context) (int, error) {
			return auto.Shutdown(ctx, input.Flags)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), ShutdownResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := boolOutcome(code,
			OK("Shutdown requested with flags %d and result: %d", input.Flags, code),
			Failed("Failed to request shutdown with flags %d", input.Flags),
		)
		return outcome.CallToolResult(), ShutdownResult{CallOutcome: outcome.CallOutcome(), Code: code}, nil
	}
}
