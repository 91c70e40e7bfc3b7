package domain

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/winforge/autoit-mcp/internal/autoit"
)

// SendKeysInput represents the MCP tool input for sending keystrokes.
type SendKeysInput struct {
	Keys string `json:"keys" jsonschema:"keystrokes to send, with special keys in braces unless raw"`
	Raw  bool   `json:"raw,omitempty" jsonschema:"send keys literally without interpreting special sequences"`
}

// SendKeysResult represents the MCP tool output for sending keystrokes.
type SendKeysResult struct {
	CallOutcome
}

// SendKeysTool defines the MCP tool schema for sending keystrokes.
func SendKeysTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "send_keys",
		Description: "Sends simulated keystrokes to the active window",
	}
}

// SendKeysHandler sends keystrokes to the active window.
func SendKeysHandler(auto autoit.Automation) mcp.ToolHandlerFor[SendKeysInput, SendKeysResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SendKeysInput) (*mcp.CallToolResult, SendKeysResult, error) {
		_, err := callCode(ctx, auto, func(ctx context.Context) (int, error) {
			return auto.Send(ctx, input.Keys, input.Raw)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), SendKeysResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := OK("Keys sent: %q", input.Keys)
		return outcome.CallToolResult(), SendKeysResult{CallOutcome: outcome.CallOutcome()}, nil
	}
}

// ClipGetInput represents the MCP tool input for reading the clipboard.
type ClipGetInput struct{}

// ClipGetResult represents the MCP tool output for reading the clipboard.
type ClipGetResult struct {
	CallOutcome
	Text string `json:"text" jsonschema:"clipboard text contents"`
}

// ClipGetTool defines the MCP tool schema for reading the clipboard.
func ClipGetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "clip_get",
		Description: "Reads text from the clipboard",
	}
}

// ClipGetHandler reads the clipboard.
func ClipGetHandler(auto autoit.Automation) mcp.ToolHandlerFor[ClipGetInput, ClipGetResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ ClipGetInput) (*mcp.CallToolResult, ClipGetResult, error) {
		text, err := callText(ctx, auto, auto.ClipGet)
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), ClipGetResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := OK("Clipboard contents: %s", text)
		return outcome.CallToolResult(), ClipGetResult{CallOutcome: outcome.CallOutcome(), Text: text}, nil
	}
}

// ClipPutInput represents the MCP tool input for writing the clipboard.
type ClipPutInput struct {
	Text string `json:"text" jsonschema:"text to place on the clipboard"`
}

// ClipPutResult represents the MCP tool output for writing the clipboard.
type ClipPutResult struct {
	CallOutcome
	Code int `json:"code" jsonschema:"delegated call return code"`
}

// ClipPutTool defines the MCP tool schema for writing the clipboard.
func ClipPutTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "clip_put",
		Description: "Writes text to the clipboard",
	}
}

// ClipPutHandler writes the clipboard.
func ClipPutHandler(auto autoit.Automation) mcp.ToolHandlerFor[ClipPutInput, ClipPutResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ClipPutInput) (*mcp.CallToolResult, ClipPutResult, error) {
		code, err := callCode(ctx, auto, func(ctx context.Context) (int, error) {
			return auto.ClipPut(ctx, input.Text)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), ClipPutResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := boolOutcome(code,
			OK("Clipboard set with result: %d", code),
			Failed("Failed to set clipboard text"),
		)
		return outcome.CallToolResult(), ClipPutResult{CallOutcome: outcome.CallOutcome(), Code: code}, nil
	}
}

// SetOptionInput represents the MCP tool input for changing a runtime option.
type SetOptionInput struct {
	Option string `json:"option" jsonschema:"option name, for example SendKeyDelay or WinTitleMatchMode"`
	Value  int    `json:"value" jsonschema:"new option value"`
}

// SetOptionResult represents the MCP tool output for changing a runtime option.
type SetOptionResult struct {
	CallOutcome
	Previous int `json:"previous" jsonschema:"option value before the change"`
}

// SetOptionTool defines the MCP tool schema for changing a runtime option.
func SetOptionTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "set_option",
		Description: "Changes an automation runtime option and reports the previous value",
	}
}

// SetOptionHandler changes a runtime option.
func SetOptionHandler(auto autoit.Automation) mcp.ToolHandlerFor[SetOptionInput, SetOptionResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SetOptionInput) (*mcp.CallToolResult, SetOptionResult, error) {
		previous, err := callCode(ctx, auto, func(ctx context.Context) (int, error) {
			return auto.SetOption(ctx, input.Option, input.Value)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), SetOptionResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := OK("Option %q set to %d (was %d)", input.Option, input.Value, previous)
		return outcome.CallToolResult(), SetOptionResult{CallOutcome: outcome.CallOutcome(), Previous: previous}, nil
	}
}

// ToolTipInput represents the MCP tool input for showing a tooltip.
type ToolTipInput struct {
	Text string `json:"text" jsonschema:"tooltip text, empty hides the tooltip"`
	X    int    `json:"x,omitempty" jsonschema:"tooltip x coordinate in pixels"`
	Y    int    `json:"y,omitempty" jsonschema:"tooltip y coordinate in pixels"`
}

// ToolTipResult represents the MCP tool output for showing a tooltip.
type ToolTipResult struct {
	CallOutcome
}

// ToolTipTool defines the MCP tool schema for showing a tooltip.
func ToolTipTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "tool_tip",
		Description: "Shows a tooltip at the given screen coordinates",
	}
}

// ToolTipHandler shows or hides a tooltip.
func ToolTipHandler(auto autoit.Automation) mcp.ToolHandlerFor[ToolTipInput, ToolTipResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ToolTipInput) (*mcp.CallToolResult, ToolTipResult, error) {
		_, err := callCode(ctx, auto, func(ctx context.Context) (int, error) {
			return auto.ToolTip(ctx, input.Text, input.X, input.Y)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), ToolTipResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		var outcome Outcome
		if input.Text == "" {
			outcome = OK("Tooltip hidden")
		} else {
			outcome = OK("Tooltip shown at (%d, %d)", input.X, input.Y)
		}
		return outcome.CallToolResult(), ToolTipResult{CallOutcome: outcome.CallOutcome()}, nil
	}
}
