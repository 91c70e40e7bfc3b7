package domain

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/winforge/autoit-mcp/internal/autoit"
)

// ControlTarget identifies a control inside a window matched by title.
type ControlTarget struct {
	WindowTarget
	Control string `json:"control" jsonschema:"control identifier, for example Edit1 or a ClassNN name"`
}

// ControlClickInput represents the MCP tool input for clicking a control.
type ControlClickInput struct {
	ControlTarget
	Button string `json:"button,omitempty" jsonschema:"mouse button: left, right, or middle (default left)"`
	Clicks int    `json:"clicks,omitempty" jsonschema:"number of clicks, 0 means one"`
	X      int    `json:"x,omitempty" jsonschema:"click x offset within the control"`
	Y      int    `json:"y,omitempty" jsonschema:"click y offset within the control"`
}

// ControlClickResult represents the MCP tool output for clicking a control.
type ControlClickResult struct {
	CallOutcome
	Code int `json:"code" jsonschema:"delegated call return code"`
}

// ControlClickTool defines the MCP tool schema for clicking a control.
func ControlClickTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "control_click",
		Description: "Clicks a control inside a window matched by title",
	}
}

// ControlClickHandler clicks a control.
func ControlClickHandler(auto autoit.Automation) mcp.ToolHandlerFor[ControlClickInput, ControlClickResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ControlClickInput) (*mcp.CallToolResult, ControlClickResult, error) {
		button := buttonOrDefault(input.Button)
		clicks := clicksOrDefault(input.Clicks)
		code, err := callCode(ctx, auto, func(ctx context.Context) (int, error) {
			return auto.ControlClick(ctx, input.Title, input.Text, input.Control, button, clicks, input.X, input.Y)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), ControlClickResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := boolOutcome(code,
			OK("Control %q clicked with result: %d", input.Control, code),
			Failed("Failed to click control %q in window %q", input.Control, input.Title),
		)
		return outcome.CallToolResult(), ControlClickResult{CallOutcome: outcome.CallOutcome(), Code: code}, nil
	}
}

// ControlClickByHandleInput represents the MCP tool input for clicking a
// control by native handles.
type ControlClickByHandleInput struct {
	WindowHandle  string `json:"window_handle" jsonschema:"hexadecimal window handle"`
	ControlHandle string `json:"control_handle" jsonschema:"hexadecimal control handle"`
	Button        string `json:"button,omitempty" jsonschema:"mouse button: left, right, or middle (default left)"`
	Clicks        int    `json:"clicks,omitempty" jsonschema:"number of clicks, 0 means one"`
	X             int    `json:"x,omitempty" jsonschema:"click x offset within the control"`
	Y             int    `json:"y,omitempty" jsonschema:"click y offset within the control"`
}

// ControlClickByHandleResult represents the MCP tool output for clicking a
// control by native handles.
type ControlClickByHandleResult struct {
	CallOutcome
	Code int `json:"code" jsonschema:"delegated call return code"`
}

// ControlClickByHandleTool defines the MCP tool schema for clicking a control
// by native handles.
func ControlClickByHandleTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "control_click_by_handle",
		Description: "Clicks a control identified by window and control handles",
	}
}

// ControlClickByHandleHandler clicks a control by handles.
func ControlClickByHandleHandler(auto autoit.Automation) mcp.ToolHandlerFor[ControlClickByHandleInput, ControlClickByHandleResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ControlClickByHandleInput) (*mcp.CallToolResult, ControlClickByHandleResult, error) {
		button := buttonOrDefault(input.Button)
		clicks := clicksOrDefault(input.Clicks)
		code, err := callCode(ctx, auto, func(ctx context.Context) (int, error) {
			return auto.ControlClickByHandle(ctx, input.WindowHandle, input.ControlHandle, button, clicks, input.X, input.Y)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), ControlClickByHandleResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := boolOutcome(code,
			OK("Control %s clicked with result: %d", input.ControlHandle, code),
			Failed("Failed to click control %s", input.ControlHandle),
		)
		return outcome.CallToolResult(), ControlClickByHandleResult{CallOutcome: outcome.CallOutcome(), Code: code}, nil
	}
}

// ControlCommandInput represents the MCP tool input for sending a control
// command.
type ControlCommandInput struct {
	ControlTarget
	Command string `json:"command" jsonschema:"command name, for example GetCurrentSelection or IsChecked"`
	Extra   string `json:"extra,omitempty" jsonschema:"command argument when the command takes one"`
}

// ControlCommandResult represents the MCP tool output for sending a control
// command.
type ControlCommandResult struct {
	CallOutcome
	Value string `json:"value" jsonschema:"command return value as text"`
}

// ControlCommandTool defines the MCP tool schema for sending a control
// command.
func ControlCommandTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "control_command",
		Description: "Sends a command to a control and returns its textual result",
	}
}

// ControlCommandHandler sends a control command.
func ControlCommandHandler(auto autoit.Automation) mcp.ToolHandlerFor[ControlCommandInput, ControlCommandResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ControlCommandInput) (*mcp.CallToolResult, ControlCommandResult, error) {
		value, err := callText(ctx, auto, func(ctx context.Context) (string, error) {
			return auto.ControlCommand(ctx, input.Title, input.Text, input.Control, input.Command, input.Extra)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), ControlCommandResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := OK("Control %q command %q result: %s", input.Control, input.Command, value)
		return outcome.CallToolResult(), ControlCommandResult{CallOutcome: outcome.CallOutcome(), Value: value}, nil
	}
}

// ControlGetTextInput represents the MCP tool input for reading control text.
type ControlGetTextInput struct {
	ControlTarget
}

// ControlGetTextResult represents the MCP tool output for reading control
// text.
type ControlGetTextResult struct {
	CallOutcome
	ControlText string `json:"control_text" jsonschema:"text of the control"`
}

// ControlGetTextTool defines the MCP tool schema for reading control text.
func ControlGetTextTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "control_get_text",
		Description: "Reads the text of a control inside a window matched by title",
	}
}

// ControlGetTextHandler reads control text.
func ControlGetTextHandler(auto autoit.Automation) mcp.ToolHandlerFor[ControlGetTextInput, ControlGetTextResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ControlGetTextInput) (*mcp.CallToolResult, ControlGetTextResult, error) {
		text, err := callText(ctx, auto, func(ctx context.Context) (string, error) {
			return auto.ControlGetText(ctx, input.Title, input.Text, input.Control)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), ControlGetTextResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := OK("Control %q text: %s", input.Control, text)
		return outcome.CallToolResult(), ControlGetTextResult{CallOutcome: outcome.CallOutcome(), ControlText: text}, nil
	}
}

// ControlSetTextInput represents the MCP tool input for setting control text.
type ControlSetTextInput struct {
	ControlTarget
	Value string `json:"value" jsonschema:"new text for the control"`
}

// ControlSetTextResult represents the MCP tool output for setting control
// text.
type ControlSetTextResult struct {
	CallOutcome
	Code int `json:"code" jsonschema:"delegated call return code"`
}

// ControlSetTextTool defines the MCP tool schema for setting control text.
func ControlSetTextTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "control_set_text",
		Description: "Replaces the text of a control inside a window matched by title",
	}
}

// ControlSetTextHandler sets control text.
func ControlSetTextHandler(auto autoit.Automation) mcp.ToolHandlerFor[ControlSetTextInput, ControlSetTextResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ControlSetTextInput) (*mcp.CallToolResult, ControlSetTextResult, error) {
		code, err := callCode(ctx, auto, func(ctx context.Context) (int, error) {
			return auto.ControlSetText(ctx, input.Title, input.Text, input.Control, input.Value)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), ControlSetTextResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := boolOutcome(code,
			OK("Control %q text set with result: %d", input.Control, code),
			Failed("Failed to set text for control %q in window %q", input.Control, input.Title),
		)
		return outcome.CallToolResult(), ControlSetTextResult{CallOutcome: outcome.CallOutcome(), Code: code}, nil
	}
}

// ControlSendInput represents the MCP tool input for sending keys to a
// control.
type ControlSendInput struct {
	ControlTarget
	Keys string `json:"keys" jsonschema:"keystrokes to send, with special keys in braces unless raw"`
	Raw  bool   `json:"raw,omitempty" jsonschema:"send keys literally without interpreting special sequences"`
}

// ControlSendResult represents the MCP tool output for sending keys to a
// control.
type ControlSendResult struct {
	CallOutcome
	Code int `json:"code" jsonschema:"delegated call return code"`
}

// ControlSendTool defines the MCP tool schema for sending keys to a control.
func ControlSendTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "control_send",
		Description: "Sends simulated keystrokes directly to a control",
	}
}

// ControlSendHandler sends keys to a control.
func ControlSendHandler(auto autoit.Automation) mcp.ToolHandlerFor[ControlSendInput, ControlSendResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ControlSendInput) (*mcp.CallToolResult, ControlSendResult, error) {
		code, err := callCode(ctx, auto, func(ctx context.Context) (int, error) {
			return auto.ControlSend(ctx, input.Title, input.Text, input.Control, input.Keys, input.Raw)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), ControlSendResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := boolOutcome(code,
			OK("Keys sent to control %q with result: %d", input.Control, code),
			Failed("Failed to send keys to control %q in window %q", input.Control, input.Title),
		)
		return outcome.CallToolResult(), ControlSendResult{CallOutcome: outcome.CallOutcome(), Code: code}, nil
	}
}

// ControlFocusInput represents the MCP tool input for focusing a control.
type ControlFocusInput struct {
	ControlTarget
}

// ControlFocusResult represents the MCP tool output for focusing a control.
type ControlFocusResult struct {
	CallOutcome
	Code int `json:"code" jsonschema:"delegated call return code"`
}

// ControlFocusTool defines the MCP tool schema for focusing a control.
func ControlFocusTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "control_focus",
		Description: "Gives input focus to a control inside a window matched by title",
	}
}

// ControlFocusHandler focuses a control.
func ControlFocusHandler(auto autoit.Automation) mcp.ToolHandlerFor[ControlFocusInput, ControlFocusResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ControlFocusInput) (*mcp.CallToolResult, ControlFocusResult, error) {
		code, err := callCode(ctx, auto, func(ctx context.Context) (int, error) {
			return auto.ControlFocus(ctx, input.Title, input.Text, input.Control)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), ControlFocusResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := boolOutcome(code,
			OK("Control %q focused with result: %d", input.Control, code),
			Failed("Failed to focus control %q in window %q", input.Control, input.Title),
		)
		return outcome.CallToolResult(), ControlFocusResult{CallOutcome: outcome.CallOutcome(), Code: code}, nil
	}
}

// ControlGetHandleInput represents the MCP tool input for reading a control
// handle.
type ControlGetHandleInput struct {
	WindowHandle string `json:"window_handle" jsonschema:"hexadecimal handle of the containing window"`
	Control      string `json:"control" jsonschema:"control identifier, for example Edit1 or a ClassNN name"`
}

// ControlGetHandleResult represents the MCP tool output for reading a control
// handle.
type ControlGetHandleResult struct {
	CallOutcome
	Handle string `json:"handle" jsonschema:"hexadecimal control handle, empty when not found"`
}

// ControlGetHandleTool defines the MCP tool schema for reading a control
// handle.
func ControlGetHandleTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "control_get_handle",
		Description: "Reads the native handle of a control inside a window",
	}
}

// ControlGetHandleHandler reads a control handle.
func ControlGetHandleHandler(auto autoit.Automation) mcp.ToolHandlerFor[ControlGetHandleInput, ControlGetHandleResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ControlGetHandleInput) (*mcp.CallToolResult, ControlGetHandleResult, error) {
		handle, err := callText(ctx, auto, func(ctx context.Context) (string, error) {
			return auto.ControlGetHandle(ctx, input.WindowHandle, input.Control)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), ControlGetHandleResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		if handle == "" {
			outcome := Failed("Failed to get handle for control %q", input.Control)
			return outcome.CallToolResult(), ControlGetHandleResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := OK("Control %q handle: %s", input.Control, handle)
		return outcome.CallToolResult(), ControlGetHandleResult{CallOutcome: outcome.CallOutcome(), Handle: handle}, nil
	}
}

// ControlGetPosInput represents the MCP tool input for reading control
// geometry.
type ControlGetPosInput struct {
	ControlTarget
}

// ControlGetPosResult represents the MCP tool output for reading control
// geometry.
type ControlGetPosResult struct {
	CallOutcome
	Left   int `json:"left" jsonschema:"control left edge relative to the window"`
	Top    int `json:"top" jsonschema:"control top edge relative to the window"`
	Width  int `json:"width" jsonschema:"control width in pixels"`
	Height int `json:"height" jsonschema:"control height in pixels"`
}

// ControlGetPosTool defines the MCP tool schema for reading control geometry.
func ControlGetPosTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "control_get_pos",
		Description: "Reads the position and size of a control inside a window",
	}
}

// ControlGetPosHandler reads control geometry.
func ControlGetPosHandler(auto autoit.Automation) mcp.ToolHandlerFor[ControlGetPosInput, ControlGetPosResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ControlGetPosInput) (*mcp.CallToolResult, ControlGetPosResult, error) {
		if err := auto.Initialize(ctx); err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), ControlGetPosResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		rect, err := auto.ControlGetPos(ctx, input.Title, input.Text, input.Control)
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), ControlGetPosResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		width := rect.Right - rect.Left
		height := rect.Bottom - rect.Top
		outcome := OK("Control %q at (%d, %d) size %dx%d", input.Control, rect.Left, rect.Top, width, height)
		result := ControlGetPosResult{
			CallOutcome: outcome.CallOutcome(),
			Left:        rect.Left,
			Top:         rect.Top,
			Width:       width,
			Height:      height,
		}
		return outcome.CallToolResult(), result, nil
	}
}

// ControlMoveInput represents the MCP tool input for moving or resizing a
// control.
type ControlMoveInput struct {
	ControlTarget
	X      int `json:"x" jsonschema:"new left edge relative to the window"`
	Y      int `json:"y" jsonschema:"new top edge relative to the window"`
	Width  int `json:"width,omitempty" jsonschema:"new width in pixels, 0 keeps the current width"`
	Height int `json:"height,omitempty" jsonschema:"new height in pixels, 0 keeps the current height"`
}

// ControlMoveResult represents the MCP tool output for moving or resizing a
// control.
type ControlMoveResult struct {
	CallOutcome
	Code int `json:"code" jsonschema:"delegated call return code"`
}

// ControlMoveTool defines the MCP tool schema for moving or resizing a
// control.
func ControlMoveTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "control_move",
		Description: "Moves and optionally resizes a control inside a window",
	}
}

// ControlMoveHandler moves or resizes a control.
func ControlMoveHandler(auto autoit.Automation) mcp.ToolHandlerFor[ControlMoveInput, ControlMoveResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ControlMoveInput) (*mcp.CallToolResult, ControlMoveResult, error) {
		code, err := callCode(ctx, auto, func(ctx context.Context) (int, error) {
			return auto.ControlMove(ctx, input.Title, input.Text, input.Control, input.X, input.Y, input.Width, input.Height)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), ControlMoveResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := boolOutcome(code,
			OK("Control %q moved to (%d, %d) with result: %d", input.Control, input.X, input.Y, code),
			Failed("Failed to move control %q in window %q", input.Control, input.Title),
		)
		return outcome.CallToolResult(), ControlMoveResult{CallOutcome: outcome.CallOutcome(), Code: code}, nil
	}
}

// ControlShowInput represents the MCP tool input for showing a control.
type ControlShowInput struct {
	ControlTarget
}

// ControlShowResult represents the MCP tool output for showing a control.
type ControlShowResult struct {
	CallOutcome
	Code int `json:"code" jsonschema:"delegated call return code"`
}

// ControlShowTool defines the MCP tool schema for showing a control.
func ControlShowTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "control_show",
		Description: "Shows a hidden control inside a window matched by title",
	}
}

// ControlShowHandler shows a control.
func ControlShowHandler(auto autoit.Automation) mcp.ToolHandlerFor[ControlShowInput, ControlShowResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ControlShowInput) (*mcp.CallToolResult, ControlShowResult, error) {
		code, err := callCode(ctx, auto, func(ctx context.Context) (int, error) {
			return auto.ControlShow(ctx, input.Title, input.Text, input.Control)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), ControlShowResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := boolOutcome(code,
			OK("Control %q shown with result: %d", input.Control, code),
			Failed("Failed to show control %q in window %q", input.Control, input.Title),
		)
		return outcome.CallToolResult(), ControlShowResult{CallOutcome: outcome.CallOutcome(), Code: code}, nil
	}
}

// ControlHideInput represents the MCP tool input for hiding a control.
type ControlHideInput struct {
	ControlTarget
}

// ControlHideResult represents the MCP tool output for hiding a control.
type ControlHideResult struct {
	CallOutcome
	Code int `json:"code" jsonschema:"delegated call return code"`
}

// ControlHideTool defines the MCP tool schema for hiding a control.
func ControlHideTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "control_hide",
		Description: "Hides a control inside a window matched by title",
	}
}

// ControlHideHandler hides a control.
func ControlHideHandler(auto autoit.Automation) mcp.ToolHandlerFor[ControlHideInput, ControlHideResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ControlHideInput) (*mcp.CallToolResult, ControlHideResult, error) {
		code, err := callCode(ctx, auto, func(ctx context.Context) (int, error) {
			return auto.ControlHide(ctx, input.Title, input.Text, input.Control)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), ControlHideResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := boolOutcome(code,
			OK("Control %q hidden with result: %d", input.Control, code),
			Failed("Failed to hide control %q in window %q", input.Control, input.Title),
		)
		return outcome.CallToolResult(), ControlHideResult{CallOutcome: outcome.CallOutcome(), Code: code}, nil
	}
}
