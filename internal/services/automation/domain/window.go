package domain

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/winforge/autoit-mcp/internal/autoit"
)

// WindowTarget identifies a window by title and optional window text, using
// the automation library's title matching rules.
type WindowTarget struct {
	Title string `json:"title" jsonschema:"window title to match"`
	Text  string `json:"text,omitempty" jsonschema:"optional window text to narrow the match"`
}

// WinActivateInput represents the MCP tool input for activating a window.
type WinActivateInput struct {
	WindowTarget
}

// WinActivateResult represents the MCP tool output for activating a window.
type WinActivateResult struct {
	CallOutcome
	Code int `json:"code" jsonschema:"delegated call return code"`
}

// WinActivateTool defines the MCP tool schema for activating a window.
func WinActivateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "win_activate",
		Description: "Activates a window matched by title, bringing it to the foreground",
	}
}

// WinActivateHandler activates a window by title.
func WinActivateHandler(auto autoit.Automation) mcp.ToolHandlerFor[WinActivateInput, WinActivateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input WinActivateInput) (*mcp.CallToolResult, WinActivateResult, error) {
		code, err := callCode(ctx, auto, func(ctx context.Context) (int, error) {
			return auto.WinActivate(ctx, input.Title, input.Text)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), WinActivateResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := boolOutcome(code,
			OK("Window %q activated with result: %d", input.Title, code),
			Failed("Failed to activate window %q", input.Title),
		)
		return outcome.CallToolResult(), WinActivateResult{CallOutcome: outcome.CallOutcome(), Code: code}, nil
	}
}

// WinActivateByHandleInput represents the MCP tool input for activating a
// window by native handle.
type WinActivateByHandleInput struct {
	Handle string `json:"handle" jsonschema:"hexadecimal window handle, for example 0x00A4063C"`
}

// WinActivateByHandleResult represents the MCP tool output for activating a
// window by native handle.
type WinActivateByHandleResult struct {
	CallOutcome
	Code int `json:"code" jsonschema:"delegated call return code"`
}

// WinActivateByHandleTool defines the MCP tool schema for activating a window
// by native handle.
func WinActivateByHandleTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "win_activate_by_handle",
		Description: "Activates a window identified by its native handle",
	}
}

// WinActivateByHandleHandler activates a window by handle.
func WinActivateByHandleHandler(auto autoit.Automation) mcp.ToolHandlerFor[WinActivateByHandleInput, WinActivateByHandleResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input WinActivateByHandleInput) (*mcp.CallToolResult, WinActivateByHandleResult, error) {
		code, err := callCode(ctx, auto, func(ctx context.Context) (int, error) {
			return auto.WinActivateByHandle(ctx, input.Handle)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), WinActivateByHandleResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := boolOutcome(code,
			OK("Window %s activated with result: %d", input.Handle, code),
			Failed("Failed to activate window %s", input.Handle),
		)
		return outcome.CallToolResult(), WinActivateByHandleResult{CallOutcome: outcome.CallOutcome(), Code: code}, nil
	}
}

// WinActiveInput represents the MCP tool input for testing whether a window is
// active.
type WinActiveInput struct {
	WindowTarget
}

// WinActiveResult represents the MCP tool output for testing whether a window
// is active.
type WinActiveResult struct {
	CallOutcome
	Active bool `json:"active" jsonschema:"whether the window is currently active"`
}

// WinActiveTool defines the MCP tool schema for testing whether a window is
// active.
func WinActiveTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "win_active",
		Description: "Reports whether a window matched by title is currently active",
	}
}

// WinActiveHandler tests whether a window is active.
func WinActiveHandler(auto autoit.Automation) mcp.ToolHandlerFor[WinActiveInput, WinActiveResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input WinActiveInput) (*mcp.CallToolResult, WinActiveResult, error) {
		code, err := callCode(ctx, auto, func(ctx context.Context) (int, error) {
			return auto.WinActive(ctx, input.Title, input.Text)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), WinActiveResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		var outcome Outcome
		if code == 1 {
			outcome = OK("Window %q is active", input.Title)
		} else {
			outcome = OK("Window %q is not active", input.Title)
		}
		return outcome.CallToolResult(), WinActiveResult{CallOutcome: outcome.CallOutcome(), Active: code == 1}, nil
	}
}

// WinCloseInput represents the MCP tool input for closing a window.
type WinCloseInput struct {
	WindowTarget
}

// WinCloseResult represents the MCP tool output for closing a window.
type WinCloseResult struct {
	CallOutcome
	Code int `json:"code" jsonschema:"delegated call return code"`
}

// WinCloseTool defines the MCP tool schema for closing a window.
func WinCloseTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "win_close",
		Description: "Closes a window matched by title",
	}
}

// WinCloseHandler closes a window.
func WinCloseHandler(auto autoit.Automation) mcp.ToolHandlerFor[WinCloseInput, WinCloseResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input WinCloseInput) (*mcp.CallToolResult, WinCloseResult, error) {
		code, err := callCode(ctx, auto, func(ctx context.Context) (int, error) {
			return auto.WinClose(ctx, input.Title, input.Text)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), WinCloseResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := boolOutcome(code,
			OK("Window %q closed with result: %d", input.Title, code),
			Failed("Failed to close window %q", input.Title),
		)
		return outcome.CallToolResult(), WinCloseResult{CallOutcome: outcome.CallOutcome(), Code: code}, nil
	}
}

// WinExistsInput represents the MCP tool input for testing window existence.
type WinExistsInput struct {
	WindowTarget
}

// WinExistsResult represents the MCP tool output for testing window existence.
type WinExistsResult struct {
	CallOutcome
	Exists bool `json:"exists" jsonschema:"whether a matching window exists"`
}

// WinExistsTool defines the MCP tool schema for testing window existence.
func WinExistsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "win_exists",
		Description: "Reports whether a window matched by title exists",
	}
}

// WinExistsHandler tests whether a window exists.
func WinExistsHandler(auto autoit.Automation) mcp.ToolHandlerFor[WinExistsInput, WinExistsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input WinExistsInput) (*mcp.CallToolResult, WinExistsResult, error) {
		code, err := callCode(ctx, auto, func(ctx context.Context) (int, error) {
			return auto.WinExists(ctx, input.Title, input.Text)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), WinExistsResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		var outcome Outcome
		if code == 1 {
			outcome = OK("Window %q exists", input.Title)
		} else {
			outcome = OK("Window %q does not exist", input.Title)
		}
		return outcome.CallToolResult(), WinExistsResult{CallOutcome: outcome.CallOutcome(), Exists: code == 1}, nil
	}
}

// WinGetHandleInput represents the MCP tool input for reading a window handle.
type WinGetHandleInput struct {
	WindowTarget
}

// WinGetHandleResult represents the MCP tool output for reading a window
// handle.
type WinGetHandleResult struct {
	CallOutcome
	Handle string `json:"handle" jsonschema:"hexadecimal window handle, empty when not found"`
}

// WinGetHandleTool defines the MCP tool schema for reading a window handle.
func WinGetHandleTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "win_get_handle",
		Description: "Reads the native handle of a window matched by title",
	}
}

// WinGetHandleHandler reads a window handle.
func WinGetHandleHandler(auto autoit.Automation) mcp.ToolHandlerFor[WinGetHandleInput, WinGetHandleResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input WinGetHandleInput) (*mcp.CallToolResult, WinGetHandleResult, error) {
		handle, err := callText(ctx, auto, func(ctx context.Context) (string, error) {
			return auto.WinGetHandle(ctx, input.Title, input.Text)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), WinGetHandleResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		if handle == "" {
			outcome := Failed("Failed to get handle for window %q", input.Title)
			return outcome.CallToolResult(), WinGetHandleResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := OK("Window %q handle: %s", input.Title, handle)
		return outcome.CallToolResult(), WinGetHandleResult{CallOutcome: outcome.CallOutcome(), Handle: handle}, nil
	}
}

// WinGetPosInput represents the MCP tool input for reading window geometry.
type WinGetPosInput struct {
	WindowTarget
}

// WinGetPosResult represents the MCP tool output for reading window geometry.
type WinGetPosResult struct {
	CallOutcome
	Left   int `json:"left" jsonschema:"window left edge in pixels"`
	Top    int `json:"top" jsonschema:"window top edge in pixels"`
	Width  int `json:"width" jsonschema:"window width in pixels"`
	Height int `json:"height" jsonschema:"window height in pixels"`
}

// WinGetPosTool defines the MCP tool schema for reading window geometry.
func WinGetPosTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "win_get_pos",
		Description: "Reads the position and size of a window matched by title",
	}
}

// WinGetPosHandler reads window geometry.
func WinGetPosHandler(auto autoit.Automation) mcp.ToolHandlerFor[WinGetPosInput, WinGetPosResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input WinGetPosInput) (*mcp.CallToolResult, WinGetPosResult, error) {
		if err := auto.Initialize(ctx); err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), WinGetPosResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		rect, err := auto.WinGetPos(ctx, input.Title, input.Text)
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), WinGetPosResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		width := rect.Right - rect.Left
		height := rect.Bottom - rect.Top
		outcome := OK("Window %q at (%d, %d) size %dx%d", input.Title, rect.Left, rect.Top, width, height)
		result := WinGetPosResult{
			CallOutcome: outcome.CallOutcome(),
			Left:        rect.Left,
			Top:         rect.Top,
			Width:       width,
			Height:      height,
		}
		return outcome.CallToolResult(), result, nil
	}
}

// WinGetTextInput represents the MCP tool input for reading window text.
type WinGetTextInput struct {
	WindowTarget
}

// WinGetTextResult represents the MCP tool output for reading window text.
type WinGetTextResult struct {
	CallOutcome
	WindowText string `json:"window_text" jsonschema:"text found in the window"`
}

// WinGetTextTool defines the MCP tool schema for reading window text.
func WinGetTextTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "win_get_text",
		Description: "Reads the text of a window matched by title",
	}
}

// WinGetTextHandler reads window text.
func WinGetTextHandler(auto autoit.Automation) mcp.ToolHandlerFor[WinGetTextInput, WinGetTextResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input WinGetTextInput) (*mcp.CallToolResult, WinGetTextResult, error) {
		text, err := callText(ctx, auto, func(ctx context.Context) (string, error) {
			return auto.WinGetText(ctx, input.Title, input.Text)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), WinGetTextResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := OK("Window %q text: %s", input.Title, text)
		return outcome.CallToolResult(), WinGetTextResult{CallOutcome: outcome.CallOutcome(), WindowText: text}, nil
	}
}

// WinGetTitleInput represents the MCP tool input for reading the full window
// title.
type WinGetTitleInput struct {
	WindowTarget
}

// WinGetTitleResult represents the MCP tool output for reading the full window
// title.
type WinGetTitleResult struct {
	CallOutcome
	FullTitle string `json:"full_title" jsonschema:"full title of the matched window"`
}

// WinGetTitleTool defines the MCP tool schema for reading the full window
// title.
func WinGetTitleTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "win_get_title",
		Description: "Reads the full title of a window matched by title",
	}
}

// WinGetTitleHandler reads the full window title.
func WinGetTitleHandler(auto autoit.Automation) mcp.ToolHandlerFor[WinGetTitleInput, WinGetTitleResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input WinGetTitleInput) (*mcp.CallToolResult, WinGetTitleResult, error) {
		title, err := callText(ctx, auto, func(ctx context.Context) (string, error) {
			return auto.WinGetTitle(ctx, input.Title, input.Text)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), WinGetTitleResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := OK("Window title: %s", title)
		return outcome.CallToolResult(), WinGetTitleResult{CallOutcome: outcome.CallOutcome(), FullTitle: title}, nil
	}
}

// WinMoveInput represents the MCP tool input for moving or resizing a window.
type WinMoveInput struct {
	WindowTarget
	X      int `json:"x" jsonschema:"new left edge in pixels"`
	Y      int `json:"y" jsonschema:"new top edge in pixels"`
	Width  int `json:"width,omitempty" jsonschema:"new width in pixels, 0 keeps the current width"`
	Height int `json:"height,omitempty" jsonschema:"new height in pixels, 0 keeps the current height"`
}

// WinMoveResult represents the MCP tool output for moving or resizing a
// window.
type WinMoveResult struct {
	CallOutcome
	Code int `json:"code" jsonschema:"delegated call return code"`
}

// WinMoveTool defines the MCP tool schema for moving or resizing a window.
func WinMoveTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "win_move",
		Description: "Moves and optionally resizes a window matched by title",
	}
}

// WinMoveHandler moves or resizes a window.
func WinMoveHandler(auto autoit.Automation) mcp.ToolHandlerFor[WinMoveInput, WinMoveResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input WinMoveInput) (*mcp.CallToolResult, WinMoveResult, error) {
		code, err := callCode(ctx, auto, func(ctx context.Context) (int, error) {
			return auto.WinMove(ctx, input.Title, input.Text, input.X, input.Y, input.Width, input.Height)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), WinMoveResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := boolOutcome(code,
			OK("Window %q moved to (%d, %d) with result: %d", input.Title, input.X, input.Y, code),
			Failed("Failed to move window %q", input.Title),
		)
		return outcome.CallToolResult(), WinMoveResult{CallOutcome: outcome.CallOutcome(), Code: code}, nil
	}
}

// WinSetStateInput represents the MCP tool input for changing window state.
type WinSetStateInput struct {
	WindowTarget
	State int `json:"state" jsonschema:"show state flag: 0 hide, 5 show, 6 minimize, 3 maximize, 9 restore"`
}

// WinSetStateResult represents the MCP tool output for changing window state.
type WinSetStateResult struct {
	CallOutcome
	Code int `json:"code" jsonschema:"delegated call return code"`
}

// WinSetStateTool defines the MCP tool schema for changing window state.
func WinSetStateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "win_set_state",
		Description: "Shows, hides, minimizes, maximizes, or restores a window matched by title",
	}
}

// WinSetStateHandler changes window show state.
func WinSetStateHandler(auto autoit.Automation) mcp.ToolHandlerFor[WinSetStateInput, WinSetStateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input WinSetStateInput) (*mcp.CallToolResult, WinSetStateResult, error) {
		code, err := callCode(ctx, auto, func(ctx context.Context) (int, error) {
			return auto.WinSetState(ctx, input.Title, input.Text, input.State)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), WinSetStateResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := boolOutcome(code,
			OK("Window %q state set to %d with result: %d", input.Title, input.State, code),
			Failed("Failed to set state for window %q", input.Title),
		)
		return outcome.CallToolResult(), WinSetStateResult{CallOutcome: outcome.CallOutcome(), Code: code}, nil
	}
}

// WinWaitInput represents the MCP tool input for waiting on a window.
type WinWaitInput struct {
	WindowTarget
	TimeoutSeconds int `json:"timeout_seconds,omitempty" jsonschema:"seconds to wait, 0 waits indefinitely"`
}

// WinWaitResult represents the MCP tool output for waiting on a window.
type WinWaitResult struct {
	CallOutcome
	Code int `json:"code" jsonschema:"delegated call return code"`
}

// WinWaitTool defines the MCP tool schema for waiting on a window.
func WinWaitTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "win_wait",
		Description: "Waits until a window matched by title exists",
	}
}

// WinWaitHandler waits for a window to exist.
func WinWaitHandler(auto autoit.Automation) mcp.ToolHandlerFor[WinWaitInput, WinWaitResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input WinWaitInput) (*mcp.CallToolResult, WinWaitResult, error) {
		code, err := callCode(ctx, auto, func(ctx context.Context) (int, error) {
			return auto.WinWait(ctx, input.Title, input.Text, input.TimeoutSeconds)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), WinWaitResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := boolOutcome(code,
			OK("Window %q appeared with result: %d", input.Title, code),
			Failed("Timed out waiting for window %q", input.Title),
		)
		return outcome.CallToolResult(), WinWaitResult{CallOutcome: outcome.CallOutcome(), Code: code}, nil
	}
}

// WinWaitActiveInput represents the MCP tool input for waiting until a window
// is active.
type WinWaitActiveInput struct {
	WindowTarget
	TimeoutSeconds int `json:"timeout_seconds,omitempty" jsonschema:"seconds to wait, 0 waits indefinitely"`
}

// WinWaitActiveResult represents the MCP tool output for waiting until a
// window is active.
type WinWaitActiveResult struct {
	CallOutcome
	Code int `json:"code" jsonschema:"delegated call return code"`
}

// WinWaitActiveTool defines the MCP tool schema for waiting until a window is
// active.
func WinWaitActiveTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "win_wait_active",
		Description: "Waits until a window matched by title becomes active",
	}
}

// WinWaitActiveHandler waits for a window to become active.
func WinWaitActiveHandler(auto autoit.Automation) mcp.ToolHandlerFor[WinWaitActiveInput, WinWaitActiveResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input WinWaitActiveInput) (*mcp.CallToolResult, WinWaitActiveResult, error) {
		code, err := callCode(ctx, auto, func(ctx context.Context) (int, error) {
			return auto.WinWaitActive(ctx, input.Title, input.Text, input.TimeoutSeconds)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), WinWaitActiveResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := boolOutcome(code,
			OK("Window %q became active with result: %d", input.Title, code),
			Failed("Timed out waiting for window %q to become active", input.Title),
		)
		return outcome.CallToolResult(), WinWaitActiveResult{CallOutcome: outcome.CallOutcome(), Code: code}, nil
	}
}

// WinWaitCloseInput represents the MCP tool input for waiting until a window
// closes.
type WinWaitCloseInput struct {
	WindowTarget
	TimeoutSeconds int `json:"timeout_seconds,omitempty" jsonschema:"seconds to wait, 0 waits indefinitely"`
}

// WinWaitCloseResult represents the MCP tool output for waiting until a window
// closes.
type WinWaitCloseResult struct {
	CallOutcome
	Code int `json:"code" jsonschema:"delegated call return code"`
}

// WinWaitCloseTool defines the MCP tool schema for waiting until a window
// closes.
func WinWaitCloseTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "win_wait_close",
		Description: "Waits until a window matched by title no longer exists",
	}
}

// WinWaitCloseHandler waits for a window to close.
func WinWaitCloseHandler(auto autoit.Automation) mcp.ToolHandlerFor[WinWaitCloseInput, WinWaitCloseResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input WinWaitCloseInput) (*mcp.CallToolResult, WinWaitCloseResult, error) {
		code, err := callCode(ctx, auto, func(ctx context.Context) (int, error) {
			return auto.WinWaitClose(ctx, input.Title, input.Text, input.TimeoutSeconds)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), WinWaitCloseResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := boolOutcome(code,
			OK("Window %q closed with result: %d", input.Title, code),
			Failed("Timed out waiting for window %q to close", input.Title),
		)
		return outcome.CallToolResult(), WinWaitCloseResult{CallOutcome: outcome.CallOutcome(), Code: code}, nil
	}
}
