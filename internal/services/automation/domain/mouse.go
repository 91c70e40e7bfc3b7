package domain

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/winforge/autoit-mcp/internal/autoit"
)

// MouseMoveInput represents the MCP tool input for moving the cursor.
type MouseMoveInput struct {
	X     int `json:"x" jsonschema:"target x coordinate in pixels"`
	Y     int `json:"y" jsonschema:"target y coordinate in pixels"`
	Speed int `json:"speed,omitempty" jsonschema:"movement speed 1-100, 0 uses the default"`
}

// MouseMoveResult represents the MCP tool output for moving the cursor.
type MouseMoveResult struct {
	CallOutcome
	Code int `json:"code" jsonschema:"delegated call return code"`
}

// MouseMoveTool defines the MCP tool schema for moving the cursor.
func MouseMoveTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "mouse_move",
		Description: "Moves the mouse cursor to the given screen coordinates",
	}
}

// MouseMoveHandler executes a cursor move.
func MouseMoveHandler(auto autoit.Automation) mcp.ToolHandlerFor[MouseMoveInput, MouseMoveResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input MouseMoveInput) (*mcp.CallToolResult, MouseMoveResult, error) {
		speed := speedOrDefault(input.Speed)
		code, err := callCode(ctx, auto, func(ctx context.Context) (int, error) {
			return auto.MouseMove(ctx, input.X, input.Y, speed)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), MouseMoveResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := OK("Mouse moved to (%d, %d) with result: %d", input.X, input.Y, code)
		return outcome.CallToolResult(), MouseMoveResult{CallOutcome: outcome.CallOutcome(), Code: code}, nil
	}
}

// MouseClickInput represents the MCP tool input for clicking.
type MouseClickInput struct {
	Button string `json:"button,omitempty" jsonschema:"mouse button: left, right, or middle (default left)"`
	X      int    `json:"x" jsonschema:"click x coordinate in pixels"`
	Y      int    `json:"y" jsonschema:"click y coordinate in pixels"`
	Clicks int    `json:"clicks,omitempty" jsonschema:"number of clicks, 0 means one"`
	Speed  int    `json:"speed,omitempty" jsonschema:"movement speed 1-100, 0 uses the default"`
}

// MouseClickResult represents the MCP tool output for clicking.
type MouseClickResult struct {
	CallOutcome
	Code int `json:"code" jsonschema:"delegated call return code"`
}

// MouseClickTool defines the MCP tool schema for clicking.
func MouseClickTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "mouse_click",
		Description: "Clicks a mouse button at the given screen coordinates",
	}
}

// MouseClickHandler executes a mouse click.
func MouseClickHandler(auto autoit.Automation) mcp.ToolHandlerFor[MouseClickInput, MouseClickResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input MouseClickInput) (*mcp.CallToolResult, MouseClickResult, error) {
		button := buttonOrDefault(input.Button)
		clicks := clicksOrDefault(input.Clicks)
		speed := speedOrDefault(input.Speed)
		code, err := callCode(ctx, auto, func(ctx context.Context) (int, error) {
			return auto.MouseClick(ctx, button, input.X, input.Y, clicks, speed)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), MouseClickResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := boolOutcome(code,
			OK("Mouse %s click at (%d, %d) with result: %d", button, input.X, input.Y, code),
			Failed("Failed to %s click at (%d, %d)", button, input.X, input.Y),
		)
		return outcome.CallToolResult(), MouseClickResult{CallOutcome: outcome.CallOutcome(), Code: code}, nil
	}
}

// MouseClickDragInput represents the MCP tool input for a click-drag.
type MouseClickDragInput struct {
	Button string `json:"button,omitempty" jsonschema:"mouse button: left, right, or middle (default left)"`
	X1     int    `json:"x1" jsonschema:"drag start x coordinate in pixels"`
	Y1     int    `json:"y1" jsonschema:"drag start y coordinate in pixels"`
	X2     int    `json:"x2" jsonschema:"drag end x coordinate in pixels"`
	Y2     int    `json:"y2" jsonschema:"drag end y coordinate in pixels"`
	Speed  int    `json:"speed,omitempty" jsonschema:"movement speed 1-100, 0 uses the default"`
}

// MouseClickDragResult represents the MCP tool output for a click-drag.
type MouseClickDragResult struct {
	CallOutcome
	Code int `json:"code" jsonschema:"delegated call return code"`
}

// MouseClickDragTool defines the MCP tool schema for a click-drag.
func MouseClickDragTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "mouse_click_drag",
		Description: "Performs a click-and-drag between two screen coordinates",
	}
}

// MouseClickDragHandler executes a click-drag.
func MouseClickDragHandler(auto autoit.Automation) mcp.ToolHandlerFor[MouseClickDragInput, MouseClickDragResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input MouseClickDragInput) (*mcp.CallToolResult, MouseClickDragResult, error) {
		button := buttonOrDefault(input.Button)
		speed := speedOrDefault(input.Speed)
		code, err := callCode(ctx, auto, func(ctx context.Context) (int, error) {
			return auto.MouseClickDrag(ctx, button, input.X1, input.Y1, input.X2, input.Y2, speed)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), MouseClickDragResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := boolOutcome(code,
			OK("Mouse dragged from (%d, %d) to (%d, %d) with result: %d", input.X1, input.Y1, input.X2, input.Y2, code),
			Failed("Failed to drag from (%d, %d) to (%d, %d)", input.X1, input.Y1, input.X2, input.Y2),
		)
		return outcome.CallToolResult(), MouseClickDragResult{CallOutcome: outcome.CallOutcome(), Code: code}, nil
	}
}

// MouseDownInput represents the MCP tool input for pressing a button.
type MouseDownInput struct {
	Button string `json:"button,omitempty" jsonschema:"mouse button: left, right, or middle (default left)"`
}

// MouseDownResult represents the MCP tool output for pressing a button.
type MouseDownResult struct {
	CallOutcome
}

// MouseDownTool defines the MCP tool schema for pressing a button.
func MouseDownTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "mouse_down",
		Description: "Presses and holds a mouse button",
	}
}

// MouseDownHandler executes a mouse button press.
func MouseDownHandler(auto autoit.Automation) mcp.ToolHandlerFor[MouseDownInput, MouseDownResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input MouseDownInput) (*mcp.CallToolResult, MouseDownResult, error) {
		button := buttonOrDefault(input.Button)
		_, err := callCode(ctx, auto, func(ctx context.Context) (int, error) {
			return auto.MouseDown(ctx, button)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), MouseDownResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := OK("Mouse %s button pressed", button)
		return outcome.CallToolResult(), MouseDownResult{CallOutcome: outcome.CallOutcome()}, nil
	}
}

// MouseUpInput represents the MCP tool input for releasing a button.
type MouseUpInput struct {
	Button string `json:"button,omitempty" jsonschema:"mouse button: left, right, or middle (default left)"`
}

// MouseUpResult represents the MCP tool output for releasing a button.
type MouseUpResult struct {
	CallOutcome
}

// MouseUpTool defines the MCP tool schema for releasing a button.
func MouseUpTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "mouse_up",
		Description: "Releases a held mouse button",
	}
}

// MouseUpHandler executes a mouse button release.
func MouseUpHandler(auto autoit.Automation) mcp.ToolHandlerFor[MouseUpInput, MouseUpResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input MouseUpInput) (*mcp.CallToolResult, MouseUpResult, error) {
		button := buttonOrDefault(input.Button)
		_, err := callCode(ctx, auto, func(ctx context.Context) (int, error) {
			return auto.MouseUp(ctx, button)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), MouseUpResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := OK("Mouse %s button released", button)
		return outcome.CallToolResult(), MouseUpResult{CallOutcome: outcome.CallOutcome()}, nil
	}
}

// MouseGetPosInput represents the MCP tool input for reading the cursor position.
type MouseGetPosInput struct{}

// MouseGetPosResult represents the MCP tool output for reading the cursor position.
type MouseGetPosResult struct {
	CallOutcome
	X int `json:"x" jsonschema:"cursor x coordinate in pixels"`
	Y int `json:"y" jsonschema:"cursor y coordinate in pixels"`
}

// MouseGetPosTool defines the MCP tool schema for reading the cursor position.
func MouseGetPosTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "mouse_get_pos",
		Description: "Reports the current mouse cursor position",
	}
}

// MouseGetPosHandler reads the cursor position.
func MouseGetPosHandler(auto autoit.Automation) mcp.ToolHandlerFor[MouseGetPosInput, MouseGetPosResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ MouseGetPosInput) (*mcp.CallToolResult, MouseGetPosResult, error) {
		if err := auto.Initialize(ctx); err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), MouseGetPosResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		pos, err := auto.MouseGetPos(ctx)
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), MouseGetPosResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := OK("Mouse position: (%d, %d)", pos.X, pos.Y)
		return outcome.CallToolResult(), MouseGetPosResult{CallOutcome: outcome.CallOutcome(), X: pos.X, Y: pos.Y}, nil
	}
}

// MouseGetCursorInput represents the MCP tool input for reading the cursor shape.
type MouseGetCursorInput struct{}

// MouseGetCursorResult represents the MCP tool output for reading the cursor shape.
type MouseGetCursorResult struct {
	CallOutcome
	Cursor int `json:"cursor" jsonschema:"cursor shape identifier"`
}

// MouseGetCursorTool defines the MCP tool schema for reading the cursor shape.
func MouseGetCursorTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "mouse_get_cursor",
		Description: "Reports the current mouse cursor shape identifier",
	}
}

// MouseGetCursorHandler reads the cursor shape identifier.
func MouseGetCursorHandler(auto autoit.Automation) mcp.ToolHandlerFor[MouseGetCursorInput, MouseGetCursorResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ MouseGetCursorInput) (*mcp.CallToolResult, MouseGetCursorResult, error) {
		cursor, err := callCode(ctx, auto, auto.MouseGetCursor)
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), MouseGetCursorResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := OK("Mouse cursor id: %d", cursor)
		return outcome.CallToolResult(), MouseGetCursorResult{CallOutcome: outcome.CallOutcome(), Cursor: cursor}, nil
	}
}

// MouseWheelInput represents the MCP tool input for scrolling the wheel.
type MouseWheelInput struct {
	Direction string `json:"direction" jsonschema:"scroll direction: up or down"`
	Clicks    int    `json:"clicks,omitempty" jsonschema:"number of wheel notches, 0 means one"`
}

// MouseWheelResult represents the MCP tool output for scrolling the wheel.
type MouseWheelResult struct {
	CallOutcome
	Code int `json:"code" jsonschema:"delegated call return code"`
}

// MouseWheelTool defines the MCP tool schema for scrolling the wheel.
func MouseWheelTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "mouse_wheel",
		Description: "Scrolls the mouse wheel up or down",
	}
}

// MouseWheelHandler executes a wheel scroll.
func MouseWheelHandler(auto autoit.Automation) mcp.ToolHandlerFor[MouseWheelInput, MouseWheelResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input MouseWheelInput) (*mcp.CallToolResult, MouseWheelResult, error) {
		clicks := clicksOrDefault(input.Clicks)
		code, err := callCode(ctx, auto, func(ctx context.Context) (int, error) {
			return auto.MouseWheel(ctx, input.Direction, clicks)
		})
		if err != nil {
			outcome := Fault(err)
			return outcome.CallToolResult(), MouseWheelResult{CallOutcome: outcome.CallOutcome()}, nil
		}
		outcome := boolOutcome(code,
			OK("Mouse wheel scrolled %s %d clicks with result: %d", input.Direction, clicks, code),
			Failed("Failed to scroll mouse wheel %s", input.Direction),
		)
		return outcome.CallToolResult(), MouseWheelResult{CallOutcome: outcome.CallOutcome(), Code: code}, nil
	}
}
