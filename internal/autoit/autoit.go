// Package autoit defines the desktop-automation capability backed by the
// AutoItX native library. The interface mirrors the library's primitive
// surface, one method per call; the MCP layer never reaches around it.
package autoit

import (
	"context"
	"errors"
)

// ErrUnsupported is returned by every primitive on platforms without the
// AutoItX library.
var ErrUnsupported = errors.New("autoit: not supported on this platform")

// Point is a screen coordinate pair.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Rect is a window or control bounding box in screen coordinates.
type Rect struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

// Automation is the capability contract for the native automation library.
//
// Initialize must be called before any primitive; it is idempotent and safe
// to call repeatedly from interleaved callers. Primitives block the calling
// goroutine for the duration of the native call. Integer results follow the
// library's own conventions: most window/control calls return 1 on success
// and 0 on failure, while process calls return a PID (0 meaning not
// found/timeout). An error return indicates the native call itself could not
// execute, not an unsuccessful outcome.
type Automation interface {
	Initialize(ctx context.Context) error

	// Mouse.
	MouseMove(ctx context.Context, x, y, speed int) (int, error)
	MouseClick(ctx context.Context, button string, x, y, clicks, speed int) (int, error)
	MouseClickDrag(ctx context.Context, button string, x1, y1, x2, y2, speed int) (int, error)
	MouseDown(ctx context.Context, button string) (int, error)
	MouseUp(ctx context.Context, button string) (int, error)
	MouseGetPos(ctx context.Context) (Point, error)
	MouseGetCursor(ctx context.Context) (int, error)
	MouseWheel(ctx context.Context, direction string, clicks int) (int, error)

	// Keyboard, clipboard, and input options.
	Send(ctx context.Context, keys string, raw bool) (int, error)
	ClipGet(ctx context.Context) (string, error)
	ClipPut(ctx context.Context, text string) (int, error)
	SetOption(ctx context.Context, option string, value int) (int, error)
	ToolTip(ctx context.Context, text string, x, y int) (int, error)

	// Window.
	WinActivate(ctx context.Context, title, text string) (int, error)
	WinActivateByHandle(ctx context.Context, handle string) (int, error)
	WinActive(ctx context.Context, title, text string) (int, error)
	WinClose(ctx context.Context, title, text string) (int, error)
	WinExists(ctx context.Context, title, text string) (int, error)
	WinGetHandle(ctx context.Context, title, text string) (string, error)
	WinGetPos(ctx context.Context, title, text string) (Rect, error)
	WinGetText(ctx context.Context, title, text string) (string, error)
	WinGetTitle(ctx context.Context, title, text string) (string, error)
	WinMove(ctx context.Context, title, text string, x, y, width, height int) (int, error)
	WinSetState(ctx context.Context, title, text string, state int) (int, error)
	WinWait(ctx context.Context, title, text string, timeoutSeconds int) (int, error)
	WinWaitActive(ctx context.Context, title, text string, timeoutSeconds int) (int, error)
	WinWaitClose(ctx context.Context, title, text string, timeoutSeconds int) (int, error)

	// Control.
	ControlClick(ctx context.Context, title, text, control, button string, clicks, x, y int) (int, error)
	ControlClickByHandle(ctx context.Context, windowHandle, controlHandle, button string, clicks, x, y int) (int, error)
	ControlCommand(ctx context.Context, title, text, control, command, extra string) (string, error)
	ControlGetText(ctx context.Context, title, text, control string) (string, error)
	ControlSetText(ctx context.Context, title, text, control, value string) (int, error)
	ControlSend(ctx context.Context, title, text, control, keys string, raw bool) (int, error)
	ControlFocus(ctx context.Context, title, text, control string) (int, error)
	ControlGetHandle(ctx context.Context, windowHandle, control string) (string, error)
	ControlGetPos(ctx context.Context, title, text, control string) (Rect, error)
	ControlMove(ctx context.Context, title, text, control string, x, y, width, height int) (int, error)
	ControlShow(ctx context.Context, title, text, control string) (int, error)
	ControlHide(ctx context.Context, title, text, control string) (int, error)

	// Process.
	Run(ctx context.Context, program, workingDir string, showFlag int) (int, error)
	RunWait(ctx context.Context, program, workingDir string, showFlag int) (int, error)
	RunAs(ctx context.Context, user, domain, password string, logonFlag int, program, workingDir string, showFlag int) (int, error)
	RunAsWait(ctx context.Context, user, domain, password string, logonFlag int, program, workingDir string, showFlag int) (int, error)
	ProcessExists(ctx context.Context, name string) (int, error)
	ProcessClose(ctx context.Context, name string) (int, error)
	ProcessSetPriority(ctx context.Context, name string, priority int) (int, error)
	ProcessWait(ctx context.Context, name string, timeoutSeconds int) (int, error)
	ProcessWaitClose(ctx context.Context, name string, timeoutSeconds int) (int, error)

	// System.
	Shutdown(ctx context.Context, flags int) (int, error)

	// CaptureScreen grabs the current primary display as PNG bytes.
	CaptureScreen(ctx context.Context) ([]byte, error)
}
