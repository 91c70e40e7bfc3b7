// Package autoittest provides a scripted fake of the automation capability
// for handler and transport tests.
package autoittest

import (
	"context"
	"sync"

	"github.com/winforge/autoit-mcp/internal/autoit"
)

// Call records one primitive invocation.
type Call struct {
	Name string
	Args []any
}

// Fake implements autoit.Automation with canned responses keyed by primitive
// name. Unscripted int calls return 1, unscripted text calls return "".
// Safe for concurrent use.
type Fake struct {
	mu    sync.Mutex
	calls []Call

	InitErr error

	// IntResults, TextResults, RectResults, and Errs are keyed by primitive
	// name ("MouseClick", "WinGetTitle", ...). Errs wins over results.
	IntResults  map[string]int
	TextResults map[string]string
	RectResults map[string]autoit.Rect
	PointResult autoit.Point
	Screenshot  []byte
	Errs        map[string]error
}

// NewFake returns an empty fake where every primitive succeeds.
func NewFake() *Fake {
	return &Fake{
		IntResults:  map[string]int{},
		TextResults: map[string]string{},
		RectResults: map[string]autoit.Rect{},
		Errs:        map[string]error{},
	}
}

// Calls returns a copy of the recorded invocations in order.
func (f *Fake) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// CallNames returns just the primitive names, in invocation order.
func (f *Fake) CallNames() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	names := make([]string, len(f.calls))
	for i, c := range f.calls {
		names[i] = c.Name
	}
	return names
}

func (f *Fake) record(name string, args ...any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Call{Name: name, Args: args})
}

func (f *Fake) intCall(name string, args ...any) (int, error) {
	f.record(name, args...)
	if err := f.Errs[name]; err != nil {
		return 0, err
	}
	if v, ok := f.IntResults[name]; ok {
		return v, nil
	}
	return 1, nil
}

func (f *Fake) textCall(name string, args ...any) (string, error) {
	f.record(name, args...)
	if err := f.Errs[name]; err != nil {
		return "", err
	}
	return f.TextResults[name], nil
}

func (f *Fake) rectCall(name string, args ...any) (autoit.Rect, error) {
	f.record(name, args...)
	if err := f.Errs[name]; err != nil {
		return autoit.Rect{}, err
	}
	return f.RectResults[name], nil
}

func (f *Fake) Initialize(context.Context) error {
	f.record("Initialize")
	return f.InitErr
}

func (f *Fake) MouseMove(_ context.Context, x, y, speed int) (int, error) {
	return f.intCall("MouseMove", x, y, speed)
}

func (f *Fake) MouseClick(_ context.Context, button string, x, y, clicks, speed int) (int, error) {
	return f.intCall("MouseClick", button, x, y, clicks, speed)
}

func (f *Fake) MouseClickDrag(_ context.Context, button string, x1, y1, x2, y2, speed int) (int, error) {
	return f.intCall("MouseClickDrag", button, x1, y1, x2, y2, speed)
}

func (f *Fake) MouseDown(_ context.Context, button string) (int, error) {
	return f.intCall("MouseDown", button)
}

func (f *Fake) MouseUp(_ context.Context, button string) (int, error) {
	return f.intCall("MouseUp", button)
}

func (f *Fake) MouseGetPos(context.Context) (autoit.Point, error) {
	f.record("MouseGetPos")
	if err := f.Errs["MouseGetPos"]; err != nil {
		return autoit.Point{}, err
	}
	return f.PointResult, nil
}

func (f *Fake) MouseGetCursor(context.Context) (int, error) {
	return f.intCall("MouseGetCursor")
}

func (f *Fake) MouseWheel(_ context.Context, direction string, clicks int) (int, error) {
	return f.intCall("MouseWheel", direction, clicks)
}

func (f *Fake) Send(_ context.Context, keys string, raw bool) (int, error) {
	return f.intCall("Send", keys, raw)
}

func (f *Fake) ClipGet(context.Context) (string, error) {
	return f.textCall("ClipGet")
}

func (f *Fake) ClipPut(_ context.Context, text string) (int, error) {
	return f.intCall("ClipPut", text)
}

func (f *Fake) SetOption(_ context.Context, option string, value int) (int, error) {
	return f.intCall("SetOption", option, value)
}

func (f *Fake) ToolTip(_ context.Context, text string, x, y int) (int, error) {
	return f.intCall("ToolTip", text, x, y)
}

func (f *Fake) WinActivate(_ context.Context, title, text string) (int, error) {
	return f.intCall("WinActivate", title, text)
}

func (f *Fake) WinActivateByHandle(_ context.Context, handle string) (int, error) {
	return f.intCall("WinActivateByHandle", handle)
}

func (f *Fake) WinActive(_ context.Context, title, text string) (int, error) {
	return f.intCall("WinActive", title, text)
}

func (f *Fake) WinClose(_ context.Context, title, text string) (int, error) {
	return f.intCall("WinClose", title, text)
}

func (f *Fake) WinExists(_ context.Context, title, text string) (int, error) {
	return f.intCall("WinExists", title, text)
}

func (f *Fake) WinGetHandle(_ context.Context, title, text string) (string, error) {
	return f.textCall("WinGetHandle", title, text)
}

func (f *Fake) WinGetPos(_ context.Context, title, text string) (autoit.Rect, error) {
	return f.rectCall("WinGetPos", title, text)
}

func (f *Fake) WinGetText(_ context.Context, title, text string) (string, error) {
	return f.textCall("WinGetText", title, text)
}

func (f *Fake) WinGetTitle(_ context.Context, title, text string) (string, error) {
	return f.textCall("WinGetTitle", title, text)
}

func (f *Fake) WinMove(_ context.Context, title, text string, x, y, width, height int) (int, error) {
	return f.intCall("WinMove", title, text, x, y, width, height)
}

func (f *Fake) WinSetState(_ context.Context, title, text string, state int) (int, error) {
	return f.intCall("WinSetState", title, text, state)
}

func (f *Fake) WinWait(_ context.Context, title, text string, timeoutSeconds int) (int, error) {
	return f.intCall("WinWait", title, text, timeoutSeconds)
}

func (f *Fake) WinWaitActive(_ context.Context, title, text string, timeoutSeconds int) (int, error) {
	return f.intCall("WinWaitActive", title, text, timeoutSeconds)
}

func (f *Fake) WinWaitClose(_ context.Context, title, text string, timeoutSeconds int) (int, error) {
	return f.intCall("WinWaitClose", title, text, timeoutSeconds)
}

func (f *Fake) ControlClick(_ context.Context, title, text, control, button string, clicks, x, y int) (int, error) {
	return f.intCall("ControlClick", title, text, control, button, clicks, x, y)
}

func (f *Fake) ControlClickByHandle(_ context.Context, windowHandle, controlHandle, button string, clicks, x, y int) (int, error) {
	return f.intCall("ControlClickByHandle", windowHandle, controlHandle, button, clicks, x, y)
}

func (f *Fake) ControlCommand(_ context.Context, title, text, control, command, extra string) (string, error) {
	return f.textCall("ControlCommand", title, text, control, command, extra)
}

func (f *Fake) ControlGetText(_ context.Context, title, text, control string) (string, error) {
	return f.textCall("ControlGetText", title, text, control)
}

func (f *Fake) ControlSetText(_ context.Context, title, text, control, value string) (int, error) {
	return f.intCall("ControlSetText", title, text, control, value)
}

func (f *Fake) ControlSend(_ context.Context, title, text, control, keys string, raw bool) (int, error) {
	return f.intCall("ControlSend", title, text, control, keys, raw)
}

func (f *Fake) ControlFocus(_ context.Context, title, text, control string) (int, error) {
	return f.intCall("ControlFocus", title, text, control)
}

func (f *Fake) ControlGetHandle(_ context.Context, windowHandle, control string) (string, error) {
	return f.textCall("ControlGetHandle", windowHandle, control)
}

func (f *Fake) ControlGetPos(_ context.Context, title, text, control string) (autoit.Rect, error) {
	return f.rectCall("ControlGetPos", title, text, control)
}

func (f *Fake) ControlMove(_ context.Context, title, text, control string, x, y, width, height int) (int, error) {
	return f.intCall("ControlMove", title, text, control, x, y, width, height)
}

func (f *Fake) ControlShow(_ context.Context, title, text, control string) (int, error) {
	return f.intCall("ControlShow", title, text, control)
}

func (f *Fake) ControlHide(_ context.Context, title, text, control string) (int, error) {
	return f.intCall("ControlHide", title, text, control)
}

func (f *Fake) Run(_ context.Context, program, workingDir string, showFlag int) (int, error) {
	return f.intCall("Run", program, workingDir, showFlag)
}

func (f *Fake) RunWait(_ context.Context, program, workingDir string, showFlag int) (int, error) {
	return f.intCall("RunWait", program, workingDir, showFlag)
}

func (f *Fake) RunAs(_ context.Context, user, domain, password string, logonFlag int, program, workingDir string, showFlag int) (int, error) {
	return f.intCall("RunAs", user, domain, password, logonFlag, program, workingDir, showFlag)
}

func (f *Fake) RunAsWait(_ context.Context, user, domain, password string, logonFlag int, program, workingDir string, showFlag int) (int, error) {
	return f.intCall("RunAsWait", user, domain, password, logonFlag, program, workingDir, showFlag)
}

func (f *Fake) ProcessExists(_ context.Context, name string) (int, error) {
	return f.intCall("ProcessExists", name)
}

func (f *Fake) ProcessClose(_ context.Context, name string) (int, error) {
	return f.intCall("ProcessClose", name)
}

func (f *Fake) ProcessSetPriority(_ context.Context, name string, priority int) (int, error) {
	return f.intCall("ProcessSetPriority", name, priority)
}

func (f *Fake) ProcessWait(_ context.Context, name string, timeoutSeconds int) (int, error) {
	return f.intCall("ProcessWait", name, timeoutSeconds)
}

func (f *Fake) ProcessWaitClose(_ context.Context, name string, timeoutSeconds int) (int, error) {
	return f.intCall("ProcessWaitClose", name, timeoutSeconds)
}

func (f *Fake) Shutdown(_ context.Context, flags int) (int, error) {
	return f.intCall("Shutdown", flags)
}

func (f *Fake) CaptureScreen(context.Context) ([]byte, error) {
	f.record("CaptureScreen")
	if err := f.Errs["CaptureScreen"]; err != nil {
		return nil, err
	}
	return f.Screenshot, nil
}
