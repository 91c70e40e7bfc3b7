//go:build !windows

package autoit

import "context"

// New returns the automation capability for this platform. Off Windows there
// is no AutoItX library, so every primitive reports ErrUnsupported. The stub
// keeps the module buildable and testable anywhere; tests use the
// autoittest fake instead.
func New() Automation {
	return unsupported{}
}

type unsupported struct{}

func (unsupported) Initialize(context.Context) error { return ErrUnsupported }

func (unsupported) MouseMove(context.Context, int, int, int) (int, error) { return 0, ErrUnsupported }
func (unsupported) MouseClick(context.Context, string, int, int, int, int) (int, error) {
	return 0, ErrUnsupported
}
func (unsupported) MouseClickDrag(context.Context, string, int, int, int, int, int) (int, error) {
	return 0, ErrUnsupported
}
func (unsupported) MouseDown(context.Context, string) (int, error) { return 0, ErrUnsupported }
func (unsupported) MouseUp(context.Context, string) (int, error)   { return 0, ErrUnsupported }
func (unsupported) MouseGetPos(context.Context) (Point, error)     { return Point{}, ErrUnsupported }
func (unsupported) MouseGetCursor(context.Context) (int, error)    { return 0, ErrUnsupported }
func (unsupported) MouseWheel(context.Context, string, int) (int, error) {
	return 0, ErrUnsupported
}

func (unsupported) Send(context.Context, string, bool) (int, error) { return 0, ErrUnsupported }
func (unsupported) ClipGet(context.Context) (string, error)         { return "", ErrUnsupported }
func (unsupported) ClipPut(context.Context, string) (int, error)    { return 0, ErrUnsupported }
func (unsupported) SetOption(context.Context, string, int) (int, error) {
	return 0, ErrUnsupported
}
func (unsupported) ToolTip(context.Context, string, int, int) (int, error) {
	return 0, ErrUnsupported
}

func (unsupported) WinActivate(context.Context, string, string) (int, error) {
	return 0, ErrUnsupported
}
func (unsupported) WinActivateByHandle(context.Context, string) (int, error) {
	return 0, ErrUnsupported
}
func (unsupported) WinActive(context.Context, string, string) (int, error) {
	return 0, ErrUnsupported
}
func (unsupported) WinClose(context.Context, string, string) (int, error) {
	return 0, ErrUnsupported
}
func (unsupported) WinExists(context.Context, string, string) (int, error) {
	return 0, ErrUnsupported
}
func (unsupported) WinGetHandle(context.Context, string, string) (string, error) {
	return "", ErrUnsupported
}
func (unsupported) WinGetPos(context.Context, string, string) (Rect, error) {
	return Rect{}, ErrUnsupported
}
func (unsupported) WinGetText(context.Context, string, string) (string, error) {
	return "", ErrUnsupported
}
func (unsupported) WinGetTitle(context.Context, string, string) (string, error) {
	return "", ErrUnsupported
}
func (unsupported) WinMove(context.Context, string, string, int, int, int, int) (int, error) {
	return 0, ErrUnsupported
}
func (unsupported) WinSetState(context.Context, string, string, int) (int, error) {
	return 0, ErrUnsupported
}
func (unsupported) WinWait(context.Context, string, string, int) (int, error) {
	return 0, ErrUnsupported
}
func (unsupported) WinWaitActive(context.Context, string, string, int) (int, error) {
	return 0, ErrUnsupported
}
func (unsupported) WinWaitClose(context.Context, string, string, int) (int, error) {
	return 0, ErrUnsupported
}

func (unsupported) ControlClick(context.Context, string, string, string, string, int, int, int) (int, error) {
	return 0, ErrUnsupported
}
func (unsupported) ControlClickByHandle(context.Context, string, string, string, int, int, int) (int, error) {
	return 0, ErrUnsupported
}
func (unsupported) ControlCommand(context.Context, string, string, string, string, string) (string, error) {
	return "", ErrUnsupported
}
func (unsupported) ControlGetText(context.Context, string, string, string) (string, error) {
	return "", ErrUnsupported
}
func (unsupported) ControlSetText(context.Context, string, string, string, string) (int, error) {
	return 0, ErrUnsupported
}
func (unsupported) ControlSend(context.Context, string, string, string, string, bool) (int, error) {
	return 0, ErrUnsupported
}
func (unsupported) ControlFocus(context.Context, string, string, string) (int, error) {
	return 0, ErrUnsupported
}
func (unsupported) ControlGetHandle(context.Context, string, string) (string, error) {
	return "", ErrUnsupported
}
func (unsupported) ControlGetPos(context.Context, string, string, string) (Rect, error) {
	return Rect{}, ErrUnsupported
}
func (unsupported) ControlMove(context.Context, string, string, string, int, int, int, int) (int, error) {
	return 0, ErrUnsupported
}
func (unsupported) ControlShow(context.Context, string, string, string) (int, error) {
	return 0, ErrUnsupported
}
func (unsupported) ControlHide(context.Context, string, string, string) (int, error) {
	return 0, ErrUnsupported
}

func (unsupported) Run(context.Context, string, string, int) (int, error) {
	return 0, ErrUnsupported
}
func (unsupported) RunWait(context.Context, string, string, int) (int, error) {
	return 0, ErrUnsupported
}
func (unsupported) RunAs(context.Context, string, string, string, int, string, string, int) (int, error) {
	return 0, ErrUnsupported
}
func (unsupported) RunAsWait(context.Context, string, string, string, int, string, string, int) (int, error) {
	return 0, ErrUnsupported
}
func (unsupported) ProcessExists(context.Context, string) (int, error) { return 0, ErrUnsupported }
func (unsupported) ProcessClose(context.Context, string) (int, error)  { return 0, ErrUnsupported }
func (unsupported) ProcessSetPriority(context.Context, string, int) (int, error) {
	return 0, ErrUnsupported
}
func (unsupported) ProcessWait(context.Context, string, int) (int, error) {
	return 0, ErrUnsupported
}
func (unsupported) ProcessWaitClose(context.Context, string, int) (int, error) {
	return 0, ErrUnsupported
}

func (unsupported) Shutdown(context.Context, int) (int, error) { return 0, ErrUnsupported }

func (unsupported) CaptureScreen(context.Context) ([]byte, error) { return nil, ErrUnsupported }
