//go:build windows

package autoit

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

// textBufferLen is the wide-char buffer size for calls that return text.
// AutoItX truncates to the caller's buffer, matching the library's own
// documented behavior for large window text.
const textBufferLen = 64 * 1024

// dll wraps the AutoItX3 native library. All exported AU3_* entry points use
// the stdcall convention with UTF-16 string arguments.
type dll struct {
	initOnce sync.Once
	initErr  error

	lib *windows.LazyDLL

	procInit                 *windows.LazyProc
	procError                *windows.LazyProc
	procAutoItSetOption      *windows.LazyProc
	procClipGet              *windows.LazyProc
	procClipPut              *windows.LazyProc
	procControlClick         *windows.LazyProc
	procControlClickByHandle *windows.LazyProc
	procControlCommand       *windows.LazyProc
	procControlFocus         *windows.LazyProc
	procControlGetHandle     *windows.LazyProc
	procControlGetPos        *windows.LazyProc
	procControlGetText       *windows.LazyProc
	procControlHide          *windows.LazyProc
	procControlMove          *windows.LazyProc
	procControlSend          *windows.LazyProc
	procControlSetText       *windows.LazyProc
	procControlShow          *windows.LazyProc
	procMouseClick           *windows.LazyProc
	procMouseClickDrag       *windows.LazyProc
	procMouseDown            *windows.LazyProc
	procMouseGetCursor       *windows.LazyProc
	procMouseGetPosX         *windows.LazyProc
	procMouseGetPosY         *windows.LazyProc
	procMouseMove            *windows.LazyProc
	procMouseUp              *windows.LazyProc
	procMouseWheel           *windows.LazyProc
	procProcessClose         *windows.LazyProc
	procProcessExists        *windows.LazyProc
	procProcessSetPriority   *windows.LazyProc
	procProcessWait          *windows.LazyProc
	procProcessWaitClose     *windows.LazyProc
	procRun                  *windows.LazyProc
	procRunAs                *windows.LazyProc
	procRunAsWait            *windows.LazyProc
	procRunWait              *windows.LazyProc
	procSend                 *windows.LazyProc
	procShutdown             *windows.LazyProc
	procToolTip              *windows.LazyProc
	procWinActivate          *windows.LazyProc
	procWinActivateByHandle  *windows.LazyProc
	procWinActive            *windows.LazyProc
	procWinClose             *windows.LazyProc
	procWinExists            *windows.LazyProc
	procWinGetHandleAsText   *windows.LazyProc
	procWinGetPos            *windows.LazyProc
	procWinGetText           *windows.LazyProc
	procWinGetTitle          *windows.LazyProc
	procWinMove              *windows.LazyProc
	procWinSetState          *windows.LazyProc
	procWinWait              *windows.LazyProc
	procWinWaitActive        *windows.LazyProc
	procWinWaitClose         *windows.LazyProc
}

// New returns the AutoItX-backed automation capability. The DLL is loaded
// lazily on Initialize, so construction never fails.
func New() Automation {
	lib := windows.NewLazySystemDLL("AutoItX3_x64.dll")
	d := &dll{lib: lib}
	d.procInit = lib.NewProc("AU3_Init")
	d.procError = lib.NewProc("AU3_error")
	d.procAutoItSetOption = lib.NewProc("AU3_AutoItSetOption")
	d.procClipGet = lib.NewProc("AU3_ClipGet")
	d.procClipPut = lib.NewProc("AU3_ClipPut")
	d.procControlClick = lib.NewProc("AU3_ControlClick")
	d.procControlClickByHandle = lib.NewProc("AU3_ControlClickByHandle")
	d.procControlCommand = lib.NewProc("AU3_ControlCommand")
	d.procControlFocus = lib.NewProc("AU3_ControlFocus")
	d.procControlGetHandle = lib.NewProc("AU3_ControlGetHandleAsText")
	d.procControlGetPos = lib.NewProc("AU3_ControlGetPos")
	d.procControlGetText = lib.NewProc("AU3_ControlGetText")
	d.procControlHide = lib.NewProc("AU3_ControlHide")
	d.procControlMove = lib.NewProc("AU3_ControlMove")
	d.procControlSend = lib.NewProc("AU3_ControlSend")
	d.procControlSetText = lib.NewProc("AU3_ControlSetText")
	d.procControlShow = lib.NewProc("AU3_ControlShow")
	d.procMouseClick = lib.NewProc("AU3_MouseClick")
	d.procMouseClickDrag = lib.NewProc("AU3_MouseClickDrag")
	d.procMouseDown = lib.NewProc("AU3_MouseDown")
	d.procMouseGetCursor = lib.NewProc("AU3_MouseGetCursor")
	d.procMouseGetPosX = lib.NewProc("AU3_MouseGetPosX")
	d.procMouseGetPosY = lib.NewProc("AU3_MouseGetPosY")
	d.procMouseMove = lib.NewProc("AU3_MouseMove")
	d.procMouseUp = lib.NewProc("AU3_MouseUp")
	d.procMouseWheel = lib.NewProc("AU3_MouseWheel")
	d.procProcessClose = lib.NewProc("AU3_ProcessClose")
	d.procProcessExists = lib.NewProc("AU3_ProcessExists")
	d.procProcessSetPriority = lib.NewProc("AU3_ProcessSetPriority")
	d.procProcessWait = lib.NewProc("AU3_ProcessWait")
	d.procProcessWaitClose = lib.NewProc("AU3_ProcessWaitClose")
	d.procRun = lib.NewProc("AU3_Run")
	d.procRunAs = lib.NewProc("AU3_RunAs")
	d.procRunAsWait = lib.NewProc("AU3_RunAsWait")
	d.procRunWait = lib.NewProc("AU3_RunWait")
	d.procSend = lib.NewProc("AU3_Send")
	d.procShutdown = lib.NewProc("AU3_Shutdown")
	d.procToolTip = lib.NewProc("AU3_ToolTip")
	d.procWinActivate = lib.NewProc("AU3_WinActivate")
	d.procWinActivateByHandle = lib.NewProc("AU3_WinActivateByHandle")
	d.procWinActive = lib.NewProc("AU3_WinActive")
	d.procWinClose = lib.NewProc("AU3_WinClose")
	d.procWinExists = lib.NewProc("AU3_WinExists")
	d.procWinGetHandleAsText = lib.NewProc("AU3_WinGetHandleAsText")
	d.procWinGetPos = lib.NewProc("AU3_WinGetPos")
	d.procWinGetText = lib.NewProc("AU3_WinGetText")
	d.procWinGetTitle = lib.NewProc("AU3_WinGetTitle")
	d.procWinMove = lib.NewProc("AU3_WinMove")
	d.procWinSetState = lib.NewProc("AU3_WinSetState")
	d.procWinWait = lib.NewProc("AU3_WinWait")
	d.procWinWaitActive = lib.NewProc("AU3_WinWaitActive")
	d.procWinWaitClose = lib.NewProc("AU3_WinWaitClose")
	return d
}

// Initialize loads the library and runs AU3_Init once. Repeated calls return
// the first outcome.
func (d *dll) Initialize(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.initOnce.Do(func() {
		if err := d.lib.Load(); err != nil {
			d.initErr = fmt.Errorf("load AutoItX3 library: %w", err)
			return
		}
		// AU3_Init returns void.
		d.procInit.Call()
	})
	return d.initErr
}

func wstr(s string) (uintptr, error) {
	p, err := windows.UTF16PtrFromString(s)
	if err != nil {
		return 0, fmt.Errorf("encode argument: %w", err)
	}
	return uintptr(unsafe.Pointer(p)), nil
}

// callInt invokes a proc whose result is an int-like value.
func (d *dll) callInt(ctx context.Context, proc *windows.LazyProc, args ...uintptr) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := d.Initialize(ctx); err != nil {
		return 0, err
	}
	ret, _, _ := proc.Call(args...)
	return int(int32(ret)), nil
}

// callText invokes a proc that fills a caller-provided wide-char buffer.
// The buffer pointer and length are appended as the final two arguments.
func (d *dll) callText(ctx context.Context, proc *windows.LazyProc, args ...uintptr) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := d.Initialize(ctx); err != nil {
		return "", err
	}
	buf := make([]uint16, textBufferLen)
	args = append(args, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	proc.Call(args...)
	return windows.UTF16ToString(buf), nil
}

func parseHandle(handle string) (uintptr, error) {
	cleaned := strings.TrimPrefix(strings.TrimSpace(handle), "0x")
	value, err := strconv.ParseUint(cleaned, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("parse window handle %q: %w", handle, err)
	}
	return uintptr(value), nil
}

func formatHandle(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "0x") {
		return trimmed
	}
	return "0x" + trimmed
}

func sendMode(raw bool) uintptr {
	if raw {
		return 1
	}
	return 0
}

func (d *dll) MouseMove(ctx context.Context, x, y, speed int) (int, error) {
	return d.callInt(ctx, d.procMouseMove, uintptr(x), uintptr(y), uintptr(speed))
}

func (d *dll) MouseClick(ctx context.Context, button string, x, y, clicks, speed int) (int, error) {
	b, err := wstr(button)
	if err != nil {
		return 0, err
	}
	return d.callInt(ctx, d.procMouseClick, b, uintptr(x), uintptr(y), uintptr(clicks), uintptr(speed))
}

func (d *dll) MouseClickDrag(ctx context.Context, button string, x1, y1, x2, y2, speed int) (int, error) {
	b, err := wstr(button)
	if err != nil {
		return 0, err
	}
	return d.callInt(ctx, d.procMouseClickDrag, b, uintptr(x1), uintptr(y1), uintptr(x2), uintptr(y2), uintptr(speed))
}

func (d *dll) MouseDown(ctx context.Context, button string) (int, error) {
	b, err := wstr(button)
	if err != nil {
		return 0, err
	}
	if _, err := d.callInt(ctx, d.procMouseDown, b); err != nil {
		return 0, err
	}
	// AU3_MouseDown returns void; a completed call is a success.
	return 1, nil
}

func (d *dll) MouseUp(ctx context.Context, button string) (int, error) {
	b, err := wstr(button)
	if err != nil {
		return 0, err
	}
	if _, err := d.callInt(ctx, d.procMouseUp, b); err != nil {
		return 0, err
	}
	return 1, nil
}

func (d *dll) MouseGetPos(ctx context.Context) (Point, error) {
	x, err := d.callInt(ctx, d.procMouseGetPosX)
	if err != nil {
		return Point{}, err
	}
	y, err := d.callInt(ctx, d.procMouseGetPosY)
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

func (d *dll) MouseGetCursor(ctx context.Context) (int, error) {
	return d.callInt(ctx, d.procMouseGetCursor)
}

func (d *dll) MouseWheel(ctx context.Context, direction string, clicks int) (int, error) {
	dir, err := wstr(direction)
	if err != nil {
		return 0, err
	}
	return d.callInt(ctx, d.procMouseWheel, dir, uintptr(clicks))
}

func (d *dll) Send(ctx context.Context, keys string, raw bool) (int, error) {
	k, err := wstr(keys)
	if err != nil {
		return 0, err
	}
	if _, err := d.callInt(ctx, d.procSend, k, sendMode(raw)); err != nil {
		return 0, err
	}
	return 1, nil
}

func (d *dll) ClipGet(ctx context.Context) (string, error) {
	return d.callText(ctx, d.procClipGet)
}

func (d *dll) ClipPut(ctx context.Context, text string) (int, error) {
	t, err := wstr(text)
	if err != nil {
		return 0, err
	}
	return d.callInt(ctx, d.procClipPut, t)
}

func (d *dll) SetOption(ctx context.Context, option string, value int) (int, error) {
	o, err := wstr(option)
	if err != nil {
		return 0, err
	}
	return d.callInt(ctx, d.procAutoItSetOption, o, uintptr(value))
}

func (d *dll) ToolTip(ctx context.Context, text string, x, y int) (int, error) {
	t, err := wstr(text)
	if err != nil {
		return 0, err
	}
	if _, err := d.callInt(ctx, d.procToolTip, t, uintptr(x), uintptr(y)); err != nil {
		return 0, err
	}
	return 1, nil
}

func (d *dll) winCall(ctx context.Context, proc *windows.LazyProc, title, text string, extra ...uintptr) (int, error) {
	ti, err := wstr(title)
	if err != nil {
		return 0, err
	}
	te, err := wstr(text)
	if err != nil {
		return 0, err
	}
	args := append([]uintptr{ti, te}, extra...)
	return d.callInt(ctx, proc, args...)
}

func (d *dll) WinActivate(ctx context.Context, title, text string) (int, error) {
	return d.winCall(ctx, d.procWinActivate, title, text)
}

func (d *dll) WinActivateByHandle(ctx context.Context, handle string) (int, error) {
	hwnd, err := parseHandle(handle)
	if err != nil {
		return 0, err
	}
	return d.callInt(ctx, d.procWinActivateByHandle, hwnd)
}

func (d *dll) WinActive(ctx context.Context, title, text string) (int, error) {
	return d.winCall(ctx, d.procWinActive, title, text)
}

func (d *dll) WinClose(ctx context.Context, title, text string) (int, error) {
	return d.winCall(ctx, d.procWinClose, title, text)
}

func (d *dll) WinExists(ctx context.Context, title, text string) (int, error) {
	return d.winCall(ctx, d.procWinExists, title, text)
}

func (d *dll) WinGetHandle(ctx context.Context, title, text string) (string, error) {
	ti, err := wstr(title)
	if err != nil {
		return "", err
	}
	te, err := wstr(text)
	if err != nil {
		return "", err
	}
	out, err := d.callText(ctx, d.procWinGetHandleAsText, ti, te)
	if err != nil {
		return "", err
	}
	return formatHandle(out), nil
}

func (d *dll) WinGetPos(ctx context.Context, title, text string) (Rect, error) {
	if err := d.Initialize(ctx); err != nil {
		return Rect{}, err
	}
	ti, err := wstr(title)
	if err != nil {
		return Rect{}, err
	}
	te, err := wstr(text)
	if err != nil {
		return Rect{}, err
	}
	var rect struct{ Left, Top, Right, Bottom int32 }
	if _, err := d.callInt(ctx, d.procWinGetPos, ti, te, uintptr(unsafe.Pointer(&rect))); err != nil {
		return Rect{}, err
	}
	return Rect{
		Left:   int(rect.Left),
		Top:    int(rect.Top),
		Right:  int(rect.Right),
		Bottom: int(rect.Bottom),
	}, nil
}

func (d *dll) WinGetText(ctx context.Context, title, text string) (string, error) {
	ti, err := wstr(title)
	if err != nil {
		return "", err
	}
	te, err := wstr(text)
	if err != nil {
		return "", err
	}
	return d.callText(ctx, d.procWinGetText, ti, te)
}

func (d *dll) WinGetTitle(ctx context.Context, title, text string) (string, error) {
	ti, err := wstr(title)
	if err != nil {
		return "", err
	}
	te, err := wstr(text)
	if err != nil {
		return "", err
	}
	return d.callText(ctx, d.procWinGetTitle, ti, te)
}

func (d *dll) WinMove(ctx context.Context, title, text string, x, y, width, height int) (int, error) {
	return d.winCall(ctx, d.procWinMove, title, text, uintptr(x), uintptr(y), uintptr(width), uintptr(height))
}

func (d *dll) WinSetState(ctx context.Context, title, text string, state int) (int, error) {
	return d.winCall(ctx, d.procWinSetState, title, text, uintptr(state))
}

func (d *dll) WinWait(ctx context.Context, title, text string, timeoutSeconds int) (int, error) {
	return d.winCall(ctx, d.procWinWait, title, text, uintptr(timeoutSeconds))
}

func (d *dll) WinWaitActive(ctx context.Context, title, text string, timeoutSeconds int) (int, error) {
	return d.winCall(ctx, d.procWinWaitActive, title, text, uintptr(timeoutSeconds))
}

func (d *dll) WinWaitClose(ctx context.Context, title, text string, timeoutSeconds int) (int, error) {
	return d.winCall(ctx, d.procWinWaitClose, title, text, uintptr(timeoutSeconds))
}

func (d *dll) controlArgs(title, text, control string) (uintptr, uintptr, uintptr, error) {
	ti, err := wstr(title)
	if err != nil {
		return 0, 0, 0, err
	}
	te, err := wstr(text)
	if err != nil {
		return 0, 0, 0, err
	}
	c, err := wstr(control)
	if err != nil {
		return 0, 0, 0, err
	}
	return ti, te, c, nil
}

func (d *dll) ControlClick(ctx context.Context, title, text, control, button string, clicks, x, y int) (int, error) {
	ti, te, c, err := d.controlArgs(title, text, control)
	if err != nil {
		return 0, err
	}
	b, err := wstr(button)
	if err != nil {
		return 0, err
	}
	return d.callInt(ctx, d.procControlClick, ti, te, c, b, uintptr(clicks), uintptr(x), uintptr(y))
}

func (d *dll) ControlClickByHandle(ctx context.Context, windowHandle, controlHandle, button string, clicks, x, y int) (int, error) {
	hwnd, err := parseHandle(windowHandle)
	if err != nil {
		return 0, err
	}
	hctrl, err := parseHandle(controlHandle)
	if err != nil {
		return 0, err
	}
	b, err := wstr(button)
	if err != nil {
		return 0, err
	}
	return d.callInt(ctx, d.procControlClickByHandle, hwnd, hctrl, b, uintptr(clicks), uintptr(x), uintptr(y))
}

func (d *dll) ControlCommand(ctx context.Context, title, text, control, command, extra string) (string, error) {
	ti, te, c, err := d.controlArgs(title, text, control)
	if err != nil {
		return "", err
	}
	cmd, err := wstr(command)
	if err != nil {
		return "", err
	}
	ex, err := wstr(extra)
	if err != nil {
		return "", err
	}
	return d.callText(ctx, d.procControlCommand, ti, te, c, cmd, ex)
}

func (d *dll) ControlGetText(ctx context.Context, title, text, control string) (string, error) {
	ti, te, c, err := d.controlArgs(title, text, control)
	if err != nil {
		return "", err
	}
	return d.callText(ctx, d.procControlGetText, ti, te, c)
}

func (d *dll) ControlSetText(ctx context.Context, title, text, control, value string) (int, error) {
	ti, te, c, err := d.controlArgs(title, text, control)
	if err != nil {
		return 0, err
	}
	v, err := wstr(value)
	if err != nil {
		return 0, err
	}
	return d.callInt(ctx, d.procControlSetText, ti, te, c, v)
}

func (d *dll) ControlSend(ctx context.Context, title, text, control, keys string, raw bool) (int, error) {
	ti, te, c, err := d.controlArgs(title, text, control)
	if err != nil {
		return 0, err
	}
	k, err := wstr(keys)
	if err != nil {
		return 0, err
	}
	return d.callInt(ctx, d.procControlSend, ti, te, c, k, sendMode(raw))
}

func (d *dll) ControlFocus(ctx context.Context, title, text, control string) (int, error) {
	ti, te, c, err := d.controlArgs(title, text, control)
	if err != nil {
		return 0, err
	}
	return d.callInt(ctx, d.procControlFocus, ti, te, c)
}

func (d *dll) ControlGetHandle(ctx context.Context, windowHandle, control string) (string, error) {
	hwnd, err := parseHandle(windowHandle)
	if err != nil {
		return "", err
	}
	c, err := wstr(control)
	if err != nil {
		return "", err
	}
	out, err := d.callText(ctx, d.procControlGetHandle, hwnd, c)
	if err != nil {
		return "", err
	}
	return formatHandle(out), nil
}

func (d *dll) ControlGetPos(ctx context.Context, title, text, control string) (Rect, error) {
	ti, te, c, err := d.controlArgs(title, text, control)
	if err != nil {
		return Rect{}, err
	}
	var rect struct{ Left, Top, Right, Bottom int32 }
	if _, err := d.callInt(ctx, d.procControlGetPos, ti, te, c, uintptr(unsafe.Pointer(&rect))); err != nil {
		return Rect{}, err
	}
	return Rect{
		Left:   int(rect.Left),
		Top:    int(rect.Top),
		Right:  int(rect.Right),
		Bottom: int(rect.Bottom),
	}, nil
}

func (d *dll) ControlMove(ctx context.Context, title, text, control string, x, y, width, height int) (int, error) {
	ti, te, c, err := d.controlArgs(title, text, control)
	if err != nil {
		return 0, err
	}
	return d.callInt(ctx, d.procControlMove, ti, te, c, uintptr(x), uintptr(y), uintptr(width), uintptr(height))
}

func (d *dll) ControlShow(ctx context.Context, title, text, control string) (int, error) {
	ti, te, c, err := d.controlArgs(title, text, control)
	if err != nil {
		return 0, err
	}
	return d.callInt(ctx, d.procControlShow, ti, te, c)
}

func (d *dll) ControlHide(ctx context.Context, title, text, control string) (int, error) {
	ti, te, c, err := d.controlArgs(title, text, control)
	if err != nil {
		return 0, err
	}
	return d.callInt(ctx, d.procControlHide, ti, te, c)
}

func (d *dll) Run(ctx context.Context, program, workingDir string, showFlag int) (int, error) {
	p, err := wstr(program)
	if err != nil {
		return 0, err
	}
	w, err := wstr(workingDir)
	if err != nil {
		return 0, err
	}
	return d.callInt(ctx, d.procRun, p, w, uintptr(showFlag))
}

func (d *dll) RunWait(ctx context.Context, program, workingDir string, showFlag int) (int, error) {
	p, err := wstr(program)
	if err != nil {
		return 0, err
	}
	w, err := wstr(workingDir)
	if err != nil {
		return 0, err
	}
	return d.callInt(ctx, d.procRunWait, p, w, uintptr(showFlag))
}

func (d *dll) runAsArgs(user, domain, password string) (uintptr, uintptr, uintptr, error) {
	u, err := wstr(user)
	if err != nil {
		return 0, 0, 0, err
	}
	dom, err := wstr(domain)
	if err != nil {
		return 0, 0, 0, err
	}
	pw, err := wstr(password)
	if err != nil {
		return 0, 0, 0, err
	}
	return u, dom, pw, nil
}

func (d *dll) RunAs(ctx context.Context, user, domain, password string, logonFlag int, program, workingDir string, showFlag int) (int, error) {
	u, dom, pw, err := d.runAsArgs(user, domain, password)
	if err != nil {
		return 0, err
	}
	p, err := wstr(program)
	if err != nil {
		return 0, err
	}
	w, err := wstr(workingDir)
	if err != nil {
		return 0, err
	}
	return d.callInt(ctx, d.procRunAs, u, dom, pw, uintptr(logonFlag), p, w, uintptr(showFlag))
}

func (d *dll) RunAsWait(ctx context.Context, user, domain, password string, logonFlag int, program, workingDir string, showFlag int) (int, error) {
	u, dom, pw, err := d.runAsArgs(user, domain, password)
	if err != nil {
		return 0, err
	}
	p, err := wstr(program)
	if err != nil {
		return 0, err
	}
	w, err := wstr(workingDir)
	if err != nil {
		return 0, err
	}
	return d.callInt(ctx, d.procRunAsWait, u, dom, pw, uintptr(logonFlag), p, w, uintptr(showFlag))
}

func (d *dll) ProcessExists(ctx context.Context, name string) (int, error) {
	n, err := wstr(name)
	if err != nil {
		return 0, err
	}
	return d.callInt(ctx, d.procProcessExists, n)
}

func (d *dll) ProcessClose(ctx context.Context, name string) (int, error) {
	n, err := wstr(name)
	if err != nil {
		return 0, err
	}
	return d.callInt(ctx, d.procProcessClose, n)
}

func (d *dll) ProcessSetPriority(ctx context.Context, name string, priority int) (int, error) {
	n, err := wstr(name)
	if err != nil {
		return 0, err
	}
	return d.callInt(ctx, d.procProcessSetPriority, n, uintptr(priority))
}

func (d *dll) ProcessWait(ctx context.Context, name string, timeoutSeconds int) (int, error) {
	n, err := wstr(name)
	if err != nil {
		return 0, err
	}
	return d.callInt(ctx, d.procProcessWait, n, uintptr(timeoutSeconds))
}

func (d *dll) ProcessWaitClose(ctx context.Context, name string, timeoutSeconds int) (int, error) {
	n, err := wstr(name)
	if err != nil {
		return 0, err
	}
	return d.callInt(ctx, d.procProcessWaitClose, n, uintptr(timeoutSeconds))
}

func (d *dll) Shutdown(ctx context.Context, flags int) (int, error) {
	return d.callInt(ctx, d.procShutdown, uintptr(flags))
}
