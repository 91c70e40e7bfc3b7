package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/winforge/autoit-mcp/internal/autoit"
	"github.com/winforge/autoit-mcp/internal/autoit/autoittest"
)

func TestWinActivateHandler(t *testing.T) {
	t.Run("success narrative", func(t *testing.T) {
		fake := autoittest.NewFake()
		fake.IntResults["WinActivate"] = 1
		handler := WinActivateHandler(fake)
		toolResult, result, err := handler(context.Background(), nil, WinActivateInput{
			WindowTarget: WindowTarget{Title: "Notepad"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `Window "Notepad" activated with result: 1`
		if got := textOf(t, toolResult); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
		if toolResult.IsError {
			t.Error("success must not set the error flag")
		}
		if result.Code != 1 {
			t.Errorf("expected code 1, got %d", result.Code)
		}
		if result.Outcome != "ok" {
			t.Errorf("expected ok outcome, got %q", result.Outcome)
		}
	})

	t.Run("zero code is failed, not an error", func(t *testing.T) {
		fake := autoittest.NewFake()
		fake.IntResults["WinActivate"] = 0
		handler := WinActivateHandler(fake)
		toolResult, result, err := handler(context.Background(), nil, WinActivateInput{
			WindowTarget: WindowTarget{Title: "Ghost"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if toolResult.IsError {
			t.Error("operational failure must not set the error flag")
		}
		if result.Outcome != "failed" {
			t.Errorf("expected failed outcome, got %q", result.Outcome)
		}
	})

	t.Run("fault sets the error flag without throwing", func(t *testing.T) {
		fake := autoittest.NewFake()
		fake.Errs["WinActivate"] = errors.New("window station is locked")
		handler := WinActivateHandler(fake)
		toolResult, result, err := handler(context.Background(), nil, WinActivateInput{
			WindowTarget: WindowTarget{Title: "Notepad"},
		})
		if err != nil {
			t.Fatalf("faults must not cross the tool boundary: %v", err)
		}
		if !toolResult.IsError {
			t.Error("fault must set the error flag")
		}
		if result.Outcome != "fault" {
			t.Errorf("expected fault outcome, got %q", result.Outcome)
		}
	})

	t.Run("initialization failure is a fault", func(t *testing.T) {
		fake := autoittest.NewFake()
		fake.InitErr = autoit.ErrUnsupported
		handler := WinActivateHandler(fake)
		toolResult, _, err := handler(context.Background(), nil, WinActivateInput{
			WindowTarget: WindowTarget{Title: "Notepad"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !toolResult.IsError {
			t.Error("initialization failure must set the error flag")
		}
	})
}

func TestProcessExistsHandler(t *testing.T) {
	t.Run("missing process narrates without failing", func(t *testing.T) {
		fake := autoittest.NewFake()
		fake.IntResults["ProcessExists"] = 0
		handler := ProcessExistsHandler(fake)
		toolResult, result, err := handler(context.Background(), nil, ProcessExistsInput{Process: "notepad.exe"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `Process "notepad.exe" does not exist`
		if got := textOf(t, toolResult); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
		if toolResult.IsError {
			t.Error("absence is an answer, not an error")
		}
		if result.Outcome != "ok" {
			t.Errorf("expected ok outcome, got %q", result.Outcome)
		}
	})

	t.Run("found process reports pid", func(t *testing.T) {
		fake := autoittest.NewFake()
		fake.IntResults["ProcessExists"] = 4242
		handler := ProcessExistsHandler(fake)
		_, result, err := handler(context.Background(), nil, ProcessExistsInput{Process: "notepad.exe"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.PID != 4242 {
			t.Errorf("expected pid 4242, got %d", result.PID)
		}
	})
}

func TestClipGetHandler(t *testing.T) {
	t.Run("returns clipboard text", func(t *testing.T) {
		fake := autoittest.NewFake()
		fake.TextResults["ClipGet"] = "hello"
		handler := ClipGetHandler(fake)
		_, result, err := handler(context.Background(), nil, ClipGetInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Text != "hello" {
			t.Errorf("expected clipboard text, got %q", result.Text)
		}
	})

	t.Run("access fault surfaces in the envelope", func(t *testing.T) {
		fake := autoittest.NewFake()
		fake.Errs["ClipGet"] = errors.New("clipboard access denied")
		handler := ClipGetHandler(fake)
		toolResult, _, err := handler(context.Background(), nil, ClipGetInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !toolResult.IsError {
			t.Error("fault must set the error flag")
		}
		if got := textOf(t, toolResult); got != "clipboard access denied" {
			t.Errorf("expected fault text, got %q", got)
		}
	})
}

func TestMouseClickHandlerDefaults(t *testing.T) {
	fake := autoittest.NewFake()
	handler := MouseClickHandler(fake)
	_, _, err := handler(context.Background(), nil, MouseClickInput{X: 5, Y: 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	calls := fake.Calls()
	if len(calls) != 2 || calls[1].Name != "MouseClick" {
		t.Fatalf("expected Initialize then MouseClick, got %v", fake.CallNames())
	}
	args := calls[1].Args
	if args[0] != "left" {
		t.Errorf("expected default button left, got %v", args[0])
	}
	if args[3] != 1 {
		t.Errorf("expected default single click, got %v", args[3])
	}
	if args[4] != 10 {
		t.Errorf("expected default speed 10, got %v", args[4])
	}
}

func TestMouseGetPosHandler(t *testing.T) {
	fake := autoittest.NewFake()
	fake.PointResult = autoit.Point{X: 100, Y: 200}
	handler := MouseGetPosHandler(fake)
	toolResult, result, err := handler(context.Background(), nil, MouseGetPosInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.X != 100 || result.Y != 200 {
		t.Errorf("expected (100, 200), got (%d, %d)", result.X, result.Y)
	}
	if got := textOf(t, toolResult); got != "Mouse position: (100, 200)" {
		t.Errorf("unexpected narrative %q", got)
	}
}

func TestWinGetPosHandler(t *testing.T) {
	fake := autoittest.NewFake()
	fake.RectResults["WinGetPos"] = autoit.Rect{Left: 10, Top: 20, Right: 110, Bottom: 220}
	handler := WinGetPosHandler(fake)
	_, result, err := handler(context.Background(), nil, WinGetPosInput{
		WindowTarget: WindowTarget{Title: "Notepad"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Width != 100 || result.Height != 200 {
		t.Errorf("expected 100x200, got %dx%d", result.Width, result.Height)
	}
}

func TestWinGetHandleHandler(t *testing.T) {
	t.Run("empty handle is failed", func(t *testing.T) {
		fake := autoittest.NewFake()
		handler := WinGetHandleHandler(fake)
		toolResult, result, err := handler(context.Background(), nil, WinGetHandleInput{
			WindowTarget: WindowTarget{Title: "Ghost"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if toolResult.IsError {
			t.Error("missing window must not set the error flag")
		}
		if result.Outcome != "failed" {
			t.Errorf("expected failed outcome, got %q", result.Outcome)
		}
	})

	t.Run("handle is passed through", func(t *testing.T) {
		fake := autoittest.NewFake()
		fake.TextResults["WinGetHandle"] = "0x00A4063C"
		handler := WinGetHandleHandler(fake)
		_, result, err := handler(context.Background(), nil, WinGetHandleInput{
			WindowTarget: WindowTarget{Title: "Notepad"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Handle != "0x00A4063C" {
			t.Errorf("expected handle, got %q", result.Handle)
		}
	})
}

func TestRunHandler(t *testing.T) {
	t.Run("pid zero is failed", func(t *testing.T) {
		fake := autoittest.NewFake()
		fake.IntResults["Run"] = 0
		handler := RunHandler(fake)
		toolResult, result, err := handler(context.Background(), nil, RunInput{Program: "missing.exe"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if toolResult.IsError {
			t.Error("launch failure must not set the error flag")
		}
		if result.Outcome != "failed" {
			t.Errorf("expected failed outcome, got %q", result.Outcome)
		}
	})

	t.Run("pid is reported", func(t *testing.T) {
		fake := autoittest.NewFake()
		fake.IntResults["Run"] = 1234
		handler := RunHandler(fake)
		_, result, err := handler(context.Background(), nil, RunInput{Program: "notepad.exe"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.PID != 1234 {
			t.Errorf("expected pid 1234, got %d", result.PID)
		}
	})
}

func TestRunWaitHandlerExitCodeZeroIsOK(t *testing.T) {
	fake := autoittest.NewFake()
	fake.IntResults["RunWait"] = 0
	handler := RunWaitHandler(fake)
	toolResult, result, err := handler(context.Background(), nil, RunWaitInput{Program: "job.exe"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toolResult.IsError {
		t.Error("exit code zero is a normal completion")
	}
	if result.Outcome != "ok" {
		t.Errorf("expected ok outcome, got %q", result.Outcome)
	}
	if result.ExitCode != 0 {
		t.Errorf("expected exit code 0, got %d", result.ExitCode)
	}
}

func TestControlCommandHandler(t *testing.T) {
	fake := autoittest.NewFake()
	fake.TextResults["ControlCommand"] = "checked"
	handler := ControlCommandHandler(fake)
	_, result, err := handler(context.Background(), nil, ControlCommandInput{
		ControlTarget: ControlTarget{
			WindowTarget: WindowTarget{Title: "Settings"},
			Control:      "Button1",
		},
		Command: "IsChecked",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Value != "checked" {
		t.Errorf("expected command value, got %q", result.Value)
	}
	names := fake.CallNames()
	if names[len(names)-1] != "ControlCommand" {
		t.Errorf("expected a single delegated call, got %v", names)
	}
}

func TestWinExistsHandler(t *testing.T) {
	fake := autoittest.NewFake()
	fake.IntResults["WinExists"] = 0
	handler := WinExistsHandler(fake)
	toolResult, result, err := handler(context.Background(), nil, WinExistsInput{
		WindowTarget: WindowTarget{Title: "Ghost"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toolResult.IsError {
		t.Error("a negative existence check is not an error")
	}
	if result.Exists {
		t.Error("expected exists false")
	}
	if result.Outcome != "ok" {
		t.Errorf("expected ok outcome, got %q", result.Outcome)
	}
}

func TestShutdownHandler(t *testing.T) {
	fake := autoittest.NewFake()
	handler := ShutdownHandler(fake)
	_, result, err := handler(context.Background(), nil, ShutdownInput{Flags: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Outcome != "ok" {
		t.Errorf("expected ok outcome, got %q", result.Outcome)
	}
	calls := fake.Calls()
	last := calls[len(calls)-1]
	if last.Name != "Shutdown" || last.Args[0] != 5 {
		t.Errorf("expected Shutdown(5), got %+v", last)
	}
}
