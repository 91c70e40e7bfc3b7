package domain

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/winforge/autoit-mcp/internal/autoit/autoittest"
)

func readScreenshotResource(t *testing.T, fake *autoittest.Fake, uri string) (*mcp.ReadResourceResult, error) {
	t.Helper()
	handler := ScreenshotResourceHandler(fake)
	return handler(context.Background(), &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: uri},
	})
}

func TestScreenshotResourceHandlerWholeScreen(t *testing.T) {
	fake := autoittest.NewFake()
	fake.Screenshot = []byte{0x89, 0x50, 0x4E, 0x47}

	result, err := readScreenshotResource(t, fake, "screenshot://screen")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content := result.Contents[0]
	if content.MIMEType != "image/png" {
		t.Errorf("expected image/png, got %q", content.MIMEType)
	}
	if !bytes.Equal(content.Blob, fake.Screenshot) {
		t.Error("expected captured bytes in blob")
	}
	for _, name := range fake.CallNames() {
		if name == "WinExists" || name == "WinActivate" {
			t.Errorf("whole-screen capture must not touch windows, called %s", name)
		}
	}
}

func TestScreenshotResourceHandlerNamedWindow(t *testing.T) {
	fake := autoittest.NewFake()
	fake.Screenshot = []byte{0x01}
	fake.IntResults["WinExists"] = 1

	if _, err := readScreenshotResource(t, fake, "screenshot://Notepad"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names := fake.CallNames()
	var sawExists, sawActivate bool
	for _, name := range names {
		if name == "WinExists" {
			sawExists = true
		}
		if name == "WinActivate" {
			sawActivate = true
		}
	}
	if !sawExists || !sawActivate {
		t.Errorf("expected existence check then activation, got %v", names)
	}
}

func TestScreenshotResourceHandlerMissingWindow(t *testing.T) {
	fake := autoittest.NewFake()
	fake.IntResults["WinExists"] = 0

	if _, err := readScreenshotResource(t, fake, "screenshot://Ghost"); err == nil {
		t.Fatal("expected error for missing window")
	}
	for _, name := range fake.CallNames() {
		if name == "CaptureScreen" {
			t.Error("capture must not run when the window is missing")
		}
	}
}

func TestScreenshotResourceHandlerCaptureFault(t *testing.T) {
	fake := autoittest.NewFake()
	fake.Errs["CaptureScreen"] = errors.New("no display")

	if _, err := readScreenshotResource(t, fake, "screenshot://screen"); err == nil {
		t.Fatal("expected error when capture fails")
	}
}

func TestParseScreenshotNameFromURI(t *testing.T) {
	name, err := parseScreenshotNameFromURI("screenshot://Untitled - Notepad")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "Untitled - Notepad" {
		t.Errorf("expected window name, got %q", name)
	}
	if _, err := parseScreenshotNameFromURI("screenshot://"); err == nil {
		t.Fatal("expected error for empty target")
	}
}
