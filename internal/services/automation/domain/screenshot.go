package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/winforge/autoit-mcp/internal/autoit"
)

const screenshotWholeScreen = "screen"

// ScreenshotResourceTemplate defines the screen capture resource exposed by
// the server.
func ScreenshotResourceTemplate() *mcp.ResourceTemplate {
	return &mcp.ResourceTemplate{
		Name:        "screenshot",
		Title:       "Screenshot",
		Description: "Captures the screen, optionally activating a named window first",
		MIMEType:    "image/png",
		URITemplate: "screenshot://{name}",
	}
}

// ScreenshotResourceHandler serves screenshot:// URIs. A name other than
// "screen" targets a window: the window must exist and is activated before
// the capture. The capture itself always covers the full screen.
func ScreenshotResourceHandler(auto autoit.Automation) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if req == nil || req.Params == nil || req.Params.URI == "" {
			return nil, fmt.Errorf("screenshot target is required; use URI format screenshot://{name}")
		}
		uri := req.Params.URI

		name, err := parseScreenshotNameFromURI(uri)
		if err != nil {
			return nil, fmt.Errorf("parse screenshot target from URI: %w", err)
		}

		if err := auto.Initialize(ctx); err != nil {
			return nil, err
		}

		if name != screenshotWholeScreen {
			exists, err := auto.WinExists(ctx, name, "")
			if err != nil {
				return nil, fmt.Errorf("check window %q: %w", name, err)
			}
			if exists != 1 {
				return nil, fmt.Errorf("window %q does not exist", name)
			}
			if _, err := auto.WinActivate(ctx, name, ""); err != nil {
				return nil, fmt.Errorf("activate window %q: %w", name, err)
			}
		}

		data, err := auto.CaptureScreen(ctx)
		if err != nil {
			return nil, fmt.Errorf("capture screen: %w", err)
		}

		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{URI: uri, MIMEType: "image/png", Blob: data},
			},
		}, nil
	}
}

// parseScreenshotNameFromURI extracts the window name from a screenshot://
// URI. The name "screen" captures without activating anything.
func parseScreenshotNameFromURI(uri string) (string, error) {
	rest, ok := strings.CutPrefix(uri, "screenshot://")
	if !ok {
		return "", fmt.Errorf("unexpected URI %q", uri)
	}
	if rest == "" {
		return "", fmt.Errorf("empty screenshot target in %q", uri)
	}
	return rest, nil
}
