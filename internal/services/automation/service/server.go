// Package service hosts the MCP server for desktop automation: tool and
// resource registration, transport selection, and the per-session plumbing
// that connects clients to the automation capability.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/winforge/autoit-mcp/internal/autoit"
	"github.com/winforge/autoit-mcp/internal/services/automation/audit"
)

const (
	serverName    = "autoit-mcp"
	serverVersion = "1.0.0"
)

// Server wraps the MCP server together with its automation capability and
// audit recorder.
type Server struct {
	mcpServer *mcp.Server
	auto      autoit.Automation
	recorder  audit.Recorder
}

// completionHandler handles completion/complete requests with empty results.
// The tool surface has no free-form arguments worth completing, so an empty
// list keeps clients predictable.
func completionHandler(_ context.Context, _ *mcp.CompleteRequest) (*mcp.CompleteResult, error) {
	return &mcp.CompleteResult{
		Completion: mcp.CompletionResultDetails{
			Values: []string{},
		},
	}, nil
}

// resourceSubscribeHandler accepts resource subscriptions with a valid URI.
func resourceSubscribeHandler(_ context.Context, req *mcp.SubscribeRequest) error {
	if req == nil || req.Params == nil || strings.TrimSpace(req.Params.URI) == "" {
		return fmt.Errorf("resource uri is required")
	}
	return nil
}

// resourceUnsubscribeHandler accepts resource unsubscriptions with a valid
// URI.
func resourceUnsubscribeHandler(_ context.Context, req *mcp.UnsubscribeRequest) error {
	if req == nil || req.Params == nil || strings.TrimSpace(req.Params.URI) == "" {
		return fmt.Errorf("resource uri is required")
	}
	return nil
}

// newServer builds the MCP server and registers every tool and resource
// module.
func newServer(auto autoit.Automation, recorder audit.Recorder) (*Server, error) {
	if auto == nil {
		return nil, fmt.Errorf("automation capability is required")
	}
	if recorder == nil {
		recorder = audit.NopRecorder{}
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{Name: serverName, Version: serverVersion},
		&mcp.ServerOptions{
			CompletionHandler:  completionHandler,
			SubscribeHandler:   resourceSubscribeHandler,
			UnsubscribeHandler: resourceUnsubscribeHandler,
		},
	)

	server := &Server{
		mcpServer: mcpServer,
		auto:      auto,
		recorder:  recorder,
	}

	registrar := mcpServerRegistrationAdapter{server: mcpServer}
	for _, module := range registrationModules(auto, recorder) {
		if err := module.register(registrar); err != nil {
			return nil, fmt.Errorf("register %s: %w", module.name, err)
		}
	}

	return server, nil
}
