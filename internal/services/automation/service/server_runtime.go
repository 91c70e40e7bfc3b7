package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/winforge/autoit-mcp/internal/autoit"
	"github.com/winforge/autoit-mcp/internal/platform/logging"
	"github.com/winforge/autoit-mcp/internal/services/automation/audit"
	auditsqlite "github.com/winforge/autoit-mcp/internal/services/automation/audit/sqlite"
)

// Supported transports.
const (
	TransportStdio = "stdio"
	TransportWS    = "ws"
)

const defaultWSAddr = "localhost:8089"

// Config carries runtime settings for the automation service.
type Config struct {
	// Transport selects how sessions reach the server: "stdio" or "ws".
	Transport string
	// WSAddr is the listen address for the websocket transport.
	WSAddr string
	// AuditDBPath enables the SQLite invocation audit trail when set.
	AuditDBPath string
	// AllowedHosts extends the loopback-only default for the websocket
	// transport.
	AllowedHosts []string
	// AuthToken enables bearer-token checks on the websocket transport.
	AuthToken string
	// Logger receives transport and session logs. Nil silences them.
	Logger *logging.Logger
}

// Run is the service entrypoint and blocks until context cancellation. The
// transport is validated before any resource is opened, so an unsupported
// selection fails without side effects.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}
	switch cfg.Transport {
	case TransportStdio, TransportWS:
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}

	return runWithAutomation(ctx, cfg, autoit.New())
}

// runWithAutomation wires the capability and audit trail, then serves on the
// configured transport.
func runWithAutomation(ctx context.Context, cfg Config, auto autoit.Automation) error {
	recorder, closeRecorder, err := openRecorder(cfg.AuditDBPath)
	if err != nil {
		return err
	}
	defer closeRecorder()

	server, err := newServer(auto, recorder)
	if err != nil {
		return err
	}

	switch cfg.Transport {
	case TransportStdio:
		return server.serveWithTransport(ctx, &mcp.StdioTransport{})
	case TransportWS:
		return runWithWSTransport(ctx, cfg, server)
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
}

// openRecorder opens the SQLite audit store when a path is configured and
// falls back to the nop recorder otherwise.
func openRecorder(path string) (audit.Recorder, func(), error) {
	if path == "" {
		return audit.NopRecorder{}, func() {}, nil
	}
	store, err := auditsqlite.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open audit store: %w", err)
	}
	return store, func() {
		if closeErr := store.Close(); closeErr != nil {
			log.Printf("close audit store: %v", closeErr)
		}
	}, nil
}

// runWithWSTransport serves the MCP server over the websocket transport.
func runWithWSTransport(ctx context.Context, cfg Config, server *Server) error {
	wsAddr := cfg.WSAddr
	if wsAddr == "" {
		wsAddr = defaultWSAddr
	}

	wsTransport := NewWSTransport(wsAddr, server.mcpServer)
	wsTransport.applyConfig(cfg)
	return wsTransport.Start(ctx)
}

// serveWithTransport starts the MCP server using the provided transport.
// Context cancellation is a normal exit, not an error.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
