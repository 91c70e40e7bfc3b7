package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/net/websocket"

	"github.com/winforge/autoit-mcp/internal/platform/logging"
)

const (
	wsEndpoint       = "/mcp"
	wsHealthEndpoint = "/mcp/health"

	wsShutdownTimeout = 5 * time.Second
)

// WSTransport serves MCP sessions over websocket connections. Each accepted
// socket becomes its own MCP session against the shared server; sessions are
// tracked so shutdown can close them deliberately.
type WSTransport struct {
	addr         string
	server       *mcp.Server
	logger       *logging.Logger
	allowedHosts map[string]struct{}
	authToken    string

	mu       sync.Mutex
	sessions map[string]*mcp.ServerSession
}

// NewWSTransport creates a websocket transport bound to the given MCP server.
func NewWSTransport(addr string, server *mcp.Server) *WSTransport {
	return &WSTransport{
		addr:     addr,
		server:   server,
		sessions: make(map[string]*mcp.ServerSession),
	}
}

func (t *WSTransport) applyConfig(cfg Config) {
	t.logger = cfg.Logger
	t.allowedHosts = parseAllowedHosts(cfg.AllowedHosts)
	t.authToken = cfg.AuthToken
}

// Start serves websocket sessions until the context ends.
func (t *WSTransport) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc(wsHealthEndpoint, t.handleHealth)
	mux.HandleFunc(wsEndpoint, func(w http.ResponseWriter, r *http.Request) {
		if err := t.validateLocalRequest(r); err != nil {
			http.Error(w, err.Error(), http.StatusForbidden)
			return
		}
		if !t.authorizeRequest(w, r) {
			return
		}
		websocket.Handler(func(ws *websocket.Conn) {
			t.handleSession(ctx, ws)
		}).ServeHTTP(w, r)
	})

	httpServer := &http.Server{
		Addr:    t.addr,
		Handler: mux,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- httpServer.ListenAndServe()
	}()

	t.logger.Infof("websocket transport listening on %s%s", t.addr, wsEndpoint)

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve websocket transport: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), wsShutdownTimeout)
	defer cancel()
	t.closeSessions()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shut down websocket transport: %w", err)
	}
	return nil
}

// handleSession binds one websocket to a fresh MCP session and blocks until
// the session ends.
func (t *WSTransport) handleSession(ctx context.Context, ws *websocket.Conn) {
	conn := newWSConnection(ws, t.logger)
	defer func() { _ = conn.Close() }()

	session, err := t.server.Connect(ctx, &sessionTransport{conn: conn}, nil)
	if err != nil {
		t.logger.Errorf("session %s: connect failed: %v", conn.SessionID(), err)
		return
	}

	t.trackSession(conn.SessionID(), session)
	defer t.untrackSession(conn.SessionID())

	t.logger.Infof("session %s: established", conn.SessionID())
	if err := session.Wait(); err != nil {
		t.logger.Infof("session %s: ended: %v", conn.SessionID(), err)
	}
}

func (t *WSTransport) trackSession(id string, session *mcp.ServerSession) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sessions[id] = session
}

func (t *WSTransport) untrackSession(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.sessions, id)
}

func (t *WSTransport) closeSessions() {
	t.mu.Lock()
	sessions := make([]*mcp.ServerSession, 0, len(t.sessions))
	for _, session := range t.sessions {
		sessions = append(sessions, session)
	}
	t.mu.Unlock()

	for _, session := range sessions {
		_ = session.Close()
	}
}

// handleHealth handles GET requests on the health endpoint.
func (t *WSTransport) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := t.validateLocalRequest(r); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		t.logger.Errorf("write health response: %v", err)
	}
}
