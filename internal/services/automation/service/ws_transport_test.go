package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/net/websocket"

	"github.com/winforge/autoit-mcp/internal/autoit/autoittest"
	"github.com/winforge/autoit-mcp/internal/services/automation/audit"
)

func TestValidateLocalRequest(t *testing.T) {
	transport := NewWSTransport("localhost:0", nil)

	cases := []struct {
		name    string
		host    string
		origin  string
		allowed []string
		wantErr bool
	}{
		{name: "loopback host", host: "localhost:8089"},
		{name: "loopback ip", host: "127.0.0.1:8089"},
		{name: "remote host rejected", host: "evil.example.com", wantErr: true},
		{name: "loopback origin", host: "localhost:8089", origin: "http://localhost:3000"},
		{name: "remote origin rejected", host: "localhost:8089", origin: "http://evil.example.com", wantErr: true},
		{name: "allowed host passes", host: "automation.internal:8089", allowed: []string{"automation.internal"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			transport.allowedHosts = parseAllowedHosts(tc.allowed)
			req := httptest.NewRequest(http.MethodGet, "/mcp", nil)
			req.Host = tc.host
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			err := transport.validateLocalRequest(req)
			if tc.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestAuthorizeRequest(t *testing.T) {
	t.Run("no token configured admits everyone", func(t *testing.T) {
		transport := NewWSTransport("localhost:0", nil)
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/mcp", nil)
		if !transport.authorizeRequest(recorder, req) {
			t.Error("expected request to pass without configured token")
		}
	})

	t.Run("missing bearer rejected", func(t *testing.T) {
		transport := NewWSTransport("localhost:0", nil)
		transport.authToken = "secret"
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/mcp", nil)
		if transport.authorizeRequest(recorder, req) {
			t.Error("expected rejection without bearer token")
		}
		if recorder.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", recorder.Code)
		}
	})

	t.Run("wrong token rejected", func(t *testing.T) {
		transport := NewWSTransport("localhost:0", nil)
		transport.authToken = "secret"
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/mcp", nil)
		req.Header.Set("Authorization", "Bearer nope")
		if transport.authorizeRequest(recorder, req) {
			t.Error("expected rejection with wrong token")
		}
	})

	t.Run("matching token admitted", func(t *testing.T) {
		transport := NewWSTransport("localhost:0", nil)
		transport.authToken = "secret"
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/mcp", nil)
		req.Header.Set("Authorization", "Bearer secret")
		if !transport.authorizeRequest(recorder, req) {
			t.Error("expected matching token to pass")
		}
	})
}

func TestNormalizeHost(t *testing.T) {
	cases := []struct {
		input string
		want  string
		ok    bool
	}{
		{"localhost:8089", "localhost", true},
		{"127.0.0.1", "127.0.0.1", true},
		{"[::1]:8089", "::1", true},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := normalizeHost(tc.input)
		if ok != tc.ok || got != tc.want {
			t.Errorf("normalizeHost(%q) = %q, %v; want %q, %v", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

// dialSessionServer stands up an MCP server behind a websocket endpoint and
// dials it.
func dialSessionServer(t *testing.T, ctx context.Context) *websocket.Conn {
	t.Helper()

	server, err := newServer(autoittest.NewFake(), audit.NopRecorder{})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	transport := NewWSTransport("localhost:0", server.mcpServer)

	httpServer := httptest.NewServer(websocket.Handler(func(ws *websocket.Conn) {
		transport.handleSession(ctx, ws)
	}))
	t.Cleanup(httpServer.Close)

	wsURL := "ws" + strings.TrimPrefix(httpServer.URL, "http")
	ws, err := websocket.Dial(wsURL, "", "http://localhost/")
	if err != nil {
		t.Fatalf("dial websocket: %v", err)
	}
	t.Cleanup(func() { _ = ws.Close() })
	return ws
}

func TestWSSessionSurvivesMalformedFrame(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ws := dialSessionServer(t, ctx)

	// A malformed frame must be dropped without closing the session.
	if err := websocket.Message.Send(ws, "this is not json-rpc"); err != nil {
		t.Fatalf("send malformed frame: %v", err)
	}

	initialize := `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-03-26","capabilities":{},"clientInfo":{"name":"test","version":"0.0.1"}}}`
	if err := websocket.Message.Send(ws, initialize); err != nil {
		t.Fatalf("send initialize: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	if err := ws.SetReadDeadline(deadline); err != nil {
		t.Fatalf("set read deadline: %v", err)
	}
	var reply []byte
	if err := websocket.Message.Receive(ws, &reply); err != nil {
		t.Fatalf("receive initialize response: %v", err)
	}
	response := string(reply)
	if !strings.Contains(response, `"result"`) {
		t.Errorf("expected a result response, got %s", response)
	}
	if !strings.Contains(response, "autoit-mcp") {
		t.Errorf("expected server identity in response, got %s", response)
	}
}
