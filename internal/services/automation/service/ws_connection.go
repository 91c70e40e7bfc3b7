package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/jsonrpc"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/net/websocket"

	"github.com/winforge/autoit-mcp/internal/platform/logging"
)

// wsConnection implements mcp.Connection over a websocket. A reader goroutine
// owns the socket's receive side and feeds decoded messages to Read; writes
// are serialized by a mutex. A frame that fails to decode is logged and
// skipped without tearing down the session, so one malformed client message
// never kills the connection.
type wsConnection struct {
	sessionID string
	ws        *websocket.Conn
	logger    *logging.Logger

	readChan chan jsonrpc.Message
	closed   chan struct{}

	closeOnce sync.Once
	closeErr  error

	writeMu sync.Mutex
}

// newWSConnection wraps an accepted websocket and starts its reader loop. The
// session ID is an opaque random string used only for log correlation.
func newWSConnection(ws *websocket.Conn, logger *logging.Logger) *wsConnection {
	c := &wsConnection{
		sessionID: uuid.NewString(),
		ws:        ws,
		logger:    logger,
		readChan:  make(chan jsonrpc.Message, 8),
		closed:    make(chan struct{}),
	}
	go c.readLoop()
	return c
}

// readLoop receives frames until the socket fails or the connection closes.
// Decode failures are surfaced in the log and the loop continues; the peer's
// session stays usable.
func (c *wsConnection) readLoop() {
	for {
		var data []byte
		if err := websocket.Message.Receive(c.ws, &data); err != nil {
			select {
			case <-c.closed:
			default:
				c.logger.Errorf("session %s: receive failed: %v", c.sessionID, err)
			}
			_ = c.Close()
			return
		}

		msg, err := jsonrpc.DecodeMessage(data)
		if err != nil {
			c.logger.Errorf("session %s: dropping malformed frame: %v", c.sessionID, err)
			continue
		}

		select {
		case c.readChan <- msg:
		case <-c.closed:
			return
		}
	}
}

// Read implements mcp.Connection.
func (c *wsConnection) Read(ctx context.Context) (jsonrpc.Message, error) {
	select {
	case msg := <-c.readChan:
		return msg, nil
	case <-c.closed:
		return nil, fmt.Errorf("connection closed")
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Write implements mcp.Connection. Writes after Close are rejected.
func (c *wsConnection) Write(ctx context.Context, msg jsonrpc.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-c.closed:
		return fmt.Errorf("connection closed")
	default:
	}

	data, err := jsonrpc.EncodeMessage(msg)
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	select {
	case <-c.closed:
		return fmt.Errorf("connection closed")
	default:
	}
	// Structured messages go out as text frames; sending []byte would emit a
	// binary frame and break text-expecting peers.
	if err := websocket.Message.Send(c.ws, string(data)); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

// Close implements mcp.Connection. It is idempotent: the socket closes and
// the close is logged exactly once, and later calls return the first result.
func (c *wsConnection) Close() error {
	c.closeOnce.Do(func() {
		close(c.closed)
		c.closeErr = c.ws.Close()
		c.logger.Infof("session %s: closed", c.sessionID)
	})
	return c.closeErr
}

// SessionID implements mcp.Connection.
func (c *wsConnection) SessionID() string {
	return c.sessionID
}

// sessionTransport adapts an already-open connection to mcp.Transport so the
// MCP server can bind a session to it.
type sessionTransport struct {
	conn *wsConnection
}

// Connect returns the pre-established connection.
func (t *sessionTransport) Connect(context.Context) (mcp.Connection, error) {
	return t.conn, nil
}
