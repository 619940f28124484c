package client

import (
	"context"
	"fmt"
	"net"
	"sync"

	"github.com/charmbracelet/log"

	"vizsla/internal/device"
	"vizsla/internal/stream"
	"vizsla/internal/wire"
)

// writerQueueCapacity bounds the outgoing-frame channel so handlers'
// send_message calls only block if the writer goroutine has stalled
// on a dead socket (§5 "Suspension points").
const writerQueueCapacity = 256

// Client owns the TCP socket, the stream parser, and the connection
// state machine (§4.5). It is read by exactly one reader goroutine and
// written to by exactly one writer goroutine; handler invocation is
// serialized by the dispatcher, so Client's mutable fields besides the
// state mutex need no locking of their own.
type Client struct {
	conn   net.Conn
	parser *stream.Parser
	logger *log.Logger

	clientName string

	mu    sync.Mutex
	state State

	writeCh chan []byte
	Mouse   device.Mouse
	Keyboard device.Keyboard
	Context  device.Context
}

// New wraps an already-dialed connection. Call Handshake before Run.
func New(conn net.Conn, clientName string, mouse device.Mouse, keyboard device.Keyboard, devCtx device.Context, logger *log.Logger) *Client {
	return &Client{
		conn:       conn,
		parser:     stream.New(),
		logger:     logger,
		clientName: clientName,
		state:      Connecting,
		writeCh:    make(chan []byte, writerQueueCapacity),
		Mouse:      mouse,
		Keyboard:   keyboard,
		Context:    devCtx,
	}
}

// State returns the client's current state machine node.
func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SetState transitions the client to s.
func (c *Client) SetState(s State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger.Debug("state transition", "from", c.state, "to", s)
	c.state = s
}

// IsActive reports whether the client is currently in the Active
// state, which gates injection handlers per §4.7.
func (c *Client) IsActive() bool {
	return c.State() == Active
}

// Send queues a fully-packed, length-prefixed frame for the writer
// goroutine. It is the only suspension point a handler has (§5).
func (c *Client) Send(framed []byte) {
	c.writeCh <- framed
}

// SendMessage packs msg through the wire registry, envelopes it, and
// queues it for the writer.
func (c *Client) SendMessage(msg wire.Message) {
	c.Send(wire.Envelope(wire.Pack(msg)))
}

// Handshake performs the Hello/HelloBack exchange required to enter
// HANDSHAKE and leave it in CONNECTED (§4.5). It reads directly off
// the connection rather than going through Run's main loop, since the
// handshake has its own framing rule (NextHandshakeMsg).
func (c *Client) Handshake(ctx context.Context) error {
	c.SetState(Handshake)

	buf := make([]byte, 4096)
	for {
		body, err := c.parser.NextHandshakeMsg(wire.HelloProtocolName)
		if err != nil {
			return fmt.Errorf("client: handshake: %w", err)
		}
		if body != nil {
			hello, err := wire.UnpackHello(body)
			if err != nil {
				return fmt.Errorf("client: handshake: decode hello: %w", err)
			}

			hb := wire.HelloBack{
				ProtocolName: hello.ProtocolName,
				Major:        hello.Major,
				Minor:        hello.Minor,
				ClientName:   c.clientName,
			}
			if _, err := c.conn.Write(wire.Envelope(wire.PackHelloBack(hb))); err != nil {
				return fmt.Errorf("client: handshake: write hello_back: %w", err)
			}

			c.SetState(Connected)
			return nil
		}

		n, err := c.conn.Read(buf)
		if err != nil {
			return fmt.Errorf("client: handshake: read: %w", err)
		}
		if n == 0 {
			return ErrClosedByPeer
		}
		c.parser.Feed(buf[:n])
	}
}

// Stop releases all held keys and buttons, then closes the socket.
// Called once, from the top-level run loop, regardless of which
// goroutine observed the terminating condition (§5 "Cancellation").
func (c *Client) Stop() {
	if c.Keyboard != nil {
		if err := c.Keyboard.ReleaseAllKeys(); err != nil {
			c.logger.Error("release all keys on shutdown", "error", err)
		}
		_ = c.Keyboard.Syn()
	}
	if c.Mouse != nil {
		if err := c.Mouse.ReleaseAllButtons(); err != nil {
			c.logger.Error("release all buttons on shutdown", "error", err)
		}
		_ = c.Mouse.Syn()
	}
	c.SetState(Disconnected)
	_ = c.conn.Close()
}
