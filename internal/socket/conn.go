// Package socket carries encoded nodes over a websocket.
package socket

import (
	"context"
	"fmt"
	"net/http"

	"github.com/coder/websocket"

	"github.com/gwillem/whatsapp-go/internal/binary"
)

// Conn is a websocket with one encoded node per binary frame.
type Conn struct {
	ws    *websocket.Conn
	codec binary.WireCodec
}

// Dial opens a websocket to url. Optional headers are added to the upgrade
// request.
func Dial(ctx context.Context, url string, headers ...http.Header) (*Conn, error) {
	opts := &websocket.DialOptions{}
	if len(headers) > 0 {
		opts.HTTPHeader = headers[0]
	}
	ws, _, err := websocket.Dial(ctx, url, opts)
	if err != nil {
		return nil, fmt.Errorf("socket: dial: %w", err)
	}
	ws.SetReadLimit(maxFrameSize)
	return &Conn{ws: ws}, nil
}

// Accept upgrades a server side request.
func Accept(w http.ResponseWriter, r *http.Request) (*Conn, error) {
	ws, err := websocket.Accept(w, r, nil)
	if err != nil {
		return nil, fmt.Errorf("socket: accept: %w", err)
	}
	ws.SetReadLimit(maxFrameSize)
	return &Conn{ws: ws}, nil
}

const maxFrameSize = 16 << 20

// ReadNode reads and decodes the next frame.
func (c *Conn) ReadNode(ctx context.Context) (binary.Node, error) {
	_, data, err := c.ws.Read(ctx)
	if err != nil {
		return binary.Node{}, fmt.Errorf("socket: read: %w", err)
	}
	n, err := c.codec.Unmarshal(data)
	if err != nil {
		return binary.Node{}, fmt.Errorf("socket: decode: %w", err)
	}
	return n, nil
}

// WriteNode encodes and sends n.
func (c *Conn) WriteNode(ctx context.Context, n binary.Node) error {
	data, err := c.codec.Marshal(n)
	if err != nil {
		return fmt.Errorf("socket: encode: %w", err)
	}
	if err := c.ws.Write(ctx, websocket.MessageBinary, data); err != nil {
		return fmt.Errorf("socket: write: %w", err)
	}
	return nil
}

// Ping sends a websocket ping and waits for the pong.
func (c *Conn) Ping(ctx context.Context) error {
	return c.ws.Ping(ctx)
}

// Close sends a normal closure frame and closes the connection.
func (c *Conn) Close() error {
	return c.ws.Close(websocket.StatusNormalClosure, "")
}

// CloseNow closes the connection without a close frame.
func (c *Conn) CloseNow() error {
	return c.ws.CloseNow()
}
