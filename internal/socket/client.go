package socket

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/gwillem/whatsapp-go/internal/binary"
	"github.com/gwillem/whatsapp-go/internal/jid"
)

const (
	defaultKeepAliveInterval = 30 * time.Second
	defaultKeepAliveTimeout  = 20 * time.Second
	defaultQueryTimeout      = 20 * time.Second
)

// ErrClosed is returned after Close.
var ErrClosed = errors.New("socket: closed")

// ErrConnectionLost fails queries pending when the connection dropped.
var ErrConnectionLost = errors.New("socket: connection lost")

// Client is a persistent node connection. It correlates iq responses with
// queries by id, keeps the connection alive with pings and redials when it
// breaks. Nodes that are not responses go to the handler.
type Client struct {
	url     string
	headers http.Header
	log     logrus.FieldLogger
	handler func(binary.Node)

	keepAliveInterval time.Duration
	keepAliveTimeout  time.Duration
	queryTimeout      time.Duration

	mu      sync.Mutex
	conn    *Conn
	pending map[string]chan binary.Node

	prefix  string
	counter atomic.Uint64
	closed  atomic.Bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// Option configures a Client.
type Option func(*Client)

// WithHandler receives every node that is not a query response.
func WithHandler(fn func(binary.Node)) Option {
	return func(c *Client) { c.handler = fn }
}

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Client) { c.log = l }
}

// WithHeaders sets headers for the upgrade request.
func WithHeaders(h http.Header) Option {
	return func(c *Client) { c.headers = h }
}

// WithKeepAliveInterval sets the interval between pings.
func WithKeepAliveInterval(d time.Duration) Option {
	return func(c *Client) { c.keepAliveInterval = d }
}

// WithKeepAliveTimeout sets how long a ping may take before redialing.
func WithKeepAliveTimeout(d time.Duration) Option {
	return func(c *Client) { c.keepAliveTimeout = d }
}

// WithQueryTimeout bounds queries whose context has no deadline.
func WithQueryTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.queryTimeout = d
		}
	}
}

// DeviceURL appends the device query parameter the relay identifies
// connections by.
func DeviceURL(base string, device jid.JID) string {
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + "device=" + url.QueryEscape(device.String())
}

// Connect dials rawURL and starts the read and keep-alive loops.
func Connect(ctx context.Context, rawURL string, opts ...Option) (*Client, error) {
	c := &Client{
		url:               rawURL,
		keepAliveInterval: defaultKeepAliveInterval,
		keepAliveTimeout:  defaultKeepAliveTimeout,
		queryTimeout:      defaultQueryTimeout,
		pending:           make(map[string]chan binary.Node),
		prefix:            uuid.NewString()[:8] + "-",
		done:              make(chan struct{}),
	}
	for _, o := range opts {
		o(c)
	}
	if c.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		c.log = l
	}
	c.log = c.log.WithField("component", "socket")

	conn, err := Dial(ctx, c.url, c.headers)
	if err != nil {
		return nil, err
	}
	c.conn = conn

	loopCtx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	go c.readLoop(loopCtx)
	go c.keepAliveLoop(loopCtx)
	return c, nil
}

func (c *Client) current() *Conn {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn
}

// Send writes a node without waiting for a response.
func (c *Client) Send(ctx context.Context, n binary.Node) error {
	if c.closed.Load() {
		return ErrClosed
	}
	conn := c.current()
	if conn == nil {
		return ErrConnectionLost
	}
	return conn.WriteNode(ctx, n)
}

// Query sends an iq and waits for the response with the same id. Error
// responses are returned as *binary.ServerRejectedError.
func (c *Client) Query(ctx context.Context, n binary.Node) (binary.Node, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.queryTimeout)
		defer cancel()
	}
	id := n.Attr("id")
	if id == "" {
		id = c.prefix + strconv.FormatUint(c.counter.Add(1), 10)
		n.SetAttr("id", id)
	}
	ch := make(chan binary.Node, 1)
	c.mu.Lock()
	c.pending[id] = ch
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		delete(c.pending, id)
		c.mu.Unlock()
	}()

	if err := c.Send(ctx, n); err != nil {
		return binary.Node{}, err
	}
	select {
	case resp, ok := <-ch:
		if !ok {
			return binary.Node{}, ErrConnectionLost
		}
		if err := binary.AssertErrorFree(&resp); err != nil {
			return resp, err
		}
		return resp, nil
	case <-ctx.Done():
		return binary.Node{}, fmt.Errorf("socket: query %s: %w", id, ctx.Err())
	case <-c.done:
		return binary.Node{}, ErrClosed
	}
}

func (c *Client) readLoop(ctx context.Context) {
	for {
		conn := c.current()
		if conn == nil {
			if c.closed.Load() || c.redial(ctx) != nil {
				return
			}
			continue
		}
		n, err := conn.ReadNode(ctx)
		if err != nil {
			if c.closed.Load() {
				return
			}
			c.log.WithError(err).Warn("connection broken, redialing")
			if err := c.redial(ctx); err != nil {
				c.log.WithError(err).Error("redial failed")
				return
			}
			continue
		}
		if c.dispatchResponse(n) {
			continue
		}
		if c.handler != nil {
			c.handler(n)
		}
	}
}

func (c *Client) dispatchResponse(n binary.Node) bool {
	if n.Tag != "iq" {
		return false
	}
	if t := n.Attr("type"); t != "result" && t != "error" {
		return false
	}
	c.mu.Lock()
	ch, ok := c.pending[n.Attr("id")]
	c.mu.Unlock()
	if ok {
		ch <- n
	}
	return ok
}

func (c *Client) keepAliveLoop(ctx context.Context) {
	ticker := time.NewTicker(c.keepAliveInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			conn := c.current()
			if conn == nil {
				continue
			}
			pctx, cancel := context.WithTimeout(ctx, c.keepAliveTimeout)
			start := time.Now()
			err := conn.Ping(pctx)
			cancel()
			if err != nil {
				if c.closed.Load() {
					return
				}
				c.log.WithError(err).Warn("keep-alive failed")
				conn.CloseNow()
				continue
			}
			c.log.WithField("rtt", time.Since(start)).Debug("keep-alive")
		}
	}
}

// redial replaces the connection and fails queries pending on the old one.
func (c *Client) redial(ctx context.Context) error {
	c.mu.Lock()
	if c.conn != nil {
		c.conn.CloseNow()
		c.conn = nil
	}
	for id, ch := range c.pending {
		close(ch)
		delete(c.pending, id)
	}
	c.mu.Unlock()

	backoff := 100 * time.Millisecond
	for attempt := 0; attempt < 5; attempt++ {
		if c.closed.Load() {
			return ErrClosed
		}
		conn, err := Dial(ctx, c.url, c.headers)
		if err == nil {
			c.mu.Lock()
			c.conn = conn
			c.mu.Unlock()
			return nil
		}
		c.log.WithError(err).WithField("attempt", attempt+1).Debug("redial")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	return fmt.Errorf("socket: redial %s: giving up", c.url)
}

// Close stops the loops and closes the connection.
func (c *Client) Close() error {
	if c.closed.Swap(true) {
		return nil
	}
	c.cancel()
	close(c.done)
	c.mu.Lock()
	conn := c.conn
	c.conn = nil
	c.mu.Unlock()
	if conn != nil {
		return conn.Close()
	}
	return nil
}
