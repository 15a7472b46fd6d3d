// Package whatsapp provides a high-level client for multi-device end-to-end
// encrypted messaging: device discovery, session bootstrap and per-device
// fan-out over a node relay.
package whatsapp

import (
	"context"
	"fmt"
	"io"
	"iter"
	"strconv"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/gwillem/whatsapp-go/internal/binary"
	"github.com/gwillem/whatsapp-go/internal/fanout"
	"github.com/gwillem/whatsapp-go/internal/groups"
	"github.com/gwillem/whatsapp-go/internal/jid"
	"github.com/gwillem/whatsapp-go/internal/senderkeys"
	"github.com/gwillem/whatsapp-go/internal/signalrepo"
	"github.com/gwillem/whatsapp-go/internal/socket"
	"github.com/gwillem/whatsapp-go/internal/store"
	"github.com/gwillem/whatsapp-go/internal/usync"
	"github.com/gwillem/whatsapp-go/internal/waproto"
)

// JID identifies a user, a group or one device of a user.
type JID = jid.JID

// Group is group metadata as stored locally.
type Group = store.Group

// SendOptions tunes one send.
type SendOptions = fanout.SendOptions

// Transport carries nodes to the server. Query waits for the iq response.
type Transport = fanout.Transport

// Store persists keys, credentials and group metadata.
type Store interface {
	store.KeyStore
	store.CredsStore
	store.GroupStore
}

const (
	defaultServerURL   = "ws://127.0.0.1:8080/ws"
	defaultPreKeyBatch = 30
	inboundQueueSize   = 1024
	retryCounterSize   = 1024
)

// Message is a decrypted inbound message.
type Message struct {
	ID string
	// Chat is the peer or group the message belongs to. For messages our
	// other devices sent it is the peer they sent to.
	Chat      JID
	Sender    JID
	FromMe    bool
	Text      string
	Timestamp time.Time
	Raw       *waproto.Message
}

// SendResult describes a transmitted stanza. Envelopes is 0 when no device
// could be reached; nothing was sent then.
type SendResult struct {
	ID        string
	Envelopes int
}

// Client is the main entry point. Create it with NewClient, then Init a new
// device or Load an existing one.
type Client struct {
	dbPath             string
	serverURL          string
	log                logrus.FieldLogger
	deviceCacheTTL     time.Duration
	encryptConcurrency int
	queryTimeout       time.Duration
	registerer         prometheus.Registerer
	preKeyBatch        int

	keys Store
	db   *store.Store
	tr   Transport
	conn *socket.Client

	repo     *signalrepo.Repository
	resolver *usync.Resolver
	groups   *groups.Provider
	enc      *fanout.Encryptor

	inbound chan binary.Node
	retries *lru.Cache[string, int]
}

// Option configures a Client.
type Option func(*Client)

// WithDBPath sets the SQLite database path.
// If not set, defaults to $XDG_DATA_HOME/whatsapp-go/default.db.
func WithDBPath(path string) Option {
	return func(c *Client) { c.dbPath = path }
}

// WithLogger sets the logger. If not set, logging is disabled.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Client) { c.log = l }
}

// WithServerURL overrides the relay websocket URL.
func WithServerURL(url string) Option {
	return func(c *Client) { c.serverURL = url }
}

// WithDeviceCacheTTL sets how long resolved device lists are reused.
func WithDeviceCacheTTL(d time.Duration) Option {
	return func(c *Client) { c.deviceCacheTTL = d }
}

// WithEncryptConcurrency bounds concurrent per-device encryptions.
func WithEncryptConcurrency(n int) Option {
	return func(c *Client) { c.encryptConcurrency = n }
}

// WithQueryTimeout bounds server queries whose context has no deadline.
func WithQueryTimeout(d time.Duration) Option {
	return func(c *Client) { c.queryTimeout = d }
}

// WithMetricsRegisterer registers the client's counters.
func WithMetricsRegisterer(r prometheus.Registerer) Option {
	return func(c *Client) { c.registerer = r }
}

// WithPreKeyBatch sets how many pre-keys Init uploads. n <= 0 keeps the default.
func WithPreKeyBatch(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.preKeyBatch = n
		}
	}
}

// WithKeyStore replaces the SQLite database.
func WithKeyStore(s Store) Option {
	return func(c *Client) { c.keys = s }
}

// WithTransport replaces the websocket connection. Inbound nodes are then
// passed in by the caller through HandleMessage and HandleReceipt.
func WithTransport(t Transport) Option {
	return func(c *Client) { c.tr = t }
}

// NewClient creates a client. It does not touch storage or the network.
func NewClient(opts ...Option) *Client {
	c := &Client{
		serverURL:   defaultServerURL,
		preKeyBatch: defaultPreKeyBatch,
		inbound:     make(chan binary.Node, inboundQueueSize),
	}
	for _, o := range opts {
		o(c)
	}
	if c.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		c.log = l
	}
	c.retries, _ = lru.New[string, int](retryCounterSize)
	return c
}

// Init creates credentials for device me, connects and uploads pre-keys.
// Calling it again for the same device loads the existing credentials.
func (c *Client) Init(ctx context.Context, me JID) error {
	if !me.IsUser() {
		return fmt.Errorf("client: %s is not a user device", me)
	}
	if err := c.openStore(); err != nil {
		return err
	}
	creds, created, err := signalrepo.LoadOrCreateCreds(c.keys, me)
	if err != nil {
		return fmt.Errorf("client: credentials: %w", err)
	}
	if creds.Me != me {
		return fmt.Errorf("client: database belongs to %s, not %s", creds.Me, me)
	}
	if err := c.setup(ctx, creds); err != nil {
		return err
	}
	if created {
		c.log.WithField("jid", me.String()).Info("created credentials")
		return c.UploadPreKeys(ctx, c.preKeyBatch)
	}
	return nil
}

// Load opens the stored credentials and connects.
func (c *Client) Load(ctx context.Context) error {
	if err := c.openStore(); err != nil {
		return err
	}
	sc, err := c.keys.LoadCreds()
	if err != nil {
		return fmt.Errorf("client: load credentials: %w", err)
	}
	if sc == nil {
		return fmt.Errorf("client: no account found (run 'wa init' first)")
	}
	creds, err := signalrepo.DecodeCreds(sc)
	if err != nil {
		return fmt.Errorf("client: decode credentials: %w", err)
	}
	return c.setup(ctx, creds)
}

func (c *Client) openStore() error {
	if c.keys != nil {
		return nil
	}
	s, err := store.Open(c.dbPath)
	if err != nil {
		return fmt.Errorf("client: open store: %w", err)
	}
	c.db, c.keys = s, s
	return nil
}

func (c *Client) setup(ctx context.Context, creds *signalrepo.Creds) error {
	me := creds.Me
	c.log = c.log.WithField("me", me.String())
	if c.tr == nil {
		conn, err := socket.Connect(ctx, socket.DeviceURL(c.serverURL, me),
			socket.WithHandler(c.enqueue),
			socket.WithLogger(c.log),
			socket.WithQueryTimeout(c.queryTimeout),
		)
		if err != nil {
			return fmt.Errorf("client: connect: %w", err)
		}
		c.conn, c.tr = conn, conn
	}
	c.repo = signalrepo.New(c.keys, creds, signalrepo.WithLogger(c.log), signalrepo.WithCredsStore(c.keys))
	c.resolver = usync.NewResolver(c.tr, me, usync.Config{
		CacheTTL:     c.deviceCacheTTL,
		QueryTimeout: c.queryTimeout,
		Logger:       c.log,
		Registerer:   c.registerer,
	})
	c.groups = groups.New(c.tr, c.keys, groups.DefaultTTL, c.log)
	c.enc = fanout.New(c.repo, c.resolver, c.groups, senderkeys.New(c.keys, c.log), c.tr, fanout.Config{
		EncryptConcurrency: c.encryptConcurrency,
		Logger:             c.log,
		Registerer:         c.registerer,
	})
	return nil
}

func (c *Client) enqueue(n binary.Node) {
	select {
	case c.inbound <- n:
	default:
		c.log.WithField("tag", n.Tag).Warn("inbound queue full, dropping node")
	}
}

func (c *Client) ready() error {
	if c.enc == nil {
		return fmt.Errorf("client: not loaded (call Init or Load first)")
	}
	return nil
}

// Me returns this device's JID.
func (c *Client) Me() JID {
	if c.repo == nil {
		return JID{}
	}
	return c.repo.Me()
}

// UploadPreKeys generates and publishes n one-time pre-keys with the signed
// pre-key.
func (c *Client) UploadPreKeys(ctx context.Context, n int) error {
	if err := c.ready(); err != nil {
		return err
	}
	node, err := c.repo.PreKeyUploadNode(n)
	if err != nil {
		return fmt.Errorf("client: pre-keys: %w", err)
	}
	if _, err := c.tr.Query(ctx, node); err != nil {
		return fmt.Errorf("client: upload pre-keys: %w", err)
	}
	if err := c.repo.MarkPreKeysUploaded(node); err != nil {
		return fmt.Errorf("client: pre-keys: %w", err)
	}
	c.log.WithField("count", n).Info("uploaded pre-keys")
	return nil
}

// SendMessage encrypts an encoded message for every device of to, a user or
// a group, and transmits it.
func (c *Client) SendMessage(ctx context.Context, to JID, message []byte, opts SendOptions) (SendResult, error) {
	if err := c.ready(); err != nil {
		return SendResult{}, err
	}
	st, err := c.enc.Send(ctx, to, message, opts)
	if err != nil {
		return SendResult{}, err
	}
	if st.IsEmpty() {
		c.log.WithFields(logrus.Fields{"jid": to.String(), "msg_id": st.ID}).Warn("no device reachable, nothing sent")
	}
	return SendResult{ID: st.ID, Envelopes: st.Envelopes}, nil
}

// SendText sends a text message to a JID given as a string.
func (c *Client) SendText(ctx context.Context, to, text string) (SendResult, error) {
	dest, err := jid.Parse(to)
	if err != nil {
		return SendResult{}, fmt.Errorf("client: recipient: %w", err)
	}
	return c.SendMessage(ctx, dest, waproto.Text(text), SendOptions{})
}

// Retry resends message id of chat to one device only. count is the attempt
// the device asked for.
func (c *Client) Retry(ctx context.Context, chat JID, message []byte, id string, device JID, count int) (SendResult, error) {
	return c.SendMessage(ctx, chat, message, SendOptions{
		ID:    id,
		Retry: &fanout.RetryTarget{Device: device, Count: count},
	})
}

// HandleMessage decrypts an inbound message stanza and acknowledges it.
// When decryption fails the sender is asked to resend, up to
// MaxRetryCount times per message, and the error is returned.
func (c *Client) HandleMessage(ctx context.Context, node binary.Node) ([]Message, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	id := node.Attr("id")
	decrypted, decErr := c.enc.Decrypt(node)
	out := convert(node, decrypted)
	if decErr != nil {
		c.log.WithError(decErr).WithField("msg_id", id).Error("decrypt failed")
		count, _ := c.retries.Get(id)
		count++
		c.retries.Add(id, count)
		if count <= fanout.MaxRetryCount {
			if err := c.enc.SendRetryReceipt(ctx, node, count); err != nil {
				c.log.WithError(err).Warn("retry receipt")
			}
		}
		return out, decErr
	}
	c.retries.Remove(id)
	if err := c.enc.SendReceiptsFor(ctx, decrypted); err != nil {
		return out, err
	}
	return out, nil
}

// ReadMessages marks msgs as read. Depending on the account's read receipts
// privacy setting the senders get read receipts or only our own devices are
// told. Messages we sent are skipped.
func (c *Client) ReadMessages(ctx context.Context, msgs []Message) error {
	if err := c.ready(); err != nil {
		return err
	}
	keys := make([]fanout.MessageKey, len(msgs))
	for i, m := range msgs {
		keys[i] = fanout.MessageKey{Chat: m.Chat, ID: m.ID, FromMe: m.FromMe}
		if m.Chat.IsGroup() {
			keys[i].Participant = m.Sender
		}
	}
	return c.enc.ReadMessages(ctx, keys)
}

// PrivacyTokens issues trusted-contact privacy tokens for users.
func (c *Client) PrivacyTokens(ctx context.Context, users []JID) error {
	if err := c.ready(); err != nil {
		return err
	}
	_, err := c.enc.SendPrivacyTokens(ctx, users)
	return err
}

// HandleReceipt answers retry receipts by resending to the device that
// asked. Other receipts are only logged.
func (c *Client) HandleReceipt(ctx context.Context, node binary.Node) error {
	if err := c.ready(); err != nil {
		return err
	}
	if node.Attr("type") != fanout.ReceiptRetry {
		c.log.WithFields(logrus.Fields{"msg_id": node.Attr("id"), "type": node.Attr("type"), "jid": node.Attr("from")}).Debug("receipt")
		return nil
	}
	_, err := c.enc.HandleRetryReceipt(ctx, node)
	return err
}

// Receive yields inbound messages from the websocket until ctx is done.
// Decrypt failures are yielded as errors; the loop continues.
func (c *Client) Receive(ctx context.Context) iter.Seq2[Message, error] {
	return func(yield func(Message, error) bool) {
		if err := c.ready(); err != nil {
			yield(Message{}, err)
			return
		}
		for {
			select {
			case <-ctx.Done():
				yield(Message{}, ctx.Err())
				return
			case n := <-c.inbound:
				var (
					msgs []Message
					err  error
				)
				switch n.Tag {
				case "message":
					msgs, err = c.HandleMessage(ctx, n)
				case "receipt":
					err = c.HandleReceipt(ctx, n)
				default:
					continue
				}
				for _, m := range msgs {
					if !yield(m, nil) {
						return
					}
				}
				if err != nil && !yield(Message{}, err) {
					return
				}
			}
		}
	}
}

// convert keeps the messages carrying content.
func convert(node binary.Node, decrypted []*fanout.Decrypted) []Message {
	var ts time.Time
	if t, err := strconv.ParseInt(node.Attr("t"), 10, 64); err == nil {
		ts = time.Unix(t, 0)
	}
	var out []Message
	for _, d := range decrypted {
		if d.Message.Conversation == nil && d.Message.GetSenderKeyDistributionMessage() != nil {
			continue
		}
		out = append(out, Message{
			ID:        d.ID,
			Chat:      d.Chat,
			Sender:    d.Sender,
			FromMe:    d.FromMe,
			Text:      d.Message.GetConversation(),
			Timestamp: ts,
			Raw:       d.Message,
		})
	}
	return out
}

// Devices returns the devices of user, served from cache when fresh.
func (c *Client) Devices(ctx context.Context, user JID) ([]JID, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	return c.resolver.Devices(ctx, []jid.JID{user})
}

// GroupMetadata returns the metadata of group. force bypasses the cache.
func (c *Client) GroupMetadata(ctx context.Context, group JID, force bool) (*Group, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	return c.groups.Metadata(ctx, group, force)
}

// Groups lists the groups whose metadata was fetched before.
func (c *Client) Groups() ([]*Group, error) {
	if err := c.openStore(); err != nil {
		return nil, err
	}
	return c.keys.ListGroups()
}

// Close closes the connection and the database.
func (c *Client) Close() error {
	var err error
	if c.conn != nil {
		err = c.conn.Close()
		c.conn = nil
	}
	if c.db != nil {
		if cerr := c.db.Close(); err == nil {
			err = cerr
		}
		c.db = nil
	}
	return err
}
