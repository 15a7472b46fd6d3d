// Package fanout turns one outbound message into the per-device encrypted
// stanza the server relays, and decrypts inbound message stanzas.
//
// Ratchets are not transactional: when a send is cancelled or aborted after
// some devices were encrypted for, those sessions have advanced and the
// devices may already hold the message.
package fanout

import (
	"context"
	"io"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/gwillem/whatsapp-go/internal/binary"
	"github.com/gwillem/whatsapp-go/internal/jid"
	"github.com/gwillem/whatsapp-go/internal/senderkeys"
	"github.com/gwillem/whatsapp-go/internal/signalrepo"
)

const (
	DefaultEncryptConcurrency   = 100
	DefaultKeyBundleBatchSize   = 100
	DefaultSentMessageCacheSize = 512
	// MaxRetryCount is the highest retry count a resend is made for.
	MaxRetryCount = 5
)

// Transport carries nodes to the server.
type Transport interface {
	Query(ctx context.Context, node binary.Node) (binary.Node, error)
	Send(ctx context.Context, node binary.Node) error
}

// DeviceResolver maps users to their devices.
type DeviceResolver interface {
	Resolve(ctx context.Context, users []jid.JID) (map[jid.JID][]jid.JID, error)
	Devices(ctx context.Context, users []jid.JID) ([]jid.JID, error)
	Invalidate(user jid.JID)
}

// GroupProvider supplies group member lists.
type GroupProvider interface {
	Participants(ctx context.Context, group jid.JID, force bool) ([]jid.JID, error)
}

// Config tunes an Encryptor. Zero values select the defaults.
type Config struct {
	EncryptConcurrency   int
	KeyBundleBatchSize   int
	SentMessageCacheSize int
	Logger               logrus.FieldLogger
	Registerer           prometheus.Registerer
}

// Encryptor is the fan-out engine of one authenticated connection.
type Encryptor struct {
	repo       *signalrepo.Repository
	devices    DeviceResolver
	groups     GroupProvider
	senderKeys *senderkeys.Tracker
	tr         Transport
	cfg        Config
	log        logrus.FieldLogger
	metrics    *metrics
	sent       *lru.Cache[string, sentMessage]

	privacyMu sync.Mutex
	privacy   PrivacySettings
}

// sentMessage is kept so a retry receipt can be answered with a resend.
type sentMessage struct {
	to      jid.JID
	message []byte
}

// New wires an Encryptor.
func New(repo *signalrepo.Repository, devices DeviceResolver, groups GroupProvider,
	senderKeys *senderkeys.Tracker, tr Transport, cfg Config) *Encryptor {
	if cfg.EncryptConcurrency <= 0 {
		cfg.EncryptConcurrency = DefaultEncryptConcurrency
	}
	if cfg.KeyBundleBatchSize <= 0 {
		cfg.KeyBundleBatchSize = DefaultKeyBundleBatchSize
	}
	if cfg.SentMessageCacheSize <= 0 {
		cfg.SentMessageCacheSize = DefaultSentMessageCacheSize
	}
	log := cfg.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	sent, _ := lru.New[string, sentMessage](cfg.SentMessageCacheSize)
	return &Encryptor{
		repo:       repo,
		devices:    devices,
		groups:     groups,
		senderKeys: senderKeys,
		tr:         tr,
		cfg:        cfg,
		log:        log.WithField("component", "fanout"),
		metrics:    newMetrics(cfg.Registerer, log),
		sent:       sent,
	}
}
