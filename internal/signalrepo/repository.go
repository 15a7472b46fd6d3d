// Package signalrepo is the session repository: pairwise and group
// encryption over the persisted key store.
package signalrepo

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gwillem/whatsapp-go/internal/jid"
	"github.com/gwillem/whatsapp-go/internal/keylock"
	"github.com/gwillem/whatsapp-go/internal/libsignal"
	"github.com/gwillem/whatsapp-go/internal/store"
)

// Message types as they appear in the enc type attribute.
const (
	TypePreKey    = "pkmsg"
	TypeMessage   = "msg"
	TypeSenderKey = "skmsg"
)

// EncryptResult is one pairwise ciphertext.
type EncryptResult struct {
	Type       string
	Ciphertext []byte
}

// GroupEncryptResult is a group ciphertext plus the distribution message
// describing the chain it was encrypted on.
type GroupEncryptResult struct {
	Ciphertext                   []byte
	SenderKeyDistributionMessage []byte
	// KeyID identifies the sender-key epoch.
	KeyID uint32
}

// Repository owns the session, pre-key and sender-key state of one account.
type Repository struct {
	keys     store.KeyStore
	credsDB  store.CredsStore
	signal   *signalStore
	sessions keylock.Map
	groups   keylock.Map
	log      logrus.FieldLogger

	mu sync.RWMutex
	c  *Creds
}

// Option configures a Repository.
type Option func(*Repository)

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(r *Repository) {
		if l != nil {
			r.log = l
		}
	}
}

// WithTrustPolicy replaces the default always-trust identity policy.
func WithTrustPolicy(p TrustPolicy) Option {
	return func(r *Repository) { r.signal.trust = p }
}

// WithCredsStore persists credential updates such as pre-key counters.
func WithCredsStore(cs store.CredsStore) Option {
	return func(r *Repository) { r.credsDB = cs }
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// New returns a repository for creds over keys.
func New(keys store.KeyStore, creds *Creds, opts ...Option) *Repository {
	r := &Repository{keys: keys, c: creds, log: discardLogger()}
	r.signal = &signalStore{keys: keys, repo: r, trust: AlwaysTrust}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Repository) creds() *Creds {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.c
}

// Me returns the JID of this device.
func (r *Repository) Me() jid.JID { return r.creds().Me }

// RegistrationID returns the local registration ID.
func (r *Repository) RegistrationID() uint32 { return r.creds().RegistrationID }

// Creds returns a copy of the current credentials.
func (r *Repository) Creds() Creds { return *r.creds() }

func address(j jid.JID) libsignal.Address {
	return libsignal.NewAddress(j.User, uint32(j.Device))
}

func senderKeyName(group, sender jid.JID) libsignal.SenderKeyName {
	return libsignal.SenderKeyName{GroupID: group.String(), Sender: address(sender)}
}

// EncryptMessage encrypts plaintext for one device. Errors are
// *libsignal.NoSessionError or *libsignal.NoOpenSessionError when no usable
// session exists.
func (r *Repository) EncryptMessage(to jid.JID, plaintext []byte) (*EncryptResult, error) {
	addr := address(to)
	unlock := r.sessions.Lock(addr.String())
	defer unlock()

	ct, err := libsignal.Encrypt(plaintext, addr, r.signal, r.signal, time.Now())
	if err != nil {
		return nil, err
	}
	typ := TypeMessage
	if ct.Type() == libsignal.PreKeyType {
		typ = TypePreKey
	}
	return &EncryptResult{Type: typ, Ciphertext: ct.Serialize()}, nil
}

// DecryptMessage decrypts a pkmsg or msg ciphertext from one device.
func (r *Repository) DecryptMessage(from jid.JID, typ string, ciphertext []byte) ([]byte, error) {
	addr := address(from)
	unlock := r.sessions.Lock(addr.String())
	defer unlock()

	switch typ {
	case TypePreKey:
		msg, err := libsignal.DeserializePreKeySignalMessage(ciphertext)
		if err != nil {
			return nil, err
		}
		return libsignal.DecryptPreKeyMessage(msg, addr, r.signal, r.signal, r.signal, r.signal)
	case TypeMessage:
		msg, err := libsignal.DeserializeSignalMessage(ciphertext)
		if err != nil {
			return nil, err
		}
		return libsignal.DecryptMessage(msg, addr, r.signal, r.signal)
	default:
		return nil, fmt.Errorf("signalrepo: unknown message type %q", typ)
	}
}

// EncryptGroupMessage encrypts plaintext once on our sender-key chain for
// group, creating the chain on first use. The distribution message is always
// returned; callers decide who needs it.
func (r *Repository) EncryptGroupMessage(group jid.JID, plaintext []byte) (*GroupEncryptResult, error) {
	name := senderKeyName(group, r.Me())
	unlock := r.groups.Lock(name.String())
	defer unlock()

	skdm, err := libsignal.CreateSenderKeyDistributionMessage(name, r.signal)
	if err != nil {
		return nil, err
	}
	msg, err := libsignal.GroupEncrypt(name, plaintext, r.signal)
	if err != nil {
		return nil, err
	}
	return &GroupEncryptResult{
		Ciphertext:                   msg.Serialize(),
		SenderKeyDistributionMessage: skdm.Serialize(),
		KeyID:                        skdm.KeyID,
	}, nil
}

// DecryptGroupMessage decrypts a skmsg from author. It returns
// *libsignal.NoSenderKeyError until author's distribution message was processed.
func (r *Repository) DecryptGroupMessage(group, author jid.JID, ciphertext []byte) ([]byte, error) {
	name := senderKeyName(group, author)
	unlock := r.groups.Lock(name.String())
	defer unlock()

	msg, err := libsignal.DeserializeSenderKeyMessage(ciphertext)
	if err != nil {
		return nil, err
	}
	return libsignal.GroupDecrypt(name, msg, r.signal)
}

// ProcessSenderKeyDistributionMessage installs author's chain for group.
// Redelivered distribution messages are ignored.
func (r *Repository) ProcessSenderKeyDistributionMessage(group, author jid.JID, payload []byte) error {
	name := senderKeyName(group, author)
	unlock := r.groups.Lock(name.String())
	defer unlock()

	msg, err := libsignal.DeserializeSenderKeyDistributionMessage(payload)
	if err != nil {
		return err
	}
	return libsignal.ProcessSenderKeyDistributionMessage(name, msg, r.signal)
}

// SenderKeyEpoch returns the key ID of our current chain for group, or
// false when no chain exists yet.
func (r *Repository) SenderKeyEpoch(group jid.JID) (uint32, bool, error) {
	name := senderKeyName(group, r.Me())
	rec, err := r.signal.LoadSenderKey(name)
	if err != nil {
		return 0, false, err
	}
	if s := rec.Current(); s != nil {
		return s.KeyID, true, nil
	}
	return 0, false, nil
}

// KeyRef is a published public key with its ID.
type KeyRef struct {
	ID        uint32
	Public    []byte
	Signature []byte
}

// SessionBundle is the published key material of one device.
type SessionBundle struct {
	RegistrationID uint32
	IdentityKey    []byte
	SignedPreKey   KeyRef
	PreKey         *KeyRef
}

// InjectSession bootstraps a sending session for device to from its bundle.
func (r *Repository) InjectSession(to jid.JID, b *SessionBundle) error {
	identity, err := libsignal.DecodeIdentityKey(b.IdentityKey)
	if err != nil {
		return fmt.Errorf("signalrepo: bundle identity: %w", err)
	}
	spk, err := libsignal.DecodePublicKey(b.SignedPreKey.Public)
	if err != nil {
		return fmt.Errorf("signalrepo: bundle signed pre-key: %w", err)
	}
	bundle := &libsignal.PreKeyBundle{
		RegistrationID:        b.RegistrationID,
		DeviceID:              uint32(to.Device),
		SignedPreKeyID:        b.SignedPreKey.ID,
		SignedPreKey:          spk,
		SignedPreKeySignature: b.SignedPreKey.Signature,
		IdentityKey:           identity,
	}
	if b.PreKey != nil {
		pk, err := libsignal.DecodePublicKey(b.PreKey.Public)
		if err != nil {
			return fmt.Errorf("signalrepo: bundle pre-key: %w", err)
		}
		bundle.PreKeyID = b.PreKey.ID
		bundle.PreKey = &pk
	}

	addr := address(to)
	unlock := r.sessions.Lock(addr.String())
	defer unlock()
	if err := libsignal.ProcessPreKeyBundle(bundle, addr, r.signal, r.signal, time.Now()); err != nil {
		return fmt.Errorf("signalrepo: inject session %s: %w", to, err)
	}
	r.log.WithField("jid", to.String()).Debug("injected session")
	return nil
}

// HasSessions reports, per device, whether any session record is stored.
func (r *Repository) HasSessions(devices []jid.JID) (map[jid.JID]bool, error) {
	ids := make([]string, len(devices))
	for i, d := range devices {
		ids[i] = d.SignalAddress()
	}
	found, err := r.keys.Get(store.CategorySession, ids...)
	if err != nil {
		return nil, fmt.Errorf("signalrepo: load sessions: %w", err)
	}
	out := make(map[jid.JID]bool, len(devices))
	for i, d := range devices {
		_, out[d] = found[ids[i]]
	}
	return out, nil
}

// SenderKeyDistribution returns the distribution message of our current
// chain for group without advancing it, creating the chain on first use.
func (r *Repository) SenderKeyDistribution(group jid.JID) ([]byte, uint32, error) {
	name := senderKeyName(group, r.Me())
	unlock := r.groups.Lock(name.String())
	defer unlock()

	skdm, err := libsignal.CreateSenderKeyDistributionMessage(name, r.signal)
	if err != nil {
		return nil, 0, err
	}
	return skdm.Serialize(), skdm.KeyID, nil
}
