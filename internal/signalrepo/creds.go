package signalrepo

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/gwillem/whatsapp-go/internal/jid"
	"github.com/gwillem/whatsapp-go/internal/libsignal"
	"github.com/gwillem/whatsapp-go/internal/store"
	"github.com/gwillem/whatsapp-go/internal/waproto"
)

// Creds is the decoded account material of this device.
type Creds struct {
	Me                      jid.JID
	RegistrationID          uint32
	IdentityKey             *libsignal.IdentityKeyPair
	SignedPreKey            *libsignal.SignedPreKeyRecord
	NextPreKeyID            uint32
	FirstUnuploadedPreKeyID uint32
	Account                 *waproto.ADVSignedDeviceIdentity
}

// NewCreds generates a fresh identity, registration ID and signed pre-key
// for me. The device identity is self-signed by the new identity key.
func NewCreds(me jid.JID) (*Creds, error) {
	identity, err := libsignal.GenerateIdentityKeyPair()
	if err != nil {
		return nil, fmt.Errorf("signalrepo: identity: %w", err)
	}
	spk, err := libsignal.GenerateSignedPreKey(identity, 1)
	if err != nil {
		return nil, fmt.Errorf("signalrepo: signed pre-key: %w", err)
	}
	var b [2]byte
	if _, err := rand.Read(b[:]); err != nil {
		return nil, err
	}
	regID := uint32(binary.BigEndian.Uint16(b[:]) & 0x3fff)
	if regID == 0 {
		regID = 1
	}

	details := append([]byte(me.String()), identity.Public.Serialize()...)
	account := &waproto.ADVSignedDeviceIdentity{
		Details:             details,
		AccountSignatureKey: identity.Public.Serialize(),
		AccountSignature:    identity.Sign(details),
		DeviceSignature:     identity.Sign(append([]byte{6, 1}, details...)),
	}
	return &Creds{
		Me:                      me,
		RegistrationID:          regID,
		IdentityKey:             identity,
		SignedPreKey:            spk,
		NextPreKeyID:            1,
		FirstUnuploadedPreKeyID: 1,
		Account:                 account,
	}, nil
}

// Encode converts the credentials to their persisted form.
func (c *Creds) Encode() (*store.Creds, error) {
	spk, err := c.SignedPreKey.Serialize()
	if err != nil {
		return nil, fmt.Errorf("signalrepo: creds signed pre-key: %w", err)
	}
	out := &store.Creds{
		Me:                      c.Me.String(),
		RegistrationID:          c.RegistrationID,
		IdentityKeyPair:         c.IdentityKey.Serialize(),
		SignedPreKey:            spk,
		NextPreKeyID:            c.NextPreKeyID,
		FirstUnuploadedPreKeyID: c.FirstUnuploadedPreKeyID,
	}
	if c.Account != nil {
		if out.Account, err = waproto.EncodeDeviceIdentity(c.Account, true); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// DecodeCreds restores credentials written by Encode.
func DecodeCreds(sc *store.Creds) (*Creds, error) {
	me, err := jid.Parse(sc.Me)
	if err != nil {
		return nil, fmt.Errorf("signalrepo: creds jid: %w", err)
	}
	identity, err := libsignal.DeserializeIdentityKeyPair(sc.IdentityKeyPair)
	if err != nil {
		return nil, fmt.Errorf("signalrepo: creds identity: %w", err)
	}
	spk, err := libsignal.DeserializeSignedPreKeyRecord(sc.SignedPreKey)
	if err != nil {
		return nil, fmt.Errorf("signalrepo: creds signed pre-key: %w", err)
	}
	c := &Creds{
		Me:                      me,
		RegistrationID:          sc.RegistrationID,
		IdentityKey:             identity,
		SignedPreKey:            spk,
		NextPreKeyID:            sc.NextPreKeyID,
		FirstUnuploadedPreKeyID: sc.FirstUnuploadedPreKeyID,
	}
	if len(sc.Account) > 0 {
		if c.Account, err = waproto.DecodeDeviceIdentity(sc.Account); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// LoadOrCreateCreds loads credentials from cs, creating and saving new ones
// for me when none exist.
func LoadOrCreateCreds(cs store.CredsStore, me jid.JID) (*Creds, bool, error) {
	sc, err := cs.LoadCreds()
	if err != nil {
		return nil, false, err
	}
	if sc != nil {
		c, err := DecodeCreds(sc)
		return c, false, err
	}
	c, err := NewCreds(me)
	if err != nil {
		return nil, false, err
	}
	encoded, err := c.Encode()
	if err != nil {
		return nil, false, err
	}
	if err := cs.SaveCreds(encoded); err != nil {
		return nil, false, err
	}
	return c, true, nil
}
