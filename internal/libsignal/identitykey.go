package libsignal

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
)

// IdentityKey is the public half of a long-term identity: a Curve25519 key
// for agreement and an Ed25519 key for signatures.
type IdentityKey struct {
	DH      PublicKey
	Signing ed25519.PublicKey
}

// IdentityKeyPair is a long-term identity with both private halves.
type IdentityKeyPair struct {
	Public         IdentityKey
	DHPrivate      PrivateKey
	SigningPrivate ed25519.PrivateKey
}

const identityKeyLen = 1 + 32 + ed25519.PublicKeySize

// Serialize returns 0x05 || dh || signing.
func (k IdentityKey) Serialize() []byte {
	out := make([]byte, 0, identityKeyLen)
	out = append(out, DjbType)
	out = append(out, k.DH[:]...)
	return append(out, k.Signing...)
}

// Equal reports whether two identity keys are identical.
func (k IdentityKey) Equal(other IdentityKey) bool {
	return k.DH == other.DH && bytes.Equal(k.Signing, other.Signing)
}

// IsZero reports whether k is unset.
func (k IdentityKey) IsZero() bool {
	return k.DH == PublicKey{} && len(k.Signing) == 0
}

// Verify checks an Ed25519 signature made by this identity.
func (k IdentityKey) Verify(message, signature []byte) bool {
	return len(k.Signing) == ed25519.PublicKeySize && ed25519.Verify(k.Signing, message, signature)
}

// DecodeIdentityKey parses a serialized identity key.
func DecodeIdentityKey(data []byte) (IdentityKey, error) {
	if len(data) != identityKeyLen || data[0] != DjbType {
		return IdentityKey{}, fmt.Errorf("libsignal: invalid identity key length %d", len(data))
	}
	var k IdentityKey
	copy(k.DH[:], data[1:33])
	k.Signing = append(ed25519.PublicKey(nil), data[33:]...)
	return k, nil
}

// GenerateIdentityKeyPair creates a new identity.
func GenerateIdentityKeyPair() (*IdentityKeyPair, error) {
	dh, err := GeneratePrivateKey()
	if err != nil {
		return nil, err
	}
	signPub, signPriv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("libsignal: generate signing key: %w", err)
	}
	return &IdentityKeyPair{
		Public:         IdentityKey{DH: dh.PublicKey(), Signing: signPub},
		DHPrivate:      dh,
		SigningPrivate: signPriv,
	}, nil
}

// Sign signs message with the identity's Ed25519 key.
func (kp *IdentityKeyPair) Sign(message []byte) []byte {
	return ed25519.Sign(kp.SigningPrivate, message)
}

// Serialize returns dh private || ed25519 seed.
func (kp *IdentityKeyPair) Serialize() []byte {
	out := make([]byte, 0, 64)
	out = append(out, kp.DHPrivate[:]...)
	return append(out, kp.SigningPrivate.Seed()...)
}

// DeserializeIdentityKeyPair restores a pair from Serialize output.
func DeserializeIdentityKeyPair(data []byte) (*IdentityKeyPair, error) {
	if len(data) != 64 {
		return nil, fmt.Errorf("libsignal: invalid identity key pair length %d", len(data))
	}
	var dh PrivateKey
	copy(dh[:], data[:32])
	signPriv := ed25519.NewKeyFromSeed(data[32:])
	return &IdentityKeyPair{
		Public:         IdentityKey{DH: dh.PublicKey(), Signing: signPriv.Public().(ed25519.PublicKey)},
		DHPrivate:      dh,
		SigningPrivate: signPriv,
	}, nil
}
