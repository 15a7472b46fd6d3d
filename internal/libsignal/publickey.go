package libsignal

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/curve25519"
)

// DjbType prefixes serialized Curve25519 public keys.
const DjbType = 0x05

// PublicKey is a Curve25519 public key.
type PublicKey [32]byte

// PrivateKey is a Curve25519 private key (clamped scalar).
type PrivateKey [32]byte

// KeyPair is a Curve25519 key pair.
type KeyPair struct {
	Private PrivateKey
	Public  PublicKey
}

// Serialize returns the 33-byte type-prefixed encoding.
func (k PublicKey) Serialize() []byte {
	out := make([]byte, 33)
	out[0] = DjbType
	copy(out[1:], k[:])
	return out
}

// DecodePublicKey accepts both the 33-byte prefixed and 32-byte raw encodings.
func DecodePublicKey(data []byte) (PublicKey, error) {
	var k PublicKey
	switch {
	case len(data) == 33 && data[0] == DjbType:
		copy(k[:], data[1:])
	case len(data) == 32:
		copy(k[:], data)
	default:
		return k, fmt.Errorf("libsignal: invalid public key length %d", len(data))
	}
	return k, nil
}

// GeneratePrivateKey returns a fresh clamped private key.
func GeneratePrivateKey() (PrivateKey, error) {
	var k PrivateKey
	if _, err := rand.Read(k[:]); err != nil {
		return k, fmt.Errorf("libsignal: generate key: %w", err)
	}
	k[0] &= 248
	k[31] &= 127
	k[31] |= 64
	return k, nil
}

// PublicKey derives the public key.
func (k PrivateKey) PublicKey() PublicKey {
	var pub PublicKey
	out, err := curve25519.X25519(k[:], curve25519.Basepoint)
	if err != nil {
		// Only possible for a low-order basepoint, which Basepoint is not.
		panic(err)
	}
	copy(pub[:], out)
	return pub
}

// Agree computes the X25519 shared secret with a remote public key.
func (k PrivateKey) Agree(pub PublicKey) ([]byte, error) {
	out, err := curve25519.X25519(k[:], pub[:])
	if err != nil {
		return nil, fmt.Errorf("libsignal: key agreement: %w", err)
	}
	return out, nil
}

// GenerateKeyPair returns a fresh Curve25519 key pair.
func GenerateKeyPair() (KeyPair, error) {
	priv, err := GeneratePrivateKey()
	if err != nil {
		return KeyPair{}, err
	}
	return KeyPair{Private: priv, Public: priv.PublicKey()}, nil
}
