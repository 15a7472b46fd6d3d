package signalcrypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// DeriveSecrets expands input key material into n bytes with HKDF-SHA256.
// A nil salt is treated as 32 zero bytes.
func DeriveSecrets(ikm, salt, info []byte, n int) ([]byte, error) {
	if salt == nil {
		salt = make([]byte, sha256.Size)
	}
	out := make([]byte, n)
	if _, err := io.ReadFull(hkdf.New(sha256.New, ikm, salt, info), out); err != nil {
		return nil, fmt.Errorf("hkdf: %w", err)
	}
	return out, nil
}

// ComputeMAC returns HMAC-SHA256(key, parts...).
func ComputeMAC(key []byte, parts ...[]byte) []byte {
	mac := hmac.New(sha256.New, key)
	for _, p := range parts {
		mac.Write(p)
	}
	return mac.Sum(nil)
}

// VerifyMAC checks in constant time that expected is a prefix of HMAC-SHA256(key, parts...).
func VerifyMAC(key, expected []byte, parts ...[]byte) error {
	computed := ComputeMAC(key, parts...)
	if len(expected) == 0 || len(expected) > len(computed) || !hmac.Equal(computed[:len(expected)], expected) {
		return fmt.Errorf("MAC verification failed")
	}
	return nil
}
