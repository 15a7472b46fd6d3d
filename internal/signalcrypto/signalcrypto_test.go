package signalcrypto

import (
	"bytes"
	"crypto/rand"
	"testing"
)

func TestAESCBCRoundTrip(t *testing.T) {
	key := make([]byte, 32)
	iv := make([]byte, 16)
	rand.Read(key)
	rand.Read(iv)

	for _, size := range []int{0, 1, 15, 16, 17, 1000} {
		pt := bytes.Repeat([]byte{0xAB}, size)
		ct, err := EncryptAESCBC(key, iv, pt)
		if err != nil {
			t.Fatalf("EncryptAESCBC(%d): %v", size, err)
		}
		if len(ct)%16 != 0 || len(ct) <= size {
			t.Fatalf("ciphertext length %d for %d bytes", len(ct), size)
		}
		got, err := DecryptAESCBC(key, iv, ct)
		if err != nil {
			t.Fatalf("DecryptAESCBC(%d): %v", size, err)
		}
		if !bytes.Equal(got, pt) {
			t.Fatalf("round trip mismatch for %d bytes", size)
		}
	}
}

func TestDecryptAESCBCBadIV(t *testing.T) {
	key := bytes.Repeat([]byte{1}, 32)
	iv := bytes.Repeat([]byte{2}, 16)
	ct, err := EncryptAESCBC(key, iv, []byte("hello"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := DecryptAESCBC(key, iv[:8], ct); err == nil {
		t.Fatal("expected IV length error")
	}
}

func TestPKCS7Unpad(t *testing.T) {
	if _, err := PKCS7Unpad([]byte{1, 2, 3, 0}, 4); err == nil {
		t.Fatal("expected error for zero pad byte")
	}
	if _, err := PKCS7Unpad([]byte{1, 2, 2, 3}, 4); err == nil {
		t.Fatal("expected error for inconsistent padding")
	}
	got, err := PKCS7Unpad([]byte{1, 2, 2, 2}, 4)
	if err != nil || !bytes.Equal(got, []byte{1, 2}) {
		t.Fatalf("PKCS7Unpad = %v, %v", got, err)
	}
}

func TestDeriveSecretsDeterministic(t *testing.T) {
	a, err := DeriveSecrets([]byte("ikm"), nil, []byte("info"), 80)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := DeriveSecrets([]byte("ikm"), make([]byte, 32), []byte("info"), 80)
	if !bytes.Equal(a, b) {
		t.Fatal("nil salt should equal zero salt")
	}
	c, _ := DeriveSecrets([]byte("ikm"), nil, []byte("other"), 80)
	if bytes.Equal(a, c) {
		t.Fatal("different info produced same output")
	}
}

func TestVerifyMACTruncated(t *testing.T) {
	key := []byte("key")
	mac := ComputeMAC(key, []byte("a"), []byte("b"))
	if err := VerifyMAC(key, mac[:8], []byte("ab")); err != nil {
		t.Fatalf("VerifyMAC: %v", err)
	}
	mac[0] ^= 1
	if err := VerifyMAC(key, mac[:8], []byte("ab")); err == nil {
		t.Fatal("expected MAC failure")
	}
}
