package signalcrypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// EncryptAESCBC encrypts plaintext with AES-256-CBC and PKCS#7 padding under
// a caller-derived IV. The IV is not prepended.
func EncryptAESCBC(key, iv, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("aescbc: %w", err)
	}
	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("aescbc: invalid IV length %d", len(iv))
	}

	padded := PKCS7Pad(plaintext, aes.BlockSize)
	ct := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ct, padded)
	return ct, nil
}

// DecryptAESCBC decrypts AES-256-CBC ciphertext with a given IV, removing PKCS#7 padding.
func DecryptAESCBC(key, iv, ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("aescbc: %w", err)
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("aescbc: ciphertext length %d not a multiple of block size", len(ciphertext))
	}
	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("aescbc: invalid IV length %d", len(iv))
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	return PKCS7Unpad(plaintext, aes.BlockSize)
}
