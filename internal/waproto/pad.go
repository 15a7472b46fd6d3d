package waproto

import (
	"crypto/rand"
	"fmt"
)

// Pad appends 1 to 15 bytes, each holding the pad length.
func Pad(msg []byte) []byte {
	var r [1]byte
	_, _ = rand.Read(r[:])
	n := r[0] & 0x0f
	if n == 0 {
		n = 0x0f
	}
	out := make([]byte, len(msg), len(msg)+int(n))
	copy(out, msg)
	for i := byte(0); i < n; i++ {
		out = append(out, n)
	}
	return out
}

// Unpad strips the padding added by Pad.
func Unpad(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: empty padded message", ErrMalformed)
	}
	n := int(b[len(b)-1])
	if n == 0 {
		return nil, fmt.Errorf("%w: zero pad length", ErrMalformed)
	}
	if n > len(b) {
		return nil, fmt.Errorf("%w: pad length %d exceeds message length %d", ErrMalformed, n, len(b))
	}
	return b[:len(b)-n], nil
}
