package libsignal

import "fmt"

// NoSessionError is returned when encrypting for an address without any session record.
type NoSessionError struct {
	Address Address
}

func (e *NoSessionError) Error() string {
	return fmt.Sprintf("No sessions: %s", e.Address)
}

// NoOpenSessionError is returned when a session record exists but has no usable state.
type NoOpenSessionError struct {
	Address Address
}

func (e *NoOpenSessionError) Error() string {
	return fmt.Sprintf("No open session: %s", e.Address)
}

// NoSenderKeyError is returned when decrypting a group message before the
// sender's distribution message was processed.
type NoSenderKeyError struct {
	Name  SenderKeyName
	KeyID uint32
}

func (e *NoSenderKeyError) Error() string {
	if e.KeyID != 0 {
		return fmt.Sprintf("no sender key state for %s (key id %d)", e.Name, e.KeyID)
	}
	return fmt.Sprintf("no sender key for %s", e.Name)
}

// ProtocolDesyncError is returned when a message counter cannot be matched to
// the chain: a replay, or a jump beyond the skipped-key limit.
type ProtocolDesyncError struct {
	Address Address
	Counter uint32
	Reason  string
}

func (e *ProtocolDesyncError) Error() string {
	return fmt.Sprintf("protocol desync for %s at counter %d: %s", e.Address, e.Counter, e.Reason)
}

// InvalidMessageError is returned for malformed, unauthenticated or
// otherwise undecryptable messages.
type InvalidMessageError struct {
	Reason string
	Err    error
}

func (e *InvalidMessageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid message: %s: %v", e.Reason, e.Err)
	}
	return "invalid message: " + e.Reason
}

func (e *InvalidMessageError) Unwrap() error { return e.Err }

// InvalidKeyIDError is returned when a pre-key message references a local
// pre-key or signed pre-key that does not exist.
type InvalidKeyIDError struct {
	Kind string
	ID   uint32
}

func (e *InvalidKeyIDError) Error() string {
	return fmt.Sprintf("invalid %s id %d", e.Kind, e.ID)
}

// UntrustedIdentityError is returned when the trust policy rejects a remote identity.
type UntrustedIdentityError struct {
	Address Address
}

func (e *UntrustedIdentityError) Error() string {
	return fmt.Sprintf("untrusted identity for %s", e.Address)
}

func invalidMessage(reason string, err error) error {
	return &InvalidMessageError{Reason: reason, Err: err}
}
