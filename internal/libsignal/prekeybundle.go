package libsignal

// PreKeyBundle is the published key material of one remote device.
// PreKey is nil when the server had no one-time pre-key left.
type PreKeyBundle struct {
	RegistrationID        uint32
	DeviceID              uint32
	PreKeyID              uint32
	PreKey                *PublicKey
	SignedPreKeyID        uint32
	SignedPreKey          PublicKey
	SignedPreKeySignature []byte
	IdentityKey           IdentityKey
}
