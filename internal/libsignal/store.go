package libsignal

// Direction tells the trust policy whether a key is used to send or receive.
type Direction uint8

const (
	DirectionSending Direction = iota + 1
	DirectionReceiving
)

// SessionStore stores session records keyed by protocol address.
// LoadSession returns nil, nil when no record exists.
type SessionStore interface {
	LoadSession(address Address) (*SessionRecord, error)
	StoreSession(address Address, record *SessionRecord) error
}

// IdentityKeyStore manages the local identity key and remote identity trust.
type IdentityKeyStore interface {
	GetIdentityKeyPair() (*IdentityKeyPair, error)
	GetLocalRegistrationID() (uint32, error)
	SaveIdentityKey(address Address, key IdentityKey) (bool, error)
	GetIdentityKey(address Address) (*IdentityKey, error)
	IsTrustedIdentity(address Address, key IdentityKey, direction Direction) (bool, error)
}

// PreKeyStore stores one-time pre-key records.
// LoadPreKey returns nil, nil when the key does not exist.
type PreKeyStore interface {
	LoadPreKey(id uint32) (*PreKeyRecord, error)
	StorePreKey(id uint32, record *PreKeyRecord) error
	RemovePreKey(id uint32) error
}

// SignedPreKeyStore stores signed pre-key records.
// LoadSignedPreKey returns nil, nil when the key does not exist.
type SignedPreKeyStore interface {
	LoadSignedPreKey(id uint32) (*SignedPreKeyRecord, error)
	StoreSignedPreKey(id uint32, record *SignedPreKeyRecord) error
}

// SenderKeyStore stores sender-key records by sender key name.
// LoadSenderKey returns nil, nil when no record exists.
type SenderKeyStore interface {
	LoadSenderKey(name SenderKeyName) (*SenderKeyRecord, error)
	StoreSenderKey(name SenderKeyName, record *SenderKeyRecord) error
}
