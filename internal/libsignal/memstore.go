package libsignal

import "sync"

// MemoryStore implements every store interface in memory. Remote identities
// are always trusted and the latest key seen wins.
type MemoryStore struct {
	mu             sync.Mutex
	identity       *IdentityKeyPair
	registrationID uint32
	sessions       map[Address][]byte
	identities     map[Address]IdentityKey
	preKeys        map[uint32]*PreKeyRecord
	signedPreKeys  map[uint32]*SignedPreKeyRecord
	senderKeys     map[SenderKeyName][]byte
}

// NewMemoryStore returns an empty store for the given local identity.
func NewMemoryStore(identity *IdentityKeyPair, registrationID uint32) *MemoryStore {
	return &MemoryStore{
		identity:       identity,
		registrationID: registrationID,
		sessions:       make(map[Address][]byte),
		identities:     make(map[Address]IdentityKey),
		preKeys:        make(map[uint32]*PreKeyRecord),
		signedPreKeys:  make(map[uint32]*SignedPreKeyRecord),
		senderKeys:     make(map[SenderKeyName][]byte),
	}
}

func (m *MemoryStore) LoadSession(address Address) (*SessionRecord, error) {
	m.mu.Lock()
	data, ok := m.sessions[address]
	m.mu.Unlock()
	if !ok {
		return nil, nil
	}
	return DeserializeSessionRecord(data)
}

func (m *MemoryStore) StoreSession(address Address, record *SessionRecord) error {
	data, err := record.Serialize()
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.sessions[address] = data
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) GetIdentityKeyPair() (*IdentityKeyPair, error) { return m.identity, nil }

func (m *MemoryStore) GetLocalRegistrationID() (uint32, error) { return m.registrationID, nil }

func (m *MemoryStore) SaveIdentityKey(address Address, key IdentityKey) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	old, ok := m.identities[address]
	m.identities[address] = key
	return ok && !old.Equal(key), nil
}

func (m *MemoryStore) GetIdentityKey(address Address) (*IdentityKey, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k, ok := m.identities[address]
	if !ok {
		return nil, nil
	}
	return &k, nil
}

func (m *MemoryStore) IsTrustedIdentity(Address, IdentityKey, Direction) (bool, error) {
	return true, nil
}

func (m *MemoryStore) LoadPreKey(id uint32) (*PreKeyRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.preKeys[id], nil
}

func (m *MemoryStore) StorePreKey(id uint32, record *PreKeyRecord) error {
	m.mu.Lock()
	m.preKeys[id] = record
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) RemovePreKey(id uint32) error {
	m.mu.Lock()
	delete(m.preKeys, id)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) LoadSignedPreKey(id uint32) (*SignedPreKeyRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.signedPreKeys[id], nil
}

func (m *MemoryStore) StoreSignedPreKey(id uint32, record *SignedPreKeyRecord) error {
	m.mu.Lock()
	m.signedPreKeys[id] = record
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) LoadSenderKey(name SenderKeyName) (*SenderKeyRecord, error) {
	m.mu.Lock()
	data, ok := m.senderKeys[name]
	m.mu.Unlock()
	if !ok {
		return nil, nil
	}
	return DeserializeSenderKeyRecord(data)
}

func (m *MemoryStore) StoreSenderKey(name SenderKeyName, record *SenderKeyRecord) error {
	data, err := record.Serialize()
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.senderKeys[name] = data
	m.mu.Unlock()
	return nil
}
