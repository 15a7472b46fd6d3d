package signalrepo

import (
	"fmt"
	"strconv"

	"github.com/gwillem/whatsapp-go/internal/libsignal"
	"github.com/gwillem/whatsapp-go/internal/store"
)

// TrustPolicy decides whether a remote identity key may be used.
type TrustPolicy func(address libsignal.Address, key libsignal.IdentityKey, direction libsignal.Direction) bool

// AlwaysTrust accepts every identity, including changed ones.
func AlwaysTrust(libsignal.Address, libsignal.IdentityKey, libsignal.Direction) bool { return true }

// signalStore adapts the categorized KeyStore to the libsignal store interfaces.
type signalStore struct {
	keys  store.KeyStore
	repo  *Repository
	trust TrustPolicy
}

var (
	_ libsignal.SessionStore      = (*signalStore)(nil)
	_ libsignal.IdentityKeyStore  = (*signalStore)(nil)
	_ libsignal.PreKeyStore       = (*signalStore)(nil)
	_ libsignal.SignedPreKeyStore = (*signalStore)(nil)
	_ libsignal.SenderKeyStore    = (*signalStore)(nil)
)

func (s *signalStore) load(category store.Category, id string) ([]byte, bool, error) {
	m, err := s.keys.Get(category, id)
	if err != nil {
		return nil, false, fmt.Errorf("signalrepo: load %s %s: %w", category, id, err)
	}
	v, ok := m[id]
	return v, ok, nil
}

func (s *signalStore) LoadSession(address libsignal.Address) (*libsignal.SessionRecord, error) {
	data, ok, err := s.load(store.CategorySession, address.String())
	if err != nil || !ok {
		return nil, err
	}
	return libsignal.DeserializeSessionRecord(data)
}

func (s *signalStore) StoreSession(address libsignal.Address, record *libsignal.SessionRecord) error {
	data, err := record.Serialize()
	if err != nil {
		return err
	}
	return store.SetOne(s.keys, store.CategorySession, address.String(), data)
}

func (s *signalStore) GetIdentityKeyPair() (*libsignal.IdentityKeyPair, error) {
	return s.repo.creds().IdentityKey, nil
}

func (s *signalStore) GetLocalRegistrationID() (uint32, error) {
	return s.repo.creds().RegistrationID, nil
}

func (s *signalStore) SaveIdentityKey(address libsignal.Address, key libsignal.IdentityKey) (bool, error) {
	old, ok, err := s.load(store.CategoryIdentity, address.String())
	if err != nil {
		return false, err
	}
	serialized := key.Serialize()
	if ok && string(old) == string(serialized) {
		return false, nil
	}
	if err := store.SetOne(s.keys, store.CategoryIdentity, address.String(), serialized); err != nil {
		return false, err
	}
	return ok, nil
}

func (s *signalStore) GetIdentityKey(address libsignal.Address) (*libsignal.IdentityKey, error) {
	data, ok, err := s.load(store.CategoryIdentity, address.String())
	if err != nil || !ok {
		return nil, err
	}
	k, err := libsignal.DecodeIdentityKey(data)
	if err != nil {
		return nil, fmt.Errorf("signalrepo: identity %s: %w", address, err)
	}
	return &k, nil
}

func (s *signalStore) IsTrustedIdentity(address libsignal.Address, key libsignal.IdentityKey, direction libsignal.Direction) (bool, error) {
	return s.trust(address, key, direction), nil
}

func preKeyID(id uint32) string { return strconv.FormatUint(uint64(id), 10) }

func (s *signalStore) LoadPreKey(id uint32) (*libsignal.PreKeyRecord, error) {
	data, ok, err := s.load(store.CategoryPreKey, preKeyID(id))
	if err != nil || !ok {
		return nil, err
	}
	return libsignal.DeserializePreKeyRecord(data)
}

func (s *signalStore) StorePreKey(id uint32, record *libsignal.PreKeyRecord) error {
	data, err := record.Serialize()
	if err != nil {
		return err
	}
	return store.SetOne(s.keys, store.CategoryPreKey, preKeyID(id), data)
}

// RemovePreKey deletes a consumed one-time pre-key.
func (s *signalStore) RemovePreKey(id uint32) error {
	return store.SetOne(s.keys, store.CategoryPreKey, preKeyID(id), nil)
}

// LoadSignedPreKey serves the current signed pre-key from the credentials
// and rotated ones from the key store.
func (s *signalStore) LoadSignedPreKey(id uint32) (*libsignal.SignedPreKeyRecord, error) {
	if spk := s.repo.creds().SignedPreKey; spk != nil && spk.ID == id {
		return spk, nil
	}
	data, ok, err := s.load(store.CategorySignedPreKey, preKeyID(id))
	if err != nil || !ok {
		return nil, err
	}
	return libsignal.DeserializeSignedPreKeyRecord(data)
}

func (s *signalStore) StoreSignedPreKey(id uint32, record *libsignal.SignedPreKeyRecord) error {
	data, err := record.Serialize()
	if err != nil {
		return err
	}
	return store.SetOne(s.keys, store.CategorySignedPreKey, preKeyID(id), data)
}

func (s *signalStore) LoadSenderKey(name libsignal.SenderKeyName) (*libsignal.SenderKeyRecord, error) {
	data, ok, err := s.load(store.CategorySenderKey, name.String())
	if err != nil || !ok {
		return nil, err
	}
	return libsignal.DeserializeSenderKeyRecord(data)
}

func (s *signalStore) StoreSenderKey(name libsignal.SenderKeyName, record *libsignal.SenderKeyRecord) error {
	data, err := record.Serialize()
	if err != nil {
		return err
	}
	return store.SetOne(s.keys, store.CategorySenderKey, name.String(), data)
}
