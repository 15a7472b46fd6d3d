package libsignal

import (
	"bytes"
	"fmt"

	pb "google.golang.org/protobuf/proto"

	"github.com/gwillem/whatsapp-go/internal/signalpb"
)

// SenderChain is the local sending ratchet.
type SenderChain struct {
	RatchetKey KeyPair
	ChainKey   ChainKey
}

// ReceiverChain is one remote ratchet key with its chain and stored
// out-of-order message keys.
type ReceiverChain struct {
	RatchetKey  PublicKey
	ChainKey    ChainKey
	MessageKeys []MessageKeys
}

// PendingPreKey is carried in every outgoing message until the peer answers,
// so the peer can complete key agreement.
type PendingPreKey struct {
	HasPreKeyID    bool
	PreKeyID       uint32
	SignedPreKeyID uint32
	BaseKey        PublicKey
}

// SessionState is one double ratchet session.
type SessionState struct {
	Version              uint32
	LocalIdentity        IdentityKey
	RemoteIdentity       IdentityKey
	RootKey              []byte
	PreviousCounter      uint32
	SenderChain          SenderChain
	ReceiverChains       []ReceiverChain
	Pending              *PendingPreKey
	RemoteRegistrationID uint32
	LocalRegistrationID  uint32
	AliceBaseKey         []byte
}

// SessionRecord holds the current session state and archived previous states.
type SessionRecord struct {
	Current  *SessionState
	Previous []*SessionState
}

func (s *SessionState) receiverChain(key PublicKey) (int, *ReceiverChain) {
	for i := range s.ReceiverChains {
		if s.ReceiverChains[i].RatchetKey == key {
			return i, &s.ReceiverChains[i]
		}
	}
	return -1, nil
}

func (s *SessionState) addReceiverChain(key PublicKey, chain ChainKey) {
	s.ReceiverChains = append(s.ReceiverChains, ReceiverChain{RatchetKey: key, ChainKey: chain})
	if len(s.ReceiverChains) > maxReceiverChains {
		s.ReceiverChains = s.ReceiverChains[1:]
	}
}

func (c *ReceiverChain) takeMessageKeys(index uint32) (MessageKeys, bool) {
	for i, mk := range c.MessageKeys {
		if mk.Index == index {
			c.MessageKeys = append(c.MessageKeys[:i], c.MessageKeys[i+1:]...)
			return mk, true
		}
	}
	return MessageKeys{}, false
}

func (c *ReceiverChain) storeMessageKeys(mk MessageKeys) {
	c.MessageKeys = append(c.MessageKeys, mk)
	if len(c.MessageKeys) > maxMessageKeys {
		c.MessageKeys = c.MessageKeys[1:]
	}
}

// HasUsableSenderChain reports whether the state can encrypt.
func (s *SessionState) HasUsableSenderChain() bool {
	return s != nil && len(s.SenderChain.ChainKey.Key) == 32
}

// HasSessionState reports whether any state was built from the given base key.
func (r *SessionRecord) HasSessionState(version uint32, baseKey []byte) bool {
	if r.Current != nil && r.Current.Version == version && bytes.Equal(r.Current.AliceBaseKey, baseKey) {
		return true
	}
	for _, s := range r.Previous {
		if s.Version == version && bytes.Equal(s.AliceBaseKey, baseKey) {
			return true
		}
	}
	return false
}

// ArchiveCurrentState moves the current state to the archive, leaving the
// record without an open session.
func (r *SessionRecord) ArchiveCurrentState() {
	if r.Current == nil {
		return
	}
	r.Previous = append([]*SessionState{r.Current}, r.Previous...)
	if len(r.Previous) > maxPreviousStates {
		r.Previous = r.Previous[:maxPreviousStates]
	}
	r.Current = nil
}

// PromoteState archives the current state and installs s.
func (r *SessionRecord) PromoteState(s *SessionState) {
	r.ArchiveCurrentState()
	r.Current = s
}

// RemoteRegistrationID returns the peer's registration ID from the current state.
func (r *SessionRecord) RemoteRegistrationID() (uint32, error) {
	if r.Current == nil {
		return 0, fmt.Errorf("libsignal: no current session state")
	}
	return r.Current.RemoteRegistrationID, nil
}

// Clone returns a deep copy via serialization.
func (r *SessionRecord) Clone() (*SessionRecord, error) {
	data, err := r.Serialize()
	if err != nil {
		return nil, err
	}
	return DeserializeSessionRecord(data)
}

// Serialize encodes the record as a signalpb.RecordStructure.
func (r *SessionRecord) Serialize() ([]byte, error) {
	wire := new(signalpb.RecordStructure)
	if r.Current != nil {
		wire.CurrentSession = r.Current.structure()
	}
	for _, s := range r.Previous {
		wire.PreviousSessions = append(wire.PreviousSessions, s.structure())
	}
	data, err := pb.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("libsignal: session record: %w", err)
	}
	if data == nil {
		data = []byte{}
	}
	return data, nil
}

// DeserializeSessionRecord decodes a record written by Serialize.
func DeserializeSessionRecord(data []byte) (*SessionRecord, error) {
	var wire signalpb.RecordStructure
	if err := pb.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("libsignal: session record: %w", err)
	}
	r := new(SessionRecord)
	if wire.CurrentSession != nil {
		s, err := sessionStateFrom(wire.CurrentSession)
		if err != nil {
			return nil, fmt.Errorf("libsignal: session record: %w", err)
		}
		r.Current = s
	}
	for _, ps := range wire.PreviousSessions {
		s, err := sessionStateFrom(ps)
		if err != nil {
			return nil, fmt.Errorf("libsignal: session record: %w", err)
		}
		r.Previous = append(r.Previous, s)
	}
	return r, nil
}

func (s *SessionState) structure() *signalpb.SessionStructure {
	wire := &signalpb.SessionStructure{
		SessionVersion:       pb.Uint32(s.Version),
		LocalIdentityPublic:  s.LocalIdentity.Serialize(),
		RemoteIdentityPublic: s.RemoteIdentity.Serialize(),
		RootKey:              s.RootKey,
		PreviousCounter:      pb.Uint32(s.PreviousCounter),
		SenderChain: &signalpb.Chain{
			SenderRatchetKey:        clone(s.SenderChain.RatchetKey.Public[:]),
			SenderRatchetKeyPrivate: clone(s.SenderChain.RatchetKey.Private[:]),
			ChainKey:                chainKeyStructure(s.SenderChain.ChainKey),
		},
		RemoteRegistrationId: pb.Uint32(s.RemoteRegistrationID),
		LocalRegistrationId:  pb.Uint32(s.LocalRegistrationID),
		AliceBaseKey:         s.AliceBaseKey,
	}
	for _, rc := range s.ReceiverChains {
		chain := &signalpb.Chain{
			SenderRatchetKey: clone(rc.RatchetKey[:]),
			ChainKey:         chainKeyStructure(rc.ChainKey),
		}
		for _, mk := range rc.MessageKeys {
			chain.MessageKeys = append(chain.MessageKeys, &signalpb.MessageKey{
				Index:     pb.Uint32(mk.Index),
				CipherKey: mk.CipherKey,
				MacKey:    mk.MacKey,
				Iv:        mk.IV,
			})
		}
		wire.ReceiverChains = append(wire.ReceiverChains, chain)
	}
	if p := s.Pending; p != nil {
		wire.PendingPreKey = &signalpb.PendingPreKey{
			SignedPreKeyId: pb.Uint32(p.SignedPreKeyID),
			BaseKey:        clone(p.BaseKey[:]),
		}
		if p.HasPreKeyID {
			wire.PendingPreKey.PreKeyId = pb.Uint32(p.PreKeyID)
		}
	}
	return wire
}

func chainKeyStructure(c ChainKey) *signalpb.ChainKey {
	return &signalpb.ChainKey{Index: pb.Uint32(c.Index), Key: c.Key}
}

func chainKeyFrom(wire *signalpb.ChainKey) ChainKey {
	return ChainKey{Index: wire.GetIndex(), Key: clone(wire.GetKey())}
}

func sessionStateFrom(wire *signalpb.SessionStructure) (*SessionState, error) {
	s := &SessionState{
		Version:              wire.GetSessionVersion(),
		RootKey:              clone(wire.GetRootKey()),
		PreviousCounter:      wire.GetPreviousCounter(),
		RemoteRegistrationID: wire.GetRemoteRegistrationId(),
		LocalRegistrationID:  wire.GetLocalRegistrationId(),
		AliceBaseKey:         clone(wire.GetAliceBaseKey()),
	}
	var err error
	if s.LocalIdentity, err = DecodeIdentityKey(wire.GetLocalIdentityPublic()); err != nil {
		return nil, err
	}
	if s.RemoteIdentity, err = DecodeIdentityKey(wire.GetRemoteIdentityPublic()); err != nil {
		return nil, err
	}
	if sc := wire.GetSenderChain(); sc != nil {
		copy(s.SenderChain.RatchetKey.Public[:], sc.GetSenderRatchetKey())
		copy(s.SenderChain.RatchetKey.Private[:], sc.GetSenderRatchetKeyPrivate())
		s.SenderChain.ChainKey = chainKeyFrom(sc.GetChainKey())
	}
	for _, c := range wire.GetReceiverChains() {
		var rc ReceiverChain
		copy(rc.RatchetKey[:], c.GetSenderRatchetKey())
		rc.ChainKey = chainKeyFrom(c.GetChainKey())
		for _, mk := range c.GetMessageKeys() {
			rc.MessageKeys = append(rc.MessageKeys, MessageKeys{
				Index:     mk.GetIndex(),
				CipherKey: clone(mk.GetCipherKey()),
				MacKey:    clone(mk.GetMacKey()),
				IV:        clone(mk.GetIv()),
			})
		}
		s.ReceiverChains = append(s.ReceiverChains, rc)
	}
	if p := wire.GetPendingPreKey(); p != nil {
		s.Pending = &PendingPreKey{
			HasPreKeyID:    p.PreKeyId != nil,
			PreKeyID:       p.GetPreKeyId(),
			SignedPreKeyID: p.GetSignedPreKeyId(),
		}
		copy(s.Pending.BaseKey[:], p.GetBaseKey())
	}
	return s, nil
}
