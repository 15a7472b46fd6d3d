package libsignal

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/binary"
	"fmt"

	pb "google.golang.org/protobuf/proto"

	"github.com/gwillem/whatsapp-go/internal/signalcrypto"
	"github.com/gwillem/whatsapp-go/internal/signalpb"
)

const (
	// Sender-key states kept per record.
	maxSenderKeyStates    = 5
	// Out-of-order sender message keys kept per state.
	maxSenderMessageKeys  = 2000
	senderSignatureLength = ed25519.SignatureSize
)

var infoGroup = []byte("WhisperGroup")

// SenderChainKey is the symmetric chain of one sender-key state.
type SenderChainKey struct {
	Iteration uint32
	Seed      []byte
}

// SenderMessageKey is the cipher material for one group message.
type SenderMessageKey struct {
	Iteration uint32
	IV        []byte
	CipherKey []byte
	seed      []byte
}

func (c SenderChainKey) next() SenderChainKey {
	return SenderChainKey{Iteration: c.Iteration + 1, Seed: signalcrypto.ComputeMAC(c.Seed, chainKeySeed)}
}

func (c SenderChainKey) messageKey() (SenderMessageKey, error) {
	seed := signalcrypto.ComputeMAC(c.Seed, messageKeySeed)
	return deriveSenderMessageKey(c.Iteration, seed)
}

func deriveSenderMessageKey(iteration uint32, seed []byte) (SenderMessageKey, error) {
	okm, err := signalcrypto.DeriveSecrets(seed, nil, infoGroup, 48)
	if err != nil {
		return SenderMessageKey{}, err
	}
	return SenderMessageKey{Iteration: iteration, IV: okm[:16], CipherKey: okm[16:48], seed: seed}, nil
}

// SenderKeyState is one generation of a sender's group chain. SigningPrivate
// is only set for our own chains.
type SenderKeyState struct {
	KeyID          uint32
	ChainKey       SenderChainKey
	SigningPublic  ed25519.PublicKey
	SigningPrivate ed25519.PrivateKey
	MessageKeys    []SenderMessageKey
}

func (s *SenderKeyState) takeMessageKey(iteration uint32) (SenderMessageKey, bool) {
	for i, mk := range s.MessageKeys {
		if mk.Iteration == iteration {
			s.MessageKeys = append(s.MessageKeys[:i], s.MessageKeys[i+1:]...)
			return mk, true
		}
	}
	return SenderMessageKey{}, false
}

func (s *SenderKeyState) storeMessageKey(mk SenderMessageKey) {
	s.MessageKeys = append(s.MessageKeys, mk)
	if len(s.MessageKeys) > maxSenderMessageKeys {
		s.MessageKeys = s.MessageKeys[1:]
	}
}

// SenderKeyRecord holds the states of one sender in one group, newest first.
type SenderKeyRecord struct {
	States []*SenderKeyState
}

// IsEmpty reports whether the record holds no state.
func (r *SenderKeyRecord) IsEmpty() bool { return r == nil || len(r.States) == 0 }

// Current returns the newest state, or nil.
func (r *SenderKeyRecord) Current() *SenderKeyState {
	if r.IsEmpty() {
		return nil
	}
	return r.States[0]
}

func (r *SenderKeyRecord) state(keyID uint32) *SenderKeyState {
	for _, s := range r.States {
		if s.KeyID == keyID {
			return s
		}
	}
	return nil
}

func (r *SenderKeyRecord) addState(s *SenderKeyState) {
	r.States = append([]*SenderKeyState{s}, r.States...)
	if len(r.States) > maxSenderKeyStates {
		r.States = r.States[:maxSenderKeyStates]
	}
}

// Serialize encodes the record as a signalpb.SenderKeyRecordStructure.
func (r *SenderKeyRecord) Serialize() ([]byte, error) {
	wire := new(signalpb.SenderKeyRecordStructure)
	for _, st := range r.States {
		state := &signalpb.SenderKeyStateStructure{
			SenderKeyId: pb.Uint32(st.KeyID),
			SenderChainKey: &signalpb.SenderChainKey{
				Iteration: pb.Uint32(st.ChainKey.Iteration),
				Seed:      st.ChainKey.Seed,
			},
			SenderSigningKey: &signalpb.SenderSigningKey{
				Public:  st.SigningPublic,
				Private: st.SigningPrivate,
			},
		}
		for _, mk := range st.MessageKeys {
			state.SenderMessageKeys = append(state.SenderMessageKeys, &signalpb.SenderMessageKey{
				Iteration: pb.Uint32(mk.Iteration),
				Seed:      mk.seed,
			})
		}
		wire.SenderKeyStates = append(wire.SenderKeyStates, state)
	}
	data, err := pb.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("libsignal: sender key record: %w", err)
	}
	if data == nil {
		data = []byte{}
	}
	return data, nil
}

// DeserializeSenderKeyRecord decodes a record written by Serialize.
func DeserializeSenderKeyRecord(data []byte) (*SenderKeyRecord, error) {
	var wire signalpb.SenderKeyRecordStructure
	if err := pb.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("libsignal: sender key record: %w", err)
	}
	r := new(SenderKeyRecord)
	for _, state := range wire.GetSenderKeyStates() {
		st := &SenderKeyState{
			KeyID: state.GetSenderKeyId(),
			ChainKey: SenderChainKey{
				Iteration: state.GetSenderChainKey().GetIteration(),
				Seed:      clone(state.GetSenderChainKey().GetSeed()),
			},
			SigningPublic: ed25519.PublicKey(clone(state.GetSenderSigningKey().GetPublic())),
		}
		if priv := state.GetSenderSigningKey().GetPrivate(); priv != nil {
			st.SigningPrivate = ed25519.PrivateKey(clone(priv))
		}
		if len(st.SigningPublic) != ed25519.PublicKeySize {
			return nil, fmt.Errorf("libsignal: sender key record: state %d without signing key", st.KeyID)
		}
		for _, mk := range state.GetSenderMessageKeys() {
			key, err := deriveSenderMessageKey(mk.GetIteration(), clone(mk.GetSeed()))
			if err != nil {
				return nil, fmt.Errorf("libsignal: sender key record: %w", err)
			}
			st.MessageKeys = append(st.MessageKeys, key)
		}
		r.States = append(r.States, st)
	}
	return r, nil
}

// SenderKeyDistributionMessage announces a sender's chain to group members.
// On the wire it is a version byte followed by a
// signalpb.SenderKeyDistributionMessage.
type SenderKeyDistributionMessage struct {
	KeyID      uint32
	Iteration  uint32
	ChainKey   []byte
	SigningKey ed25519.PublicKey
	serialized []byte
}

func newSenderKeyDistributionMessage(keyID, iteration uint32, chainKey []byte, signingKey ed25519.PublicKey) (*SenderKeyDistributionMessage, error) {
	data, err := pb.Marshal(&signalpb.SenderKeyDistributionMessage{
		Id:         pb.Uint32(keyID),
		Iteration:  pb.Uint32(iteration),
		ChainKey:   chainKey,
		SigningKey: signingKey,
	})
	if err != nil {
		return nil, fmt.Errorf("libsignal: distribution message: %w", err)
	}
	return &SenderKeyDistributionMessage{
		KeyID:      keyID,
		Iteration:  iteration,
		ChainKey:   clone(chainKey),
		SigningKey: signingKey,
		serialized: append([]byte{versionByte()}, data...),
	}, nil
}

// Serialize returns the wire bytes.
func (m *SenderKeyDistributionMessage) Serialize() []byte { return m.serialized }

// DeserializeSenderKeyDistributionMessage parses a distribution message.
func DeserializeSenderKeyDistributionMessage(data []byte) (*SenderKeyDistributionMessage, error) {
	if len(data) < 2 {
		return nil, invalidMessage("distribution message too short", nil)
	}
	if v := data[0] >> 4; v != CiphertextVersion {
		return nil, invalidMessage(fmt.Sprintf("unsupported version %d", v), nil)
	}
	var wire signalpb.SenderKeyDistributionMessage
	if err := pb.Unmarshal(data[1:], &wire); err != nil {
		return nil, invalidMessage("decode distribution message", err)
	}
	m := &SenderKeyDistributionMessage{
		KeyID:      wire.GetId(),
		Iteration:  wire.GetIteration(),
		ChainKey:   clone(wire.GetChainKey()),
		SigningKey: ed25519.PublicKey(clone(wire.GetSigningKey())),
		serialized: clone(data),
	}
	if len(m.ChainKey) != 32 || len(m.SigningKey) != ed25519.PublicKeySize {
		return nil, invalidMessage("incomplete distribution message", nil)
	}
	return m, nil
}

// SenderKeyMessage is one group ciphertext: a version byte, a
// signalpb.SenderKeyMessage and an Ed25519 signature over both.
type SenderKeyMessage struct {
	KeyID      uint32
	Iteration  uint32
	Ciphertext []byte
	serialized []byte
}

// Serialize returns the wire bytes.
func (m *SenderKeyMessage) Serialize() []byte { return m.serialized }

// DeserializeSenderKeyMessage parses a group message. The signature is
// verified against the sender's state on decrypt.
func DeserializeSenderKeyMessage(data []byte) (*SenderKeyMessage, error) {
	if len(data) < 1+senderSignatureLength {
		return nil, invalidMessage("sender key message too short", nil)
	}
	if v := data[0] >> 4; v != CiphertextVersion {
		return nil, invalidMessage(fmt.Sprintf("unsupported version %d", v), nil)
	}
	var wire signalpb.SenderKeyMessage
	if err := pb.Unmarshal(data[1:len(data)-senderSignatureLength], &wire); err != nil {
		return nil, invalidMessage("decode sender key message", err)
	}
	m := &SenderKeyMessage{
		KeyID:      wire.GetId(),
		Iteration:  wire.GetIteration(),
		Ciphertext: clone(wire.GetCiphertext()),
		serialized: clone(data),
	}
	if wire.Ciphertext == nil {
		return nil, invalidMessage("incomplete sender key message", nil)
	}
	return m, nil
}

func (m *SenderKeyMessage) verify(key ed25519.PublicKey) bool {
	body := m.serialized[:len(m.serialized)-senderSignatureLength]
	return ed25519.Verify(key, body, m.serialized[len(m.serialized)-senderSignatureLength:])
}

func randomKeyID() (uint32, error) {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, err
	}
	// Keep IDs positive in 31 bits; zero is reserved for "unknown".
	id := binary.BigEndian.Uint32(b[:]) & 0x7fffffff
	if id == 0 {
		id = 1
	}
	return id, nil
}

// CreateSenderKeyDistributionMessage returns the distribution message for
// our own chain in a group, creating the chain on first use.
func CreateSenderKeyDistributionMessage(name SenderKeyName, store SenderKeyStore) (*SenderKeyDistributionMessage, error) {
	record, err := store.LoadSenderKey(name)
	if err != nil {
		return nil, fmt.Errorf("libsignal: load sender key: %w", err)
	}
	if record == nil {
		record = new(SenderKeyRecord)
	}
	if record.IsEmpty() {
		keyID, err := randomKeyID()
		if err != nil {
			return nil, err
		}
		seed := make([]byte, 32)
		if _, err := rand.Read(seed); err != nil {
			return nil, err
		}
		pub, priv, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, err
		}
		record.addState(&SenderKeyState{
			KeyID:          keyID,
			ChainKey:       SenderChainKey{Iteration: 0, Seed: seed},
			SigningPublic:  pub,
			SigningPrivate: priv,
		})
		if err := store.StoreSenderKey(name, record); err != nil {
			return nil, fmt.Errorf("libsignal: store sender key: %w", err)
		}
	}
	s := record.Current()
	return newSenderKeyDistributionMessage(s.KeyID, s.ChainKey.Iteration, s.ChainKey.Seed, s.SigningPublic)
}

// ProcessSenderKeyDistributionMessage installs a sender's chain. A message
// for a key ID already held is ignored.
func ProcessSenderKeyDistributionMessage(name SenderKeyName, msg *SenderKeyDistributionMessage, store SenderKeyStore) error {
	record, err := store.LoadSenderKey(name)
	if err != nil {
		return fmt.Errorf("libsignal: load sender key: %w", err)
	}
	if record == nil {
		record = new(SenderKeyRecord)
	}
	if record.state(msg.KeyID) != nil {
		return nil
	}
	record.addState(&SenderKeyState{
		KeyID:         msg.KeyID,
		ChainKey:      SenderChainKey{Iteration: msg.Iteration, Seed: clone(msg.ChainKey)},
		SigningPublic: msg.SigningKey,
	})
	if err := store.StoreSenderKey(name, record); err != nil {
		return fmt.Errorf("libsignal: store sender key: %w", err)
	}
	return nil
}

// GroupEncrypt encrypts plaintext on our chain for the group.
func GroupEncrypt(name SenderKeyName, plaintext []byte, store SenderKeyStore) (*SenderKeyMessage, error) {
	record, err := store.LoadSenderKey(name)
	if err != nil {
		return nil, fmt.Errorf("libsignal: load sender key: %w", err)
	}
	s := record.Current()
	if s == nil || s.SigningPrivate == nil {
		return nil, &NoSenderKeyError{Name: name}
	}
	mk, err := s.ChainKey.messageKey()
	if err != nil {
		return nil, err
	}
	ciphertext, err := signalcrypto.EncryptAESCBC(mk.CipherKey, mk.IV, plaintext)
	if err != nil {
		return nil, fmt.Errorf("libsignal: group encrypt: %w", err)
	}

	data, err := pb.Marshal(&signalpb.SenderKeyMessage{
		Id:         pb.Uint32(s.KeyID),
		Iteration:  pb.Uint32(mk.Iteration),
		Ciphertext: ciphertext,
	})
	if err != nil {
		return nil, fmt.Errorf("libsignal: group encrypt: %w", err)
	}
	body := append([]byte{versionByte()}, data...)
	sig := ed25519.Sign(s.SigningPrivate, body)

	s.ChainKey = s.ChainKey.next()
	if err := store.StoreSenderKey(name, record); err != nil {
		return nil, fmt.Errorf("libsignal: store sender key: %w", err)
	}
	return &SenderKeyMessage{
		KeyID:      s.KeyID,
		Iteration:  mk.Iteration,
		Ciphertext: ciphertext,
		serialized: append(body, sig...),
	}, nil
}

// GroupDecrypt decrypts a group message from the sender named in name.
// The stored record is only updated on success.
func GroupDecrypt(name SenderKeyName, msg *SenderKeyMessage, store SenderKeyStore) ([]byte, error) {
	record, err := store.LoadSenderKey(name)
	if err != nil {
		return nil, fmt.Errorf("libsignal: load sender key: %w", err)
	}
	if record.IsEmpty() {
		return nil, &NoSenderKeyError{Name: name}
	}
	// Work on a copy so a failure leaves the stored chain intact.
	data, err := record.Serialize()
	if err != nil {
		return nil, err
	}
	record, err = DeserializeSenderKeyRecord(data)
	if err != nil {
		return nil, err
	}
	s := record.state(msg.KeyID)
	if s == nil {
		return nil, &NoSenderKeyError{Name: name, KeyID: msg.KeyID}
	}
	if !msg.verify(s.SigningPublic) {
		return nil, invalidMessage("bad sender key signature", nil)
	}

	mk, err := senderMessageKeyFor(s, msg.Iteration, name)
	if err != nil {
		return nil, err
	}
	plaintext, err := signalcrypto.DecryptAESCBC(mk.CipherKey, mk.IV, msg.Ciphertext)
	if err != nil {
		return nil, invalidMessage("decrypt group body", err)
	}
	if err := store.StoreSenderKey(name, record); err != nil {
		return nil, fmt.Errorf("libsignal: store sender key: %w", err)
	}
	return plaintext, nil
}

func senderMessageKeyFor(s *SenderKeyState, iteration uint32, name SenderKeyName) (SenderMessageKey, error) {
	chain := s.ChainKey
	if chain.Iteration > iteration {
		if mk, ok := s.takeMessageKey(iteration); ok {
			return mk, nil
		}
		return SenderMessageKey{}, &ProtocolDesyncError{Address: name.Sender, Counter: iteration, Reason: "duplicate group message"}
	}
	if iteration-chain.Iteration > maxMessageKeysSkip {
		return SenderMessageKey{}, &ProtocolDesyncError{Address: name.Sender, Counter: iteration, Reason: "group message too far in the future"}
	}
	for chain.Iteration < iteration {
		mk, err := chain.messageKey()
		if err != nil {
			return SenderMessageKey{}, err
		}
		s.storeMessageKey(mk)
		chain = chain.next()
	}
	mk, err := chain.messageKey()
	if err != nil {
		return SenderMessageKey{}, err
	}
	s.ChainKey = chain.next()
	return mk, nil
}
