package libsignal

import (
	"fmt"

	pb "google.golang.org/protobuf/proto"

	"github.com/gwillem/whatsapp-go/internal/signalcrypto"
	"github.com/gwillem/whatsapp-go/internal/signalpb"
)

// CiphertextVersion is the only supported message version.
const CiphertextVersion = 3

const macLength = 8

// Ciphertext message types.
const (
	WhisperType   = 2
	PreKeyType    = 3
	SenderKeyType = 4
)

func versionByte() byte {
	return CiphertextVersion<<4 | CiphertextVersion
}

// CiphertextMessage is an encrypted message ready for the wire.
type CiphertextMessage struct {
	typ  uint8
	data []byte
}

// Type returns WhisperType or PreKeyType.
func (m *CiphertextMessage) Type() uint8 { return m.typ }

// Serialize returns the wire bytes.
func (m *CiphertextMessage) Serialize() []byte { return m.data }

// SignalMessage is a ratchet message: version || signalpb.SignalMessage || mac.
type SignalMessage struct {
	RatchetKey      PublicKey
	Counter         uint32
	PreviousCounter uint32
	Ciphertext      []byte
	serialized      []byte
}

func newSignalMessage(macKey []byte, ratchetKey PublicKey, counter, previousCounter uint32,
	ciphertext []byte, sender, receiver IdentityKey) (*SignalMessage, error) {
	data, err := pb.Marshal(&signalpb.SignalMessage{
		RatchetKey:      ratchetKey.Serialize(),
		Counter:         pb.Uint32(counter),
		PreviousCounter: pb.Uint32(previousCounter),
		Ciphertext:      ciphertext,
	})
	if err != nil {
		return nil, fmt.Errorf("libsignal: marshal signal message: %w", err)
	}

	body := append([]byte{versionByte()}, data...)
	mac := signalcrypto.ComputeMAC(macKey, sender.Serialize(), receiver.Serialize(), body)
	return &SignalMessage{
		RatchetKey:      ratchetKey,
		Counter:         counter,
		PreviousCounter: previousCounter,
		Ciphertext:      ciphertext,
		serialized:      append(body, mac[:macLength]...),
	}, nil
}

// DeserializeSignalMessage parses a ratchet message. The MAC is checked later
// by verifyMAC once the message keys are known.
func DeserializeSignalMessage(data []byte) (*SignalMessage, error) {
	if len(data) < 1+macLength {
		return nil, invalidMessage("message too short", nil)
	}
	if v := data[0] >> 4; v != CiphertextVersion {
		return nil, invalidMessage(fmt.Sprintf("unsupported version %d", v), nil)
	}
	var wire signalpb.SignalMessage
	if err := pb.Unmarshal(data[1:len(data)-macLength], &wire); err != nil {
		return nil, invalidMessage("decode signal message", err)
	}
	if wire.RatchetKey == nil || wire.Ciphertext == nil {
		return nil, invalidMessage("incomplete signal message", nil)
	}
	ratchetKey, err := DecodePublicKey(wire.GetRatchetKey())
	if err != nil {
		return nil, invalidMessage("decode signal message", err)
	}
	return &SignalMessage{
		RatchetKey:      ratchetKey,
		Counter:         wire.GetCounter(),
		PreviousCounter: wire.GetPreviousCounter(),
		Ciphertext:      wire.GetCiphertext(),
		serialized:      clone(data),
	}, nil
}

// Serialize returns the wire bytes.
func (m *SignalMessage) Serialize() []byte { return m.serialized }

func (m *SignalMessage) verifyMAC(sender, receiver IdentityKey, macKey []byte) error {
	body := m.serialized[:len(m.serialized)-macLength]
	mac := m.serialized[len(m.serialized)-macLength:]
	if err := signalcrypto.VerifyMAC(macKey, mac, sender.Serialize(), receiver.Serialize(), body); err != nil {
		return invalidMessage("bad mac", err)
	}
	return nil
}

// PreKeySignalMessage wraps the first messages of a session with the
// material the receiver needs to complete key agreement.
type PreKeySignalMessage struct {
	RegistrationID uint32
	HasPreKeyID    bool
	PreKeyID       uint32
	SignedPreKeyID uint32
	BaseKey        PublicKey
	IdentityKey    IdentityKey
	Message        *SignalMessage
	serialized     []byte
}

func newPreKeySignalMessage(registrationID uint32, pending *PendingPreKey, identity IdentityKey,
	msg *SignalMessage) (*PreKeySignalMessage, error) {
	wire := &signalpb.PreKeySignalMessage{
		RegistrationId: pb.Uint32(registrationID),
		SignedPreKeyId: pb.Uint32(pending.SignedPreKeyID),
		BaseKey:        pending.BaseKey.Serialize(),
		IdentityKey:    identity.Serialize(),
		Message:        msg.Serialize(),
	}
	if pending.HasPreKeyID {
		wire.PreKeyId = pb.Uint32(pending.PreKeyID)
	}
	data, err := pb.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("libsignal: marshal pre-key message: %w", err)
	}
	return &PreKeySignalMessage{
		RegistrationID: registrationID,
		HasPreKeyID:    pending.HasPreKeyID,
		PreKeyID:       pending.PreKeyID,
		SignedPreKeyID: pending.SignedPreKeyID,
		BaseKey:        pending.BaseKey,
		IdentityKey:    identity,
		Message:        msg,
		serialized:     append([]byte{versionByte()}, data...),
	}, nil
}

// DeserializePreKeySignalMessage parses a pre-key message.
func DeserializePreKeySignalMessage(data []byte) (*PreKeySignalMessage, error) {
	if len(data) < 2 {
		return nil, invalidMessage("pre-key message too short", nil)
	}
	if v := data[0] >> 4; v != CiphertextVersion {
		return nil, invalidMessage(fmt.Sprintf("unsupported version %d", v), nil)
	}
	var wire signalpb.PreKeySignalMessage
	if err := pb.Unmarshal(data[1:], &wire); err != nil {
		return nil, invalidMessage("decode pre-key message", err)
	}
	if wire.BaseKey == nil || wire.IdentityKey == nil || wire.Message == nil {
		return nil, invalidMessage("incomplete pre-key message", nil)
	}
	m := &PreKeySignalMessage{
		RegistrationID: wire.GetRegistrationId(),
		HasPreKeyID:    wire.PreKeyId != nil,
		PreKeyID:       wire.GetPreKeyId(),
		SignedPreKeyID: wire.GetSignedPreKeyId(),
		serialized:     clone(data),
	}
	var err error
	if m.BaseKey, err = DecodePublicKey(wire.GetBaseKey()); err != nil {
		return nil, invalidMessage("decode pre-key message", err)
	}
	if m.IdentityKey, err = DecodeIdentityKey(wire.GetIdentityKey()); err != nil {
		return nil, invalidMessage("decode pre-key message", err)
	}
	if m.Message, err = DeserializeSignalMessage(wire.GetMessage()); err != nil {
		return nil, invalidMessage("decode pre-key message", err)
	}
	return m, nil
}

// Serialize returns the wire bytes.
func (m *PreKeySignalMessage) Serialize() []byte { return m.serialized }

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}
