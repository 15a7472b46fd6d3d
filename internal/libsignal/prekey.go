package libsignal

import (
	"fmt"
	"time"

	pb "google.golang.org/protobuf/proto"

	"github.com/gwillem/whatsapp-go/internal/signalpb"
)

// PreKeyRecord is a one-time pre-key.
type PreKeyRecord struct {
	ID      uint32
	KeyPair KeyPair
}

// SignedPreKeyRecord is the medium-term pre-key signed by the identity key.
type SignedPreKeyRecord struct {
	ID        uint32
	KeyPair   KeyPair
	Signature []byte
	Timestamp time.Time
}

// GeneratePreKey creates a one-time pre-key with the given ID.
func GeneratePreKey(id uint32) (*PreKeyRecord, error) {
	kp, err := GenerateKeyPair()
	if err != nil {
		return nil, err
	}
	return &PreKeyRecord{ID: id, KeyPair: kp}, nil
}

// GenerateSignedPreKey creates a signed pre-key and signs its serialized
// public key with the identity.
func GenerateSignedPreKey(identity *IdentityKeyPair, id uint32) (*SignedPreKeyRecord, error) {
	kp, err := GenerateKeyPair()
	if err != nil {
		return nil, err
	}
	return &SignedPreKeyRecord{
		ID:        id,
		KeyPair:   kp,
		Signature: identity.Sign(kp.Public.Serialize()),
		Timestamp: time.Now(),
	}, nil
}

// Serialize encodes the record as a signalpb.PreKeyRecordStructure.
func (r *PreKeyRecord) Serialize() ([]byte, error) {
	data, err := pb.Marshal(&signalpb.PreKeyRecordStructure{
		Id:         pb.Uint32(r.ID),
		PublicKey:  r.KeyPair.Public[:],
		PrivateKey: r.KeyPair.Private[:],
	})
	if err != nil {
		return nil, fmt.Errorf("libsignal: pre-key record: %w", err)
	}
	return data, nil
}

// DeserializePreKeyRecord decodes a record written by Serialize.
func DeserializePreKeyRecord(data []byte) (*PreKeyRecord, error) {
	var wire signalpb.PreKeyRecordStructure
	if err := pb.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("libsignal: pre-key record: %w", err)
	}
	r := &PreKeyRecord{ID: wire.GetId()}
	copy(r.KeyPair.Public[:], wire.GetPublicKey())
	copy(r.KeyPair.Private[:], wire.GetPrivateKey())
	return r, nil
}

// Serialize encodes the record as a signalpb.SignedPreKeyRecordStructure.
func (r *SignedPreKeyRecord) Serialize() ([]byte, error) {
	data, err := pb.Marshal(&signalpb.SignedPreKeyRecordStructure{
		Id:         pb.Uint32(r.ID),
		PublicKey:  r.KeyPair.Public[:],
		PrivateKey: r.KeyPair.Private[:],
		Signature:  r.Signature,
		Timestamp:  pb.Uint64(uint64(r.Timestamp.UnixMilli())),
	})
	if err != nil {
		return nil, fmt.Errorf("libsignal: signed pre-key record: %w", err)
	}
	return data, nil
}

// DeserializeSignedPreKeyRecord decodes a record written by Serialize.
func DeserializeSignedPreKeyRecord(data []byte) (*SignedPreKeyRecord, error) {
	var wire signalpb.SignedPreKeyRecordStructure
	if err := pb.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("libsignal: signed pre-key record: %w", err)
	}
	r := &SignedPreKeyRecord{
		ID:        wire.GetId(),
		Signature: clone(wire.GetSignature()),
		Timestamp: time.UnixMilli(int64(wire.GetTimestamp())),
	}
	copy(r.KeyPair.Public[:], wire.GetPublicKey())
	copy(r.KeyPair.Private[:], wire.GetPrivateKey())
	return r, nil
}
