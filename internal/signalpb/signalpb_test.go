package signalpb

import (
	"bytes"
	"testing"

	pb "google.golang.org/protobuf/proto"
)

func TestSignalMessageWireFormat(t *testing.T) {
	msg := &SignalMessage{
		RatchetKey:      []byte{0x05, 0x01},
		Counter:         pb.Uint32(7),
		PreviousCounter: pb.Uint32(3),
		Ciphertext:      []byte{0xaa},
	}
	data, err := pb.Marshal(msg)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x0a, 0x02, 0x05, 0x01, 0x10, 0x07, 0x18, 0x03, 0x22, 0x01, 0xaa}
	if !bytes.Equal(data, want) {
		t.Fatalf("got %x, want %x", data, want)
	}
}

func TestPreKeySignalMessageRoundTrip(t *testing.T) {
	original := &PreKeySignalMessage{
		RegistrationId: pb.Uint32(1234),
		SignedPreKeyId: pb.Uint32(1),
		BaseKey:        []byte{0x05, 0x02},
		IdentityKey:    []byte{0x05, 0x03},
		Message:        []byte{0x33, 0x0a},
	}
	data, err := pb.Marshal(original)
	if err != nil {
		t.Fatal(err)
	}
	decoded := new(PreKeySignalMessage)
	if err := pb.Unmarshal(data, decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.PreKeyId != nil {
		t.Fatalf("preKeyId set: %d", decoded.GetPreKeyId())
	}
	if decoded.GetRegistrationId() != 1234 || decoded.GetSignedPreKeyId() != 1 {
		t.Fatalf("ids mismatch: %v", decoded)
	}
	if !bytes.Equal(decoded.GetMessage(), original.GetMessage()) {
		t.Fatalf("message mismatch: got %x, want %x", decoded.GetMessage(), original.GetMessage())
	}
}

func TestRecordStructureRoundTrip(t *testing.T) {
	original := &RecordStructure{
		CurrentSession: &SessionStructure{
			SessionVersion: pb.Uint32(3),
			RootKey:        []byte{1, 2, 3},
			SenderChain: &Chain{
				SenderRatchetKey: []byte{0x05},
				ChainKey:         &ChainKey{Index: pb.Uint32(4), Key: []byte{9}},
			},
			ReceiverChains: []*Chain{{
				SenderRatchetKey: []byte{0x06},
				MessageKeys:      []*MessageKey{{Index: pb.Uint32(2), CipherKey: []byte{7}}},
			}},
			PendingPreKey: &PendingPreKey{SignedPreKeyId: pb.Uint32(1), BaseKey: []byte{8}},
		},
		PreviousSessions: []*SessionStructure{{SessionVersion: pb.Uint32(3)}},
	}
	data, err := pb.Marshal(original)
	if err != nil {
		t.Fatal(err)
	}
	decoded := new(RecordStructure)
	if err := pb.Unmarshal(data, decoded); err != nil {
		t.Fatal(err)
	}
	if !pb.Equal(original, decoded) {
		t.Fatalf("round trip mismatch:\n got %v\nwant %v", decoded, original)
	}
	chain := decoded.GetCurrentSession().GetReceiverChains()[0]
	if chain.GetMessageKeys()[0].GetIndex() != 2 {
		t.Fatalf("message key index = %d", chain.GetMessageKeys()[0].GetIndex())
	}
}

func TestDescriptorNames(t *testing.T) {
	tests := []struct {
		msg  pb.Message
		want string
	}{
		{&SenderKeyDistributionMessage{}, "signalpb.SenderKeyDistributionMessage"},
		{&SenderKeyRecordStructure{}, "signalpb.SenderKeyRecordStructure"},
		{&SignedPreKeyRecordStructure{}, "signalpb.SignedPreKeyRecordStructure"},
	}
	for _, tt := range tests {
		if got := string(tt.msg.ProtoReflect().Descriptor().FullName()); got != tt.want {
			t.Errorf("FullName = %q, want %q", got, tt.want)
		}
	}
}
