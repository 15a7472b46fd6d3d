package waproto

import (
	"bytes"
	"errors"
	"testing"

	pb "google.golang.org/protobuf/proto"
)

func TestPadUnpad(t *testing.T) {
	msg := Text("hello")
	for i := 0; i < 50; i++ {
		padded := Pad(msg)
		n := len(padded) - len(msg)
		if n < 1 || n > 15 {
			t.Fatalf("pad length %d out of range", n)
		}
		got, err := Unpad(padded)
		if err != nil {
			t.Fatalf("Unpad: %v", err)
		}
		if !bytes.Equal(got, msg) {
			t.Fatalf("got %x want %x", got, msg)
		}
	}
}

func TestUnpadInvalid(t *testing.T) {
	for name, in := range map[string][]byte{
		"empty":       nil,
		"too long":    {1, 9},
		"zero length": append(Text("hi"), 0),
	} {
		if _, err := Unpad(in); !errors.Is(err, ErrMalformed) {
			t.Fatalf("%s: err = %v, want ErrMalformed", name, err)
		}
	}
}

func TestTextWireFormat(t *testing.T) {
	if got, want := Text("hi"), []byte{0x0a, 0x02, 'h', 'i'}; !bytes.Equal(got, want) {
		t.Fatalf("Text = %x, want %x", got, want)
	}
}

func TestDeviceSentRoundTrip(t *testing.T) {
	wrapped, err := WrapDeviceSent("123@s.whatsapp.net", Text("for my phone"))
	if err != nil {
		t.Fatal(err)
	}
	m, err := Parse(wrapped)
	if err != nil {
		t.Fatal(err)
	}
	ds := m.GetDeviceSentMessage()
	if ds == nil {
		t.Fatal("missing deviceSentMessage")
	}
	if ds.GetDestinationJID() != "123@s.whatsapp.net" {
		t.Fatalf("destination = %q", ds.GetDestinationJID())
	}
	if ds.GetMessage().GetConversation() != "for my phone" {
		t.Fatalf("conversation = %q", ds.GetMessage().GetConversation())
	}
}

func TestWrapDeviceSentKeepsUnknownFields(t *testing.T) {
	// Field 99 is not declared; it must survive the round trip.
	inner := append(Text("x"), 0x9a, 0x06, 0x01, 0x07)
	wrapped, err := WrapDeviceSent("1@s.whatsapp.net", inner)
	if err != nil {
		t.Fatal(err)
	}
	m, err := Parse(wrapped)
	if err != nil {
		t.Fatal(err)
	}
	got, err := pb.Marshal(m.GetDeviceSentMessage().GetMessage())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, inner) {
		t.Fatalf("inner = %x, want %x", got, inner)
	}
}

func TestEmbedSenderKeyDistribution(t *testing.T) {
	msg, err := EmbedSenderKeyDistribution(Text("body"), "1-2@g.us", []byte{0x33, 1, 2})
	if err != nil {
		t.Fatal(err)
	}
	m, err := Parse(msg)
	if err != nil {
		t.Fatal(err)
	}
	if m.GetConversation() != "body" {
		t.Fatalf("conversation = %q", m.GetConversation())
	}
	skd := m.GetSenderKeyDistributionMessage()
	if skd.GetGroupID() != "1-2@g.us" {
		t.Fatalf("distribution = %v", skd)
	}
	if !bytes.Equal(skd.GetAxolotlSenderKeyDistributionMessage(), []byte{0x33, 1, 2}) {
		t.Fatalf("axolotl = %x", skd.GetAxolotlSenderKeyDistributionMessage())
	}

	data, err := SenderKeyDistributionOnly("g@g.us", []byte{1})
	if err != nil {
		t.Fatal(err)
	}
	only, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if only.Conversation != nil || only.GetSenderKeyDistributionMessage() == nil {
		t.Fatalf("unexpected %v", only)
	}
}

func TestEmbedSenderKeyDistributionMalformed(t *testing.T) {
	if _, err := EmbedSenderKeyDistribution([]byte{0x0a, 0x05}, "g@g.us", []byte{1}); !errors.Is(err, ErrMalformed) {
		t.Fatalf("err = %v, want ErrMalformed", err)
	}
}

func encode(t *testing.T, m *Message) []byte {
	t.Helper()
	b, err := pb.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestMediaType(t *testing.T) {
	tests := []struct {
		name string
		msg  *Message
		want string
	}{
		{"text", &Message{Conversation: pb.String("hi")}, ""},
		{"image", &Message{ImageMessage: &ImageMessage{}}, "image"},
		{"video", &Message{VideoMessage: &VideoMessage{}}, "video"},
		{"gif", &Message{VideoMessage: &VideoMessage{GifPlayback: pb.Bool(true)}}, "gif"},
		{"audio", &Message{AudioMessage: &AudioMessage{}}, "audio"},
		{"ptt", &Message{AudioMessage: &AudioMessage{PTT: pb.Bool(true)}}, "ptt"},
		{"image before gif", &Message{ImageMessage: &ImageMessage{}, VideoMessage: &VideoMessage{GifPlayback: pb.Bool(true)}}, "image"},
		{"vcard", &Message{ContactMessage: &ContactMessage{}}, "vcard"},
		{"document", &Message{DocumentMessage: &DocumentMessage{}}, "document"},
		{"contacts", &Message{ContactsArrayMessage: &ContactsArrayMessage{}}, "contact_array"},
		{"live location", &Message{LiveLocationMessage: &LiveLocationMessage{}}, "livelocation"},
		{"sticker", &Message{StickerMessage: &StickerMessage{}}, "sticker"},
		{"list", &Message{ListMessage: &ListMessage{}}, "list"},
		{"list response", &Message{ListResponseMessage: &ListResponseMessage{}}, "list_response"},
		{"buttons response", &Message{ButtonsResponseMessage: &ButtonsResponseMessage{}}, "buttons_response"},
		{"order", &Message{OrderMessage: &OrderMessage{}}, "order"},
		{"product", &Message{ProductMessage: &ProductMessage{}}, "product"},
		{"interactive response", &Message{InteractiveResponseMessage: &InteractiveResponseMessage{}}, "native_flow_response"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MediaType(encode(t, tt.msg)); got != tt.want {
				t.Fatalf("MediaType = %q, want %q", got, tt.want)
			}
		})
	}
	if got := MediaType([]byte{0x1a, 0x09}); got != "" {
		t.Fatalf("MediaType(truncated) = %q", got)
	}
}

func TestDeviceIdentity(t *testing.T) {
	d := &ADVSignedDeviceIdentity{
		Details:             []byte("details"),
		AccountSignatureKey: []byte("key"),
		AccountSignature:    []byte("asig"),
		DeviceSignature:     []byte("dsig"),
	}
	full, err := EncodeDeviceIdentity(d, true)
	if err != nil {
		t.Fatal(err)
	}
	got, err := DecodeDeviceIdentity(full)
	if err != nil {
		t.Fatal(err)
	}
	if !pb.Equal(got, d) {
		t.Fatalf("got %v", got)
	}
	short, err := EncodeDeviceIdentity(d, false)
	if err != nil {
		t.Fatal(err)
	}
	stripped, err := DecodeDeviceIdentity(short)
	if err != nil {
		t.Fatal(err)
	}
	if stripped.AccountSignatureKey != nil {
		t.Fatal("signature key included when not requested")
	}
	if d.AccountSignatureKey == nil {
		t.Fatal("encoding without the key modified the input")
	}
}
