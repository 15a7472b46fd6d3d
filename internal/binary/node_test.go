package binary

import (
	"bytes"
	"errors"
	"testing"
)

func sampleStanza() Node {
	enc := NewBytesNode("enc", Attrs{"v": "2", "type": "pkmsg"}, []byte{1, 2, 3})
	return NewNode("message", Attrs{"id": "ABC", "to": "123@s.whatsapp.net", "type": "text"},
		NewNode("participants", nil,
			NewNode("to", Attrs{"jid": "123:1@s.whatsapp.net"}, enc),
		),
		Node{Tag: "device-identity", Content: Bytes{9, 9}},
		Node{Tag: "note", Content: Text("hi")},
		Node{Tag: "empty"},
	)
}

func TestCodecRoundTrip(t *testing.T) {
	in := sampleStanza()
	data, err := Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	out, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out.String() != in.String() {
		t.Fatalf("round trip mismatch:\n%s\n%s", in, out)
	}
	enc, ok := out.GetChildByTag("participants", "to", "enc")
	if !ok {
		t.Fatal("missing participants/to/enc")
	}
	if !bytes.Equal(enc.Bytes(), []byte{1, 2, 3}) {
		t.Fatalf("enc content = %x", enc.Bytes())
	}
	empty, _ := out.GetChildByTag("empty")
	if empty.Content != nil {
		t.Fatalf("empty node content = %#v", empty.Content)
	}
}

func TestCodecRejectsMissingTag(t *testing.T) {
	if _, err := Marshal(Node{}); err == nil {
		t.Fatal("expected error for node without tag")
	}
	if _, err := Unmarshal([]byte{0x30, 0x01}); err == nil {
		t.Fatal("expected error for node without tag")
	}
}

func TestUint(t *testing.T) {
	n := NewBytesNode("id", nil, EncodeUint(0x010203, 3))
	v, err := n.Uint(3)
	if err != nil {
		t.Fatalf("Uint: %v", err)
	}
	if v != 0x010203 {
		t.Fatalf("Uint = %x", v)
	}
	if _, err := n.Uint(4); err == nil {
		t.Fatal("expected length error")
	}
}

func TestAssertErrorFree(t *testing.T) {
	ok := NewNode("iq", Attrs{"type": "result"})
	if err := AssertErrorFree(&ok); err != nil {
		t.Fatalf("AssertErrorFree: %v", err)
	}
	bad := NewNode("iq", Attrs{"type": "error"}, NewNode("error", Attrs{"code": "406", "text": "not-acceptable"}))
	err := AssertErrorFree(&bad)
	var rej *ServerRejectedError
	if !errors.As(err, &rej) {
		t.Fatalf("got %v, want ServerRejectedError", err)
	}
	if !rej.IsNotAcceptable() {
		t.Fatalf("IsNotAcceptable false for %v", rej)
	}
}

func TestCodecWireFormat(t *testing.T) {
	data, err := Marshal(NewNode("iq", Attrs{"type": "get"}))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := []byte{
		0x0a, 0x02, 'i', 'q',
		0x12, 0x0b, 0x0a, 0x04, 't', 'y', 'p', 'e', 0x12, 0x03, 'g', 'e', 't',
		0x30, 0x00,
	}
	if !bytes.Equal(data, want) {
		t.Fatalf("got %x, want %x", data, want)
	}
}

func TestCodecDepthLimit(t *testing.T) {
	n := NewNode("leaf", nil)
	for i := 0; i < maxDepth+2; i++ {
		n = NewNode("wrap", nil, n)
	}
	if _, err := Marshal(n); err == nil {
		t.Fatal("expected depth error")
	}
}

func TestCodecRejectsTruncatedFrame(t *testing.T) {
	data, err := Marshal(sampleStanza())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if _, err := Unmarshal(data[:len(data)-3]); err == nil {
		t.Fatal("expected error for truncated frame")
	}
}
