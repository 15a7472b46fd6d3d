package fanout

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/gwillem/whatsapp-go/internal/binary"
	"github.com/gwillem/whatsapp-go/internal/jid"
	"github.com/gwillem/whatsapp-go/internal/waproto"
)

// Stanza is a built message stanza and what sending it delivers.
type Stanza struct {
	Node      binary.Node
	ID        string
	To        jid.JID
	Envelopes int

	keyGroup   jid.JID
	keyEpoch   uint32
	keyDevices []jid.JID
}

// IsEmpty reports a stanza without encrypted envelopes. It must not be sent.
func (s *Stanza) IsEmpty() bool { return s.Envelopes == 0 }

// HasPreKeyMessage reports whether any envelope opens a new session.
func (s *Stanza) HasPreKeyMessage() bool {
	_, ok := s.Node.GetChildByTag("device-identity")
	return ok
}

// NewMessageID returns an id in the format clients use for messages.
func NewMessageID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return "3EB0" + strings.ToUpper(hex.EncodeToString(b[:]))
}

func encNode(typ string, ciphertext []byte, extra binary.Attrs) binary.Node {
	attrs := binary.Attrs{"v": "2", "type": typ}
	for k, v := range extra {
		attrs[k] = v
	}
	return binary.NewBytesNode("enc", attrs, ciphertext)
}

func participantNode(device jid.JID, enc binary.Node) binary.Node {
	return binary.NewNode("to", binary.Attrs{"jid": device.String()}, enc)
}

// mediaAttrs returns the enc attributes describing message's media.
func mediaAttrs(message []byte) binary.Attrs {
	if mt := waproto.MediaType(message); mt != "" {
		return binary.Attrs{"mediatype": mt}
	}
	return nil
}

func withCount(attrs binary.Attrs, count int) binary.Attrs {
	out := binary.Attrs{}
	for k, v := range attrs {
		out[k] = v
	}
	if count > 0 {
		out["count"] = strconv.Itoa(count)
	}
	return out
}

// messageAttrs merges the base attributes with caller supplied extras.
// Extras never replace id or to.
func messageAttrs(id string, to jid.JID, extra binary.Attrs) binary.Attrs {
	attrs := binary.Attrs{"type": "text"}
	for k, v := range extra {
		attrs[k] = v
	}
	attrs["id"] = id
	attrs["to"] = to.String()
	return attrs
}

func (e *Encryptor) deviceIdentityNode() (binary.Node, error) {
	c := e.repo.Creds()
	if c.Account == nil {
		return binary.Node{}, &AssertionError{Message: "no signed device identity"}
	}
	data, err := waproto.EncodeDeviceIdentity(c.Account, true)
	if err != nil {
		return binary.Node{}, err
	}
	return binary.NewBytesNode("device-identity", nil, data), nil
}

// assemble appends the participants and device-identity children.
func (e *Encryptor) assemble(attrs binary.Attrs, body []binary.Node, participants []binary.Node, preKey bool) (binary.Node, error) {
	children := append([]binary.Node(nil), body...)
	if len(participants) > 0 {
		children = append(children, binary.NewNode("participants", nil, participants...))
	}
	if preKey {
		di, err := e.deviceIdentityNode()
		if err != nil {
			return binary.Node{}, err
		}
		children = append(children, di)
	}
	return binary.NewNode("message", attrs, children...), nil
}

func countEnvelopes(node binary.Node) int {
	n := len(node.GetChildrenByTag("enc"))
	if p, ok := node.GetChildByTag("participants"); ok {
		n += len(p.GetChildrenByTag("to"))
	}
	return n
}
