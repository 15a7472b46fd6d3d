package fanout

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/gwillem/whatsapp-go/internal/binary"
	"github.com/gwillem/whatsapp-go/internal/jid"
	"github.com/gwillem/whatsapp-go/internal/signalrepo"
	"github.com/gwillem/whatsapp-go/internal/waproto"
)

// Decrypted is one plaintext recovered from an inbound message stanza.
type Decrypted struct {
	ID string
	// Chat is the conversation: the peer user or the group. For messages
	// our other devices sent, it is the peer they sent to.
	Chat jid.JID
	// Sender is the device that encrypted the envelope.
	Sender  jid.JID
	Type    string
	FromMe  bool
	Message *waproto.Message
}

// DecryptError is a failed envelope of an inbound stanza.
type DecryptError struct {
	ID     string
	Sender jid.JID
	Type   string
	Err    error
}

func (e *DecryptError) Error() string {
	return fmt.Sprintf("fanout: decrypt %s %s from %s: %v", e.Type, e.ID, e.Sender, e.Err)
}

func (e *DecryptError) Unwrap() error { return e.Err }

// Decrypt decrypts every enc child of a message stanza. Pairwise envelopes
// are handled before the group body so a distribution message they carry is
// installed first. Distribution messages are processed as a side effect.
// On failure the plaintexts recovered so far are returned with a
// *DecryptError.
func (e *Encryptor) Decrypt(node binary.Node) ([]*Decrypted, error) {
	if node.Tag != "message" {
		return nil, fmt.Errorf("fanout: decrypt <%s>", node.Tag)
	}
	id := node.Attr("id")
	from, err := jid.Parse(node.Attr("from"))
	if err != nil {
		return nil, fmt.Errorf("fanout: message %s: %w", id, err)
	}
	chat, sender := from.ToNonAD(), from
	if from.IsGroup() {
		chat = from
		if sender, err = jid.Parse(node.Attr("participant")); err != nil {
			return nil, fmt.Errorf("fanout: group message %s without participant: %w", id, err)
		}
	}
	me := e.repo.Me()

	encs := node.GetChildrenByTag("enc")
	sort.SliceStable(encs, func(i, j int) bool {
		return encs[i].Attr("type") != signalrepo.TypeSenderKey && encs[j].Attr("type") == signalrepo.TypeSenderKey
	})

	var out []*Decrypted
	for _, enc := range encs {
		typ := enc.Attr("type")
		d, err := e.decryptEnvelope(chat, sender, typ, enc.Bytes())
		e.metrics.decrypted.WithLabelValues(typ, result(err)).Inc()
		if err != nil {
			return out, &DecryptError{ID: id, Sender: sender, Type: typ, Err: err}
		}
		d.ID = id
		if d.Message.GetDeviceSentMessage() != nil && sender.SameUser(me) {
			if err := unwrapDeviceSent(d); err != nil {
				return out, &DecryptError{ID: id, Sender: sender, Type: typ, Err: err}
			}
		}
		out = append(out, d)
	}
	e.log.WithFields(logrus.Fields{"msg_id": id, "jid": sender.String(), "count": len(out)}).Debug("decrypted message")
	return out, nil
}

func (e *Encryptor) decryptEnvelope(chat, sender jid.JID, typ string, ciphertext []byte) (*Decrypted, error) {
	var (
		padded []byte
		err    error
	)
	switch typ {
	case signalrepo.TypePreKey, signalrepo.TypeMessage:
		padded, err = e.repo.DecryptMessage(sender, typ, ciphertext)
	case signalrepo.TypeSenderKey:
		if !chat.IsGroup() {
			return nil, fmt.Errorf("skmsg outside a group")
		}
		padded, err = e.repo.DecryptGroupMessage(chat, sender, ciphertext)
	default:
		return nil, fmt.Errorf("unknown enc type %q", typ)
	}
	if err != nil {
		return nil, err
	}
	plain, err := waproto.Unpad(padded)
	if err != nil {
		return nil, err
	}
	msg, err := waproto.Parse(plain)
	if err != nil {
		return nil, err
	}
	if skd := msg.GetSenderKeyDistributionMessage(); skd != nil {
		group := chat
		if id := skd.GetGroupID(); id != "" {
			if group, err = jid.Parse(id); err != nil {
				return nil, fmt.Errorf("distribution group: %w", err)
			}
		}
		if err := e.repo.ProcessSenderKeyDistributionMessage(group, sender, skd.GetAxolotlSenderKeyDistributionMessage()); err != nil {
			return nil, fmt.Errorf("process distribution: %w", err)
		}
	}
	return &Decrypted{Chat: chat, Sender: sender, Type: typ, Message: msg}, nil
}

func unwrapDeviceSent(d *Decrypted) error {
	ds := d.Message.GetDeviceSentMessage()
	dest, err := jid.Parse(ds.GetDestinationJID())
	if err != nil {
		return fmt.Errorf("device sent destination: %w", err)
	}
	inner := ds.GetMessage()
	if inner == nil {
		inner = new(waproto.Message)
	}
	d.Chat, d.FromMe, d.Message = dest, true, inner
	return nil
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
