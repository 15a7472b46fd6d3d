package fanout

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gwillem/whatsapp-go/internal/binary"
	"github.com/gwillem/whatsapp-go/internal/jid"
)

// Receipt types. Delivery receipts carry no type.
const (
	ReceiptDelivery = ""
	ReceiptRead     = "read"
	ReceiptReadSelf = "read-self"
	ReceiptSender   = "sender"
	ReceiptRetry    = "retry"
)

// ErrNoReceiptIDs is returned for a receipt acknowledging nothing.
var ErrNoReceiptIDs = errors.New("fanout: receipt without message ids")

// ReceiptNode acknowledges ids in chat. participant is the author device for
// group messages and may be zero. Extra ids go into a list child.
func ReceiptNode(chat, participant jid.JID, ids []string, typ string, now time.Time) (binary.Node, error) {
	if len(ids) == 0 {
		return binary.Node{}, ErrNoReceiptIDs
	}
	attrs := binary.Attrs{"id": ids[0]}
	if typ == ReceiptRead || typ == ReceiptReadSelf {
		attrs["t"] = strconv.FormatInt(now.Unix(), 10)
	}
	if typ == ReceiptSender && chat.IsUser() {
		attrs["recipient"] = chat.String()
		attrs["to"] = participant.String()
	} else {
		attrs["to"] = chat.String()
		if !participant.IsEmpty() {
			attrs["participant"] = participant.String()
		}
	}
	if typ != ReceiptDelivery {
		attrs["type"] = typ
	}
	var children []binary.Node
	if len(ids) > 1 {
		items := make([]binary.Node, len(ids)-1)
		for i, id := range ids[1:] {
			items[i] = binary.NewNode("item", binary.Attrs{"id": id})
		}
		children = append(children, binary.NewNode("list", nil, items...))
	}
	return binary.NewNode("receipt", attrs, children...), nil
}

// SendReceipt sends a receipt of typ for ids. Nothing is sent for no ids.
func (e *Encryptor) SendReceipt(ctx context.Context, chat, participant jid.JID, ids []string, typ string) error {
	if len(ids) == 0 {
		return nil
	}
	node, err := ReceiptNode(chat, participant, ids, typ, time.Now())
	if err != nil {
		return err
	}
	if err := e.tr.Send(ctx, node); err != nil {
		return fmt.Errorf("fanout: send %q receipt: %w", typ, err)
	}
	e.log.WithFields(logrus.Fields{"jid": chat.String(), "type": typ, "count": len(ids)}).Debug("sent receipt")
	return nil
}

// SendReceiptsFor acknowledges decrypted messages: a delivery receipt to
// peers, a sender receipt for messages our own devices sent. Envelopes of
// the same stanza are acknowledged once.
func (e *Encryptor) SendReceiptsFor(ctx context.Context, msgs []*Decrypted) error {
	seen := make(map[string]bool, len(msgs))
	for _, d := range msgs {
		key := d.Sender.String() + "/" + d.ID
		if seen[key] {
			continue
		}
		seen[key] = true
		typ := ReceiptDelivery
		chat, participant := d.Chat, jid.JID{}
		if chat.IsGroup() {
			participant = d.Sender
		}
		if d.FromMe {
			typ = ReceiptSender
			participant = d.Sender
		}
		if err := e.SendReceipt(ctx, chat, participant, []string{d.ID}, typ); err != nil {
			return err
		}
	}
	return nil
}
