package fanout

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gwillem/whatsapp-go/internal/binary"
	"github.com/gwillem/whatsapp-go/internal/jid"
)

// RetryReceiptNode asks the sender of msg to resend it. count is the
// number of the attempt, starting at 1.
func RetryReceiptNode(msg binary.Node, count int, registrationID uint32, now time.Time) binary.Node {
	id := msg.Attr("id")
	attrs := binary.Attrs{"id": id, "type": ReceiptRetry, "to": msg.Attr("from")}
	if p := msg.Attr("participant"); p != "" {
		attrs["participant"] = p
	}
	t := msg.Attr("t")
	if t == "" {
		t = strconv.FormatInt(now.Unix(), 10)
	}
	return binary.NewNode("receipt", attrs,
		binary.NewNode("retry", binary.Attrs{"count": strconv.Itoa(count), "id": id, "t": t, "v": "1"}),
		binary.NewBytesNode("registration", nil, binary.EncodeUint(registrationID, 4)),
	)
}

// SendRetryReceipt asks the sender of an undecryptable msg to resend.
func (e *Encryptor) SendRetryReceipt(ctx context.Context, msg binary.Node, count int) error {
	if err := e.tr.Send(ctx, RetryReceiptNode(msg, count, e.repo.RegistrationID(), time.Now())); err != nil {
		return fmt.Errorf("fanout: send retry receipt: %w", err)
	}
	e.log.WithFields(logrus.Fields{"msg_id": msg.Attr("id"), "count": count}).Info("sent retry receipt")
	return nil
}

// HandleRetryReceipt answers a retry receipt by refetching the requesting
// device's session and resending the cached message to that device alone.
// It returns nil, nil for retries past MaxRetryCount.
func (e *Encryptor) HandleRetryReceipt(ctx context.Context, receipt binary.Node) (*Stanza, error) {
	if receipt.Tag != "receipt" || receipt.Attr("type") != ReceiptRetry {
		return nil, &AssertionError{Message: "not a retry receipt"}
	}
	id := receipt.Attr("id")
	from, err := jid.Parse(receipt.Attr("from"))
	if err != nil {
		return nil, fmt.Errorf("fanout: retry receipt %s: %w", id, err)
	}
	device := from
	if p := receipt.Attr("participant"); p != "" {
		if device, err = jid.Parse(p); err != nil {
			return nil, fmt.Errorf("fanout: retry receipt %s participant: %w", id, err)
		}
	}
	count := 1
	if r, ok := receipt.GetChildByTag("retry"); ok {
		if n, err := strconv.Atoi(r.Attr("count")); err == nil && n > 0 {
			count = n
		}
	}
	log := e.log.WithFields(logrus.Fields{"msg_id": id, "jid": device.String(), "count": count})
	if count > MaxRetryCount {
		log.Warn("retry count exceeded, not resending")
		return nil, nil
	}
	sent, ok := e.sent.Get(id)
	if !ok {
		return nil, &AssertionError{Message: "retry for unknown message " + id}
	}

	if _, err := e.EnsureSessions(ctx, []jid.JID{device}, true); err != nil {
		return nil, err
	}
	if sent.to.IsGroup() {
		unlock := e.senderKeys.Lock(sent.to)
		err := e.senderKeys.Forget(sent.to, device)
		unlock()
		if err != nil {
			return nil, err
		}
	}
	log.Info("resending message")
	return e.Send(ctx, sent.to, sent.message, SendOptions{ID: id, Retry: &RetryTarget{Device: device, Count: count}})
}
