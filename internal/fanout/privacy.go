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

// Privacy setting categories and values consulted by the client.
const (
	PrivacyReadReceipts = "readreceipts"
	PrivacyAll          = "all"
	PrivacyNone         = "none"
)

// PrivacySettings maps a privacy category to its value.
type PrivacySettings map[string]string

// MessageKey identifies a received message for bulk receipts. Participant
// is the author device in groups.
type MessageKey struct {
	Chat        jid.JID
	Participant jid.JID
	ID          string
	FromMe      bool
}

// Key returns the key acknowledging d.
func (d *Decrypted) Key() MessageKey {
	k := MessageKey{Chat: d.Chat, ID: d.ID, FromMe: d.FromMe}
	if d.Chat.IsGroup() {
		k.Participant = d.Sender
	}
	return k
}

// PrivacySettingsQuery asks the server for the account privacy settings.
func PrivacySettingsQuery() binary.Node {
	return binary.NewNode("iq", binary.Attrs{"xmlns": "privacy", "to": jid.ServerJID.String(), "type": "get"},
		binary.NewNode("privacy", nil))
}

// ParsePrivacySettings reads the category children of a privacy result.
func ParsePrivacySettings(resp binary.Node) PrivacySettings {
	out := make(PrivacySettings)
	p, ok := resp.GetChildByTag("privacy")
	if !ok {
		return out
	}
	for _, c := range p.GetChildrenByTag("category") {
		if name := c.Attr("name"); name != "" {
			out[name] = c.Attr("value")
		}
	}
	return out
}

// FetchPrivacySettings returns the privacy settings, querying the server on
// first use or when force is set.
func (e *Encryptor) FetchPrivacySettings(ctx context.Context, force bool) (PrivacySettings, error) {
	e.privacyMu.Lock()
	defer e.privacyMu.Unlock()
	if e.privacy != nil && !force {
		return e.privacy, nil
	}
	resp, err := e.tr.Query(ctx, PrivacySettingsQuery())
	if err != nil {
		return nil, fmt.Errorf("fanout: privacy settings: %w", err)
	}
	if err := binary.AssertErrorFree(&resp); err != nil {
		return nil, fmt.Errorf("fanout: privacy settings: %w", err)
	}
	e.privacy = ParsePrivacySettings(resp)
	e.log.WithField("count", len(e.privacy)).Debug("fetched privacy settings")
	return e.privacy, nil
}

// ReadMessages marks keys as read. When the account hides its read receipts
// only our own devices are told, with read-self receipts. Keys we sent are
// skipped; the rest are grouped per chat and author.
func (e *Encryptor) ReadMessages(ctx context.Context, keys []MessageKey) error {
	settings, err := e.FetchPrivacySettings(ctx, false)
	if err != nil {
		return err
	}
	typ := ReceiptReadSelf
	if settings[PrivacyReadReceipts] == PrivacyAll {
		typ = ReceiptRead
	}
	for _, r := range aggregateReceipts(keys) {
		if err := e.SendReceipt(ctx, r.chat, r.participant, r.ids, typ); err != nil {
			return err
		}
	}
	return nil
}

type receiptBatch struct {
	chat, participant jid.JID
	ids               []string
}

// aggregateReceipts groups keys not from us by chat and participant, in
// order of first appearance.
func aggregateReceipts(keys []MessageKey) []*receiptBatch {
	type key struct{ chat, participant jid.JID }
	index := make(map[key]*receiptBatch)
	var out []*receiptBatch
	for _, k := range keys {
		if k.FromMe {
			continue
		}
		bk := key{k.Chat, k.Participant}
		b, ok := index[bk]
		if !ok {
			b = &receiptBatch{chat: k.Chat, participant: k.Participant}
			index[bk] = b
			out = append(out, b)
		}
		b.ids = append(b.ids, k.ID)
	}
	return out
}

// PrivacyTokensNode issues trusted-contact tokens for users.
func PrivacyTokensNode(users []jid.JID, now time.Time) binary.Node {
	t := strconv.FormatInt(now.Unix(), 10)
	tokens := make([]binary.Node, len(users))
	for i, u := range users {
		tokens[i] = binary.NewNode("token", binary.Attrs{"jid": u.ToNonAD().String(), "t": t, "type": "trusted_contact"})
	}
	return binary.NewNode("iq", binary.Attrs{"xmlns": "privacy", "to": jid.ServerJID.String(), "type": "set"},
		binary.NewNode("tokens", nil, tokens...))
}

// SendPrivacyTokens issues trusted-contact tokens for users and returns the
// server's answer.
func (e *Encryptor) SendPrivacyTokens(ctx context.Context, users []jid.JID) (binary.Node, error) {
	if len(users) == 0 {
		return binary.Node{}, nil
	}
	resp, err := e.tr.Query(ctx, PrivacyTokensNode(users, time.Now()))
	if err != nil {
		return binary.Node{}, fmt.Errorf("fanout: privacy tokens: %w", err)
	}
	if err := binary.AssertErrorFree(&resp); err != nil {
		return resp, fmt.Errorf("fanout: privacy tokens: %w", err)
	}
	e.log.WithFields(logrus.Fields{"count": len(users)}).Debug("issued privacy tokens")
	return resp, nil
}
