package fanout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gwillem/whatsapp-go/internal/binary"
	"github.com/gwillem/whatsapp-go/internal/fakeserver"
	"github.com/gwillem/whatsapp-go/internal/jid"
	"github.com/gwillem/whatsapp-go/internal/waproto"
)

func TestReceiptNode(t *testing.T) {
	now := time.Unix(1700000000, 0)
	group := jid.MustParse("120-1@g.us")
	author := jid.MustParse("111:3@s.whatsapp.net")
	peer := jid.MustParse("222@s.whatsapp.net")

	tests := []struct {
		name        string
		chat        jid.JID
		participant jid.JID
		ids         []string
		typ         string
		attrs       binary.Attrs
		items       int
	}{
		{
			name:  "delivery",
			chat:  peer,
			ids:   []string{"A"},
			typ:   ReceiptDelivery,
			attrs: binary.Attrs{"id": "A", "to": "222@s.whatsapp.net"},
		},
		{
			name:        "group read",
			chat:        group,
			participant: author,
			ids:         []string{"A", "B", "C"},
			typ:         ReceiptRead,
			attrs:       binary.Attrs{"id": "A", "to": "120-1@g.us", "participant": "111:3@s.whatsapp.net", "type": "read", "t": "1700000000"},
			items:       2,
		},
		{
			name:        "sender",
			chat:        peer,
			participant: author,
			ids:         []string{"A"},
			typ:         ReceiptSender,
			attrs:       binary.Attrs{"id": "A", "to": "111:3@s.whatsapp.net", "recipient": "222@s.whatsapp.net", "type": "sender"},
		},
		{
			name:  "read self",
			chat:  peer,
			ids:   []string{"A"},
			typ:   ReceiptReadSelf,
			attrs: binary.Attrs{"id": "A", "to": "222@s.whatsapp.net", "type": "read-self", "t": "1700000000"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := ReceiptNode(tt.chat, tt.participant, tt.ids, tt.typ, now)
			require.NoError(t, err)
			require.Equal(t, tt.attrs, node.Attrs)
			list, ok := node.GetChildByTag("list")
			require.Equal(t, tt.items > 0, ok)
			require.Len(t, list.GetChildrenByTag("item"), tt.items)
		})
	}
}

func TestReceiptNodeWithoutIDs(t *testing.T) {
	for _, ids := range [][]string{nil, {}} {
		_, err := ReceiptNode(jid.MustParse("222@s.whatsapp.net"), jid.JID{}, ids, ReceiptRead, time.Now())
		require.ErrorIs(t, err, ErrNoReceiptIDs)
	}
}

func TestSendReceiptsFor(t *testing.T) {
	srv := fakeserver.New(nil)
	alice := newDevice(t, srv, "111@s.whatsapp.net", true)
	bob := newDevice(t, srv, "222@s.whatsapp.net", true)

	sent, err := alice.enc.Send(ctx, bob.me, waproto.Text("hi"), SendOptions{})
	require.NoError(t, err)
	got := bob.receive(t)
	require.NoError(t, bob.enc.SendReceiptsFor(ctx, append(got, got...)))

	inbox := alice.tr.Inbox()
	require.Len(t, inbox, 1)
	require.Equal(t, "receipt", inbox[0].Tag)
	require.Equal(t, sent.ID, inbox[0].Attr("id"))
	require.Equal(t, bob.me.String(), inbox[0].Attr("from"))
	require.Empty(t, inbox[0].Attr("type"))

	require.NoError(t, bob.enc.SendReceipt(ctx, alice.me, jid.JID{}, nil, ReceiptRead))
	require.Empty(t, alice.tr.Inbox())
}

func TestSendReceiptsForOwnDevice(t *testing.T) {
	srv := fakeserver.New(nil)
	alice := newDevice(t, srv, "111:1@s.whatsapp.net", true)
	alicePrimary := newDevice(t, srv, "111@s.whatsapp.net", true)
	newDevice(t, srv, "222@s.whatsapp.net", true)

	_, err := alice.enc.Send(ctx, jid.MustParse("222@s.whatsapp.net"), waproto.Text("hi"), SendOptions{})
	require.NoError(t, err)
	got := alicePrimary.receive(t)
	require.NoError(t, alicePrimary.enc.SendReceiptsFor(ctx, got))

	inbox := alice.tr.Inbox()
	require.Len(t, inbox, 1)
	require.Equal(t, "sender", inbox[0].Attr("type"))
	require.Equal(t, "222@s.whatsapp.net", inbox[0].Attr("recipient"))
}

func TestReadMessagesFollowsPrivacy(t *testing.T) {
	tests := []struct {
		setting string
		want    string
	}{
		{PrivacyAll, ReceiptRead},
		{PrivacyNone, ReceiptReadSelf},
		{"", ReceiptReadSelf},
	}
	for _, tt := range tests {
		t.Run("readreceipts="+tt.setting, func(t *testing.T) {
			srv := fakeserver.New(nil)
			if tt.setting != "" {
				srv.SetPrivacy(PrivacyReadReceipts, tt.setting)
			}
			alice := newDevice(t, srv, "111@s.whatsapp.net", true)
			bob := newDevice(t, srv, "222@s.whatsapp.net", true)

			_, err := alice.enc.Send(ctx, bob.me, waproto.Text("one"), SendOptions{})
			require.NoError(t, err)
			_, err = alice.enc.Send(ctx, bob.me, waproto.Text("two"), SendOptions{})
			require.NoError(t, err)
			var keys []MessageKey
			for _, d := range bob.receive(t) {
				keys = append(keys, d.Key())
			}
			require.Len(t, keys, 2)
			keys = append(keys, MessageKey{Chat: alice.me, ID: "mine", FromMe: true})
			require.NoError(t, bob.enc.ReadMessages(ctx, keys))

			inbox := alice.tr.Inbox()
			require.Len(t, inbox, 1, "receipts for one chat are batched")
			require.Equal(t, tt.want, inbox[0].Attr("type"))
			require.Equal(t, keys[0].ID, inbox[0].Attr("id"))
			list, ok := inbox[0].GetChildByTag("list")
			require.True(t, ok)
			items := list.GetChildrenByTag("item")
			require.Len(t, items, 1)
			require.Equal(t, keys[1].ID, items[0].Attr("id"))

			// Settings are fetched once.
			require.NoError(t, bob.enc.ReadMessages(ctx, keys[:1]))
			require.Equal(t, 1, srv.Queries("privacy"))
		})
	}
}

func TestAggregateReceipts(t *testing.T) {
	group := jid.MustParse("120-1@g.us")
	a := jid.MustParse("111:1@s.whatsapp.net")
	b := jid.MustParse("222@s.whatsapp.net")
	peer := jid.MustParse("333@s.whatsapp.net")
	got := aggregateReceipts([]MessageKey{
		{Chat: group, Participant: a, ID: "1"},
		{Chat: peer, ID: "2"},
		{Chat: group, Participant: b, ID: "3"},
		{Chat: group, Participant: a, ID: "4"},
		{Chat: peer, ID: "5", FromMe: true},
	})
	require.Len(t, got, 3)
	require.Equal(t, []string{"1", "4"}, got[0].ids)
	require.Equal(t, a, got[0].participant)
	require.Equal(t, []string{"2"}, got[1].ids)
	require.True(t, got[1].participant.IsEmpty())
	require.Equal(t, []string{"3"}, got[2].ids)
}

func TestPrivacyTokens(t *testing.T) {
	now := time.Unix(1700000000, 0)
	node := PrivacyTokensNode([]jid.JID{jid.MustParse("222:4@s.whatsapp.net")}, now)
	require.Equal(t, binary.Attrs{"xmlns": "privacy", "to": jid.ServerJID.String(), "type": "set"}, node.Attrs)
	tokens, ok := node.GetChildByTag("tokens")
	require.True(t, ok)
	list := tokens.GetChildrenByTag("token")
	require.Len(t, list, 1)
	require.Equal(t, binary.Attrs{"jid": "222@s.whatsapp.net", "t": "1700000000", "type": "trusted_contact"}, list[0].Attrs)

	srv := fakeserver.New(nil)
	alice := newDevice(t, srv, "111@s.whatsapp.net", true)
	_, err := alice.enc.SendPrivacyTokens(ctx, []jid.JID{jid.MustParse("222@s.whatsapp.net"), jid.MustParse("333:1@s.whatsapp.net")})
	require.NoError(t, err)
	require.Equal(t, []string{"222@s.whatsapp.net", "333@s.whatsapp.net"}, srv.PrivacyTokens(alice.me))

	_, err = alice.enc.SendPrivacyTokens(ctx, nil)
	require.NoError(t, err)
	require.Equal(t, 1, srv.Queries("privacy"))
}
