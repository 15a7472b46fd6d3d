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

// retryFor has d drop its pending message and ask the sender to resend it.
func retryFor(t *testing.T, d *device, count int) binary.Node {
	t.Helper()
	inbox := d.tr.Inbox()
	require.Len(t, inbox, 1)
	require.NoError(t, d.enc.SendRetryReceipt(ctx, inbox[0], count))
	return inbox[0]
}

func pendingReceipt(t *testing.T, d *device) binary.Node {
	t.Helper()
	inbox := d.tr.Inbox()
	require.Len(t, inbox, 1)
	require.Equal(t, "receipt", inbox[0].Tag)
	return inbox[0]
}

func TestRetryReceiptNode(t *testing.T) {
	msg := binary.NewNode("message", binary.Attrs{"id": "ABC", "from": "120-1@g.us", "participant": "111:2@s.whatsapp.net", "t": "1700"})
	n := RetryReceiptNode(msg, 2, 0x01020304, time.Unix(5, 0))
	require.Equal(t, binary.Attrs{"id": "ABC", "type": "retry", "to": "120-1@g.us", "participant": "111:2@s.whatsapp.net"}, n.Attrs)
	retry, ok := n.GetChildByTag("retry")
	require.True(t, ok)
	require.Equal(t, binary.Attrs{"count": "2", "id": "ABC", "t": "1700", "v": "1"}, retry.Attrs)
	require.Equal(t, []byte{1, 2, 3, 4}, n.ChildBytes("registration"))

	direct := RetryReceiptNode(binary.NewNode("message", binary.Attrs{"id": "X", "from": "222@s.whatsapp.net"}), 1, 7, time.Unix(5, 0))
	require.Empty(t, direct.Attr("participant"))
	retry, _ = direct.GetChildByTag("retry")
	require.Equal(t, "5", retry.Attr("t"))
}

func TestDirectRetry(t *testing.T) {
	srv := fakeserver.New(nil)
	alice := newDevice(t, srv, "111@s.whatsapp.net", true)
	bob := newDevice(t, srv, "222@s.whatsapp.net", true)

	sent, err := alice.enc.Send(ctx, bob.me, waproto.Text("lost"), SendOptions{})
	require.NoError(t, err)
	retryFor(t, bob, 1)
	receipt := pendingReceipt(t, alice)
	require.Equal(t, bob.me.String(), receipt.Attr("from"))

	before := srv.Queries("encrypt")
	st, err := alice.enc.HandleRetryReceipt(ctx, receipt)
	require.NoError(t, err)
	require.NotNil(t, st)
	require.Equal(t, before+1, srv.Queries("encrypt"), "retry refetches the session")
	require.Equal(t, sent.ID, st.Node.Attr("id"))
	require.Equal(t, bob.me.String(), st.Node.Attr("to"))
	require.Equal(t, "false", st.Node.Attr("device_fanout"))
	require.Nil(t, participantJIDs(st.Node))
	enc, ok := st.Node.GetChildByTag("enc")
	require.True(t, ok)
	require.Equal(t, "1", enc.Attr("count"))
	checkDeviceIdentity(t, st.Node)

	got := bob.receive(t)
	require.Equal(t, []string{"lost"}, conversations(got))
	require.Equal(t, sent.ID, got[0].ID)
}

func TestRetryToOwnDevice(t *testing.T) {
	srv := fakeserver.New(nil)
	alice := newDevice(t, srv, "111:1@s.whatsapp.net", true)
	alicePrimary := newDevice(t, srv, "111@s.whatsapp.net", true)
	bob := newDevice(t, srv, "222@s.whatsapp.net", true)

	_, err := alice.enc.Send(ctx, bob.me, waproto.Text("note"), SendOptions{})
	require.NoError(t, err)
	bob.tr.Inbox()
	retryFor(t, alicePrimary, 1)

	st, err := alice.enc.HandleRetryReceipt(ctx, pendingReceipt(t, alice))
	require.NoError(t, err)
	require.Equal(t, alicePrimary.me.String(), st.Node.Attr("to"))
	require.Equal(t, bob.me.String(), st.Node.Attr("recipient"))

	got := alicePrimary.receive(t)
	require.Len(t, got, 1)
	require.True(t, got[0].FromMe)
	require.Equal(t, bob.me, got[0].Chat)
	require.Equal(t, "note", got[0].Message.GetConversation())
}

func TestGroupRetry(t *testing.T) {
	srv := fakeserver.New(nil)
	group := jid.MustParse("120-9@g.us")
	srv.AddGroup(groupOf(group.String(), "111@s.whatsapp.net", "222@s.whatsapp.net", "333@s.whatsapp.net"))
	alice := newDevice(t, srv, "111@s.whatsapp.net", true)
	bob := newDevice(t, srv, "222@s.whatsapp.net", true)
	carol := newDevice(t, srv, "333@s.whatsapp.net", true)

	sent, err := alice.enc.Send(ctx, group, waproto.Text("hello"), SendOptions{})
	require.NoError(t, err)
	require.Equal(t, []string{"hello"}, conversations(bob.receive(t)))
	msg := retryFor(t, carol, 1)
	require.Equal(t, alice.me.String(), msg.Attr("participant"))

	receipt := pendingReceipt(t, alice)
	require.Equal(t, group.String(), receipt.Attr("from"))
	require.Equal(t, carol.me.String(), receipt.Attr("participant"))

	st, err := alice.enc.HandleRetryReceipt(ctx, receipt)
	require.NoError(t, err)
	require.Equal(t, group.String(), st.Node.Attr("to"))
	require.Equal(t, carol.me.String(), st.Node.Attr("participant"))
	require.Equal(t, "pn", st.Node.Attr("addressing_mode"))
	require.Equal(t, 1, countTag(st.Node, "enc"))
	require.Nil(t, participantJIDs(st.Node))
	require.Equal(t, sent.ID, st.ID)

	got := carol.receive(t)
	require.Len(t, got, 1)
	require.Equal(t, "hello", got[0].Message.GetConversation())
	require.NotNil(t, got[0].Message.GetSenderKeyDistributionMessage())

	need, err := alice.tracker.DevicesNeedingKey(group, st.keyEpoch, []jid.JID{bob.me, carol.me})
	require.NoError(t, err)
	require.Empty(t, need)

	next, err := alice.enc.Send(ctx, group, waproto.Text("after"), SendOptions{})
	require.NoError(t, err)
	require.Equal(t, []string{"skmsg"}, encTypes(next.Node))
	require.Equal(t, []string{"after"}, conversations(carol.receive(t)))
	require.Equal(t, []string{"after"}, conversations(bob.receive(t)))
}

func TestRetryLimits(t *testing.T) {
	srv := fakeserver.New(nil)
	alice := newDevice(t, srv, "111@s.whatsapp.net", true)
	bob := newDevice(t, srv, "222@s.whatsapp.net", true)

	_, err := alice.enc.Send(ctx, bob.me, waproto.Text("x"), SendOptions{})
	require.NoError(t, err)
	retryFor(t, bob, MaxRetryCount+1)
	st, err := alice.enc.HandleRetryReceipt(ctx, pendingReceipt(t, alice))
	require.NoError(t, err)
	require.Nil(t, st)
	require.Empty(t, bob.tr.Inbox())

	unknown := binary.NewNode("receipt", binary.Attrs{"id": "nope", "type": "retry", "from": bob.me.String()},
		binary.NewNode("retry", binary.Attrs{"count": "1"}))
	_, err = alice.enc.HandleRetryReceipt(ctx, unknown)
	var assertion *AssertionError
	require.ErrorAs(t, err, &assertion)

	_, err = alice.enc.HandleRetryReceipt(ctx, binary.NewNode("receipt", binary.Attrs{"id": "1", "type": "read"}))
	require.ErrorAs(t, err, &assertion)
}

func TestRetryTargetMustBeDevice(t *testing.T) {
	srv := fakeserver.New(nil)
	alice := newDevice(t, srv, "111@s.whatsapp.net", true)
	group := jid.MustParse("120-1@g.us")

	_, err := alice.enc.Send(ctx, group, waproto.Text("x"), SendOptions{Retry: &RetryTarget{Device: group}})
	var assertion *AssertionError
	require.ErrorAs(t, err, &assertion)

	_, err = alice.enc.Send(ctx, jid.MustParse("222@s.whatsapp.net"), waproto.Text("x"), SendOptions{Retry: &RetryTarget{Device: alice.me}})
	require.ErrorAs(t, err, &assertion)
}
