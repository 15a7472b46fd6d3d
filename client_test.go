package whatsapp

import (
	"context"
	"errors"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gwillem/whatsapp-go/internal/binary"
	"github.com/gwillem/whatsapp-go/internal/fakeserver"
	"github.com/gwillem/whatsapp-go/internal/fanout"
	"github.com/gwillem/whatsapp-go/internal/jid"
	"github.com/gwillem/whatsapp-go/internal/store"
)

// newTestClient initializes a device on srv with in-memory storage.
func newTestClient(t *testing.T, srv *fakeserver.Server, addr string) (*Client, *fakeserver.Endpoint) {
	t.Helper()
	me := jid.MustParse(addr)
	ep := srv.Endpoint(me)
	c := NewClient(WithKeyStore(store.NewMemory()), WithTransport(ep), WithPreKeyBatch(5))
	if err := c.Init(context.Background(), me); err != nil {
		t.Fatalf("Init %s: %v", addr, err)
	}
	t.Cleanup(func() { c.Close() })
	return c, ep
}

// deliver feeds every node queued for ep into c.
func deliver(t *testing.T, c *Client, ep *fakeserver.Endpoint) []Message {
	t.Helper()
	ctx := context.Background()
	var out []Message
	for _, n := range ep.Inbox() {
		switch n.Tag {
		case "message":
			msgs, err := c.HandleMessage(ctx, n)
			if err != nil {
				t.Fatalf("HandleMessage: %v", err)
			}
			out = append(out, msgs...)
		case "receipt":
			if err := c.HandleReceipt(ctx, n); err != nil {
				t.Fatalf("HandleReceipt: %v", err)
			}
		}
	}
	return out
}

func TestClientNotLoaded(t *testing.T) {
	c := NewClient(WithKeyStore(store.NewMemory()))
	if _, err := c.SendText(context.Background(), "222@s.whatsapp.net", "hi"); err == nil {
		t.Fatal("SendText before Init should fail")
	}
	if err := c.Load(context.Background()); err == nil || !strings.Contains(err.Error(), "no account") {
		t.Fatalf("Load without credentials: got %v", err)
	}
}

func TestClientSendText(t *testing.T) {
	srv := fakeserver.New(nil)
	alice, aliceEP := newTestClient(t, srv, "111@s.whatsapp.net")
	bob, bobEP := newTestClient(t, srv, "222@s.whatsapp.net")

	res, err := alice.SendText(context.Background(), "222@s.whatsapp.net", "hello bob")
	if err != nil {
		t.Fatalf("SendText: %v", err)
	}
	if res.Envelopes != 1 {
		t.Fatalf("envelopes: got %d, want 1", res.Envelopes)
	}

	msgs := deliver(t, bob, bobEP)
	if len(msgs) != 1 || msgs[0].Text != "hello bob" {
		t.Fatalf("bob got %+v", msgs)
	}
	if msgs[0].ID != res.ID || msgs[0].Sender != alice.Me() || msgs[0].FromMe {
		t.Fatalf("unexpected message %+v", msgs[0])
	}
	if msgs[0].Timestamp.IsZero() {
		t.Fatal("timestamp not set")
	}

	// Bob's delivery receipt reaches alice.
	inbox := aliceEP.Inbox()
	if len(inbox) != 1 || inbox[0].Tag != "receipt" || inbox[0].Attr("id") != res.ID {
		t.Fatalf("alice inbox: %v", inbox)
	}
}

func TestClientRetryAfterDecryptFailure(t *testing.T) {
	srv := fakeserver.New(nil)
	alice, aliceEP := newTestClient(t, srv, "111@s.whatsapp.net")
	bob, bobEP := newTestClient(t, srv, "222@s.whatsapp.net")
	ctx := context.Background()

	res, err := alice.SendText(ctx, "222@s.whatsapp.net", "retry me")
	if err != nil {
		t.Fatalf("SendText: %v", err)
	}
	inbox := bobEP.Inbox()
	if len(inbox) != 1 {
		t.Fatalf("bob inbox: %d nodes", len(inbox))
	}
	enc, _ := inbox[0].GetChildByTag("enc")
	broken := binary.NewNode("message", inbox[0].Attrs,
		binary.NewBytesNode("enc", enc.Attrs, []byte{0x33, 0xff}))

	if _, err := bob.HandleMessage(ctx, broken); err == nil {
		t.Fatal("corrupt message decrypted")
	} else {
		var de *DecryptError
		if !errors.As(err, &de) {
			t.Fatalf("got %T, want *DecryptError", err)
		}
	}

	// Alice answers the retry receipt with a fresh session.
	if got := deliver(t, alice, aliceEP); len(got) != 0 {
		t.Fatalf("alice got messages: %+v", got)
	}
	msgs := deliver(t, bob, bobEP)
	if len(msgs) != 1 || msgs[0].Text != "retry me" || msgs[0].ID != res.ID {
		t.Fatalf("bob got %+v", msgs)
	}
}

func TestClientGroup(t *testing.T) {
	srv := fakeserver.New(nil)
	srv.AddGroup(&store.Group{ID: "120-7@g.us", Subject: "friends", Participants: []store.GroupParticipant{
		{JID: "111@s.whatsapp.net", Admin: "superadmin"}, {JID: "222@s.whatsapp.net"},
	}})
	alice, _ := newTestClient(t, srv, "111@s.whatsapp.net")
	bob, bobEP := newTestClient(t, srv, "222@s.whatsapp.net")
	ctx := context.Background()

	g, err := alice.GroupMetadata(ctx, jid.MustParse("120-7@g.us"), false)
	if err != nil {
		t.Fatalf("GroupMetadata: %v", err)
	}
	if g.Subject != "friends" || len(g.Participants) != 2 {
		t.Fatalf("metadata: %+v", g)
	}
	stored, err := alice.Groups()
	if err != nil || len(stored) != 1 {
		t.Fatalf("Groups: %v, %v", stored, err)
	}

	for _, text := range []string{"one", "two"} {
		if _, err := alice.SendText(ctx, "120-7@g.us", text); err != nil {
			t.Fatalf("SendText: %v", err)
		}
		msgs := deliver(t, bob, bobEP)
		if len(msgs) != 1 || msgs[0].Text != text || msgs[0].Chat.String() != "120-7@g.us" {
			t.Fatalf("bob got %+v", msgs)
		}
	}

	devices, err := alice.Devices(ctx, jid.MustParse("222@s.whatsapp.net"))
	if err != nil || len(devices) != 1 {
		t.Fatalf("Devices: %v, %v", devices, err)
	}
}

func TestClientReadMessages(t *testing.T) {
	srv := fakeserver.New(nil)
	srv.SetPrivacy(fanout.PrivacyReadReceipts, fanout.PrivacyAll)
	srv.AddGroup(&store.Group{ID: "120-8@g.us", Subject: "read", Participants: []store.GroupParticipant{
		{JID: "111@s.whatsapp.net"}, {JID: "222@s.whatsapp.net"},
	}})
	alice, aliceEP := newTestClient(t, srv, "111@s.whatsapp.net")
	bob, bobEP := newTestClient(t, srv, "222@s.whatsapp.net")
	ctx := context.Background()

	if _, err := alice.SendText(ctx, "120-8@g.us", "read me"); err != nil {
		t.Fatalf("SendText: %v", err)
	}
	msgs := deliver(t, bob, bobEP)
	if len(msgs) != 1 {
		t.Fatalf("bob got %+v", msgs)
	}
	aliceEP.Inbox()

	if err := bob.ReadMessages(ctx, msgs); err != nil {
		t.Fatalf("ReadMessages: %v", err)
	}
	inbox := aliceEP.Inbox()
	if len(inbox) != 1 || inbox[0].Attr("type") != fanout.ReceiptRead || inbox[0].Attr("id") != msgs[0].ID {
		t.Fatalf("alice inbox: %v", inbox)
	}

	if err := bob.PrivacyTokens(ctx, []JID{alice.Me()}); err != nil {
		t.Fatalf("PrivacyTokens: %v", err)
	}
	if got := srv.PrivacyTokens(bob.Me()); len(got) != 1 || got[0] != alice.Me().String() {
		t.Fatalf("tokens = %v", got)
	}
}

func TestClientUploadAdvancesPreKeyCounter(t *testing.T) {
	srv := fakeserver.New(nil)
	c, _ := newTestClient(t, srv, "111@s.whatsapp.net")
	before := c.repo.Creds().FirstUnuploadedPreKeyID
	if err := c.UploadPreKeys(context.Background(), 3); err != nil {
		t.Fatalf("UploadPreKeys: %v", err)
	}
	if got := c.repo.Creds().FirstUnuploadedPreKeyID; got != before+3 {
		t.Fatalf("first unuploaded = %d, want %d", got, before+3)
	}
}

func TestClientOverWebsocket(t *testing.T) {
	srv := fakeserver.New(nil)
	hs := httptest.NewServer(srv)
	defer hs.Close()
	url := "ws" + strings.TrimPrefix(hs.URL, "http")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dir := t.TempDir()
	alice := NewClient(WithDBPath(filepath.Join(dir, "alice.db")), WithServerURL(url))
	if err := alice.Init(ctx, jid.MustParse("111@s.whatsapp.net")); err != nil {
		t.Fatalf("Init alice: %v", err)
	}
	defer alice.Close()
	bob := NewClient(WithDBPath(filepath.Join(dir, "bob.db")), WithServerURL(url))
	if err := bob.Init(ctx, jid.MustParse("222@s.whatsapp.net")); err != nil {
		t.Fatalf("Init bob: %v", err)
	}

	if _, err := alice.SendText(ctx, "222@s.whatsapp.net", "over the wire"); err != nil {
		t.Fatalf("SendText: %v", err)
	}
	for msg, err := range bob.Receive(ctx) {
		if err != nil {
			t.Fatalf("Receive: %v", err)
		}
		if msg.Text != "over the wire" {
			t.Fatalf("got %q", msg.Text)
		}
		break
	}
	if err := bob.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// The stored credentials survive a restart.
	reopened := NewClient(WithDBPath(filepath.Join(dir, "bob.db")), WithServerURL(url))
	if err := reopened.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	defer reopened.Close()
	if reopened.Me().String() != "222@s.whatsapp.net" {
		t.Fatalf("Me: %s", reopened.Me())
	}
}
