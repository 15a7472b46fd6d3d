package fanout

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/gwillem/whatsapp-go/internal/binary"
	"github.com/gwillem/whatsapp-go/internal/fakeserver"
	"github.com/gwillem/whatsapp-go/internal/groups"
	"github.com/gwillem/whatsapp-go/internal/jid"
	"github.com/gwillem/whatsapp-go/internal/senderkeys"
	"github.com/gwillem/whatsapp-go/internal/signalrepo"
	"github.com/gwillem/whatsapp-go/internal/store"
	"github.com/gwillem/whatsapp-go/internal/usync"
)

var errBoom = errors.New("boom")

// failingKeys fails session writes while failSessions is set.
type failingKeys struct {
	*store.Memory
	failSessions atomic.Bool
}

func (f *failingKeys) Set(data map[store.Category]map[string][]byte) error {
	if _, ok := data[store.CategorySession]; ok && f.failSessions.Load() {
		return errBoom
	}
	return f.Memory.Set(data)
}

// flakyTransport fails sends while failSend is set.
type flakyTransport struct {
	*fakeserver.Endpoint
	failSend atomic.Bool
}

func (f *flakyTransport) Send(ctx context.Context, n binary.Node) error {
	if f.failSend.Load() {
		return errBoom
	}
	return f.Endpoint.Send(ctx, n)
}

type device struct {
	me       jid.JID
	repo     *signalrepo.Repository
	keys     *failingKeys
	tr       *flakyTransport
	resolver *usync.Resolver
	tracker  *senderkeys.Tracker
	enc      *Encryptor
}

type deviceOption func(*Config)

func withBundleBatch(n int) deviceOption {
	return func(c *Config) { c.KeyBundleBatchSize = n }
}

// newDevice registers a device with the server. Devices that do not upload
// keys are listed but have no bundle.
func newDevice(t *testing.T, srv *fakeserver.Server, addr string, upload bool, opts ...deviceOption) *device {
	t.Helper()
	me := jid.MustParse(addr)
	creds, err := signalrepo.NewCreds(me)
	if err != nil {
		t.Fatalf("NewCreds: %v", err)
	}
	keys := &failingKeys{Memory: store.NewMemory()}
	repo := signalrepo.New(keys, creds, signalrepo.WithCredsStore(keys.Memory))
	ep := srv.Endpoint(me)
	if upload {
		node, err := repo.PreKeyUploadNode(10)
		if err != nil {
			t.Fatalf("PreKeyUploadNode: %v", err)
		}
		if _, err := ep.Query(context.Background(), node); err != nil {
			t.Fatalf("upload: %v", err)
		}
	}
	tr := &flakyTransport{Endpoint: ep}
	resolver := usync.NewResolver(tr, me, usync.Config{})
	tracker := senderkeys.New(keys, nil)
	cfg := Config{}
	for _, o := range opts {
		o(&cfg)
	}
	enc := New(repo, resolver, groups.New(tr, keys.Memory, 0, nil), tracker, tr, cfg)
	return &device{me: me, repo: repo, keys: keys, tr: tr, resolver: resolver, tracker: tracker, enc: enc}
}

// receive decrypts every message routed to d.
func (d *device) receive(t *testing.T) []*Decrypted {
	t.Helper()
	var out []*Decrypted
	for _, n := range d.tr.Inbox() {
		if n.Tag != "message" {
			continue
		}
		msgs, err := d.enc.Decrypt(n)
		if err != nil {
			t.Fatalf("%s: Decrypt: %v", d.me, err)
		}
		out = append(out, msgs...)
	}
	return out
}

// conversations returns the text bodies of msgs.
func conversations(msgs []*Decrypted) []string {
	var out []string
	for _, m := range msgs {
		if text := m.Message.GetConversation(); text != "" {
			out = append(out, text)
		}
	}
	return out
}

func participantJIDs(n binary.Node) []string {
	p, ok := n.GetChildByTag("participants")
	if !ok {
		return nil
	}
	var out []string
	for _, to := range p.GetChildrenByTag("to") {
		out = append(out, to.Attr("jid"))
	}
	return out
}

// encTypes lists the type of every enc in the stanza, bare ones first.
func encTypes(n binary.Node) []string {
	var out []string
	for _, enc := range n.GetChildrenByTag("enc") {
		out = append(out, enc.Attr("type"))
	}
	if p, ok := n.GetChildByTag("participants"); ok {
		for _, to := range p.GetChildrenByTag("to") {
			enc, _ := to.GetChildByTag("enc")
			out = append(out, enc.Attr("type"))
		}
	}
	return out
}

func countTag(n binary.Node, tag string) int {
	return len(n.GetChildrenByTag(tag))
}

// checkDeviceIdentity asserts a device-identity child exists iff any enc
// is a pkmsg.
func checkDeviceIdentity(t *testing.T, n binary.Node) {
	t.Helper()
	hasPreKey := false
	for _, typ := range encTypes(n) {
		hasPreKey = hasPreKey || typ == signalrepo.TypePreKey
	}
	want := 0
	if hasPreKey {
		want = 1
	}
	if got := countTag(n, "device-identity"); got != want {
		t.Fatalf("device-identity count = %d, want %d (types %v)", got, want, encTypes(n))
	}
}
