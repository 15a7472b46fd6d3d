package signalrepo

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/gwillem/whatsapp-go/internal/jid"
	"github.com/gwillem/whatsapp-go/internal/libsignal"
	"github.com/gwillem/whatsapp-go/internal/store"
)

func newRepo(t *testing.T, me string) (*Repository, *store.Memory) {
	t.Helper()
	creds, err := NewCreds(jid.MustParse(me))
	if err != nil {
		t.Fatalf("NewCreds: %v", err)
	}
	mem := store.NewMemory()
	return New(mem, creds, WithCredsStore(mem)), mem
}

// bundleFor publishes one pre-key of r and returns the bundle a peer would fetch.
func bundleFor(t *testing.T, r *Repository) *SessionBundle {
	t.Helper()
	keys, err := r.NextPreKeys(1)
	if err != nil {
		t.Fatalf("NextPreKeys: %v", err)
	}
	c := r.Creds()
	return &SessionBundle{
		RegistrationID: c.RegistrationID,
		IdentityKey:    c.IdentityKey.Public.Serialize(),
		SignedPreKey: KeyRef{
			ID:        c.SignedPreKey.ID,
			Public:    c.SignedPreKey.KeyPair.Public.Serialize(),
			Signature: c.SignedPreKey.Signature,
		},
		PreKey: &KeyRef{ID: keys[0].ID, Public: keys[0].KeyPair.Public.Serialize()},
	}
}

func TestDirectRoundTrip(t *testing.T) {
	alice, _ := newRepo(t, "111:1@s.whatsapp.net")
	bob, bobKeys := newRepo(t, "222:0@s.whatsapp.net")

	if _, err := alice.EncryptMessage(bob.Me(), []byte("x")); !errors.As(err, new(*libsignal.NoSessionError)) {
		t.Fatalf("before inject: got %v, want NoSessionError", err)
	}

	bundle := bundleFor(t, bob)
	if err := alice.InjectSession(bob.Me(), bundle); err != nil {
		t.Fatalf("InjectSession: %v", err)
	}
	has, err := alice.HasSessions([]jid.JID{bob.Me(), jid.NewDevice("333", 0)})
	if err != nil {
		t.Fatal(err)
	}
	if !has[bob.Me()] || has[jid.NewDevice("333", 0)] {
		t.Fatalf("HasSessions = %v", has)
	}

	res, err := alice.EncryptMessage(bob.Me(), []byte("hello"))
	if err != nil {
		t.Fatalf("EncryptMessage: %v", err)
	}
	if res.Type != TypePreKey {
		t.Fatalf("type = %q, want pkmsg", res.Type)
	}
	pt, err := bob.DecryptMessage(alice.Me(), res.Type, res.Ciphertext)
	if err != nil {
		t.Fatalf("DecryptMessage: %v", err)
	}
	if string(pt) != "hello" {
		t.Fatalf("got %q", pt)
	}
	if v, _ := store.GetOne(bobKeys, store.CategoryPreKey, fmt.Sprint(bundle.PreKey.ID)); v != nil {
		t.Fatal("consumed pre-key still stored")
	}

	reply, err := bob.EncryptMessage(alice.Me(), []byte("hi"))
	if err != nil {
		t.Fatal(err)
	}
	if reply.Type != TypeMessage {
		t.Fatalf("reply type = %q, want msg", reply.Type)
	}
	if pt, err := alice.DecryptMessage(bob.Me(), reply.Type, reply.Ciphertext); err != nil || string(pt) != "hi" {
		t.Fatalf("alice decrypt: %q, %v", pt, err)
	}
}

func TestDecryptUnknownType(t *testing.T) {
	alice, _ := newRepo(t, "111@s.whatsapp.net")
	if _, err := alice.DecryptMessage(jid.NewDevice("2", 0), "skmsg", []byte{1}); err == nil {
		t.Fatal("expected error")
	}
}

func TestConcurrentEncryptSameDevice(t *testing.T) {
	alice, _ := newRepo(t, "111:1@s.whatsapp.net")
	bob, _ := newRepo(t, "222@s.whatsapp.net")
	if err := alice.InjectSession(bob.Me(), bundleFor(t, bob)); err != nil {
		t.Fatal(err)
	}

	const n = 32
	results := make([]*EncryptResult, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := alice.EncryptMessage(bob.Me(), []byte{byte(i)})
			if err != nil {
				t.Errorf("encrypt %d: %v", i, err)
				return
			}
			results[i] = res
		}()
	}
	wg.Wait()

	for i, res := range results {
		if res == nil {
			t.Fatalf("missing result %d", i)
		}
		pt, err := bob.DecryptMessage(alice.Me(), res.Type, res.Ciphertext)
		if err != nil {
			t.Fatalf("decrypt %d: %v", i, err)
		}
		if len(pt) != 1 || pt[0] != byte(i) {
			t.Fatalf("decrypt %d: got %x", i, pt)
		}
	}
}

func TestGroupRoundTrip(t *testing.T) {
	alice, _ := newRepo(t, "111:1@s.whatsapp.net")
	bob, _ := newRepo(t, "222@s.whatsapp.net")
	group := jid.MustParse("123-456@g.us")

	if _, ok, _ := alice.SenderKeyEpoch(group); ok {
		t.Fatal("epoch before first encrypt")
	}
	first, err := alice.EncryptGroupMessage(group, []byte("one"))
	if err != nil {
		t.Fatalf("EncryptGroupMessage: %v", err)
	}
	epoch, ok, err := alice.SenderKeyEpoch(group)
	if err != nil || !ok || epoch != first.KeyID {
		t.Fatalf("epoch = %d, %v, %v; want %d", epoch, ok, err, first.KeyID)
	}

	_, err = bob.DecryptGroupMessage(group, alice.Me(), first.Ciphertext)
	if !errors.As(err, new(*libsignal.NoSenderKeyError)) {
		t.Fatalf("before distribution: got %v, want NoSenderKeyError", err)
	}

	if err := bob.ProcessSenderKeyDistributionMessage(group, alice.Me(), first.SenderKeyDistributionMessage); err != nil {
		t.Fatal(err)
	}
	pt, err := bob.DecryptGroupMessage(group, alice.Me(), first.Ciphertext)
	if err != nil || string(pt) != "one" {
		t.Fatalf("decrypt: %q, %v", pt, err)
	}

	second, err := alice.EncryptGroupMessage(group, []byte("two"))
	if err != nil {
		t.Fatal(err)
	}
	if second.KeyID != first.KeyID {
		t.Fatalf("epoch changed between sends: %d -> %d", first.KeyID, second.KeyID)
	}
	// A redelivered distribution message must not roll the chain back.
	if err := bob.ProcessSenderKeyDistributionMessage(group, alice.Me(), second.SenderKeyDistributionMessage); err != nil {
		t.Fatal(err)
	}
	if pt, err := bob.DecryptGroupMessage(group, alice.Me(), second.Ciphertext); err != nil || string(pt) != "two" {
		t.Fatalf("second decrypt: %q, %v", pt, err)
	}
}

func TestNextPreKeys(t *testing.T) {
	r, mem := newRepo(t, "111@s.whatsapp.net")
	keys, err := r.NextPreKeys(5)
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 5 || keys[0].ID != 1 || keys[4].ID != 5 {
		t.Fatalf("got %d keys starting at %d", len(keys), keys[0].ID)
	}
	c := r.Creds()
	if c.NextPreKeyID != 6 || c.FirstUnuploadedPreKeyID != 1 {
		t.Fatalf("counters = %d/%d, want 6/1", c.NextPreKeyID, c.FirstUnuploadedPreKeyID)
	}
	saved, err := mem.LoadCreds()
	if err != nil || saved == nil || saved.NextPreKeyID != 6 {
		t.Fatalf("persisted creds = %+v, %v", saved, err)
	}

	more, err := r.NextPreKeys(3)
	if err != nil {
		t.Fatal(err)
	}
	if more[0].ID != 1 || more[2].ID != 3 {
		t.Fatalf("second batch = %d..%d", more[0].ID, more[2].ID)
	}
}

func TestFailedUploadReusesPreKeys(t *testing.T) {
	r, mem := newRepo(t, "111@s.whatsapp.net")
	lost, err := r.PreKeyUploadNode(4)
	if err != nil {
		t.Fatal(err)
	}
	// The upload above never reached the server.
	retry, err := r.PreKeyUploadNode(4)
	if err != nil {
		t.Fatal(err)
	}
	first, _ := ParsePreKeyUpload(lost)
	second, _ := ParsePreKeyUpload(retry)
	if len(second.PreKeys) != 4 || second.PreKeys[0].ID != first.PreKeys[0].ID || !bytes.Equal(second.PreKeys[3].Public, first.PreKeys[3].Public) {
		t.Fatalf("retry uploads %+v, want %+v", second.PreKeys, first.PreKeys)
	}
	if c := r.Creds(); c.FirstUnuploadedPreKeyID != 1 || c.NextPreKeyID != 5 {
		t.Fatalf("counters = %d/%d, want 5/1", c.NextPreKeyID, c.FirstUnuploadedPreKeyID)
	}

	if err := r.MarkPreKeysUploaded(retry); err != nil {
		t.Fatal(err)
	}
	if c := r.Creds(); c.FirstUnuploadedPreKeyID != 5 {
		t.Fatalf("first unuploaded = %d, want 5", c.FirstUnuploadedPreKeyID)
	}
	saved, err := mem.LoadCreds()
	if err != nil || saved.FirstUnuploadedPreKeyID != 5 {
		t.Fatalf("persisted creds = %+v, %v", saved, err)
	}
	next, err := r.NextPreKeys(2)
	if err != nil {
		t.Fatal(err)
	}
	if next[0].ID != 5 || next[1].ID != 6 {
		t.Fatalf("after upload = %d..%d", next[0].ID, next[1].ID)
	}
	// Marking an older upload again does not move the counter back.
	if err := r.MarkPreKeysUploaded(lost); err != nil {
		t.Fatal(err)
	}
	if c := r.Creds(); c.FirstUnuploadedPreKeyID != 5 {
		t.Fatalf("first unuploaded = %d after stale mark", c.FirstUnuploadedPreKeyID)
	}
}

func TestPreKeyUploadNode(t *testing.T) {
	r, _ := newRepo(t, "111@s.whatsapp.net")
	iq, err := r.PreKeyUploadNode(4)
	if err != nil {
		t.Fatal(err)
	}
	if iq.Tag != "iq" || iq.Attr("xmlns") != "encrypt" || iq.Attr("type") != "set" {
		t.Fatalf("unexpected iq %s", iq)
	}
	reg, err := iq.ChildUint("registration", 4)
	if err != nil || reg != r.RegistrationID() {
		t.Fatalf("registration = %d, %v", reg, err)
	}
	list, _ := iq.GetChildByTag("list")
	if n := len(list.GetChildrenByTag("key")); n != 4 {
		t.Fatalf("list has %d keys", n)
	}
	skey, ok := iq.GetChildByTag("skey")
	if !ok || len(skey.ChildBytes("signature")) == 0 {
		t.Fatal("missing signed pre-key")
	}
}

func TestCredsEncodeDecode(t *testing.T) {
	c, err := NewCreds(jid.MustParse("555:2@s.whatsapp.net"))
	if err != nil {
		t.Fatal(err)
	}
	encoded, err := c.Encode()
	if err != nil {
		t.Fatal(err)
	}
	got, err := DecodeCreds(encoded)
	if err != nil {
		t.Fatal(err)
	}
	if got.Me != c.Me || got.RegistrationID != c.RegistrationID {
		t.Fatalf("got %+v", got)
	}
	if !got.IdentityKey.Public.Equal(c.IdentityKey.Public) {
		t.Fatal("identity changed")
	}
	if got.SignedPreKey.ID != c.SignedPreKey.ID || got.Account == nil {
		t.Fatalf("signed pre-key or account lost: %+v", got)
	}
}

func TestSenderKeyDistributionDoesNotAdvance(t *testing.T) {
	alice, _ := newRepo(t, "111:1@s.whatsapp.net")
	bob, _ := newRepo(t, "222:1@s.whatsapp.net")
	group := jid.MustParse("1-2@g.us")

	skdm, keyID, err := alice.SenderKeyDistribution(group)
	if err != nil {
		t.Fatalf("SenderKeyDistribution: %v", err)
	}
	again, keyID2, err := alice.SenderKeyDistribution(group)
	if err != nil {
		t.Fatalf("SenderKeyDistribution: %v", err)
	}
	if keyID != keyID2 || string(skdm) != string(again) {
		t.Fatal("distribution message changed without an encrypt")
	}
	epoch, ok, err := alice.SenderKeyEpoch(group)
	if err != nil || !ok || epoch != keyID {
		t.Fatalf("SenderKeyEpoch = %d, %v, %v", epoch, ok, err)
	}

	if err := bob.ProcessSenderKeyDistributionMessage(group, alice.Me(), skdm); err != nil {
		t.Fatalf("process: %v", err)
	}
	res, err := alice.EncryptGroupMessage(group, []byte("hi"))
	if err != nil {
		t.Fatalf("EncryptGroupMessage: %v", err)
	}
	pt, err := bob.DecryptGroupMessage(group, alice.Me(), res.Ciphertext)
	if err != nil || string(pt) != "hi" {
		t.Fatalf("DecryptGroupMessage = %q, %v", pt, err)
	}
}
