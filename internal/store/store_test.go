package store

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := Open(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

type backend interface {
	KeyStore
	CredsStore
	GroupStore
}

func backends(t *testing.T) map[string]backend {
	return map[string]backend{
		"memory": NewMemory(),
		"sqlite": tempStore(t),
	}
}

func TestOpenCreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "dir", "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if _, err := os.Stat(filepath.Dir(path)); os.IsNotExist(err) {
		t.Fatal("directory should have been created")
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := SetOne(s, CategorySession, "a.1", []byte{1}); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	got, err := GetOne(s, CategorySession, "a.1")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte{1}) {
		t.Fatalf("got %x after reopen", got)
	}
}

func TestGroupParticipantCountColumn(t *testing.T) {
	s := tempStore(t)
	g := &Group{ID: "1-2@g.us", Subject: "x", Participants: []GroupParticipant{{JID: "1@s.whatsapp.net"}, {JID: "2@s.whatsapp.net"}}}
	if err := s.SaveGroup(g); err != nil {
		t.Fatal(err)
	}
	var n int
	if err := s.db.QueryRow("SELECT participant_count FROM groups WHERE group_id = ?", g.ID).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("participant_count = %d, want 2", n)
	}
}

func TestKeyStoreGetSetDelete(t *testing.T) {
	for name, ks := range backends(t) {
		t.Run(name, func(t *testing.T) {
			err := ks.Set(map[Category]map[string][]byte{
				CategorySession: {"alice.0": []byte("s0"), "alice.1": []byte("s1")},
				CategoryPreKey:  {"7": []byte("pk")},
			})
			if err != nil {
				t.Fatal(err)
			}

			got, err := ks.Get(CategorySession, "alice.0", "alice.1", "bob.0")
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != 2 {
				t.Fatalf("got %d entries, want 2", len(got))
			}
			if string(got["alice.1"]) != "s1" {
				t.Errorf("alice.1 = %q", got["alice.1"])
			}
			if _, ok := got["bob.0"]; ok {
				t.Error("missing id present in result")
			}

			// Categories are separate namespaces.
			if v, _ := GetOne(ks, CategorySenderKey, "7"); v != nil {
				t.Errorf("pre-key leaked into sender-key: %q", v)
			}

			if err := SetOne(ks, CategoryPreKey, "7", nil); err != nil {
				t.Fatal(err)
			}
			if v, _ := GetOne(ks, CategoryPreKey, "7"); v != nil {
				t.Errorf("deleted entry still present: %q", v)
			}

			if err := SetOne(ks, CategorySession, "alice.0", []byte("s0b")); err != nil {
				t.Fatal(err)
			}
			if v, _ := GetOne(ks, CategorySession, "alice.0"); string(v) != "s0b" {
				t.Errorf("overwrite: got %q", v)
			}
		})
	}
}

func TestGetNoIDs(t *testing.T) {
	for name, ks := range backends(t) {
		t.Run(name, func(t *testing.T) {
			got, err := ks.Get(CategorySession)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != 0 {
				t.Fatalf("got %v", got)
			}
		})
	}
}

func TestCredsSaveLoad(t *testing.T) {
	for name, cs := range backends(t) {
		t.Run(name, func(t *testing.T) {
			c, err := cs.LoadCreds()
			if err != nil {
				t.Fatal(err)
			}
			if c != nil {
				t.Fatal("expected nil creds")
			}

			want := &Creds{
				Me:                      "15551234567:3@s.whatsapp.net",
				RegistrationID:          12345,
				IdentityKeyPair:         []byte("identity"),
				SignedPreKey:            []byte("spk"),
				NextPreKeyID:            31,
				FirstUnuploadedPreKeyID: 31,
				Account:                 []byte("adv"),
			}
			if err := cs.SaveCreds(want); err != nil {
				t.Fatal(err)
			}
			got, err := cs.LoadCreds()
			if err != nil {
				t.Fatal(err)
			}
			if got.Me != want.Me || got.RegistrationID != want.RegistrationID {
				t.Errorf("got %+v", got)
			}
			if got.NextPreKeyID != 31 || !bytes.Equal(got.IdentityKeyPair, want.IdentityKeyPair) {
				t.Errorf("got %+v", got)
			}

			want.NextPreKeyID = 60
			if err := cs.SaveCreds(want); err != nil {
				t.Fatal(err)
			}
			got, _ = cs.LoadCreds()
			if got.NextPreKeyID != 60 {
				t.Errorf("after overwrite: NextPreKeyID = %d", got.NextPreKeyID)
			}
		})
	}
}

func TestGroupSaveLoad(t *testing.T) {
	for name, gs := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if g, err := gs.GetGroup("nope@g.us"); err != nil || g != nil {
				t.Fatalf("unknown group: %v, %v", g, err)
			}
			g := &Group{
				ID:      "123-456@g.us",
				Subject: "friends",
				Participants: []GroupParticipant{
					{JID: "1@s.whatsapp.net", Admin: "superadmin"},
					{JID: "2@s.whatsapp.net"},
				},
			}
			if err := gs.SaveGroup(g); err != nil {
				t.Fatal(err)
			}
			got, err := gs.GetGroup(g.ID)
			if err != nil {
				t.Fatal(err)
			}
			if got.Subject != "friends" || len(got.Participants) != 2 {
				t.Fatalf("got %+v", got)
			}
			if got.UpdatedAt.IsZero() {
				t.Error("UpdatedAt not set")
			}
			all, err := gs.ListGroups()
			if err != nil {
				t.Fatal(err)
			}
			if len(all) != 1 {
				t.Fatalf("ListGroups = %d groups", len(all))
			}
		})
	}
}
