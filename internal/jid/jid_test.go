package jid

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in     string
		user   string
		device uint16
		server string
		out    string
	}{
		{"123@s.whatsapp.net", "123", 0, DefaultUserServer, "123@s.whatsapp.net"},
		{"123:4@s.whatsapp.net", "123", 4, DefaultUserServer, "123:4@s.whatsapp.net"},
		{"123.0:7@s.whatsapp.net", "123", 7, DefaultUserServer, "123:7@s.whatsapp.net"},
		{"1203630-1555@g.us", "1203630-1555", 0, GroupServer, "1203630-1555@g.us"},
		{"s.whatsapp.net", "", 0, DefaultUserServer, "s.whatsapp.net"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			j, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if j.User != tt.user || j.Device != tt.device || j.Server != tt.server {
				t.Fatalf("got %+v", j)
			}
			if j.String() != tt.out {
				t.Fatalf("String = %q, want %q", j.String(), tt.out)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "123@", "123:x@s.whatsapp.net", "1:2"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) succeeded", in)
		}
	}
}

func TestNormalization(t *testing.T) {
	dev := NewDevice("123", 3)
	if dev.ToNonAD().String() != "123@s.whatsapp.net" {
		t.Fatalf("ToNonAD = %s", dev.ToNonAD())
	}
	if !dev.SameUser(MustParse("123@s.whatsapp.net")) {
		t.Fatal("expected same user")
	}
	if dev.SignalAddress() != "123.3" {
		t.Fatalf("SignalAddress = %s", dev.SignalAddress())
	}
	if !MustParse("1-2@g.us").IsGroup() || dev.IsGroup() {
		t.Fatal("IsGroup mismatch")
	}
}
