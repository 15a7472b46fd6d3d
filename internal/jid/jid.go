// Package jid parses and formats peer identifiers of the form
// user[:device]@server.
package jid

import (
	"fmt"
	"strconv"
	"strings"
)

// Known servers.
const (
	DefaultUserServer = "s.whatsapp.net"
	GroupServer       = "g.us"
	BroadcastServer   = "broadcast"
	HiddenUserServer  = "lid"
)

// ServerJID is the JID requests without a specific peer are addressed to.
var ServerJID = JID{Server: DefaultUserServer}

// JID identifies a user, a group or one device of a user.
// Device 0 is the primary device.
type JID struct {
	User   string
	Device uint16
	Server string
}

// New returns a JID without a device qualifier.
func New(user, server string) JID {
	return JID{User: user, Server: server}
}

// NewDevice returns a device-qualified user JID.
func NewDevice(user string, device uint16) JID {
	return JID{User: user, Device: device, Server: DefaultUserServer}
}

// Parse parses "user@server", "user:device@server" and the legacy
// "user.agent:device@server" forms. A bare server ("s.whatsapp.net") is valid.
func Parse(s string) (JID, error) {
	at := strings.IndexByte(s, '@')
	if at < 0 {
		if s == "" || strings.ContainsRune(s, ':') {
			return JID{}, fmt.Errorf("jid: invalid %q", s)
		}
		return JID{Server: s}, nil
	}
	user, server := s[:at], s[at+1:]
	if server == "" {
		return JID{}, fmt.Errorf("jid: missing server in %q", s)
	}
	j := JID{Server: server}
	if colon := strings.IndexByte(user, ':'); colon >= 0 {
		dev, err := strconv.ParseUint(user[colon+1:], 10, 16)
		if err != nil {
			return JID{}, fmt.Errorf("jid: invalid device in %q: %w", s, err)
		}
		j.Device = uint16(dev)
		user = user[:colon]
	}
	if dot := strings.IndexByte(user, '.'); dot >= 0 && server == DefaultUserServer {
		// Agent suffix is not part of the addressable user.
		user = user[:dot]
	}
	j.User = user
	return j, nil
}

// MustParse is Parse for constants and tests.
func MustParse(s string) JID {
	j, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return j
}

func (j JID) String() string {
	if j.User == "" {
		return j.Server
	}
	if j.Device > 0 {
		return fmt.Sprintf("%s:%d@%s", j.User, j.Device, j.Server)
	}
	return j.User + "@" + j.Server
}

// IsEmpty reports whether j is the zero value.
func (j JID) IsEmpty() bool {
	return j.User == "" && j.Server == ""
}

// ToNonAD strips the device qualifier.
func (j JID) ToNonAD() JID {
	return JID{User: j.User, Server: j.Server}
}

// IsGroup reports whether j addresses a group.
func (j JID) IsGroup() bool {
	return j.Server == GroupServer
}

// IsUser reports whether j addresses a user or one of its devices.
func (j JID) IsUser() bool {
	return j.Server == DefaultUserServer || j.Server == HiddenUserServer
}

// SameUser reports whether j and other belong to the same account.
func (j JID) SameUser(other JID) bool {
	return j.User == other.User && j.Server == other.Server
}

// SignalAddress returns the address string used to key sessions: "user.device".
func (j JID) SignalAddress() string {
	return j.User + "." + strconv.Itoa(int(j.Device))
}

// MarshalText implements encoding.TextMarshaler.
func (j JID) MarshalText() ([]byte, error) {
	return []byte(j.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (j *JID) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*j = parsed
	return nil
}
