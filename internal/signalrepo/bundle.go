package signalrepo

import (
	"errors"
	"fmt"

	"github.com/gwillem/whatsapp-go/internal/binary"
	"github.com/gwillem/whatsapp-go/internal/jid"
)

// KeyBundleQuery builds the encrypt get query for the bundles of devices.
func KeyBundleQuery(devices []jid.JID) binary.Node {
	users := make([]binary.Node, len(devices))
	for i, d := range devices {
		users[i] = binary.NewNode("user", binary.Attrs{"jid": d.String()})
	}
	return binary.NewNode("iq", binary.Attrs{"xmlns": "encrypt", "type": "get", "to": jid.ServerJID.String()},
		binary.NewNode("key", nil, users...),
	)
}

// RequestedDevices returns the devices listed in a KeyBundleQuery.
func RequestedDevices(query binary.Node) []jid.JID {
	key, ok := query.GetChildByTag("key")
	if !ok {
		return nil
	}
	var out []jid.JID
	for _, u := range key.GetChildrenByTag("user") {
		if d, err := jid.Parse(u.Attr("jid")); err == nil {
			out = append(out, d)
		}
	}
	return out
}

// BundleNode is the user element of a key bundle response.
func BundleNode(device jid.JID, b *SessionBundle) binary.Node {
	children := []binary.Node{
		binary.NewBytesNode("registration", nil, binary.EncodeUint(b.RegistrationID, 4)),
		binary.NewBytesNode("type", nil, keyBundleType),
		binary.NewBytesNode("identity", nil, b.IdentityKey),
	}
	if b.PreKey != nil {
		children = append(children, PreKeyNode(b.PreKey.ID, b.PreKey.Public))
	}
	children = append(children, SignedPreKeyNode(b.SignedPreKey.ID, b.SignedPreKey.Public, b.SignedPreKey.Signature))
	return binary.NewNode("user", binary.Attrs{"jid": device.String()}, children...)
}

// ErrorBundleNode is the user element for a device the server has no
// bundle for.
func ErrorBundleNode(device jid.JID, code int, text string) binary.Node {
	return binary.NewNode("user", binary.Attrs{"jid": device.String()},
		binary.NewNode("error", binary.Attrs{"code": fmt.Sprint(code), "text": text}))
}

// ParseBundleNode reads one user element of a key bundle response.
func ParseBundleNode(user binary.Node) (jid.JID, *SessionBundle, error) {
	device, err := jid.Parse(user.Attr("jid"))
	if err != nil {
		return jid.JID{}, nil, fmt.Errorf("signalrepo: bundle jid: %w", err)
	}
	if err := binary.AssertErrorFree(&user); err != nil {
		return device, nil, err
	}
	reg, err := user.ChildUint("registration", 4)
	if err != nil {
		return device, nil, fmt.Errorf("signalrepo: bundle registration: %w", err)
	}
	identity := user.ChildBytes("identity")
	if len(identity) == 0 {
		return device, nil, errors.New("signalrepo: bundle without identity")
	}
	skey, ok := user.GetChildByTag("skey")
	if !ok {
		return device, nil, errors.New("signalrepo: bundle without signed pre-key")
	}
	spk, err := parseKeyRef(skey, true)
	if err != nil {
		return device, nil, fmt.Errorf("signalrepo: bundle signed pre-key: %w", err)
	}
	b := &SessionBundle{RegistrationID: reg, IdentityKey: identity, SignedPreKey: *spk}
	if key, ok := user.GetChildByTag("key"); ok {
		if b.PreKey, err = parseKeyRef(key, false); err != nil {
			return device, nil, fmt.Errorf("signalrepo: bundle pre-key: %w", err)
		}
	}
	return device, b, nil
}

func parseKeyRef(n binary.Node, signed bool) (*KeyRef, error) {
	id, err := n.ChildUint("id", 3)
	if err != nil {
		return nil, err
	}
	ref := &KeyRef{ID: id, Public: n.ChildBytes("value")}
	if len(ref.Public) == 0 {
		return nil, errors.New("missing value")
	}
	if signed {
		ref.Signature = n.ChildBytes("signature")
		if len(ref.Signature) == 0 {
			return nil, errors.New("missing signature")
		}
	}
	return ref, nil
}

// PreKeyUpload is the content of a PreKeyUploadNode as seen by the server.
type PreKeyUpload struct {
	RegistrationID uint32
	IdentityKey    []byte
	PreKeys        []KeyRef
	SignedPreKey   KeyRef
}

// ParsePreKeyUpload reads an encrypt set query.
func ParsePreKeyUpload(iq binary.Node) (*PreKeyUpload, error) {
	reg, err := iq.ChildUint("registration", 4)
	if err != nil {
		return nil, fmt.Errorf("signalrepo: upload registration: %w", err)
	}
	up := &PreKeyUpload{RegistrationID: reg, IdentityKey: iq.ChildBytes("identity")}
	if len(up.IdentityKey) == 0 {
		return nil, errors.New("signalrepo: upload without identity")
	}
	skey, ok := iq.GetChildByTag("skey")
	if !ok {
		return nil, errors.New("signalrepo: upload without signed pre-key")
	}
	spk, err := parseKeyRef(skey, true)
	if err != nil {
		return nil, fmt.Errorf("signalrepo: upload signed pre-key: %w", err)
	}
	up.SignedPreKey = *spk
	if list, ok := iq.GetChildByTag("list"); ok {
		for _, k := range list.GetChildrenByTag("key") {
			ref, err := parseKeyRef(k, false)
			if err != nil {
				return nil, fmt.Errorf("signalrepo: upload pre-key: %w", err)
			}
			up.PreKeys = append(up.PreKeys, *ref)
		}
	}
	return up, nil
}
