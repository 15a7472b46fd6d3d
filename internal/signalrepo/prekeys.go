package signalrepo

import (
	"fmt"

	"github.com/gwillem/whatsapp-go/internal/binary"
	"github.com/gwillem/whatsapp-go/internal/jid"
	"github.com/gwillem/whatsapp-go/internal/libsignal"
	"github.com/gwillem/whatsapp-go/internal/store"
)

// keyBundleType is the key type byte advertised with uploads.
var keyBundleType = []byte{libsignal.DjbType}

// NextPreKeys returns count pre-keys starting at the first one not yet
// uploaded, generating any that do not exist. Only the generation counter
// advances here; the upload counter moves in MarkPreKeysUploaded, so a
// failed upload hands out the same keys again.
func (r *Repository) NextPreKeys(count int) ([]*libsignal.PreKeyRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *r.c

	available := int(c.NextPreKeyID) - int(c.FirstUnuploadedPreKeyID)
	remaining := count - available
	last := int(c.NextPreKeyID) + remaining - 1

	fresh := make(map[string][]byte)
	for id := int(c.NextPreKeyID); id <= last; id++ {
		pk, err := libsignal.GeneratePreKey(uint32(id))
		if err != nil {
			return nil, err
		}
		data, err := pk.Serialize()
		if err != nil {
			return nil, err
		}
		fresh[preKeyID(uint32(id))] = data
	}
	if len(fresh) > 0 {
		if err := r.keys.Set(map[store.Category]map[string][]byte{store.CategoryPreKey: fresh}); err != nil {
			return nil, fmt.Errorf("signalrepo: store pre-keys: %w", err)
		}
	}

	ids := make([]string, 0, count)
	for id := c.FirstUnuploadedPreKeyID; id < c.FirstUnuploadedPreKeyID+uint32(count); id++ {
		ids = append(ids, preKeyID(id))
	}
	stored, err := r.keys.Get(store.CategoryPreKey, ids...)
	if err != nil {
		return nil, fmt.Errorf("signalrepo: load pre-keys: %w", err)
	}
	keys := make([]*libsignal.PreKeyRecord, 0, len(ids))
	for _, id := range ids {
		data, ok := stored[id]
		if !ok {
			continue
		}
		pk, err := libsignal.DeserializePreKeyRecord(data)
		if err != nil {
			return nil, err
		}
		keys = append(keys, pk)
	}

	if next := uint32(last + 1); next > c.NextPreKeyID {
		c.NextPreKeyID = next
		if err := r.saveCreds(&c); err != nil {
			return nil, err
		}
		r.c = &c
	}
	return keys, nil
}

// MarkPreKeysUploaded advances the upload counter past the highest pre-key
// in an upload node the server accepted.
func (r *Repository) MarkPreKeysUploaded(iq binary.Node) error {
	up, err := ParsePreKeyUpload(iq)
	if err != nil {
		return err
	}
	var highest uint32
	for _, k := range up.PreKeys {
		highest = max(highest, k.ID)
	}
	if highest == 0 {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *r.c
	if highest+1 <= c.FirstUnuploadedPreKeyID {
		return nil
	}
	c.FirstUnuploadedPreKeyID = highest + 1
	if err := r.saveCreds(&c); err != nil {
		return err
	}
	r.c = &c
	r.log.WithField("first_unuploaded", c.FirstUnuploadedPreKeyID).Debug("pre-keys uploaded")
	return nil
}

func (r *Repository) saveCreds(c *Creds) error {
	if r.credsDB == nil {
		return nil
	}
	encoded, err := c.Encode()
	if err != nil {
		return err
	}
	return r.credsDB.SaveCreds(encoded)
}

// PreKeyUploadNode builds the encrypt set query uploading count pre-keys
// with the identity and signed pre-key.
func (r *Repository) PreKeyUploadNode(count int) (binary.Node, error) {
	keys, err := r.NextPreKeys(count)
	if err != nil {
		return binary.Node{}, err
	}
	c := r.creds()

	list := make([]binary.Node, len(keys))
	for i, pk := range keys {
		list[i] = PreKeyNode(pk.ID, pk.KeyPair.Public.Serialize())
	}
	spk := c.SignedPreKey
	iq := binary.NewNode("iq", binary.Attrs{"xmlns": "encrypt", "type": "set", "to": jid.ServerJID.String()},
		binary.NewBytesNode("registration", nil, binary.EncodeUint(c.RegistrationID, 4)),
		binary.NewBytesNode("type", nil, keyBundleType),
		binary.NewBytesNode("identity", nil, c.IdentityKey.Public.Serialize()),
		binary.NewNode("list", nil, list...),
		SignedPreKeyNode(spk.ID, spk.KeyPair.Public.Serialize(), spk.Signature),
	)
	r.log.WithField("count", len(keys)).Debug("built pre-key upload")
	return iq, nil
}

// PreKeyNode is a key element: 3-byte id and public key.
func PreKeyNode(id uint32, public []byte) binary.Node {
	return binary.NewNode("key", nil,
		binary.NewBytesNode("id", nil, binary.EncodeUint(id, 3)),
		binary.NewBytesNode("value", nil, public),
	)
}

// SignedPreKeyNode is an skey element with its signature.
func SignedPreKeyNode(id uint32, public, signature []byte) binary.Node {
	return binary.NewNode("skey", nil,
		binary.NewBytesNode("id", nil, binary.EncodeUint(id, 3)),
		binary.NewBytesNode("value", nil, public),
		binary.NewBytesNode("signature", nil, signature),
	)
}
