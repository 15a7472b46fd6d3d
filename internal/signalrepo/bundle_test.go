package signalrepo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gwillem/whatsapp-go/internal/binary"
	"github.com/gwillem/whatsapp-go/internal/jid"
)

func TestBundleNodeRoundTrip(t *testing.T) {
	device := jid.NewDevice("4412", 3)
	in := &SessionBundle{
		RegistrationID: 777,
		IdentityKey:    []byte{5, 1, 2},
		SignedPreKey:   KeyRef{ID: 9, Public: []byte{5, 9}, Signature: []byte{1, 1}},
		PreKey:         &KeyRef{ID: 70000, Public: []byte{5, 7}},
	}
	gotDevice, got, err := ParseBundleNode(BundleNode(device, in))
	require.NoError(t, err)
	require.Equal(t, device, gotDevice)
	require.Equal(t, in, got)

	in.PreKey = nil
	_, got, err = ParseBundleNode(BundleNode(device, in))
	require.NoError(t, err)
	require.Nil(t, got.PreKey)
}

func TestParseBundleNodeErrors(t *testing.T) {
	device := jid.NewDevice("4412", 3)
	gotDevice, _, err := ParseBundleNode(ErrorBundleNode(device, 404, "item-not-found"))
	var rej *binary.ServerRejectedError
	require.ErrorAs(t, err, &rej)
	require.Equal(t, 404, rej.Code)
	require.Equal(t, device, gotDevice)

	noSKey := binary.NewNode("user", binary.Attrs{"jid": device.String()},
		binary.NewBytesNode("registration", nil, binary.EncodeUint(1, 4)),
		binary.NewBytesNode("identity", nil, []byte{1}),
	)
	_, _, err = ParseBundleNode(noSKey)
	require.Error(t, err)

	_, _, err = ParseBundleNode(binary.NewNode("user", binary.Attrs{"jid": device.String()}))
	require.Error(t, err)
}

func TestKeyBundleQuery(t *testing.T) {
	devices := []jid.JID{jid.NewDevice("1", 0), jid.NewDevice("1", 2)}
	q := KeyBundleQuery(devices)
	require.Equal(t, "encrypt", q.Attr("xmlns"))
	require.Equal(t, "get", q.Attr("type"))
	require.Equal(t, devices, RequestedDevices(q))
}

func TestParsePreKeyUpload(t *testing.T) {
	repo, _ := newRepo(t, "31600:1@s.whatsapp.net")
	node, err := repo.PreKeyUploadNode(3)
	require.NoError(t, err)
	up, err := ParsePreKeyUpload(node)
	require.NoError(t, err)
	require.Equal(t, repo.RegistrationID(), up.RegistrationID)
	require.Len(t, up.PreKeys, 3)
	c := repo.Creds()
	require.Equal(t, c.IdentityKey.Public.Serialize(), up.IdentityKey)
	require.Equal(t, c.SignedPreKey.Signature, up.SignedPreKey.Signature)
}
