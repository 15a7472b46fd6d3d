package groups

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gwillem/whatsapp-go/internal/binary"
	"github.com/gwillem/whatsapp-go/internal/jid"
	"github.com/gwillem/whatsapp-go/internal/store"
)

type fakeQuerier struct {
	group *store.Group
	calls atomic.Int32
	err   error
}

func (f *fakeQuerier) Query(ctx context.Context, node binary.Node) (binary.Node, error) {
	f.calls.Add(1)
	if f.err != nil {
		return binary.Node{}, f.err
	}
	if node.Attr("xmlns") != "w:g2" {
		return binary.Node{}, errors.New("unexpected query")
	}
	return ResultNode(node.Attr("id"), f.group), nil
}

var testGroup = &store.Group{
	ID:        "120363-1@g.us",
	Subject:   "Team",
	Owner:     "111@s.whatsapp.net",
	Creation:  1700000000,
	Announce:  true,
	Ephemeral: 86400,
	Participants: []store.GroupParticipant{
		{JID: "111@s.whatsapp.net", Admin: "superadmin"},
		{JID: "222@s.whatsapp.net"},
		{JID: "333@s.whatsapp.net", Admin: "admin"},
	},
}

func TestMetadataCachesAndForces(t *testing.T) {
	q := &fakeQuerier{group: testGroup}
	db := store.NewMemory()
	p := New(q, db, 0, nil)
	g := jid.MustParse(testGroup.ID)

	md, err := p.Metadata(context.Background(), g, false)
	require.NoError(t, err)
	require.Equal(t, "Team", md.Subject)
	require.True(t, md.Announce)
	require.False(t, md.Restrict)
	require.EqualValues(t, 86400, md.Ephemeral)
	require.Len(t, md.Participants, 3)
	require.Equal(t, "superadmin", md.Participants[0].Admin)

	_, err = p.Metadata(context.Background(), g, false)
	require.NoError(t, err)
	require.EqualValues(t, 1, q.calls.Load())

	_, err = p.Metadata(context.Background(), g, true)
	require.NoError(t, err)
	require.EqualValues(t, 2, q.calls.Load())

	saved, err := db.GetGroup(testGroup.ID)
	require.NoError(t, err)
	require.NotNil(t, saved)
	require.Equal(t, "Team", saved.Subject)

	p.Invalidate(g)
	members, err := p.Participants(context.Background(), g, false)
	require.NoError(t, err)
	require.EqualValues(t, 3, q.calls.Load())
	require.Equal(t, jid.MustParse("222@s.whatsapp.net"), members[1])
}

func TestMetadataRejectsNonGroup(t *testing.T) {
	p := New(&fakeQuerier{group: testGroup}, nil, 0, nil)
	_, err := p.Metadata(context.Background(), jid.MustParse("111@s.whatsapp.net"), false)
	require.ErrorIs(t, err, ErrNotGroup)
}

func TestMetadataQueryError(t *testing.T) {
	boom := errors.New("boom")
	p := New(&fakeQuerier{err: boom}, nil, 0, nil)
	_, err := p.Metadata(context.Background(), jid.MustParse(testGroup.ID), false)
	require.ErrorIs(t, err, boom)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse(binary.NewNode("iq", nil))
	require.Error(t, err)
	_, err = Parse(binary.NewNode("iq", nil, binary.NewNode("group", nil)))
	require.Error(t, err)
	_, err = Parse(binary.NewNode("iq", nil, binary.NewNode("group", binary.Attrs{"id": "1@s.whatsapp.net"})))
	require.Error(t, err)
}

func TestParseBareID(t *testing.T) {
	resp := binary.NewNode("iq", nil, binary.NewNode("group", binary.Attrs{"id": "42-1", "subject": "x"},
		binary.NewNode("locked", nil)))
	g, err := Parse(resp)
	require.NoError(t, err)
	require.Equal(t, "42-1@g.us", g.ID)
	require.True(t, g.Restrict)
}

func TestQueryNode(t *testing.T) {
	n := QueryNode(jid.MustParse(testGroup.ID))
	require.Equal(t, testGroup.ID, n.Attr("to"))
	q, ok := n.GetChildByTag("query")
	require.True(t, ok)
	require.Equal(t, "interactive", q.Attr("request"))
}
