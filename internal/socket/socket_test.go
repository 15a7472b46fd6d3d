package socket_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gwillem/whatsapp-go/internal/binary"
	"github.com/gwillem/whatsapp-go/internal/fakeserver"
	"github.com/gwillem/whatsapp-go/internal/jid"
	"github.com/gwillem/whatsapp-go/internal/socket"
	"github.com/gwillem/whatsapp-go/internal/usync"
)

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

type action int

const (
	reply action = iota
	ignore
	drop
)

// responder answers every iq with an empty result unless decide says
// otherwise. conn counts connections from 1.
func responder(t *testing.T, decide func(conn int, n binary.Node) action) *httptest.Server {
	var conns atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := socket.Accept(w, r)
		if err != nil {
			t.Errorf("accept: %v", err)
			return
		}
		defer conn.CloseNow()
		id := int(conns.Add(1))
		for {
			n, err := conn.ReadNode(r.Context())
			if err != nil {
				return
			}
			a := reply
			if decide != nil {
				a = decide(id, n)
			}
			switch {
			case a == drop:
				return
			case a == ignore || n.Tag != "iq":
				continue
			}
			resp := binary.NewNode("iq", binary.Attrs{"id": n.Attr("id"), "type": "result"})
			if err := conn.WriteNode(r.Context(), resp); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestConnRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := socket.Accept(w, r)
		if err != nil {
			t.Errorf("accept: %v", err)
			return
		}
		defer conn.CloseNow()
		n, err := conn.ReadNode(r.Context())
		if err != nil {
			t.Errorf("read: %v", err)
			return
		}
		n.SetAttr("echo", "1")
		if err := conn.WriteNode(r.Context(), n); err != nil {
			t.Errorf("write: %v", err)
		}
		conn.Close()
	}))
	defer srv.Close()

	ctx := context.Background()
	conn, err := socket.Dial(ctx, wsURL(srv))
	require.NoError(t, err)
	defer conn.CloseNow()

	sent := binary.NewNode("message", binary.Attrs{"id": "1"}, binary.NewBytesNode("enc", binary.Attrs{"type": "msg"}, []byte{1, 2, 3}))
	require.NoError(t, conn.WriteNode(ctx, sent))
	got, err := conn.ReadNode(ctx)
	require.NoError(t, err)
	require.Equal(t, "1", got.Attr("echo"))
	enc, ok := got.GetChildByTag("enc")
	require.True(t, ok)
	require.Equal(t, []byte{1, 2, 3}, enc.Bytes())
}

func TestDeviceURL(t *testing.T) {
	d := jid.MustParse("111:2@s.whatsapp.net")
	require.Equal(t, "ws://h/ws?device=111%3A2%40s.whatsapp.net", socket.DeviceURL("ws://h/ws", d))
	require.Equal(t, "ws://h/ws?a=b&device=111%3A2%40s.whatsapp.net", socket.DeviceURL("ws://h/ws?a=b", d))
}

func TestClientAgainstFakeServer(t *testing.T) {
	fs := fakeserver.New(nil)
	srv := httptest.NewServer(fs)
	defer srv.Close()
	ctx := context.Background()

	alice := jid.MustParse("111@s.whatsapp.net")
	bob := jid.MustParse("222:1@s.whatsapp.net")
	received := make(chan binary.Node, 1)
	fs.AddDevice(alice)
	fs.AddDevice(bob)

	ca, err := socket.Connect(ctx, socket.DeviceURL(wsURL(srv), alice))
	require.NoError(t, err)
	defer ca.Close()
	cb, err := socket.Connect(ctx, socket.DeviceURL(wsURL(srv), bob), socket.WithHandler(func(n binary.Node) { received <- n }))
	require.NoError(t, err)
	defer cb.Close()

	resp, err := ca.Query(ctx, usync.QueryNode("sid-1", []jid.JID{bob.ToNonAD()}))
	require.NoError(t, err)
	devices := usync.ExtractDeviceJIDs(resp, alice, false)
	require.Equal(t, []jid.JID{bob}, devices)

	_, err = ca.Query(ctx, binary.NewNode("iq", binary.Attrs{"to": "404-1@g.us", "type": "get", "xmlns": "w:g2"}))
	var rej *binary.ServerRejectedError
	require.ErrorAs(t, err, &rej)
	require.Equal(t, 404, rej.Code)

	msg := binary.NewNode("message", binary.Attrs{"id": "M1", "to": bob.String(), "type": "text"},
		binary.NewBytesNode("enc", binary.Attrs{"v": "2", "type": "msg"}, []byte("ct")))
	require.NoError(t, ca.Send(ctx, msg))
	select {
	case n := <-received:
		require.Equal(t, "M1", n.Attr("id"))
		require.Equal(t, alice.String(), n.Attr("from"))
	case <-time.After(5 * time.Second):
		t.Fatal("message not relayed")
	}
}

func TestQueryTimeout(t *testing.T) {
	srv := responder(t, func(int, binary.Node) action { return ignore })
	c, err := socket.Connect(context.Background(), wsURL(srv), socket.WithQueryTimeout(50*time.Millisecond))
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Query(context.Background(), binary.NewNode("iq", binary.Attrs{"type": "get", "xmlns": "w:p"}))
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestQueryAssignsIDs(t *testing.T) {
	var ids []string
	seen := make(chan string, 2)
	srv := responder(t, func(_ int, n binary.Node) action {
		seen <- n.Attr("id")
		return reply
	})
	c, err := socket.Connect(context.Background(), wsURL(srv))
	require.NoError(t, err)
	defer c.Close()

	for range 2 {
		_, err := c.Query(context.Background(), binary.NewNode("iq", binary.Attrs{"type": "get", "xmlns": "w:p"}))
		require.NoError(t, err)
		ids = append(ids, <-seen)
	}
	require.NotEqual(t, ids[0], ids[1])
	require.NotEmpty(t, ids[0])

	_, err = c.Query(context.Background(), binary.NewNode("iq", binary.Attrs{"id": "fixed", "type": "get", "xmlns": "w:p"}))
	require.NoError(t, err)
	require.Equal(t, "fixed", <-seen)
}

func TestRedialFailsPendingQueries(t *testing.T) {
	// The first connection drops as soon as it sees a query; later ones answer.
	srv := responder(t, func(conn int, _ binary.Node) action {
		if conn == 1 {
			return drop
		}
		return reply
	})
	c, err := socket.Connect(context.Background(), wsURL(srv))
	require.NoError(t, err)
	defer c.Close()

	ping := func() error {
		_, err := c.Query(context.Background(), binary.NewNode("iq", binary.Attrs{"type": "get", "xmlns": "w:p"}))
		return err
	}
	require.ErrorIs(t, ping(), socket.ErrConnectionLost)
	require.Eventually(t, func() bool { return ping() == nil }, 5*time.Second, 20*time.Millisecond)
}

func TestClosedClient(t *testing.T) {
	srv := responder(t, nil)
	c, err := socket.Connect(context.Background(), wsURL(srv))
	require.NoError(t, err)
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())

	err = c.Send(context.Background(), binary.NewNode("presence", nil))
	require.True(t, errors.Is(err, socket.ErrClosed))
	_, err = c.Query(context.Background(), binary.NewNode("iq", binary.Attrs{"type": "get"}))
	require.ErrorIs(t, err, socket.ErrClosed)
}
