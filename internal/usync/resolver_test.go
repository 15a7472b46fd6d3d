package usync

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/gwillem/whatsapp-go/internal/binary"
	"github.com/gwillem/whatsapp-go/internal/jid"
)

type fakeQuerier struct {
	mu      sync.Mutex
	devices map[string][]Device
	calls   atomic.Int32
	sizes   []int
	err     error
	delay   time.Duration
	// release, when set, holds every query until closed or ctx is done.
	release chan struct{}
	started chan struct{}
}

func (f *fakeQuerier) Query(ctx context.Context, node binary.Node) (binary.Node, error) {
	f.calls.Add(1)
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.release != nil {
		if f.started != nil {
			f.started <- struct{}{}
		}
		select {
		case <-f.release:
		case <-ctx.Done():
			return binary.Node{}, ctx.Err()
		}
	}
	if f.err != nil {
		return binary.Node{}, f.err
	}
	users := RequestedUsers(node)
	f.mu.Lock()
	f.sizes = append(f.sizes, len(users))
	f.mu.Unlock()
	return ResultNode("1", users, func(u jid.JID) []Device {
		f.mu.Lock()
		defer f.mu.Unlock()
		return f.devices[u.User]
	}), nil
}

var me = jid.NewDevice("100", 3)

func TestResolveFiltersAndCaches(t *testing.T) {
	q := &fakeQuerier{devices: map[string][]Device{
		"200": {{ID: 0}, {ID: 1, KeyIndex: 2}},
		"100": {{ID: 0}, {ID: 3, KeyIndex: 1}, {ID: 5, KeyIndex: 1}},
	}}
	r := NewResolver(q, me, Config{})
	peer := jid.New("200", jid.DefaultUserServer)

	got, err := r.Resolve(context.Background(), []jid.JID{peer, me.ToNonAD()})
	require.NoError(t, err)
	require.Equal(t, []jid.JID{jid.NewDevice("200", 0), jid.NewDevice("200", 1)}, got[peer])
	// Own device 3 is excluded, siblings are kept.
	require.Equal(t, []jid.JID{jid.NewDevice("100", 0), jid.NewDevice("100", 5)}, got[me.ToNonAD()])
	require.EqualValues(t, 1, q.calls.Load())

	_, err = r.Resolve(context.Background(), []jid.JID{peer})
	require.NoError(t, err)
	require.EqualValues(t, 1, q.calls.Load(), "second resolve should hit cache")

	r.Invalidate(jid.NewDevice("200", 1))
	_, err = r.Resolve(context.Background(), []jid.JID{peer})
	require.NoError(t, err)
	require.EqualValues(t, 2, q.calls.Load())
}

func TestResolveSkipsDevicesWithoutKeyIndex(t *testing.T) {
	resp := binary.NewNode("iq", binary.Attrs{"type": "result"},
		binary.NewNode("usync", nil, binary.NewNode("list", nil,
			binary.NewNode("user", binary.Attrs{"jid": "300@s.whatsapp.net"},
				binary.NewNode("devices", nil, binary.NewNode("device-list", nil,
					binary.NewNode("device", binary.Attrs{"id": "0"}),
					binary.NewNode("device", binary.Attrs{"id": "7"}),
					binary.NewNode("device", binary.Attrs{"id": "8", "key-index": "4"}),
				)),
			),
		)),
	)
	got := ExtractDeviceJIDs(resp, me, false)
	require.Equal(t, []jid.JID{jid.NewDevice("300", 0), jid.NewDevice("300", 8)}, got)

	got = ExtractDeviceJIDs(resp, me, true)
	require.Equal(t, []jid.JID{jid.NewDevice("300", 8)}, got)
}

func TestResolveEmptyListsNotCached(t *testing.T) {
	q := &fakeQuerier{devices: map[string][]Device{}}
	r := NewResolver(q, me, Config{})
	peer := jid.New("400", jid.DefaultUserServer)

	got, err := r.Resolve(context.Background(), []jid.JID{peer})
	require.NoError(t, err)
	require.NotContains(t, got, peer)

	_, err = r.Resolve(context.Background(), []jid.JID{peer})
	require.NoError(t, err)
	require.EqualValues(t, 2, q.calls.Load())
}

func TestResolveBatches(t *testing.T) {
	q := &fakeQuerier{devices: map[string][]Device{}}
	var users []jid.JID
	for i := range 250 {
		u := fmt.Sprintf("5%04d", i)
		q.devices[u] = []Device{{ID: 0}}
		users = append(users, jid.New(u, jid.DefaultUserServer))
	}
	r := NewResolver(q, me, Config{BatchSize: 100})

	got, err := r.Devices(context.Background(), users)
	require.NoError(t, err)
	require.Len(t, got, 250)
	require.Equal(t, users[0].User, got[0].User)
	require.ElementsMatch(t, []int{100, 100, 50}, q.sizes)
}

func TestResolveBatchSizeCapped(t *testing.T) {
	r := NewResolver(&fakeQuerier{}, me, Config{BatchSize: 1000})
	require.Equal(t, MaxBatchSize, r.cfg.BatchSize)
}

func TestResolveConcurrentCallsShareQuery(t *testing.T) {
	q := &fakeQuerier{devices: map[string][]Device{"600": {{ID: 0}}}, delay: 50 * time.Millisecond}
	r := NewResolver(q, me, Config{})
	peer := jid.New("600", jid.DefaultUserServer)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := r.Devices(context.Background(), []jid.JID{peer})
			if err != nil {
				t.Errorf("resolve: %v", err)
				return
			}
			if len(got) != 1 {
				t.Errorf("got %d devices", len(got))
			}
		}()
	}
	wg.Wait()
	if n := q.calls.Load(); n > 2 {
		t.Fatalf("expected shared queries, got %d", n)
	}
}

func TestResolveSharedQuerySurvivesCallerCancel(t *testing.T) {
	q := &fakeQuerier{
		devices: map[string][]Device{"610": {{ID: 0}, {ID: 2, KeyIndex: 1}}},
		release: make(chan struct{}),
		started: make(chan struct{}, 1),
	}
	r := NewResolver(q, me, Config{})
	peer := jid.New("610", jid.DefaultUserServer)

	cctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() {
		_, err := r.Devices(cctx, []jid.JID{peer})
		errc <- err
	}()
	<-q.started
	cancel()
	require.ErrorIs(t, <-errc, context.Canceled)

	close(q.release)
	require.Eventually(t, func() bool {
		_, ok := r.cache.Get(cacheKey(peer))
		return ok
	}, time.Second, 5*time.Millisecond)
	got, err := r.Devices(context.Background(), []jid.JID{peer})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, int32(1), q.calls.Load())
}

func TestResolveSharedQueryTimeout(t *testing.T) {
	q := &fakeQuerier{release: make(chan struct{})}
	defer close(q.release)
	r := NewResolver(q, me, Config{QueryTimeout: 20 * time.Millisecond})
	_, err := r.Devices(context.Background(), []jid.JID{jid.New("620", jid.DefaultUserServer)})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestResolveQueryError(t *testing.T) {
	boom := errors.New("boom")
	r := NewResolver(&fakeQuerier{err: boom}, me, Config{})
	_, err := r.Resolve(context.Background(), []jid.JID{jid.New("700", jid.DefaultUserServer)})
	require.ErrorIs(t, err, boom)
}

func TestResolveServerError(t *testing.T) {
	q := querierFunc(func(ctx context.Context, node binary.Node) (binary.Node, error) {
		return binary.NewNode("iq", binary.Attrs{"type": "error"},
			binary.NewNode("error", binary.Attrs{"code": "500", "text": "internal"})), nil
	})
	r := NewResolver(q, me, Config{})
	_, err := r.Resolve(context.Background(), []jid.JID{jid.New("700", jid.DefaultUserServer)})
	var rej *binary.ServerRejectedError
	require.ErrorAs(t, err, &rej)
	require.Equal(t, 500, rej.Code)
}

func TestResolveMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	q := &fakeQuerier{devices: map[string][]Device{"800": {{ID: 0}}}}
	r := NewResolver(q, me, Config{Registerer: reg})
	peer := jid.New("800", jid.DefaultUserServer)
	for range 3 {
		_, err := r.Resolve(context.Background(), []jid.JID{peer})
		require.NoError(t, err)
	}
	families, err := reg.Gather()
	require.NoError(t, err)
	values := map[string]float64{}
	for _, f := range families {
		values[f.GetName()] = f.GetMetric()[0].GetCounter().GetValue()
	}
	require.Equal(t, 1.0, values["whatsapp_usync_cache_misses_total"])
	require.Equal(t, 2.0, values["whatsapp_usync_cache_hits_total"])
	require.Equal(t, 1.0, values["whatsapp_usync_queries_total"])
}

func TestQueryNodeShape(t *testing.T) {
	n := QueryNode("sid-1", []jid.JID{jid.NewDevice("900", 4)})
	require.Equal(t, "usync", n.Attr("xmlns"))
	require.Equal(t, "get", n.Attr("type"))
	u, ok := n.GetChildByTag("usync")
	require.True(t, ok)
	require.Equal(t, "message", u.Attr("context"))
	require.Equal(t, "sid-1", u.Attr("sid"))
	d, ok := n.GetChildByTag("usync", "query", "devices")
	require.True(t, ok)
	require.Equal(t, "2", d.Attr("version"))
	require.Equal(t, []jid.JID{jid.New("900", jid.DefaultUserServer)}, RequestedUsers(n))
}

type querierFunc func(ctx context.Context, node binary.Node) (binary.Node, error)

func (f querierFunc) Query(ctx context.Context, node binary.Node) (binary.Node, error) {
	return f(ctx, node)
}
