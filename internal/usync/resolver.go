// Package usync resolves users to their device lists through batched USync
// queries with a short-lived per-user cache.
package usync

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/gwillem/whatsapp-go/internal/binary"
	"github.com/gwillem/whatsapp-go/internal/jid"
)

const (
	DefaultCacheTTL  = 5 * time.Minute
	DefaultCacheSize = 10000
	DefaultBatchSize = 100
	// DefaultQueryTimeout bounds one shared USync query.
	DefaultQueryTimeout = 20 * time.Second
	// MaxBatchSize is the largest user list the server accepts in one query.
	MaxBatchSize = 200
)

// Querier sends an iq and waits for its response.
type Querier interface {
	Query(ctx context.Context, node binary.Node) (binary.Node, error)
}

// Config tunes a Resolver. Zero values select the defaults.
type Config struct {
	CacheTTL    time.Duration
	CacheSize   int
	BatchSize   int
	Logger      logrus.FieldLogger
	Registerer  prometheus.Registerer
	Parallelism int
	// QueryTimeout bounds a query shared by concurrent callers, which runs
	// detached from any one caller's context.
	QueryTimeout time.Duration
}

// Resolver maps users to device JIDs.
type Resolver struct {
	q     Querier
	me    jid.JID
	cfg   Config
	log   logrus.FieldLogger
	cache *expirable.LRU[string, []jid.JID]
	calls singleflight.Group

	hits    prometheus.Counter
	misses  prometheus.Counter
	queries prometheus.Counter
}

// NewResolver returns a resolver querying q on behalf of me.
func NewResolver(q Querier, me jid.JID, cfg Config) *Resolver {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.BatchSize > MaxBatchSize {
		cfg.BatchSize = MaxBatchSize
	}
	if cfg.Parallelism <= 0 {
		cfg.Parallelism = 4
	}
	if cfg.QueryTimeout <= 0 {
		cfg.QueryTimeout = DefaultQueryTimeout
	}
	log := cfg.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	r := &Resolver{
		q:     q,
		me:    me,
		cfg:   cfg,
		log:   log.WithField("component", "usync"),
		cache: expirable.NewLRU[string, []jid.JID](cfg.CacheSize, nil, cfg.CacheTTL),
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "whatsapp", Subsystem: "usync", Name: "cache_hits_total",
			Help: "Users whose device list was served from cache.",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "whatsapp", Subsystem: "usync", Name: "cache_misses_total",
			Help: "Users whose device list had to be queried.",
		}),
		queries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "whatsapp", Subsystem: "usync", Name: "queries_total",
			Help: "USync queries sent.",
		}),
	}
	if cfg.Registerer != nil {
		for _, c := range []prometheus.Collector{r.hits, r.misses, r.queries} {
			if err := cfg.Registerer.Register(c); err != nil {
				r.log.WithError(err).Warn("register metric")
			}
		}
	}
	return r
}

func cacheKey(user jid.JID) string { return user.ToNonAD().String() }

// Resolve returns the devices of each user. Users served from cache are not
// queried; the rest are queried in batches of Config.BatchSize. Users
// without any valid device are absent from the result.
func (r *Resolver) Resolve(ctx context.Context, users []jid.JID) (map[jid.JID][]jid.JID, error) {
	out := make(map[jid.JID][]jid.JID, len(users))
	var missing []jid.JID
	seen := make(map[string]bool, len(users))
	for _, u := range users {
		u = u.ToNonAD()
		key := cacheKey(u)
		if seen[key] {
			continue
		}
		seen[key] = true
		if devices, ok := r.cache.Get(key); ok && len(devices) > 0 {
			r.hits.Inc()
			out[u] = devices
			continue
		}
		r.misses.Inc()
		missing = append(missing, u)
	}
	if len(missing) == 0 {
		return out, nil
	}

	batches := chunk(missing, r.cfg.BatchSize)
	results := make([]map[jid.JID][]jid.JID, len(batches))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Parallelism)
	for i, batch := range batches {
		g.Go(func() error {
			res, err := r.queryShared(gctx, batch)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, res := range results {
		for u, devices := range res {
			out[u] = devices
		}
	}
	return out, nil
}

// Devices flattens Resolve in input order.
func (r *Resolver) Devices(ctx context.Context, users []jid.JID) ([]jid.JID, error) {
	m, err := r.Resolve(ctx, users)
	if err != nil {
		return nil, err
	}
	var out []jid.JID
	seen := make(map[jid.JID]bool)
	for _, u := range users {
		u = u.ToNonAD()
		if seen[u] {
			continue
		}
		seen[u] = true
		out = append(out, m[u]...)
	}
	return out, nil
}

// Invalidate drops the cached device list of user.
func (r *Resolver) Invalidate(user jid.JID) {
	if r.cache.Remove(cacheKey(user)) {
		r.log.WithField("jid", user.ToNonAD().String()).Debug("invalidated device cache")
	}
}

// queryShared collapses identical concurrent batch queries. The query keeps
// running when the caller that started it gives up; each caller only waits
// as long as its own context allows.
func (r *Resolver) queryShared(ctx context.Context, batch []jid.JID) (map[jid.JID][]jid.JID, error) {
	keys := make([]string, len(batch))
	for i, u := range batch {
		keys[i] = cacheKey(u)
	}
	sort.Strings(keys)
	ch := r.calls.DoChan(strings.Join(keys, ","), func() (any, error) {
		qctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.cfg.QueryTimeout)
		defer cancel()
		return r.query(qctx, batch)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(map[jid.JID][]jid.JID), nil
	}
}

func (r *Resolver) query(ctx context.Context, batch []jid.JID) (map[jid.JID][]jid.JID, error) {
	r.queries.Inc()
	resp, err := r.q.Query(ctx, QueryNode(uuid.NewString(), batch))
	if err != nil {
		return nil, fmt.Errorf("usync: query %d users: %w", len(batch), err)
	}
	if err := binary.AssertErrorFree(&resp); err != nil {
		return nil, fmt.Errorf("usync: query %d users: %w", len(batch), err)
	}

	out := make(map[jid.JID][]jid.JID)
	for _, d := range ExtractDeviceJIDs(resp, r.me, false) {
		user := d.ToNonAD()
		out[user] = append(out[user], d)
	}
	for user, devices := range out {
		r.cache.Add(cacheKey(user), devices)
	}
	r.log.WithFields(logrus.Fields{"users": len(batch), "resolved": len(out)}).Debug("usync query")
	return out, nil
}

// QueryNode builds a device-list query for users.
func QueryNode(sid string, users []jid.JID) binary.Node {
	list := make([]binary.Node, len(users))
	for i, u := range users {
		list[i] = binary.NewNode("user", binary.Attrs{"jid": u.ToNonAD().String()})
	}
	return binary.NewNode("iq", binary.Attrs{"to": jid.ServerJID.String(), "type": "get", "xmlns": "usync"},
		binary.NewNode("usync", binary.Attrs{
			"sid":     sid,
			"mode":    "query",
			"last":    "true",
			"index":   "0",
			"context": "message",
		},
			binary.NewNode("query", nil, binary.NewNode("devices", binary.Attrs{"version": "2"})),
			binary.NewNode("list", nil, list...),
		),
	)
}

// ExtractDeviceJIDs parses a USync response. Non-zero devices without a
// key-index are skipped, as is me's own device. With excludeZero, primary
// devices are skipped too.
func ExtractDeviceJIDs(result binary.Node, me jid.JID, excludeZero bool) []jid.JID {
	var out []jid.JID
	for _, node := range result.GetChildren() {
		list, ok := node.GetChildByTag("list")
		if !ok {
			continue
		}
		for _, item := range list.GetChildrenByTag("user") {
			user, err := jid.Parse(item.Attr("jid"))
			if err != nil {
				continue
			}
			deviceList, ok := item.GetChildByTag("devices", "device-list")
			if !ok {
				continue
			}
			for _, dev := range deviceList.GetChildrenByTag("device") {
				id, err := parseDeviceID(dev.Attr("id"))
				if err != nil {
					continue
				}
				if id != 0 && dev.Attr("key-index") == "" {
					continue
				}
				if excludeZero && id == 0 {
					continue
				}
				d := jid.JID{User: user.User, Device: id, Server: user.Server}
				if d.User == me.User && d.Device == me.Device {
					continue
				}
				out = append(out, d)
			}
		}
	}
	return out
}

func parseDeviceID(s string) (uint16, error) {
	id, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("usync: device id %q: %w", s, err)
	}
	return uint16(id), nil
}

func chunk[T any](items []T, size int) [][]T {
	var out [][]T
	for len(items) > size {
		out = append(out, items[:size:size])
		items = items[size:]
	}
	if len(items) > 0 {
		out = append(out, items)
	}
	return out
}
