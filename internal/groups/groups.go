// Package groups fetches and caches group metadata.
package groups

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/gwillem/whatsapp-go/internal/binary"
	"github.com/gwillem/whatsapp-go/internal/jid"
	"github.com/gwillem/whatsapp-go/internal/store"
)

const (
	DefaultTTL  = 5 * time.Minute
	DefaultSize = 1000
)

// ErrNotGroup is returned for metadata requests on non-group JIDs.
var ErrNotGroup = errors.New("groups: not a group jid")

// Querier sends an iq and waits for its response.
type Querier interface {
	Query(ctx context.Context, node binary.Node) (binary.Node, error)
}

// Provider serves group metadata from a TTL cache, querying the server on
// miss or when forced. Fetched metadata is written through to an optional
// GroupStore.
type Provider struct {
	q     Querier
	db    store.GroupStore
	cache *expirable.LRU[string, *store.Group]
	calls singleflight.Group
	log   logrus.FieldLogger
}

// New returns a provider. db and log may be nil; ttl <= 0 selects DefaultTTL.
func New(q Querier, db store.GroupStore, ttl time.Duration, log logrus.FieldLogger) *Provider {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Provider{
		q:     q,
		db:    db,
		cache: expirable.NewLRU[string, *store.Group](DefaultSize, nil, ttl),
		log:   log.WithField("component", "groups"),
	}
}

// Metadata returns the metadata of group.
func (p *Provider) Metadata(ctx context.Context, group jid.JID, force bool) (*store.Group, error) {
	if !group.IsGroup() {
		return nil, fmt.Errorf("%w: %s", ErrNotGroup, group)
	}
	key := group.String()
	if !force {
		if g, ok := p.cache.Get(key); ok {
			return g, nil
		}
	}
	v, err, _ := p.calls.Do(key, func() (any, error) {
		resp, err := p.q.Query(ctx, QueryNode(group))
		if err != nil {
			return nil, fmt.Errorf("groups: query %s: %w", group, err)
		}
		if err := binary.AssertErrorFree(&resp); err != nil {
			return nil, fmt.Errorf("groups: query %s: %w", group, err)
		}
		g, err := Parse(resp)
		if err != nil {
			return nil, err
		}
		p.cache.Add(key, g)
		if p.db != nil {
			if err := p.db.SaveGroup(g); err != nil {
				p.log.WithError(err).WithField("group", key).Warn("persist group metadata")
			}
		}
		p.log.WithFields(logrus.Fields{"group": key, "count": len(g.Participants)}).Debug("fetched group metadata")
		return g, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*store.Group), nil
}

// Participants returns the member JIDs of group.
func (p *Provider) Participants(ctx context.Context, group jid.JID, force bool) ([]jid.JID, error) {
	g, err := p.Metadata(ctx, group, force)
	if err != nil {
		return nil, err
	}
	out := make([]jid.JID, 0, len(g.Participants))
	for _, part := range g.Participants {
		j, err := jid.Parse(part.JID)
		if err != nil {
			return nil, fmt.Errorf("groups: participant of %s: %w", group, err)
		}
		out = append(out, j)
	}
	return out, nil
}

// Invalidate drops the cached metadata of group.
func (p *Provider) Invalidate(group jid.JID) {
	p.cache.Remove(group.String())
}

// QueryNode builds the metadata request for group.
func QueryNode(group jid.JID) binary.Node {
	return binary.NewNode("iq", binary.Attrs{"to": group.String(), "type": "get", "xmlns": "w:g2"},
		binary.NewNode("query", binary.Attrs{"request": "interactive"}),
	)
}

// Parse reads the group child of a metadata response.
func Parse(resp binary.Node) (*store.Group, error) {
	node, ok := resp.GetChildByTag("group")
	if !ok {
		return nil, errors.New("groups: response without group node")
	}
	id := node.Attr("id")
	if id == "" {
		return nil, errors.New("groups: group node without id")
	}
	group, err := jid.Parse(withServer(id))
	if err != nil || !group.IsGroup() {
		return nil, fmt.Errorf("groups: invalid group id %q", id)
	}
	g := &store.Group{
		ID:      group.String(),
		Subject: node.Attr("subject"),
		Owner:   node.Attr("creator"),
	}
	if c := node.Attr("creation"); c != "" {
		g.Creation, _ = strconv.ParseInt(c, 10, 64)
	}
	for _, child := range node.GetChildren() {
		switch child.Tag {
		case "participant":
			g.Participants = append(g.Participants, store.GroupParticipant{
				JID:   child.Attr("jid"),
				Admin: child.Attr("type"),
			})
		case "announcement":
			g.Announce = true
		case "locked":
			g.Restrict = true
		case "ephemeral":
			if v, err := strconv.ParseUint(child.Attr("expiration"), 10, 32); err == nil {
				g.Ephemeral = uint32(v)
			}
		}
	}
	return g, nil
}

// ResultNode builds a metadata response for g.
func ResultNode(id string, g *store.Group) binary.Node {
	group, _ := jid.Parse(g.ID)
	attrs := binary.Attrs{"id": group.User, "subject": g.Subject}
	if g.Owner != "" {
		attrs["creator"] = g.Owner
	}
	if g.Creation != 0 {
		attrs["creation"] = strconv.FormatInt(g.Creation, 10)
	}
	var children []binary.Node
	for _, p := range g.Participants {
		pa := binary.Attrs{"jid": p.JID}
		if p.Admin != "" {
			pa["type"] = p.Admin
		}
		children = append(children, binary.NewNode("participant", pa))
	}
	if g.Announce {
		children = append(children, binary.NewNode("announcement", nil))
	}
	if g.Restrict {
		children = append(children, binary.NewNode("locked", nil))
	}
	if g.Ephemeral > 0 {
		children = append(children, binary.NewNode("ephemeral",
			binary.Attrs{"expiration": strconv.FormatUint(uint64(g.Ephemeral), 10)}))
	}
	return binary.NewNode("iq", binary.Attrs{"id": id, "type": "result", "from": g.ID},
		binary.NewNode("group", attrs, children...))
}

// withServer qualifies a bare group id returned by the server.
func withServer(id string) string {
	if strings.Contains(id, "@") {
		return id
	}
	return id + "@" + jid.GroupServer
}
