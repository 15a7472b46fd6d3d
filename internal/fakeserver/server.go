// Package fakeserver is an in-process relay answering device lists, key
// bundles and group metadata, and routing message stanzas per device.
package fakeserver

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gwillem/whatsapp-go/internal/binary"
	"github.com/gwillem/whatsapp-go/internal/groups"
	"github.com/gwillem/whatsapp-go/internal/jid"
	"github.com/gwillem/whatsapp-go/internal/signalrepo"
	"github.com/gwillem/whatsapp-go/internal/socket"
	"github.com/gwillem/whatsapp-go/internal/store"
	"github.com/gwillem/whatsapp-go/internal/usync"
)

type device struct {
	jid      jid.JID
	keyIndex uint32
	keys     *signalrepo.PreKeyUpload
	inbox    []binary.Node
	notify   chan struct{}
}

// Server is safe for concurrent use.
type Server struct {
	mu      sync.Mutex
	devices map[jid.JID]*device
	groups  map[string]*store.Group
	sent    []binary.Node
	queries map[string]int
	privacy map[string]string
	tokens  map[jid.JID][]string

	rejectBundles bool
	broken        map[jid.JID]bool
	log           logrus.FieldLogger
}

// New returns an empty server. log may be nil.
func New(log logrus.FieldLogger) *Server {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Server{
		devices: make(map[jid.JID]*device),
		groups:  make(map[string]*store.Group),
		queries: make(map[string]int),
		privacy: make(map[string]string),
		tokens:  make(map[jid.JID][]string),
		broken:  make(map[jid.JID]bool),
		log:     log.WithField("component", "fakeserver"),
	}
}

// AddDevice lists d in its user's device list. A device without uploaded
// keys has no bundle.
func (s *Server) AddDevice(d jid.JID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.device(d)
}

func (s *Server) device(d jid.JID) *device {
	dev, ok := s.devices[d]
	if !ok {
		dev = &device{jid: d, keyIndex: 1, notify: make(chan struct{}, 1)}
		s.devices[d] = dev
	}
	return dev
}

// RemoveDevice unlists d.
func (s *Server) RemoveDevice(d jid.JID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.devices, d)
}

// AddGroup stores group metadata.
func (s *Server) AddGroup(g *store.Group) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups[g.ID] = g
}

// RejectKeyBundles makes key bundle queries fail with 406.
func (s *Server) RejectKeyBundles(reject bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rejectBundles = reject
}

// BreakBundle makes the bundle of d malformed.
func (s *Server) BreakBundle(d jid.JID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.broken[d] = true
}

// SetPrivacy sets a privacy category served to every device.
func (s *Server) SetPrivacy(category, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.privacy[category] = value
}

// PrivacyTokens returns the users d issued trusted-contact tokens for.
func (s *Server) PrivacyTokens(d jid.JID) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.tokens[d]...)
}

// Sent returns the message stanzas received so far.
func (s *Server) Sent() []binary.Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]binary.Node(nil), s.sent...)
}

// Queries returns how many queries of xmlns were answered.
func (s *Server) Queries(xmlns string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queries[xmlns]
}

// Inbox drains the nodes routed to d.
func (s *Server) Inbox(d jid.JID) []binary.Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	dev, ok := s.devices[d]
	if !ok {
		return nil
	}
	out := dev.inbox
	dev.inbox = nil
	return out
}

// Handle processes a node from device from. Queries return their response;
// other nodes return false.
func (s *Server) Handle(from jid.JID, n binary.Node) (binary.Node, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch n.Tag {
	case "iq":
		resp := s.query(from, n)
		resp.SetAttr("id", n.Attr("id"))
		return resp, true
	case "message":
		s.sent = append(s.sent, n)
		s.routeMessage(from, n)
	case "receipt":
		s.routeReceipt(from, n)
	default:
		s.log.WithField("tag", n.Tag).Debug("ignoring node")
	}
	return binary.Node{}, false
}

func errorIQ(code int, text string) binary.Node {
	return binary.NewNode("iq", binary.Attrs{"type": "error"},
		binary.NewNode("error", binary.Attrs{"code": strconv.Itoa(code), "text": text}))
}

func resultIQ(children ...binary.Node) binary.Node {
	return binary.NewNode("iq", binary.Attrs{"type": "result", "from": jid.ServerJID.String()}, children...)
}

func (s *Server) query(from jid.JID, iq binary.Node) binary.Node {
	xmlns := iq.Attr("xmlns")
	s.queries[xmlns]++
	switch {
	case xmlns == "usync":
		return usync.ResultNode("", usync.RequestedUsers(iq), s.listDevices)
	case xmlns == "encrypt" && iq.Attr("type") == "get":
		if s.rejectBundles {
			return errorIQ(406, "not-acceptable")
		}
		return s.bundles(signalrepo.RequestedDevices(iq))
	case xmlns == "encrypt" && iq.Attr("type") == "set":
		up, err := signalrepo.ParsePreKeyUpload(iq)
		if err != nil {
			return errorIQ(400, "bad-request")
		}
		dev := s.device(from)
		if dev.keys != nil {
			up.PreKeys = append(dev.keys.PreKeys, up.PreKeys...)
		}
		dev.keys = up
		return resultIQ()
	case xmlns == "w:g2":
		g, ok := s.groups[iq.Attr("to")]
		if !ok {
			return errorIQ(404, "item-not-found")
		}
		return groups.ResultNode("", g)
	case xmlns == "w:p":
		return resultIQ()
	case xmlns == "privacy" && iq.Attr("type") == "get":
		names := make([]string, 0, len(s.privacy))
		for name := range s.privacy {
			names = append(names, name)
		}
		sort.Strings(names)
		categories := make([]binary.Node, len(names))
		for i, name := range names {
			categories[i] = binary.NewNode("category", binary.Attrs{"name": name, "value": s.privacy[name]})
		}
		return resultIQ(binary.NewNode("privacy", nil, categories...))
	case xmlns == "privacy" && iq.Attr("type") == "set":
		tokens, ok := iq.GetChildByTag("tokens")
		if !ok {
			return errorIQ(400, "bad-request")
		}
		for _, t := range tokens.GetChildrenByTag("token") {
			if t.Attr("type") != "trusted_contact" || t.Attr("t") == "" {
				return errorIQ(400, "bad-request")
			}
			s.tokens[from] = append(s.tokens[from], t.Attr("jid"))
		}
		return resultIQ()
	}
	return errorIQ(501, "feature-not-implemented")
}

func (s *Server) listDevices(user jid.JID) []usync.Device {
	var out []usync.Device
	for d, dev := range s.devices {
		if d.SameUser(user) {
			out = append(out, usync.Device{ID: d.Device, KeyIndex: dev.keyIndex})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// bundles hands out one pre-key per device, as the real directory does.
func (s *Server) bundles(devices []jid.JID) binary.Node {
	users := make([]binary.Node, 0, len(devices))
	for _, d := range devices {
		dev, ok := s.devices[d]
		if !ok || dev.keys == nil {
			users = append(users, signalrepo.ErrorBundleNode(d, 404, "item-not-found"))
			continue
		}
		if s.broken[d] {
			users = append(users, binary.NewNode("user", binary.Attrs{"jid": d.String()},
				binary.NewBytesNode("registration", nil, []byte{1})))
			continue
		}
		b := &signalrepo.SessionBundle{
			RegistrationID: dev.keys.RegistrationID,
			IdentityKey:    dev.keys.IdentityKey,
			SignedPreKey:   dev.keys.SignedPreKey,
		}
		if len(dev.keys.PreKeys) > 0 {
			pk := dev.keys.PreKeys[0]
			dev.keys.PreKeys = dev.keys.PreKeys[1:]
			b.PreKey = &pk
		}
		users = append(users, signalrepo.BundleNode(d, b))
	}
	return resultIQ(binary.NewNode("list", nil, users...))
}

func (s *Server) deliver(d jid.JID, n binary.Node) {
	dev, ok := s.devices[d]
	if !ok {
		s.log.WithField("jid", d.String()).Debug("dropping node for unknown device")
		return
	}
	dev.inbox = append(dev.inbox, n)
	select {
	case dev.notify <- struct{}{}:
	default:
	}
}

func (s *Server) userDevices(user jid.JID) []jid.JID {
	var out []jid.JID
	for d := range s.devices {
		if d.SameUser(user) {
			out = append(out, d)
		}
	}
	return out
}

// routeMessage splits a stanza into one message per addressed device.
func (s *Server) routeMessage(from jid.JID, n binary.Node) {
	to, err := jid.Parse(n.Attr("to"))
	if err != nil {
		return
	}
	base := binary.Attrs{"id": n.Attr("id"), "type": n.Attr("type"), "t": strconv.FormatInt(time.Now().Unix(), 10)}
	var extra []binary.Node
	if di, ok := n.GetChildByTag("device-identity"); ok {
		extra = append(extra, di)
	}
	if to.IsGroup() {
		base["from"] = to.String()
		base["participant"] = from.String()
	} else {
		base["from"] = from.String()
	}

	perDevice := map[jid.JID][]binary.Node{}
	if p, ok := n.GetChildByTag("participants"); ok {
		for _, t := range p.GetChildrenByTag("to") {
			d, err := jid.Parse(t.Attr("jid"))
			if err != nil {
				continue
			}
			perDevice[d] = append(perDevice[d], t.GetChildrenByTag("enc")...)
		}
	}
	bare := n.GetChildrenByTag("enc")

	switch {
	case to.IsGroup() && n.Attr("participant") != "":
		target, err := jid.Parse(n.Attr("participant"))
		if err == nil {
			perDevice[target] = append(perDevice[target], bare...)
		}
	case to.IsGroup():
		g, ok := s.groups[to.String()]
		if !ok {
			return
		}
		for _, p := range g.Participants {
			member, err := jid.Parse(p.JID)
			if err != nil {
				continue
			}
			for _, d := range s.userDevices(member) {
				if d != from {
					perDevice[d] = append(perDevice[d], bare...)
				}
			}
		}
	case len(bare) > 0:
		perDevice[to] = append(perDevice[to], bare...)
	}

	for d, encs := range perDevice {
		if len(encs) == 0 || d == from {
			continue
		}
		attrs := binary.Attrs{}
		for k, v := range base {
			attrs[k] = v
		}
		if !to.IsGroup() && d.SameUser(from) {
			if r := n.Attr("recipient"); r != "" {
				attrs["recipient"] = r
			} else if !to.SameUser(from) {
				attrs["recipient"] = to.ToNonAD().String()
			}
		}
		children := append(append([]binary.Node(nil), encs...), extra...)
		s.deliver(d, binary.NewNode("message", attrs, children...))
	}
}

// routeReceipt forwards a receipt to the devices of the user it names.
func (s *Server) routeReceipt(from jid.JID, n binary.Node) {
	to, err := jid.Parse(n.Attr("to"))
	if err != nil {
		return
	}
	attrs := binary.Attrs{}
	for k, v := range n.Attrs {
		attrs[k] = v
	}
	delete(attrs, "to")
	var targets []jid.JID
	if to.IsGroup() {
		author, err := jid.Parse(n.Attr("participant"))
		if err != nil {
			return
		}
		attrs["from"] = to.String()
		attrs["participant"] = from.String()
		targets = []jid.JID{author}
	} else {
		attrs["from"] = from.String()
		delete(attrs, "participant")
		if to.Device != 0 || n.Attr("type") == "retry" {
			targets = []jid.JID{to}
		} else {
			targets = s.userDevices(to)
		}
	}
	for _, d := range targets {
		if d != from {
			s.deliver(d, binary.NewNode("receipt", attrs, n.GetChildren()...))
		}
	}
}

// Endpoint is an in-process transport for one device.
type Endpoint struct {
	s      *Server
	device jid.JID
}

// Endpoint returns the transport of device d, listing d if needed.
func (s *Server) Endpoint(d jid.JID) *Endpoint {
	s.AddDevice(d)
	return &Endpoint{s: s, device: d}
}

// Query answers an iq synchronously, returning error responses as
// *binary.ServerRejectedError.
func (e *Endpoint) Query(ctx context.Context, n binary.Node) (binary.Node, error) {
	if err := ctx.Err(); err != nil {
		return binary.Node{}, err
	}
	resp, ok := e.s.Handle(e.device, n)
	if !ok {
		return binary.Node{}, fmt.Errorf("fakeserver: <%s> is not a query", n.Tag)
	}
	if err := binary.AssertErrorFree(&resp); err != nil {
		return resp, err
	}
	return resp, nil
}

// Send hands a node to the server.
func (e *Endpoint) Send(ctx context.Context, n binary.Node) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e.s.Handle(e.device, n)
	return nil
}

// Inbox drains the nodes routed to this device.
func (e *Endpoint) Inbox() []binary.Node { return e.s.Inbox(e.device) }

// ServeHTTP accepts a websocket from the device named by the device query
// parameter and relays nodes both ways until it closes.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	d, err := jid.Parse(r.URL.Query().Get("device"))
	if err != nil || !d.IsUser() {
		http.Error(w, "missing device", http.StatusBadRequest)
		return
	}
	conn, err := socket.Accept(w, r)
	if err != nil {
		s.log.WithError(err).Warn("accept")
		return
	}
	defer conn.CloseNow()

	s.mu.Lock()
	notify := s.device(d).notify
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	var wmu sync.Mutex
	write := func(n binary.Node) error {
		wmu.Lock()
		defer wmu.Unlock()
		return conn.WriteNode(ctx, n)
	}

	go func() {
		for {
			for _, n := range s.Inbox(d) {
				if err := write(n); err != nil {
					cancel()
					return
				}
			}
			select {
			case <-ctx.Done():
				return
			case <-notify:
			}
		}
	}()

	for {
		n, err := conn.ReadNode(ctx)
		if err != nil {
			return
		}
		if resp, ok := s.Handle(d, n); ok {
			if err := write(resp); err != nil {
				return
			}
		}
	}
}
