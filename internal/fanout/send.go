package fanout

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/gwillem/whatsapp-go/internal/binary"
	"github.com/gwillem/whatsapp-go/internal/jid"
	"github.com/gwillem/whatsapp-go/internal/signalrepo"
	"github.com/gwillem/whatsapp-go/internal/waproto"
)

// RetryTarget addresses a resend to exactly one device.
type RetryTarget struct {
	Device jid.JID
	// Count is the retry attempt the resend answers; 0 omits it.
	Count int
}

// SendOptions tunes one send.
type SendOptions struct {
	// ID is the message id; empty generates one.
	ID string
	// Retry restricts the send to one device.
	Retry *RetryTarget
	// Attrs are extra message attributes, such as edit.
	Attrs binary.Attrs
}

// Send builds the stanza for message to a user or group and transmits it.
// An empty stanza is not transmitted and is not an error. Sender-key
// deliveries are recorded only after the transport accepted the stanza, and
// a group's sender-key lock is held from building until they are recorded
// so concurrent sends to one group distribute the key once.
func (e *Encryptor) Send(ctx context.Context, to jid.JID, message []byte, opts SendOptions) (*Stanza, error) {
	if to.IsGroup() {
		unlock := e.senderKeys.Lock(to)
		defer unlock()
	}
	st, err := e.build(ctx, to, message, opts)
	if err != nil {
		return nil, err
	}
	log := e.log.WithFields(logrus.Fields{"msg_id": st.ID, "jid": to.String()})
	if st.IsEmpty() {
		log.Debug("no envelopes, nothing to send")
		return st, nil
	}
	if err := e.tr.Send(ctx, st.Node); err != nil {
		return nil, fmt.Errorf("fanout: send %s: %w", st.ID, err)
	}
	e.sent.Add(st.ID, sentMessage{to: to, message: message})
	if err := e.markDelivered(st); err != nil {
		return st, err
	}
	log.WithField("count", st.Envelopes).Debug("sent message")
	return st, nil
}

func (e *Encryptor) markDelivered(st *Stanza) error {
	if st.keyGroup.IsEmpty() || len(st.keyDevices) == 0 {
		return nil
	}
	if err := e.senderKeys.MarkDelivered(st.keyGroup, st.keyEpoch, st.keyDevices); err != nil {
		return fmt.Errorf("fanout: mark sender key delivered: %w", err)
	}
	e.metrics.keyDelivered.Add(float64(len(st.keyDevices)))
	return nil
}

func (e *Encryptor) build(ctx context.Context, to jid.JID, message []byte, opts SendOptions) (*Stanza, error) {
	if opts.ID == "" {
		opts.ID = NewMessageID()
	}
	var (
		st  *Stanza
		err error
	)
	switch {
	case opts.Retry != nil:
		st, err = e.buildRetry(ctx, to, message, opts)
		e.metrics.stanzas.WithLabelValues("retry").Inc()
	case to.IsGroup():
		st, err = e.buildGroup(ctx, to, message, opts)
		e.metrics.stanzas.WithLabelValues("group").Inc()
	case to.IsUser():
		st, err = e.buildDirect(ctx, to.ToNonAD(), message, opts)
		e.metrics.stanzas.WithLabelValues("direct").Inc()
	default:
		return nil, &AssertionError{Message: "unsupported destination " + to.String()}
	}
	if err != nil {
		return nil, err
	}
	st.Envelopes = countEnvelopes(st.Node)
	return st, nil
}

// buildDirect addresses every device of the peer and our other devices.
// Our devices get the message wrapped as sent to the peer.
func (e *Encryptor) buildDirect(ctx context.Context, to jid.JID, message []byte, opts SendOptions) (*Stanza, error) {
	me := e.repo.Me()
	candidates := []jid.JID{to.ToNonAD()}
	if me.Device != 0 {
		candidates = append(candidates, me.ToNonAD())
	}
	resolved, err := e.devices.Devices(ctx, []jid.JID{me.ToNonAD(), to})
	if err != nil {
		return nil, fmt.Errorf("fanout: resolve devices: %w", err)
	}
	var own, other []jid.JID
	for _, d := range dedupe(append(candidates, resolved...)) {
		switch {
		case d == me:
		case d.SameUser(me):
			own = append(own, d)
		default:
			other = append(other, d)
		}
	}
	if _, err := e.EnsureSessions(ctx, append(append([]jid.JID(nil), own...), other...), false); err != nil {
		return nil, err
	}

	attrs := mediaAttrs(message)
	wrapped, err := waproto.WrapDeviceSent(to.String(), message)
	if err != nil {
		return nil, &AssertionError{Message: "encode device sent message", Err: err}
	}
	var ownEnv, otherEnv *envelopes
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		ownEnv, err = e.encryptForDevices(gctx, own, waproto.Pad(wrapped), attrs)
		return err
	})
	g.Go(func() (err error) {
		otherEnv, err = e.encryptForDevices(gctx, other, waproto.Pad(message), attrs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	participants := append(ownEnv.participantNodes(), otherEnv.participantNodes()...)
	node, err := e.assemble(messageAttrs(opts.ID, to, opts.Attrs), nil, participants, ownEnv.preKey || otherEnv.preKey)
	if err != nil {
		return nil, err
	}
	return &Stanza{Node: node, ID: opts.ID, To: to}, nil
}

// buildGroup encrypts the body once on our sender key and adds a
// distribution envelope for every device not yet holding the key. The
// caller holds the group's sender-key lock.
func (e *Encryptor) buildGroup(ctx context.Context, group jid.JID, message []byte, opts SendOptions) (*Stanza, error) {
	members, err := e.groups.Participants(ctx, group, false)
	if err != nil {
		return nil, &AssertionError{Message: "group metadata for " + group.String(), Err: err}
	}
	if len(members) == 0 {
		return nil, &AssertionError{Message: "group " + group.String() + " has no participants"}
	}
	res, err := e.repo.EncryptGroupMessage(group, waproto.Pad(message))
	if err != nil {
		return nil, fmt.Errorf("fanout: group encrypt: %w", err)
	}
	devices, err := e.devices.Devices(ctx, members)
	if err != nil {
		return nil, fmt.Errorf("fanout: resolve devices: %w", err)
	}
	need, err := e.senderKeys.DevicesNeedingKey(group, res.KeyID, devices)
	if err != nil {
		return nil, err
	}

	attrs := mediaAttrs(message)
	env := &envelopes{}
	if len(need) > 0 {
		if _, err := e.EnsureSessions(ctx, need, false); err != nil {
			return nil, err
		}
		skdm, err := waproto.SenderKeyDistributionOnly(group.String(), res.SenderKeyDistributionMessage)
		if err != nil {
			return nil, fmt.Errorf("fanout: encode distribution: %w", err)
		}
		if env, err = e.encryptForDevices(ctx, need, waproto.Pad(skdm), attrs); err != nil {
			return nil, err
		}
	}
	e.metrics.envelopes.WithLabelValues(signalrepo.TypeSenderKey).Inc()

	msgAttrs := messageAttrs(opts.ID, group, opts.Attrs)
	msgAttrs["addressing_mode"] = "pn"
	body := []binary.Node{encNode(signalrepo.TypeSenderKey, res.Ciphertext, attrs)}
	node, err := e.assemble(msgAttrs, body, env.participantNodes(), env.preKey)
	if err != nil {
		return nil, err
	}
	e.log.WithFields(logrus.Fields{
		"group": group.String(), "devices": len(devices), "count": len(env.devices),
	}).Debug("built group stanza")
	return &Stanza{
		Node: node, ID: opts.ID, To: group,
		keyGroup: group, keyEpoch: res.KeyID, keyDevices: env.devices,
	}, nil
}

// buildRetry resends to one device as a bare enc. In groups the sender key
// distribution travels inside the pairwise payload.
func (e *Encryptor) buildRetry(ctx context.Context, to jid.JID, message []byte, opts SendOptions) (*Stanza, error) {
	target := opts.Retry.Device
	if !target.IsUser() {
		return nil, &AssertionError{Message: "retry target " + target.String() + " is not a device"}
	}
	me := e.repo.Me()
	if target == me {
		return nil, &AssertionError{Message: "retry target is this device"}
	}
	if _, err := e.EnsureSessions(ctx, []jid.JID{target}, false); err != nil {
		return nil, err
	}

	payload := message
	st := &Stanza{ID: opts.ID, To: to}
	attrs := binary.Attrs{"type": "text"}
	for k, v := range opts.Attrs {
		attrs[k] = v
	}
	attrs["id"] = opts.ID
	switch {
	case to.IsGroup():
		skdm, keyID, err := e.repo.SenderKeyDistribution(to)
		if err != nil {
			return nil, fmt.Errorf("fanout: sender key distribution: %w", err)
		}
		if payload, err = waproto.EmbedSenderKeyDistribution(message, to.String(), skdm); err != nil {
			return nil, &AssertionError{Message: "encode retry payload", Err: err}
		}
		attrs["to"] = to.String()
		attrs["participant"] = target.String()
		attrs["addressing_mode"] = "pn"
		st.keyGroup, st.keyEpoch = to, keyID
	case target.SameUser(me):
		var err error
		if payload, err = waproto.WrapDeviceSent(to.ToNonAD().String(), message); err != nil {
			return nil, &AssertionError{Message: "encode retry payload", Err: err}
		}
		attrs["to"] = target.String()
		attrs["recipient"] = to.ToNonAD().String()
		attrs["device_fanout"] = "false"
	default:
		attrs["to"] = target.String()
		attrs["device_fanout"] = "false"
	}

	env, err := e.encryptForDevices(ctx, []jid.JID{target}, waproto.Pad(payload), withCount(mediaAttrs(message), opts.Retry.Count))
	if err != nil {
		return nil, err
	}
	if !st.keyGroup.IsEmpty() {
		st.keyDevices = env.devices
	}
	node, err := e.assemble(attrs, env.encs, nil, env.preKey)
	if err != nil {
		return nil, err
	}
	st.Node = node
	return st, nil
}

// envelopes are the pairwise ciphertexts of one fan-out, in device order.
type envelopes struct {
	devices []jid.JID
	encs    []binary.Node
	preKey  bool
}

func (v *envelopes) participantNodes() []binary.Node {
	out := make([]binary.Node, len(v.devices))
	for i, d := range v.devices {
		out[i] = participantNode(d, v.encs[i])
	}
	return out
}

// encryptForDevices encrypts payload for each device with bounded
// concurrency. Devices without a usable session are skipped and their user's
// device list is invalidated; any other error aborts.
func (e *Encryptor) encryptForDevices(ctx context.Context, devices []jid.JID, payload []byte, attrs binary.Attrs) (*envelopes, error) {
	results := make([]*signalrepo.EncryptResult, len(devices))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.EncryptConcurrency)
	for i, d := range devices {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := e.repo.EncryptMessage(d, payload)
			if err != nil {
				if isSessionError(err) {
					e.metrics.skipped.Inc()
					e.devices.Invalidate(d)
					e.log.WithError(err).WithField("jid", d.String()).Warn("skipping device")
					return nil
				}
				return fmt.Errorf("fanout: encrypt for %s: %w", d, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	env := &envelopes{}
	for i, res := range results {
		if res == nil {
			continue
		}
		env.devices = append(env.devices, devices[i])
		env.encs = append(env.encs, encNode(res.Type, res.Ciphertext, attrs))
		env.preKey = env.preKey || res.Type == signalrepo.TypePreKey
		e.metrics.envelopes.WithLabelValues(res.Type).Inc()
	}
	return env, nil
}
