// Package senderkeys tracks which devices already hold our current sender
// key for a group.
package senderkeys

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/gwillem/whatsapp-go/internal/jid"
	"github.com/gwillem/whatsapp-go/internal/keylock"
	"github.com/gwillem/whatsapp-go/internal/store"
)

// memory is the persisted form of one group's membership set. Epoch is the
// sender-key id the set was built under.
type memory struct {
	Epoch   uint32   `json:"epoch"`
	Devices []string `json:"devices"`
}

// Tracker persists membership sets in the sender-key-memory category.
// Callers hold Lock(group) across the read, the send and the mark.
type Tracker struct {
	keys  store.KeyStore
	locks keylock.Map
	log   logrus.FieldLogger
}

// New returns a tracker over keys. log may be nil.
func New(keys store.KeyStore, log logrus.FieldLogger) *Tracker {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Tracker{keys: keys, log: log.WithField("component", "senderkeys")}
}

// Lock serializes membership updates for group.
func (t *Tracker) Lock(group jid.JID) func() {
	return t.locks.Lock(group.String())
}

func (t *Tracker) load(group jid.JID) (*memory, error) {
	raw, err := store.GetOne(t.keys, store.CategorySenderKeyMemory, group.String())
	if err != nil {
		return nil, fmt.Errorf("senderkeys: load %s: %w", group, err)
	}
	if raw == nil {
		return nil, nil
	}
	var m memory
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("senderkeys: decode %s: %w", group, err)
	}
	return &m, nil
}

func (t *Tracker) save(group jid.JID, m *memory) error {
	sort.Strings(m.Devices)
	raw, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("senderkeys: encode %s: %w", group, err)
	}
	return store.SetOne(t.keys, store.CategorySenderKeyMemory, group.String(), raw)
}

// DevicesNeedingKey returns the devices not known to hold the sender key of
// epoch. A set built under another epoch counts as empty.
func (t *Tracker) DevicesNeedingKey(group jid.JID, epoch uint32, devices []jid.JID) ([]jid.JID, error) {
	m, err := t.load(group)
	if err != nil {
		return nil, err
	}
	have := make(map[string]bool)
	if m != nil && m.Epoch == epoch {
		for _, d := range m.Devices {
			have[d] = true
		}
	} else if m != nil {
		t.log.WithFields(logrus.Fields{"group": group.String(), "epoch": epoch, "previous": m.Epoch}).
			Debug("sender key epoch changed, redistributing")
	}
	var out []jid.JID
	for _, d := range devices {
		if !have[d.String()] {
			out = append(out, d)
		}
	}
	return out, nil
}

// MarkDelivered records devices as holding the sender key of epoch. Marks
// from another epoch are discarded.
func (t *Tracker) MarkDelivered(group jid.JID, epoch uint32, devices []jid.JID) error {
	m, err := t.load(group)
	if err != nil {
		return err
	}
	if m == nil || m.Epoch != epoch {
		m = &memory{Epoch: epoch}
	}
	seen := make(map[string]bool, len(m.Devices))
	for _, d := range m.Devices {
		seen[d] = true
	}
	added := 0
	for _, d := range devices {
		if s := d.String(); !seen[s] {
			seen[s] = true
			m.Devices = append(m.Devices, s)
			added++
		}
	}
	if added == 0 && len(m.Devices) > 0 {
		return nil
	}
	return t.save(group, m)
}

// Forget drops devices from group's set, so the next send redistributes the
// key to them.
func (t *Tracker) Forget(group jid.JID, devices ...jid.JID) error {
	m, err := t.load(group)
	if err != nil || m == nil {
		return err
	}
	drop := make(map[string]bool, len(devices))
	for _, d := range devices {
		drop[d.String()] = true
	}
	kept := m.Devices[:0]
	for _, d := range m.Devices {
		if !drop[d] {
			kept = append(kept, d)
		}
	}
	m.Devices = kept
	return t.save(group, m)
}

// Reset forgets group's set entirely.
func (t *Tracker) Reset(group jid.JID) error {
	return store.SetOne(t.keys, store.CategorySenderKeyMemory, group.String(), nil)
}
