package store

import (
	"sync"
	"time"
)

// Memory is an in-process KeyStore and CredsStore.
type Memory struct {
	mu     sync.RWMutex
	data   map[Category]map[string][]byte
	creds  *Creds
	groups map[string]*Group
}

var (
	_ KeyStore   = (*Memory)(nil)
	_ CredsStore = (*Memory)(nil)
	_ GroupStore = (*Memory)(nil)
)

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		data:   make(map[Category]map[string][]byte),
		groups: make(map[string]*Group),
	}
}

func (m *Memory) Get(category Category, ids ...string) (map[string][]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string][]byte, len(ids))
	for _, id := range ids {
		if v, ok := m.data[category][id]; ok {
			out[id] = append([]byte{}, v...)
		}
	}
	return out, nil
}

func (m *Memory) Set(data map[Category]map[string][]byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for category, entries := range data {
		bucket := m.data[category]
		if bucket == nil {
			bucket = make(map[string][]byte)
			m.data[category] = bucket
		}
		for id, v := range entries {
			if v == nil {
				delete(bucket, id)
				continue
			}
			bucket[id] = append([]byte{}, v...)
		}
	}
	return nil
}

func (m *Memory) SaveCreds(c *Creds) error {
	cp := *c
	m.mu.Lock()
	m.creds = &cp
	m.mu.Unlock()
	return nil
}

func (m *Memory) LoadCreds() (*Creds, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.creds == nil {
		return nil, nil
	}
	cp := *m.creds
	return &cp, nil
}

func (m *Memory) SaveGroup(g *Group) error {
	cp := *g
	cp.Participants = append([]GroupParticipant(nil), g.Participants...)
	cp.UpdatedAt = time.Now()
	m.mu.Lock()
	m.groups[g.ID] = &cp
	m.mu.Unlock()
	return nil
}

func (m *Memory) GetGroup(id string) (*Group, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.groups[id]
	if !ok {
		return nil, nil
	}
	cp := *g
	return &cp, nil
}

func (m *Memory) ListGroups() ([]*Group, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Group, 0, len(m.groups))
	for _, g := range m.groups {
		cp := *g
		out = append(out, &cp)
	}
	return out, nil
}
