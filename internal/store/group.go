package store

import (
	"encoding/json"
	"fmt"
	"time"
)

// GroupParticipant is one member of a group.
type GroupParticipant struct {
	JID   string `json:"jid"`
	Admin string `json:"admin,omitempty"`
}

// Group is the last fetched metadata of a group.
type Group struct {
	ID           string             `json:"id"`
	Subject      string             `json:"subject"`
	Owner        string             `json:"owner,omitempty"`
	Creation     int64              `json:"creation,omitempty"`
	Announce     bool               `json:"announce,omitempty"`
	Restrict     bool               `json:"restrict,omitempty"`
	Ephemeral    uint32             `json:"ephemeral,omitempty"`
	Participants []GroupParticipant `json:"participants"`
	UpdatedAt    time.Time          `json:"-"`
}

// GroupStore persists group metadata between runs.
type GroupStore interface {
	SaveGroup(g *Group) error
	// GetGroup returns nil, nil for an unknown group.
	GetGroup(id string) (*Group, error)
	ListGroups() ([]*Group, error)
}

// SaveGroup stores or updates a group record.
func (s *Store) SaveGroup(g *Group) error {
	data, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("store: marshal group: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO groups (group_id, subject, metadata, updated_at, participant_count)
		 VALUES (?, ?, ?, ?, ?)`,
		g.ID, g.Subject, data, time.Now().Unix(), len(g.Participants),
	)
	if err != nil {
		return fmt.Errorf("store: save group: %w", err)
	}
	return nil
}

// GetGroup retrieves a group by its JID string.
func (s *Store) GetGroup(id string) (*Group, error) {
	var data []byte
	var updatedAt int64
	err := s.db.QueryRow(
		"SELECT metadata, updated_at FROM groups WHERE group_id = ?", id,
	).Scan(&data, &updatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("store: get group: %w", err)
	}
	return decodeGroup(data, updatedAt)
}

// ListGroups returns all stored groups ordered by subject.
func (s *Store) ListGroups() ([]*Group, error) {
	rows, err := s.db.Query("SELECT metadata, updated_at FROM groups ORDER BY subject")
	if err != nil {
		return nil, fmt.Errorf("store: list groups: %w", err)
	}
	defer rows.Close()

	var groups []*Group
	for rows.Next() {
		var data []byte
		var updatedAt int64
		if err := rows.Scan(&data, &updatedAt); err != nil {
			return nil, fmt.Errorf("store: scan group: %w", err)
		}
		g, err := decodeGroup(data, updatedAt)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func decodeGroup(data []byte, updatedAt int64) (*Group, error) {
	var g Group
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("store: unmarshal group: %w", err)
	}
	g.UpdatedAt = time.Unix(updatedAt, 0)
	return &g, nil
}
