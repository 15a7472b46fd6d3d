package store

import (
	"encoding/json"
	"fmt"
)

// Creds holds the long-lived account material of this device.
type Creds struct {
	Me                      string `json:"me"`
	RegistrationID          uint32 `json:"registrationId"`
	IdentityKeyPair         []byte `json:"identityKeyPair"`
	SignedPreKey            []byte `json:"signedPreKey"`
	NextPreKeyID            uint32 `json:"nextPreKeyId"`
	FirstUnuploadedPreKeyID uint32 `json:"firstUnuploadedPreKeyId"`
	Account                 []byte `json:"account,omitempty"`
}

const credsKey = "creds"

// SaveCreds persists the credentials to the database.
func (s *Store) SaveCreds(c *Creds) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("store: marshal creds: %w", err)
	}
	_, err = s.db.Exec(
		"INSERT OR REPLACE INTO account (key, value) VALUES (?, ?)",
		credsKey, data,
	)
	if err != nil {
		return fmt.Errorf("store: save creds: %w", err)
	}
	return nil
}

// LoadCreds loads the credentials from the database.
// Returns nil, nil if none have been saved.
func (s *Store) LoadCreds() (*Creds, error) {
	var data []byte
	err := s.db.QueryRow(
		"SELECT value FROM account WHERE key = ?", credsKey,
	).Scan(&data)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("store: load creds: %w", err)
	}

	var c Creds
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("store: unmarshal creds: %w", err)
	}
	return &c, nil
}
