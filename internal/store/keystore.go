package store

import "fmt"

// Category partitions the key-value space.
type Category string

const (
	CategorySession         Category = "session"
	CategoryPreKey          Category = "pre-key"
	CategorySignedPreKey    Category = "signed-pre-key"
	CategorySenderKey       Category = "sender-key"
	CategorySenderKeyMemory Category = "sender-key-memory"
	CategoryIdentity        Category = "identity"
)

// KeyStore is the categorized key-value contract the session layer persists
// through. Get omits missing ids from the result. In Set, a nil value
// deletes the entry.
type KeyStore interface {
	Get(category Category, ids ...string) (map[string][]byte, error)
	Set(data map[Category]map[string][]byte) error
}

// CredsStore persists the account credentials.
type CredsStore interface {
	SaveCreds(c *Creds) error
	// LoadCreds returns nil, nil when no credentials were saved.
	LoadCreds() (*Creds, error)
}

// GetOne returns the value of a single id, or nil when absent.
func GetOne(ks KeyStore, category Category, id string) ([]byte, error) {
	m, err := ks.Get(category, id)
	if err != nil {
		return nil, err
	}
	return m[id], nil
}

// SetOne writes a single entry. A nil value deletes it.
func SetOne(ks KeyStore, category Category, id string, value []byte) error {
	if err := ks.Set(map[Category]map[string][]byte{category: {id: value}}); err != nil {
		return fmt.Errorf("store: set %s %s: %w", category, id, err)
	}
	return nil
}
