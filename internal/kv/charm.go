// ABOUTME: Charm Cloud KV Store implementation with automatic sync after writes.
// ABOUTME: Falls back to read-only mode when another process holds the lock.
package kv

import (
	"errors"
	"fmt"
	"os"

	charmkv "github.com/charmbracelet/charm/kv"
	badger "github.com/dgraph-io/badger/v3"
)

const charmHost = "charm.2389.dev"

// Charm is a Store backed by Charm Cloud KV. Data is E2E encrypted with the
// user's SSH key and synced across devices on each write.
type Charm struct {
	kv *charmkv.KV
}

// OpenCharm opens the named Charm KV database, pulling remote state first.
func OpenCharm(name string) (*Charm, error) {
	if err := os.Setenv("CHARM_HOST", charmHost); err != nil {
		return nil, err
	}

	db, err := charmkv.OpenWithDefaultsFallback(name)
	if err != nil {
		return nil, fmt.Errorf("open charm kv: %w", err)
	}

	if !db.IsReadOnly() {
		_ = db.Sync()
	}
	return &Charm{kv: db}, nil
}

func (c *Charm) Get(key string) ([]byte, error) {
	value, err := c.kv.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("charm get: %w", err)
	}
	return value, nil
}

func (c *Charm) Set(key string, value []byte) error {
	if c.kv.IsReadOnly() {
		return fmt.Errorf("cannot write: database is locked by another process")
	}
	if err := c.kv.Set([]byte(key), value); err != nil {
		return fmt.Errorf("charm set: %w", err)
	}
	_ = c.kv.Sync()
	return nil
}

func (c *Charm) Delete(key string) error {
	if c.kv.IsReadOnly() {
		return fmt.Errorf("cannot write: database is locked by another process")
	}
	if err := c.kv.Delete([]byte(key)); err != nil {
		return fmt.Errorf("charm delete: %w", err)
	}
	_ = c.kv.Sync()
	return nil
}

func (c *Charm) Keys() ([]string, error) {
	raw, err := c.kv.Keys()
	if err != nil {
		return nil, fmt.Errorf("charm keys: %w", err)
	}
	keys := make([]string, 0, len(raw))
	for _, k := range raw {
		keys = append(keys, string(k))
	}
	return keys, nil
}

func (c *Charm) Close() error {
	return c.kv.Close()
}
