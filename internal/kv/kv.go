// ABOUTME: String-keyed get/set contract for durable storage.
// ABOUTME: History and user lists persist serialized blobs through this interface.
package kv

import "errors"

// ErrNotFound is returned by Get when the key has no stored value.
var ErrNotFound = errors.New("kv: key not found")

// Store is the persistence collaborator: a simple string-keyed blob store
// with no transactional guarantees. The design assumes a single writer (the
// current session); a multi-writer deployment needs a locking layer added
// at this boundary.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Keys() ([]string, error)
	Close() error
}
