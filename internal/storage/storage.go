// Package storage provides the key-value stores the ledger persists into.
package storage

// Store is a whole-value key-value persistence surface. The ledger overwrites
// its full document under a single key on every mutation, so there is no
// partial-update operation.
type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) ([]byte, bool, error)
	// Put stores value under key, replacing any previous value.
	Put(key string, value []byte) error
	// Delete removes a key. Deleting a missing key is not an error.
	Delete(key string) error
	Close() error
}
