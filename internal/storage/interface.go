// Package storage provides the persistence adapter: a synchronous key-value
// store of serialized collections, with JSON-directory, SQLite and PostgreSQL
// backends.
package storage

import "errors"

// ErrNotFound is returned by Load when a collection has never been saved.
var ErrNotFound = errors.New("collection not found")

// Provider persists serialized collections keyed by name. Writes are
// serialized per collection by the single-threaded caller; atomicity across
// collections is not required.
type Provider interface {
	// Init creates the underlying storage. It fails if storage already
	// exists at the configured location.
	Init() error

	// Load returns the serialized bytes for a collection, or ErrNotFound
	// if the collection is absent.
	Load(collection string) ([]byte, error)

	// Save replaces the serialized bytes for a collection, creating the
	// underlying storage on first write if needed.
	Save(collection string, data []byte) error

	Close() error

	// ConfigPath returns the location backing this store, for diagnostics.
	ConfigPath() string
}
