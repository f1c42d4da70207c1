// Package backend selects and constructs the storage backend the ledger
// persists into.
package backend

import (
	"kobo/internal/config"
)

const (
	FileBackend   Type = "file"
	SQLiteBackend Type = "sqlite"
	MemoryBackend Type = "memory"
)

// Type identifies a storage backend implementation.
type Type string

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid
func (t Type) IsValid() bool {
	switch t {
	case FileBackend, SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// CleanupFunc releases a backend's resources; it may be nil.
type CleanupFunc func() error

// FromAppConfig extracts the backend type from the application config.
func FromAppConfig(cfg *config.Config) Type {
	return Type(cfg.StoreBackend)
}
