// Package kv provides the named-slot storage backend the ledger persists
// into: Get returns a slot's text or reports it absent, Set overwrites it
// whole. Backends are scoped per application instance; nothing is shared.
package kv

import "context"

// Store is the persistence port. A missing key is not an error; it is
// reported through the ok flag.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
