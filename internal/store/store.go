// Package store is the persistence bridge: a key-value blob port with
// file, Redis and Mongo backends, plus the Mirror that serializes the room
// and booking collections to it after every mutation.
package store

import (
	"context"
	"errors"
)

// ErrNotFound reports an absent blob. Callers treat it as an empty
// collection, not a failure.
var ErrNotFound = errors.New("blob not found")

// BlobStore persists named opaque blobs. Implementations must be safe for
// concurrent use.
type BlobStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}
