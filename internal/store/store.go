// Package store implements the persistent key-value substrate the
// marketplace collections are serialized to and from. Each collection
// lives under a single well-known key; a save replaces the whole value
// (last write wins, no cross-key atomicity).
package store

import "context"

// Well-known keys. One key per collection plus the session pointer.
const (
	KeyAccounts = "accounts"
	KeyProducts = "products"
	KeyCart     = "cart"
	KeySession  = "session"
)

// Store is the durable key-value contract used by every component.
//
// Contract:
//   - Load returns (nil, nil) when the key is absent.
//   - Save overwrites the previous value for the key, if any.
//   - Delete is idempotent.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
