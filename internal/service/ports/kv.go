package ports

import "context"

// KVStore is a small durable key-value store. Get returns
// domain.ErrKeyNotFound for missing keys; Remove of a missing key is not an
// error.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
