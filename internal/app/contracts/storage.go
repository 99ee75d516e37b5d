package contracts

import "context"

// KeyValueStorage is the persistence medium behind the credential store.
// SetMany must apply all entries atomically so readers never observe a
// partial update.
type KeyValueStorage interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	SetMany(ctx context.Context, entries map[string]string) error
	Delete(ctx context.Context, keys ...string) error
	Driver() string
}
