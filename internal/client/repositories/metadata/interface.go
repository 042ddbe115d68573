// Package metadata is the durable key/value store of the client. The session
// token lives here under a single key; absence of the key means logged out.
package metadata

import (
	"context"
)

// Repository is a small key/value store. Get returns (nil, nil) for a
// missing key and Delete of a missing key is not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
