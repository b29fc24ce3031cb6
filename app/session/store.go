package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned for tokens the store has never seen or has expired.
var ErrNotFound = errors.New("session not found")

// Store persists session records keyed by an opaque token. Only the user's
// durable ID is stored; the full principal is re-read from the database on
// every request. Expiry is the store's responsibility.
type Store interface {
	Get(ctx context.Context, token string) (uint, error)
	Set(ctx context.Context, token string, userID uint, ttl time.Duration) error
	Destroy(ctx context.Context, token string) error
}
