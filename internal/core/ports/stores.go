package ports

import (
	"context"
	"time"
)

// NonceStore tracks proximity payload identifiers so a replayed payload is
// rejected instead of credited twice.
type NonceStore interface {
	// CheckAndSet atomically checks if nonce exists within scope, setting it
	// if not. Returns true if the nonce is new (valid), false if already used.
	CheckAndSet(ctx context.Context, scope string, nonce string, ttl time.Duration) (bool, error)
}
