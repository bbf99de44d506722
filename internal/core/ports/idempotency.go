package ports

import "context"

// IdempotencyStore remembers which resource a client-supplied key created.
// Keys are already scoped to the acting user by the caller.
type IdempotencyStore interface {
	// Reserve claims key for a new request. When the key was already completed
	// it returns the stored resource ID with reserved=false. A key that is
	// reserved but not completed yields domain.ErrRequestInFlight.
	Reserve(ctx context.Context, key string) (existingID int64, reserved bool, err error)
	// Complete records the resource created under a reserved key.
	Complete(ctx context.Context, key string, id int64) error
	// Release drops a reservation after a failed request.
	Release(ctx context.Context, key string) error
}
