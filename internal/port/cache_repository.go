package port

import (
	"context"
	"time"
)

type LeaseRepository interface {
	// AcquireLease takes key for owner until ttl elapses, returns false if held by someone else
	AcquireLease(ctx context.Context, key, owner string, ttl time.Duration) (bool, error)

	// ReleaseLease drops key only if owner still holds it
	ReleaseLease(ctx context.Context, key, owner string) error
}
