package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const leaseKeyPrefix = "lease:"

var releaseLeaseScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
	return redis.call('DEL', KEYS[1])
end
return 0
`)

type RedisAdapter struct {
	client *redis.Client
}

func NewRedisAdapter(client *redis.Client) *RedisAdapter {
	return &RedisAdapter{client: client}
}

func (r *RedisAdapter) AcquireLease(ctx context.Context, key, owner string, ttl time.Duration) (bool, error) {
	ok, err := r.client.SetNX(ctx, leaseKeyPrefix+key, owner, ttl).Result()
	if err != nil {
		return false, err
	}

	return ok, nil
}

func (r *RedisAdapter) ReleaseLease(ctx context.Context, key, owner string) error {
	return releaseLeaseScript.Run(ctx, r.client, []string{leaseKeyPrefix + key}, owner).Err()
}

// LocalLease grants every lease. It stands in for Redis on a single node.
type LocalLease struct{}

func (LocalLease) AcquireLease(context.Context, string, string, time.Duration) (bool, error) {
	return true, nil
}

func (LocalLease) ReleaseLease(context.Context, string, string) error {
	return nil
}
