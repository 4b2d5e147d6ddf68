package cache

import (
	"context"
	"time"

	"github.com/poyrazK/dnsaudit/internal/infrastructure/metrics"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "dnsaudit:"

// Redis is a redis-backed cache, letting several dashboard clients share one
// fetch budget against the inventory API.
type Redis struct {
	client *redis.Client
}

// NewRedis creates a cache on a new redis client.
func NewRedis(addr, password string, db int) *Redis {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &Redis{client: rdb}
}

// Get retrieves a value if present; redis expiry handles the TTL.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		metrics.CacheOperations.WithLabelValues("redis", "miss").Inc()
		return nil, false
	}
	metrics.CacheOperations.WithLabelValues("redis", "hit").Inc()
	return val, true
}

// Set stores a value with the given TTL.
func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	r.client.Set(ctx, keyPrefix+key, value, ttl)
}

// Ping verifies connectivity to the redis server.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (r *Redis) Close() error {
	return r.client.Close()
}
