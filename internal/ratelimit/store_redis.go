package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"

	"bookstand/pkg/platform/sentinel"
)

var (
	allowDurationMs = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "bookstand_ratelimit_allow_duration_ms",
		Help:    "Latency of redis rate limit checks in milliseconds",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25},
	})
)

const bucketKeyPrefix = "rl:bucket:"

// RedisBucketStore is a Redis-backed implementation of BucketStore using a
// fixed window counter. Use when multiple instances need to share throttle
// state; the key's TTL is the window.
type RedisBucketStore struct {
	client *redis.Client
}

// NewRedisBucketStore constructs a Redis-backed bucket store.
func NewRedisBucketStore(client *redis.Client) *RedisBucketStore {
	return &RedisBucketStore{client: client}
}

// Allow increments the window counter for key and reports whether the request
// fits under limit. INCR and EXPIRE run in one pipeline round trip.
func (s *RedisBucketStore) Allow(ctx context.Context, key string, limit int, window time.Duration) (*Result, error) {
	start := time.Now()
	defer func() {
		allowDurationMs.Observe(float64(time.Since(start).Microseconds()) / 1000.0)
	}()

	redisKey := bucketKeyPrefix + key

	pipe := s.client.Pipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.ExpireNX(ctx, redisKey, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", sentinel.ErrUnavailable, err)
	}

	count := int(incr.Val())
	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}

	return &Result{
		Allowed:   count <= limit,
		Remaining: remaining,
		Limit:     limit,
		ResetAt:   time.Now().Add(window),
	}, nil
}

// Reset clears the rate limit counter for a key.
func (s *RedisBucketStore) Reset(ctx context.Context, key string) error {
	return s.client.Del(ctx, bucketKeyPrefix+key).Err()
}
