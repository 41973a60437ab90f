package ratelimit

import (
	"context"
	"sync"
	"time"
)

// InMemoryBucketStore implements BucketStore using an in-memory sliding
// window. Single-process only; for shared state across instances use the
// redis store instead.
type InMemoryBucketStore struct {
	mu      sync.Mutex
	buckets map[string]*slidingWindow
}

// slidingWindow tracks request timestamps so bursts straddling a window
// boundary cannot double the effective limit.
type slidingWindow struct {
	timestamps []time.Time
	window     time.Duration
}

// NewInMemoryBucketStore creates a new in-memory bucket store.
func NewInMemoryBucketStore() *InMemoryBucketStore {
	return &InMemoryBucketStore{
		buckets: make(map[string]*slidingWindow),
	}
}

// Allow checks if a request is allowed and increments the counter.
func (s *InMemoryBucketStore) Allow(_ context.Context, key string, limit int, window time.Duration) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	w := s.getOrCreateBucket(key, window)
	w.cleanup(now)

	if len(w.timestamps)+1 <= limit {
		w.timestamps = append(w.timestamps, now)

		resetAt := w.timestamps[0].Add(window)
		return &Result{
			Allowed:   true,
			Remaining: limit - len(w.timestamps),
			Limit:     limit,
			ResetAt:   resetAt,
		}, nil
	}

	return &Result{
		Allowed:   false,
		Remaining: 0,
		Limit:     limit,
		ResetAt:   w.timestamps[0].Add(window),
	}, nil
}

// Reset clears the rate limit counter for a key.
func (s *InMemoryBucketStore) Reset(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.buckets, key)
	return nil
}

func (s *InMemoryBucketStore) getOrCreateBucket(key string, window time.Duration) *slidingWindow {
	w, ok := s.buckets[key]
	if !ok {
		w = &slidingWindow{window: window}
		s.buckets[key] = w
	}
	return w
}

// cleanup drops timestamps that have slid out of the window.
func (w *slidingWindow) cleanup(now time.Time) {
	cutoff := now.Add(-w.window)
	kept := w.timestamps[:0]
	for _, ts := range w.timestamps {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	w.timestamps = kept
}
