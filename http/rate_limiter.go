package http

import (
	"sync"
	"time"
)

const (
	idleBucketTTL = 1 * time.Hour
	sweepInterval = 30 * time.Minute
)

// Decision is the outcome of a single Allow call.
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

type bucket struct {
	tokens   int
	refillAt time.Time
}

// RateLimiter gives every client key a bucket of capacity tokens. The bucket
// is topped up in full once per window, counted from its last refill.
type RateLimiter struct {
	mu       sync.Mutex
	capacity int
	window   time.Duration
	buckets  map[string]*bucket
	now      func() time.Time

	done     chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter starts a limiter with a background sweeper; call Stop to
// release it.
func NewRateLimiter(capacity int, window time.Duration) *RateLimiter {
	rl := newRateLimiter(capacity, window, time.Now)
	go rl.sweepLoop()
	return rl
}

func newRateLimiter(capacity int, window time.Duration, now func() time.Time) *RateLimiter {
	return &RateLimiter{
		capacity: capacity,
		window:   window,
		buckets:  make(map[string]*bucket),
		now:      now,
		done:     make(chan struct{}),
	}
}

func (rl *RateLimiter) Allow(key string) Decision {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, ok := rl.buckets[key]
	if !ok || !now.Before(b.refillAt) {
		b = &bucket{tokens: rl.capacity, refillAt: now.Add(rl.window)}
		rl.buckets[key] = b
	}

	if b.tokens <= 0 {
		return Decision{RetryAfter: b.refillAt.Sub(now)}
	}

	b.tokens--
	return Decision{Allowed: true, Remaining: b.tokens}
}

func (rl *RateLimiter) sweepLoop() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.sweep()
		case <-rl.done:
			return
		}
	}
}

// sweep forgets clients idle for longer than idleBucketTTL.
func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-idleBucketTTL)
	for key, b := range rl.buckets {
		if b.refillAt.Before(cutoff) {
			delete(rl.buckets, key)
		}
	}
}

// Stop ends the sweeper. Safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.done) })
}
