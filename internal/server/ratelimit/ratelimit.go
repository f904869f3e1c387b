// Package ratelimit throttles API clients using per-endpoint token buckets.
package ratelimit

import (
	"sync"
	"time"
)

// bucket is a token bucket for one client+endpoint pair. Tokens refill
// at a steady rate up to the burst capacity.
type bucket struct {
	capacity   int
	refillRate float64 // tokens per second

	mu         sync.Mutex
	tokens     float64
	lastRefill time.Time
	lastSeen   time.Time
}

func newBucket(capacity int, refillRate float64) *bucket {
	now := time.Now()
	return &bucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: now,
		lastSeen:   now,
	}
}

// refillLocked adds tokens for the time elapsed since the last refill.
// Callers must hold b.mu.
func (b *bucket) refillLocked(now time.Time) {
	elapsed := now.Sub(b.lastRefill)
	b.tokens = min(float64(b.capacity), b.tokens+elapsed.Seconds()*b.refillRate)
	b.lastRefill = now
}

// take consumes one token if available.
func (b *bucket) take() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.refillLocked(now)
	b.lastSeen = now

	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		return true
	}
	return false
}

// status reports remaining tokens and when the bucket will be full again,
// without consuming a token.
func (b *bucket) status() (remaining int, reset time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.refillLocked(now)

	remaining = int(b.tokens)
	if b.tokens < float64(b.capacity) {
		needed := float64(b.capacity) - b.tokens
		reset = now.Add(time.Duration(needed / b.refillRate * float64(time.Second)))
	} else {
		reset = now
	}
	return remaining, reset
}

// Info contains information about rate limit status.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// Limiter manages rate limiting for multiple clients using token buckets.
type Limiter struct {
	config *Config

	mu      sync.RWMutex
	buckets map[string]*bucket

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
}

// NewLimiter creates a new rate limiter with the given configuration.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
			Whitelist:       make(map[string]bool),
			Blacklist:       make(map[string]bool),
		}
	}

	l := &Limiter{
		config:  config,
		buckets: make(map[string]*bucket),
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.cleanupTicker = time.NewTicker(config.CleanupInterval)
		l.cleanupStop = make(chan struct{})
		go l.cleanupLoop()
	}

	return l
}

// Allow checks if a request from the given client is allowed for the
// specified endpoint. Returns the decision along with rate limit headers
// material.
func (l *Limiter) Allow(clientID string, endpoint string, method string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}

	if l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{Allowed: false}
	}

	cfg := MatchEndpoint(endpoint, method, l.config.EndpointConfigs)
	if cfg == nil {
		cfg = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
			Burst:  l.config.DefaultLimit,
		}
	}

	// Unlimited endpoint (e.g. health check)
	if cfg.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	key := clientID + ":" + endpoint + ":" + method
	b := l.getBucket(key, cfg.Limit, cfg.Window, cfg.Burst)

	allowed := b.take()
	remaining, reset := b.status()

	var retryAfter time.Duration
	if !allowed {
		retryAfter = time.Until(reset)
		if retryAfter < 0 {
			retryAfter = 0
		}
	}

	return allowed, Info{
		Allowed:    allowed,
		Limit:      cfg.Limit,
		Remaining:  remaining,
		ResetTime:  reset,
		RetryAfter: retryAfter,
	}
}

// getBucket gets or creates the token bucket for the given key.
func (l *Limiter) getBucket(key string, limit int, window time.Duration, burst int) *bucket {
	l.mu.RLock()
	b, ok := l.buckets[key]
	l.mu.RUnlock()
	if ok {
		return b
	}

	capacity := burst
	if capacity <= 0 {
		capacity = limit
	}
	b = newBucket(capacity, float64(limit)/window.Seconds())

	l.mu.Lock()
	defer l.mu.Unlock()
	if existing, ok := l.buckets[key]; ok {
		return existing
	}
	l.buckets[key] = b
	return b
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.removeStale()
		case <-l.cleanupStop:
			return
		}
	}
}

// removeStale drops buckets that haven't been touched in over an hour.
func (l *Limiter) removeStale() {
	cutoff := time.Now().Add(-1 * time.Hour)

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, b := range l.buckets {
		b.mu.Lock()
		stale := b.lastSeen.Before(cutoff)
		b.mu.Unlock()
		if stale {
			delete(l.buckets, key)
		}
	}
}

// Stop stops the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
	}
	if l.cleanupStop != nil {
		close(l.cleanupStop)
	}
}
