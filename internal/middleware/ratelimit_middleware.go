package middleware

import (
	"sync"
	"time"
)

// Defaults for InvalidAuthRateLimiter.
const (
	DefaultInvalidAuthLimit  = 5
	DefaultInvalidAuthWindow = time.Minute
)

// InvalidAuthRateLimiter counts rejected tokens per client IP.
// Only failed attempts are counted; valid tokens are never limited.
type InvalidAuthRateLimiter struct {
	mu        sync.Mutex
	attempts  map[string]*attemptInfo
	limit     int
	window    time.Duration
	now       func() time.Time
	lastSweep time.Time
}

type attemptInfo struct {
	count   int
	firstAt time.Time
}

// NewInvalidAuthRateLimiter allows limit failures per window and IP.
func NewInvalidAuthRateLimiter(limit int, window time.Duration) *InvalidAuthRateLimiter {
	if limit <= 0 {
		limit = DefaultInvalidAuthLimit
	}
	if window <= 0 {
		window = DefaultInvalidAuthWindow
	}
	return &InvalidAuthRateLimiter{
		attempts: make(map[string]*attemptInfo),
		limit:    limit,
		window:   window,
		now:      time.Now,
	}
}

// Blocked reports whether ip has exhausted its failures in the current window.
func (r *InvalidAuthRateLimiter) Blocked(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	info, ok := r.attempts[ip]
	if !ok {
		return false
	}
	if r.now().Sub(info.firstAt) > r.window {
		delete(r.attempts, ip)
		return false
	}
	return info.count >= r.limit
}

// Fail records a rejected attempt from ip.
func (r *InvalidAuthRateLimiter) Fail(ip string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweep(now)

	info, ok := r.attempts[ip]
	if !ok || now.Sub(info.firstAt) > r.window {
		r.attempts[ip] = &attemptInfo{count: 1, firstAt: now}
		return
	}
	info.count++
}

// sweep drops expired windows at most once per window. Caller holds mu.
func (r *InvalidAuthRateLimiter) sweep(now time.Time) {
	if now.Sub(r.lastSweep) < r.window {
		return
	}
	r.lastSweep = now
	for ip, info := range r.attempts {
		if now.Sub(info.firstAt) > r.window {
			delete(r.attempts, ip)
		}
	}
}
