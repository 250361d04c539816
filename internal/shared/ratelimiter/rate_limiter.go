// Package ratelimiter provides a fixed-window limiter for throttling
// repeated operations, keyed by caller.
package ratelimiter

import (
	"sync"
	"time"
)

// Limiter restricts how often an operation may run per key within a window.
// It is used on the login endpoint to slow down credential guessing.
type Limiter struct {
	limit    int
	interval time.Duration

	mu      sync.Mutex
	windows map[string]*window
}

type window struct {
	count int
	start time.Time
}

// NewLimiter creates a limiter allowing limit operations per key per interval.
func NewLimiter(limit int, interval time.Duration) *Limiter {
	return &Limiter{
		limit:    limit,
		interval: interval,
		windows:  make(map[string]*window),
	}
}

// Allow reports whether the operation for key may proceed now. Unlike a
// pacing limiter it never sleeps: over-limit callers are rejected.
func (l *Limiter) Allow(key string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || now.Sub(w.start) >= l.interval {
		l.windows[key] = &window{count: 1, start: now}
		return true
	}

	w.count++
	return w.count <= l.limit
}

// Prune drops windows that ended before now, bounding memory on long-running
// processes. Callers decide how often to run it.
func (l *Limiter) Prune() {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, w := range l.windows {
		if now.Sub(w.start) >= l.interval {
			delete(l.windows, key)
		}
	}
}
