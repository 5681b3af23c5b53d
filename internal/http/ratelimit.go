package http

import (
	"sync"
	"time"
)

// POST traffic is throttled per client IP with a fixed window counter.
const (
	rateLimitMax    = 60
	rateLimitWindow = time.Minute
	rateLimitStale  = 10 * time.Minute
)

type rateLimiter struct {
	mu           sync.Mutex
	windows      map[string]*rateWindow
	stopCleanup  chan struct{}
	shutdownOnce sync.Once
}

type rateWindow struct {
	start time.Time
	count int
}

func newRateLimiter() *rateLimiter {
	rl := &rateLimiter{
		windows:     make(map[string]*rateWindow),
		stopCleanup: make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

// allow counts a request from clientIP against the current window and
// reports whether it is within the limit.
func (rl *rateLimiter) allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w := rl.windows[clientIP]
	if w == nil || now.Sub(w.start) > rateLimitWindow {
		rl.windows[clientIP] = &rateWindow{start: now, count: 1}
		return true
	}
	w.count++
	return w.count <= rateLimitMax
}

// cleanupLoop drops windows that have seen no traffic for a while so the
// map does not grow with every IP ever seen.
func (rl *rateLimiter) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.mu.Lock()
			cutoff := time.Now().Add(-rateLimitStale)
			for ip, w := range rl.windows {
				if w.start.Before(cutoff) {
					delete(rl.windows, ip)
				}
			}
			rl.mu.Unlock()
		case <-rl.stopCleanup:
			return
		}
	}
}

func (rl *rateLimiter) stop() {
	rl.shutdownOnce.Do(func() {
		close(rl.stopCleanup)
	})
}
