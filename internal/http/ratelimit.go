package http

import (
	"strconv"
	"sync"
	"time"
)

// Mutating requests (expense and budget writes, auth) are limited per
// client IP over a fixed one-minute window. Reads are unlimited.
const (
	mutationsPerWindow = 60
	rateLimitWindow    = time.Minute
	cleanupInterval    = 5 * time.Minute
	staleClientAfter   = 10 * time.Minute
)

// retryAfterSeconds is the Retry-After value sent with 429 responses,
// derived from the window length.
var retryAfterSeconds = strconv.Itoa(int(rateLimitWindow.Seconds()))

type rateLimiter struct {
	mu           sync.Mutex
	clients      map[string]*clientWindow
	stopCleanup  chan struct{}
	shutdownOnce sync.Once
}

// clientWindow tracks one IP's request count within the current window.
type clientWindow struct {
	windowStart time.Time
	requests    int
}

func newRateLimiter() *rateLimiter {
	rl := &rateLimiter{
		clients:     make(map[string]*clientWindow),
		stopCleanup: make(chan struct{}),
	}
	go rl.runCleanup()
	return rl
}

// runCleanup periodically drops IPs that have gone quiet so the map does
// not grow without bound.
func (rl *rateLimiter) runCleanup() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.dropStaleClients()
		case <-rl.stopCleanup:
			return
		}
	}
}

func (rl *rateLimiter) dropStaleClients() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-staleClientAfter)
	for ip, client := range rl.clients {
		if client.windowStart.Before(cutoff) {
			delete(rl.clients, ip)
		}
	}
}

// stop shuts down the cleanup goroutine.
func (rl *rateLimiter) stop() {
	rl.shutdownOnce.Do(func() {
		close(rl.stopCleanup)
	})
}

// allow reports whether clientIP may make another mutating request in
// the current window. The first request past the window opens a new one.
func (rl *rateLimiter) allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	client, exists := rl.clients[clientIP]
	if !exists || now.Sub(client.windowStart) > rateLimitWindow {
		rl.clients[clientIP] = &clientWindow{windowStart: now, requests: 1}
		return true
	}

	client.requests++
	return client.requests <= mutationsPerWindow
}
