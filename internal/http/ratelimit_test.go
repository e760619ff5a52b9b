package http

import (
	"testing"
	"time"
)

func TestRateLimiterAllowsUpToWindowLimit(t *testing.T) {
	rl := newRateLimiter()
	defer rl.stop()

	for i := 0; i < mutationsPerWindow; i++ {
		if !rl.allow("10.0.0.1") {
			t.Fatalf("request %d within the window must be allowed", i+1)
		}
	}
	if rl.allow("10.0.0.1") {
		t.Fatal("request past the window limit must be denied")
	}

	// Other clients have their own window.
	if !rl.allow("10.0.0.2") {
		t.Fatal("a different IP must not be throttled")
	}
}

func TestRateLimiterResetsAfterWindow(t *testing.T) {
	rl := newRateLimiter()
	defer rl.stop()

	for i := 0; i < mutationsPerWindow+1; i++ {
		rl.allow("10.0.0.1")
	}

	rl.mu.Lock()
	rl.clients["10.0.0.1"].windowStart = time.Now().Add(-rateLimitWindow - time.Second)
	rl.mu.Unlock()

	if !rl.allow("10.0.0.1") {
		t.Fatal("an elapsed window must reset the counter")
	}
}

func TestRateLimiterDropsStaleClients(t *testing.T) {
	rl := newRateLimiter()
	defer rl.stop()

	rl.allow("10.0.0.1")
	rl.mu.Lock()
	rl.clients["10.0.0.1"].windowStart = time.Now().Add(-staleClientAfter - time.Minute)
	rl.mu.Unlock()

	rl.dropStaleClients()

	rl.mu.Lock()
	_, exists := rl.clients["10.0.0.1"]
	rl.mu.Unlock()
	if exists {
		t.Fatal("quiet clients must be dropped by cleanup")
	}
}

func TestRateLimiterStopIsIdempotent(t *testing.T) {
	rl := newRateLimiter()
	rl.stop()
	rl.stop()
}
