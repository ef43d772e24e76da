package fetch

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func newTestRateLimiter(defaultDelay time.Duration) *RateLimiter {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewRateLimiter(defaultDelay, logrus.NewEntry(log))
}

func TestRateLimiter_FirstRequestNoDelay(t *testing.T) {
	rl := newTestRateLimiter(500 * time.Millisecond)

	start := time.Now()
	rl.ApplyDelay("example.com", 0)
	elapsed := time.Since(start)

	if elapsed > 100*time.Millisecond {
		t.Errorf("first request to a host should not be delayed, waited %v", elapsed)
	}
}

func TestRateLimiter_EnforcesDelayBetweenRequests(t *testing.T) {
	delay := 150 * time.Millisecond
	rl := newTestRateLimiter(delay)

	rl.UpdateLastRequestTime("example.com")

	start := time.Now()
	rl.ApplyDelay("example.com", 0)
	elapsed := time.Since(start)

	// Jitter can shave up to 10% off the sleep.
	if elapsed < delay*8/10 {
		t.Errorf("expected roughly %v delay between requests, got %v", delay, elapsed)
	}
}

func TestRateLimiter_HostsAreIndependent(t *testing.T) {
	rl := newTestRateLimiter(500 * time.Millisecond)

	rl.UpdateLastRequestTime("a.example.com")

	start := time.Now()
	rl.ApplyDelay("b.example.com", 0)
	elapsed := time.Since(start)

	if elapsed > 100*time.Millisecond {
		t.Errorf("delay for one host should not block another, waited %v", elapsed)
	}
}

func TestRateLimiter_MinDelayOverridesDefault(t *testing.T) {
	rl := newTestRateLimiter(50 * time.Millisecond)
	minDelay := 200 * time.Millisecond

	rl.UpdateLastRequestTime("example.com")

	start := time.Now()
	rl.ApplyDelay("example.com", minDelay)
	elapsed := time.Since(start)

	if elapsed < minDelay*8/10 {
		t.Errorf("expected minDelay %v to take precedence, got %v", minDelay, elapsed)
	}
}
