package middleware

import (
	"net/http"
	"sync"
	"time"

	"scraply/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	// Entries idle longer than limiterIdleTTL are dropped so the per-IP
	// map does not grow forever in long-running deployments.
	limiterIdleTTL       = 10 * time.Minute
	limiterSweepInterval = time.Minute
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type clientLimiters struct {
	mu        sync.Mutex
	rps       float64
	burst     int
	entries   map[string]*limiterEntry
	lastSweep time.Time
}

func newClientLimiters(rps float64, burst int) *clientLimiters {
	return &clientLimiters{
		rps:     rps,
		burst:   burst,
		entries: make(map[string]*limiterEntry),
	}
}

func (cl *clientLimiters) get(ip string, now time.Time) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	if now.Sub(cl.lastSweep) >= limiterSweepInterval {
		cl.sweepLocked(now)
	}

	e, ok := cl.entries[ip]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(rate.Limit(cl.rps), cl.burst)}
		cl.entries[ip] = e
	}
	e.lastSeen = now
	return e.limiter
}

func (cl *clientLimiters) sweepLocked(now time.Time) {
	for ip, e := range cl.entries {
		if now.Sub(e.lastSeen) > limiterIdleTTL {
			delete(cl.entries, ip)
		}
	}
	cl.lastSweep = now
}

func (cl *clientLimiters) size() int {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	return len(cl.entries)
}

// RateLimit applies a per-client-IP token bucket. Used on the assistant
// endpoints, where every request costs an upstream AI call.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	limiters := newClientLimiters(rps, burst)

	return func(c *gin.Context) {
		if !limiters.get(c.ClientIP(), time.Now()).Allow() {
			response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests, slow down")
			c.Abort()
			return
		}
		c.Next()
	}
}
