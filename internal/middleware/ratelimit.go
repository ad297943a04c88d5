package middleware

import (
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"pet-registry/internal/platform/httpx"

	"golang.org/x/time/rate"
)

const MsgTooManyRequests = "Too many requests"

// RateLimiter es un token bucket (x/time/rate) por IP de cliente.
type RateLimiter struct {
	mu      sync.Mutex
	perKey  map[string]*limiterEntry
	rps     rate.Limit
	burst   int
	idleTTL time.Duration
	now     func() time.Time
}

type limiterEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(rps float64, burst int) *RateLimiter {
	if burst <= 0 {
		burst = int(math.Max(1, math.Ceil(rps)))
	}
	return &RateLimiter{
		perKey:  make(map[string]*limiterEntry),
		rps:     rate.Limit(rps),
		burst:   burst,
		idleTTL: 15 * time.Minute,
		now:     time.Now,
	}
}

func (l *RateLimiter) limiter(key string) *rate.Limiter {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	// Limpieza oportunista de claves inactivas.
	if len(l.perKey) > 1024 {
		cutoff := now.Add(-l.idleTTL)
		for k, e := range l.perKey {
			if e.lastSeen.Before(cutoff) {
				delete(l.perKey, k)
			}
		}
	}

	if e, ok := l.perKey[key]; ok {
		e.lastSeen = now
		return e.lim
	}
	lim := rate.NewLimiter(l.rps, l.burst)
	l.perKey[key] = &limiterEntry{lim: lim, lastSeen: now}
	return lim
}

// Middleware rechaza con 429 cuando el cliente agotó su bucket.
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientKey(r)
		if !l.limiter(key).AllowN(l.now(), 1) {
			retry := time.Second
			if l.rps > 0 {
				retry = time.Duration(float64(time.Second) / float64(l.rps))
			}
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Max(1, math.Ceil(retry.Seconds())))))
			httpx.WriteErrorBody(w, http.StatusTooManyRequests, MsgTooManyRequests,
				fmt.Sprintf("rate limit of %g requests/s exceeded for %s", float64(l.rps), key))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientKey usa RemoteAddr; chi/middleware.RealIP ya lo reescribe desde
// X-Forwarded-For / X-Real-IP.
func clientKey(r *http.Request) string {
	addr := strings.TrimSpace(r.RemoteAddr)
	if host, _, err := net.SplitHostPort(addr); err == nil && host != "" {
		return host
	}
	if addr != "" {
		return addr
	}
	return "unknown"
}
