package httpx

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitConfig defines the rate limiting parameters for an endpoint class.
type RateLimitConfig struct {
	// RequestsPerWindow is the number of requests allowed in the time window
	RequestsPerWindow int
	// Window is the time window for rate limiting
	Window time.Duration
	// Burst allows for temporary bursts above the rate limit
	Burst int
}

// Common rate limit profiles for different endpoint types.
var (
	// StrictLimit for credential endpoints (brute force prevention).
	StrictLimit = RateLimitConfig{
		RequestsPerWindow: 5,
		Window:            time.Minute,
		Burst:             5,
	}

	// ModerateLimit for authenticated write operations.
	ModerateLimit = RateLimitConfig{
		RequestsPerWindow: 20,
		Window:            time.Minute,
		Burst:             20,
	}

	// LenientLimit for read-mostly operations.
	LenientLimit = RateLimitConfig{
		RequestsPerWindow: 100,
		Window:            time.Minute,
		Burst:             100,
	}
)

// KeyExtractor is a function that extracts a unique key from the request
// for rate limiting purposes (e.g. IP address or user id).
type KeyExtractor func(*http.Request) string

// IPKeyExtractor extracts the client IP address from the request.
// It handles X-Forwarded-For and X-Real-IP headers for proxied requests.
func IPKeyExtractor(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// UserKeyExtractor keys on the authenticated user, falling back to the
// client IP for unauthenticated requests. Must run after AuthnMiddleware
// for authenticated routes.
func UserKeyExtractor(r *http.Request) string {
	if id, ok := IdentityFromContext(r.Context()); ok && id.ID != "" {
		return "user:" + id.ID
	}
	return "ip:" + IPKeyExtractor(r)
}

// limiterStore keeps one token bucket per key and evicts idle entries so
// the map does not grow without bound.
type limiterStore struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	cfg      RateLimitConfig
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newLimiterStore(cfg RateLimitConfig) *limiterStore {
	s := &limiterStore{
		limiters: make(map[string]*limiterEntry),
		cfg:      cfg,
	}
	go s.evictLoop()
	return s
}

func (s *limiterStore) get(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.limiters[key]
	if !ok {
		limit := rate.Every(s.cfg.Window / time.Duration(s.cfg.RequestsPerWindow))
		entry = &limiterEntry{limiter: rate.NewLimiter(limit, s.cfg.Burst)}
		s.limiters[key] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter
}

func (s *limiterStore) evictLoop() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-3 * s.cfg.Window)
		s.mu.Lock()
		for key, entry := range s.limiters {
			if entry.lastSeen.Before(cutoff) {
				delete(s.limiters, key)
			}
		}
		s.mu.Unlock()
	}
}

// RateLimit limits requests keyed by the given extractor. Over-limit
// requests get a 429 with a Retry-After hint.
func RateLimit(cfg RateLimitConfig, key KeyExtractor) Middleware {
	store := newLimiterStore(cfg)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !store.get(key(r)).Allow() {
				w.Header().Set("Retry-After", cfg.Window.String())
				WriteError(w, http.StatusTooManyRequests, "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitByIP limits requests per client IP address.
func RateLimitByIP(cfg RateLimitConfig) Middleware {
	return RateLimit(cfg, IPKeyExtractor)
}

// RateLimitByUser limits requests per authenticated user.
func RateLimitByUser(cfg RateLimitConfig) Middleware {
	return RateLimit(cfg, UserKeyExtractor)
}
