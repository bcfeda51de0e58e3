package mwratelimit

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"collegeEvents/internal/lib/api/response"

	"github.com/go-chi/render"
	"golang.org/x/time/rate"
)

const idleTTL = 15 * time.Minute

// Limiter keeps one token bucket per client IP.
type Limiter struct {
	mu       sync.Mutex
	perMin   int
	limiters map[string]*entry
	now      func() time.Time
}

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewLimiter(perMinute int) *Limiter {
	return &Limiter{
		perMin:   perMinute,
		limiters: make(map[string]*entry),
		now:      time.Now,
	}
}

func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	e, ok := l.limiters[key]
	if !ok {
		e = &entry{
			limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(l.perMin)), l.perMin),
		}
		l.limiters[key] = e
	}
	e.lastSeen = now

	// opportunistic sweep instead of a background goroutine
	if len(l.limiters) > 1024 {
		for k, v := range l.limiters {
			if now.Sub(v.lastSeen) > idleTTL {
				delete(l.limiters, k)
			}
		}
	}

	return e.limiter.AllowN(now, 1)
}

// New limits requests per client IP. A non-positive perMinute disables it.
func New(perMinute int) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if perMinute <= 0 {
			return next
		}

		limiter := NewLimiter(perMinute)
		retryAfter := strconv.Itoa(int((time.Minute / time.Duration(perMinute)).Seconds()) + 1)

		fn := func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(clientIP(r)) {
				w.Header().Set("Retry-After", retryAfter)
				render.Status(r, http.StatusTooManyRequests)
				render.JSON(w, r, response.Error("too many requests"))
				return
			}

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}

// clientIP relies on chi's RealIP middleware having rewritten RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
