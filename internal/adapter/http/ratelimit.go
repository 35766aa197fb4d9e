package httpadapter

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"selmore/internal/core/domain"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipLimiter keeps one token bucket per client IP. A bucket holds max
// tokens and refills one every window/max, so a client can spend max
// requests at once and then max per window.
type ipLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	limit     rate.Limit
	burst     int
	idle      time.Duration
	lastSweep time.Time
}

// newIPLimiter returns nil when limiting is disabled.
func newIPLimiter(window time.Duration, max int) *ipLimiter {
	if window <= 0 || max <= 0 {
		return nil
	}
	return &ipLimiter{
		visitors:  make(map[string]*visitor),
		limit:     rate.Every(window / time.Duration(max)),
		burst:     max,
		idle:      window,
		lastSweep: time.Now(),
	}
}

func (l *ipLimiter) get(ip string, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	// a bucket untouched for a whole window is full again; drop it
	if now.Sub(l.lastSweep) > l.idle {
		for k, v := range l.visitors {
			if now.Sub(v.lastSeen) > l.idle {
				delete(l.visitors, k)
			}
		}
		l.lastSweep = now
	}

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// limit rejects requests from IPs that ran out of tokens. Every admitted
// request holds a token while it runs. With failuresOnly set the token is
// handed back when the response status is below 400, so successful logins
// never lock a client out.
func (h *Handler) limit(l *ipLimiter, msg string, failuresOnly bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if l == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			now := time.Now()
			res := l.get(clientIP(r), now).ReserveN(now, 1)
			if delay := res.DelayFrom(now); delay > 0 {
				res.CancelAt(now)
				h.tooMany(w, r, msg, delay)
				return
			}
			if !failuresOnly {
				next.ServeHTTP(w, r)
				return
			}

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			// cancelling at the reservation instant restores the token
			if ww.Status() < http.StatusBadRequest {
				res.CancelAt(now)
			}
		})
	}
}

func (h *Handler) tooMany(w http.ResponseWriter, r *http.Request, msg string, delay time.Duration) {
	w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
	h.writeError(w, r, domain.RateLimited(msg))
}
