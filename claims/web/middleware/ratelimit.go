package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/nisavid/32health-assmt-claim-process/claims/utils"
	"github.com/nisavid/32health-assmt-claim-process/log"
)

type RateLimitMiddleware struct {
	times  int
	window time.Duration

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewRateLimitMiddleware reads RATE_LIMIT_TIMES and RATE_LIMIT_SECONDS and
// builds a per-client token bucket limiter. The defaults allow 10 requests
// per 60 seconds.
func NewRateLimitMiddleware() *RateLimitMiddleware {
	times := utils.GetEnvInt("RATE_LIMIT_TIMES", 10)
	seconds := utils.GetEnvInt("RATE_LIMIT_SECONDS", 60)
	return &RateLimitMiddleware{
		times:    times,
		window:   time.Duration(seconds) * time.Second,
		limiters: make(map[string]*rate.Limiter),
	}
}

func (m *RateLimitMiddleware) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client := ClientIdentity(r)
		if !m.limiter(client).Allow() {
			log.Request.WithField("client", client).Warn("Rate limit exceeded")
			w.Header().Set("Retry-After", strconv.Itoa(int(m.window.Seconds())))
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (m *RateLimitMiddleware) limiter(client string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.limiters[client]
	if !ok {
		l = rate.NewLimiter(rate.Every(m.window/time.Duration(m.times)), m.times)
		m.limiters[client] = l
	}
	return l
}

// ClientIdentity returns the first hop of the X-Forwarded-For header when
// present, otherwise the host portion of RemoteAddr.
func ClientIdentity(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
