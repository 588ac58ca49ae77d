// Package throttle limits how often a single client may hit a route. It guards
// the public credential routes against password guessing.
package throttle

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/user/changelog-api/apperror"
	"github.com/user/changelog-api/pipeline"
)

// idleTTL is how long an unused client limiter is kept.
const idleTTL = 10 * time.Minute

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter hands out one token bucket per client address.
type Limiter struct {
	mu        sync.Mutex
	clients   map[string]*client
	limit     rate.Limit
	burst     int
	now       func() time.Time
	lastSweep time.Time
}

// New creates a Limiter allowing perSecond requests per client with the given burst.
func New(perSecond float64, burst int) *Limiter {
	return &Limiter{
		clients: make(map[string]*client),
		limit:   rate.Limit(perSecond),
		burst:   burst,
		now:     time.Now,
	}
}

// Allow reports whether the client identified by key may proceed now.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	c, ok := l.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

// sweep drops idle clients, at most once per idleTTL. Callers hold l.mu.
func (l *Limiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < idleTTL {
		return
	}
	l.lastSweep = now
	for key, c := range l.clients {
		if now.Sub(c.lastSeen) > idleTTL {
			delete(l.clients, key)
		}
	}
}

// Stage rejects the request with a 429 once its client is over the limit.
func (l *Limiter) Stage() pipeline.Stage {
	return func(r *http.Request) (*http.Request, error) {
		if !l.Allow(clientKey(r)) {
			return nil, apperror.NewRateLimitError("too many requests")
		}
		return r, nil
	}
}

// Middleware is Stage in chi middleware form.
func (l *Limiter) Middleware() func(next http.Handler) http.Handler {
	return pipeline.Middleware(l.Stage())
}

// clientKey is the client address without its port. RemoteAddr is the socket
// peer unless the router was configured to trust proxy headers.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
