package middleware

import (
	"strconv"
	"sync"
	"time"

	"habit-agent/pkg/apperror"
	"habit-agent/pkg/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const localVisitorTTL = 3 * time.Minute

// LocalRateLimiter is the in-process fallback used when Redis is not configured.
// Limits are per instance, so a fleet admits N times the rule.
type LocalRateLimiter struct {
	rule      RateLimitRule
	limit     rate.Limit
	mu        sync.Mutex
	visitors  map[string]*visitor
	lastSweep time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewLocalRateLimiter spreads rule.Limit evenly over rule.Window and allows a full burst.
func NewLocalRateLimiter(rule RateLimitRule) *LocalRateLimiter {
	return &LocalRateLimiter{
		rule:      rule,
		limit:     rate.Limit(float64(rule.Limit) / rule.Window.Seconds()),
		visitors:  make(map[string]*visitor),
		lastSweep: time.Now(),
	}
}

func (l *LocalRateLimiter) limiterFor(key string, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) > localVisitorTTL {
		for k, v := range l.visitors {
			if now.Sub(v.lastSeen) > localVisitorTTL {
				delete(l.visitors, k)
			}
		}
		l.lastSweep = now
	}

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, int(l.rule.Limit))}
		l.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter
}

// Handler rate-limits one endpoint group keyed like RateLimiter.
func (l *LocalRateLimiter) Handler(group string) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()
		lim := l.limiterFor(extractIdentifier(c)+":"+group, now)

		c.Header("X-RateLimit-Limit", strconv.FormatInt(l.rule.Limit, 10))
		if !lim.AllowN(now, 1) {
			c.Header("Retry-After", strconv.Itoa(int(l.rule.Window.Seconds()/float64(l.rule.Limit))+1))
			response.Abort(c, apperror.ErrRateLimitExceeded())
			return
		}
		c.Next()
	}
}
