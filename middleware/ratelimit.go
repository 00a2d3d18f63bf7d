package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"solar-storefront-backend/internal/config"
	"solar-storefront-backend/utils"
)

// RateLimitMiddleware limits requests per IP + endpoint using a Redis
// counter. When Redis is unavailable it falls back to an in-process token
// bucket per client IP rather than failing open entirely.
func RateLimitMiddleware(rdb *redis.Client, cfg *config.Config) gin.HandlerFunc {
	local := newLocalLimiter(cfg.RateLimitReqs, cfg.RateLimitWindow)

	return func(c *gin.Context) {
		if c.FullPath() == "/health" || c.FullPath() == "/ready" {
			c.Next()
			return
		}

		if rdb == nil {
			localLimit(c, local, cfg)
			return
		}

		key := "ratelimit:" + c.ClientIP() + ":" + c.FullPath()

		ctx := context.Background()
		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			localLimit(c, local, cfg)
			return
		}

		if count == 1 {
			rdb.Expire(ctx, key, time.Duration(cfg.RateLimitWindow)*time.Second)
		}

		if count > int64(cfg.RateLimitReqs) {
			c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.RateLimitReqs))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", strconv.FormatInt(
				time.Now().Add(time.Duration(cfg.RateLimitWindow)*time.Second).Unix(), 10))

			utils.RespondWithError(c, http.StatusTooManyRequests,
				"rate_limit_exceeded",
				"Too many requests. Please try again later.",
				gin.H{
					"retry_after": cfg.RateLimitWindow,
					"limit":       cfg.RateLimitReqs,
				})
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.RateLimitReqs))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(cfg.RateLimitReqs-int(count)))
		c.Next()
	}
}

// localLimiter is the in-process fallback: one token bucket per client IP.
type localLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newLocalLimiter(reqs, windowSeconds int) *localLimiter {
	if windowSeconds <= 0 {
		windowSeconds = 60
	}
	return &localLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(float64(reqs) / float64(windowSeconds)),
		burst:    reqs,
	}
}

func (l *localLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[ip]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[ip] = limiter
	}
	return limiter.Allow()
}

func localLimit(c *gin.Context, local *localLimiter, cfg *config.Config) {
	if !local.allow(c.ClientIP()) {
		utils.RespondWithError(c, http.StatusTooManyRequests,
			"rate_limit_exceeded",
			"Too many requests. Please try again later.",
			gin.H{"retry_after": cfg.RateLimitWindow})
		c.Abort()
		return
	}
	c.Next()
}
