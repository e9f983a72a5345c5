package middleware

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"sales-coach-assistant/pkg/response"
)

const (
	maxTrackedClients = 1000
	limiterTTL        = 5 * time.Minute
)

// ChatRateLimit limits chat requests per client IP. Each model-backed chat
// request fans out to one or two provider calls, so the limit guards spend
// as much as capacity. Zero or negative config disables the limit.
func (m Middleware) ChatRateLimit() gin.HandlerFunc {
	perMin := m.config.Coach.ChatRatePerMinute
	if perMin <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	burst := perMin / 4
	if burst < 1 {
		burst = 1
	}

	limiters := expirable.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, limiterTTL)
	perSecond := rate.Limit(float64(perMin) / 60.0)

	return func(c *gin.Context) {
		key := clientIP(c.Request)

		limiter, ok := limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(perSecond, burst)
			limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "middleware.ChatRateLimit: client %s throttled", key)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "Too many requests, slow down",
			})
			return
		}

		c.Next()
	}
}

// clientIP resolves the caller's address, honoring proxy headers.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
