package middleware

import (
	"net/http"
	"strconv"

	"orgsite-backend/internal/redis"
	"orgsite-backend/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// LoginRateLimitMiddleware limits admin login attempts per client IP.
// Applied to the login route only.
func LoginRateLimitMiddleware(limiter *redis.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := limiter.AllowAuth(c.Request.Context(), c.ClientIP())
		if err != nil {
			// Redis being down should not lock admins out.
			c.Next()
			return
		}

		setRateLimitHeaders(c, result)

		if !result.Allowed {
			c.JSON(http.StatusTooManyRequests, httpdto.NewErrorResponse("rate limit exceeded", "RATE_LIMITED"))
			c.Abort()
			return
		}
		c.Next()
	}
}

func setRateLimitHeaders(c *gin.Context, result *redis.RateLimitResult) {
	c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	c.Header("X-RateLimit-Reset", strconv.Itoa(int(result.ResetIn.Seconds())))
}
