package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sitedesk/sitedesk/internal/infrastructure/ratelimit"
	"github.com/sitedesk/sitedesk/internal/shared/constants"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
	"github.com/sitedesk/sitedesk/internal/shared/utils"
)

// RateLimiter throttles requests per admin id, or per client IP for
// unauthenticated requests.
type RateLimiter struct {
	limiter ratelimit.Limiter
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.Limiter, logger logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		logger:  logger,
	}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		subject := "ip:" + c.ClientIP()
		if adminID, ok := c.Get(constants.ContextKeyAdminID); ok {
			subject = fmt.Sprintf("admin:%v", adminID)
		}

		allowed, err := rl.limiter.Allow(c.Request.Context(), subject)
		if err != nil {
			// Redis outages must not block traffic.
			rl.logger.Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "Çok fazla istek, lütfen daha sonra tekrar deneyin")
			c.Abort()
			return
		}

		c.Next()
	}
}
