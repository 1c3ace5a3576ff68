// internal/api/middleware.go
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	stderrors "askindia/internal/common/errors"
	"askindia/internal/common/logger"
	"askindia/internal/common/metrics"
	"askindia/internal/models"
	"askindia/internal/ratelimit"
)

const requestIDKey = "request_id"

// RequestID assigns every request an identifier that is echoed in the
// response body and header, so client reports can be correlated with logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func requestID(c *gin.Context) string {
	if id, ok := c.Get(requestIDKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

// RateLimit rejects clients that exceeded their rolling request budget.
// The client identity is the remote IP.
func RateLimit(limiter ratelimit.Limiter, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			// A broken limiter backend should not take the API down.
			log.Warn("rate limiter check failed, allowing request", map[string]interface{}{
				"requestId": requestID(c),
				"error":     err.Error(),
			})
			c.Next()
			return
		}
		if !allowed {
			metrics.RateLimitRejections.Inc()
			stdErr := stderrors.NewRateLimitedError()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.ErrorResponse{
				RequestID: requestID(c),
				Code:      string(stdErr.Code),
				Error:     stdErr.Message,
			})
			return
		}
		c.Next()
	}
}
