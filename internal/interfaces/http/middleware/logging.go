package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"libris/internal/shared/constants"
	"libris/internal/shared/logger"
)

// RequestLogger logs one line per completed request, leveled by status.
func RequestLogger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", latency,
			"client_ip", c.ClientIP(),
			"body_size", c.Writer.Size(),
		}

		if query := c.Request.URL.RawQuery; query != "" {
			args = append(args, "query", query)
		}

		if userID, exists := c.Get(constants.ContextKeyUserID); exists {
			args = append(args, "user_id", userID)
		}

		status := c.Writer.Status()
		switch {
		case status >= 500:
			log.Errorw("HTTP request completed", args...)
		case status >= 400:
			log.Warnw("HTTP request completed", args...)
		default:
			log.Debugw("HTTP request completed", args...)
		}
	}
}
