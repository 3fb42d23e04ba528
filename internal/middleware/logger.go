package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"scraply/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RequestLogger logs every request and recovers from handler panics.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		defer func() {
			if recovered := recover(); recovered != nil {
				logger.Error().
					Str("method", c.Request.Method).
					Str("path", c.Request.URL.Path).
					Str("client_ip", c.ClientIP()).
					Int64("user_id", c.GetInt64("user_id")).
					Str("error", fmt.Sprintf("%v", recovered)).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				response.Error(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal server error")
				c.Abort()
			}
		}()

		c.Next()

		event := logger.Info()
		if c.Writer.Status() >= http.StatusInternalServerError {
			event = logger.Error()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("query", c.Request.URL.RawQuery).
			Int("status", c.Writer.Status()).
			Str("client_ip", c.ClientIP()).
			Int64("user_id", c.GetInt64("user_id")).
			Str("role", c.GetString("role")).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
