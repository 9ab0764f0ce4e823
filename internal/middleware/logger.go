package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"eventspace/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs one structured line per request and recovers from
// panics with a JSON 500 instead of a dropped connection.
func RequestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		defer func() {
			if recovered := recover(); recovered != nil {
				log.WithFields(logrus.Fields{
					"method":    c.Request.Method,
					"path":      c.Request.URL.Path,
					"client_ip": c.ClientIP(),
					"user_id":   c.GetString("user_id"),
					"panic":     recovered,
					"stack":     string(debug.Stack()),
				}).Error("panic recovered")

				response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
				c.Abort()
			}
		}()

		c.Next()

		entry := log.WithFields(logrus.Fields{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"query":     c.Request.URL.RawQuery,
			"status":    c.Writer.Status(),
			"client_ip": c.ClientIP(),
			"user_id":   c.GetString("user_id"),
			"role":      c.GetString("role"),
			"latency":   time.Since(start).String(),
		})

		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			entry.Error("request failed")
		case c.Writer.Status() >= http.StatusBadRequest:
			entry.Warn("request rejected")
		default:
			entry.Info("request served")
		}
	}
}
