package log

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextKeyRequestID is the gin context key holding the per-request id.
const ContextKeyRequestID = "request_id"

// RequestID returns the id assigned to this request by GinLogger.
func RequestID(c *gin.Context) string {
	id, _ := c.Get(ContextKeyRequestID)
	if s, ok := id.(string); ok {
		return s
	}
	return ""
}

// GinLogger returns a Gin middleware that logs requests using zerolog.
// Each request gets a uuid that is echoed in the X-Request-Id header.
func GinLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		requestID := uuid.NewString()
		c.Set(ContextKeyRequestID, requestID)
		c.Header("X-Request-Id", requestID)

		// Process request
		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		method := c.Request.Method
		clientIP := c.ClientIP()
		errorMessage := c.Errors.ByType(gin.ErrorTypePrivate).String()

		if raw != "" {
			path = path + "?" + raw
		}

		// Log based on status code
		event := Info()
		if status >= 500 {
			event = Error()
		} else if status >= 400 {
			event = Warn()
		}

		event.
			Str("method", method).
			Str("path", path).
			Int("status", status).
			Dur("latency", latency).
			Str("ip", clientIP).
			Str("requestId", requestID)

		if errorMessage != "" {
			event.Str("error", errorMessage)
		}

		event.Msg("request")
	}
}
