package middleware

import (
	"time"

	"seatly/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "request_id"
)

// RequestID propagates the caller's request id or assigns a new one
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

// RequestLogger logs every request once it has been served
func RequestLogger(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		reqLog := l
		if id := c.GetString(RequestIDKey); id != "" {
			reqLog = l.WithRequestID(id)
		}

		reqLog.LogHTTPRequest(c, time.Since(start))

		if len(c.Errors) > 0 {
			reqLog.LogHTTPError(c, c.Errors.Last().Err, c.Writer.Status())
		}
	}
}
