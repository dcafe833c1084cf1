package ginserver

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"apidemo/internal/metrics"
)

const requestIDHeader = "X-Request-Id"

// requestID reuses an incoming X-Request-Id or mints a new one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func requestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		// FullPath is empty when nothing matched.
		metrics.ObserveRequest(Name, c.FullPath(), c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
