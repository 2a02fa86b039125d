package middleware

import (
	"github.com/gin-gonic/gin"
)

// requestRecorder is satisfied by the Prometheus metrics.
type requestRecorder interface {
	RecordHTTPRequest(method, path string, status int)
}

// Metrics counts requests by route pattern so ids do not explode cardinality.
func Metrics(m requestRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.RecordHTTPRequest(c.Request.Method, path, c.Writer.Status())
	}
}
