package middleware

import (
	"strconv"
	"time"

	"storefront/utils"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request counts and latency per route. The route
// template is used instead of the raw path to keep label cardinality bounded.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		utils.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		utils.HTTPRequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
	}
}
