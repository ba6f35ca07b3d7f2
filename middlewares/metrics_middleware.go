package middlewares

import (
	"strconv"

	"github.com/gift-xipu/fitness-calculaor/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware counts requests per matched route. Unmatched paths are
// folded into one label.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.IncHTTPRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()))
	}
}
