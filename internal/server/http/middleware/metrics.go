package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records request counts and latency per route.
func Metrics(requests *prometheus.CounterVec, latency *prometheus.HistogramVec) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := routeOf(c)
		method := c.Request.Method
		requests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		latency.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
