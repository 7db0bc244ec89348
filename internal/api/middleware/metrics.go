package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"teamhealth/internal/metrics"
)

// MetricsMiddleware записывает счётчик и гистограмму времени HTTP запросов.
// В метке path используется шаблон маршрута, а не сырой URL,
// чтобы не плодить кардинальность на параметрах.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
	}
}
