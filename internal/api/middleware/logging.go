package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/citizenhub/backend/pkg/metrics"
)

// LoggingMiddleware emits one structured line per request and feeds
// the per-route counters.
type LoggingMiddleware struct {
	logger  *zap.Logger
	metrics *metrics.Collector
}

func NewLoggingMiddleware(logger *zap.Logger, collector *metrics.Collector) *LoggingMiddleware {
	return &LoggingMiddleware{logger: logger, metrics: collector}
}

func (lm *LoggingMiddleware) LogRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		lm.metrics.IncrementCounter("http_requests", c.Request.Method+" "+route)
		lm.metrics.ObserveLatency("http_"+route, duration)

		lm.logger.Info("HTTP Request",
			zap.String("request_id", RequestID(c.Request.Context())),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", duration),
			zap.String("client_ip", c.ClientIP()))
	}
}
