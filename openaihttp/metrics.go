package openaihttp

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "easymaas_http_requests_total",
		Help: "HTTP requests processed, partitioned by status code, method and route.",
	}, []string{"code", "method", "route"})

	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "easymaas_http_request_duration_seconds",
		Help:    "HTTP request latencies in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
)

func init() {
	prometheus.MustRegister(requestsTotal, requestDuration)
}

// Metrics 返回采集请求计数与时延的中间件。
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requestsTotal.WithLabelValues(strconv.Itoa(c.Writer.Status()), c.Request.Method, route).Inc()
		requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}
