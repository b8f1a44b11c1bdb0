package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// HTTPRequestCounter counts HTTP requests by route, method and status
	HTTPRequestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "document_lock",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests by route, method and status",
	}, []string{"route", "method", "status"})
	// HTTPRequestDuration observes HTTP request latency by route
	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "document_lock",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})
)

// RegisterHTTPMetrics registers the HTTP collectors with reg
func RegisterHTTPMetrics(reg prometheus.Registerer) {
	reg.MustRegister(HTTPRequestCounter, HTTPRequestDuration)
}

// ObserveHTTPRequest records one served request
func ObserveHTTPRequest(route, method string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequestCounter.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}
