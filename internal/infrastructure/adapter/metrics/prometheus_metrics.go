package metrics

import (
	"strconv"
	"time"

	"github.com/amirhossein-jamali/document-lock/internal/domain/port/core"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// AcquireCounter counts acquire calls by lock kind and outcome
	AcquireCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "document_lock",
		Name:      "acquire_total",
		Help:      "Total lock acquisitions by kind and outcome",
	}, []string{"kind", "outcome"})
	// AcquireLatency observes acquire latency including retries
	AcquireLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "document_lock",
		Name:      "acquire_duration_seconds",
		Help:      "Lock acquisition latency",
		Buckets:   prometheus.DefBuckets,
	}, []string{"kind"})
	// ReleaseCounter counts release attempts by result
	ReleaseCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "document_lock",
		Name:      "release_total",
		Help:      "Total lock releases by result",
	}, []string{"released"})
	// ArmedAdaptersGauge tracks transactions with an armed completion adapter
	ArmedAdaptersGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "document_lock",
		Name:      "armed_adapters",
		Help:      "Transactions currently awaiting completion with transaction-scoped locks",
	})
)

// RegisterLockMetrics registers the lock collectors with reg.
// It panics when called twice on the same registry.
func RegisterLockMetrics(reg prometheus.Registerer) {
	reg.MustRegister(AcquireCounter, AcquireLatency, ReleaseCounter, ArmedAdaptersGauge)
}

// PrometheusMetrics implements core.LockMetrics with the package collectors
type PrometheusMetrics struct{}

// NewPrometheusMetrics registers the collectors with reg and returns the recorder
func NewPrometheusMetrics(reg prometheus.Registerer) core.LockMetrics {
	RegisterLockMetrics(reg)
	return PrometheusMetrics{}
}

func (PrometheusMetrics) AcquireCompleted(kind string, outcome string, elapsed time.Duration) {
	AcquireCounter.WithLabelValues(kind, outcome).Inc()
	AcquireLatency.WithLabelValues(kind).Observe(elapsed.Seconds())
}

func (PrometheusMetrics) ReleaseCompleted(released bool) {
	ReleaseCounter.WithLabelValues(strconv.FormatBool(released)).Inc()
}

func (PrometheusMetrics) AdaptersArmed(n int) {
	ArmedAdaptersGauge.Set(float64(n))
}

// NoopMetrics discards every observation
type NoopMetrics struct{}

func (NoopMetrics) AcquireCompleted(string, string, time.Duration) {}
func (NoopMetrics) ReleaseCompleted(bool)                          {}
func (NoopMetrics) AdaptersArmed(int)                              {}
