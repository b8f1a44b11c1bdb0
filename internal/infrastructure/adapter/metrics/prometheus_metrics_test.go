package metrics

import (
	"testing"
	"time"

	"github.com/amirhossein-jamali/document-lock/internal/domain/port/core"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheusMetrics(reg)

	before := testutil.ToFloat64(AcquireCounter.WithLabelValues("manual", core.AcquireOutcomeConflict))
	m.AcquireCompleted("manual", core.AcquireOutcomeConflict, 3*time.Millisecond)
	m.ReleaseCompleted(false)
	m.AdaptersArmed(2)

	assert.Equal(t, before+1, testutil.ToFloat64(AcquireCounter.WithLabelValues("manual", core.AcquireOutcomeConflict)))
	assert.Equal(t, float64(2), testutil.ToFloat64(ArmedAdaptersGauge))

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, mfs, 4)
}

func TestRegisterLockMetricsDuplicatePanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	RegisterLockMetrics(reg)
	assert.Panics(t, func() { RegisterLockMetrics(reg) })
}
