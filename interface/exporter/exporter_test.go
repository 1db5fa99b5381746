package exporter

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	Init()

	IncErrorCount()
	IncErrorCount()
	SetPendingCount(3, 4)
	SetMasterAgentCount(7)

	assert.Equal(t, 2.0, testutil.ToFloat64(counters[METRIC_ERROR_COUNT]))
	assert.Equal(t, 3.0, testutil.ToFloat64(gauges[METRIC_PENDING_COUNT]))
	assert.Equal(t, 4.0, testutil.ToFloat64(gauges[METRIC_PENDING_SIGNATURE_COUNT]))
	assert.Equal(t, 7.0, testutil.ToFloat64(gauges[METRIC_MASTER_AGENT_NUM]))

	SetPendingCount(0, 0)
	assert.Equal(t, 0.0, testutil.ToFloat64(gauges[METRIC_PENDING_SIGNATURE_COUNT]))
}
