package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.IncConversion("numeral", "ok")
	m.IncConversion("numeral", "ok")
	m.IncConversion("numeral", "zero_amount")
	m.ObserveRequest("/v1/numeral", 2*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Conversions.WithLabelValues("numeral", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Conversions.WithLabelValues("numeral", "zero_amount")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.RequestDuration))
}

func TestMetrics_Nil(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncConversion("numeral", "ok")
		m.ObserveRequest("/v1/numeral", time.Millisecond)
	})
}
