package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.IncIssued()
	m.IncIssued()
	m.IncDenied("unauthorized")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Issued))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Denied.WithLabelValues("unauthorized")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Denied.WithLabelValues("missing_psk")))

	assert.Panics(t, func() { New(reg) }, "registering twice must fail")
}
