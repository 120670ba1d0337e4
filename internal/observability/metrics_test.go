package observability

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics(t *testing.T) {
	m := NewMetrics("auctions", prometheus.NewRegistry())

	assert.NotNil(t, m.HTTPRequestsTotal)
	assert.NotNil(t, m.HTTPRequestDuration)
	assert.NotNil(t, m.RequestsInFlight)
	assert.NotNil(t, m.DomainFailures)
}

func TestNewMetrics_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewMetrics("auctions", prometheus.NewRegistry())
		NewMetrics("auctions", prometheus.NewRegistry())
	})
}

func TestMetrics_Values(t *testing.T) {
	m := NewMetrics("test", prometheus.NewRegistry())

	m.HTTPRequestsTotal.WithLabelValues("GET", "/", "200").Inc()
	m.DomainFailures.WithLabelValues("not_found").Add(2)
	m.RequestsInFlight.Inc()
	m.RequestsInFlight.Inc()
	m.RequestsInFlight.Dec()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/", "200")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.DomainFailures.WithLabelValues("not_found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsInFlight))
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics("auctions", prometheus.NewRegistry())
	m.HTTPRequestsTotal.WithLabelValues("GET", "/test", "200").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `auctions_http_requests_total{method="GET",path="/test",status="200"} 1`)
}
