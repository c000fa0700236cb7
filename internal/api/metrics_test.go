package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	registry := prometheus.NewRegistry()

	_, err := NewMetrics(registry)
	require.NoError(t, err)

	_, err = NewMetrics(registry)
	assert.Error(t, err)
}

func TestMetrics_ObserveRequest(t *testing.T) {
	m, err := NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	m.ObserveRequest("/toppings", http.MethodPost, http.StatusCreated, 15*time.Millisecond)
	m.ObserveRequest("/toppings", http.MethodPost, http.StatusCreated, 5*time.Millisecond)
	m.ObserveRequest("/toppings", http.MethodPost, http.StatusBadRequest, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("/toppings", http.MethodPost, "201")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("/toppings", http.MethodPost, "400")))
}

func TestMetrics_RecordedByHandlers(t *testing.T) {
	s := newTestServer(t)

	do(t, s, http.MethodPost, "/toppings", map[string]string{"name": "Pepperoni"})
	do(t, s, http.MethodPost, "/toppings", map[string]string{"name": "Pepperoni"})

	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.toppingsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.requestsTotal.WithLabelValues("/toppings", http.MethodPost, "201")))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.requestsTotal.WithLabelValues("/toppings", http.MethodPost, "400")))

	rec := do(t, s, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pizzeria_toppings_created_total 1")
	assert.Contains(t, rec.Body.String(), "pizzeria_http_requests_total")
}
