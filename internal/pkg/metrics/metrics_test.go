package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.ObserveTransition("Processing", "Shipping", metrics.SourceBulk)
	m.ObserveTransition("Processing", "Shipping", metrics.SourceBulk)
	m.ObserveSweep("cron", 3, nil)
	m.ObserveSweep("read", 0, errors.New("db down"))
	m.ObserveDroppedNotification()
	m.ObserveRequest("/api/orders", http.MethodGet, http.StatusOK, 12*time.Millisecond)

	assert.InDelta(t, 2, testutil.ToFloat64(m.Transitions.WithLabelValues("Processing", "Shipping", "bulk")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.SweepRuns.WithLabelValues("read", "error")), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(m.SweepDelivered), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.NotificationsDropped), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Requests.WithLabelValues("/api/orders", "GET", "200")), 0)

	rec := httptest.NewRecorder()
	metrics.Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "storefront_orders_status_transitions_total")
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.Metrics

	assert.NotPanics(t, func() {
		m.ObserveTransition("a", "b", "c")
		m.ObserveSweep("cron", 1, nil)
		m.ObserveDroppedNotification()
		m.ObserveRequest("/", "GET", 200, time.Second)
	})
}
