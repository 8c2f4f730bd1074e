// Package metrics holds the Prometheus collectors of the storefront service.
// A nil *Metrics is valid and records nothing, so tests and tools can skip it.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "storefront"

// Transition sources.
const (
	SourceStaff  = "staff"
	SourceBulk   = "bulk"
	SourceOwner  = "owner"
	SourceSystem = "sweep"
)

type Metrics struct {
	Transitions          *prometheus.CounterVec
	SweepRuns            *prometheus.CounterVec
	SweepDelivered       prometheus.Counter
	NotificationsDropped prometheus.Counter
	Requests             *prometheus.CounterVec
	LatencyMS            *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg. Pass
// prometheus.DefaultRegisterer in production and prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "status_transitions_total",
			Help:      "Order status transitions by source and statuses.",
		}, []string{"from", "to", "source"}),
		SweepRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "stale_sweep_runs_total",
			Help:      "Stale-shipment sweep runs by trigger and result.",
		}, []string{"trigger", "result"}),
		SweepDelivered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "stale_sweep_delivered_total",
			Help:      "Orders marked delivered by the stale-shipment sweep.",
		}),
		NotificationsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notifications",
			Name:      "dropped_total",
			Help:      "Notifications dropped because the queue was full or closed.",
		}),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"route", "method", "status"}),
		LatencyMS: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_ms",
			Help:      "HTTP request latency in milliseconds.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}, []string{"route", "method"}),
	}

	reg.MustRegister(
		m.Transitions,
		m.SweepRuns,
		m.SweepDelivered,
		m.NotificationsDropped,
		m.Requests,
		m.LatencyMS,
	)
	return m
}

func (m *Metrics) ObserveTransition(from, to, source string) {
	if m == nil {
		return
	}
	m.Transitions.WithLabelValues(from, to, source).Inc()
}

func (m *Metrics) ObserveSweep(trigger string, delivered int, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.SweepRuns.WithLabelValues(trigger, result).Inc()
	m.SweepDelivered.Add(float64(delivered))
}

func (m *Metrics) ObserveDroppedNotification() {
	if m == nil {
		return
	}
	m.NotificationsDropped.Inc()
}

func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.LatencyMS.WithLabelValues(route, method).Observe(float64(elapsed.Milliseconds()))
}

// Handler serves the registry in the Prometheus text format.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
