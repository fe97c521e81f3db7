package metrics

import (
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics encapsulates the Prometheus instrumentation for the tracker.
type Metrics struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	snapshotLoads   *prometheus.CounterVec
	remoteFailures  prometheus.Counter
	recordCount     prometheus.Gauge
}

// New registers the core collectors on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	snapshotLoads := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "snapshot_loads_total",
		Help: "Snapshot loads by winning source tier",
	}, []string{"source"})

	remoteFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "snapshot_remote_failures_total",
		Help: "Failed remote snapshot fetch attempts",
	})

	recordCount := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "tracked_conferences",
		Help: "Number of conference records currently tracked",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, snapshotLoads, remoteFailures, recordCount, goroutines)

	return &Metrics{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		snapshotLoads:   snapshotLoads,
		remoteFailures:  remoteFailures,
		recordCount:     recordCount,
	}
}

// Handler exposes the Prometheus scrape endpoint.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records one served request.
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := strconv.Itoa(status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// RecordSnapshotLoad records which tier served a load and the resulting list size.
func (m *Metrics) RecordSnapshotLoad(source string, records int) {
	if m == nil {
		return
	}
	m.snapshotLoads.WithLabelValues(source).Inc()
	m.recordCount.Set(float64(records))
}

// RecordRemoteFailure counts a failed remote fetch attempt.
func (m *Metrics) RecordRemoteFailure() {
	if m == nil {
		return
	}
	m.remoteFailures.Inc()
}

// SetRecordCount updates the tracked record gauge after a mutation.
func (m *Metrics) SetRecordCount(n int) {
	if m == nil {
		return
	}
	m.recordCount.Set(float64(n))
}
