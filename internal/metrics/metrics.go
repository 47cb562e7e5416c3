// Package metrics provides the centralized Prometheus registry for the
// ingestion pipeline.
package metrics

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	EntitiesInsertedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mlb_pbp",
		Name:      "entities_inserted_total",
		Help:      "Total number of entities inserted, by entity type",
	}, []string{"entity"})
	EntitiesUpdatedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mlb_pbp",
		Name:      "entities_updated_total",
		Help:      "Total number of entities updated in place, by entity type",
	}, []string{"entity"})
	ValidationFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mlb_pbp",
		Name:      "validation_failures_total",
		Help:      "Total number of records dropped by the schema gate, by entity type",
	}, []string{"entity"})
	FetchErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mlb_pbp",
		Name:      "fetch_errors_total",
		Help:      "Total number of upstream fetch failures, by endpoint",
	}, []string{"endpoint"})
)

// Histogram metrics
var (
	StageDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "mlb_pbp",
		Name:      "stage_duration_seconds",
		Help:      "Duration of one sync stage invocation",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14),
	}, []string{"stage"})
)

// Registry returns the global metrics registry, registering all collectors
// on first use.
func Registry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			EntitiesInsertedTotal,
			EntitiesUpdatedTotal,
			ValidationFailuresTotal,
			FetchErrorsTotal,
			StageDurationSeconds,
		)
	})
	return registry
}

// ObserveStage records a stage invocation duration.
func ObserveStage(stage string, start time.Time) {
	StageDurationSeconds.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}

// Handler returns an HTTP handler serving the registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry(), promhttp.HandlerOpts{})
}

// StartServer serves the metrics and health endpoints in the background.
func StartServer(port int, path string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle(path, Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}
	go func() {
		_ = srv.ListenAndServe()
	}()
	return srv
}
