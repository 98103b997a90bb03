// Package metrics owns the prometheus collectors for the api process
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "chargemap"

// Metrics groups the domain and http collectors
// a nil *Metrics is valid and records nothing
type Metrics struct {
	reg *prometheus.Registry

	searches      *prometheus.CounterVec
	stationsFound prometheus.Histogram
	ratingOps     *prometheus.CounterVec
	toggles       *prometheus.CounterVec

	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec
}

// New registers every collector on a fresh registry
// process and go runtime collectors are included when withRuntime is set
func New(withRuntime bool) *Metrics {
	reg := prometheus.NewRegistry()
	if withRuntime {
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	m := &Metrics{
		reg: reg,
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "station_searches_total",
			Help:      "Station searches by outcome kind",
		}, []string{"outcome"}),
		stationsFound: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stations_found",
			Help:      "Stations returned per successful search",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}),
		ratingOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rating_operations_total",
			Help:      "Rating operations by op and outcome kind",
		}, []string{"op", "outcome"}),
		toggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "availability_toggles_total",
			Help:      "Availability toggles by outcome kind",
		}, []string{"outcome"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route pattern and status",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(m.searches, m.stationsFound, m.ratingOps, m.toggles, m.httpRequests, m.httpLatency)
	return m
}

// Registry exposes the underlying registry, mostly for tests
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// Search records one search; found is only observed for ok outcomes
func (m *Metrics) Search(outcome string, found int) {
	if m == nil {
		return
	}
	m.searches.WithLabelValues(outcome).Inc()
	if outcome == "ok" {
		m.stationsFound.Observe(float64(found))
	}
}

// RatingOp records one rating use case call
func (m *Metrics) RatingOp(op, outcome string) {
	if m == nil {
		return
	}
	m.ratingOps.WithLabelValues(op, outcome).Inc()
}

// Toggle records one availability toggle
func (m *Metrics) Toggle(outcome string) {
	if m == nil {
		return
	}
	m.toggles.WithLabelValues(outcome).Inc()
}

// Handler serves the registry in the prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

// Middleware counts requests by chi route pattern so ids do not explode label cardinality
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil {
			if p := rc.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.httpLatency.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
