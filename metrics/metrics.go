// Package metrics exposes request and wizard metrics to Prometheus.
package metrics

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mbolis/confirmation-statement/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const labelRoute = "route"

type Metrics struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	sectionUpdates  *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	labels := []string{"method", "code", labelRoute}
	return &Metrics{
		registry: reg,
		requestsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Tracks the number of HTTP requests.",
			}, labels,
		),
		requestDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "http_request_duration_seconds",
				Help: "Tracks the latencies for HTTP requests.",
				// upstream calls dominate, max of 20.48
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
			}, labels,
		),
		sectionUpdates: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "confirmation_statement_section_updates_total",
				Help: "Tracks the section statuses written to submissions.",
			}, []string{"section", "status"},
		),
	}
}

// Middleware counts and times every request, labelled with the chi route
// pattern that served it. It must run inside a chi router.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	opt := promhttp.WithLabelFromCtx(labelRoute, routeFromCtx)
	return promhttp.InstrumentHandlerCounter(
		m.requestsTotal,
		promhttp.InstrumentHandlerDuration(m.requestDuration, next, opt),
		opt,
	)
}

// routeFromCtx reads the pattern after routing completed, so unmatched
// requests share one label value.
func routeFromCtx(ctx context.Context) string {
	if rctx := chi.RouteContext(ctx); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}

// ObserveSection counts a section status write.
func (m *Metrics) ObserveSection(section model.Section, status model.Status) {
	m.sectionUpdates.WithLabelValues(section.String(), string(status)).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
