package maplib

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds prometheus collectors of the application. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	LookupsTotal        *prometheus.CounterVec
	LookupDuration      *prometheus.HistogramVec
	ExtractedIPs        prometheus.Histogram
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

func (m *Metrics) ObserveLookup(name ProviderName, err error, elapsed time.Duration) {
	if m == nil {
		return
	}

	m.LookupsTotal.WithLabelValues(name.String(), Classify(err).String()).Inc()
	m.LookupDuration.WithLabelValues(name.String()).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveExtracted(count int) {
	if m == nil {
		return
	}

	m.ExtractedIPs.Observe(float64(count))
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}

	statusText := strconv.Itoa(status)

	m.HTTPRequestsTotal.WithLabelValues(method, route, statusText).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route, statusText).Observe(elapsed.Seconds())
}

// Handler exposes collected metrics in prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// NewMetrics creates collectors and registers them in a private
// registry so several instances can live in one process (tests).
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return &Metrics{
		registry: registry,

		LookupsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ipmapper_lookups_total",
				Help: "Total number of geolocation lookups",
			},
			[]string{"provider", "outcome"},
		),

		LookupDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ipmapper_lookup_duration_seconds",
				Help:    "Geolocation lookup latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider"},
		),

		ExtractedIPs: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ipmapper_extracted_ips",
				Help:    "Number of unique public IPs found in an uploaded text",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),

		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ipmapper_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ipmapper_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}
}
