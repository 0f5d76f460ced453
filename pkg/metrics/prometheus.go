package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	searchesTotal    *prometheus.CounterVec
	comparisonsTotal *prometheus.CounterVec
	errorsTotal      *prometheus.CounterVec
	tickerCacheSize  prometheus.Gauge
	upstreamLatency  *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		searchesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "capswap_searches_total",
				Help: "Total number of search requests by serving source",
			},
			[]string{"source"},
		),
		comparisonsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "capswap_comparisons_total",
				Help: "Total number of comparison requests by outcome",
			},
			[]string{"outcome"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "capswap_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		tickerCacheSize: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "capswap_ticker_cache_size",
				Help: "Number of ticker records currently cached",
			},
		),
		upstreamLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "capswap_upstream_request_duration_seconds",
				Help:    "Duration of upstream quote provider calls in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
	}
}

// RecordSearch records a search served from the given source (cache or live).
func (r *Recorder) RecordSearch(source string) {
	r.searchesTotal.WithLabelValues(source).Inc()
}

// RecordComparison records a comparison request outcome.
func (r *Recorder) RecordComparison(outcome string) {
	r.comparisonsTotal.WithLabelValues(outcome).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// SetTickerCacheSize records the current ticker cache size.
func (r *Recorder) SetTickerCacheSize(n int) {
	r.tickerCacheSize.Set(float64(n))
}

// RecordUpstreamLatency records upstream call latency in seconds.
func (r *Recorder) RecordUpstreamLatency(endpoint string, seconds float64) {
	r.upstreamLatency.WithLabelValues(endpoint).Observe(seconds)
}
