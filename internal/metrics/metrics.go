package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const namespace = "s2t"

// Metrics records what a single run did. A CLI process is too short-lived to
// be scraped, so the registry is dumped to a node_exporter textfile instead.
type Metrics struct {
	logger   *zap.Logger
	registry *prometheus.Registry

	requests   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	inputChars prometheus.Counter
	audioBytes prometheus.Counter
	voices     prometheus.Gauge
	lastRun    prometheus.Gauge
}

// New creates a metrics set on its own registry.
func New(logger *zap.Logger) *Metrics {
	m := &Metrics{
		logger:   logger.With(zap.String("component", "metrics")),
		registry: prometheus.NewRegistry(),

		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "Text-to-Speech API calls by operation and outcome.",
			},
			[]string{"operation", "status"}, // operation: synthesize, list_voices; status: success, failed
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "request_duration_seconds",
				Help:      "Latency of Text-to-Speech API calls.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		inputChars: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "input_characters_total",
			Help:      "Characters sent for synthesis.",
		}),
		audioBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "audio_bytes_total",
			Help:      "Encoded audio bytes received.",
		}),
		voices: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "voices_listed",
			Help:      "Voices returned by the last listing.",
		}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the last API call finished.",
		}),
	}

	m.registry.MustRegister(m.requests, m.duration, m.inputChars, m.audioBytes, m.voices, m.lastRun)
	return m
}

// RecordSynthesis stores the outcome of one synthesis call.
func (m *Metrics) RecordSynthesis(chars, audioBytes int, elapsed time.Duration, err error) {
	m.observe("synthesize", elapsed, err)
	m.inputChars.Add(float64(chars))
	if err == nil {
		m.audioBytes.Add(float64(audioBytes))
	}
}

// RecordListing stores the outcome of one voice listing.
func (m *Metrics) RecordListing(count int, elapsed time.Duration, err error) {
	m.observe("list_voices", elapsed, err)
	if err == nil {
		m.voices.Set(float64(count))
	}
}

func (m *Metrics) observe(op string, elapsed time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "failed"
	}
	m.requests.WithLabelValues(op, status).Inc()
	m.duration.WithLabelValues(op).Observe(elapsed.Seconds())
	m.lastRun.SetToCurrentTime()
}

// Gatherer exposes the registry, mainly for tests.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile writes all metrics in text exposition format to path.
// An empty path is a no-op.
func (m *Metrics) WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return err
	}
	m.logger.Debug("metrics written", zap.String("path", path))
	return nil
}
