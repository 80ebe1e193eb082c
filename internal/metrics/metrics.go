package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeSuccess     = "success"
	OutcomeUnavailable = "unavailable"
	OutcomeError       = "error"
	OutcomeTimeout     = "timeout"
)

// Metrics owns its registry so several instances can live in one process.
type Metrics struct {
	registry          *prometheus.Registry
	inferenceRequests *prometheus.CounterVec
	inferenceDuration *prometheus.HistogramVec
	modelLoaded       *prometheus.GaugeVec
	inputsTruncated   *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		inferenceRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "recruiter_inference_requests_total",
			Help: "Inference calls by model and outcome.",
		}, []string{"model", "outcome"}),
		inferenceDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "recruiter_inference_duration_seconds",
			Help:    "Duration of model invocations.",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		}, []string{"model"}),
		modelLoaded: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "recruiter_model_loaded",
			Help: "1 when the model loaded at startup, 0 otherwise.",
		}, []string{"model"}),
		inputsTruncated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "recruiter_inputs_truncated_total",
			Help: "Inputs estimated to exceed the model's maximum length.",
		}, []string{"model"}),
	}

	registry.MustRegister(
		m.inferenceRequests,
		m.inferenceDuration,
		m.modelLoaded,
		m.inputsTruncated,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *Metrics) RecordInference(model, outcome string, duration time.Duration) {
	m.inferenceRequests.WithLabelValues(model, outcome).Inc()
	if outcome != OutcomeUnavailable {
		m.inferenceDuration.WithLabelValues(model).Observe(duration.Seconds())
	}
}

func (m *Metrics) SetModelLoaded(model string, loaded bool) {
	value := 0.0
	if loaded {
		value = 1
	}
	m.modelLoaded.WithLabelValues(model).Set(value)
}

func (m *Metrics) RecordTruncation(model string) {
	m.inputsTruncated.WithLabelValues(model).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
