package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// VowelMetrics contains Prometheus metrics for training, recognition and
// evaluation. A nil *VowelMetrics is valid and records nothing.
type VowelMetrics struct {
	registry *prometheus.Registry

	samplesTotal         *prometheus.CounterVec
	predictionsTotal     *prometheus.CounterVec
	predictionErrors     *prometheus.CounterVec
	predictionConfidence prometheus.Histogram
	storeExamples        *prometheus.GaugeVec
	evaluationAccuracy   *prometheus.GaugeVec
	sessionsTotal        *prometheus.CounterVec
}

// NewVowelMetrics creates and registers vowel metrics.
func NewVowelMetrics(registry *prometheus.Registry) (*VowelMetrics, error) {
	m := &VowelMetrics{registry: registry}
	m.initMetrics()
	if err := registry.Register(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *VowelMetrics) initMetrics() {
	m.samplesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vowelnet_samples_total",
			Help: "Total number of formant samples seen during collection",
		},
		[]string{"vowel", "outcome"}, // outcome: collected, skipped
	)

	m.predictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vowelnet_predictions_total",
			Help: "Total number of predictions by predicted vowel",
		},
		[]string{"vowel"},
	)

	m.predictionErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vowelnet_prediction_errors_total",
			Help: "Total number of failed predictions",
		},
		[]string{"error_type"},
	)

	m.predictionConfidence = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "vowelnet_prediction_confidence",
			Help:    "Vote share of the winning vowel",
			Buckets: prometheus.LinearBuckets(0.1, 0.1, 10),
		},
	)

	m.storeExamples = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "vowelnet_store_examples",
			Help: "Number of stored training examples per vowel",
		},
		[]string{"vowel"},
	)

	m.evaluationAccuracy = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "vowelnet_evaluation_accuracy_ratio",
			Help: "Mean cross-validated accuracy per K (0.0 to 1.0)",
		},
		[]string{"k"},
	)

	m.sessionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vowelnet_sessions_total",
			Help: "Total number of realtime sessions by mode and result",
		},
		[]string{"mode", "result"},
	)
}

// RecordSample counts one polled sample for vowel.
func (m *VowelMetrics) RecordSample(vowel, outcome string) {
	if m == nil {
		return
	}
	m.samplesTotal.WithLabelValues(vowel, outcome).Inc()
}

// RecordPrediction counts a successful prediction and observes its confidence.
func (m *VowelMetrics) RecordPrediction(vowel string, confidence float64) {
	if m == nil {
		return
	}
	m.predictionsTotal.WithLabelValues(vowel).Inc()
	m.predictionConfidence.Observe(confidence)
}

// RecordPredictionError counts a failed prediction.
func (m *VowelMetrics) RecordPredictionError(errorType string) {
	if m == nil {
		return
	}
	m.predictionErrors.WithLabelValues(errorType).Inc()
}

// SetStoreExamples updates the stored example count for vowel.
func (m *VowelMetrics) SetStoreExamples(vowel string, count int) {
	if m == nil {
		return
	}
	m.storeExamples.WithLabelValues(vowel).Set(float64(count))
}

// SetEvaluationAccuracy records the mean accuracy measured for k.
func (m *VowelMetrics) SetEvaluationAccuracy(k int, accuracy float64) {
	if m == nil {
		return
	}
	m.evaluationAccuracy.WithLabelValues(strconv.Itoa(k)).Set(accuracy)
}

// RecordSession counts a finished realtime session.
func (m *VowelMetrics) RecordSession(mode, result string) {
	if m == nil {
		return
	}
	m.sessionsTotal.WithLabelValues(mode, result).Inc()
}

// Describe implements the Collector interface
func (m *VowelMetrics) Describe(ch chan<- *prometheus.Desc) {
	m.samplesTotal.Describe(ch)
	m.predictionsTotal.Describe(ch)
	m.predictionErrors.Describe(ch)
	m.predictionConfidence.Describe(ch)
	m.storeExamples.Describe(ch)
	m.evaluationAccuracy.Describe(ch)
	m.sessionsTotal.Describe(ch)
}

// Collect implements the Collector interface
func (m *VowelMetrics) Collect(ch chan<- prometheus.Metric) {
	m.samplesTotal.Collect(ch)
	m.predictionsTotal.Collect(ch)
	m.predictionErrors.Collect(ch)
	m.predictionConfidence.Collect(ch)
	m.storeExamples.Collect(ch)
	m.evaluationAccuracy.Collect(ch)
	m.sessionsTotal.Collect(ch)
}
