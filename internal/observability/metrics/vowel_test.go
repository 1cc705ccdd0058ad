package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordSample(t *testing.T) {
	registry := prometheus.NewRegistry()
	m, err := NewVowelMetrics(registry)
	require.NoError(t, err)

	m.RecordSample("A", OutcomeCollected)
	m.RecordSample("A", OutcomeCollected)
	m.RecordSample("A", OutcomeSkipped)

	assert.InDelta(t, 2, testutil.ToFloat64(m.samplesTotal.WithLabelValues("A", OutcomeCollected)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.samplesTotal.WithLabelValues("A", OutcomeSkipped)), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.samplesTotal.WithLabelValues("E", OutcomeCollected)), 0)
}

func TestRecordPrediction(t *testing.T) {
	registry := prometheus.NewRegistry()
	m, err := NewVowelMetrics(registry)
	require.NoError(t, err)

	m.RecordPrediction("I", 1.0)
	m.RecordPrediction("I", 2.0/3.0)
	m.RecordPredictionError(ErrorTypeValidation)

	assert.InDelta(t, 2, testutil.ToFloat64(m.predictionsTotal.WithLabelValues("I")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.predictionErrors.WithLabelValues(ErrorTypeValidation)), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(m.predictionConfidence))
}

func TestGauges(t *testing.T) {
	registry := prometheus.NewRegistry()
	m, err := NewVowelMetrics(registry)
	require.NoError(t, err)

	m.SetStoreExamples("O", 12)
	m.SetStoreExamples("O", 7)
	m.SetEvaluationAccuracy(3, 0.85)

	assert.InDelta(t, 7, testutil.ToFloat64(m.storeExamples.WithLabelValues("O")), 0)
	assert.InDelta(t, 0.85, testutil.ToFloat64(m.evaluationAccuracy.WithLabelValues("3")), 1e-12)
}

func TestRecordSession(t *testing.T) {
	registry := prometheus.NewRegistry()
	m, err := NewVowelMetrics(registry)
	require.NoError(t, err)

	m.RecordSession("train", "completed")
	assert.InDelta(t, 1, testutil.ToFloat64(m.sessionsTotal.WithLabelValues("train", "completed")), 0)
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *VowelMetrics
	assert.NotPanics(t, func() {
		m.RecordSample("A", OutcomeCollected)
		m.RecordPrediction("A", 1)
		m.RecordPredictionError(ErrorTypeOther)
		m.SetStoreExamples("A", 1)
		m.SetEvaluationAccuracy(1, 1)
		m.RecordSession("recognize", "cancelled")
	})
}

func TestDuplicateRegistrationFails(t *testing.T) {
	registry := prometheus.NewRegistry()
	_, err := NewVowelMetrics(registry)
	require.NoError(t, err)

	_, err = NewVowelMetrics(registry)
	assert.Error(t, err)
}
