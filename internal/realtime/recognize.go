package realtime

import (
	"context"

	"github.com/tphakala/vowelnet/internal/classifier"
	"github.com/tphakala/vowelnet/internal/errors"
	"github.com/tphakala/vowelnet/internal/logger"
	"github.com/tphakala/vowelnet/internal/observability/metrics"
	"github.com/tphakala/vowelnet/internal/vowel"
)

// RecognizeResult summarizes a recognition run.
type RecognizeResult struct {
	Predictions []classifier.Prediction
	Errors      int
	Polls       int
	Cancelled   bool
}

// Recognize classifies every valid reading for up to polls polls (0 means
// until cancelled). A failed prediction is reported for that reading and the
// loop goes on.
func (s *Session) Recognize(ctx context.Context, polls int) (RecognizeResult, error) {
	var result RecognizeResult

	s.printf("Starting realtime vowel prediction\n")
	if total := s.store.Total(); total < MinRecognizeExamples {
		s.printf("Not enough training data! Please train some vowels first.\n")
		return result, errors.InsufficientData("realtime", total, MinRecognizeExamples)
	}

	ctx, log := s.begin(ctx, ModeRecognize)

	banner := "Listening for vowels... Speak into your microphone!\nPress Ctrl+C to stop\n"
	polled, cancelled, err := s.poll(ctx, log, polls, banner, func(p vowel.Pair) {
		if !p.Valid() {
			return
		}
		pred, err := s.classifier.Predict(p)
		if err != nil {
			result.Errors++
			s.metrics.RecordPredictionError(predictionErrorType(err))
			log.Debug("prediction failed", logger.Error(err))
			s.printf("F1: %.0f Hz, F2: %.0f Hz -> Prediction error: %v\n", p.F1, p.F2, err)
			return
		}
		result.Predictions = append(result.Predictions, pred)
		s.metrics.RecordPrediction(pred.Label.String(), pred.Confidence)
		s.printf("F1: %.0f Hz, F2: %.0f Hz -> Vowel: %s (confidence: %.2f)\n", p.F1, p.F2, pred.Label, pred.Confidence)
	})
	result.Polls = polled
	result.Cancelled = cancelled

	if cancelled {
		s.printf("\nStopping prediction...\n")
	}
	s.printf("Prediction stopped.\n")
	s.finish(log, ModeRecognize, polled, cancelled, err)
	return result, err
}

func predictionErrorType(err error) string {
	switch {
	case errors.IsCategory(err, errors.CategoryInsufficientData):
		return metrics.ErrorTypeInsufficientData
	case errors.IsCategory(err, errors.CategoryValidation):
		return metrics.ErrorTypeValidation
	default:
		return metrics.ErrorTypeOther
	}
}
