package realtime

import (
	"context"
	"fmt"

	"github.com/tphakala/vowelnet/internal/errors"
	"github.com/tphakala/vowelnet/internal/logger"
	"github.com/tphakala/vowelnet/internal/observability/metrics"
	"github.com/tphakala/vowelnet/internal/vowel"
)

// CollectResult summarizes a training run.
type CollectResult struct {
	Label     vowel.Label
	Collected int
	Skipped   int
	Polls     int
	Cancelled bool
}

// Collect records training examples for label. Valid readings are buffered
// and merged into the store when the run ends by cancellation or by using up
// polls (0 means until cancelled). If a read fails the buffer is dropped and
// the store is left as it was.
func (s *Session) Collect(ctx context.Context, label vowel.Label, polls int) (CollectResult, error) {
	result := CollectResult{Label: label}
	if !label.Valid() {
		return result, errors.ValidationError(fmt.Sprintf("invalid vowel label %d", uint8(label)))
	}

	ctx, log := s.begin(ctx, ModeTrain)
	log = log.With(logger.String("vowel", label.String()))

	s.printf("Training for vowel: %s\n", label)

	var buffer []vowel.Pair
	banner := "Say the vowel sound repeatedly. Press Ctrl+C when done.\n"
	polled, cancelled, err := s.poll(ctx, log, polls, banner, func(p vowel.Pair) {
		if !p.Valid() {
			result.Skipped++
			s.metrics.RecordSample(label.String(), metrics.OutcomeSkipped)
			return
		}
		buffer = append(buffer, p)
		s.metrics.RecordSample(label.String(), metrics.OutcomeCollected)
		s.printf("Collected: F1=%.0f Hz, F2=%.0f Hz (Total: %d)\n", p.F1, p.F2, len(buffer))
	})
	result.Polls = polled
	result.Cancelled = cancelled

	if err != nil {
		s.finish(log, ModeTrain, polled, false, err)
		return result, err
	}

	result.Collected = s.store.AddAll(label, buffer)
	s.metrics.SetStoreExamples(label.String(), s.store.Count(label))
	s.printf("\nFinished training for vowel %s. Collected %d examples.\n", label, result.Collected)

	log.Debug("training examples merged",
		logger.Int("collected", result.Collected),
		logger.Int("skipped", result.Skipped),
		logger.Int("stored", s.store.Count(label)))
	s.finish(log, ModeTrain, polled, cancelled, nil)
	return result, nil
}
