package realtime

import (
	"context"

	"github.com/tphakala/vowelnet/internal/vowel"
)

// MonitorResult summarizes a monitor run.
type MonitorResult struct {
	Readings  int
	Polls     int
	Cancelled bool
}

// Monitor prints valid raw formant readings for up to polls polls (0 means
// until cancelled). It checks that the detector works without touching the
// store.
func (s *Session) Monitor(ctx context.Context, polls int) (MonitorResult, error) {
	var result MonitorResult

	s.printf("Starting real-time formant detection...\n")
	ctx, log := s.begin(ctx, ModeMonitor)

	banner := "Listening for formants... Speak into your microphone!\nPress Ctrl+C to stop\n"
	polled, cancelled, err := s.poll(ctx, log, polls, banner, func(p vowel.Pair) {
		if !p.Valid() {
			return
		}
		result.Readings++
		s.printf("F1: %.0f Hz, F2: %.0f Hz\n", p.F1, p.F2)
	})
	result.Polls = polled
	result.Cancelled = cancelled

	if cancelled {
		s.printf("\nStopping detection...\n")
	}
	s.printf("Detection stopped.\n")
	s.finish(log, ModeMonitor, polled, cancelled, err)
	return result, err
}
