// Package realtime runs the polling loops that connect a formant source to the
// training store and the classifier: training collection, live recognition
// and a raw formant monitor.
package realtime

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/tphakala/vowelnet/internal/classifier"
	"github.com/tphakala/vowelnet/internal/formant"
	"github.com/tphakala/vowelnet/internal/logger"
	"github.com/tphakala/vowelnet/internal/observability/metrics"
	"github.com/tphakala/vowelnet/internal/vowel"
)

const (
	// DefaultInterval is the delay between two polls of the source.
	DefaultInterval = 100 * time.Millisecond
	// DefaultPolls is the poll budget for recognition and monitoring.
	DefaultPolls = 100
	// MinRecognizeExamples is the store size below which recognition refuses
	// to start.
	MinRecognizeExamples = 10
)

// Session modes used in logs and metrics.
const (
	ModeTrain     = "train"
	ModeRecognize = "recognize"
	ModeMonitor   = "monitor"
)

// Session results used in metrics.
const (
	resultCompleted = "completed"
	resultCancelled = "cancelled"
	resultFailed    = "failed"
)

// Config wires a Session to its collaborators. Only Source and Store are
// required.
type Config struct {
	Source     formant.Source
	Store      *vowel.Store
	Classifier *classifier.Classifier
	Metrics    *metrics.VowelMetrics
	Logger     logger.Logger
	// Out receives the progress lines shown to the user; nil means stdout.
	Out io.Writer
	// Interval between polls; zero means DefaultInterval.
	Interval time.Duration
	// Device is the source device index opened by every run.
	Device int
}

// Session drives one formant source. Runs are sequential; a Session must not
// be used from more than one goroutine at a time.
type Session struct {
	source     formant.Source
	store      *vowel.Store
	classifier *classifier.Classifier
	metrics    *metrics.VowelMetrics
	log        logger.Logger
	out        io.Writer
	interval   time.Duration
	device     int
}

// NewSession creates a session from cfg.
func NewSession(cfg Config) *Session {
	s := &Session{
		source:     cfg.Source,
		store:      cfg.Store,
		classifier: cfg.Classifier,
		metrics:    cfg.Metrics,
		log:        cfg.Logger,
		out:        cfg.Out,
		interval:   cfg.Interval,
		device:     cfg.Device,
	}
	if s.log == nil {
		s.log = logger.Global().Module("realtime")
	}
	if s.out == nil {
		s.out = os.Stdout
	}
	if s.interval <= 0 {
		s.interval = DefaultInterval
	}
	if s.classifier == nil {
		s.classifier = classifier.New(s.store, classifier.DefaultK, nil)
	}
	return s
}

// Device returns the device index used by the session.
func (s *Session) Device() int {
	return s.device
}

// SetDevice changes the device index used by later runs.
func (s *Session) SetDevice(index int) {
	s.device = index
}

// begin attaches a fresh session id to ctx and the logger.
func (s *Session) begin(ctx context.Context, mode string) (context.Context, logger.Logger) {
	id := uuid.NewString()
	ctx = logger.WithTraceID(ctx, id)
	log := s.log.WithContext(ctx).With(logger.String("mode", mode), logger.Int("device", s.device))
	log.Info("session started")
	return ctx, log
}

// finish logs and counts the end of a run.
func (s *Session) finish(log logger.Logger, mode string, polled int, cancelled bool, err error) {
	result := resultCompleted
	switch {
	case err != nil:
		result = resultFailed
		log.Error("session failed", logger.Int("polls", polled), logger.Error(err))
	case cancelled:
		result = resultCancelled
		log.Info("session cancelled", logger.Int("polls", polled))
	default:
		log.Info("session completed", logger.Int("polls", polled))
	}
	s.metrics.RecordSession(mode, result)
}

// poll opens the stream, prints banner and hands every reading to handle
// until polls readings were taken or ctx is done. polls == 0 polls until
// cancelled. The stream is stopped on every return path. A failed read ends
// the run with that error.
func (s *Session) poll(ctx context.Context, log logger.Logger, polls int, banner string, handle func(vowel.Pair)) (polled int, cancelled bool, err error) {
	if err := s.source.StartStream(s.device); err != nil {
		return 0, false, err
	}
	s.printf("%s", banner)
	defer func() {
		if stopErr := s.source.StopStream(); stopErr != nil {
			log.Warn("failed to stop stream", logger.Error(stopErr))
		}
	}()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for polls == 0 || polled < polls {
		if ctx.Err() != nil {
			return polled, true, nil
		}

		pair, err := s.source.Formants()
		if err != nil {
			return polled, false, err
		}
		polled++
		handle(pair)

		if polls != 0 && polled == polls {
			break
		}

		select {
		case <-ctx.Done():
			return polled, true, nil
		case <-ticker.C:
		}
	}
	return polled, false, nil
}

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
