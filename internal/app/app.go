// Package app wires configuration to the store, codec, classifier, formant
// source and metrics, and implements the user-facing operations shared by the
// command line and the interactive menu.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/spf13/afero"

	"github.com/tphakala/vowelnet/internal/classifier"
	"github.com/tphakala/vowelnet/internal/conf"
	"github.com/tphakala/vowelnet/internal/dataset"
	"github.com/tphakala/vowelnet/internal/formant"
	"github.com/tphakala/vowelnet/internal/logger"
	"github.com/tphakala/vowelnet/internal/observability"
	"github.com/tphakala/vowelnet/internal/realtime"
	"github.com/tphakala/vowelnet/internal/vowel"
)

// Options overrides the collaborators New would build from settings.
type Options struct {
	// Fs backs the dataset codec and trace source; nil means the OS filesystem.
	Fs afero.Fs
	// Out receives user-facing output; nil means stdout.
	Out io.Writer
	// Source replaces the trace replay source.
	Source formant.Source
	// Logger replaces the central logger built from settings.
	Logger logger.Logger
}

// App is one running vowelnet instance. It owns a single store for its
// lifetime.
type App struct {
	settings   *conf.Settings
	store      *vowel.Store
	codec      *dataset.Codec
	classifier *classifier.Classifier
	metrics    *observability.Metrics
	source     formant.Source
	session    *realtime.Session
	log        logger.Logger
	out        io.Writer

	central *logger.CentralLogger
}

// New builds an App from settings.
func New(settings *conf.Settings, opts Options) (*App, error) {
	a := &App{settings: settings, out: opts.Out, log: opts.Logger}
	if a.out == nil {
		a.out = os.Stdout
	}

	if a.log == nil {
		central, err := newCentralLogger(settings)
		if err != nil {
			return nil, err
		}
		logger.SetGlobal(central)
		a.central = central
		a.log = central.Module("app")
	}

	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	m, err := observability.NewMetrics()
	if err != nil {
		return nil, err
	}
	a.metrics = m

	a.store = vowel.NewStore()
	a.codec = dataset.NewCodec(fs, settings.Data.Dir, a.log.Module("dataset"))
	a.classifier = classifier.New(a.store, settings.Classifier.K, a.log.Module("classifier"))

	a.source = opts.Source
	if a.source == nil {
		a.source = formant.NewTraceSource(fs, settings.Audio.TraceDir, a.log.Module("formant"))
	}

	a.session = realtime.NewSession(realtime.Config{
		Source:     a.source,
		Store:      a.store,
		Classifier: a.classifier,
		Metrics:    m.Vowel,
		Logger:     a.log.Module("realtime"),
		Out:        a.out,
		Interval:   settings.Realtime.Interval,
		Device:     settings.Audio.Device,
	})

	a.log.Debug("application initialized",
		logger.String("data_dir", settings.Data.Dir),
		logger.String("trace_dir", settings.Audio.TraceDir),
		logger.Int("k", a.classifier.K()))

	return a, nil
}

func newCentralLogger(settings *conf.Settings) (*logger.CentralLogger, error) {
	level := settings.Logging.Level
	if settings.Debug {
		level = string(logger.LogLevelDebug)
	}
	cfg := &logger.LoggingConfig{
		DefaultLevel: strings.ToLower(level),
		Console:      &logger.ConsoleOutput{Enabled: true, Level: strings.ToLower(level)},
	}
	if settings.Logging.File != "" {
		cfg.FileOutput = &logger.FileOutput{Enabled: true, Path: settings.Logging.File}
	}
	return logger.NewCentralLogger(cfg)
}

// Close flushes and closes log outputs owned by the App.
func (a *App) Close() error {
	if a.central == nil {
		return nil
	}
	return a.central.Close()
}

// Store returns the training store.
func (a *App) Store() *vowel.Store {
	return a.store
}

// Settings returns the settings the App was built with.
func (a *App) Settings() *conf.Settings {
	return a.settings
}

// Metrics returns the metrics registry holder.
func (a *App) Metrics() *observability.Metrics {
	return a.metrics
}

// ServeTelemetry starts the /metrics endpoint when telemetry is enabled. The
// endpoint stops when ctx is done; wait on wg to join it.
func (a *App) ServeTelemetry(ctx context.Context, wg *sync.WaitGroup) error {
	if !a.settings.Telemetry.Enabled {
		return nil
	}
	endpoint, err := observability.NewEndpoint(a.settings, a.metrics)
	if err != nil {
		return err
	}
	return endpoint.Start(ctx, wg)
}

// PrintSummary writes the per-vowel example counts.
func (a *App) PrintSummary() {
	a.printf("\nTraining data collected:\n")
	for _, label := range vowel.Labels() {
		a.printf("  %s: %d examples\n", label, a.store.Count(label))
	}
	a.printf("  Total: %d examples\n", a.store.Total())
}

func (a *App) updateStoreGauges() {
	for _, label := range vowel.Labels() {
		a.metrics.Vowel.SetStoreExamples(label.String(), a.store.Count(label))
	}
}

func (a *App) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}
