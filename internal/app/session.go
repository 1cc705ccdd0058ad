package app

import (
	"context"
	"strings"

	"github.com/tphakala/vowelnet/internal/errors"
	"github.com/tphakala/vowelnet/internal/evaluation"
	"github.com/tphakala/vowelnet/internal/formant"
	"github.com/tphakala/vowelnet/internal/logger"
	"github.com/tphakala/vowelnet/internal/realtime"
	"github.com/tphakala/vowelnet/internal/vowel"
)

const deviceRuleWidth = 50

// Train collects examples for label until ctx is cancelled or the configured
// training poll budget is used.
func (a *App) Train(ctx context.Context, label vowel.Label) (realtime.CollectResult, error) {
	return a.session.Collect(ctx, label, a.settings.Realtime.TrainPolls)
}

// Recognize runs live recognition for the configured poll budget.
func (a *App) Recognize(ctx context.Context) (realtime.RecognizeResult, error) {
	return a.session.Recognize(ctx, a.settings.Realtime.Polls)
}

// Monitor prints raw formant readings for the configured poll budget.
func (a *App) Monitor(ctx context.Context) (realtime.MonitorResult, error) {
	return a.session.Monitor(ctx, a.settings.Realtime.Polls)
}

// Evaluate runs the accuracy analysis and writes the report in format.
func (a *App) Evaluate(format string) (*evaluation.Report, error) {
	report, err := evaluation.Evaluate(a.store)
	if err != nil {
		if errors.Is(err, errors.ErrInsufficientData) {
			a.printf("%s\n", evaluation.InsufficientDataMessage)
		}
		return nil, err
	}

	for _, res := range report.Results {
		if res.Tested {
			a.metrics.Vowel.SetEvaluationAccuracy(res.K, res.MeanAccuracy)
		}
	}

	if err := report.Write(a.out, format); err != nil {
		return report, err
	}
	return report, nil
}

// Devices prints the formant source devices and, when available, the
// system capture devices.
func (a *App) Devices() ([]formant.Device, error) {
	rule := strings.Repeat("=", deviceRuleWidth)
	a.printf("\n%s\nAVAILABLE AUDIO DEVICES\n%s\n", rule, rule)

	devices, err := a.source.ListDevices()
	if err != nil {
		a.printf("Error getting device list: %v\n", err)
		return nil, err
	}

	a.printf("Formant sources:\n")
	if len(devices) == 0 {
		a.printf("  (none)\n")
	}
	for _, d := range devices {
		a.printDevice(d)
	}

	capture, err := formant.CaptureDevices()
	if err != nil {
		a.log.Debug("capture device enumeration unavailable", logger.Error(err))
		a.printf("\nCapture devices: unavailable (%v)\n", err)
	} else {
		a.printf("\nCapture devices:\n")
		for _, d := range capture {
			a.printDevice(d)
		}
	}

	a.printf("\nCurrent selected device: %d\n", a.session.Device())
	return devices, nil
}

// SelectDevice trial-opens index and, if it works, uses it for later runs.
func (a *App) SelectDevice(index int) error {
	if index < 0 {
		a.printf("Please enter a valid device number (0 or higher)\n")
		return errors.ValidationError("device index must be at least 0")
	}

	a.printf("Testing device %d...\n", index)
	if err := formant.TryDevice(a.source, index); err != nil {
		a.printf("Error testing device %d: %v\n", index, err)
		a.printf("Please try a different device number.\n")
		return err
	}

	a.session.SetDevice(index)
	a.settings.Audio.Device = index
	a.printf("✓ Audio input device changed to: %d\n", index)
	a.printf("This will be used for all future training and recognition.\n")
	return nil
}

func (a *App) printDevice(d formant.Device) {
	marker := ""
	if d.Default {
		marker = " (default)"
	}
	a.printf("  %d: %s%s\n", d.Index, d.Name, marker)
}
