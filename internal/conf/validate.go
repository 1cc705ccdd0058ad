// conf/validate.go

package conf

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

var validLogLevels = []string{"debug", "info", "warn", "warning", "error"}

// ValidationError represents a collection of validation errors
type ValidationError struct {
	Errors []string
}

// Error returns a string representation of the validation errors
func (ve ValidationError) Error() string {
	return fmt.Sprintf("Validation errors: %v", ve.Errors)
}

// ValidateSettings validates the entire Settings struct
func ValidateSettings(settings *Settings) error {
	ve := ValidationError{}

	if err := validateDataSettings(&settings.Data); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if err := validateAudioSettings(&settings.Audio); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if err := validateRealtimeSettings(&settings.Realtime); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if settings.Classifier.K < 1 || settings.Classifier.K > MaxK {
		ve.Errors = append(ve.Errors, fmt.Sprintf("classifier k must be between 1 and %d", MaxK))
	}

	if settings.Telemetry.Enabled && settings.Telemetry.Listen == "" {
		ve.Errors = append(ve.Errors, "telemetry listen address must not be empty when telemetry is enabled")
	}

	if !slices.Contains(validLogLevels, strings.ToLower(settings.Logging.Level)) {
		ve.Errors = append(ve.Errors, fmt.Sprintf("invalid log level %q", settings.Logging.Level))
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

func validateDataSettings(settings *DataSettings) error {
	var errs []string

	if strings.TrimSpace(settings.Dir) == "" {
		errs = append(errs, "data directory must not be empty")
	}
	if strings.TrimSpace(settings.File) == "" {
		errs = append(errs, "data file name must not be empty")
	} else if !filepath.IsLocal(settings.File) {
		errs = append(errs, "data file name must stay inside the data directory")
	}

	if len(errs) > 0 {
		return fmt.Errorf("data settings errors: %v", errs)
	}
	return nil
}

func validateAudioSettings(settings *AudioSettings) error {
	if settings.Device < 0 {
		return fmt.Errorf("audio device index must be at least 0")
	}
	return nil
}

func validateRealtimeSettings(settings *RealtimeSettings) error {
	var errs []string

	if settings.Interval <= 0 {
		errs = append(errs, "poll interval must be positive")
	}
	if settings.Polls < 0 {
		errs = append(errs, "poll count must be at least 0")
	}
	if settings.TrainPolls < 0 {
		errs = append(errs, "training poll count must be at least 0")
	}

	if len(errs) > 0 {
		return fmt.Errorf("realtime settings errors: %v", errs)
	}
	return nil
}
