// config.go: settings for vowelnet. It defines the settings struct and loads
// it from defaults, config.yaml, environment and bound command line flags.
package conf

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"

	"github.com/tphakala/vowelnet/internal/errors"
)

// EnvPrefix prefixes environment overrides, e.g. VOWELNET_CLASSIFIER_K.
const EnvPrefix = "VOWELNET"

// DataSettings locates the persisted training data.
type DataSettings struct {
	Dir  string // directory holding dataset files
	File string // default dataset file name inside Dir
}

// AudioSettings selects the formant input.
type AudioSettings struct {
	TraceDir string // directory of recorded formant traces
	Device   int    // device index passed to StartStream
}

// RealtimeSettings controls the polling loop.
type RealtimeSettings struct {
	Interval   time.Duration // delay between polls
	Polls      int           // poll budget for recognize and monitor, 0 runs until interrupted
	TrainPolls int           // poll budget for training collection, 0 runs until interrupted
}

// ClassifierSettings configures the nearest neighbor classifier.
type ClassifierSettings struct {
	K int // neighbors consulted per prediction
}

// TelemetrySettings controls the Prometheus endpoint.
type TelemetrySettings struct {
	Enabled bool   // true to serve /metrics
	Listen  string // listen address of the metrics endpoint
}

// LoggingSettings controls log output.
type LoggingSettings struct {
	Level string // debug, info, warn or error
	File  string // optional JSON log file, empty disables
}

// Settings contains all configuration options for vowelnet.
type Settings struct {
	Debug bool // true to enable debug logging

	Data       DataSettings
	Audio      AudioSettings
	Realtime   RealtimeSettings
	Classifier ClassifierSettings
	Telemetry  TelemetrySettings
	Logging    LoggingSettings

	// ConfigFile is the config file that was read, empty when none was found.
	ConfigFile string `mapstructure:"-" yaml:"-"`
}

var (
	settingsInstance *Settings
	settingsMutex    sync.RWMutex
)

// Load reads the configuration into a new Settings. configFile, when set,
// replaces the default search paths. Flags bound to the global viper
// instance take precedence over the file and environment.
func Load(configFile string) (*Settings, error) {
	settingsMutex.Lock()
	defer settingsMutex.Unlock()

	settings, err := load(viper.GetViper(), configFile)
	if err != nil {
		return nil, err
	}

	settingsInstance = settings
	return settingsInstance, nil
}

// GetSettings returns the most recently loaded settings, or nil.
func GetSettings() *Settings {
	settingsMutex.RLock()
	defer settingsMutex.RUnlock()
	return settingsInstance
}

func load(v *viper.Viper, configFile string) (*Settings, error) {
	if err := initViper(v, configFile); err != nil {
		return nil, err
	}

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, errors.New(fmt.Errorf("error unmarshaling config into struct: %w", err)).
			Component("conf").
			Category(errors.CategoryConfiguration).
			Context("config_file", v.ConfigFileUsed()).
			Build()
	}
	settings.ConfigFile = v.ConfigFileUsed()

	if err := ValidateSettings(settings); err != nil {
		return nil, errors.New(err).
			Component("conf").
			Category(errors.CategoryConfiguration).
			Context("operation", "validate").
			Build()
	}

	return settings, nil
}

// initViper sets defaults, environment binding and reads the config file.
// A missing config file is not an error; an explicit configFile must exist.
func initViper(v *viper.Viper, configFile string) error {
	setDefaultConfig(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		configPaths, err := GetDefaultConfigPaths()
		if err != nil {
			return err
		}
		for _, path := range configPaths {
			v.AddConfigPath(path)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return errors.New(fmt.Errorf("error reading config file: %w", err)).
			Component("conf").
			Category(errors.CategoryConfiguration).
			Context("config_file", configFile).
			Build()
	}

	return nil
}
