// conf/defaults.go default values for settings
package conf

import (
	"time"

	"github.com/spf13/viper"
)

// Default values shared with command line flag definitions.
const (
	DefaultDataDir  = "app_data"
	DefaultDataFile = "vowel_training_data.txt"
	DefaultTraceDir = "traces"
	DefaultInterval = 100 * time.Millisecond
	DefaultPolls    = 100
	DefaultK        = 3
	DefaultListen   = "localhost:8090"
	DefaultLogLevel = "info"
	MaxK            = 50
)

// Sets default values for the configuration.
func setDefaultConfig(v *viper.Viper) {
	v.SetDefault("debug", false)

	v.SetDefault("data.dir", DefaultDataDir)
	v.SetDefault("data.file", DefaultDataFile)

	v.SetDefault("audio.tracedir", DefaultTraceDir)
	v.SetDefault("audio.device", 0)

	v.SetDefault("realtime.interval", DefaultInterval)
	v.SetDefault("realtime.polls", DefaultPolls)
	v.SetDefault("realtime.trainpolls", 0)

	v.SetDefault("classifier.k", DefaultK)

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.listen", DefaultListen)

	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.file", "")
}
