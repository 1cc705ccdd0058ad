package cmd

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tphakala/vowelnet/cmd/cleardata"
	"github.com/tphakala/vowelnet/cmd/devices"
	"github.com/tphakala/vowelnet/cmd/evaluate"
	"github.com/tphakala/vowelnet/cmd/files"
	"github.com/tphakala/vowelnet/cmd/load"
	"github.com/tphakala/vowelnet/cmd/menu"
	"github.com/tphakala/vowelnet/cmd/monitor"
	"github.com/tphakala/vowelnet/cmd/recognize"
	"github.com/tphakala/vowelnet/cmd/save"
	"github.com/tphakala/vowelnet/cmd/train"
	"github.com/tphakala/vowelnet/internal/app"
	"github.com/tphakala/vowelnet/internal/buildinfo"
	"github.com/tphakala/vowelnet/internal/conf"
)

// flagKeys maps persistent flag names to their configuration keys.
var flagKeys = map[string]string{
	"debug":     "debug",
	"data-dir":  "data.dir",
	"data-file": "data.file",
	"trace-dir": "audio.tracedir",
	"device":    "audio.device",
	"interval":  "realtime.interval",
	"k":         "classifier.k",
	"telemetry": "telemetry.enabled",
	"listen":    "telemetry.listen",
	"log-level": "logging.level",
	"log-file":  "logging.file",
}

// RootCommand creates and returns the root command
func RootCommand() *cobra.Command {
	var configFile string

	lazy := app.NewLazy(func() (*conf.Settings, error) {
		return conf.Load(configFile)
	}, app.Options{})

	rootCmd := &cobra.Command{
		Use:          "vowelnet",
		Short:        "Vowel recognition trainer",
		Long:         "Collect formant examples per vowel, recognize vowels live and measure classifier accuracy.",
		Version:      buildinfo.Current().String(),
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to config.yaml (default: ./config.yaml or ~/.config/vowelnet/config.yaml)")
	if err := setupFlags(rootCmd); err != nil {
		fmt.Printf("error setting up flags: %v\n", err)
		os.Exit(1)
	}

	var wg sync.WaitGroup
	stopTelemetry := func() {}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		lazy.SetOut(cmd.OutOrStdout())

		get := lazy.Get
		if _, ok := cmd.Annotations[app.AnnotationEmptyStore]; ok {
			get = lazy.GetEmpty
		}
		a, err := get()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithCancel(cmd.Context())
		stopTelemetry = cancel
		return a.ServeTelemetry(ctx, &wg)
	}

	rootCmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		stopTelemetry()
		wg.Wait()
		return lazy.Close()
	}

	subcommands := []*cobra.Command{
		train.Command(lazy.Get),
		recognize.Command(lazy.Get),
		monitor.Command(lazy.Get),
		evaluate.Command(lazy.Get),
		cleardata.Command(lazy.Get),
		save.Command(lazy.Get),
		load.Command(lazy.Get),
		files.Command(lazy.Get),
		devices.Command(lazy.Get),
		menu.Command(lazy.Get),
	}

	rootCmd.AddCommand(subcommands...)

	return rootCmd
}

// setupFlags defines flags that are global to the command line interface
func setupFlags(rootCmd *cobra.Command) error {
	flags := rootCmd.PersistentFlags()
	flags.BoolP("debug", "d", false, "Enable debug output")
	flags.String("data-dir", conf.DefaultDataDir, "Directory for saved training data")
	flags.String("data-file", conf.DefaultDataFile, "Training data file loaded at start and saved after changes")
	flags.String("trace-dir", conf.DefaultTraceDir, "Directory of recorded formant traces, one device per file")
	flags.Int("device", 0, "Formant source device index")
	flags.Duration("interval", conf.DefaultInterval, "Delay between formant polls")
	flags.Int("k", conf.DefaultK, "Number of neighbors consulted per prediction")
	flags.Bool("telemetry", false, "Enable Prometheus telemetry endpoint")
	flags.String("listen", conf.DefaultListen, "Listen address and port of telemetry endpoint")
	flags.String("log-level", conf.DefaultLogLevel, "Log level: debug, info, warn or error")
	flags.String("log-file", "", "Write JSON logs to this file")

	for name, key := range flagKeys {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("error binding flags: %w", err)
		}
	}

	return nil
}
