package train

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tphakala/vowelnet/internal/app"
	"github.com/tphakala/vowelnet/internal/vowel"
)

// Command creates a new command for collecting training examples.
func Command(newApp app.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train <vowel>",
		Short: "Collect training examples for a vowel",
		Long:  "Poll the formant source and store every detected formant pair under the given vowel (A, E, I, O or U). Press Ctrl+C to finish; the examples are then saved.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			label, err := vowel.ParseLabel(args[0])
			if err != nil {
				return err
			}

			a, err := newApp()
			if err != nil {
				return err
			}

			ctx, stop := app.NotifyContext(cmd.Context())
			defer stop()

			if _, err := a.Train(ctx, label); err != nil {
				return err
			}
			return a.SaveDefault()
		},
	}

	if err := setupFlags(cmd); err != nil {
		fmt.Printf("error setting up flags: %v\n", err)
		os.Exit(1)
	}

	return cmd
}

// setupFlags configures flags specific to the train command.
func setupFlags(cmd *cobra.Command) error {
	cmd.Flags().Int("polls", 0, "Stop after this many polls, 0 runs until interrupted")

	if err := viper.BindPFlag("realtime.trainpolls", cmd.Flags().Lookup("polls")); err != nil {
		return fmt.Errorf("error binding flags: %w", err)
	}

	return nil
}
