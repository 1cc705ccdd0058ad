package recognize

import (
	"github.com/spf13/cobra"

	"github.com/tphakala/vowelnet/internal/app"
	"github.com/tphakala/vowelnet/internal/conf"
)

// Command creates a new command for live vowel recognition.
func Command(newApp app.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recognize",
		Short: "Recognize vowels from the formant source",
		Long:  "Classify each detected formant pair against the saved training data and print the predicted vowel with its confidence.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("polls") {
				polls, _ := cmd.Flags().GetInt("polls")
				a.Settings().Realtime.Polls = polls
			}

			ctx, stop := app.NotifyContext(cmd.Context())
			defer stop()

			_, err = a.Recognize(ctx)
			return err
		},
	}

	cmd.Flags().Int("polls", conf.DefaultPolls, "Number of polls, 0 runs until interrupted")

	return cmd
}
