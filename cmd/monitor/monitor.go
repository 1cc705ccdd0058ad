package monitor

import (
	"github.com/spf13/cobra"

	"github.com/tphakala/vowelnet/internal/app"
	"github.com/tphakala/vowelnet/internal/conf"
)

// Command creates a new command for watching raw formant readings.
func Command(newApp app.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Print raw formant readings",
		Long:  "Print every detected F1/F2 pair to check that the formant source works. The training data is not touched.",
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

			_, err = a.Monitor(ctx)
			return err
		},
	}

	cmd.Flags().Int("polls", conf.DefaultPolls, "Number of polls, 0 runs until interrupted")

	return cmd
}
