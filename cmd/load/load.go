package load

import (
	"github.com/spf13/cobra"

	"github.com/tphakala/vowelnet/internal/app"
)

// Command creates a new command for loading a saved training file.
func Command(newApp app.Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "load [name]",
		Short: "Replace the training data with a saved file",
		Long:  "Read name from the data directory and make it the current training data, which is then saved to the configured data file.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			var name string
			if len(args) == 1 {
				name = args[0]
			}
			if _, err := a.Load(name); err != nil {
				return err
			}
			return a.SaveDefault()
		},
	}
}
