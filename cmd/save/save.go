package save

import (
	"github.com/spf13/cobra"

	"github.com/tphakala/vowelnet/internal/app"
)

// Command creates a new command for saving the training data under a name.
func Command(newApp app.Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "save [name]",
		Short: "Save the training data to a file in the data directory",
		Long:  "Write the current training data to name inside the data directory. Without a name the configured data file is used.",
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
			_, err = a.Save(name)
			return err
		},
	}
}
