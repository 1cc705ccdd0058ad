package files

import (
	"github.com/spf13/cobra"

	"github.com/tphakala/vowelnet/internal/app"
)

// Command creates a new command for listing saved training files.
func Command(newApp app.Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "files",
		Short: "List saved training data files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			_, err = a.ListFiles()
			return err
		},
	}
}
