package devices

import (
	"github.com/spf13/cobra"

	"github.com/tphakala/vowelnet/internal/app"
)

// Command creates a new command for listing and testing input devices.
func Command(newApp app.Factory) *cobra.Command {
	var test int

	cmd := &cobra.Command{
		Use:   "devices",
		Short: "List formant sources and audio capture devices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("test") {
				return a.SelectDevice(test)
			}
			_, err = a.Devices()
			return err
		},
	}

	cmd.Flags().IntVar(&test, "test", 0, "Open and close this device index to check that it works")

	return cmd
}
