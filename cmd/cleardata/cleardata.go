package cleardata

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/tphakala/vowelnet/internal/app"
	"github.com/tphakala/vowelnet/internal/vowel"
)

// Command creates a new command for deleting training examples.
func Command(newApp app.Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "clear <vowel|all>",
		Short: "Delete training examples for one vowel or all vowels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			all := strings.EqualFold(strings.TrimSpace(args[0]), "all")

			var label vowel.Label
			if !all {
				var err error
				if label, err = vowel.ParseLabel(args[0]); err != nil {
					return err
				}
			}

			a, err := newApp()
			if err != nil {
				return err
			}

			if all {
				a.ClearAll()
			} else {
				a.Clear(label)
			}
			return a.SaveDefault()
		},
	}
}
