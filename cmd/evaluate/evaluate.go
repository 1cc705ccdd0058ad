package evaluate

import (
	"github.com/spf13/cobra"

	"github.com/tphakala/vowelnet/internal/app"
	"github.com/tphakala/vowelnet/internal/evaluation"
)

// Command creates a new command for cross-validated accuracy analysis.
func Command(newApp app.Factory) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Measure classifier accuracy on the training data",
		Long:  "Run stratified k-fold cross-validation for K = 1, 3, 5 and 7 and print accuracy with recommendations for further training.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			_, err = a.Evaluate(output)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", evaluation.FormatText, "Report format: text, yaml or json")

	return cmd
}
