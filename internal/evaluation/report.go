package evaluation

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tphakala/vowelnet/internal/errors"
)

// Output formats accepted by Write.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

const ruleWidth = 50

// Write renders the report in the given format.
func (r *Report) Write(w io.Writer, format string) error {
	switch format {
	case "", FormatText:
		return r.WriteText(w)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	default:
		return errors.ValidationError(fmt.Sprintf("unknown report format %q, expected text, yaml or json", format))
	}
}

// WriteText renders the human-readable accuracy analysis.
func (r *Report) WriteText(w io.Writer) error {
	var b strings.Builder
	rule := strings.Repeat("=", ruleWidth)

	fmt.Fprintf(&b, "\n%s\nMODEL ACCURACY ANALYSIS\n%s\n", rule, rule)

	b.WriteString("Training Data Summary:\n")
	for _, c := range r.Counts {
		fmt.Fprintf(&b, "  %s: %d examples\n", c.Label, c.Count)
	}
	fmt.Fprintf(&b, "  Total: %d examples\n", r.Total)

	fmt.Fprintf(&b, "\nAccuracy with different K values (%d-fold cross-validation):\n", r.Folds)
	for _, res := range r.Results {
		if !res.Tested {
			fmt.Fprintf(&b, "  K=%d: Could not test (%s)\n", res.K, res.Reason)
			continue
		}
		fmt.Fprintf(&b, "  K=%d: %.1f%% (+/- %.1f%%)\n", res.K, res.MeanAccuracy*100, res.ErrorBar*100)
	}

	b.WriteString("\nRecommendations:\n")
	for _, rec := range r.Recommendations {
		fmt.Fprintf(&b, "  • %s\n", rec)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
