package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tphakala/vowelnet/internal/app"
	"github.com/tphakala/vowelnet/internal/evaluation"
	"github.com/tphakala/vowelnet/internal/vowel"
)

const (
	ruleWidth  = 60
	choiceExit = 16
)

// Command creates the interactive menu command. The session starts with an
// empty store; option 14 loads saved data.
func Command(newApp app.Factory) *cobra.Command {
	return &cobra.Command{
		Use:         "menu",
		Short:       "Interactive training and recognition session",
		Long:        "Keep the training data in memory and pick actions from a numbered menu, like a lab session at the microphone.",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{app.AnnotationEmptyStore: ""},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			m := &Menu{
				app:    a,
				in:     bufio.NewScanner(cmd.InOrStdin()),
				out:    cmd.OutOrStdout(),
				notify: app.NotifyContext,
			}
			return m.Run(cmd.Context())
		},
	}
}

// Menu is the interactive loop. Errors from actions are reported and the
// loop continues; only end of input or the exit choice stop it.
type Menu struct {
	app    *app.App
	in     *bufio.Scanner
	out    io.Writer
	notify func(context.Context) (context.Context, context.CancelFunc)
}

// Run shows the menu until the user exits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	rule := strings.Repeat("=", ruleWidth)
	for {
		m.printf("\n%s\nWelcome to the Vowel Recognition Training Program\n%s\n", rule, rule)
		m.printOptions()
		m.app.PrintSummary()

		line, ok := m.prompt("\nEnter your choice: ")
		if !ok {
			m.printf("\nGoodbye!\n")
			return nil
		}

		choice, err := strconv.Atoi(line)
		if err != nil {
			m.printf("Please enter a valid number!\n")
			continue
		}
		if choice < 1 || choice > choiceExit {
			m.printf("Please specify a valid index (1-%d)! Try again.\n", choiceExit)
			continue
		}
		if choice == choiceExit {
			m.printf("Goodbye!\n")
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}
		m.dispatch(ctx, choice)
	}
}

func (m *Menu) printOptions() {
	m.printf("TRAINING OPTIONS:\n")
	for i, label := range vowel.Labels() {
		m.printf("%d. Train for vowel: %s\n", i+1, label)
	}
	m.printf("\nRECOGNITION & TESTING:\n")
	m.printf("6. Run the vowel Recognition module\n")
	m.printf("7. Test basic formant detection\n")
	m.printf("8. Test model accuracy\n")
	m.printf("9. Show available audio devices\n")
	m.printf("10. Select audio input device\n")
	m.printf("\nDATA MANAGEMENT:\n")
	m.printf("11. Clear training data for specific vowel\n")
	m.printf("12. Clear ALL training data\n")
	m.printf("13. Save training data to file\n")
	m.printf("14. Load training data from file\n")
	m.printf("15. List saved training data files\n")
	m.printf("\n%d. Exit\n", choiceExit)
}

// dispatch runs one action. Failures were already reported to the user by
// the App, so their errors are dropped here.
func (m *Menu) dispatch(ctx context.Context, choice int) {
	switch {
	case choice >= 1 && choice <= 5:
		m.runInterruptible(ctx, func(ctx context.Context) {
			_, _ = m.app.Train(ctx, vowel.Labels()[choice-1])
		})
	case choice == 6:
		m.runInterruptible(ctx, func(ctx context.Context) {
			_, _ = m.app.Recognize(ctx)
		})
	case choice == 7:
		m.runInterruptible(ctx, func(ctx context.Context) {
			_, _ = m.app.Monitor(ctx)
		})
	case choice == 8:
		_, _ = m.app.Evaluate(evaluation.FormatText)
	case choice == 9:
		_, _ = m.app.Devices()
		m.printf("Use option 10 to change the audio device\n")
	case choice == 10:
		m.selectDevice()
	case choice == 11:
		m.clearVowel()
	case choice == 12:
		answer, _ := m.prompt("Are you sure you want to clear ALL training data? (yes/no): ")
		if a := strings.ToLower(answer); a == "yes" || a == "y" {
			m.app.ClearAll()
		} else {
			m.printf("Cancelled.\n")
		}
	case choice == 13:
		name, _ := m.prompt("Enter filename (or press Enter for default): ")
		_, _ = m.app.Save(name)
	case choice == 14:
		name, _ := m.prompt("Enter filename (or press Enter for default): ")
		_, _ = m.app.Load(name)
	case choice == 15:
		_, _ = m.app.ListFiles()
	}
}

// runInterruptible gives fn a context that an interrupt cancels without
// ending the menu.
func (m *Menu) runInterruptible(parent context.Context, fn func(context.Context)) {
	ctx, stop := m.notify(parent)
	defer stop()
	fn(ctx)
}

func (m *Menu) selectDevice() {
	if _, err := m.app.Devices(); err != nil {
		return
	}
	for {
		line, ok := m.prompt("\nEnter device number (or press Enter to cancel): ")
		if !ok || line == "" {
			m.printf("Device selection cancelled.\n")
			return
		}
		index, err := strconv.Atoi(line)
		if err != nil {
			m.printf("Please enter a valid number!\n")
			continue
		}
		if err := m.app.SelectDevice(index); err == nil {
			return
		}
	}
}

func (m *Menu) clearVowel() {
	m.printf("\nClear training data for:\n")
	m.printf("1. A  2. E  3. I  4. O  5. U\n")
	line, _ := m.prompt("Which vowel? ")
	choice, err := strconv.Atoi(line)
	if err != nil {
		m.printf("Please enter a valid number!\n")
		return
	}
	if choice < 1 || choice > len(vowel.Labels()) {
		m.printf("Invalid choice!\n")
		return
	}
	m.app.Clear(vowel.Labels()[choice-1])
}

// prompt prints label and reads one trimmed line. ok is false at end of input.
func (m *Menu) prompt(label string) (string, bool) {
	m.printf("%s", label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(m.out, format, args...)
}
