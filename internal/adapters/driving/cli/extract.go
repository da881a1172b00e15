package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/sercha-notes/internal/core/domain"
)

var (
	extractJSON bool
	extractNow  string
)

var extractCmd = &cobra.Command{
	Use:   "extract [text]",
	Short: "Extract facts from text without storing it",
	Long: `Runs the fact extractor over the given text, or over stdin when no
text is given, and prints the facts found.

Relative dates ("sutra", "tomorrow") resolve against today, or against
--now for reproducible output.

Examples:
  sercha-notes extract "sledeca zamena ulja na 100000km"
  echo "registracija do 15.04.2024" | sercha-notes extract --json`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "output facts as JSON")
	extractCmd.Flags().StringVar(&extractNow, "now", "", "reference date for relative dates (YYYY-MM-DD)")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	svc, err := getServices()
	if err != nil {
		return err
	}

	text, err := readText(cmd, args)
	if err != nil {
		return err
	}

	assistant := svc.Assistant
	if extractNow != "" {
		now, err := time.Parse(domain.DateLayout, extractNow)
		if err != nil {
			return fmt.Errorf("%w: --now must be YYYY-MM-DD", domain.ErrInvalidInput)
		}
		assistant = svc.AssistantAt(now)
	}

	facts := assistant.ExtractFacts(text)
	if extractJSON {
		return printJSON(cmd, facts)
	}
	printFacts(cmd, facts)
	return nil
}

// readText joins args, or reads stdin when there are none and stdin is
// not a terminal.
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", errors.New("no text given: pass it as an argument or pipe it on stdin")
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func printFacts(cmd *cobra.Command, facts []domain.Fact) {
	if len(facts) == 0 {
		cmd.Println("No facts found.")
		return
	}

	for i := range facts {
		f := &facts[i]
		cmd.Printf("  [%d] %s/%s %s %s\n", i+1, f.Domain, f.Subject, f.Predicate, f.Object)
		if f.Trigger != nil {
			cmd.Printf("      trigger: %s  confidence: %.2f\n", f.Trigger, f.Confidence)
		} else {
			cmd.Printf("      confidence: %.2f\n", f.Confidence)
		}
		cmd.Printf("      from: %q\n", f.SourceSpan)
	}
}
