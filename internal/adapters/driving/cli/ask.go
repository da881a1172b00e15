package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-notes/internal/core/domain"
)

var (
	askLimit int
	askJSON  bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Answer a question from your notes",
	Long: `Ranks stored notes against the question and prints a short answer
followed by the matching notes and the reasons each one matched.

Matching ignores case and diacritics, so "sledeca" finds "sledeća".`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().IntVarP(&askLimit, "limit", "n", 5, "maximum number of matches to show (0 = all)")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the answer as JSON")
	rootCmd.AddCommand(askCmd)
}

// askOutput is the JSON shape of an answer.
type askOutput struct {
	Answer  string        `json:"answer"`
	Matches []matchOutput `json:"matches"`
}

type matchOutput struct {
	NoteID string   `json:"noteId"`
	Title  string   `json:"title"`
	Score  float64  `json:"score"`
	Why    []string `json:"why"`
}

func runAsk(cmd *cobra.Command, args []string) error {
	svc, err := getServices()
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	result, err := svc.Notes.Ask(cmd.Context(), query)
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	matches := result.Matches
	if askLimit > 0 && len(matches) > askLimit {
		matches = matches[:askLimit]
	}

	out := askOutput{Answer: result.Answer, Matches: make([]matchOutput, len(matches))}
	for i, m := range matches {
		out.Matches[i] = matchOutput{NoteID: m.NoteID, Score: m.Score, Why: m.Why}
		note, err := svc.Notes.Get(cmd.Context(), m.NoteID)
		switch {
		case err == nil:
			out.Matches[i].Title = note.Title
		case !errors.Is(err, domain.ErrNotFound):
			return fmt.Errorf("loading match: %w", err)
		}
	}

	if askJSON {
		return printJSON(cmd, out)
	}

	cmd.Println(out.Answer)
	if len(out.Matches) == 0 {
		return nil
	}
	cmd.Println()
	for i, m := range out.Matches {
		title := m.Title
		if title == "" {
			title = m.NoteID
		}
		cmd.Printf("  [%d] %s (%.1f)\n", i+1, title, m.Score)
		cmd.Printf("      %s\n", strings.Join(m.Why, ", "))
	}
	return nil
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
