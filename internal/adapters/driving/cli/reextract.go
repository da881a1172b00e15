package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reextractCmd = &cobra.Command{
	Use:   "reextract",
	Short: "Re-run fact extraction over every stored note",
	Long: `Replaces the facts of every stored note with a fresh extraction. Run it
after enabling or configuring extraction rules.`,
	Args: cobra.NoArgs,
	RunE: runReextract,
}

func init() {
	rootCmd.AddCommand(reextractCmd)
}

func runReextract(cmd *cobra.Command, _ []string) error {
	svc, err := getServices()
	if err != nil {
		return err
	}

	count, err := svc.Notes.Reextract(cmd.Context())
	if err != nil {
		return fmt.Errorf("reextract failed: %w", err)
	}
	cmd.Printf("Re-extracted facts for %d notes\n", count)
	return nil
}
