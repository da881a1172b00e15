package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Keep notes in sync with a directory",
	Long: `Imports every .txt and .md file below the directory, then applies
file changes as they happen until interrupted. Point it at the output
directory of a transcription or OCR pipeline.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

var watchExclude []string

func init() {
	watchCmd.Flags().StringSliceVar(&watchExclude, "exclude", nil, "glob of paths to skip (repeatable)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	svc, err := getServices()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, release := svc.Watcher(args[0], watchExclude)
	defer release() //nolint:errcheck // nothing useful to do on close failure

	cmd.Printf("Watching %s (ctrl+c to stop)\n", args[0])
	if err := watcher.Run(ctx); err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}
	return nil
}
