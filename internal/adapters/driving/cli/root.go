// Package cli provides the cobra command tree for sercha-notes.
package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-notes/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-notes/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Global flag values.
var (
	verbose   bool
	configDir string
)

// Services are the driving ports the commands call.
type Services struct {
	// Assistant extracts facts using the current time for relative dates.
	Assistant driving.AssistantService

	// AssistantAt returns an assistant that resolves relative dates
	// ("sutra", "tomorrow") against now.
	AssistantAt func(now time.Time) driving.AssistantService

	// Notes manages the note store.
	Notes driving.NoteService

	// Settings reads and writes configuration.
	Settings driving.SettingsService

	// Watcher mirrors a directory of note files into the store,
	// skipping paths that match an exclude glob. The returned function
	// releases the directory watch.
	Watcher func(dir string, exclude []string) (driving.WatchService, func() error)
}

// Options carries the global flags to the bootstrap.
type Options struct {
	ConfigDir string
	Verbose   bool
}

// Bootstrap builds the services once flags are parsed. The returned
// function releases them.
type Bootstrap func(opts Options) (*Services, func() error, error)

var (
	bootstrap Bootstrap
	active    *Services
	cleanup   func() error
)

var rootCmd = &cobra.Command{
	Use:   "sercha-notes",
	Short: "Ask questions about your notes",
	Long: `sercha-notes keeps your notes, extracts facts from them (due dates,
service intervals, odometer readings, topics) and answers questions
such as "kada je registracija?" or "when is the next oil change?".

Notes can be typed, or come from a directory of transcribed voice memos
and OCR'd photos that is imported or watched.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "",
		"configuration directory (default ~/.sercha-notes)")
}

// SetBootstrap installs the function that builds the services.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the command tree and releases any services it started.
func Execute(ctx context.Context) error {
	defer closeServices()
	return rootCmd.ExecuteContext(ctx)
}

// getServices builds the services on first use so commands such as
// version never open the store.
func getServices() (*Services, error) {
	if active != nil {
		return active, nil
	}
	if bootstrap == nil {
		return nil, errors.New("services not configured")
	}

	s, closeFn, err := bootstrap(Options{ConfigDir: configDir, Verbose: verbose})
	if err != nil {
		return nil, fmt.Errorf("starting: %w", err)
	}
	active, cleanup = s, closeFn
	return active, nil
}

func closeServices() {
	if cleanup != nil {
		if err := cleanup(); err != nil {
			logger.Warn("closing services: %v", err)
		}
	}
	active, cleanup = nil, nil
}
