package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change scoring weights, answer locale, enabled extraction
rules and the storage backend. Settings live in config.toml inside the
configuration directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Validates and stores a single setting. List values are comma-separated.

Examples:
  sercha-notes settings set assistant.locale sr
  sercha-notes settings set extraction.rules oil_change,registration,topic
  sercha-notes settings set rules.topic.garden basta,zalivanje`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List supported setting keys",
	Args:  cobra.NoArgs,
	RunE:  runSettingsKeys,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	svc, err := getServices()
	if err != nil {
		return err
	}

	settings, err := svc.Settings.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Scoring]")
	cmd.Printf("  Title exact: %g\n", settings.Scoring.TitleExact)
	cmd.Printf("  Text exact:  %g\n", settings.Scoring.TextExact)
	cmd.Printf("  Keyword:     %g\n", settings.Scoring.Keyword)
	cmd.Printf("  Fact:        %g\n", settings.Scoring.Fact)
	cmd.Println()

	cmd.Println("[Assistant]")
	cmd.Printf("  Locale: %s\n", settings.Assistant.Locale.Description())
	if settings.Assistant.MaxMatches > 0 {
		cmd.Printf("  Max matches: %d\n", settings.Assistant.MaxMatches)
	} else {
		cmd.Println("  Max matches: unlimited")
	}
	if settings.Assistant.NoMatch != "" {
		cmd.Printf("  No-match answer: %s\n", settings.Assistant.NoMatch)
	}
	cmd.Println()

	cmd.Println("[Extraction]")
	cmd.Printf("  Rules: %s\n", strings.Join(settings.Extraction.Rules, ", "))
	names := make([]string, 0, len(settings.Extraction.RuleConfig))
	for name := range settings.Extraction.RuleConfig {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		opts := settings.Extraction.RuleConfig[name]
		keys := make([]string, 0, len(opts))
		for k := range opts {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			cmd.Printf("  %s.%s: %v\n", name, k, opts[k])
		}
	}
	cmd.Println()

	cmd.Println("[Storage]")
	cmd.Printf("  Backend: %s\n", settings.Storage.Backend)
	if settings.Storage.DataDir != "" {
		cmd.Printf("  Data dir: %s\n", settings.Storage.DataDir)
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	svc, err := getServices()
	if err != nil {
		return err
	}

	if err := svc.Settings.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}
	cmd.Printf("Set %s = %s\n", args[0], args[1])
	return nil
}

func runSettingsKeys(cmd *cobra.Command, _ []string) error {
	svc, err := getServices()
	if err != nil {
		return err
	}

	for _, key := range svc.Settings.Keys() {
		cmd.Println(key)
	}
	return nil
}
