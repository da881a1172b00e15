package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-notes/internal/core/domain"
)

var (
	noteTitle     string
	noteType      string
	noteTags      []string
	noteListJSON  bool
	noteShowJSON  bool
	importExclude []string
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage stored notes",
	Long:  `Add, list, show, remove and import notes. Facts are extracted on every save.`,
}

var noteAddCmd = &cobra.Command{
	Use:   "add [text]",
	Short: "Add a note",
	Long: `Adds a note from the given text, or from stdin when no text is given.
Use --type audio|photo|video for transcribed voice memos or OCR'd photos.`,
	RunE: runNoteAdd,
}

var noteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes, newest first",
	Args:  cobra.NoArgs,
	RunE:  runNoteList,
}

var noteShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a note and its facts",
	Args:  cobra.ExactArgs(1),
	RunE:  runNoteShow,
}

var noteRmCmd = &cobra.Command{
	Use:     "rm [id]",
	Aliases: []string{"remove"},
	Short:   "Remove a note",
	Args:    cobra.ExactArgs(1),
	RunE:    runNoteRm,
}

var noteImportCmd = &cobra.Command{
	Use:   "import [dir]",
	Short: "Import .txt and .md files from a directory",
	Long: `Imports every .txt and .md file below the directory as a note. Hidden
files are skipped, as are paths matching an --exclude glob (relative to
the directory, ** matches any depth). Markdown front matter may set the
title, type, tags and date. Re-importing updates notes in place, since
note IDs are derived from the file path.`,
	Args: cobra.ExactArgs(1),
	RunE: runNoteImport,
}

func init() {
	noteAddCmd.Flags().StringVarP(&noteTitle, "title", "t", "", "note title")
	noteAddCmd.Flags().StringVar(&noteType, "type", string(domain.NoteTypeText), "note type (text, audio, photo, video)")
	noteAddCmd.Flags().StringSliceVar(&noteTags, "tag", nil, "tag to attach (repeatable)")
	noteListCmd.Flags().BoolVar(&noteListJSON, "json", false, "output notes as JSON")
	noteShowCmd.Flags().BoolVar(&noteShowJSON, "json", false, "output the note as JSON")
	noteImportCmd.Flags().StringSliceVar(&importExclude, "exclude", nil, "glob of paths to skip (repeatable)")

	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteListCmd)
	noteCmd.AddCommand(noteShowCmd)
	noteCmd.AddCommand(noteRmCmd)
	noteCmd.AddCommand(noteImportCmd)
	rootCmd.AddCommand(noteCmd)
}

func runNoteAdd(cmd *cobra.Command, args []string) error {
	svc, err := getServices()
	if err != nil {
		return err
	}

	text, err := readText(cmd, args)
	if err != nil {
		return err
	}

	saved, err := svc.Notes.Save(cmd.Context(), domain.Note{
		Type:  domain.NoteType(noteType),
		Title: noteTitle,
		Text:  strings.TrimSpace(text),
		Tags:  noteTags,
	})
	if err != nil {
		return fmt.Errorf("failed to save note: %w", err)
	}

	cmd.Printf("Saved note %s (%d facts)\n", saved.ID, len(saved.Facts()))
	return nil
}

func runNoteList(cmd *cobra.Command, _ []string) error {
	svc, err := getServices()
	if err != nil {
		return err
	}

	notes, err := svc.Notes.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list notes: %w", err)
	}

	if noteListJSON {
		if notes == nil {
			notes = []domain.Note{}
		}
		return printJSON(cmd, notes)
	}

	if len(notes) == 0 {
		cmd.Println("No notes yet. Add one with: sercha-notes note add \"...\"")
		return nil
	}

	for i := range notes {
		n := &notes[i]
		cmd.Printf("  %s  %s  %-5s  %d facts  %s\n",
			n.ID, n.CreatedAt.Local().Format("2006-01-02"), n.Type, len(n.Facts()), displayTitle(n))
	}
	return nil
}

func runNoteShow(cmd *cobra.Command, args []string) error {
	svc, err := getServices()
	if err != nil {
		return err
	}

	note, err := svc.Notes.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get note: %w", err)
	}

	if noteShowJSON {
		return printJSON(cmd, note)
	}

	cmd.Printf("ID:      %s\n", note.ID)
	cmd.Printf("Title:   %s\n", note.Title)
	cmd.Printf("Type:    %s\n", note.Type)
	cmd.Printf("Created: %s\n", note.CreatedAt.Local().Format("2006-01-02 15:04"))
	if len(note.Tags) > 0 {
		cmd.Printf("Tags:    %s\n", strings.Join(note.Tags, ", "))
	}
	cmd.Println()
	cmd.Println(note.Text)
	cmd.Println()
	cmd.Println("Facts:")
	printFacts(cmd, note.Facts())
	return nil
}

func runNoteRm(cmd *cobra.Command, args []string) error {
	svc, err := getServices()
	if err != nil {
		return err
	}

	if err := svc.Notes.Remove(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to remove note: %w", err)
	}
	cmd.Printf("Removed note %s\n", args[0])
	return nil
}

func runNoteImport(cmd *cobra.Command, args []string) error {
	svc, err := getServices()
	if err != nil {
		return err
	}

	watcher, release := svc.Watcher(args[0], importExclude)
	defer release() //nolint:errcheck // nothing useful to do on close failure

	count, err := watcher.Sync(cmd.Context())
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	cmd.Printf("Imported %d notes from %s\n", count, args[0])
	return nil
}

// displayTitle returns the title, or the start of the text.
func displayTitle(n *domain.Note) string {
	if n.Title != "" {
		return n.Title
	}
	text := strings.Join(strings.Fields(n.Text), " ")
	if r := []rune(text); len(r) > 40 {
		return string(r[:37]) + "..."
	}
	return text
}
