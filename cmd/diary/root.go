package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tmluong/workout-diary/internal/domain"
)

var rootCmd = &cobra.Command{
	Use:   "diary",
	Short: "Browse a workout diary",
	Long: `diary manages an in-memory workout diary of entries grouped by author.

The root command seeds the sample diary and prints every entry, newest
first. Use the export subcommand to get the same data as CSV or JSON.`,
	RunE: runShow,
	// Errors are logged once in main; suppress cobra's own reporting.
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runShow(cmd *cobra.Command, _ []string) error {
	authors, diary, err := seed()
	if err != nil {
		return err
	}

	entries := diary.SortedEntries()
	slog.Debug("diary seeded", "authors", authors.Count(), "entries", len(entries))

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "-WorkoutDiary-")
	for _, e := range entries {
		printEntry(w, e)
		fmt.Fprintln(w, "**********")
	}
	return nil
}

// printEntry writes one diary entry in the block format of the original
// console application.
func printEntry(w io.Writer, e *domain.Entry) {
	fmt.Fprintln(w, "Author:", e.Author())
	fmt.Fprintln(w, "Title:", e.EntryTitle())
	fmt.Fprintln(w, "Activity:", e.ActivityType())
	fmt.Fprintln(w, "Duration:", e.DurationMinutes(), "minutes")
	fmt.Fprintln(w, "Intensity:", e.IntensityLevel())
	fmt.Fprintln(w, "Diary Text:", e.DiaryText())
	fmt.Fprintln(w, "Created at:", e.CreatedAt().Format("2006-01-02 15:04:05"))
}
