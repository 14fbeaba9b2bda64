package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/meshintel/arxiv-harvest/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded fetch runs",
	Long: `History lists previous fetch runs recorded in the SQLite history database,
most recent first. Runs are only recorded when fetch is invoked with
--history-db (or history.db_path in the config file).`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().String("db", "", "path of the history database")
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to list")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	dbPath := stringSetting(cmd, "db", "history.db_path")
	if dbPath == "" {
		return fmt.Errorf("no history database configured (use --db or set history.db_path)")
	}
	if _, err := os.Stat(dbPath); err != nil {
		return fmt.Errorf("history database %s: %w", dbPath, err)
	}

	store, err := history.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	limit := intSetting(cmd, "limit", "history.max_results")
	runs, err := store.ListRuns(limit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Printf("%-4s  %-19s  %-40s  %-7s  %-5s  %-5s  %-9s  %s\n",
		"ID", "Started", "Query", "Fetched", "Meta", "PDFs", "Summaries", "Texts")
	for _, r := range runs {
		fmt.Printf("%-4d  %-19s  %-40s  %-7d  %-5d  %-5d  %-9d  %d\n",
			r.ID, r.StartedAt.Format("2006-01-02 15:04:05"),
			runewidth.Truncate(r.Query, 40, "..."),
			r.Fetched, r.MetadataLines, r.PDFs, r.Summaries, r.FullTexts)
	}
	return nil
}
