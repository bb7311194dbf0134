package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/block-runner/internal/platform/tui"
	"github.com/vovakirdan/block-runner/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresTUI    bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the best runs (or the most recent ones) and the all-time
high score.

Examples:
  runner scores
  runner scores --recent --limit 20
  runner scores --tui`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the most recent runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
}

func runScores(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr, "runner")

	if flagDBPath == "" {
		fmt.Fprintln(os.Stderr, "Error: scores need a database, --db is empty")
		os.Exit(1)
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			logger.Error("scoreboard failed", "error", err)
		}
		return
	}

	var runs []storage.RunRecord
	title := "Best Runs"
	if flagScoresRecent {
		title = "Recent Runs"
		runs, err = store.RecentRuns(flagScoresLimit)
	} else {
		runs, err = store.TopRuns(flagScoresLimit)
	}
	if err != nil {
		logger.Error("could not read runs", "error", err)
		return
	}

	fmt.Printf("Block Runner - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "Rank", "Score", "Time", "When")
	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "----", "-----", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8s  %-8s  %s\n",
			i+1, humanize.Comma(int64(r.Score)), r.Duration.Round(100*time.Millisecond).String(), humanize.Time(r.CreatedAt))
	}

	stats, err := store.Stats()
	if err != nil {
		logger.Warn("could not read stats", "error", err)
		return
	}
	fmt.Println()
	fmt.Printf("Best: %s  (%s runs, average %.1f)\n",
		humanize.Comma(int64(stats.HighScore)), humanize.Comma(int64(stats.Runs)), stats.AvgScore)
}
