package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/scoreboard"
)

var (
	flagScoresLimit int
	flagScoresTable bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded scores",
	Long: `Display the best recorded scores and the number of rounds played.

Lines in the score log that carry the "Score: " label but no integer are
skipped and reported.

Examples:
  snake scores
  snake scores --limit 20
  snake scores --table
  snake scores --scores ./score.txt`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresTable, "table", false, "Browse scores in an interactive table")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	board, closeBoard, err := openBoard(cfg.Scores)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores: %v\n", err)
		os.Exit(1)
	}
	defer closeBoard()

	if flagScoresTable {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(board, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	if err := printScores(os.Stdout, board, flagScoresLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
	}
}

// printScores writes the best records, the highest score and the number of
// recorded rounds to w. Malformed-record warnings go to stderr.
func printScores(w io.Writer, board scoreboard.Board, limit int) error {
	records, err := board.Records(limit)
	var malformed *scoreboard.MalformedError
	if errors.As(err, &malformed) {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", malformed)
	} else if err != nil {
		return err
	}

	fmt.Fprintln(w, "High Scores - Snake")
	fmt.Fprintln(w)

	if len(records) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'snake play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, r := range records {
		date := "-"
		if !r.CreatedAt.IsZero() {
			date = r.CreatedAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "  %-4d  %-10d  %s\n", i+1, r.Score, date)
	}

	fmt.Fprintln(w)
	if best, err := board.HighestScore(); err == nil || errors.Is(err, scoreboard.ErrMalformedRecord) {
		fmt.Fprintf(w, "Best: %d\n", best)
	}
	if n, err := board.Count(); err == nil || errors.Is(err, scoreboard.ErrMalformedRecord) {
		fmt.Fprintf(w, "Rounds played: %d\n", n)
	}
	return nil
}
