// snake is a terminal snake game with typed food and a persistent scoreboard.
//
// Usage:
//
//	snake play       - Play in this terminal
//	snake scores     - Show recorded scores
//	snake serve      - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Config YAML (default: ~/.snake/config.yaml, ./configs/snake.yaml, built-in)
//	--fps <rate>     - Frames per second (default: from config)
//	--seed <value>   - Set RNG seed for reproducible food placement
//	--scores <path>  - Override the score file or database path
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagFPS        int
	flagSeed       int64
	flagScoresPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic arcade game in your terminal",
	Long: `Snake is a terminal arcade game. Steer the snake into food to grow and
score, and keep clear of the walls and your own tail.

Food kinds:
  white  - +1 point, grow by one
  red    - -1 point
  orange - shrink by one
  blue   - +2 points, grow by one

Available commands:
  play    - Play in this terminal
  scores  - View recorded scores
  serve   - Start SSH server for remote play

Examples:
  snake play
  snake play --difficulty hard
  snake scores
  snake serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frames per second (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagScoresPath, "scores", "", "Score log or database path (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
