package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start a game of snake.

Controls:
  Arrows/WASD  - Steer (also resumes after a game over)
  Y/Enter      - Leave the rules screen
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 250ms per step
  normal - 200ms per step
  hard   - 120ms per step
  fixed  - Keep the config's tick_interval

Examples:
  snake play
  snake play --difficulty hard
  snake play --seed 42 --scores ./score.txt
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Speed preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	preset, err := config.ParseSpeedPreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.ApplySpeedPreset(&cfg, preset)

	if err := play(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// play acquires the log file, the scoreboard and the speaker, runs the
// game, and releases them in reverse order.
func play(cfg config.Config) error {
	logger, logFile, err := newFileLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (logging disabled)\n", err)
		logger = log.New(io.Discard)
	} else {
		defer logFile.Close()
	}

	board, closeBoard, err := openBoard(cfg.Scores)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores: %v\n", err)
		// Continue without a scoreboard - the game still works
		logger.Warn("could not open scores", "backend", cfg.Scores.Backend, "path", cfg.Scores.Path, "error", err)
	}
	defer func() {
		if err := closeBoard(); err != nil {
			logger.Warn("could not close scores", "error", err)
		}
	}()

	player, err := audio.New(audio.Config{Enabled: cfg.Audio.Enabled, Volume: cfg.Audio.Volume}, logger)
	if err != nil {
		// Non-fatal, the game runs without sound
		logger.Warn("audio disabled", "error", err)
	}
	defer player.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	var saver game.ScoreSaver
	var scores tui.HighScoreReader
	if board != nil {
		saver, scores = board, board
	}

	s := seed()
	logger.Info("starting", "seed", s, "grid", cfg.Grid.Size, "interval", cfg.Timing.TickInterval, "scores", cfg.Scores.Path)
	g := game.New(cfg.GameConfig(), s, saver, player, logger)

	return tui.Run(tui.NewModel(g, scores, tui.Options{
		FPS:          cfg.Timing.FPS,
		TickInterval: cfg.Timing.TickInterval,
		Width:        width,
		Height:       height,
	}, logger))
}
