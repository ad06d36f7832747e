package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/loop"
	"github.com/vovakirdan/tui-snake/internal/scoreboard"
)

// Options configures the game screen.
type Options struct {
	FPS          int
	TickInterval time.Duration
	Width        int // Initial terminal size, updated on resize
	Height       int
}

// HighScoreReader is the scoreboard query shown under the board.
type HighScoreReader interface {
	HighestScore() (int, error)
}

// Model is the Bubble Tea model for one game of snake.
type Model struct {
	game     *game.Game
	loop     *loop.Loop
	scores   HighScoreReader
	screen   *core.Screen
	opts     Options
	input    core.InputFrame
	keys     KeyMap
	help     help.Model
	palette  Palette
	renderer *lipgloss.Renderer
	logger   *log.Logger

	highScore int
	// scoreWarning is the last scoreboard problem logged, so a bad line is
	// reported once rather than after every round.
	scoreWarning string
	quitting     bool
}

// NewModel creates a new Bubble Tea model for g. scores may be nil.
func NewModel(g *game.Game, scores HighScoreReader, opts Options, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		def := core.DefaultConfig()
		opts.Width, opts.Height = def.ScreenW, def.ScreenH
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		game:     g,
		loop:     loop.New(g, opts.TickInterval),
		scores:   scores,
		screen:   core.NewScreen(opts.Width, opts.Height),
		opts:     opts,
		input:    core.NewInputFrame(),
		keys:     DefaultKeyMap(),
		help:     h,
		palette:  defaultPalette,
		renderer: lipgloss.DefaultRenderer(),
		logger:   logger,
	}
	m.refreshHighScore()
	return m
}

// WithRenderer returns a copy of m that styles output for r.
func (m Model) WithRenderer(r *lipgloss.Renderer) Model {
	m.renderer = r
	m.palette = NewPalette(r)
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.opts.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Width, m.opts.Height = msg.Width, msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionStart:
		if m.game.Phase() == game.PhaseAwaitingStart {
			m.loop.Start(time.Now())
			m.logger.Info("game started")
		}
	case core.ActionNone:
	default:
		m.input.Set(action)
	}
	return m, nil
}

// handleFrame runs one loop frame. The simulation pauses while the
// rules are shown or the terminal is too small for the board.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if m.game.Phase() == game.PhaseRunning && !m.tooSmall() {
		res, _ := m.loop.Frame(now, m.input)
		if res.GameOver {
			m.refreshHighScore()
		}
	}
	m.input.Clear()
	return m, frameCmd(m.opts.FPS)
}

func (m Model) tooSmall() bool {
	w, h := game.RequiredSize(m.game.Grid().Size)
	return m.opts.Width < w || m.opts.Height < h
}

// refreshHighScore rereads the scoreboard. Malformed lines still yield the
// best valid score.
func (m *Model) refreshHighScore() {
	if m.scores == nil {
		return
	}

	best, err := m.scores.HighestScore()
	m.highScore = best
	if err == nil {
		m.scoreWarning = ""
		return
	}

	if msg := err.Error(); msg != m.scoreWarning {
		m.scoreWarning = msg
		if errors.Is(err, scoreboard.ErrMalformedRecord) {
			m.logger.Warn("scoreboard has malformed records", "error", err)
		} else {
			m.logger.Warn("could not read scoreboard", "error", err)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	path := filepath.Join(dir, fmt.Sprintf("snake_%s.txt", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// HighScore returns the last highest score read from the scoreboard.
func (m Model) HighScore() int {
	return m.highScore
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.game.Phase() == game.PhaseAwaitingStart {
		return m.rulesView()
	}

	m.game.Render(m.screen)
	var b strings.Builder
	b.WriteString(m.palette.Render(m.screen))
	if !m.tooSmall() {
		// The footer row reserved below the board.
		b.WriteString("\n")
		footer := m.renderer.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
		b.WriteString(footer.Render(fmt.Sprintf("Highest Score: %d", m.highScore)))
		b.WriteString("  ")
		b.WriteString(m.renderer.NewStyle().Foreground(lipgloss.Color("241")).Render(m.help.View(m.keys)))
	}
	return b.String()
}

// rules lists the rules screen lines with the color of the food each
// line describes.
var rules = []struct {
	text  string
	color string
}{
	{"1. Use the arrow keys (or WASD) to control the snake.", ""},
	{"2. Eat food to grow and increase your score.", ""},
	{"3. Avoid hitting the walls or your own tail.", ""},
	{"4. Red food takes a point away.", "1"},
	{"5. Orange food shortens the snake.", "208"},
	{"6. Blue food makes the snake grow and scores 2 points.", "12"},
	{"7. White food is normal and scores 1 point.", "15"},
	{"8. Press Y or Enter to start the game.", ""},
}

// rulesView renders the start screen.
func (m Model) rulesView() string {
	title := m.renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("10")).MarginBottom(1)

	lines := []string{title.Render("Welcome to Snake!"), "Rules:"}
	for _, r := range rules {
		style := m.renderer.NewStyle()
		if r.color != "" {
			style = style.Foreground(lipgloss.Color(r.color))
		}
		lines = append(lines, style.Render(r.text))
	}
	lines = append(lines, "", fmt.Sprintf("Highest Score: %d", m.highScore))

	box := m.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("2")).
		Padding(1, 3)
	return lipgloss.Place(m.opts.Width, m.opts.Height, lipgloss.Center, lipgloss.Center,
		box.Render(strings.Join(lines, "\n")))
}

// Run starts the Bubble Tea program with the given model.
func Run(m Model) error {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
