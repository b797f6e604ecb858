package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/hang2323-brian/snake-game/internal/config"
	"github.com/hang2323-brian/snake-game/internal/core"
	"github.com/hang2323-brian/snake-game/internal/snake"
	"github.com/hang2323-brian/snake-game/internal/storage"
)

// Options configure a game Model.
type Options struct {
	Config  config.SnakeConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // nil disables score history
	Logger  *log.Logger
	Player  string

	// ScreenshotDir defaults to ~/.snake/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for one player's game.
type Model struct {
	cfg        config.SnakeConfig
	difficulty *config.DifficultyManager
	store      *storage.Store
	logger     *log.Logger
	player     string
	shotDir    string

	src  snake.Source
	game *snake.Game
	snap snake.Snapshot

	renderer *BoardRenderer
	keys     *KeyMapper
	help     help.Model
	input    core.InputFrame

	width, height int
	paused        bool
	tooSmall      bool
	quitting      bool

	runID      string
	scoreSaved bool
	best       int
	notice     string
	noticeLeft int // ticks until notice is cleared
}

// noticeTicks is how long a HUD notice stays up.
const noticeTicks = 30

// NewModel creates a model and starts the first run.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Config
	rt := opts.Runtime
	if rt.ScreenW == 0 && rt.ScreenH == 0 {
		rt = core.DefaultConfig()
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate > 0 {
		cfg.Speed.BaseFPS = rt.TickRate
		cfg.Speed.MaxFPS = max(cfg.Speed.MaxFPS, rt.TickRate)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		shotDir = filepath.Join(config.UserDir(), "screenshots")
	}

	h := help.New()
	h.Width = rt.ScreenW

	m := Model{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Speed),
		store:      opts.Store,
		logger:     logger,
		player:     opts.Player,
		shotDir:    shotDir,
		src:        snake.NewSource(rt.Seed),
		renderer:   NewBoardRenderer(rt.ScreenW, rt.ScreenH-helpRows),
		keys:       NewKeyMapper(),
		help:       h,
		input:      core.NewInputFrame(),
		width:      rt.ScreenW,
		height:     rt.ScreenH,
	}

	grid, err := m.targetGrid()
	if err != nil {
		return Model{}, err
	}
	if err := m.newGame(grid); err != nil {
		return Model{}, err
	}
	m.tooSmall = !m.fits()
	m.best = m.loadBest()

	logger.Info("game ready",
		"player", m.player,
		"grid", fmt.Sprintf("%dx%d", grid.Cols, grid.Rows),
		"difficulty", cfg.Difficulty,
		"seed", rt.Seed,
	)
	return m, nil
}

// targetGrid is the grid a new run should use.
// A terminal too small for any grid falls back to the minimum and shows the size guard.
func (m Model) targetGrid() (snake.Grid, error) {
	if !m.cfg.Board.FitTerminal {
		return snake.GridFromPixels(m.cfg.Board.Width, m.cfg.Board.Height, m.cfg.Board.CellSize)
	}
	grid, err := GridForTerminal(m.width, m.height)
	if err != nil {
		return snake.NewGrid(MinCols, MinRows)
	}
	return grid, nil
}

// newGame replaces the current game with a fresh one on grid.
func (m *Model) newGame(grid snake.Grid) error {
	game, err := snake.NewGame(grid, m.src,
		snake.WithLogger(m.logger),
		snake.WithMaxPlacementAttempts(m.cfg.Food.MaxAttempts),
	)
	if err != nil {
		return fmt.Errorf("tui: cannot start game: %w", err)
	}
	m.game = game
	m.snap = game.Snapshot()
	m.startRun()
	return nil
}

// startRun resets per-run host state.
func (m *Model) startRun() {
	m.runID = uuid.NewString()
	m.scoreSaved = false
	m.paused = false
	m.notice = ""
	m.noticeLeft = 0
}

// fits reports whether the terminal can show the current grid.
func (m Model) fits() bool {
	w, h := RequiredSize(m.snap.Grid)
	return m.width >= w && m.height >= h
}

func (m Model) loadBest() int {
	if m.store == nil {
		return 0
	}
	best, err := m.store.HighScore(string(m.cfg.Difficulty))
	if err != nil {
		m.logger.Warn("could not load high score", "error", err)
		return 0
	}
	return best
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate())
}

func (m Model) tickRate() int {
	return m.difficulty.TickRate(m.snap.Level)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys().Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	// Steering is dropped while the game is frozen.
	frame := &m.input
	if m.paused || m.tooSmall {
		frame = &core.InputFrame{}
	}

	action, isQuit := m.keys.MapKeyToFrame(msg, frame)
	if isQuit {
		m.quitting = true
		m.logger.Info("player quit", "player", m.player, "score", m.snap.Score)
		return m, tea.Quit
	}

	switch action {
	case core.ActionPause:
		if !m.snap.GameOver() {
			m.paused = !m.paused
		}
	case core.ActionRestart:
		if m.snap.GameOver() {
			m.input.Set(core.ActionRestart)
		}
	case core.ActionScreenshot:
		m.saveScreenshot()
	}

	return m, nil
}

// handleResize processes window resize events.
// A run that has not moved yet is rebuilt for the new size; a run in
// progress keeps its grid and waits behind the size guard if it no longer fits.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.renderer.Resize(msg.Width, msg.Height-helpRows)
	m.help.Width = msg.Width

	if m.cfg.Board.FitTerminal && m.snap.Tick == 0 && !m.snap.GameOver() {
		if grid, err := m.targetGrid(); err == nil && grid != m.snap.Grid {
			if err := m.newGame(grid); err != nil {
				m.logger.Error("resize failed", "error", err)
			}
		}
	}

	m.tooSmall = !m.fits()
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.snap.GameOver()

	if wasOver && m.input.Has(core.ActionRestart) && m.cfg.Board.FitTerminal {
		if grid, err := m.targetGrid(); err == nil && grid != m.snap.Grid {
			// The terminal changed since this grid was built; start on a fresh one.
			if err := m.newGame(grid); err != nil {
				m.logger.Error("restart failed", "error", err)
			}
			m.input.Clear()
			m.tooSmall = !m.fits()
			return m, tickCmd(m.tickRate())
		}
	}

	if m.paused || m.tooSmall {
		return m, tickCmd(m.tickRate())
	}

	m.snap = m.game.Step(m.input)
	m.input.Clear()

	if m.noticeLeft > 0 {
		m.noticeLeft--
		if m.noticeLeft == 0 {
			m.notice = ""
		}
	}

	if wasOver && !m.snap.GameOver() {
		m.startRun()
		m.logger.Debug("run restarted", "player", m.player, "run", m.runID)
	}

	if m.snap.GameOver() && !m.scoreSaved {
		m.finishRun()
	}

	return m, tickCmd(m.tickRate())
}

// finishRun records a finished run once.
func (m *Model) finishRun() {
	m.scoreSaved = true
	m.best = max(m.best, m.snap.Score)

	m.logger.Info("run finished",
		"player", m.player,
		"run", m.runID,
		"status", m.snap.Status,
		"score", m.snap.Score,
		"length", m.snap.Length,
	)

	if m.store == nil || m.snap.Score == 0 {
		return
	}
	_, err := m.store.SaveScore(storage.ScoreEntry{
		RunID:      m.runID,
		Player:     m.player,
		Difficulty: string(m.cfg.Difficulty),
		Score:      m.snap.Score,
		Level:      m.snap.Level,
		Length:     m.snap.Length,
	})
	if err != nil {
		m.logger.Error("could not save score", "run", m.runID, "error", err)
	}
}

// saveScreenshot writes the current board as plain text.
func (m *Model) saveScreenshot() {
	m.renderer.Render(m.snap, m.hud())

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot dir", "error", err)
		return
	}

	filename := fmt.Sprintf("snake_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(m.shotDir, filename)
	if err := os.WriteFile(path, []byte(m.renderer.Screen().String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	m.notice = "saved " + filename
	m.noticeLeft = noticeTicks
	m.logger.Info("screenshot saved", "path", path)
}

func (m Model) hud() HUD {
	return HUD{
		Best:       m.best,
		Speed:      m.difficulty.SpeedLabel(m.snap.Level),
		Difficulty: string(m.cfg.Difficulty),
		Paused:     m.paused,
		Notice:     m.notice,
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall {
		w, h := RequiredSize(m.snap.Grid)
		msg := fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d\nResize or press q to quit.",
			w, h, m.width, m.height)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Render(msg))
	}

	m.renderer.Render(m.snap, m.hud())
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.renderer.Screen()) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Snapshot returns the last game snapshot.
func (m Model) Snapshot() snake.Snapshot {
	return m.snap
}

// RunID returns the identifier of the current run.
func (m Model) RunID() string {
	return m.runID
}

// Paused reports whether the player paused the game.
func (m Model) Paused() bool {
	return m.paused
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
