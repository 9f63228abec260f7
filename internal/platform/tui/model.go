package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyclimb/internal/core"
	"github.com/vovakirdan/skyclimb/internal/registry"
	"github.com/vovakirdan/skyclimb/internal/storage"
)

// Model is the Bubble Tea model that drives one game at a fixed tick rate.
// It quits when the player leaves, either entirely or back to the menu;
// BackToMenu tells the two apart.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	hold       holdState
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the current run has been stored
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if p, ok := game.(registry.Persistent); ok && store != nil {
		p.SetHighScoreStore(store.HighScores(game.ID()))
	}
	if l, ok := game.(registry.Logged); ok {
		l.SetLogger(logger.With("game", game.ID()))
	}

	game.Reset(cfg)

	holdTicks := 1
	if c, ok := game.(registry.Controlled); ok {
		holdTicks = c.HoldTicks()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		hold:       newHoldState(holdTicks),
		gameState:  game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The renderer scales the world to the screen, so the run survives.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.recordRun()
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused || m.gameState.Won {
			m.recordRun()
			m.backToMenu = true
			return m, tea.Quit
		}
		return m, nil
	case action == core.ActionLeft, action == core.ActionRight:
		m.hold.press(action)
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.gameState.Paused || m.gameState.GameOver || m.gameState.Won {
		m.hold.release()
	}
	m.hold.apply(&m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save the run once per game over
	switch {
	case !m.gameState.GameOver:
		m.scoreSaved = false
	case !m.scoreSaved:
		m.recordRun()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordRun stores the current run unless it was already stored. A run
// ends at game over or when the player leaves mid-run.
func (m *Model) recordRun() {
	if m.scoreSaved {
		return
	}
	m.saveScore()
	m.scoreSaved = true
}

func (m Model) saveScore() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.Level); err != nil {
		m.logger.Warn("could not save score", "error", err)
		return
	}
	m.logger.Debug("run saved", "score", m.gameState.Score, "level", m.gameState.Level)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".skyclimb", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// GameState returns the state reported by the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
// Returns true if the player asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
