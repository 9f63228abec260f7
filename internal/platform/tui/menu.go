package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skyclimb/internal/core"
	"github.com/vovakirdan/skyclimb/internal/registry"
)

// MenuItem represents a selectable game in the menu.
type MenuItem struct {
	GameID       string
	Title        string
	Difficulties []string // empty if the game has no presets
}

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	items          []MenuItem
	difficulty     []int // selected preset index per item
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a game
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))

	for _, g := range games {
		item := MenuItem{GameID: g.ID, Title: g.Title}
		if game, err := registry.Create(g.ID); err == nil {
			if t, ok := game.(registry.Tunable); ok {
				item.Difficulties = t.Difficulties()
			}
		}
		items = append(items, item)
	}

	return MenuModel{
		items:      items,
		difficulty: make([]int, len(items)),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.cycleDifficulty(-1)

	case MenuActionRight:
		m.cycleDifficulty(1)

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

func (m *MenuModel) cycleDifficulty(delta int) {
	if len(m.items) == 0 {
		return
	}
	n := len(m.items[m.cursor].Difficulties)
	if n == 0 {
		return
	}
	m.difficulty[m.cursor] = (m.difficulty[m.cursor] + delta + n) % n
}

// difficultyOf returns the selected preset for item i, or "".
func (m MenuModel) difficultyOf(i int) string {
	d := m.items[i].Difficulties
	if len(d) == 0 {
		return ""
	}
	return d[m.difficulty[i]]
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("  S K Y   C L I M B  ", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Climb the platforms, reach the finish line", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		line := cursor + item.Title
		if d := m.difficultyOf(i); d != "" {
			line = fmt.Sprintf("%s   < %s >", line, strings.ToUpper(d[:1])+d[1:])
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// Result summarizes how the menu was left.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{Config: m.config}
	switch {
	case m.openScoreboard:
		result.WantsScoreboard = true
		if len(m.items) > 0 {
			result.GameID = m.items[m.cursor].GameID
		}
	case m.selected != nil:
		result.GameID = m.selected.GameID
		result.Difficulty = m.difficultyOf(m.cursor)
	default:
		result.Quit = true
	}
	return result
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Difficulty      string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// NewGame creates a registered game and applies a difficulty preset if
// the game supports one.
func NewGame(id, difficulty string) (registry.Game, error) {
	game, err := registry.Create(id)
	if err != nil {
		return nil, err
	}
	if t, ok := game.(registry.Tunable); ok && difficulty != "" {
		t.SetDifficulty(difficulty)
	}
	return game, nil
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
