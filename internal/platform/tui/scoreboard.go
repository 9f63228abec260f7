package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skyclimb/internal/registry"
	"github.com/vovakirdan/skyclimb/internal/storage"
)

// historySize is how many runs the scoreboard loads.
const historySize = 100

// scoreboardChrome is the number of lines around the table: title,
// summary, borders, position and help.
const scoreboardChrome = 10

// ScoreboardKeyMap defines the key bindings for the run history.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PageDown, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Top, k.Bottom, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings. The scrolling keys
// match the table's own bindings so help stays truthful.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "f", " "),
			key.WithHelp("pgdn", "page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "best run"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last row"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the recorded runs of one game, best first.
type ScoreboardModel struct {
	gameID    string
	title     string
	store     *storage.Store
	runs      []storage.ScoreEntry
	best      int
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel loads the run history for gameID. store may be nil.
func NewScoreboardModel(store *storage.Store, gameID string, width, height int) ScoreboardModel {
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		gameID: gameID,
		title:  gameTitle(gameID),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.load()
	return m
}

// gameTitle looks up the display title, falling back to the ID.
func gameTitle(gameID string) string {
	for _, g := range registry.List() {
		if g.ID == gameID {
			return g.Title
		}
	}
	return gameID
}

func (m *ScoreboardModel) newTable() table.Model {
	dateWidth := 12
	if m.width >= 60 {
		dateWidth = 16
	}
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 9},
		{Title: "Level", Width: 6},
		{Title: "Date", Width: dateWidth},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-scoreboardChrome, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads runs, best score and stats. Read errors leave the view empty.
func (m *ScoreboardModel) load() {
	m.runs, m.best, m.stats = nil, 0, nil
	if m.store != nil && m.gameID != "" {
		if runs, err := m.store.TopScores(m.gameID, historySize); err == nil {
			m.runs = runs
		}
		m.best, _ = m.store.HighScore(m.gameID)
		m.stats, _ = m.store.GetGameStats(m.gameID)
	}
	m.table.SetRows(m.rows())
	m.table.GotoTop()
}

func (m ScoreboardModel) rows() []table.Row {
	dateFormat := "Jan 02 15:04"
	if m.width < 60 {
		dateFormat = "01-02 15:04"
	}

	rows := make([]table.Row, len(m.runs))
	for i, run := range m.runs {
		rank := fmt.Sprintf("#%d", i+1)
		if run.Score == m.best && i == 0 {
			rank += "*"
		}
		rows[i] = table.Row{
			rank,
			strconv.Itoa(run.Score),
			strconv.Itoa(run.Level),
			run.CreatedAt.Format(dateFormat),
		}
	}
	return rows
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		cursor := m.table.Cursor()
		m.table = m.newTable()
		m.table.SetRows(m.rows())
		m.table.SetCursor(cursor)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	var b strings.Builder

	title := "RUN HISTORY - " + m.title
	if m.best > 0 {
		title = fmt.Sprintf("%s (best %d)", title, m.best)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(centerText(m.summary(), m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.runs) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 3).
			Render("No runs recorded yet.\nReach a new height to set one!")
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boxStyle.Render(empty)))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boxStyle.Render(m.table.View())))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(centerText(m.position(), m.width)))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// summary is the aggregate line under the title.
func (m ScoreboardModel) summary() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return "No runs yet"
	}
	return fmt.Sprintf("Runs: %d  |  Avg: %.0f  |  Best level: %d  |  Last: %s",
		m.stats.GamesCount, m.stats.AvgScore, m.stats.BestLevel,
		m.stats.LastPlayed.Format("Jan 02"))
}

// position reports the highlighted row, e.g. "3/41".
func (m ScoreboardModel) position() string {
	return fmt.Sprintf("%d/%d", m.table.Cursor()+1, len(m.runs))
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the run history for gameID.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, gameID string, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, gameID, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
