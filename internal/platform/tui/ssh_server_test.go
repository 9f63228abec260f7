package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyclimb/internal/core"
	"github.com/vovakirdan/skyclimb/internal/registry"
)

var sessionGame = &fakeGame{}

func init() {
	registry.Register("fake", func() registry.Game { return sessionGame })
}

func send(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(SessionModel), cmd
}

func TestSessionModelFlow(t *testing.T) {
	m := NewSessionModel(nil, log.New(io.Discard), core.DefaultConfig())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.active != viewScores {
		t.Fatalf("tab should open the scoreboard, active=%v", m.active)
	}
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.active != viewMenu || m.quitting {
		t.Fatalf("esc should return to the menu, active=%v", m.active)
	}
	if cmd != nil {
		t.Error("returning to the menu should not quit the program")
	}

	m, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.active != viewGame || cmd == nil {
		t.Fatalf("enter should start the game and its tick loop, active=%v", m.active)
	}

	sessionGame.state = core.GameState{GameOver: true}
	m, _ = send(t, m, TickMsg{})
	m, _ = send(t, m, runeKey("b"))
	if m.active != viewMenu {
		t.Fatalf("b after game over should return to the menu, active=%v", m.active)
	}

	m, cmd = send(t, m, runeKey("q"))
	if !m.quitting || cmd == nil {
		t.Error("q in the menu should quit the session")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestMenuDifficultyCycle(t *testing.T) {
	m := MenuModel{
		items:      []MenuItem{{GameID: "x", Title: "X", Difficulties: []string{"normal", "easy", "hard"}}},
		difficulty: make([]int, 1),
		keyMapper:  NewKeyMapper(),
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(MenuModel)
	if got := m.difficultyOf(0); got != "hard" {
		t.Errorf("left from the first preset should wrap to hard, got %q", got)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	res := m.Result()
	if res.GameID != "x" || res.Difficulty != "hard" || res.Quit {
		t.Errorf("Result() = %+v", res)
	}
}
