package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestScoreboardShowsRunHistory(t *testing.T) {
	store := openStore(t)
	for _, run := range []struct{ score, level int }{{120, 1}, {480, 3}, {300, 2}} {
		if _, err := store.SaveScore("fake", run.score, run.level); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, "fake", 80, 30)

	rows := m.table.Rows()
	if len(rows) != 3 {
		t.Fatalf("rows = %d, expected 3", len(rows))
	}
	if rows[0][0] != "#1*" || rows[0][1] != "480" || rows[0][2] != "3" {
		t.Errorf("best run row = %v, expected #1* 480 3", rows[0])
	}
	if rows[2][1] != "120" {
		t.Errorf("last row score = %s, expected 120", rows[2][1])
	}

	view := m.View()
	for _, want := range []string{"RUN HISTORY - Fake (best 480)", "Runs: 3", "Best level: 3", "1/3"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestScoreboardScrollAndLeave(t *testing.T) {
	store := openStore(t)
	for i := 1; i <= 5; i++ {
		store.SaveScore("fake", i*10, 1) //nolint:errcheck // test setup
	}
	m := NewScoreboardModel(store, "fake", 80, 30)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(ScoreboardModel)
	if m.table.Cursor() != 1 || m.position() != "2/5" {
		t.Errorf("down should move to the second run, cursor=%d", m.table.Cursor())
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 50, Height: 20})
	m = next.(ScoreboardModel)
	if m.table.Cursor() != 1 {
		t.Errorf("resize should keep the cursor, got %d", m.table.Cursor())
	}

	next, cmd := m.Update(runeKey("b"))
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || m.IsQuitting() || cmd == nil {
		t.Error("b should go back to the menu")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "fake", 80, 24)

	if len(m.table.Rows()) != 0 {
		t.Errorf("expected no rows, got %d", len(m.table.Rows()))
	}
	if !strings.Contains(m.View(), "No runs recorded yet.") {
		t.Error("empty history should say so")
	}

	next, cmd := m.Update(runeKey("q"))
	if !next.(ScoreboardModel).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}
