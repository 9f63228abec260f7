package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/skyclimb/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 3)
	s.DrawText(0, 0, "ab")
	s.DrawTextColored(2, 0, "cd", core.ColorGreen)
	s.DrawTextColored(0, 2, "xyz", core.ColorBrightWhite)

	out := RenderScreen(s)

	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("newlines = %d, want 2", got)
	}
	for _, want := range []string{"ab", "cd", "xyz"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(250)).Render("x"); got != "x" {
		t.Errorf("unknown colour rendered as %q, want plain text", got)
	}
}

func TestTickInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / 60},
		{-5, time.Second / 60},
	}
	for _, tt := range tests {
		if got := tickInterval(tt.rate); got != tt.want {
			t.Errorf("tickInterval(%d) = %v, want %v", tt.rate, got, tt.want)
		}
	}
}
