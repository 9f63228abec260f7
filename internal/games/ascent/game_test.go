package ascent

import (
	"strings"
	"testing"

	"github.com/vovakirdan/skyclimb/internal/config"
	"github.com/vovakirdan/skyclimb/internal/core"
	"github.com/vovakirdan/skyclimb/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func newTestGame(seed int64) *Game {
	g := NewWithConfig(config.DefaultAscentConfig())
	g.Reset(testRuntime(seed))
	return g
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatalf("game %q should be registered", GameID)
	}
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if _, ok := g.(registry.Persistent); !ok {
		t.Error("game should accept a high score store")
	}
	if _, ok := g.(registry.Logged); !ok {
		t.Error("game should accept a logger")
	}
	if _, ok := g.(registry.Tunable); !ok {
		t.Error("game should offer difficulty presets")
	}
	if c, ok := g.(registry.Controlled); !ok || c.HoldTicks() != 8 {
		t.Error("game should report the default hold window")
	}
}

func TestGameStepLifecycle(t *testing.T) {
	g := newTestGame(1)
	s := g.Session()

	g.Step(frame())
	if s.State() != StateMenu || s.Ticks() != 0 {
		t.Fatalf("idle input should stay in the menu, state=%v", s.State())
	}

	g.Step(frame(core.ActionConfirm))
	if s.State() != StatePlaying {
		t.Fatalf("confirm should start the game, state=%v", s.State())
	}

	g.Step(frame())
	if s.Ticks() != 1 {
		t.Errorf("Ticks() = %d, expected 1", s.Ticks())
	}

	res := g.Step(frame(core.ActionPause))
	if !res.State.Paused {
		t.Error("pause action should pause")
	}
	g.Step(frame(core.ActionPause))
	if s.State() != StatePlaying {
		t.Errorf("second pause should resume, state=%v", s.State())
	}

	g.Step(frame(core.ActionDebug))
	if !s.Debug() {
		t.Error("debug action should toggle trajectory predictions")
	}
}

func TestGameStepMapsIntents(t *testing.T) {
	g := newTestGame(1)
	g.Step(frame(core.ActionConfirm))

	x := g.Session().Body().X
	g.Step(frame(core.ActionLeft))
	if g.Session().Body().X >= x {
		t.Errorf("left should move the body, x went from %v to %v", x, g.Session().Body().X)
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := newTestGame(2)
	g.Step(frame(core.ActionConfirm))
	clearField(g.Session())

	var st core.GameState
	for i := 0; i < 200 && !st.GameOver; i++ {
		st = g.Step(frame()).State
	}
	if !st.GameOver {
		t.Fatal("falling body should end the game")
	}

	st = g.Step(frame(core.ActionRestart)).State
	if st.GameOver || st.Score != 0 || st.Level != 1 {
		t.Errorf("restart should begin a fresh run, got %+v", st)
	}
}

func TestGameWinAndConfirm(t *testing.T) {
	g := newTestGame(3)
	g.Step(frame(core.ActionConfirm))
	placeAboveFinish(g.Session())

	st := g.Step(frame()).State
	if !st.Won {
		t.Fatalf("expected a win, got %+v", st)
	}

	st = g.Step(frame(core.ActionRestart)).State
	if !st.Won || st.Level != 1 {
		t.Errorf("restart should be ignored on the win screen, got %+v", st)
	}

	st = g.Step(frame(core.ActionConfirm)).State
	if st.Won || st.Level != 2 {
		t.Errorf("confirm should start level 2, got %+v", st)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(4)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "SKY CLIMB") {
		t.Error("menu overlay should be drawn before start")
	}
	if !strings.Contains(out, "Score: 0") {
		t.Error("HUD should show the score")
	}

	g.Step(frame(core.ActionConfirm))
	for i := 0; i < 5; i++ {
		g.Step(frame())
	}
	g.Render(screen)
	out = screen.String()
	if strings.Contains(out, "SKY CLIMB") {
		t.Error("menu overlay should be gone once playing")
	}
	if !strings.ContainsRune(out, BodyChar) {
		t.Error("body should be visible")
	}
	if !strings.ContainsRune(out, StandardChar) {
		t.Error("spawn platform should be visible")
	}
}

func TestGameRenderTinyScreen(t *testing.T) {
	g := newTestGame(4)
	g.Render(core.NewScreen(0, 0))
	g.Render(core.NewScreen(10, 1))
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 400)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 0:
			inputs[i].Set(core.ActionConfirm)
		case i%40 < 15:
			inputs[i].Set(core.ActionRight)
		case i%40 >= 25:
			inputs[i].Set(core.ActionLeft)
		}
	}

	play := func() (*Game, core.GameState) {
		g := newTestGame(12345)
		var st core.GameState
		for _, in := range inputs {
			st = g.Step(in).State
		}
		return g, st
	}

	g1, s1 := play()
	g2, s2 := play()

	if s1 != s2 {
		t.Errorf("Determinism failed: states differ. Run1=%+v, Run2=%+v", s1, s2)
	}
	if g1.Session().Body().Y != g2.Session().Body().Y || g1.Session().Ticks() != g2.Session().Ticks() {
		t.Error("Determinism failed: body or tick count differ")
	}
}

func TestSetDifficultyPreset(t *testing.T) {
	t.Cleanup(func() { SetDifficultyPreset("") })

	SetDifficultyPreset("hard")
	if difficultyPreset != config.DifficultyHard {
		t.Errorf("preset = %q, expected hard", difficultyPreset)
	}
	SetDifficultyPreset("bogus")
	if difficultyPreset != "" {
		t.Errorf("unknown preset should clear the override, got %q", difficultyPreset)
	}
}

func TestGameSetDifficulty(t *testing.T) {
	g := NewWithConfig(config.DefaultAscentConfig())

	g.SetDifficulty("hard")
	g.Reset(testRuntime(1))
	if lo, _ := g.Session().Field().GapBounds(); lo != 70 {
		t.Errorf("hard preset min gap = %v, expected 70", lo)
	}

	g.SetDifficulty("nope")
	g.Reset(testRuntime(1))
	if lo, _ := g.Session().Field().GapBounds(); lo != 60 {
		t.Errorf("cleared preset min gap = %v, expected 60", lo)
	}

	if len(g.Difficulties()) != 4 {
		t.Errorf("Difficulties() = %v", g.Difficulties())
	}
}
