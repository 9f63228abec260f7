package ascent

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyclimb/internal/config"
	"github.com/vovakirdan/skyclimb/internal/core"
	"github.com/vovakirdan/skyclimb/internal/registry"
)

// GameID is the registry and score storage key.
const GameID = "skyclimb"

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back
// to the config file as written.
func SetDifficultyPreset(preset string) {
	if p, ok := config.ParsePreset(preset); ok && preset != "" {
		difficultyPreset = p
		return
	}
	difficultyPreset = ""
}

// Game adapts a Session to the platform's registry.Game interface.
type Game struct {
	session *Session
	cfg     config.AscentConfig
	runtime core.RuntimeConfig
	preset  config.DifficultyPreset
	store   registry.HighScoreStore
	logger  *log.Logger
	frame   framing
}

// New creates a new game instance. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that uses cfg instead of loading one.
func NewWithConfig(cfg config.AscentConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Sky Climb"
}

// SetHighScoreStore attaches persistent high score storage.
func (g *Game) SetHighScoreStore(store registry.HighScoreStore) {
	g.store = store
}

// SetLogger sets the logger passed to new sessions.
func (g *Game) SetLogger(logger *log.Logger) {
	g.logger = logger
}

// Difficulties lists the preset names accepted by SetDifficulty.
func (g *Game) Difficulties() []string {
	return []string{
		string(config.DifficultyNormal),
		string(config.DifficultyEasy),
		string(config.DifficultyHard),
		string(config.DifficultyFixed),
	}
}

// SetDifficulty selects a preset for this instance, overriding the
// package-level one. Unknown names clear the override.
func (g *Game) SetDifficulty(name string) {
	if p, ok := config.ParsePreset(name); ok && name != "" {
		g.preset = p
		return
	}
	g.preset = ""
}

// HoldTicks reports how long a steering key stays held.
func (g *Game) HoldTicks() int {
	if g.cfg == (config.AscentConfig{}) {
		return config.DefaultAscentConfig().Controls.HoldTicks
	}
	return g.cfg.Controls.HoldTicks
}

// Reset builds a new session in the menu state.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if g.cfg == (config.AscentConfig{}) {
		cfg, err := config.LoadAscent(configPath)
		if err != nil {
			if g.logger != nil {
				g.logger.Warn("using default config", "error", err)
			}
			cfg = config.DefaultAscentConfig()
		}
		g.cfg = cfg
	}

	cfg := g.cfg
	preset := difficultyPreset
	if g.preset != "" {
		preset = g.preset
	}
	if preset != "" {
		config.ApplyAscentPreset(&cfg, preset)
	}

	opts := []Option{WithTickRate(runtime.TickRate), WithLogger(g.logger)}
	if g.store != nil {
		opts = append(opts, WithStore(g.store))
	}
	g.session = NewSession(cfg, runtime.Seed, opts...)
	g.frame.reset(g.session)
}

// Session exposes the underlying simulation.
func (g *Game) Session() *Session {
	return g.session
}

// Step maps platform actions onto the session and advances it one tick.
// Lifecycle calls are gated by the state switch, so their errors cannot
// occur here.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	s := g.session

	if in.Has(core.ActionDebug) {
		s.SetDebug(!s.Debug())
	}

	switch s.State() {
	case StateMenu:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionJump) {
			s.Start() //nolint:errcheck // gated by state
		}
	case StatePlaying:
		if in.Has(core.ActionPause) {
			s.Pause() //nolint:errcheck // gated by state
			break
		}
		s.Tick(intentsFrom(in))
	case StatePaused:
		if in.Has(core.ActionPause) || in.Has(core.ActionConfirm) {
			s.Resume() //nolint:errcheck // gated by state
		}
	case StateGameOver:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			s.Restart() //nolint:errcheck // gated by state
		}
	case StateGameWin:
		if in.Has(core.ActionConfirm) {
			s.NextLevel() //nolint:errcheck // gated by state
		}
	}

	g.frame.follow(s)
	return core.StepResult{State: g.State()}
}

func intentsFrom(in core.InputFrame) Intents {
	return Intents{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Jump:  in.Has(core.ActionJump),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	s := g.session
	return core.GameState{
		Score:    s.Score(),
		Level:    s.Level(),
		GameOver: s.State() == StateGameOver,
		Won:      s.State() == StateGameWin,
		Paused:   s.State() == StatePaused,
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
