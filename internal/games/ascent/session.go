package ascent

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyclimb/internal/config"
)

// State is the session's lifecycle phase.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
	StateGameWin
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "gameOver"
	case StateGameWin:
		return "gameWin"
	default:
		return "unknown"
	}
}

// ErrInvalidTransition is returned when a lifecycle call is not allowed in
// the current state. The state is left unchanged.
var ErrInvalidTransition = errors.New("ascent: invalid state transition")

// HighScoreStore persists the best score across sessions.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithStore sets the high score store.
func WithStore(st HighScoreStore) Option {
	return func(s *Session) { s.store = st }
}

// WithClock sets the wall clock used for frame timing.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.clock = NewFrameClock(now) }
}

// WithTickRate sets the number of ticks per simulated second, used to
// convert deferred action delays into ticks. Defaults to 60.
func WithTickRate(rate int) Option {
	return func(s *Session) {
		if rate > 0 {
			s.tickRate = rate
		}
	}
}

const predictionSteps = 10

// Session owns one run: body, field, camera, scores and the state machine.
// It is not safe for concurrent use; the caller drives it from a single
// tick loop.
type Session struct {
	cfg      config.AscentConfig
	tickRate int

	body       *Body
	field      *Field
	resolver   *Resolver
	camera     *Camera
	particles  *Particles
	deferred   Deferred
	clock      *FrameClock
	difficulty *config.DifficultyManager

	state      State
	tick       uint64
	levelScore int
	totalScore int
	highScore  int
	level      int
	tier       int
	gameSpeed  float64
	background float64
	debug      bool

	store HighScoreStore
	log   *log.Logger
}

// NewSession creates a session in the menu state with a freshly generated
// level. The seed drives both the layout and the particle effects.
func NewSession(cfg config.AscentConfig, seed int64, opts ...Option) *Session {
	s := &Session{
		cfg:      cfg,
		tickRate: 60,
		log:      log.New(io.Discard),
		level:    1,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.clock == nil {
		s.clock = NewFrameClock(nil)
	}

	layout := rand.New(rand.NewSource(seed))
	fx := rand.New(rand.NewSource(layout.Int63()))

	s.field = NewField(cfg, layout)
	s.body = NewBody(cfg.Body, cfg.Effects.TrailLength, 0, 0)
	s.resolver = NewResolver(cfg.Collision)
	s.camera = NewCamera(cfg.Camera)
	s.particles = NewParticles(fx)
	s.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	s.highScore = s.loadHighScore()
	s.resetLevel()
	return s
}

func (s *Session) loadHighScore() int {
	if s.store == nil {
		return 0
	}
	hs, err := s.store.LoadHighScore()
	if err != nil {
		s.log.Warn("could not load high score", "error", err)
		return 0
	}
	return hs
}

func (s *Session) saveHighScore(score int) {
	if score <= s.highScore {
		return
	}
	s.highScore = score
	if s.store == nil {
		return
	}
	if err := s.store.SaveHighScore(score); err != nil {
		s.log.Warn("could not save high score", "score", score, "error", err)
	}
}

// resetLevel regenerates the field and puts the body on the spawn platform.
func (s *Session) resetLevel() {
	s.field.Generate()
	spawn := s.field.Spawn()
	s.body.Reset(spawn.X+(spawn.W-s.body.W)/2, spawn.Y-s.body.H)
	s.camera.Reset()
	s.particles.Clear()
	s.levelScore = 0
	s.background = 0
	s.updateDifficulty()
}

func (s *Session) transition(to State, allowed ...State) error {
	for _, from := range allowed {
		if s.state == from {
			s.log.Debug("state change", "from", s.state, "to", to, "level", s.level)
			s.state = to
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.state, to)
}

// Start leaves the menu and begins play.
func (s *Session) Start() error {
	if err := s.transition(StatePlaying, StateMenu); err != nil {
		return err
	}
	s.clock.Anchor()
	return nil
}

// Pause suspends ticking.
func (s *Session) Pause() error {
	return s.transition(StatePaused, StatePlaying)
}

// Resume continues a paused session. The frame clock is re-anchored so the
// paused interval is never measured as a frame.
func (s *Session) Resume() error {
	if err := s.transition(StatePlaying, StatePaused); err != nil {
		return err
	}
	s.clock.Anchor()
	return nil
}

// TogglePause pauses a playing session or resumes a paused one.
func (s *Session) TogglePause() error {
	if s.state == StatePaused {
		return s.Resume()
	}
	return s.Pause()
}

// Restart begins a new run from level 1 with a new layout. Only a finished
// run can be restarted.
func (s *Session) Restart() error {
	if err := s.transition(StatePlaying, StateGameOver); err != nil {
		return err
	}
	s.totalScore = 0
	s.level = 1
	s.resetLevel()
	s.clock.Anchor()
	return nil
}

// NextLevel continues after a win, keeping the accumulated score.
func (s *Session) NextLevel() error {
	if err := s.transition(StatePlaying, StateGameWin); err != nil {
		return err
	}
	s.level++
	s.resetLevel()
	s.clock.Anchor()
	return nil
}

// Jump requests a jump outside of Tick. It is ignored unless playing.
func (s *Session) Jump() bool {
	if s.state != StatePlaying {
		return false
	}
	return s.body.Jump()
}

// Tick advances the simulation one fixed step. It does nothing unless the
// session is playing.
func (s *Session) Tick(in Intents) {
	if s.state != StatePlaying {
		return
	}
	s.tick++
	s.clock.Step()

	s.deferred.Drain(s.tick, s.field.Generation(), s.fire)

	if in.Jump {
		s.body.Jump()
	}
	s.body.Integrate(in, s.cfg.World.Width)
	s.camera.Follow(s.body.Y, s.cfg.World.Height)
	s.field.Update(s.camera.Y)

	res := s.resolver.Resolve(s.body, s.field.InRange(s.body.Y, s.cfg.Platforms.QueryRange))
	if res.Landed {
		s.onLanding(res)
	}

	s.updateScore()
	s.updateDifficulty()
	s.particles.Update()

	if s.body.IsOutOfBounds(s.cfg.World.FallLimit) {
		s.gameOver()
		return
	}
	if s.body.Y < s.cfg.World.FinishLine {
		s.gameWin()
		return
	}

	s.background += s.cfg.Effects.BackgroundSpeed
	if s.background > s.cfg.World.Height {
		s.background = 0
	}
}

func (s *Session) onLanding(res Result) {
	p, e := res.Platform, res.Effect
	gen := s.field.Generation()

	if e.Break {
		s.deferred.Schedule(DeferredAction{
			Kind:       DeferredRemovePlatform,
			Platform:   p.ID,
			Generation: gen,
			Due:        s.tick + TicksFor(s.cfg.Timers.BreakDelay, s.tickRate),
		})
	}
	if e.Compression != 0 {
		s.deferred.Schedule(DeferredAction{
			Kind:       DeferredResetCompression,
			Platform:   p.ID,
			Generation: gen,
			Due:        s.tick + TicksFor(s.cfg.Timers.SpringResetDelay, s.tickRate),
		})
	}

	switch e.Particles {
	case ParticleSpring:
		s.particles.Spawn(ParticleSpring, p.X+p.W/2, p.Y, s.cfg.Effects.SpringParticles)
	default:
		s.particles.Spawn(ParticleLanding, s.body.X+s.body.W/2, s.body.Y+s.body.H, s.cfg.Effects.LandingParticles)
	}
}

func (s *Session) fire(a DeferredAction) {
	switch a.Kind {
	case DeferredRemovePlatform:
		s.field.Remove(a.Platform)
	case DeferredResetCompression:
		if p := s.field.Find(a.Platform); p != nil {
			p.Compression = 0
		}
	}
}

func (s *Session) updateScore() {
	climbed := math.Floor((s.cfg.World.SpawnHeight - s.body.MaxHeight) / s.cfg.Scoring.UnitsPerPoint)
	if h := int(math.Max(0, climbed)); h > s.levelScore {
		s.levelScore = h
	}
}

func (s *Session) updateDifficulty() {
	s.tier = s.difficulty.Tier(s.Score())
	s.gameSpeed = s.difficulty.Speed(s.tier)
}

func (s *Session) gameOver() {
	s.state = StateGameOver
	score := s.Score()
	s.log.Info("game over", "score", score, "level", s.level)
	s.saveHighScore(score)
}

func (s *Session) gameWin() {
	s.state = StateGameWin
	s.totalScore += s.levelScore
	s.log.Info("level complete", "level", s.level, "total", s.totalScore)
	s.saveHighScore(s.totalScore)
}

// State returns the lifecycle phase.
func (s *Session) State() State { return s.state }

// Score returns the running score: banked levels plus the current level.
// A completed level is already banked in the total.
func (s *Session) Score() int {
	if s.state == StateGameWin {
		return s.totalScore
	}
	return s.totalScore + s.levelScore
}

// LevelScore returns the points earned in the current level.
func (s *Session) LevelScore() int { return s.levelScore }

// TotalScore returns the points banked from completed levels.
func (s *Session) TotalScore() int { return s.totalScore }

// HighScore returns the best score known to this session.
func (s *Session) HighScore() int { return s.highScore }

// Level returns the 1-based level number.
func (s *Session) Level() int { return s.level }

// Tier returns the difficulty tier.
func (s *Session) Tier() int { return s.tier }

// GameSpeed returns the speed scalar for the current tier.
func (s *Session) GameSpeed() float64 { return s.gameSpeed }

// Body returns the controlled body.
func (s *Session) Body() *Body { return s.body }

// Field returns the platform field.
func (s *Session) Field() *Field { return s.field }

// Camera returns the authoritative camera.
func (s *Session) Camera() *Camera { return s.camera }

// Ticks returns the number of simulated ticks since creation.
func (s *Session) Ticks() uint64 { return s.tick }

// PendingActions returns the number of queued deferred actions.
func (s *Session) PendingActions() int { return s.deferred.Len() }

// SetDebug enables trajectory predictions in snapshots.
func (s *Session) SetDebug(on bool) { s.debug = on }

// Debug reports whether trajectory predictions are enabled.
func (s *Session) Debug() bool { return s.debug }
