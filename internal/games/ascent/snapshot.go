package ascent

import "time"

// Snapshot is a read-only copy of everything a renderer needs. Mutating it
// does not affect the session.
type Snapshot struct {
	State      State
	Tick       uint64
	FrameDelta time.Duration

	Body      Body
	Platforms []Platform
	Particles []Particle

	CameraX, CameraY float64
	Background       float64
	FinishLine       float64
	WorldW, WorldH   float64

	Score      int
	LevelScore int
	TotalScore int
	HighScore  int
	Level      int
	Tier       int
	GameSpeed  float64
	Generation uint64

	// Predictions is only filled while debug mode is on.
	Predictions []Prediction
}

// Snapshot copies the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:      s.state,
		Tick:       s.tick,
		FrameDelta: s.clock.Delta(),
		Body:       *s.body,
		CameraX:    s.camera.X,
		CameraY:    s.camera.Y,
		Background: s.background,
		FinishLine: s.cfg.World.FinishLine,
		WorldW:     s.cfg.World.Width,
		WorldH:     s.cfg.World.Height,
		Score:      s.Score(),
		LevelScore: s.levelScore,
		TotalScore: s.totalScore,
		HighScore:  max(s.highScore, s.Score()),
		Level:      s.level,
		Tier:       s.tier,
		GameSpeed:  s.gameSpeed,
		Generation: s.field.Generation(),
	}
	snap.Body.Trail = append([]TrailPoint(nil), s.body.Trail...)

	platforms := s.field.Platforms()
	snap.Platforms = make([]Platform, len(platforms))
	for i, p := range platforms {
		snap.Platforms[i] = *p
	}
	snap.Particles = append([]Particle(nil), s.particles.Items()...)

	if s.debug {
		nearby := s.field.InRange(s.body.Y, s.cfg.Platforms.QueryRange)
		for _, pr := range PredictTrajectory(s.body, nearby, predictionSteps) {
			p := *pr.Platform
			pr.Platform = &p
			snap.Predictions = append(snap.Predictions, pr)
		}
	}
	return snap
}
