package ascent

import (
	"math"

	"github.com/vovakirdan/skyclimb/internal/config"
	"github.com/vovakirdan/skyclimb/internal/core"
)

// Side is the face of a platform the body collided with.
type Side int

const (
	SideNone Side = iota
	SideTop
	SideBottom
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// RectsOverlap reports whether two rectangles strictly overlap.
func RectsOverlap(a, b core.RectF) bool {
	return a.Overlaps(b)
}

// ResolveSide classifies a collision by the shallowest penetration depth.
// Ties go to top, bottom, left, right in that order. Top is only eligible
// when the body is not rising and bottom only when it is not falling, which
// lets a rising body pass through a platform from below.
func ResolveSide(body, platform core.RectF, vy float64) Side {
	if !body.Overlaps(platform) {
		return SideNone
	}

	left := body.Right() - platform.X
	right := platform.Right() - body.X
	top := body.Bottom() - platform.Y
	bottom := platform.Bottom() - body.Y

	m := math.Min(math.Min(left, right), math.Min(top, bottom))
	switch {
	case m == top && vy >= 0:
		return SideTop
	case m == bottom && vy <= 0:
		return SideBottom
	case m == left:
		return SideLeft
	case m == right:
		return SideRight
	}
	return SideNone
}

// Result is the outcome of resolving the body against a set of platforms.
type Result struct {
	Landed   bool
	Platform *Platform // the platform landed on, if any
	Effect   Effect
}

// Resolver applies collision responses to the body.
type Resolver struct {
	cfg config.CollisionConfig
}

// NewResolver creates a resolver.
func NewResolver(cfg config.CollisionConfig) *Resolver {
	return &Resolver{cfg: cfg}
}

// Resolve tests the body against each candidate in order and applies the
// response for the side hit. A top hit only counts as a landing when the
// body's bottom edge was at or above the platform top (within tolerance)
// before this tick's movement. When several platforms are landed on in
// one pass the last one wins.
func (r *Resolver) Resolve(b *Body, candidates []*Platform) Result {
	var res Result

	for _, p := range candidates {
		switch ResolveSide(b.Rect(), p.Rect(), b.VY) {
		case SideTop:
			if b.Y+b.H-b.VY > p.Y+r.cfg.LandingTolerance {
				continue
			}
			b.land(p.Y)
			eff := EffectFor(p.Type, r.cfg)
			r.apply(b, p, eff)
			res = Result{Landed: true, Platform: p, Effect: eff}
		case SideBottom:
			// One-way surface.
		case SideLeft:
			b.X = p.X - b.W
			b.VX = 0
		case SideRight:
			b.X = p.Rect().Right()
			b.VX = 0
		}
	}

	if !res.Landed {
		b.OnGround = false
	}
	return res
}

func (r *Resolver) apply(b *Body, p *Platform, e Effect) {
	if e.JumpScale != 1 {
		b.VY = b.JumpPower * e.JumpScale
	}
	if e.MomentumTransfer != 0 {
		b.VX += p.MoveSpeed * e.MomentumTransfer
	}
	if e.Compression != 0 {
		p.Compression = e.Compression
	}
}

// Prediction is a sampled future position that would hit a platform.
type Prediction struct {
	T        float64 // fraction of one tick's velocity
	X, Y     float64
	Platform *Platform
	Side     Side
}

// PredictTrajectory samples steps positions along the body's current
// velocity at t = i/steps and reports which platforms would be hit.
// It is diagnostic only and does not mutate anything.
func PredictTrajectory(b *Body, platforms []*Platform, steps int) []Prediction {
	if steps <= 0 {
		return nil
	}

	var out []Prediction
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		probe := core.NewRectF(b.X+b.VX*t, b.Y+b.VY*t, b.W, b.H)
		for _, p := range platforms {
			if side := ResolveSide(probe, p.Rect(), b.VY); side != SideNone {
				out = append(out, Prediction{T: t, X: probe.X, Y: probe.Y, Platform: p, Side: side})
			}
		}
	}
	return out
}
