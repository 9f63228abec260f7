// Package ascent implements a vertical platform climber.
// A body bounces upward through a procedurally generated field of
// platforms toward a fixed finish line. The package is pure simulation:
// it performs no drawing of its own beyond writing into a core.Screen and
// never reads devices.
package ascent

import (
	"math"

	"github.com/vovakirdan/skyclimb/internal/config"
	"github.com/vovakirdan/skyclimb/internal/core"
)

// Intents is the per-tick input snapshot supplied by the input collaborator.
type Intents struct {
	Left  bool
	Right bool
	Jump  bool
}

// TrailPoint is one faded position behind the body.
type TrailPoint struct {
	X, Y  float64
	Alpha float64
}

// Body is the controlled entity. Y grows downward, so climbing means
// decreasing Y.
type Body struct {
	X, Y   float64
	W, H   float64
	VX, VY float64

	Speed        float64
	JumpPower    float64 // negative = upward
	Gravity      float64
	Friction     float64
	MaxFallSpeed float64

	OnGround  bool
	IsJumping bool

	// MaxHeight is the smallest Y reached since the last reset.
	MaxHeight float64

	// Cosmetic state, never read by physics.
	Rotation    float64
	BounceScale float64
	bouncePhase float64
	Trail       []TrailPoint
	trailLen    int
}

// NewBody creates a body from configuration, positioned at (x, y).
func NewBody(cfg config.BodyConfig, trailLen int, x, y float64) *Body {
	b := &Body{
		W:            cfg.Width,
		H:            cfg.Height,
		Speed:        cfg.Speed,
		JumpPower:    cfg.JumpPower,
		Gravity:      cfg.Gravity,
		Friction:     cfg.Friction,
		MaxFallSpeed: cfg.MaxFallSpeed,
		trailLen:     trailLen,
	}
	b.Reset(x, y)
	return b
}

// Reset places the body at (x, y) at rest.
func (b *Body) Reset(x, y float64) {
	b.X = x
	b.Y = y
	b.VX = 0
	b.VY = 0
	b.OnGround = false
	b.IsJumping = false
	b.MaxHeight = y
	b.Rotation = 0
	b.BounceScale = 1
	b.bouncePhase = 0
	b.Trail = b.Trail[:0]
}

// Rect returns the collision box.
func (b *Body) Rect() core.RectF {
	return core.NewRectF(b.X, b.Y, b.W, b.H)
}

// Integrate advances the body by one fixed tick.
func (b *Body) Integrate(in Intents, worldW float64) {
	switch {
	case in.Left:
		b.VX = -b.Speed
	case in.Right:
		b.VX = b.Speed
	default:
		b.VX *= b.Friction
	}

	b.VY += b.Gravity
	if b.VY > b.MaxFallSpeed {
		b.VY = b.MaxFallSpeed
	}

	b.X += b.VX
	b.Y += b.VY

	if b.X < 0 {
		b.X = 0
		b.VX = 0
	} else if b.X+b.W > worldW {
		b.X = worldW - b.W
		b.VX = 0
	}

	if b.Y < b.MaxHeight {
		b.MaxHeight = b.Y
	}

	b.animate()
}

// Jump launches the body if it is standing on a platform. Airborne calls
// are ignored.
func (b *Body) Jump() bool {
	if !b.OnGround {
		return false
	}
	b.VY = b.JumpPower
	b.OnGround = false
	b.IsJumping = true
	b.startBounce()
	return true
}

// land snaps the body on top of a surface and rebounds it.
func (b *Body) land(top float64) {
	b.Y = top - b.H
	b.VY = b.JumpPower
	b.OnGround = true
	b.IsJumping = false
	b.startBounce()
}

// IsOutOfBounds reports whether the body has fallen past the limit.
func (b *Body) IsOutOfBounds(fallLimit float64) bool {
	return b.Y > fallLimit
}

func (b *Body) startBounce() {
	b.bouncePhase = 0.1
}

// animate advances rotation, squash and trail.
func (b *Body) animate() {
	b.Rotation += b.VX * 0.1

	if b.bouncePhase > 0 {
		b.BounceScale = 1 + math.Sin(b.bouncePhase)*0.2
		b.bouncePhase += 0.3
		if b.bouncePhase > math.Pi {
			b.bouncePhase = 0
			b.BounceScale = 1
		}
	}

	if b.trailLen <= 0 {
		return
	}
	b.Trail = append(b.Trail, TrailPoint{X: b.X + b.W/2, Y: b.Y + b.H/2, Alpha: 1})
	kept := b.Trail[:0]
	for _, p := range b.Trail {
		p.Alpha -= 0.1
		if p.Alpha > 0 {
			kept = append(kept, p)
		}
	}
	if len(kept) > b.trailLen {
		kept = kept[len(kept)-b.trailLen:]
	}
	b.Trail = kept
}
