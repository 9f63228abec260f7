package ascent

import "github.com/vovakirdan/skyclimb/internal/config"

// Effect describes what landing on a platform type does beyond the default
// bounce. Immediate parts are applied by the resolver; Break and
// Compression also need deferred follow-ups, which the session schedules.
type Effect struct {
	Type PlatformType

	// JumpScale multiplies the body's jump power on landing.
	JumpScale float64

	// MomentumTransfer is the fraction of the platform's horizontal speed
	// added to the body.
	MomentumTransfer float64

	// Compression is the visual squash offset given to the platform.
	// A non-zero value is reset after the spring delay.
	Compression float64

	// Break schedules the platform's removal after the break delay.
	Break bool

	Particles ParticleKind
}

// Deferred reports whether the effect needs a follow-up action.
func (e Effect) Deferred() bool {
	return e.Break || e.Compression != 0
}

// EffectFor returns the landing effect of a platform type. It is a pure
// lookup; nothing is mutated.
func EffectFor(t PlatformType, cfg config.CollisionConfig) Effect {
	e := Effect{Type: t, JumpScale: 1, Particles: ParticleLanding}
	switch t {
	case PlatformSpring:
		e.JumpScale = cfg.SpringMultiplier
		e.Compression = cfg.SpringCompression
		e.Particles = ParticleSpring
	case PlatformBreakable:
		e.Break = true
	case PlatformMoving:
		e.MomentumTransfer = cfg.MomentumTransfer
	}
	return e
}
