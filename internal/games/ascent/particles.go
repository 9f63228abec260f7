package ascent

import "math/rand"

// ParticleKind selects a particle's launch profile.
type ParticleKind int

const (
	ParticleLanding ParticleKind = iota
	ParticleSpring
)

const (
	particleDecay   = 0.02
	particleGravity = 0.1
	particleShrink  = 0.98
)

// Particle is a short-lived cosmetic point.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // 1 at spawn, removed at 0
	Size   float64
	Kind   ParticleKind
}

// Particles owns the live particles. It draws from its own RNG so effects
// never perturb the layout sequence.
type Particles struct {
	rng   *rand.Rand
	items []Particle
}

// NewParticles creates an empty particle system.
func NewParticles(rng *rand.Rand) *Particles {
	return &Particles{rng: rng}
}

// Spawn emits n particles of a kind at (x, y).
func (ps *Particles) Spawn(kind ParticleKind, x, y float64, n int) {
	for i := 0; i < n; i++ {
		p := Particle{X: x, Y: y, Life: 1, Kind: kind}
		switch kind {
		case ParticleSpring:
			p.VX = (ps.rng.Float64() - 0.5) * 4
			p.VY = -ps.rng.Float64()*3 - 1
			p.Size = ps.rng.Float64()*3 + 2
		default:
			p.VX = (ps.rng.Float64() - 0.5) * 2
			p.VY = -ps.rng.Float64() * 2
			p.Size = ps.rng.Float64()*4 + 3
		}
		ps.items = append(ps.items, p)
	}
}

// Update advances every particle one tick and drops the expired ones.
func (ps *Particles) Update() {
	kept := ps.items[:0]
	for _, p := range ps.items {
		p.X += p.VX
		p.Y += p.VY
		p.VY += particleGravity
		p.Life -= particleDecay
		p.Size *= particleShrink
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	ps.items = kept
}

// Clear removes every particle.
func (ps *Particles) Clear() {
	ps.items = ps.items[:0]
}

// Items returns the live particles. The slice is owned by the system.
func (ps *Particles) Items() []Particle {
	return ps.items
}

// Len returns the number of live particles.
func (ps *Particles) Len() int {
	return len(ps.items)
}
