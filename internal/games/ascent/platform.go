package ascent

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/skyclimb/internal/config"
	"github.com/vovakirdan/skyclimb/internal/core"
)

// PlatformType identifies a platform's landing behaviour.
type PlatformType int

const (
	PlatformStandard PlatformType = iota
	PlatformMoving
	PlatformBreakable
	PlatformSpring
	PlatformCloud
)

// weightSumEpsilon is how far the type weights may drift from 1 before
// the draw rescales u.
const weightSumEpsilon = 1e-9

// platformTypes is the draw order used by the weighted selection.
var platformTypes = [...]PlatformType{
	PlatformStandard,
	PlatformMoving,
	PlatformBreakable,
	PlatformSpring,
	PlatformCloud,
}

// String returns the type name.
func (t PlatformType) String() string {
	switch t {
	case PlatformStandard:
		return "standard"
	case PlatformMoving:
		return "moving"
	case PlatformBreakable:
		return "breakable"
	case PlatformSpring:
		return "spring"
	case PlatformCloud:
		return "cloud"
	default:
		return "unknown"
	}
}

// PlatformID is unique within one field generation.
type PlatformID uint32

// Platform is a surface the body can land on, pass through from below,
// or bump into from the side.
type Platform struct {
	ID   PlatformID
	X, Y float64
	W, H float64
	Type PlatformType

	// Horizontal oscillation, only for PlatformMoving.
	MoveSpeed float64 // signed units per tick
	MoveRange float64
	OriginX   float64

	// Compression is the cosmetic spring squash offset.
	Compression float64
}

// Rect returns the collision box.
func (p *Platform) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.W, p.H)
}

// Update advances a moving platform one tick, reversing at the ends of its
// range or at either world edge.
func (p *Platform) Update(worldW float64) {
	if p.Type != PlatformMoving {
		return
	}
	p.X += p.MoveSpeed
	if p.X <= p.OriginX-p.MoveRange ||
		p.X >= p.OriginX+p.MoveRange ||
		p.X <= 0 ||
		p.X+p.W >= worldW {
		p.MoveSpeed = -p.MoveSpeed
	}
}

// Field is the ordered collection of platforms for one level. The first
// platform is the spawn platform and the last is the finish platform.
type Field struct {
	cfg       config.PlatformConfig
	world     config.WorldConfig
	jumpReach float64

	rng        *rand.Rand
	platforms  []*Platform
	generation uint64
	nextID     PlatformID
	spawn      *Platform
	finish     *Platform
}

// NewField creates an empty field. Call Generate to lay out a level.
func NewField(cfg config.AscentConfig, rng *rand.Rand) *Field {
	return &Field{
		cfg:       cfg.Platforms,
		world:     cfg.World,
		jumpReach: MaxJumpHeight(cfg.Body),
		rng:       rng,
	}
}

// MaxJumpHeight is the apex height of a jump from rest: v²/2g.
func MaxJumpHeight(b config.BodyConfig) float64 {
	if b.Gravity <= 0 {
		return math.Inf(1)
	}
	return b.JumpPower * b.JumpPower / (2 * b.Gravity)
}

// GapBounds returns the range gaps are drawn from. The upper bound is the
// configured maximum capped by the reachable gap and the body's real jump
// height, so every platform can be reached from the one below it.
func (f *Field) GapBounds() (lo, hi float64) {
	lo = f.cfg.MinGap
	hi = math.Min(f.cfg.MaxGap, math.Min(f.cfg.ReachableGap, f.jumpReach))
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// Generate replaces the field with a fresh layout and bumps the generation.
func (f *Field) Generate() {
	f.generation++
	f.platforms = f.platforms[:0]
	f.nextID = 0

	worldW := f.world.Width
	spawnX := (worldW - f.cfg.SpawnWidth) / 2
	f.spawn = f.add(spawnX, f.world.SpawnHeight, f.cfg.SpawnWidth, PlatformStandard)

	y := f.world.SpawnHeight
	for y > f.world.TargetHeight {
		y -= f.randomGap()
		f.generatePlatform(y)
	}

	finishX := (worldW - f.cfg.FinishWidth) / 2
	f.finish = f.add(finishX, y-f.cfg.FinishGap, f.cfg.FinishWidth, PlatformSpring)
}

// Reset clears and regenerates the field.
func (f *Field) Reset() {
	f.Generate()
}

func (f *Field) generatePlatform(y float64) *Platform {
	width := f.cfg.MinWidth + f.rng.Float64()*(f.cfg.MaxWidth-f.cfg.MinWidth)
	x := f.rng.Float64() * (f.world.Width - width)
	p := f.add(x, y, width, f.randomType())

	if p.Type == PlatformMoving {
		speed := f.cfg.MinMoveSpeed + f.rng.Float64()*(f.cfg.MaxMoveSpeed-f.cfg.MinMoveSpeed)
		if f.rng.Float64() < 0.5 {
			speed = -speed
		}
		p.MoveSpeed = speed
		p.MoveRange = f.cfg.MoveRange
	}
	return p
}

func (f *Field) add(x, y, w float64, t PlatformType) *Platform {
	f.nextID++
	p := &Platform{
		ID:      f.nextID,
		X:       x,
		Y:       y,
		W:       w,
		H:       f.cfg.Height,
		Type:    t,
		OriginX: x,
	}
	f.platforms = append(f.platforms, p)
	return p
}

func (f *Field) randomGap() float64 {
	lo, hi := f.GapBounds()
	return lo + f.rng.Float64()*(hi-lo)
}

func (f *Field) randomType() PlatformType {
	return pickType(f.cfg.Weights, f.rng.Float64())
}

// pickType walks the cumulative weights and returns the first type whose
// running sum exceeds u. Weights that do not sum to 1 stretch u over their
// total instead.
func pickType(w config.TypeWeights, u float64) PlatformType {
	weights := [...]float64{w.Standard, w.Moving, w.Breakable, w.Spring, w.Cloud}
	total := w.Sum()
	if total <= 0 {
		return PlatformStandard
	}
	if math.Abs(total-1) > weightSumEpsilon {
		u *= total
	}

	cumulative := 0.0
	for i, weight := range weights {
		cumulative += weight
		if u < cumulative {
			return platformTypes[i]
		}
	}
	return PlatformStandard
}

// Update advances moving platforms and drops every platform that has
// fallen pruneMargin below the camera. Pruned platforms are gone for the
// rest of the level.
func (f *Field) Update(cameraY float64) {
	for _, p := range f.platforms {
		p.Update(f.world.Width)
	}

	limit := cameraY + f.cfg.PruneMargin
	kept := f.platforms[:0]
	for _, p := range f.platforms {
		if p.Y < limit {
			kept = append(kept, p)
		}
	}
	clear(f.platforms[len(kept):])
	f.platforms = kept
}

// InRange returns platforms whose y lies strictly within r of y.
func (f *Field) InRange(y, r float64) []*Platform {
	var out []*Platform
	for _, p := range f.platforms {
		if math.Abs(p.Y-y) < r {
			out = append(out, p)
		}
	}
	return out
}

// Remove deletes the platform with the given id. It reports whether the
// platform was present.
func (f *Field) Remove(id PlatformID) bool {
	for i, p := range f.platforms {
		if p.ID == id {
			copy(f.platforms[i:], f.platforms[i+1:])
			f.platforms[len(f.platforms)-1] = nil
			f.platforms = f.platforms[:len(f.platforms)-1]
			return true
		}
	}
	return false
}

// Find returns the platform with the given id, or nil.
func (f *Field) Find(id PlatformID) *Platform {
	for _, p := range f.platforms {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Platforms returns the live platforms in generation order.
// The slice is owned by the field.
func (f *Field) Platforms() []*Platform {
	return f.platforms
}

// Len returns the number of live platforms.
func (f *Field) Len() int {
	return len(f.platforms)
}

// Generation returns the layout version, bumped on every Generate.
func (f *Field) Generation() uint64 {
	return f.generation
}

// Spawn returns the spawn platform of the current generation.
func (f *Field) Spawn() *Platform {
	return f.spawn
}

// Finish returns the finish platform of the current generation.
func (f *Field) Finish() *Platform {
	return f.finish
}
