package ascent

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/skyclimb/internal/config"
)

func newTestField(seed int64) *Field {
	f := NewField(config.DefaultAscentConfig(), rand.New(rand.NewSource(seed)))
	f.Generate()
	return f
}

func TestGenerateShape(t *testing.T) {
	cfg := config.DefaultAscentConfig()

	for seed := int64(1); seed <= 25; seed++ {
		f := newTestField(seed)
		ps := f.Platforms()

		if len(ps) < 3 {
			t.Fatalf("seed %d: only %d platforms", seed, len(ps))
		}

		first := ps[0]
		if first != f.Spawn() || first.Y != cfg.World.SpawnHeight || first.W != cfg.Platforms.SpawnWidth {
			t.Errorf("seed %d: first platform %+v is not the spawn platform", seed, *first)
		}
		if first.X+first.W/2 != cfg.World.Width/2 {
			t.Errorf("seed %d: spawn platform should be centred, got x=%v", seed, first.X)
		}

		last := ps[len(ps)-1]
		if last != f.Finish() || last.Type != PlatformSpring || last.W != cfg.Platforms.FinishWidth {
			t.Errorf("seed %d: last platform %+v is not the finish platform", seed, *last)
		}
		if last.Y >= cfg.World.FinishLine {
			t.Errorf("seed %d: finish platform y=%v should be above the finish line %v", seed, last.Y, cfg.World.FinishLine)
		}

		for i := 1; i < len(ps); i++ {
			gap := ps[i-1].Y - ps[i].Y
			if gap < 60-1e-9 || gap > 90+1e-9 {
				t.Errorf("seed %d: gap between %d and %d is %v, expected [60,90]", seed, i-1, i, gap)
			}
		}

		for _, p := range ps[1 : len(ps)-1] {
			if p.W < cfg.Platforms.MinWidth || p.W > cfg.Platforms.MaxWidth {
				t.Errorf("seed %d: width %v out of range", seed, p.W)
			}
			if p.X < 0 || p.X+p.W > cfg.World.Width {
				t.Errorf("seed %d: platform at x=%v w=%v leaves the world", seed, p.X, p.W)
			}
			if p.Type == PlatformMoving {
				speed := math.Abs(p.MoveSpeed)
				if speed < cfg.Platforms.MinMoveSpeed || speed >= cfg.Platforms.MaxMoveSpeed {
					t.Errorf("seed %d: move speed %v out of range", seed, p.MoveSpeed)
				}
				if p.MoveRange != cfg.Platforms.MoveRange || p.OriginX != p.X {
					t.Errorf("seed %d: moving platform not initialised: %+v", seed, *p)
				}
			}
		}
	}
}

func TestGenerateUniqueIDsAndGeneration(t *testing.T) {
	f := newTestField(7)
	if f.Generation() != 1 {
		t.Errorf("Generation() = %d after first Generate, expected 1", f.Generation())
	}

	seen := make(map[PlatformID]bool)
	for _, p := range f.Platforms() {
		if seen[p.ID] {
			t.Errorf("duplicate platform id %d", p.ID)
		}
		seen[p.ID] = true
	}

	f.Reset()
	if f.Generation() != 2 {
		t.Errorf("Generation() = %d after Reset, expected 2", f.Generation())
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := newTestField(99)
	b := newTestField(99)

	if a.Len() != b.Len() {
		t.Fatalf("same seed produced %d and %d platforms", a.Len(), b.Len())
	}
	for i := range a.Platforms() {
		if *a.Platforms()[i] != *b.Platforms()[i] {
			t.Errorf("platform %d differs: %+v vs %+v", i, *a.Platforms()[i], *b.Platforms()[i])
		}
	}
}

func TestGapBounds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.AscentConfig)
		wantLo float64
		wantHi float64
	}{
		{"defaults capped by reachable gap", func(*config.AscentConfig) {}, 60, 90},
		{"capped by max gap", func(c *config.AscentConfig) {
			c.Platforms.ReachableGap = 200
		}, 60, 150},
		{"capped by jump height", func(c *config.AscentConfig) {
			c.Platforms.ReachableGap = 200
			c.Body.Gravity = 0.5
			c.Body.JumpPower = -10
		}, 60, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultAscentConfig()
			tc.mutate(&cfg)
			f := NewField(cfg, rand.New(rand.NewSource(1)))

			lo, hi := f.GapBounds()
			if lo != tc.wantLo || hi != tc.wantHi {
				t.Errorf("GapBounds() = (%v, %v), expected (%v, %v)", lo, hi, tc.wantLo, tc.wantHi)
			}
		})
	}
}

func TestPickType(t *testing.T) {
	w := config.DefaultAscentConfig().Platforms.Weights

	tests := []struct {
		u    float64
		want PlatformType
	}{
		{0, PlatformStandard},
		{0.49, PlatformStandard},
		{0.5, PlatformMoving},
		{0.69, PlatformMoving},
		{0.7, PlatformBreakable},
		{0.75, PlatformBreakable},
		{0.85, PlatformSpring},
		{0.95, PlatformCloud},
	}
	for _, tc := range tests {
		if got := pickType(w, tc.u); got != tc.want {
			t.Errorf("pickType(%v) = %v, expected %v", tc.u, got, tc.want)
		}
	}

	// Unnormalised weights stretch u over their total.
	uneven := config.TypeWeights{Standard: 2, Moving: 2}
	if got := pickType(uneven, 0.4); got != PlatformStandard {
		t.Errorf("pickType(uneven, 0.4) = %v, expected standard", got)
	}
	if got := pickType(uneven, 0.6); got != PlatformMoving {
		t.Errorf("pickType(uneven, 0.6) = %v, expected moving", got)
	}

	if got := pickType(config.TypeWeights{}, 0.3); got != PlatformStandard {
		t.Errorf("zero weights should fall back to standard, got %v", got)
	}
}

func TestTypeDistribution(t *testing.T) {
	cfg := config.DefaultAscentConfig()
	f := NewField(cfg, rand.New(rand.NewSource(2024)))

	const samples = 100_000
	counts := make(map[PlatformType]int)
	for i := 0; i < samples; i++ {
		counts[f.randomType()]++
	}

	w := cfg.Platforms.Weights
	want := map[PlatformType]float64{
		PlatformStandard:  w.Standard,
		PlatformMoving:    w.Moving,
		PlatformBreakable: w.Breakable,
		PlatformSpring:    w.Spring,
		PlatformCloud:     w.Cloud,
	}
	for typ, p := range want {
		got := float64(counts[typ]) / samples
		if math.Abs(got-p) > 0.01 {
			t.Errorf("%v: frequency %.4f, expected %.2f", typ, got, p)
		}
	}
}

func TestMovingPlatformOscillates(t *testing.T) {
	p := &Platform{X: 300, OriginX: 300, W: 60, H: 20, Type: PlatformMoving, MoveSpeed: 3, MoveRange: 10}

	reversals := 0
	prev := p.MoveSpeed
	for i := 0; i < 200; i++ {
		p.Update(800)
		if p.X < p.OriginX-p.MoveRange-3 || p.X > p.OriginX+p.MoveRange+3 {
			t.Fatalf("tick %d: x=%v escaped origin±range", i, p.X)
		}
		if p.MoveSpeed != prev {
			reversals++
			prev = p.MoveSpeed
		}
	}
	if reversals < 10 {
		t.Errorf("expected regular reversals, got %d", reversals)
	}
}

func TestMovingPlatformReversesAtWorldEdge(t *testing.T) {
	p := &Platform{X: 2, OriginX: 50, W: 60, H: 20, Type: PlatformMoving, MoveSpeed: -3, MoveRange: 100}

	p.Update(800)
	if p.MoveSpeed != 3 {
		t.Errorf("platform should reverse at the left edge, speed=%v", p.MoveSpeed)
	}
	p.Update(800)
	if p.X != 2 {
		t.Errorf("X = %v after bouncing off the edge, expected 2", p.X)
	}
}

func TestStaticPlatformsDoNotMove(t *testing.T) {
	for _, typ := range []PlatformType{PlatformStandard, PlatformBreakable, PlatformSpring, PlatformCloud} {
		p := &Platform{X: 100, OriginX: 100, W: 60, Type: typ, MoveSpeed: 2, MoveRange: 100}
		p.Update(800)
		if p.X != 100 {
			t.Errorf("%v platform moved to %v", typ, p.X)
		}
	}
}

func TestFieldUpdatePrunesBelowCamera(t *testing.T) {
	f := newTestField(3)
	spawn := f.Spawn()
	before := f.Len()

	f.Update(-1000)

	limit := -1000 + config.DefaultAscentConfig().Platforms.PruneMargin
	for _, p := range f.Platforms() {
		if p.Y >= limit {
			t.Errorf("platform at y=%v should have been pruned (limit %v)", p.Y, limit)
		}
	}
	if f.Find(spawn.ID) != nil {
		t.Error("spawn platform should be pruned")
	}
	if f.Len() >= before {
		t.Errorf("Len() = %d, expected fewer than %d", f.Len(), before)
	}
}

func TestFieldInRange(t *testing.T) {
	f := newTestField(5)
	const y, r = 200.0, 150.0

	in := make(map[PlatformID]bool)
	for _, p := range f.InRange(y, r) {
		in[p.ID] = true
		if math.Abs(p.Y-y) >= r {
			t.Errorf("platform at y=%v is outside range", p.Y)
		}
	}
	for _, p := range f.Platforms() {
		if !in[p.ID] && math.Abs(p.Y-y) < r {
			t.Errorf("platform at y=%v should be in range", p.Y)
		}
	}
}

func TestFieldRemove(t *testing.T) {
	f := newTestField(11)
	target := f.Platforms()[2]
	n := f.Len()

	if !f.Remove(target.ID) {
		t.Fatal("Remove() of a live platform should succeed")
	}
	if f.Len() != n-1 {
		t.Errorf("Len() = %d, expected %d", f.Len(), n-1)
	}
	if f.Find(target.ID) != nil {
		t.Error("removed platform is still findable")
	}
	if f.Remove(target.ID) {
		t.Error("second Remove() should report false")
	}
}
