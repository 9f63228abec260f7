package ascent

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/skyclimb/internal/core"
)

// Visual characters for rendering
const (
	BodyChar      = '█'
	TrailChar     = '·'
	StandardChar  = '▀'
	MovingChar    = '═'
	BreakableChar = '▒'
	SpringChar    = '≡'
	SpringSquash  = '▄'
	CloudChar     = '░'
	FinishChar    = '┄'
	StarChar      = '.'
	PredictChar   = 'x'
)

// Dead zone for the terminal view, as fractions of the viewport height
// measured from its top edge.
const (
	frameUpper = 0.30
	frameLower = 0.80
)

// framing is the terminal view offset. It is separate from the session
// camera, which only tracks downward motion; the view keeps the body
// inside a dead zone so bounces do not shake the whole field.
type framing struct {
	top        float64
	generation uint64
}

func (f *framing) reset(s *Session) {
	b := s.Body()
	f.top = b.Y - s.cfg.World.Height*frameLower
	f.generation = s.Field().Generation()
}

func (f *framing) follow(s *Session) {
	if s.Field().Generation() != f.generation {
		f.reset(s)
		return
	}
	h := s.cfg.World.Height
	y := s.Body().Y
	switch {
	case y < f.top+h*frameUpper:
		f.top = y - h*frameUpper
	case y > f.top+h*frameLower:
		f.top = y - h*frameLower
	}
}

// viewport maps world units to screen cells below the HUD row.
type viewport struct {
	top    float64
	xScale float64
	yScale float64
	rows   int
}

func newViewport(top float64, snap Snapshot, dst *core.Screen) viewport {
	rows := dst.Height() - 1
	return viewport{
		top:    top,
		xScale: float64(dst.Width()) / snap.WorldW,
		yScale: float64(rows) / snap.WorldH,
		rows:   rows,
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.xScale))
}

// row returns the screen row for world y, offset by one for the HUD.
func (v viewport) row(y float64) int {
	return int(math.Floor((y-v.top)*v.yScale)) + 1
}

func (v viewport) visible(row int) bool {
	return row >= 1 && row <= v.rows
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil || dst.Width() == 0 || dst.Height() < 2 {
		return
	}

	snap := g.session.Snapshot()
	v := newViewport(g.frame.top, snap, dst)

	g.drawBackground(dst, snap, v)
	g.drawFinishLine(dst, snap, v)
	for _, p := range snap.Platforms {
		g.drawPlatform(dst, p, v)
	}
	for _, t := range snap.Body.Trail {
		if r := v.row(t.Y); v.visible(r) && t.Alpha > 0.3 {
			dst.SetColored(v.col(t.X), r, TrailChar, core.ColorBlue)
		}
	}
	for _, p := range snap.Particles {
		g.drawParticle(dst, p, v)
	}
	g.drawBody(dst, snap.Body, v)
	for _, pr := range snap.Predictions {
		if r := v.row(pr.Y + snap.Body.H); v.visible(r) {
			dst.SetColored(v.col(pr.X+snap.Body.W/2), r, PredictChar, core.ColorRed)
		}
	}

	g.drawHUD(dst, snap)

	switch snap.State {
	case StateMenu:
		drawCenteredMessage(dst, "SKY CLIMB", "Enter/Space to start  |  A/D or arrows to steer")
	case StatePaused:
		drawCenteredMessage(dst, "PAUSED", "P to resume  |  B for menu")
	case StateGameOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  R to restart, B for menu", snap.Score))
	case StateGameWin:
		drawCenteredMessage(dst, fmt.Sprintf("LEVEL %d COMPLETE", snap.Level),
			fmt.Sprintf("Level: %d  Total: %d  |  Enter for next level, B for menu", snap.LevelScore, snap.TotalScore))
	}
}

// drawBackground scrolls a sparse star field with the background offset.
func (g *Game) drawBackground(dst *core.Screen, snap Snapshot, v viewport) {
	const stars = 16
	for i := 0; i < stars; i++ {
		x := (i*37 + 11) % dst.Width()
		y := math.Mod(float64(i*113)+snap.Background, snap.WorldH)
		if r := int(y*v.yScale) + 1; v.visible(r) {
			dst.SetColored(x, r, StarChar, core.ColorGray)
		}
	}
}

func (g *Game) drawFinishLine(dst *core.Screen, snap Snapshot, v viewport) {
	if r := v.row(snap.FinishLine); v.visible(r) {
		dst.DrawHLine(0, r, dst.Width(), FinishChar, core.ColorBrightYellow)
	}
}

func (g *Game) drawPlatform(dst *core.Screen, p Platform, v viewport) {
	r := v.row(p.Y)
	if !v.visible(r) {
		return
	}

	glyph, color := StandardChar, core.ColorGreen
	switch p.Type {
	case PlatformMoving:
		glyph, color = MovingChar, core.ColorCyan
	case PlatformBreakable:
		glyph, color = BreakableChar, core.ColorOrange
	case PlatformSpring:
		glyph, color = SpringChar, core.ColorMagenta
		if p.Compression != 0 {
			glyph = SpringSquash
		}
	case PlatformCloud:
		glyph, color = CloudChar, core.ColorWhite
	}

	x0, x1 := v.col(p.X), v.col(p.X+p.W)
	dst.DrawHLine(x0, r, core.Max(1, x1-x0), glyph, color)
}

func (g *Game) drawParticle(dst *core.Screen, p Particle, v viewport) {
	r := v.row(p.Y)
	if !v.visible(r) {
		return
	}
	glyph, color := '.', core.ColorBrightGreen
	if p.Kind == ParticleSpring {
		glyph, color = '*', core.ColorBrightMagenta
	}
	dst.SetColored(v.col(p.X), r, glyph, color)
}

func (g *Game) drawBody(dst *core.Screen, b Body, v viewport) {
	top := v.row(b.Y)
	bottom := core.Max(top+1, v.row(b.Y+b.H*b.BounceScale))
	x0, x1 := v.col(b.X), core.Max(v.col(b.X)+1, v.col(b.X+b.W))
	for r := top; r < bottom; r++ {
		if !v.visible(r) {
			continue
		}
		for x := x0; x < x1; x++ {
			dst.SetColored(x, r, BodyChar, core.ColorBrightYellow)
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" Score: %d  Best: %d  Level: %d  Tier: %d ",
		snap.Score, snap.HighScore, snap.Level, snap.Tier)
	dst.DrawTextColored(1, 0, hud, core.ColorBrightWhite)

	if g.session.Debug() {
		dbg := fmt.Sprintf(" y=%.0f vy=%.1f cam=%.0f dt=%s ",
			snap.Body.Y, snap.Body.VY, snap.CameraY, snap.FrameDelta.Round(time.Millisecond))
		dst.DrawTextColored(dst.Width()-len(dbg)-1, 0, dbg, core.ColorGray)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
