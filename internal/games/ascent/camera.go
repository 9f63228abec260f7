package ascent

import "github.com/vovakirdan/skyclimb/internal/config"

// Camera is the authoritative view offset. It eases toward a target kept
// above the body but only ever moves down the world, and never above 0.
type Camera struct {
	X, Y float64

	smoothing float64
	offset    float64
}

// NewCamera creates a camera at the origin.
func NewCamera(cfg config.CameraConfig) *Camera {
	return &Camera{smoothing: cfg.Smoothing, offset: cfg.FollowOffset}
}

// Follow eases the camera toward bodyY - offset*viewportH.
func (c *Camera) Follow(bodyY, viewportH float64) {
	target := bodyY - viewportH*c.offset
	if target > c.Y {
		c.Y += (target - c.Y) * c.smoothing
	}
	if c.Y < 0 {
		c.Y = 0
	}
}

// Reset returns the camera to the origin.
func (c *Camera) Reset() {
	c.X, c.Y = 0, 0
}
