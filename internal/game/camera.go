package game

import (
	"math"

	"redgrid/internal/config"
	"redgrid/internal/mathutil"
)

// Camera is the top-left corner of the viewport in world units. The player can
// move freely inside the dead zone; past it the camera follows.
type Camera struct {
	X, Y         float64
	ViewW, ViewH float64
	deadMin      float64
	deadMax      float64
}

func NewCamera(viewW, viewH float64, cfg config.CameraConfig) *Camera {
	return &Camera{ViewW: viewW, ViewH: viewH, deadMin: cfg.DeadZoneMin, deadMax: cfg.DeadZoneMax}
}

// SetViewport updates the viewport size after a window resize.
func (c *Camera) SetViewport(w, h float64) {
	c.ViewW, c.ViewH = w, h
}

// Center puts target in the middle of the view, clamped to the world.
func (c *Camera) Center(target mathutil.Vec2, worldW, worldH float64) {
	c.X = target.X - c.ViewW/2
	c.Y = target.Y - c.ViewH/2
	c.clamp(worldW, worldH)
}

// Follow shifts the camera just enough to bring target back inside the dead zone.
func (c *Camera) Follow(target mathutil.Vec2, worldW, worldH float64) {
	c.X = followAxis(c.X, target.X, c.ViewW, c.deadMin, c.deadMax)
	c.Y = followAxis(c.Y, target.Y, c.ViewH, c.deadMin, c.deadMax)
	c.clamp(worldW, worldH)
}

func followAxis(cam, target, view, lo, hi float64) float64 {
	rel := target - cam
	switch {
	case rel < lo*view:
		return target - lo*view
	case rel > hi*view:
		return target - hi*view
	}
	return cam
}

func (c *Camera) clamp(worldW, worldH float64) {
	c.X = math.Max(0, math.Min(c.X, math.Max(0, worldW-c.ViewW)))
	c.Y = math.Max(0, math.Min(c.Y, math.Max(0, worldH-c.ViewH)))
}

// ToScreen maps a world position into viewport pixels.
func (c *Camera) ToScreen(p mathutil.Vec2) (float64, float64) {
	return p.X - c.X, p.Y - c.Y
}

// Visible reports whether a square of the given half extent around p overlaps the view.
func (c *Camera) Visible(p mathutil.Vec2, half float64) bool {
	return p.X+half >= c.X && p.X-half <= c.X+c.ViewW &&
		p.Y+half >= c.Y && p.Y-half <= c.Y+c.ViewH
}
