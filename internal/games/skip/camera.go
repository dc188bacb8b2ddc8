package skip

import (
	"github.com/vovakirdan/skipstone/internal/config"
)

// waterScreenFraction is where the water line sits in the viewport,
// measured from the top. Shared by the camera's vertical margins and the
// renderer's world-to-screen mapping.
const waterScreenFraction = 0.75

// Camera is the smoothed viewport offset following the stone, plus a
// decaying shake magnitude. Rebuilt each run, never persisted.
type Camera struct {
	X     float64 // horizontal world offset, never negative
	Y     float64 // vertical world offset, never positive (water never rises)
	Shake float64
}

// Follow advances the camera one tick toward the stone at (px, py).
// Horizontal: exponential pursuit of px minus the lead offset. Vertical:
// lift immediately when the stone climbs past the upper margin, ease back
// toward zero once it drops below the lower margin.
func (c *Camera) Follow(px, py, viewW, viewH float64, cfg config.CameraConfig) {
	target := px - cfg.LeadOffset
	c.X += (target - c.X) * cfg.Smoothing
	if c.X < 0 {
		c.X = 0
	}

	// Margins expressed as world y relative to the camera; the water line
	// renders at waterScreenFraction of the viewport height.
	upper := -(waterScreenFraction - cfg.UpperMargin) * viewH
	lower := -(waterScreenFraction - cfg.LowerMargin) * viewH

	rel := py - c.Y
	if rel < upper {
		c.Y += (rel - upper) * 0.2
	} else if rel > lower && c.Y < 0 {
		c.Y += -c.Y * cfg.Smoothing
	}
	if c.Y > 0 {
		c.Y = 0
	}

	c.Shake *= cfg.ShakeDecay
	if c.Shake < cfg.ShakeEpsilon {
		c.Shake = 0
	}
}

// AddShake raises the shake magnitude to the given value, capped.
// Existing stronger shake wins.
func (c *Camera) AddShake(mag float64, cfg config.CameraConfig) {
	if mag > cfg.ShakeMax {
		mag = cfg.ShakeMax
	}
	if mag > c.Shake {
		c.Shake = mag
	}
}
