package config

import "math"

// DifficultyManager derives the difficulty scalar from distance travelled
// and answers which target types are unlocked at the current scalar.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the preset head start (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Scalar returns the difficulty scalar for the given distance travelled.
// Monotonically non-decreasing with distance: 1 + head start + distance
// over scale_distance. With progression disabled the distance term is
// dropped and the scalar stays at its initial value.
func (d *DifficultyManager) Scalar(distance float64) float64 {
	base := 1.0 + d.initialLevel
	if !d.cfg.Enabled {
		return base
	}

	scale := d.cfg.ScaleDistance
	if scale <= 0 {
		scale = 1 // Prevent division by zero
	}
	return base + math.Max(0, distance)/scale
}

// AllowMoving reports whether MOVING targets may spawn at the scalar.
func (d *DifficultyManager) AllowMoving(scalar float64) bool {
	return scalar >= d.cfg.MovingAt
}

// AllowMultiHit reports whether MULTI_HIT targets may spawn at the scalar.
func (d *DifficultyManager) AllowMultiHit(scalar float64) bool {
	return scalar >= d.cfg.MultiHitAt
}

// AllowGhost reports whether GHOST targets may spawn at the scalar.
func (d *DifficultyManager) AllowGhost(scalar float64) bool {
	return scalar >= d.cfg.GhostAt
}

// BoostFavored reports whether the beginner BOOST bias applies at the scalar.
func (d *DifficultyManager) BoostFavored(scalar float64) bool {
	return scalar < d.cfg.BoostBelow
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
