package skip

import (
	"math"

	"github.com/vovakirdan/skipstone/internal/core"
)

// TargetType discriminates target behavior. Type-specific fields on Target
// (HitsLeft, MoveRange, MoveSpeed) are only set by the matching constructor;
// the generator never produces invalid combinations.
type TargetType int

const (
	TargetNormal TargetType = iota
	TargetBoost             // light; grants a speed boost when skipped
	TargetBlock             // heavy, high resistance
	TargetCoin              // always skippable, pays out currency
	TargetMultiHit          // needs several hits before it sinks
	TargetMoving            // oscillates vertically
	TargetGhost             // periodically intangible
)

// String returns a short name for the target type.
func (t TargetType) String() string {
	switch t {
	case TargetNormal:
		return "normal"
	case TargetBoost:
		return "boost"
	case TargetBlock:
		return "block"
	case TargetCoin:
		return "coin"
	case TargetMultiHit:
		return "multi_hit"
	case TargetMoving:
		return "moving"
	case TargetGhost:
		return "ghost"
	default:
		return "unknown"
	}
}

// Target is a floating numbered disc in the stream. X is fixed at spawn;
// the rendered y is the water surface plus bob/move oscillation.
type Target struct {
	ID     int
	X      float64
	Value  float64
	Weight float64
	Radius float64
	Type   TargetType
	Color  core.Color
	Sunk   bool // terminal; sunk targets stay in the window until evicted

	// MULTI_HIT: remaining hits before the final one marks it sunk.
	HitsLeft int

	// MOVING: vertical oscillation amplitude and angular speed.
	MoveRange float64
	MoveSpeed float64
}

// Resistance is the denominator side of the impact comparison.
func (t *Target) Resistance() float64 {
	return t.Value * t.Weight
}

// SurfaceY returns the target center's current world y: surface level plus
// the idle bob, plus the MOVING oscillation. Phase is seeded from the
// target's fixed x so the shared clock yields stable, varied motion.
func (t *Target) SurfaceY(clock, bobAmplitude float64) float64 {
	y := math.Sin(clock*2+t.X*0.05) * bobAmplitude
	if t.Type == TargetMoving {
		y += math.Sin(clock*t.MoveSpeed+t.X*0.01) * t.MoveRange
	}
	return y
}

// Opacity returns the ghost visibility phase in [0,1]. Non-ghost targets are
// always fully opaque.
func (t *Target) Opacity(clock float64) float64 {
	if t.Type != TargetGhost {
		return 1.0
	}
	return 0.5 + 0.5*math.Sin(clock*2+t.X*0.1)
}

// Tangible reports whether the target can be collided with right now.
// Ghosts are intangible while their opacity is below the visibility
// threshold.
func (t *Target) Tangible(clock, visibility float64) bool {
	return t.Opacity(clock) >= visibility
}
