// Package config provides YAML-based game configuration loading and
// difficulty management for the skipstone platform.
package config

// SkipConfig contains all tuning for the stone-skipping game.
type SkipConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Water      WaterConfig      `yaml:"water"`
	Launch     LaunchConfig     `yaml:"launch"`
	Targets    TargetsConfig    `yaml:"targets"`
	Camera     CameraConfig     `yaml:"camera"`
	Player     PlayerConfig     `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PhysicsConfig defines the per-tick integration parameters.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`          // downward accel per tick, scaled by weight
	AirDrag        float64 `yaml:"air_drag"`         // multiplicative velocity decay per tick
	MaxUpwardSpeed float64 `yaml:"max_upward_speed"` // cap on upward (negative) vertical speed
	SpinDecay      float64 `yaml:"spin_decay"`       // angular velocity decay per tick
	RestSpeed      float64 `yaml:"rest_speed"`       // below this the stone counts as resting
	RestTicks      int     `yaml:"rest_ticks"`       // consecutive slow ticks before control returns
	SinkGravity    float64 `yaml:"sink_gravity"`     // reduced gravity while sinking
	SinkDrag       float64 `yaml:"sink_drag"`        // horizontal decay while sinking
	SinkDepth      float64 `yaml:"sink_depth"`       // world y below which the run ends
	SinkStopSpeed  float64 `yaml:"sink_stop_speed"`  // |vx| below which the run ends while sinking
}

// WaterConfig defines water surface contact behavior.
type WaterConfig struct {
	SkipMinSpeed float64 `yaml:"skip_min_speed"` // speed at or above this skips off the surface
	FloatMaxFall float64 `yaml:"float_max_fall"` // |vy| below this lands softly instead of sinking
	Restitution  float64 `yaml:"restitution"`    // vertical bounce factor on a water skip
	SkipDrag     float64 `yaml:"skip_drag"`      // horizontal decay on a water skip
	FloatDrag    float64 `yaml:"float_drag"`     // horizontal decay while floating
	RestSpeed    float64 `yaml:"rest_speed"`     // |vx| below this while floating rests the stone
}

// LaunchConfig defines how a drag gesture converts to launch velocity.
type LaunchConfig struct {
	PowerScale      float64 `yaml:"power_scale"`      // gesture units to velocity
	MinDragDist     float64 `yaml:"min_drag_dist"`    // shorter drags are ignored
	MaxDragDist     float64 `yaml:"max_drag_dist"`    // full-power pull distance
	MinUpward       float64 `yaml:"min_upward"`       // minimum upward bias on near-flat drags
	MinHorizontal   float64 `yaml:"min_horizontal"`   // horizontal launch speed floor
	PerfectFraction float64 `yaml:"perfect_fraction"` // fraction of max pull that counts as perfect
	PerfectBonus    float64 `yaml:"perfect_bonus"`    // velocity multiplier on a perfect pull
	DiveImpulse     float64 `yaml:"dive_impulse"`     // downward impulse on the dive action
}

// TargetsConfig defines the target stream parameters.
type TargetsConfig struct {
	SpawnGapMin     float64 `yaml:"spawn_gap_min"`    // min horizontal gap between spawns
	SpawnGapMax     float64 `yaml:"spawn_gap_max"`    // max horizontal gap between spawns
	MaxLive         int     `yaml:"max_live"`         // live target cap; oldest evicted beyond this
	Lookahead       float64 `yaml:"lookahead"`        // margin past the viewport to keep populated
	BaseRadius      float64 `yaml:"base_radius"`      // target radius before per-type scaling
	CollisionBand   float64 `yaml:"collision_band"`   // x pre-filter half-width for collision tests
	BobAmplitude    float64 `yaml:"bob_amplitude"`    // idle vertical bob of floating targets
	GhostVisibility float64 `yaml:"ghost_visibility"` // opacity below which ghosts are intangible
}

// CameraConfig defines viewport pursuit and shake behavior.
type CameraConfig struct {
	LeadOffset   float64 `yaml:"lead_offset"`   // keeps the stone this far from the left edge
	Smoothing    float64 `yaml:"smoothing"`     // fraction of remaining distance closed per tick
	UpperMargin  float64 `yaml:"upper_margin"`  // viewport fraction above which the camera lifts
	LowerMargin  float64 `yaml:"lower_margin"`  // viewport fraction below which it eases back
	ShakeDecay   float64 `yaml:"shake_decay"`   // multiplicative shake decay per tick
	ShakeMax     float64 `yaml:"shake_max"`     // cap on shake magnitude
	ShakeEpsilon float64 `yaml:"shake_epsilon"` // shake snaps to zero below this
}

// PlayerConfig defines the stone's default stats and radius derivation.
// The shop raises the stats between runs; radius = base + weight*per_weight.
type PlayerConfig struct {
	BaseRadius      float64 `yaml:"base_radius"`
	RadiusPerWeight float64 `yaml:"radius_per_weight"`
	Value           float64 `yaml:"value"`
	Weight          float64 `yaml:"weight"`
	Bounciness      float64 `yaml:"bounciness"`
	Aerodynamics    float64 `yaml:"aerodynamics"`
	MaxPower        float64 `yaml:"max_power"`
}

// DifficultyConfig defines the distance-driven difficulty progression.
// The difficulty scalar is 1 + initial_level + distance/scale_distance and
// never decreases within a run.
type DifficultyConfig struct {
	Enabled       bool    `yaml:"enabled"`
	InitialLevel  float64 `yaml:"initial_level"`  // preset head start added to the scalar
	ScaleDistance float64 `yaml:"scale_distance"` // world units per +1.0 difficulty
	MovingAt      float64 `yaml:"moving_at"`      // scalar that unlocks MOVING targets
	MultiHitAt    float64 `yaml:"multi_hit_at"`   // scalar that unlocks MULTI_HIT targets
	GhostAt       float64 `yaml:"ghost_at"`       // scalar that unlocks GHOST targets
	BoostBelow    float64 `yaml:"boost_below"`    // extra BOOST frequency below this scalar
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
