package config

import (
	_ "embed"
)

//go:embed defaults/skip.yaml
var defaultSkipYAML []byte

// DefaultSkipConfig returns the default game configuration.
// Tuned for playability at 60 ticks per second.
func DefaultSkipConfig() SkipConfig {
	return SkipConfig{
		Physics: PhysicsConfig{
			Gravity:        0.25,
			AirDrag:        0.995,
			MaxUpwardSpeed: 30.0,
			SpinDecay:      0.98,
			RestSpeed:      0.15,
			RestTicks:      30,
			SinkGravity:    0.06,
			SinkDrag:       0.92,
			SinkDepth:      120.0,
			SinkStopSpeed:  0.02,
		},
		Water: WaterConfig{
			SkipMinSpeed: 4.0,
			FloatMaxFall: 1.5,
			Restitution:  0.55,
			SkipDrag:     0.97,
			FloatDrag:    0.9,
			RestSpeed:    0.1,
		},
		Launch: LaunchConfig{
			PowerScale:      0.12,
			MinDragDist:     12.0,
			MaxDragDist:     220.0,
			MinUpward:       2.0,
			MinHorizontal:   1.5,
			PerfectFraction: 0.95,
			PerfectBonus:    1.2,
			DiveImpulse:     6.0,
		},
		Targets: TargetsConfig{
			SpawnGapMin:     70.0,
			SpawnGapMax:     150.0,
			MaxLive:         30,
			Lookahead:       200.0,
			BaseRadius:      8.0,
			CollisionBand:   60.0,
			BobAmplitude:    1.5,
			GhostVisibility: 0.3,
		},
		Camera: CameraConfig{
			LeadOffset:   180.0,
			Smoothing:    0.08,
			UpperMargin:  0.25,
			LowerMargin:  0.6,
			ShakeDecay:   0.88,
			ShakeMax:     6.0,
			ShakeEpsilon: 0.01,
		},
		Player: PlayerConfig{
			BaseRadius:      4.0,
			RadiusPerWeight: 1.0,
			Value:           10.0,
			Weight:          1.0,
			Bounciness:      0.7,
			Aerodynamics:    0.99,
			MaxPower:        25.0,
		},
		Difficulty: DifficultyConfig{
			Enabled:       true,
			InitialLevel:  0.0,
			ScaleDistance: 1500.0,
			MovingAt:      1.3,
			MultiHitAt:    1.8,
			GhostAt:       2.5,
			BoostBelow:    1.5,
		},
	}
}
