package skip

import (
	"math"

	"github.com/vovakirdan/skipstone/internal/config"
	"github.com/vovakirdan/skipstone/internal/core"
)

// Stats are the upgrade-derived properties of the stone. The shop raises
// them between runs and keeps them inside their documented bounds.
type Stats struct {
	Value        float64 // impact mass multiplier
	Weight       float64
	Bounciness   float64 // [0,1)
	Aerodynamics float64 // (0,1]; closer to 1 = less drag
	MaxPower     float64 // launch speed cap
}

// StatsFromConfig returns the base stats defined by the game config.
func StatsFromConfig(pc config.PlayerConfig) Stats {
	return Stats{
		Value:        pc.Value,
		Weight:       pc.Weight,
		Bounciness:   pc.Bounciness,
		Aerodynamics: pc.Aerodynamics,
		MaxPower:     pc.MaxPower,
	}
}

// Profile is the persisted part of the player: the wallet and the stats
// derived from purchased upgrades. The persistence collaborator supplies it
// before the first run.
type Profile struct {
	Stats    Stats
	Currency int
}

// Player is the stone's kinematic state. World coordinates, y grows
// downward; the water line is y = 0, so airborne means negative y.
type Player struct {
	X, Y   float64
	VX, VY float64
	Rot    float64 // rotation angle, radians
	VR     float64 // angular velocity
	Radius float64 // base + weight*scale, fixed for the run
	Stats  Stats
}

// Speed returns the magnitude of the linear velocity.
func (p *Player) Speed() float64 {
	return math.Hypot(p.VX, p.VY)
}

// SanitizeKinematics replaces any non-finite kinematic component with a safe
// default. Runs every tick; anomalies degrade gracefully instead of
// poisoning the loop.
func (p *Player) SanitizeKinematics() {
	p.X = core.Sanitize(p.X, 0)
	p.Y = core.Sanitize(p.Y, -p.Radius)
	p.VX = core.Sanitize(p.VX, 0)
	p.VY = core.Sanitize(p.VY, 0)
	p.Rot = core.Sanitize(p.Rot, 0)
	p.VR = core.Sanitize(p.VR, 0)
}
