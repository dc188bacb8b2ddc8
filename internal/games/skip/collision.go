package skip

import (
	"fmt"
	"math"

	"github.com/vovakirdan/skipstone/internal/core"
)

// Resolution tuning that is policy, not physics, and therefore not exposed
// through the config file.
const (
	smashThreshold = 3.0 // impact force must strictly exceed this multiple of resistance
	smashBonus     = 500
	smashDamp      = 0.9 // only velocity loss a smash applies; no positional correction
	bouncePop      = 2.0 // extra upward kick on every ordinary skip
	frictionFloor  = 0.8
	spinFactor     = 0.1 // angular velocity as a fraction of horizontal velocity
	boostFactor    = 1.3
	boostLift      = 3.0
	coinReward     = 10
	skipReward     = 1
	sinkDamp       = 0.3
	sinkDownSpeed  = 1.0
	scorePerValue  = 10.0
	comboStep      = 0.1
	shakeScale     = 0.02 // impact force to camera shake
)

// hitKind classifies a target contact.
type hitKind int

const (
	hitSkip hitKind = iota
	hitSmash
	hitSink
)

// classifyImpact applies the resolution policy in priority order: COIN
// always skips; force strictly above three times resistance smashes; force
// strictly above resistance skips; anything else sinks. Ties sink.
func classifyImpact(force, resistance float64, typ TargetType) hitKind {
	if typ == TargetCoin {
		return hitSkip
	}
	if force > resistance*smashThreshold {
		return hitSmash
	}
	if force > resistance {
		return hitSkip
	}
	return hitSink
}

// resolveCollisions runs the per-tick contact pass: at most one target
// collision (first match in x order wins), and a water contact only if no
// target was hit.
func (g *Game) resolveCollisions() {
	if g.resolveTargets() {
		return
	}
	g.resolveWater()
}

// resolveTargets scans the stream for the first tangible target overlapping
// the stone and resolves it. Returns whether a contact happened.
func (g *Game) resolveTargets() bool {
	p := &g.player
	tc := g.tuning.Targets

	for _, t := range g.stream.Targets() {
		// Cheap x-band pre-filter before the exact distance check.
		if math.Abs(t.X-p.X) > tc.CollisionBand {
			continue
		}
		if t.Sunk {
			continue
		}
		if !t.Tangible(g.clock, tc.GhostVisibility) {
			continue
		}

		ty := t.SurfaceY(g.clock, tc.BobAmplitude)
		if core.Dist(p.X, p.Y, t.X, ty) > p.Radius+t.Radius {
			continue
		}

		g.resolveHit(t, ty)
		return true
	}
	return false
}

// resolveHit applies the smash/skip/sink policy to a confirmed contact.
func (g *Game) resolveHit(t *Target, ty float64) {
	p := &g.player
	force := p.Speed() * p.Stats.Value * p.Stats.Weight
	resistance := t.Resistance()

	switch classifyImpact(force, resistance, t.Type) {
	case hitSmash:
		// Tunnel straight through: no positional correction, reduced
		// velocity loss only.
		p.VY *= smashDamp
		t.Sunk = true
		g.stats.Score += smashBonus
		g.camera.AddShake(force*shakeScale, g.tuning.Camera)
		g.particles.Burst(t.X, ty, 10, t.Color)
		g.addFloater(t.X, ty-10, fmt.Sprintf("SMASH +%d", smashBonus), core.ColorBrightRed)
		g.emit(core.Event{Kind: core.EventSmash, X: t.X, Y: ty, Amount: smashBonus})

	case hitSkip:
		if t.Type == TargetMultiHit && t.HitsLeft > 1 {
			t.HitsLeft--
			g.emit(core.Event{Kind: core.EventMultiHit, X: t.X, Y: ty, Amount: t.HitsLeft})
		} else {
			t.Sunk = true
			if t.Type == TargetMultiHit {
				g.emit(core.Event{Kind: core.EventBreak, X: t.X, Y: ty})
			}
		}
		g.bounceOff(t, ty, force, resistance)
		g.scoreSkip(t, ty)

	case hitSink:
		g.beginSink()
		g.particles.Splash(p.X, 0, 8)
		g.emit(core.Event{Kind: core.EventSink, X: p.X, Y: p.Y})
	}
}

// bounceOff applies the ordinary skip response: invert and scale vertical
// velocity, push the stone out along the overlap, apply floored friction,
// and spin proportional to the resulting horizontal velocity.
func (g *Game) bounceOff(t *Target, ty, force, resistance float64) {
	p := &g.player

	p.VY = -math.Abs(p.VY)*p.Stats.Bounciness - bouncePop

	// Positional correction: move out along the center line until the
	// circles no longer intersect.
	dx, dy := p.X-t.X, p.Y-ty
	dist := math.Hypot(dx, dy)
	overlap := p.Radius + t.Radius - dist
	if dist > 0 && overlap > 0 {
		p.X += dx / dist * overlap
		p.Y += dy / dist * overlap
	}

	friction := math.Max(frictionFloor, 1-resistance/(force*5))
	p.VX *= friction
	p.VR = p.VX * spinFactor
}

// scoreSkip books a successful skip: combo, score, currency, and the BOOST
// side effect.
func (g *Game) scoreSkip(t *Target, ty float64) {
	p := &g.player

	g.stats.Skips++
	g.stats.Combo++
	if g.stats.Combo > g.stats.BestCombo {
		g.stats.BestCombo = g.stats.Combo
	}

	gained := int(math.Floor(t.Value * scorePerValue * (1 + float64(g.stats.Combo)*comboStep)))
	g.stats.Score += gained

	switch t.Type {
	case TargetCoin:
		g.stats.Currency += coinReward
		g.addFloater(t.X, ty-8, fmt.Sprintf("+%d coins", coinReward), core.ColorBrightYellow)
		g.emit(core.Event{Kind: core.EventCoin, X: t.X, Y: ty, Amount: coinReward})
	default:
		g.stats.Currency += skipReward
	}

	if t.Type == TargetBoost {
		p.VX *= boostFactor
		p.VY -= boostLift
		g.emit(core.Event{Kind: core.EventBoost, X: t.X, Y: ty})
	}

	g.camera.AddShake(p.Speed()*0.1, g.tuning.Camera)
	g.addFloater(t.X, ty-6, fmt.Sprintf("+%d", gained), core.ColorBrightGreen)
	g.emit(core.Event{Kind: core.EventSkip, X: t.X, Y: ty, Amount: gained})
}

// beginSink transitions to SINKING: heavily damped horizontal velocity, a
// small downward push, combo gone.
func (g *Game) beginSink() {
	p := &g.player
	p.VX *= sinkDamp
	p.VY = sinkDownSpeed
	g.stats.Combo = 0
	g.transition(ModeSinking)
}

// waterContact classifies a water-line contact.
type waterContact int

const (
	waterSkip waterContact = iota
	waterFloat
	waterSink
)

// classifyWaterContact picks the surface response: fast enough and moving
// downward skips (threshold inclusive); a gentle fall floats; anything else
// sinks.
func classifyWaterContact(speed, vy, skipMinSpeed, floatMaxFall float64) waterContact {
	if speed >= skipMinSpeed && vy > 0 {
		return waterSkip
	}
	if math.Abs(vy) < floatMaxFall {
		return waterFloat
	}
	return waterSink
}

// resolveWater handles the stone's lower edge reaching the water line when
// no target absorbed the tick's contact.
func (g *Game) resolveWater() {
	p := &g.player
	if p.Y+p.Radius < 0 {
		return
	}

	w := g.tuning.Water
	switch classifyWaterContact(p.Speed(), p.VY, w.SkipMinSpeed, w.FloatMaxFall) {
	case waterSkip:
		p.Y = -p.Radius
		p.VY = -math.Abs(p.VY) * w.Restitution
		p.VX *= w.SkipDrag
		g.stats.Combo = 0
		g.camera.AddShake(p.Speed()*0.15, g.tuning.Camera)
		g.particles.Splash(p.X, 0, 6)
		g.emit(core.Event{Kind: core.EventWaterSkip, X: p.X, Y: 0})

	case waterFloat:
		p.Y = -p.Radius
		p.VY = 0
		p.VX *= w.FloatDrag
		g.stats.Combo = 0
		if math.Abs(p.VX) < w.RestSpeed {
			p.VX, p.VY, p.VR = 0, 0, 0
			if g.transition(ModeAiming) {
				g.emit(core.Event{Kind: core.EventRest, X: p.X, Y: 0})
			}
		} else {
			g.emit(core.Event{Kind: core.EventFloat, X: p.X, Y: 0})
		}

	case waterSink:
		g.beginSink()
		g.particles.Splash(p.X, 0, 10)
		g.emit(core.Event{Kind: core.EventSink, X: p.X, Y: 0})
	}
}
