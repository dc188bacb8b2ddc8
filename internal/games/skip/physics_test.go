package skip

import (
	"math"
	"testing"
)

func TestIntegrateFlyingAppliesGravityAndDrag(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	g.mode = ModeFlying

	g.player.X = 100
	g.player.Y = -50
	g.player.VX = 10
	g.player.VY = 0

	g.integrateFlying()

	if g.player.VY <= 0 {
		t.Errorf("gravity should pull downward, vy=%f", g.player.VY)
	}
	if g.player.VX >= 10 {
		t.Errorf("drag should slow horizontal motion, vx=%f", g.player.VX)
	}
	if g.player.X <= 100 {
		t.Errorf("position should advance, x=%f", g.player.X)
	}
}

func TestIntegrateFlyingCapsUpwardSpeed(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	g.mode = ModeFlying

	g.player.Y = -50
	g.player.VY = -5000

	g.integrateFlying()

	cap := g.tuning.Physics.MaxUpwardSpeed
	if g.player.VY < -cap {
		t.Errorf("upward speed %f exceeds cap %f", -g.player.VY, cap)
	}
}

func TestIntegrateFlyingSanitizesNaN(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	g.mode = ModeFlying

	g.player.VX = math.NaN()
	g.player.VY = math.Inf(1)
	g.player.Y = math.NaN()

	g.integrateFlying()

	p := g.player
	for _, v := range []float64{p.X, p.Y, p.VX, p.VY, p.Rot, p.VR} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("sanitize failed, kinematics %+v", p)
		}
	}
}

func TestRestDetectionReturnsControl(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	g.mode = ModeFlying

	// Park the stone floating on the surface: water contact each tick keeps
	// the fall from ever accumulating, so speed stays under the threshold.
	g.player.Y = -g.player.Radius
	g.player.VX = 0.01
	g.player.VY = 0

	ticks := 0
	for g.mode == ModeFlying && ticks < g.tuning.Physics.RestTicks*3 {
		g.integrateFlying()
		if g.mode == ModeFlying {
			g.resolveCollisions()
		}
		ticks++
	}

	if g.Mode() != ModeAiming {
		t.Fatalf("a still stone should rest into AIMING, got %s after %d ticks", g.Mode(), ticks)
	}
	if g.player.VX != 0 || g.player.VY != 0 || g.player.VR != 0 {
		t.Error("rest should zero all velocities")
	}
}

func TestRestCounterResetsOnMotion(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	g.mode = ModeFlying
	g.player.Y = -200 // far above water, no contact

	g.player.VX = 0.01
	g.player.VY = 0
	g.detectRest()
	if g.restTicks != 1 {
		t.Fatalf("expected rest counter 1, got %d", g.restTicks)
	}

	g.player.VX = 5
	g.detectRest()
	if g.restTicks != 0 {
		t.Errorf("motion should reset the rest counter, got %d", g.restTicks)
	}
}

func TestIntegrateSinkingEndsAtDepth(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	g.mode = ModeFlying
	g.player.VX = 1
	g.player.VY = 2
	g.beginSink()

	if g.Mode() != ModeSinking {
		t.Fatalf("expected SINKING, got %s", g.Mode())
	}

	for i := 0; i < 5000 && g.mode == ModeSinking; i++ {
		g.integrateSinking()
	}

	if g.Mode() != ModeGameOver {
		t.Fatalf("sinking must terminate in GAME_OVER, got %s", g.Mode())
	}
	if g.player.Y <= 0 {
		t.Errorf("the stone should end below the surface, y=%f", g.player.Y)
	}
}

func TestSinkingIgnoresTargets(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	g.mode = ModeFlying
	g.stream.targets = []*Target{
		{ID: 1, X: 100, Value: 5, Weight: 1, Radius: 50, Type: TargetNormal},
	}
	g.player.X = 100
	g.player.VX = 1
	g.beginSink()

	g.integrateSinking()

	if g.stats.Skips != 0 {
		t.Error("no collisions may happen while sinking")
	}
	if g.stream.targets[0].Sunk {
		t.Error("targets must be untouched while the stone sinks")
	}
}
