package skip

import (
	"math"
	"testing"

	"github.com/vovakirdan/skipstone/internal/core"
)

func TestClassifyImpact(t *testing.T) {
	tests := []struct {
		name       string
		force      float64
		resistance float64
		typ        TargetType
		want       hitKind
	}{
		{"force well above resistance skips", 50, 10, TargetNormal, hitSkip},
		{"force just above triple smashes", 30.003, 10, TargetNormal, hitSmash},
		{"force exactly triple only skips", 30, 10, TargetNormal, hitSkip},
		{"force just below triple skips", 29.997, 10, TargetNormal, hitSkip},
		{"force below resistance sinks", 5, 10, TargetNormal, hitSink},
		{"equal force and resistance sinks", 10, 10, TargetNormal, hitSink},
		{"coin skips regardless of force", 0.001, 10, TargetCoin, hitSkip},
		{"block uses the same thresholds", 10, 10, TargetBlock, hitSink},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyImpact(tt.force, tt.resistance, tt.typ)
			if got != tt.want {
				t.Errorf("classifyImpact(%f, %f, %s) = %d, want %d",
					tt.force, tt.resistance, tt.typ, got, tt.want)
			}
		})
	}
}

func TestClassifyWaterContact(t *testing.T) {
	const (
		minSpeed = 4.0
		maxFall  = 1.5
	)

	tests := []struct {
		name  string
		speed float64
		vy    float64
		want  waterContact
	}{
		{"fast downward skips", 10, 3, waterSkip},
		{"exactly threshold speed skips", 4.0, 3, waterSkip},
		{"fast but rising does not skip", 10, -3, waterSink},
		{"gentle fall floats", 2, 1.0, waterFloat},
		{"gentle rise floats", 2, -1.0, waterFloat},
		{"slow moderate fall sinks", 2, 2.0, waterSink},
		{"exactly max fall sinks", 2, 1.5, waterSink},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyWaterContact(tt.speed, tt.vy, minSpeed, maxFall)
			if got != tt.want {
				t.Errorf("classifyWaterContact(%f, %f) = %d, want %d",
					tt.speed, tt.vy, got, tt.want)
			}
		})
	}
}

// flyingGame returns a game forced into FLYING with a single crafted target
// directly in the stone's path.
func flyingGame(t *testing.T, target *Target) *Game {
	t.Helper()
	g := New()
	g.Reset(testConfig(1))
	g.mode = ModeFlying
	g.stream.targets = []*Target{target}
	return g
}

func TestSkipBouncesAndScores(t *testing.T) {
	// Resistance 50 vs impact force ~112: above 1x, below the 3x smash bar.
	target := &Target{ID: 1, X: 110, Value: 50, Weight: 1.0, Radius: 8, Type: TargetNormal}
	g := flyingGame(t, target)

	g.player.X = 110
	g.player.Y = target.SurfaceY(g.clock, g.tuning.Targets.BobAmplitude) - 6
	g.player.VX = 10
	g.player.VY = 5

	g.resolveCollisions()

	if g.player.VY >= 0 {
		t.Errorf("skip should send the stone upward, vy=%f", g.player.VY)
	}
	if !target.Sunk {
		t.Error("a normal target should sink after one skip")
	}
	if g.stats.Skips != 1 || g.stats.Combo != 1 {
		t.Errorf("skip should book skips=1 combo=1, got %d/%d", g.stats.Skips, g.stats.Combo)
	}
	if g.stats.Score <= 0 {
		t.Error("skip should award score")
	}
	if g.stats.Currency != skipReward {
		t.Errorf("skip should award %d coin, got %d", skipReward, g.stats.Currency)
	}
}

func TestSmashPassesThrough(t *testing.T) {
	// Resistance 2; impact force = speed*value*weight = ~11.2*10 = 112 > 6.
	target := &Target{ID: 1, X: 110, Value: 2, Weight: 1.0, Radius: 8, Type: TargetNormal}
	g := flyingGame(t, target)

	g.player.X = 110
	g.player.Y = -4
	g.player.VX = 10
	g.player.VY = 5

	yBefore := g.player.Y
	g.resolveCollisions()

	if !target.Sunk {
		t.Error("smashed target should be gone")
	}
	if g.player.VY < 0 {
		t.Errorf("smash should not reverse vertical velocity, vy=%f", g.player.VY)
	}
	if g.player.Y != yBefore {
		t.Errorf("smash applies no positional correction, y moved %f -> %f", yBefore, g.player.Y)
	}
	if g.stats.Score != smashBonus {
		t.Errorf("smash should award exactly the bonus, got %d", g.stats.Score)
	}
	if g.stats.Combo != 0 {
		t.Errorf("smash should not touch the combo, got %d", g.stats.Combo)
	}
}

func TestHeavyTargetSinksStone(t *testing.T) {
	// Resistance 200 vs force ~= 2.2*10 = 22: the stone loses.
	target := &Target{ID: 1, X: 110, Value: 100, Weight: 2.0, Radius: 8, Type: TargetBlock}
	g := flyingGame(t, target)

	g.player.X = 110
	g.player.Y = -4
	g.player.VX = 2
	g.player.VY = 1

	g.resolveCollisions()

	if g.Mode() != ModeSinking {
		t.Fatalf("expected SINKING after losing a collision, got %s", g.Mode())
	}
	if g.player.VY <= 0 {
		t.Errorf("sinking stone should move downward, vy=%f", g.player.VY)
	}
	if target.Sunk {
		t.Error("the target survives when the stone sinks")
	}
}

func TestSunkTargetIgnored(t *testing.T) {
	target := &Target{ID: 1, X: 110, Value: 5, Weight: 1.0, Radius: 8, Type: TargetNormal, Sunk: true}
	g := flyingGame(t, target)

	g.player.X = 110
	g.player.Y = 20 // below the water line so the water pass also runs
	g.player.VX = 10
	g.player.VY = 5

	g.resolveCollisions()

	if g.stats.Skips != 0 {
		t.Error("sunk targets must not register collisions")
	}
}

func TestMultiHitTargetTakesTwoHits(t *testing.T) {
	target := &Target{ID: 1, X: 110, Value: 50, Weight: 1.0, Radius: 8, Type: TargetMultiHit, HitsLeft: 2}
	g := flyingGame(t, target)

	hit := func() {
		g.player.X = 110
		g.player.Y = target.SurfaceY(g.clock, g.tuning.Targets.BobAmplitude) - 6
		g.player.VX = 10
		g.player.VY = 5
		g.resolveCollisions()
	}

	hit()
	if target.Sunk {
		t.Fatal("multi-hit target should survive the first skip")
	}
	if target.HitsLeft != 1 {
		t.Errorf("expected 1 hit left, got %d", target.HitsLeft)
	}

	hit()
	if !target.Sunk {
		t.Error("multi-hit target should break on the final skip")
	}
	if g.stats.Skips != 2 {
		t.Errorf("both contacts count as skips, got %d", g.stats.Skips)
	}
}

func TestBoostTargetAcceleratesStone(t *testing.T) {
	target := &Target{ID: 1, X: 110, Value: 3, Weight: 0.5, Radius: 8, Type: TargetBoost}
	g := flyingGame(t, target)

	g.player.X = 110
	g.player.Y = target.SurfaceY(g.clock, g.tuning.Targets.BobAmplitude) - 6
	g.player.VX = 0.4 // force low enough to skip, not smash
	g.player.VY = 0.1

	g.resolveCollisions()

	if !target.Sunk {
		t.Fatal("boost target should be consumed")
	}
	if g.player.VX <= 0.4 {
		t.Errorf("boost should increase forward speed, vx=%f", g.player.VX)
	}
}

func TestCoinAwardsCurrency(t *testing.T) {
	target := &Target{ID: 1, X: 110, Value: 1, Weight: 0.1, Radius: 6, Type: TargetCoin}
	g := flyingGame(t, target)

	g.player.X = 110
	g.player.Y = target.SurfaceY(g.clock, g.tuning.Targets.BobAmplitude) - 5
	g.player.VX = 0.01 // almost no force; coins never sink the stone
	g.player.VY = 0.01

	g.resolveCollisions()

	if g.Mode() != ModeFlying {
		t.Fatalf("coin contact must never sink the stone, got %s", g.Mode())
	}
	if g.stats.Currency != coinReward {
		t.Errorf("coin should award %d currency, got %d", coinReward, g.stats.Currency)
	}
}

func TestWaterSkipResetsCombo(t *testing.T) {
	g := flyingGame(t, &Target{ID: 1, X: 9999, Radius: 1})
	g.stats.Combo = 5

	g.player.X = 200
	g.player.Y = -g.player.Radius + 1
	g.player.VX = 8
	g.player.VY = 4

	g.resolveCollisions()

	if g.Mode() != ModeFlying {
		t.Fatalf("fast water contact should skip, got %s", g.Mode())
	}
	if g.player.VY >= 0 {
		t.Errorf("water skip should send the stone upward, vy=%f", g.player.VY)
	}
	if g.stats.Combo != 0 {
		t.Errorf("water contact resets the combo, got %d", g.stats.Combo)
	}
	if g.player.Y != -g.player.Radius {
		t.Errorf("water skip should rest the stone on the surface, y=%f", g.player.Y)
	}
}

func TestGentleWaterContactFloats(t *testing.T) {
	g := flyingGame(t, &Target{ID: 1, X: 9999, Radius: 1})

	g.player.X = 200
	g.player.Y = -g.player.Radius + 0.5
	g.player.VX = 0.05
	g.player.VY = 1.0

	g.resolveCollisions()

	if g.Mode() != ModeAiming {
		t.Fatalf("a nearly still float should rest into AIMING, got %s", g.Mode())
	}
	if g.player.VX != 0 || g.player.VY != 0 {
		t.Error("rest should zero all velocities")
	}
}

func TestBounceFrictionFloored(t *testing.T) {
	g := flyingGame(t, &Target{ID: 1, X: 9999, Radius: 1})
	target := &Target{ID: 2, X: 110, Value: 100, Weight: 1.0, Radius: 8}

	g.player.X = 110
	g.player.Y = -6
	g.player.VX = 10
	g.player.VY = 1

	// Huge resistance relative to force: friction must still not dip below
	// the floor.
	g.bounceOff(target, 0, 1, 1000)

	if math.Abs(g.player.VX) < 10*frictionFloor-1e-9 {
		t.Errorf("friction went below the floor, vx=%f", g.player.VX)
	}
}

func TestEventsEmittedOnSkip(t *testing.T) {
	target := &Target{ID: 1, X: 110, Value: 5, Weight: 1.0, Radius: 8, Type: TargetNormal}
	g := flyingGame(t, target)

	g.player.X = 110
	g.player.Y = target.SurfaceY(g.clock, g.tuning.Targets.BobAmplitude) - 6
	g.player.VX = 10
	g.player.VY = 5

	g.resolveCollisions()

	var kinds []core.EventKind
	for _, ev := range g.events {
		kinds = append(kinds, ev.Kind)
	}
	found := false
	for _, k := range kinds {
		if k == core.EventSkip {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a skip event, got %v", kinds)
	}
}
