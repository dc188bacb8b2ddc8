package skip

import (
	"math/rand"

	"github.com/vovakirdan/skipstone/internal/config"
	"github.com/vovakirdan/skipstone/internal/core"
)

// TargetStream maintains the bounded sliding window of targets ahead of the
// camera: spawn when the horizon runs dry, evict from the back once over the
// cap. All randomness comes from its own seeded source so runs are
// reproducible.
type TargetStream struct {
	targets []*Target
	rng     *rand.Rand
	nextID  int
	cfg     config.TargetsConfig
	diff    *config.DifficultyManager
}

// NewTargetStream creates a stream with the given RNG seed.
func NewTargetStream(seed int64, cfg config.TargetsConfig, diff *config.DifficultyManager) *TargetStream {
	ts := &TargetStream{
		targets: make([]*Target, 0, cfg.MaxLive),
		cfg:     cfg,
		diff:    diff,
	}
	ts.Reset(seed)
	return ts
}

// Reset clears all targets and reseeds the RNG.
func (ts *TargetStream) Reset(seed int64) {
	ts.targets = ts.targets[:0]
	ts.rng = rand.New(rand.NewSource(seed))
	ts.nextID = 0
}

// Targets returns the live window in ascending x order.
func (ts *TargetStream) Targets() []*Target {
	return ts.targets
}

// Count returns the number of live targets.
func (ts *TargetStream) Count() int {
	return len(ts.targets)
}

// RightmostX returns the x of the newest target, or ok=false when empty.
func (ts *TargetStream) RightmostX() (float64, bool) {
	if len(ts.targets) == 0 {
		return 0, false
	}
	return ts.targets[len(ts.targets)-1].X, true
}

// Maintain restores the stream invariants for the current camera position:
// the rightmost target stays past the lookahead horizon and the live count
// stays at or below the cap. Spawn order is ascending x, so the oldest
// target is always the leftmost.
func (ts *TargetStream) Maintain(camX, viewW, distance float64) {
	horizon := camX + viewW + ts.cfg.Lookahead
	scalar := ts.diff.Scalar(distance)

	for {
		right, ok := ts.RightmostX()
		if !ok {
			// Empty stream: seed the first target just past the stone's
			// launch area so a collision check never sees an empty world.
			right = camX + ts.cfg.SpawnGapMax
		} else if right >= horizon {
			break
		}
		gap := ts.cfg.SpawnGapMin + ts.rng.Float64()*(ts.cfg.SpawnGapMax-ts.cfg.SpawnGapMin)
		ts.spawn(right+gap, scalar)
	}

	for len(ts.targets) > ts.cfg.MaxLive {
		ts.targets = ts.targets[1:]
	}
}

// spawn appends one target at x, parameterized by the difficulty scalar.
func (ts *TargetStream) spawn(x, scalar float64) {
	t := &Target{
		ID:     ts.nextID,
		X:      x,
		Value:  5 + ts.rng.Float64()*10*scalar,
		Weight: 0.8 + ts.rng.Float64()*0.6,
		Radius: ts.cfg.BaseRadius * (0.8 + ts.rng.Float64()*0.5),
		Type:   ts.pickType(scalar),
	}
	ts.nextID++

	switch t.Type {
	case TargetNormal:
		t.Color = core.ColorBrightBlue
	case TargetBoost:
		// Easy to skip, worth little.
		t.Value *= 0.5
		t.Weight *= 0.5
		t.Color = core.ColorBrightGreen
	case TargetBlock:
		t.Value *= 1.5
		t.Weight *= 2
		t.Radius *= 1.2
		t.Color = core.ColorBrightRed
	case TargetCoin:
		t.Value = 1
		t.Weight = 0.1
		t.Radius *= 0.7
		t.Color = core.ColorBrightYellow
	case TargetMultiHit:
		t.Value *= 2
		t.HitsLeft = 2 + ts.rng.Intn(2)
		t.Color = core.ColorBrightMagenta
	case TargetMoving:
		t.MoveRange = 10 + ts.rng.Float64()*20
		t.MoveSpeed = 0.5 + ts.rng.Float64()*1.5
		t.Color = core.ColorBrightCyan
	case TargetGhost:
		t.Color = core.ColorGray
	}

	ts.targets = append(ts.targets, t)
}

// pickType draws a target type from difficulty-dependent weights. Higher
// difficulty unlocks MOVING, then MULTI_HIT, then GHOST; low difficulty
// favors BOOST as a beginner aid.
func (ts *TargetStream) pickType(scalar float64) TargetType {
	type weighted struct {
		typ TargetType
		w   int
	}

	boost := 7
	if ts.diff.BoostFavored(scalar) {
		boost = 18
	}

	pool := []weighted{
		{TargetNormal, 50},
		{TargetBoost, boost},
		{TargetBlock, 12},
		{TargetCoin, 10},
	}
	if ts.diff.AllowMoving(scalar) {
		pool = append(pool, weighted{TargetMoving, 10})
	}
	if ts.diff.AllowMultiHit(scalar) {
		pool = append(pool, weighted{TargetMultiHit, 8})
	}
	if ts.diff.AllowGhost(scalar) {
		pool = append(pool, weighted{TargetGhost, 6})
	}

	total := 0
	for _, c := range pool {
		total += c.w
	}
	roll := ts.rng.Intn(total)
	for _, c := range pool {
		roll -= c.w
		if roll < 0 {
			return c.typ
		}
	}
	return TargetNormal
}
