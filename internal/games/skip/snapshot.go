package skip

import "math"

// Snapshot is a compact copy of the simulation state, used to compare two
// runs tick-by-tick. Two games stepped with the same seed and inputs must
// produce equal snapshots.
type Snapshot struct {
	Tick    uint64
	Mode    Mode
	X, Y    float64
	VX, VY  float64
	Rot     float64
	CamX    float64
	CamY    float64
	Score   int
	Combo   int
	Coins   int
	Skips   int
	Targets int
	Right   float64
}

// Snapshot captures the current simulation state.
func (g *Game) Snapshot() Snapshot {
	right, _ := g.stream.RightmostX()
	return Snapshot{
		Tick:    g.tick,
		Mode:    g.mode,
		X:       g.player.X,
		Y:       g.player.Y,
		VX:      g.player.VX,
		VY:      g.player.VY,
		Rot:     g.player.Rot,
		CamX:    g.camera.X,
		CamY:    g.camera.Y,
		Score:   g.stats.Score,
		Combo:   g.stats.Combo,
		Coins:   g.stats.Currency,
		Skips:   g.stats.Skips,
		Targets: g.stream.Count(),
		Right:   right,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Mode) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.X)
	h = h*31 + math.Float64bits(snap.Y)
	h = h*31 + math.Float64bits(snap.VX)
	h = h*31 + math.Float64bits(snap.VY)
	h = h*31 + math.Float64bits(snap.Rot)
	h = h*31 + math.Float64bits(snap.CamX)
	h = h*31 + math.Float64bits(snap.CamY)
	h = h*31 + uint64(snap.Score)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Combo)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Coins)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Skips)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Targets) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Right)
	return h
}
