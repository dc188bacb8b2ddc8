package skip

import (
	"math/rand"

	"github.com/vovakirdan/skipstone/internal/core"
)

// Particles are cosmetic only; they never feed back into physics state.
const (
	maxParticles    = 96
	particleGravity = 0.15
	floaterTTL      = 45 // ticks a floating text stays on screen
)

// Particle is one ephemeral visual fleck in world coordinates.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   int
	Char   rune
	Color  core.Color
}

// ParticlePool is a capped pool of particles. When full, the oldest are
// overwritten rather than allocated past the cap.
type ParticlePool struct {
	parts []Particle
	rng   *rand.Rand
}

// Reset clears the pool and reseeds its cosmetic RNG.
func (pp *ParticlePool) Reset(seed int64) {
	pp.parts = pp.parts[:0]
	pp.rng = rand.New(rand.NewSource(seed))
}

// Splash spawns upward water droplets at the given point.
func (pp *ParticlePool) Splash(x, y float64, n int) {
	for i := 0; i < n; i++ {
		pp.add(Particle{
			X:     x + (pp.rng.Float64()-0.5)*6,
			Y:     y,
			VX:    (pp.rng.Float64() - 0.5) * 2,
			VY:    -1 - pp.rng.Float64()*2.5,
			Life:  15 + pp.rng.Intn(15),
			Char:  '°',
			Color: core.ColorBrightCyan,
		})
	}
}

// Burst spawns a radial debris burst, used on smashes.
func (pp *ParticlePool) Burst(x, y float64, n int, c core.Color) {
	for i := 0; i < n; i++ {
		pp.add(Particle{
			X:     x,
			Y:     y,
			VX:    (pp.rng.Float64() - 0.5) * 4,
			VY:    (pp.rng.Float64() - 0.8) * 3,
			Life:  10 + pp.rng.Intn(12),
			Char:  '*',
			Color: c,
		})
	}
}

// add appends a particle, recycling the oldest slot when at capacity.
func (pp *ParticlePool) add(p Particle) {
	if len(pp.parts) >= maxParticles {
		copy(pp.parts, pp.parts[1:])
		pp.parts[len(pp.parts)-1] = p
		return
	}
	pp.parts = append(pp.parts, p)
}

// Update advances and expires particles.
func (pp *ParticlePool) Update() {
	alive := pp.parts[:0]
	for _, p := range pp.parts {
		p.Life--
		if p.Life <= 0 {
			continue
		}
		p.VY += particleGravity
		p.X += p.VX
		p.Y += p.VY
		alive = append(alive, p)
	}
	pp.parts = alive
}

// Alive returns the live particles.
func (pp *ParticlePool) Alive() []Particle {
	return pp.parts
}

// floater is a short-lived floating text in world coordinates.
type floater struct {
	X, Y  float64
	Text  string
	Color core.Color
	TTL   int
}

// addFloater queues a floating text above the given world point.
func (g *Game) addFloater(x, y float64, text string, c core.Color) {
	g.floaters = append(g.floaters, floater{X: x, Y: y, Text: text, Color: c, TTL: floaterTTL})
}

// updateFloaters drifts floating texts upward and expires them.
func (g *Game) updateFloaters() {
	alive := g.floaters[:0]
	for _, f := range g.floaters {
		f.TTL--
		if f.TTL <= 0 {
			continue
		}
		f.Y -= 0.6
		alive = append(alive, f)
	}
	g.floaters = alive
}
