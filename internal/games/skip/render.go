package skip

import (
	"fmt"
	"math"

	"github.com/vovakirdan/skipstone/internal/core"
)

// stoneFrames cycle with the stone's rotation angle.
var stoneFrames = []rune{'◐', '◓', '◑', '◒'}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w := dst.Width()
	h := dst.Height()
	if w == 0 || h == 0 {
		return
	}

	shakeX, shakeY := g.shakeOffset()

	g.drawWater(dst, w, h, shakeY)
	g.drawTargets(dst, shakeX, shakeY)
	g.drawParticles(dst, shakeX, shakeY)
	g.drawStone(dst, shakeX, shakeY)
	if g.mode == ModeAiming {
		g.drawAim(dst, shakeX, shakeY)
	}
	g.drawFloaters(dst, shakeX, shakeY)
	g.drawHUD(dst, w)

	if g.paused {
		g.drawCenteredPanel(dst, []string{"PAUSED", "press p to resume"})
	}
	if g.mode == ModeGameOver {
		g.drawCenteredPanel(dst, []string{
			"THE STONE HAS SUNK",
			fmt.Sprintf("distance %.1fm   score %d", g.stats.Distance, g.stats.Score),
			fmt.Sprintf("skips %d   best combo x%d   +%d coins", g.stats.Skips, g.stats.BestCombo, g.stats.Currency),
			"press r to throw again",
		})
	}
}

// worldToScreen maps a world point to screen cell coordinates. The water
// line (world y=0) renders at waterScreenFraction of the viewport height
// when the camera has not panned up.
func (g *Game) worldToScreen(wx, wy float64, dst *core.Screen) (int, int) {
	waterRow := float64(dst.Height()) * waterScreenFraction
	sx := (wx - g.camera.X) / cellW
	sy := waterRow + (wy-g.camera.Y)/cellH
	return int(math.Round(sx)), int(math.Round(sy))
}

// shakeOffset converts the camera shake magnitude into a per-frame cell
// jitter. Derived from the tick counter so replays stay deterministic.
func (g *Game) shakeOffset() (int, int) {
	if g.camera.Shake <= 0 {
		return 0, 0
	}
	dx := int(math.Round(math.Sin(float64(g.tick)*2.1) * g.camera.Shake))
	dy := int(math.Round(math.Cos(float64(g.tick)*1.7) * g.camera.Shake * 0.5))
	return dx, dy
}

func (g *Game) drawWater(dst *core.Screen, w, h int, shakeY int) {
	_, waterRow := g.worldToScreen(g.camera.X, 0, dst)
	waterRow += shakeY
	if waterRow < 0 {
		waterRow = 0
	}

	// Surface row ripples with the shared clock; deeper rows are sparse.
	phase := int(g.clock * 4)
	for x := 0; x < w; x++ {
		if waterRow < h {
			r := '~'
			if (x+phase)%3 == 0 {
				r = '-'
			}
			dst.SetColored(x, waterRow, r, core.ColorBrightCyan)
		}
		for y := waterRow + 2; y < h; y += 3 {
			if (x+y+phase)%7 == 0 {
				dst.SetColored(x, y, '~', core.ColorBlue)
			}
		}
	}
}

func (g *Game) drawTargets(dst *core.Screen, shakeX, shakeY int) {
	bob := g.tuning.Targets.BobAmplitude
	for _, t := range g.stream.Targets() {
		color := t.Color
		body := '▓'
		switch {
		case t.Sunk:
			color = core.ColorGray
			body = '░'
		case t.Type == TargetGhost && !t.Tangible(g.clock, g.tuning.Targets.GhostVisibility):
			body = '░'
		}

		sx, sy := g.worldToScreen(t.X, t.SurfaceY(g.clock, bob), dst)
		sx += shakeX
		sy += shakeY

		half := int(t.Radius / cellW)
		if half < 1 {
			half = 1
		}
		for dx := -half; dx <= half; dx++ {
			dst.SetColored(sx+dx, sy, body, color)
		}

		label := fmt.Sprintf("%d", int(t.Value))
		if t.Type == TargetCoin {
			label = "$"
		} else if t.Type == TargetMultiHit && !t.Sunk {
			label = fmt.Sprintf("%d|%d", int(t.Value), t.HitsLeft)
		}
		dst.DrawTextColored(sx-len(label)/2, sy, label, core.ColorBrightWhite)
	}
}

func (g *Game) drawStone(dst *core.Screen, shakeX, shakeY int) {
	sx, sy := g.worldToScreen(g.player.X, g.player.Y, dst)
	sx += shakeX
	sy += shakeY

	frame := stoneFrames[int(math.Abs(g.player.Rot))%len(stoneFrames)]
	color := core.ColorBrightWhite
	if g.mode == ModeSinking {
		color = core.ColorGray
	}
	dst.SetColored(sx, sy, frame, color)
}

// drawAim renders the slingshot indicator: a dotted line opposite the pull
// showing launch direction, and a power bar near the stone.
func (g *Game) drawAim(dst *core.Screen, shakeX, shakeY int) {
	if !g.aim.Active {
		return
	}
	pull := g.aim.Pull()
	dist := pull.Len()
	if dist < g.tuning.Launch.MinDragDist {
		return
	}

	sx, sy := g.worldToScreen(g.player.X, g.player.Y, dst)
	sx += shakeX
	sy += shakeY

	// Launch direction: forward for the x pull, upward for the y pull.
	dirX := pull.X
	dirY := -math.Abs(pull.Y)
	norm := math.Hypot(dirX, dirY)
	if norm == 0 {
		return
	}
	dirX /= norm
	dirY /= norm

	color := core.ColorBrightGreen
	if pull.X <= 0 {
		color = core.ColorBrightRed
	}
	steps := int(core.ClampF(dist/20, 3, 10))
	for i := 1; i <= steps; i++ {
		px := sx + int(math.Round(dirX*float64(i)*2))
		py := sy + int(math.Round(dirY*float64(i)))
		dst.SetColored(px, py, '·', color)
	}

	frac := core.ClampF(dist/g.tuning.Launch.MaxDragDist, 0, 1)
	bar := int(frac * 10)
	barColor := core.ColorYellow
	if frac >= g.tuning.Launch.PerfectFraction {
		barColor = core.ColorBrightGreen
	}
	for i := 0; i < 10; i++ {
		r := '─'
		if i < bar {
			r = '█'
		}
		dst.SetColored(sx-5+i, sy-2, r, barColor)
	}
}

func (g *Game) drawParticles(dst *core.Screen, shakeX, shakeY int) {
	for _, p := range g.particles.Alive() {
		sx, sy := g.worldToScreen(p.X, p.Y, dst)
		dst.SetColored(sx+shakeX, sy+shakeY, p.Char, p.Color)
	}
}

func (g *Game) drawFloaters(dst *core.Screen, shakeX, shakeY int) {
	for _, f := range g.floaters {
		sx, sy := g.worldToScreen(f.X, f.Y, dst)
		dst.DrawTextColored(sx-len(f.Text)/2+shakeX, sy+shakeY, f.Text, f.Color)
	}
}

func (g *Game) drawHUD(dst *core.Screen, w int) {
	left := fmt.Sprintf(" score %d", g.stats.Score)
	if g.stats.Combo > 1 {
		left += fmt.Sprintf("  combo x%d", g.stats.Combo)
	}
	dst.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	right := fmt.Sprintf("%.1fm  $%d ", g.stats.Distance, g.profile.Currency+g.stats.Currency)
	dst.DrawTextColored(w-len(right), 0, right, core.ColorBrightYellow)

	if g.highScore > 0 {
		best := fmt.Sprintf("best %d", g.highScore)
		dst.DrawTextColored(w/2-len(best)/2, 0, best, core.ColorGray)
	}
}

// drawCenteredPanel draws a boxed multi-line message in the middle of the
// screen, sized to the longest line.
func (g *Game) drawCenteredPanel(dst *core.Screen, lines []string) {
	w := dst.Width()
	h := dst.Height()

	inner := 0
	for _, l := range lines {
		if len(l) > inner {
			inner = len(l)
		}
	}
	boxW := inner + 4
	boxH := len(lines) + 2
	x := (w - boxW) / 2
	y := (h-boxH)/2 - 1

	dst.DrawRect(x, y, boxW, boxH, ' ')
	dst.DrawBox(x, y, boxW, boxH)
	for i, l := range lines {
		dst.DrawText(x+(boxW-len(l))/2, y+1+i, l)
	}
}
