package platformer

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	PlatformChar = '▀'
	CoinChar     = '●'
	CloudChar    = '░'
)

// obstacleGlyphs gives each obstacle variant its own look.
var obstacleGlyphs = [...]struct {
	char  rune
	color core.Color
}{
	{'▲', core.ColorRed},
	{'▓', core.ColorOrange},
	{'♦', core.ColorBrightRed},
	{'■', core.ColorGray},
}

// Background cloud layout, in world units of the half-speed parallax layer.
const (
	cloudSpacing = 260.0
	cloudWidth   = 90.0
	cloudHeight  = 24.0
)

// Render draws the current game state to the screen.
// Row 0 is the HUD; the world is scaled onto the remaining rows.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	w := g.world
	cfg := w.Config()
	vp := Viewport{
		Camera: w.Camera,
		Cols:   dst.Width(),
		Rows:   max(dst.Height()-1, 1),
		WorldW: cfg.World.Width,
		WorldH: cfg.World.Height,
	}

	g.drawClouds(dst, vp)

	for _, p := range w.Level.Platforms() {
		drawBox(dst, vp, p.Box, PlatformChar, core.ColorGreen)
	}
	for _, c := range w.Level.Coins() {
		drawBox(dst, vp, c.Box, CoinChar, core.ColorBrightYellow)
	}
	for _, o := range w.Level.Obstacles() {
		glyph := obstacleGlyphs[o.Variant%len(obstacleGlyphs)]
		drawBox(dst, vp, o.Box, glyph.char, glyph.color)
	}

	playerColor := core.ColorCyan
	if w.Over {
		playerColor = core.ColorRed
	}
	drawBox(dst, vp, w.Player.Box(), PlayerChar, playerColor)

	// HUD
	st := g.State()
	dst.DrawTextColored(1, 0, fmt.Sprintf(" Score: %d ", st.Score), core.ColorBrightWhite)
	high := fmt.Sprintf(" High: %d ", st.HighScore)
	dst.DrawTextColored(dst.Width()-len(high)-1, 0, high, core.ColorYellow)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if w.Over {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  R restart  Q quit", st.Score))
	}
}

// drawBox fills the cells covered by a world-space box. Row offsets account
// for the HUD line.
func drawBox(dst *core.Screen, vp Viewport, b core.Box, ch rune, c core.Color) {
	x, y := vp.Cell(b.X, b.Y)
	cw, chh := vp.Span(b.W, b.H)
	r := core.NewRect(x, y+1, cw, chh)
	if !r.Intersects(core.NewRect(0, 0, dst.Width(), dst.Height())) {
		return
	}
	dst.DrawRect(r, ch, c)
}

// drawClouds draws the parallax layer, which scrolls at half the camera speed.
func (g *Game) drawClouds(dst *core.Screen, vp Viewport) {
	sky := vp
	sky.Camera.X = vp.Camera.X * 0.5

	first := int(sky.Camera.X / cloudSpacing)
	last := int((sky.Camera.X + vp.WorldW) / cloudSpacing)
	for k := first; k <= last; k++ {
		x := float64(k) * cloudSpacing
		y := 20 + float64((k*37)%5)*18
		drawBox(dst, sky, core.NewBox(x, y, cloudWidth, cloudHeight), CloudChar, core.ColorSky)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := core.Clamp((w-boxW)/2, 0, w)
	boxY := core.Clamp((h-boxH)/2, 0, h)

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
