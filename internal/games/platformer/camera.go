package platformer

import "math"

// Camera is the world-space left edge of the viewport. The player is kept at
// a fixed horizontal screen offset.
type Camera struct {
	X      float64
	Offset float64
}

// Follow places the camera so the player sits at the screen offset.
func (c *Camera) Follow(p Player) {
	c.X = p.X - c.Offset
}

// Clamp stops the camera at the world origin. While clamped, the player is
// pinned to the screen offset.
func (c *Camera) Clamp(p *Player) {
	if c.X < 0 {
		c.X = 0
		p.X = c.Offset
	}
}

// ToScreen converts a world x to a viewport x in world units.
func (c Camera) ToScreen(x float64) float64 {
	return x - c.X
}

// Viewport maps world units onto a grid of terminal cells.
type Viewport struct {
	Camera Camera
	Cols   int // Cells across
	Rows   int // Cells down
	WorldW float64
	WorldH float64
}

// Cell converts a world point to a cell coordinate.
func (v Viewport) Cell(x, y float64) (int, int) {
	sx := v.Camera.ToScreen(x) * float64(v.Cols) / v.WorldW
	sy := y * float64(v.Rows) / v.WorldH
	return int(math.Floor(sx)), int(math.Floor(sy))
}

// Span converts a world width or height to a cell count, at least one cell.
func (v Viewport) Span(w, h float64) (int, int) {
	cw := max(int(w*float64(v.Cols)/v.WorldW+0.5), 1)
	ch := max(int(h*float64(v.Rows)/v.WorldH+0.5), 1)
	return cw, ch
}
