package circuit

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Stenodyon/FlipFlop/game/grid"
)

// Wires are drawn slightly thinner than their tile track; pins sit on top of
// wire ends with twice the radius. Radii are in tile units.
const (
	WireRadius float32 = 1.0 / 16.0
	PinRadius  float32 = 2.0 / 16.0
)

// Wire is a straight run of wire from Start walking Length tiles along Dir.
type Wire struct {
	Start   grid.Tile
	Dir     grid.Direction
	Length  int
	Z       float32
	Powered bool
}

// End returns the tile at the far end of the wire.
func (w Wire) End() grid.Tile {
	return w.Start.Add(w.Dir.Scaled(w.Length))
}

// Tiles returns every tile the wire occupies, endpoints included.
func (w Wire) Tiles() []grid.Tile {
	n := w.Length
	if n < 0 {
		n = -n
	}
	out := make([]grid.Tile, 0, n+1)
	t := w.Start
	step := w.Dir.Offset()
	if w.Length < 0 {
		step = w.Dir.Opposite().Offset()
	}
	for i := 0; i <= n; i++ {
		out = append(out, t)
		t = t.Add(step)
	}
	return out
}

// Rect returns the drawable rectangle for the wire.
func (w Wire) Rect() Rect {
	return rectBetween(w.Start, w.End(), WireRadius, w.Z, w.Powered)
}

// Pin marks a connection point on a single tile.
type Pin struct {
	Position grid.Tile
	Z        float32
	Powered  bool
}

// Rect returns the drawable square for the pin.
func (p Pin) Rect() Rect {
	center := p.Position.Center()
	return Rect{
		Position: mgl32.Vec2{center[0] - PinRadius, center[1] - PinRadius},
		Size:     mgl32.Vec2{2 * PinRadius, 2 * PinRadius},
		Z:        p.Z,
		Powered:  p.Powered,
	}
}

// Rect is an axis-aligned sprite rectangle in world units, anchored at its
// lower-left corner like the unit quad.
type Rect struct {
	Position mgl32.Vec2
	Size     mgl32.Vec2
	Z        float32
	Powered  bool
}

// Transform returns the model matrix placing the unit quad at the rect.
func (r Rect) Transform() mgl32.Mat4 {
	return mgl32.Translate3D(r.Position[0], r.Position[1], r.Z)
}

// rectBetween spans the tile centers of a and b, inflated by radius on every
// side. Negative extents are normalized first so the inflation works in both
// walking directions.
func rectBetween(a, b grid.Tile, radius, z float32, powered bool) Rect {
	sx, sy := b.X-a.X, b.Y-a.Y
	ox, oy := a.X, a.Y
	if sx < 0 {
		sx = -sx
		ox -= sx
	}
	if sy < 0 {
		sy = -sy
		oy -= sy
	}
	return Rect{
		Position: mgl32.Vec2{float32(ox) + 0.5 - radius, float32(oy) + 0.5 - radius},
		Size:     mgl32.Vec2{float32(sx) + 2*radius, float32(sy) + 2*radius},
		Z:        z,
		Powered:  powered,
	}
}
