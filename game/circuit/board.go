package circuit

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Stenodyon/FlipFlop/engine/gfx/sprite"
	"github.com/Stenodyon/FlipFlop/game/grid"
)

// Board is the background grid spanning a tile range. It renders as a single
// quad whose UV rect covers one texture repeat per tile (the texture is
// sampled with repeat wrapping).
type Board struct {
	Start, End grid.Tile
	Z          float32
}

// Size returns the board extent in tiles.
func (b Board) Size() mgl32.Vec2 {
	return mgl32.Vec2{float32(b.End.X - b.Start.X), float32(b.End.Y - b.Start.Y)}
}

// Transform places the unit quad at the board's lower-left corner.
func (b Board) Transform() mgl32.Mat4 {
	return mgl32.Translate3D(float32(b.Start.X), float32(b.Start.Y), b.Z)
}

// UvRect tiles the texture once per board tile.
func (b Board) UvRect() sprite.UvRect {
	s := b.Size()
	return sprite.UvRect{Min: mgl32.Vec2{0, 0}, Max: s}
}
