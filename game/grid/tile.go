package grid

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Tile addresses one cell of the board grid.
type Tile struct {
	X, Y int
}

func NewTile(x, y int) Tile { return Tile{X: x, Y: y} }

func Zero() Tile { return Tile{} }

// FromWorld floors a world position onto the containing tile.
func FromWorld(v mgl32.Vec2) Tile {
	return Tile{
		X: int(math.Floor(float64(v[0]))),
		Y: int(math.Floor(float64(v[1]))),
	}
}

// World returns the tile's lower-left corner in world units.
func (t Tile) World() mgl32.Vec2 {
	return mgl32.Vec2{float32(t.X), float32(t.Y)}
}

// Center returns the tile's center in world units.
func (t Tile) Center() mgl32.Vec2 {
	return mgl32.Vec2{float32(t.X) + 0.5, float32(t.Y) + 0.5}
}

func (t Tile) Add(o Tile) Tile { return Tile{X: t.X + o.X, Y: t.Y + o.Y} }

func (t Tile) String() string { return fmt.Sprintf("(%d, %d)", t.X, t.Y) }
