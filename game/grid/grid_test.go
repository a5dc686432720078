package grid

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestFromWorld(t *testing.T) {
	cases := []struct {
		name string
		in   mgl32.Vec2
		want Tile
	}{
		{"origin", mgl32.Vec2{0, 0}, Tile{0, 0}},
		{"inside a tile", mgl32.Vec2{1.7, 2.2}, Tile{1, 2}},
		{"negative floors toward minus infinity", mgl32.Vec2{-0.3, -1.8}, Tile{-1, -2}},
		{"exact boundary belongs to the upper tile", mgl32.Vec2{3, -4}, Tile{3, -4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FromWorld(tc.in))
		})
	}
}

func TestTileWorld(t *testing.T) {
	tile := NewTile(-3, 7)
	assert.Equal(t, mgl32.Vec2{-3, 7}, tile.World())
	assert.Equal(t, mgl32.Vec2{-2.5, 7.5}, tile.Center())

	// floor of the corner returns the same tile
	assert.Equal(t, tile, FromWorld(tile.World()))
}

func TestDirection(t *testing.T) {
	t.Run("offsets", func(t *testing.T) {
		assert.Equal(t, Tile{Y: 1}, Up.Offset())
		assert.Equal(t, Tile{Y: -1}, Down.Offset())
		assert.Equal(t, Tile{X: -1}, Left.Offset())
		assert.Equal(t, Tile{X: 1}, Right.Offset())
	})

	t.Run("scaled walks n tiles", func(t *testing.T) {
		assert.Equal(t, Tile{Y: -3}, Down.Scaled(3))
		assert.Equal(t, Tile{X: 5}, Right.Scaled(5))
	})

	t.Run("opposites", func(t *testing.T) {
		for _, d := range []Direction{Up, Down, Left, Right} {
			assert.Equal(t, d, d.Opposite().Opposite())
			assert.NotEqual(t, d, d.Opposite())
		}
	})
}
