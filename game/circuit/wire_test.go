package circuit

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/Stenodyon/FlipFlop/engine/colors"
	"github.com/Stenodyon/FlipFlop/game/grid"
)

func TestWireRect(t *testing.T) {
	t.Run("horizontal wire spans tile centers plus radius", func(t *testing.T) {
		w := Wire{Start: grid.NewTile(0, 0), Dir: grid.Right, Length: 2}
		r := w.Rect()
		assert.InDelta(t, 0.5-WireRadius, r.Position[0], 1e-6)
		assert.InDelta(t, 0.5-WireRadius, r.Position[1], 1e-6)
		assert.InDelta(t, 2+2*WireRadius, r.Size[0], 1e-6)
		assert.InDelta(t, 2*WireRadius, r.Size[1], 1e-6)
	})

	t.Run("downward wire normalizes the negative extent", func(t *testing.T) {
		// start (1,1), down 3 -> end (1,-2); rect must be anchored at the low end
		w := Wire{Start: grid.NewTile(1, 1), Dir: grid.Down, Length: 3}
		assert.Equal(t, grid.NewTile(1, -2), w.End())

		r := w.Rect()
		assert.InDelta(t, 1.5-WireRadius, r.Position[0], 1e-6)
		assert.InDelta(t, -1.5-WireRadius, r.Position[1], 1e-6)
		assert.InDelta(t, 2*WireRadius, r.Size[0], 1e-6)
		assert.InDelta(t, 3+2*WireRadius, r.Size[1], 1e-6)
	})

	t.Run("zero length wire is a dot", func(t *testing.T) {
		w := Wire{Start: grid.NewTile(5, 5), Dir: grid.Up, Length: 0}
		r := w.Rect()
		assert.InDelta(t, 2*WireRadius, r.Size[0], 1e-6)
		assert.InDelta(t, 2*WireRadius, r.Size[1], 1e-6)
	})

	t.Run("occupied tiles walk the direction", func(t *testing.T) {
		w := Wire{Start: grid.NewTile(1, 1), Dir: grid.Down, Length: 3}
		assert.Equal(t, []grid.Tile{{X: 1, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: -1}, {X: 1, Y: -2}}, w.Tiles())
	})

	t.Run("powered flag carries into the rect", func(t *testing.T) {
		w := Wire{Start: grid.NewTile(0, 0), Dir: grid.Right, Length: 1, Powered: true}
		assert.True(t, w.Rect().Powered)
	})
}

func TestPinRect(t *testing.T) {
	p := Pin{Position: grid.NewTile(1, -2)}
	r := p.Rect()
	assert.InDelta(t, 1.5-PinRadius, r.Position[0], 1e-6)
	assert.InDelta(t, -1.5-PinRadius, r.Position[1], 1e-6)
	assert.InDelta(t, 2*PinRadius, r.Size[0], 1e-6)
	assert.InDelta(t, 2*PinRadius, r.Size[1], 1e-6)
}

func TestRectTransform(t *testing.T) {
	r := Rect{Position: mgl32.Vec2{3, -4}, Z: -0.5}
	m := r.Transform()
	out := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.Equal(t, mgl32.Vec4{3, -4, -0.5, 1}, out)
}

func TestBoard(t *testing.T) {
	b := Board{Start: grid.NewTile(-1000, -1000), End: grid.NewTile(1000, 1000), Z: -0.5}

	assert.Equal(t, mgl32.Vec2{2000, 2000}, b.Size())
	assert.Equal(t, mgl32.Vec2{2000, 2000}, b.UvRect().Max)

	origin := b.Transform().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.Equal(t, mgl32.Vec4{-1000, -1000, -0.5, 1}, origin)
}

func TestWireColor(t *testing.T) {
	wc := DefaultWireColor()
	assert.Equal(t, colors.Black, wc.Pick(false))
	assert.Equal(t, colors.WireOn, wc.Pick(true))
}
