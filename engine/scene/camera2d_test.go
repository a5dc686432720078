package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func project(c *OrthoCamera2D, x, y float32) mgl32.Vec4 {
	return c.VP().Mul4x1(mgl32.Vec4{x, y, 0, 1})
}

func TestOrthoCamera2D_VP(t *testing.T) {
	t.Run("origin maps to clip center", func(t *testing.T) {
		c := NewOrtho2D(640, 480, 16)
		out := project(c, 0, 0)
		assert.InDelta(t, 0, out[0], 1e-5)
		assert.InDelta(t, 0, out[1], 1e-5)
	})

	t.Run("visible extent edge maps to clip edge", func(t *testing.T) {
		c := NewOrtho2D(640, 480, 16)
		// half width = 640 / 16 / 2 = 20 world units
		out := project(c, 20, 0)
		assert.InDelta(t, 1, out[0], 1e-5)
	})

	t.Run("zoom shrinks the visible extent", func(t *testing.T) {
		c := NewOrtho2D(640, 480, 16)
		c.SetZoom(2)
		out := project(c, 10, 0)
		assert.InDelta(t, 1, out[0], 1e-5)
	})

	t.Run("pan recenters", func(t *testing.T) {
		c := NewOrtho2D(640, 480, 16)
		c.SetPosition(5, -3)
		out := project(c, 5, -3)
		assert.InDelta(t, 0, out[0], 1e-5)
		assert.InDelta(t, 0, out[1], 1e-5)
	})

	t.Run("zoom clamps at lower bound", func(t *testing.T) {
		c := NewOrtho2D(640, 480, 16)
		c.SetZoom(0)
		assert.InDelta(t, 0.05, c.Zoom, 1e-6)
	})
}

func TestScreenToWorld(t *testing.T) {
	t.Run("window center is the pan position", func(t *testing.T) {
		c := NewOrtho2D(640, 480, 16)
		c.SetPosition(7, 9)
		x, y := c.ScreenToWorld(320, 240)
		assert.InDelta(t, 7, x, 1e-5)
		assert.InDelta(t, 9, y, 1e-5)
	})

	t.Run("one tile of pixels right of center", func(t *testing.T) {
		c := NewOrtho2D(640, 480, 16)
		x, y := c.ScreenToWorld(320+16, 240)
		assert.InDelta(t, 1, x, 1e-5)
		assert.InDelta(t, 0, y, 1e-5)
	})

	t.Run("screen y grows downward, world y upward", func(t *testing.T) {
		c := NewOrtho2D(640, 480, 16)
		_, y := c.ScreenToWorld(320, 240+32)
		assert.InDelta(t, -2, y, 1e-5)
	})

	t.Run("zoom scales the cursor offset", func(t *testing.T) {
		c := NewOrtho2D(640, 480, 16)
		c.SetZoom(4)
		x, _ := c.ScreenToWorld(320+16, 240)
		assert.InDelta(t, 0.25, x, 1e-5)
	})

	t.Run("round trips through the projection", func(t *testing.T) {
		c := NewOrtho2D(640, 480, 16)
		c.SetPosition(3, -2)
		c.SetZoom(2)
		wx, wy := c.ScreenToWorld(500, 100)
		out := project(c, wx, wy)
		// back to NDC, then to window space
		px := (out[0] + 1) * 0.5 * 640
		py := (1 - (out[1]+1)*0.5) * 480
		assert.InDelta(t, 500, px, 1e-2)
		assert.InDelta(t, 100, py, 1e-2)
	})
}
