package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// OrthoCamera2D provides an orthographic camera with pan, rotation and zoom.
// World units are grid tiles: PixelsPerUnit screen pixels map to one world
// unit at Zoom 1.
type OrthoCamera2D struct {
	Near, Far     float32
	X, Y          float32 // pan, world units
	RotationRad   float32
	Zoom          float32 // 1 = no zoom
	PixelsPerUnit float32

	widthPx, heightPx float32
	vp                mgl32.Mat4
	dirty             bool
}

func NewOrtho2D(widthPx, heightPx int, pixelsPerUnit float32) *OrthoCamera2D {
	if pixelsPerUnit <= 0 {
		pixelsPerUnit = 1
	}
	c := &OrthoCamera2D{
		Near: -1, Far: 1,
		Zoom:          1,
		PixelsPerUnit: pixelsPerUnit,
		widthPx:       float32(widthPx),
		heightPx:      float32(heightPx),
	}
	c.Recalculate()
	return c
}

func (c *OrthoCamera2D) SetViewportPixels(w, h int) {
	c.widthPx, c.heightPx = float32(w), float32(h)
	c.dirty = true
}

func (c *OrthoCamera2D) Move(dx, dy float32)      { c.X += dx; c.Y += dy; c.dirty = true }
func (c *OrthoCamera2D) SetPosition(x, y float32) { c.X, c.Y = x, y; c.dirty = true }
func (c *OrthoCamera2D) Rotate(dRad float32)      { c.RotationRad += dRad; c.dirty = true }

func (c *OrthoCamera2D) SetZoom(z float32) {
	if z < 0.05 {
		z = 0.05
	}
	c.Zoom = z
	c.dirty = true
}

// Width and Height report the visible world extent.
func (c *OrthoCamera2D) Width() float32  { return c.widthPx / (c.PixelsPerUnit * c.Zoom) }
func (c *OrthoCamera2D) Height() float32 { return c.heightPx / (c.PixelsPerUnit * c.Zoom) }

func (c *OrthoCamera2D) VP() mgl32.Mat4 {
	if c.dirty {
		c.Recalculate()
	}
	return c.vp
}

func (c *OrthoCamera2D) Recalculate() {
	halfW := c.Width() * 0.5
	halfH := c.Height() * 0.5
	proj := mgl32.Ortho(-halfW, halfW, -halfH, halfH, c.Near, c.Far)

	// view = R(-rot) * T(-pan) for column-vector math
	view := mgl32.HomogRotate3DZ(-c.RotationRad).Mul4(mgl32.Translate3D(-c.X, -c.Y, 0))

	c.vp = proj.Mul4(view)
	c.dirty = false
}

// ScreenToWorld maps a window-space cursor position (origin top-left, y down)
// to world coordinates: offset from the window center scaled by pixels per
// unit and zoom, un-rotated, then translated by the pan.
func (c *OrthoCamera2D) ScreenToWorld(mx, my float64) (float32, float32) {
	sx := (float32(mx) - c.widthPx*0.5) / (c.PixelsPerUnit * c.Zoom)
	sy := (c.heightPx*0.5 - float32(my)) / (c.PixelsPerUnit * c.Zoom)

	cos := float32(math.Cos(float64(c.RotationRad)))
	sin := float32(math.Sin(float64(c.RotationRad)))
	wx := sx*cos - sy*sin + c.X
	wy := sx*sin + sy*cos + c.Y
	return wx, wy
}
