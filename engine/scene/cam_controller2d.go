package scene

import "github.com/Stenodyon/FlipFlop/engine/core"

// OrthoController2D: WASD pan, scroll wheel zoom.
type OrthoController2D struct {
	MoveSpeed float32 // world units per second at Zoom 1
	ZoomStep  float32 // multiplicative, per scroll notch
	MinZoom   float32
	MaxZoom   float32
	Camera    *OrthoCamera2D
}

func NewOrthoController2D(cam *OrthoCamera2D) *OrthoController2D {
	return &OrthoController2D{
		MoveSpeed: 10,
		ZoomStep:  1.2,
		MinZoom:   0.25,
		MaxZoom:   16,
		Camera:    cam,
	}
}

func (cc *OrthoController2D) Update(e *core.Engine, dt float32) {
	in := e.Input
	// Pan covers the same fraction of the screen regardless of zoom.
	speed := cc.MoveSpeed * dt / cc.Camera.Zoom

	if in.IsKeyDown(core.KeyW) {
		cc.Camera.Move(0, speed)
	}
	if in.IsKeyDown(core.KeyS) {
		cc.Camera.Move(0, -speed)
	}
	if in.IsKeyDown(core.KeyA) {
		cc.Camera.Move(-speed, 0)
	}
	if in.IsKeyDown(core.KeyD) {
		cc.Camera.Move(speed, 0)
	}
}

// HandleEvent consumes scroll events for zooming.
func (cc *OrthoController2D) HandleEvent(_ *core.Engine, ev core.Event) bool {
	sc, ok := ev.(core.EventScroll)
	if !ok || sc.Yoff == 0 {
		return false
	}

	z := cc.Camera.Zoom
	if sc.Yoff > 0 {
		z *= cc.ZoomStep
	} else {
		z /= cc.ZoomStep
	}
	if z < cc.MinZoom {
		z = cc.MinZoom
	}
	if z > cc.MaxZoom {
		z = cc.MaxZoom
	}
	cc.Camera.SetZoom(z)
	return true
}
