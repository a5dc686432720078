package main

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Stenodyon/FlipFlop/engine/colors"
	"github.com/Stenodyon/FlipFlop/engine/core"
	"github.com/Stenodyon/FlipFlop/engine/diag"
	"github.com/Stenodyon/FlipFlop/engine/gfx/sprite"
	"github.com/Stenodyon/FlipFlop/engine/text"
)

// DebugLayer draws the stats overlay in window pixel space. F3 toggles it.
type DebugLayer struct {
	batch  *sprite.Batch
	font   *text.Font
	frames *diag.FrameTimes
	game   *GameLayer

	hidden bool
	stats  sprite.Statistics
	w, h   int
}

func (l *DebugLayer) OnAttach(e *core.Engine) {
	l.w, l.h = e.Window.FramebufferSize()
}

func (l *DebugLayer) OnDetach(e *core.Engine) {}

func (l *DebugLayer) OnUpdate(e *core.Engine, dt float64) {}

func (l *DebugLayer) OnRender(e *core.Engine, alpha float64) {
	// Snapshot before our own quads pollute the counters.
	l.stats = l.batch.Stats()

	if l.hidden || l.font == nil {
		return
	}

	cam := l.game.Camera()
	cursor, tile := l.game.Cursor()

	overlay := fmt.Sprintf(
		"FPS: %.0f\nFrame time: %.3fms\n\nPan x: %.2f y: %.2f\nZoom: %.2f\n\nCursor x: %.2f y: %.2f\nTile x: %d y: %d\n\nDraw calls: %d\nQuads: %d\nTextures: %d",
		l.frames.FPS(),
		l.frames.AvgMillis(),
		cam.X, cam.Y,
		cam.Zoom,
		cursor[0], cursor[1],
		tile.X, tile.Y,
		l.stats.DrawCalls,
		l.stats.QuadCount,
		l.stats.TextureCount,
	)

	// Pixel-space projection, y down, origin top-left.
	screen := sprite.Camera{ViewProj: mgl32.Ortho(0, float32(l.w), float32(l.h), 0, -1, 1)}

	l.batch.BeginScene(screen)
	text.DrawText(l.batch, l.font, 12, 8, overlay, colors.Yellow)
	l.batch.EndScene()
}

func (l *DebugLayer) OnEvent(e *core.Engine, ev core.Event) bool {
	switch v := ev.(type) {
	case core.EventKey:
		if v.Down && v.Key == core.KeyF3 {
			l.hidden = !l.hidden
			return true
		}
	case core.EventResize:
		l.w, l.h = v.W, v.H
	}
	return false
}
