package main

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Stenodyon/FlipFlop/engine/assets"
	"github.com/Stenodyon/FlipFlop/engine/colors"
	"github.com/Stenodyon/FlipFlop/engine/config"
	"github.com/Stenodyon/FlipFlop/engine/core"
	"github.com/Stenodyon/FlipFlop/engine/gfx/sprite"
	"github.com/Stenodyon/FlipFlop/engine/scene"
	"github.com/Stenodyon/FlipFlop/game/circuit"
	"github.com/Stenodyon/FlipFlop/game/grid"
	"github.com/Stenodyon/FlipFlop/game/sim"
)

// GameLayer renders the board and circuit and owns the camera and cursor.
type GameLayer struct {
	cfg   config.Config
	batch *sprite.Batch
	quads *sprite.QuadRenderer

	cam  *scene.OrthoCamera2D
	ctrl *scene.OrthoController2D

	boardTex core.Texture
	board    circuit.Board

	sim       *sim.Simulation
	wireColor circuit.WireColor

	watcher *assets.Watcher

	cursorWorld mgl32.Vec2
	cursorTile  grid.Tile
}

func NewGameLayer(cfg config.Config, batch *sprite.Batch, quads *sprite.QuadRenderer) *GameLayer {
	return &GameLayer{
		cfg:       cfg,
		batch:     batch,
		quads:     quads,
		sim:       sim.New(),
		wireColor: circuit.WireColor{Off: cfg.Wire.OffColor, On: cfg.Wire.OnColor},
	}
}

func (l *GameLayer) OnAttach(e *core.Engine) {
	w, h := e.Window.FramebufferSize()
	l.cam = scene.NewOrtho2D(w, h, l.cfg.View.TilePixels)
	l.ctrl = scene.NewOrthoController2D(l.cam)
	l.ctrl.MoveSpeed = l.cfg.View.PanSpeed
	l.ctrl.MinZoom = l.cfg.View.MinZoom
	l.ctrl.MaxZoom = l.cfg.View.MaxZoom

	l.boardTex = l.loadBoardTexture(e)
	l.board = circuit.Board{
		Start: grid.NewTile(-1000, -1000),
		End:   grid.NewTile(1000, 1000),
		Z:     -0.5,
	}

	// Starter circuit: one wire run with a pin on each end.
	l.sim.AddWire(circuit.Wire{Start: grid.NewTile(1, 1), Dir: grid.Down, Length: 3})
	l.sim.AddPin(circuit.Pin{Position: grid.NewTile(1, 1)})
	l.sim.AddPin(circuit.Pin{Position: grid.NewTile(1, -2)})
	l.sim.Step()

	watcher, err := assets.WatchShaders(e.Log)
	if err != nil {
		e.Log.Warn("shader hot-reload disabled", zap.Error(err))
	} else {
		l.watcher = watcher
	}
}

func (l *GameLayer) OnDetach(e *core.Engine) {
	if l.watcher != nil {
		l.watcher.Close()
	}
}

func (l *GameLayer) OnUpdate(e *core.Engine, dt float64) {
	l.ctrl.Update(e, float32(dt))

	if e.Input.IsKeyDown(core.KeyEscape) {
		e.Window.RequestClose()
	}

	mx, my := e.Input.Mouse()
	wx, wy := l.cam.ScreenToWorld(mx, my)
	l.cursorWorld = mgl32.Vec2{wx, wy}
	l.cursorTile = grid.FromWorld(l.cursorWorld)

	l.sim.Step()
	l.reloadShaders(e)
}

func (l *GameLayer) OnRender(e *core.Engine, alpha float64) {
	cam := sprite.Camera{ViewProj: l.cam.VP()}

	// Board first: single quad through the uniform-block path, repeat-sampled.
	l.quads.Draw(cam, sprite.Transform{Model: l.board.Transform()}, l.board.Size(),
		l.board.UvRect(), l.boardTex, colors.Gray)

	// Circuit on top through the batch.
	l.batch.BeginScene(cam)
	l.sim.EachWire(func(_ sim.ID, w circuit.Wire) {
		l.drawRect(w.Rect())
	})
	l.sim.EachPin(func(_ sim.ID, p circuit.Pin) {
		l.drawRect(p.Rect())
	})
	l.batch.EndScene()
}

func (l *GameLayer) drawRect(r circuit.Rect) {
	l.batch.DrawSprite(
		sprite.Transform{Model: r.Transform()},
		r.Size,
		sprite.FullRect,
		nil, // slot 0 white texture
		l.wireColor.Pick(r.Powered),
	)
}

func (l *GameLayer) OnEvent(e *core.Engine, ev core.Event) bool {
	switch v := ev.(type) {
	case core.EventKey:
		if v.Down && v.Key == core.KeyJ {
			l.sim.ToggleAll()
			return true
		}
	case core.EventResize:
		l.cam.SetViewportPixels(v.W, v.H)
	case core.EventScroll:
		return l.ctrl.HandleEvent(e, ev)
	}
	return false
}

// Camera exposes the scene camera for the debug overlay.
func (l *GameLayer) Camera() *scene.OrthoCamera2D { return l.cam }

// Cursor exposes the latest cursor world position and tile.
func (l *GameLayer) Cursor() (mgl32.Vec2, grid.Tile) { return l.cursorWorld, l.cursorTile }

// reloadShaders rebuilds the uv-sprite pipeline when its sources change on
// disk. Runs on the main thread, so GL calls are safe here.
func (l *GameLayer) reloadShaders(e *core.Engine) {
	if l.watcher == nil {
		return
	}
	relevant := false
	for _, name := range l.watcher.Pending() {
		if name == "uv_sprite.vert" || name == "uv_sprite.frag" {
			relevant = true
		}
	}
	if !relevant {
		return
	}

	vs, err := assets.LoadShader("uv_sprite.vert")
	if err != nil {
		e.Log.Warn("shader reload", zap.Error(err))
		return
	}
	fs, err := assets.LoadShader("uv_sprite.frag")
	if err != nil {
		e.Log.Warn("shader reload", zap.Error(err))
		return
	}
	if err := l.quads.Rebuild(vs, fs); err != nil {
		e.Log.Warn("shader reload rejected, keeping previous pipeline", zap.Error(err))
		return
	}
	e.Log.Info("uv sprite pipeline reloaded")
}

// loadBoardTexture loads the board grid texture, falling back to a generated
// tile when the asset is missing.
func (l *GameLayer) loadBoardTexture(e *core.Engine) core.Texture {
	desc := core.TextureDesc{
		Format:    core.TextureRGBA8,
		MinFilter: "nearest", MagFilter: "nearest",
		WrapU: "repeat", WrapV: "repeat",
	}

	if w, h, pixels, err := assets.LoadPNG("board.png"); err == nil {
		desc.Width, desc.Height, desc.Pixels = w, h, pixels
	} else {
		e.Log.Warn("board texture missing, generating one", zap.Error(err))
		desc.Width, desc.Height, desc.Pixels = generatedBoardTile(16)
	}

	tex, err := e.Renderer.CreateTexture(desc)
	if err != nil {
		panic(err)
	}
	return tex
}

// generatedBoardTile builds one grid cell: light fill with a darker border.
func generatedBoardTile(size int) (int, int, []byte) {
	pixels := make([]byte, size*size*4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			var v byte = 210
			if x == 0 || y == 0 {
				v = 160
			}
			i := (y*size + x) * 4
			pixels[i+0] = v
			pixels[i+1] = v
			pixels[i+2] = v
			pixels[i+3] = 255
		}
	}
	return size, size, pixels
}
