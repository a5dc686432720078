package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/Stenodyon/FlipFlop/engine/config"
	"github.com/Stenodyon/FlipFlop/engine/core"
	"github.com/Stenodyon/FlipFlop/engine/diag"
	glbackend "github.com/Stenodyon/FlipFlop/engine/gfx/gl"
	"github.com/Stenodyon/FlipFlop/engine/gfx/sprite"
	"github.com/Stenodyon/FlipFlop/engine/platform"
	"github.com/Stenodyon/FlipFlop/engine/text"
)

type App struct {
	cfg    config.Config
	frames *diag.FrameTimes

	batch *sprite.Batch
	quads *sprite.QuadRenderer
	font  *text.Font

	game  *GameLayer
	debug *DebugLayer
}

func (a *App) OnStart(e *core.Engine) {
	var err error
	a.batch, err = sprite.NewBatch(e.Renderer, 10000)
	if err != nil {
		panic(err)
	}
	a.quads, err = sprite.NewQuadRenderer(e.Renderer)
	if err != nil {
		panic(err)
	}

	// The overlay degrades to nothing if the font asset is missing.
	a.font, err = text.LoadTTF(e.Renderer, "RobotoMono.ttf", 16)
	if err != nil {
		e.Log.Warn("debug font unavailable", zap.Error(err))
		a.font = nil
	}

	a.game = NewGameLayer(a.cfg, a.batch, a.quads)
	e.PushLayer(a.game)

	a.debug = &DebugLayer{batch: a.batch, font: a.font, frames: a.frames, game: a.game}
	e.PushLayer(a.debug)
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {}

func (a *App) OnRender(e *core.Engine, alpha float64) {
	a.frames.Tick()
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {}

func (a *App) OnShutdown(e *core.Engine) {
	if a.font != nil {
		a.font.Close()
	}
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Warn("config load failed, using defaults", zap.Error(err))
	}

	engineCfg := core.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		VSync:      cfg.Window.VSync,
		ClearColor: [4]float32{0.08, 0.10, 0.12, 1},
	}

	app := &App{cfg: cfg, frames: diag.NewFrameTimes(120)}

	newWindow := func(c core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(c, logger, nil)
	}
	newRenderer := func(win core.Window, c core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, c)
	}

	if err := core.Run(app, engineCfg, logger, newWindow, newRenderer); err != nil {
		logger.Fatal("engine run failed", zap.Error(err))
	}
}
