package core

import (
	"runtime"
	"time"

	"go.uber.org/zap"
)

// Run wires the platform window + renderer and executes the main loop.
func Run(app App, cfg Config, log *zap.Logger, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	if log == nil {
		log = zap.NewNop()
	}

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return err
	}
	defer rend.Shutdown()

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	eng := &Engine{Window: win, Renderer: rend, Input: NewInput(), Log: log, start: time.Now()}
	win.SetEventCallback(func(ev Event) {
		eng.Input.Handle(ev)

		// Top layers get first refusal; unhandled events fall through to the app.
		handled := false
		eng.Layers.ForEachReverse(func(l Layer) bool {
			if l.OnEvent(eng, ev) {
				handled = true
				return true
			}
			return false
		})
		if !handled {
			app.OnEvent(eng, ev)
		}

		if _, ok := ev.(EventResize); ok {
			fw, fh := win.FramebufferSize()
			if fw < 1 || fh < 1 {
				return
			}
			rend.Resize(fw, fh)
		}
	})

	app.OnStart(eng)
	log.Info("engine started", zap.Int("width", w), zap.Int("height", h))

	// Fixed-timestep (60 Hz) with interpolation
	const tick = time.Second / 60
	var (
		accum   time.Duration
		prev    = time.Now()
		clear   = cfg.ClearColor
		maxStep = 10 // prevent spiral of death
	)

	for !win.ShouldClose() {
		now := time.Now()
		frame := now.Sub(prev)
		prev = now
		accum += frame

		// Poll OS events (platform will emit via callbacks)
		win.PollEvents()

		// Run fixed updates
		steps := 0
		for accum >= tick && steps < maxStep {
			dt := float64(tick) / float64(time.Second)
			app.OnUpdate(eng, dt)
			eng.Layers.ForEach(func(l Layer) { l.OnUpdate(eng, dt) })
			accum -= tick
			steps++
		}
		// Interpolation factor for rendering
		alpha := float64(accum) / float64(tick)

		// Render
		rend.Clear(clear[0], clear[1], clear[2], clear[3])
		eng.Layers.ForEach(func(l Layer) { l.OnRender(eng, alpha) })
		app.OnRender(eng, alpha)

		// Present
		win.SwapBuffers()
	}

	for {
		l, ok := eng.Layers.Pop()
		if !ok {
			break
		}
		l.OnDetach(eng)
	}
	app.OnShutdown(eng)
	log.Info("engine exit", zap.Duration("uptime", eng.Uptime()))
	return nil
}
