package core

import (
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
)

// Run wires the platform window + renderer and executes the main loop.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config, *zap.Logger) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log, err := NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	win, err := newWindow(cfg)
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}

	rend, err := newRenderer(win, cfg, log)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Shutdown()

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	eng := &Engine{
		Window:   win,
		Renderer: rend,
		Input:    NewInput(),
		Log:      log,
		Config:   cfg,
		start:    time.Now(),
	}
	// Built-in shader failures abort startup instead of the first frame.
	if err := eng.Materials().Init(); err != nil {
		return err
	}
	defer eng.Materials().Release()

	win.SetEventCallback(func(ev Event) {
		eng.Input.Handle(ev)
		switch ev.(type) {
		case EventResize:
			fw, fh := win.FramebufferSize()
			if fw >= 1 && fh >= 1 {
				rend.Resize(fw, fh)
			}
		case EventCloseRequested:
			win.RequestClose()
		}
		handled := false
		eng.Layers.ForEachReverse(func(l Layer) bool {
			handled = l.OnEvent(eng, ev)
			return handled
		})
		if !handled {
			app.OnEvent(eng, ev)
		}
	})

	app.OnStart(eng)
	defer func() {
		for {
			l, ok := eng.Layers.Pop()
			if !ok {
				break
			}
			l.OnDetach(eng)
		}
	}()

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
		accum += now.Sub(prev)
		prev = now

		// Poll OS events (platform will emit via callbacks)
		win.PollEvents()

		steps := 0
		for accum >= tick && steps < maxStep {
			dt := float64(tick) / float64(time.Second)
			eng.Layers.ForEach(func(l Layer) { l.OnUpdate(eng, dt) })
			app.OnUpdate(eng, dt)
			accum -= tick
			steps++
		}
		if steps == maxStep {
			accum = 0
		}
		alpha := float64(accum) / float64(tick)

		rend.Clear(clear[0], clear[1], clear[2], clear[3])
		eng.Layers.ForEach(func(l Layer) { l.OnRender(eng, alpha) })
		app.OnRender(eng, alpha)

		win.SwapBuffers()
	}

	app.OnShutdown(eng)
	log.Info("engine exit", zap.Duration("uptime", eng.Uptime()))
	return nil
}
