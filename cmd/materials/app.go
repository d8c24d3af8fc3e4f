package main

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/grove3d/engine/assets"
	"github.com/hubastard/grove3d/engine/camera"
	"github.com/hubastard/grove3d/engine/colors"
	"github.com/hubastard/grove3d/engine/core"
	"github.com/hubastard/grove3d/engine/profiler"
	"github.com/hubastard/grove3d/engine/scene"
	"go.uber.org/zap"
)

type App struct {
	view *ViewLayer

	frames    int
	lastTitle time.Time
}

func (a *App) OnStart(e *core.Engine) {
	mgr := e.Materials()

	wn, err := NewWorldNormals(e.Renderer)
	if err != nil {
		panic(err)
	}
	mgr.AddMaterial(wn, worldNormalsName)

	if err := assets.RegisterShaderMaterials(e.Renderer, mgr, e.Config.Assets.Root, e.Config.Materials.Custom); err != nil {
		e.Log.Warn("custom materials not loaded", zap.Error(err))
	}

	s := scene.New(e.Renderer, mgr)
	sphere, err := s.AddSphere(1)
	if err != nil {
		panic(err)
	}
	sphere.Data().Color = colors.Offwhite.RGB()
	if !sphere.SetMaterialByName(mgr, e.Config.Materials.Initial) {
		e.Log.Warn("unknown initial material, using default", zap.String("name", e.Config.Materials.Initial))
	}

	cam := camera.NewArcBall(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{})
	cam.SetViewport(e.Window.FramebufferSize())

	a.view = NewViewLayer(s, sphere, cam)
	e.PushLayer(a.view)
	e.Log.Info("materials available", zap.Strings("names", mgr.Names()))
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {}

func (a *App) OnRender(e *core.Engine, alpha float64) {
	a.frames++
	now := time.Now()
	if a.lastTitle.IsZero() {
		a.lastTitle = now
		return
	}
	if elapsed := now.Sub(a.lastTitle); elapsed >= time.Second {
		fps := float64(a.frames) / elapsed.Seconds()
		e.Window.SetTitle(fmt.Sprintf("%s [%s] %.0f FPS %.1f MB",
			e.Config.Title, a.view.MaterialName(), fps, float64(profiler.MemoryUsage())/(1<<20)))
		a.frames = 0
		a.lastTitle = now
	}
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	if k, ok := ev.(core.EventKey); ok && k.Down && k.Key == core.KeyEscape {
		e.Window.RequestClose()
	}
}

func (a *App) OnShutdown(e *core.Engine) {
	if profiler.Enabled {
		if err := profiler.WriteJSON("profile.json"); err != nil {
			e.Log.Warn("profile not written", zap.Error(err))
		}
	}
}
