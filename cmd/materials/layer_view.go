package main

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/grove3d/engine/camera"
	"github.com/hubastard/grove3d/engine/core"
	"github.com/hubastard/grove3d/engine/profiler"
	"github.com/hubastard/grove3d/engine/scene"
	"go.uber.org/zap"
)

// ViewLayer orbits the camera around a spinning object and lets the user
// cycle its material (M) and toggle wireframe (L).
type ViewLayer struct {
	scene  *scene.Scene
	target *scene.Object
	cam    *camera.ArcBall
	ctl    *scene.ArcBallController

	material  string
	wireframe bool
	spin      float32 // radians per second around Y
}

func NewViewLayer(s *scene.Scene, target *scene.Object, cam *camera.ArcBall) *ViewLayer {
	return &ViewLayer{
		scene:  s,
		target: target,
		cam:    cam,
		ctl:    scene.NewArcBallController(cam),
		spin:   0.84,
	}
}

func (l *ViewLayer) OnAttach(e *core.Engine) {
	l.material = e.Config.Materials.Initial
	if _, ok := e.Materials().Get(l.material); !ok {
		l.material = ""
	}
}

func (l *ViewLayer) OnDetach(e *core.Engine) {}

func (l *ViewLayer) OnUpdate(e *core.Engine, dt float64) {
	l.ctl.Update(e.Input, float32(dt))
	l.target.PrependToLocalRotation(mgl32.Vec3{0, l.spin * float32(dt), 0})
}

func (l *ViewLayer) OnRender(e *core.Engine, alpha float64) {
	defer profiler.Start("ViewLayer.OnRender")()
	l.scene.Render(l.cam)
}

func (l *ViewLayer) OnEvent(e *core.Engine, ev core.Event) bool {
	if k, ok := ev.(core.EventKey); ok && k.Down {
		switch k.Key {
		case core.KeyM:
			l.nextMaterial(e)
			return true
		case core.KeyL:
			l.toggleWireframe()
			return true
		case core.KeyP:
			if k.Mods&core.ModCtrl != 0 {
				if err := profiler.WriteJSON("profile.json"); err != nil {
					e.Log.Warn("profile not written", zap.Error(err))
				}
				return true
			}
		}
	}
	return l.ctl.HandleEvent(ev)
}

// MaterialName is the registry name of the material currently shown, or
// "default" when the default material is in use.
func (l *ViewLayer) MaterialName() string {
	if l.material == "" {
		return "default"
	}
	return l.material
}

func (l *ViewLayer) nextMaterial(e *core.Engine) {
	names := e.Materials().Names()
	if len(names) == 0 {
		return
	}
	next := names[0]
	if i := slices.Index(names, l.material); i >= 0 {
		next = names[(i+1)%len(names)]
	}
	if l.target.SetMaterialByName(e.Materials(), next) {
		l.material = next
	} else {
		l.material = ""
	}
	e.Log.Debug("material switched", zap.String("name", l.MaterialName()))
}

func (l *ViewLayer) toggleWireframe() {
	l.wireframe = !l.wireframe
	l.target.SetSurfaceRendering(!l.wireframe)
	if l.wireframe {
		l.target.SetLinesWidth(1)
	} else {
		l.target.SetLinesWidth(0)
	}
}
