package scene

import (
	"github.com/hubastard/grove3d/engine/camera"
	"github.com/hubastard/grove3d/engine/core"
)

// ArcBallController: A/D yaw, Q/E pitch, W/S zoom, left-drag rotates, wheel zooms.
type ArcBallController struct {
	RotSpeed  float32 // radians per second for keys
	ZoomSpeed float32 // distance factor per second for keys
	DragSpeed float32 // radians per pixel
	WheelStep float32 // distance factor per wheel notch
	Camera    *camera.ArcBall

	lastX, lastY float64
	dragging     bool
}

func NewArcBallController(cam *camera.ArcBall) *ArcBallController {
	return &ArcBallController{
		RotSpeed:  1.5,
		ZoomSpeed: 2.0,
		DragSpeed: 0.005,
		WheelStep: 0.9,
		Camera:    cam,
	}
}

func (cc *ArcBallController) Update(in *core.Input, dt float32) {
	rot := cc.RotSpeed * dt

	if in.IsKeyDown(core.KeyA) {
		cc.Camera.Rotate(-rot, 0)
	}
	if in.IsKeyDown(core.KeyD) {
		cc.Camera.Rotate(rot, 0)
	}
	if in.IsKeyDown(core.KeyQ) {
		cc.Camera.Rotate(0, -rot)
	}
	if in.IsKeyDown(core.KeyE) {
		cc.Camera.Rotate(0, rot)
	}
	if in.IsKeyDown(core.KeyW) {
		cc.Camera.Zoom(1 / (1 + cc.ZoomSpeed*dt))
	}
	if in.IsKeyDown(core.KeyS) {
		cc.Camera.Zoom(1 + cc.ZoomSpeed*dt)
	}
}

// HandleEvent reacts to mouse input; it returns true when the event was consumed.
func (cc *ArcBallController) HandleEvent(ev core.Event) bool {
	switch e := ev.(type) {
	case core.EventMouseButton:
		if e.Button != core.MouseLeft {
			return false
		}
		cc.dragging = e.Down
		return true
	case core.EventMouseMove:
		dx, dy := e.X-cc.lastX, e.Y-cc.lastY
		cc.lastX, cc.lastY = e.X, e.Y
		if !cc.dragging {
			return false
		}
		cc.Camera.Rotate(float32(dx)*cc.DragSpeed, -float32(dy)*cc.DragSpeed)
		return true
	case core.EventScroll:
		if e.Yoff > 0 {
			cc.Camera.Zoom(cc.WheelStep)
		} else if e.Yoff < 0 {
			cc.Camera.Zoom(1 / cc.WheelStep)
		}
		return true
	case core.EventResize:
		cc.Camera.SetViewport(e.W, e.H)
	}
	return false
}
