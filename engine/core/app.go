package core

import (
	"time"

	"github.com/hubastard/grove3d/engine/gfx"
	"github.com/hubastard/grove3d/engine/material"
	"go.uber.org/zap"
)

// App defines the game/application hooks.
type App interface {
	OnStart(e *Engine)                 // called once after window/renderer/materials init
	OnUpdate(e *Engine, dt float64)    // called at a fixed tick (60Hz by default)
	OnRender(e *Engine, alpha float64) // render with interpolation alpha [0..1]
	OnEvent(e *Engine, ev Event)       // input/window events
	OnShutdown(e *Engine)              // before exit
}

// Engine exposes core services to the App. It is the execution context of
// one graphics context: its material registry is not shared with any other
// engine.
type Engine struct {
	Window   Window
	Renderer Renderer
	Input    *Input
	Layers   LayerStack
	Log      *zap.Logger
	Config   Config

	materials *material.Manager
	start     time.Time
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Materials returns the engine's material registry, creating it on first
// call. The built-in materials are constructed lazily by the manager.
func (e *Engine) Materials() *material.Manager {
	if e.materials == nil {
		e.materials = material.NewManager(e.Renderer, material.WithLogger(e.Log))
	}
	return e.materials
}

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
}

// Renderer is the context-owning graphics device.
type Renderer interface {
	gfx.Device

	Init() error
	Resize(w, h int)
	Clear(r, g, b, a float32)
	Shutdown()

	GPUVendor() string
	GPURenderer() string
	GPUVersion() string
}

// Event model (can expand over time).
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) isEvent() {}

type EventMouseButton struct {
	Button MouseButton
	Down   bool
	Mods   Mod
}

func (EventMouseButton) isEvent() {}

type EventScroll struct{ Xoff, Yoff float64 }

func (EventScroll) isEvent() {}

// Key/mod enums (subset; add as needed).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyTab
	KeyW
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
	KeyL
	KeyM
	KeyP
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)
