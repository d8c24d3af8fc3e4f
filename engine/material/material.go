// Package material implements pluggable shading strategies and the
// name-keyed registry that shares them between scene objects.
package material

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/grove3d/engine/camera"
	"github.com/hubastard/grove3d/engine/geom"
	"github.com/hubastard/grove3d/engine/gfx"
	"github.com/hubastard/grove3d/engine/light"
)

// Material draws one object in one rendering pass.
//
// Render sets up the program, uploads camera, light and object state, binds
// the mesh, issues the draw call(s) and then undoes every binding it made,
// including the mesh's. The transform, scale, camera, light, data and mesh
// are borrowed for the duration of the call only; a Material must not keep
// per-object state between calls so that one instance can serve many objects.
//
// Implementations resolve all of their attribute and uniform bindings at
// construction and fail there; Render has no error path.
type Material interface {
	Render(pass int, transform geom.Isometry, scale mgl32.Vec3, cam camera.Camera, l light.Light, data *gfx.ObjectData, mesh gfx.Mesh)
}

// Releaser is implemented by materials owning GPU resources.
type Releaser interface {
	Release()
}

// Handle is a shared reference to a Material. Every holder (the registry,
// scene objects) keeps the same *Handle; the material lives as long as the
// longest holder. Render calls through a handle are serialized.
type Handle struct {
	mu sync.Mutex
	m  Material
}

// Share wraps m in a new handle.
func Share(m Material) *Handle { return &Handle{m: m} }

// Material returns the wrapped material. Callers rendering through it
// directly bypass the handle's serialization.
func (h *Handle) Material() Material { return h.m }

// Render draws through the wrapped material while holding the handle's
// lock. A nil data uses gfx.DefaultObjectData.
func (h *Handle) Render(pass int, transform geom.Isometry, scale mgl32.Vec3, cam camera.Camera, l light.Light, data *gfx.ObjectData, mesh gfx.Mesh) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if data == nil {
		d := gfx.DefaultObjectData()
		data = &d
	}
	h.m.Render(pass, transform, scale, cam, l, data, mesh)
}

// Release frees the material's GPU resources if it owns any. The handle
// must not be rendered afterwards.
func (h *Handle) Release() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if r, ok := h.m.(Releaser); ok {
		r.Release()
	}
}
