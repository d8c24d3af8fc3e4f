package main

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/grove3d/engine/camera"
	"github.com/hubastard/grove3d/engine/core"
	"github.com/hubastard/grove3d/engine/geom"
	"github.com/hubastard/grove3d/engine/gfx"
	"github.com/hubastard/grove3d/engine/gfx/gfxtest"
	"github.com/hubastard/grove3d/engine/light"
	"github.com/hubastard/grove3d/engine/material"
	"github.com/hubastard/grove3d/engine/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type testRenderer struct{ *gfxtest.Device }

func (testRenderer) Init() error              { return nil }
func (testRenderer) Resize(_, _ int)          {}
func (testRenderer) Clear(_, _, _, _ float32) {}
func (testRenderer) Shutdown()                {}
func (testRenderer) GPUVendor() string        { return "test" }
func (testRenderer) GPURenderer() string      { return "gfxtest" }
func (testRenderer) GPUVersion() string       { return "0" }

func TestWorldNormalsRender(t *testing.T) {
	dev := gfxtest.NewDevice()
	wn, err := NewWorldNormals(dev)
	require.NoError(t, err)

	data := geom.Sphere(1, 8, 4)
	mesh, err := dev.NewMesh(data)
	require.NoError(t, err)

	cam := camera.NewArcBall(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{})
	wn.Render(0, geom.Identity(), mgl32.Vec3{1, 1, 1}, cam, light.StickToCamera(), nil, mesh)

	require.Len(t, dev.Draws, 1)
	assert.Equal(t, len(data.Faces), dev.Draws[0].Count)
	assert.Equal(t, []string{"position", "normal"}, dev.Draws[0].Enabled)
	assert.Empty(t, dev.Draws[0].Program.EnabledAttribs())
	assert.False(t, mesh.(*gfxtest.Mesh).IsBound())

	wn.Release()
	assert.True(t, dev.Draws[0].Program.Deleted)
}

func TestWorldNormalsCompileFailure(t *testing.T) {
	dev := gfxtest.NewDevice()
	dev.FailCompile = true
	_, err := NewWorldNormals(dev)
	assert.Error(t, err)
}

func newTestEngine(t *testing.T) *core.Engine {
	t.Helper()
	cfg := core.DefaultConfig()
	return &core.Engine{
		Renderer: testRenderer{gfxtest.NewDevice()},
		Input:    core.NewInput(),
		Log:      zaptest.NewLogger(t),
		Config:   cfg,
	}
}

func TestViewLayerCyclesMaterials(t *testing.T) {
	e := newTestEngine(t)
	mgr := e.Materials()
	wn, err := NewWorldNormals(e.Renderer)
	require.NoError(t, err)
	mgr.AddMaterial(wn, worldNormalsName)

	s := scene.New(e.Renderer, mgr)
	obj, err := s.AddSphere(1)
	require.NoError(t, err)
	l := NewViewLayer(s, obj, camera.NewArcBall(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{}))
	e.PushLayer(l)
	assert.Equal(t, material.ObjectName, l.MaterialName())

	press := func(k core.Key) bool { return l.OnEvent(e, core.EventKey{Key: k, Down: true}) }

	// Names are sorted: normals, object, uvs, world-normals.
	want := []string{material.UVsName, worldNormalsName, material.NormalsName, material.ObjectName}
	for _, name := range want {
		require.True(t, press(core.KeyM))
		assert.Equal(t, name, l.MaterialName())
		h, ok := mgr.Get(name)
		require.True(t, ok)
		assert.Same(t, h, obj.Material())
	}
}

func TestViewLayerWireframe(t *testing.T) {
	e := newTestEngine(t)
	s := scene.New(e.Renderer, e.Materials())
	obj, err := s.AddSphere(1)
	require.NoError(t, err)
	l := NewViewLayer(s, obj, camera.NewArcBall(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{}))
	e.PushLayer(l)

	require.True(t, l.OnEvent(e, core.EventKey{Key: core.KeyL, Down: true}))
	assert.False(t, obj.Data().SurfaceRendering)
	assert.Equal(t, float32(1), obj.Data().LinesWidth)

	dev := e.Renderer.(testRenderer).Device
	l.OnRender(e, 0)
	require.Len(t, dev.Draws, 1)
	assert.Equal(t, gfx.PolygonLine, dev.Draws[0].Mode)

	require.True(t, l.OnEvent(e, core.EventKey{Key: core.KeyL, Down: true}))
	assert.True(t, obj.Data().SurfaceRendering)
	assert.Zero(t, obj.Data().LinesWidth)
}

func TestViewLayerPassesMouseToController(t *testing.T) {
	e := newTestEngine(t)
	s := scene.New(e.Renderer, e.Materials())
	obj, err := s.AddSphere(1)
	require.NoError(t, err)
	cam := camera.NewArcBall(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{})
	l := NewViewLayer(s, obj, cam)
	e.PushLayer(l)

	dist := cam.Dist
	assert.True(t, l.OnEvent(e, core.EventScroll{Yoff: 1}))
	assert.Less(t, cam.Dist, dist)
	assert.False(t, l.OnEvent(e, core.EventKey{Key: core.KeyP, Down: true}), "P without ctrl is not handled")
}
