package material

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/grove3d/engine/camera"
	"github.com/hubastard/grove3d/engine/geom"
	"github.com/hubastard/grove3d/engine/gfx"
	"github.com/hubastard/grove3d/engine/gfx/gfxtest"
	"github.com/hubastard/grove3d/engine/light"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// normalColorVertexSrc is a user material coloring by normal.
const normalColorVertexSrc = `#version 120
attribute vec3 position;
attribute vec3 normal;
uniform mat4 view;
uniform mat4 transform;
uniform mat3 scale;
varying vec3 ls_normal;

void main() {
    ls_normal   = normal;
    gl_Position = view * transform * mat4(scale) * vec4(position, 1.0);
}
`

const normalColorFragmentSrc = `#version 120
varying vec3 ls_normal;

void main() {
    gl_FragColor = vec4((ls_normal + 1.0) / 2.0, 1.0);
}
`

type fixture struct {
	dev  *gfxtest.Device
	mesh *gfxtest.Mesh
	cam  *camera.ArcBall
	l    light.Light
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dev := gfxtest.NewDevice()
	mesh, err := dev.NewMesh(geom.Sphere(1, 16, 8))
	require.NoError(t, err)
	return &fixture{
		dev:  dev,
		mesh: mesh.(*gfxtest.Mesh),
		cam:  camera.NewArcBall(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}),
		l:    light.StickToCamera(),
	}
}

func (f *fixture) render(m Material, data gfx.ObjectData) {
	m.Render(0, geom.Identity(), mgl32.Vec3{1, 1, 1}, f.cam, f.l, &data, f.mesh)
}

// assertClean checks nothing the material enabled is left active.
func (f *fixture) assertClean(t *testing.T) {
	t.Helper()
	assert.False(t, f.mesh.IsBound(), "mesh left bound")
	for _, p := range f.dev.Programs {
		assert.Empty(t, p.EnabledAttribs(), "attributes left enabled")
	}
	assert.Empty(t, f.dev.Bound, "texture left bound")
	assert.False(t, f.dev.Culling, "culling left enabled")
	assert.Equal(t, gfx.PolygonFill, f.dev.PolygonMode)
}

func TestBuiltinsRenderOneDraw(t *testing.T) {
	cases := []struct {
		name    string
		new     func(gfx.Device) (Material, error)
		enabled []string
	}{
		{ObjectName, func(d gfx.Device) (Material, error) { return NewObjectMaterial(d) }, []string{"position", "normal", "tex_coord"}},
		{NormalsName, func(d gfx.Device) (Material, error) { return NewNormalsMaterial(d) }, []string{"position", "normal"}},
		{UVsName, func(d gfx.Device) (Material, error) { return NewUVsMaterial(d) }, []string{"position", "tex_coord"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			m, err := tc.new(f.dev)
			require.NoError(t, err)

			f.render(m, gfx.DefaultObjectData())

			require.Len(t, f.dev.Draws, 1)
			assert.Equal(t, f.mesh.NumPoints(), f.dev.Draws[0].Count)
			assert.ElementsMatch(t, tc.enabled, f.dev.Draws[0].Enabled)
			f.assertClean(t)
		})
	}
}

func TestObjectMaterialUniforms(t *testing.T) {
	f := newFixture(t)
	m, err := NewObjectMaterial(f.dev)
	require.NoError(t, err)

	data := gfx.DefaultObjectData()
	data.Color = mgl32.Vec3{1, 0, 0}
	pose := geom.Translation(mgl32.Vec3{1, 2, 3})
	m.Render(0, pose, mgl32.Vec3{2, 2, 2}, f.cam, light.Absolute(mgl32.Vec3{0, 10, 0}), &data, f.mesh)

	prog := f.dev.Programs[0]
	get := func(name string) any {
		v, ok := prog.UniformValue(name)
		require.True(t, ok, name)
		return v
	}
	assert.Equal(t, pose.Mat4(), get("transform"))
	assert.Equal(t, geom.ScaleMat3(mgl32.Vec3{2, 2, 2}), get("scale"))
	assert.Equal(t, mgl32.Vec3{0, 10, 0}, get("light_position"))
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, get("color"))
	assert.Equal(t, f.cam.Transformation(), get("view"))
	assert.Equal(t, int32(0), get("tex"))
}

func TestObjectMaterialLinesAndPoints(t *testing.T) {
	f := newFixture(t)
	m, err := NewObjectMaterial(f.dev)
	require.NoError(t, err)

	data := gfx.DefaultObjectData()
	data.LinesWidth = 2
	data.PointsSize = 4
	f.render(m, data)

	require.Len(t, f.dev.Draws, 3)
	assert.Equal(t, gfx.PolygonFill, f.dev.Draws[0].Mode)
	assert.Equal(t, gfx.PolygonLine, f.dev.Draws[1].Mode)
	assert.Equal(t, gfx.PolygonPoint, f.dev.Draws[2].Mode)
	assert.Equal(t, float32(1), f.dev.LineWidth)
	assert.Equal(t, float32(1), f.dev.PointSize)
	f.assertClean(t)
}

func TestObjectMaterialWithoutSurface(t *testing.T) {
	f := newFixture(t)
	m, err := NewObjectMaterial(f.dev)
	require.NoError(t, err)

	data := gfx.DefaultObjectData()
	data.SurfaceRendering = false
	f.render(m, data)

	assert.Empty(t, f.dev.Draws)
	f.assertClean(t)
}

func TestCustomMaterial(t *testing.T) {
	f := newFixture(t)
	m, err := NewShaderMaterial(f.dev, "normal-color", normalColorVertexSrc, normalColorFragmentSrc, WithNormals())
	require.NoError(t, err)
	assert.Equal(t, "normal-color", m.Name())

	f.render(m, gfx.DefaultObjectData())

	require.Len(t, f.dev.Draws, 1)
	assert.Equal(t, []string{"position", "normal"}, f.dev.Draws[0].Enabled)
	f.assertClean(t)
}

func TestMissingBindingFailsConstruction(t *testing.T) {
	f := newFixture(t)
	// The source has no tex_coord attribute.
	_, err := NewShaderMaterial(f.dev, "broken", normalColorVertexSrc, normalColorFragmentSrc, WithUVs())
	require.Error(t, err)

	var be *BindingError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, "broken", be.Material)
	assert.Equal(t, "attribute", be.Kind)
	assert.Equal(t, "tex_coord", be.Name)
	assert.True(t, errors.Is(err, gfx.ErrBindingNotFound))
	assert.Contains(t, err.Error(), `material "broken"`)
	assert.Contains(t, err.Error(), `"tex_coord"`)

	require.Len(t, f.dev.Programs, 1)
	assert.True(t, f.dev.Programs[0].Deleted)
	assert.Empty(t, f.dev.Draws)
}

func TestMissingBindingsAreAllReported(t *testing.T) {
	f := newFixture(t)
	vs := "#version 120\nattribute vec3 position;\nuniform mat4 view;\nvoid main() {}\n"
	_, err := NewShaderMaterial(f.dev, "sparse", vs, "void main() {}\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `uniform "transform"`)
	assert.Contains(t, err.Error(), `uniform "scale"`)
	assert.NotContains(t, err.Error(), `"view"`)
}

func TestCompileFailure(t *testing.T) {
	f := newFixture(t)
	f.dev.FailCompile = true
	_, err := NewObjectMaterial(f.dev)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `material "object"`)
}

func TestShaderMaterialPasses(t *testing.T) {
	f := newFixture(t)
	m, err := NewShaderMaterial(f.dev, "pass1", normalColorVertexSrc, normalColorFragmentSrc, WithNormals(), WithPasses(1))
	require.NoError(t, err)

	f.render(m, gfx.DefaultObjectData())
	assert.Empty(t, f.dev.Draws)

	data := gfx.DefaultObjectData()
	m.Render(1, geom.Identity(), mgl32.Vec3{1, 1, 1}, f.cam, f.l, &data, f.mesh)
	assert.Len(t, f.dev.Draws, 1)
}

func TestHandleRenderDefaultsObjectData(t *testing.T) {
	f := newFixture(t)
	m, err := NewObjectMaterial(f.dev)
	require.NoError(t, err)
	h := Share(m)
	assert.Same(t, m, h.Material())

	h.Render(0, geom.Identity(), mgl32.Vec3{1, 1, 1}, f.cam, f.l, nil, f.mesh)
	require.Len(t, f.dev.Draws, 1)
	v, _ := f.dev.Programs[0].UniformValue("color")
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, v)

	h.Release()
	assert.True(t, f.dev.Programs[0].Deleted)
}

func TestRenderMeshWithoutNormalsOrUVs(t *testing.T) {
	f := newFixture(t)
	mesh, err := f.dev.NewMesh(geom.MeshData{
		Coords: []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Faces:  []uint32{0, 1, 2},
	})
	require.NoError(t, err)
	f.mesh = mesh.(*gfxtest.Mesh)

	object, err := NewObjectMaterial(f.dev)
	require.NoError(t, err)
	normals, err := NewNormalsMaterial(f.dev)
	require.NoError(t, err)
	uvs, err := NewUVsMaterial(f.dev)
	require.NoError(t, err)

	for _, m := range []Material{object, normals, uvs} {
		require.NotPanics(t, func() { f.render(m, gfx.DefaultObjectData()) })
	}
	require.Len(t, f.dev.Draws, 3)
	for _, d := range f.dev.Draws {
		assert.Equal(t, 3, d.Count)
	}
	assert.True(t, f.mesh.Data().Normals[0].ApproxEqual(mgl32.Vec3{0, 0, 1}))
	f.assertClean(t)
}
