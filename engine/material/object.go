package material

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/grove3d/engine/camera"
	"github.com/hubastard/grove3d/engine/geom"
	"github.com/hubastard/grove3d/engine/gfx"
	"github.com/hubastard/grove3d/engine/light"
)

// ObjectMaterial is the default lit material: diffuse lighting from one
// point light, modulated by the object color and texture. Depending on the
// object data it draws the surface, a wireframe and the points, each as a
// separate draw call.
type ObjectMaterial struct {
	dev     gfx.Device
	program gfx.Program

	position, normal, texCoord gfx.Attrib

	view, transform, scale, ntransform gfx.Uniform
	lightPos, color, tex               gfx.Uniform
}

var _ Material = (*ObjectMaterial)(nil)

func NewObjectMaterial(dev gfx.Device) (*ObjectMaterial, error) {
	b, err := compile(dev, ObjectName, objectVertexSrc, objectFragmentSrc)
	if err != nil {
		return nil, err
	}
	m := &ObjectMaterial{
		dev:        dev,
		position:   b.attrib("position"),
		normal:     b.attrib("normal"),
		texCoord:   b.attrib("tex_coord"),
		view:       b.uniform("view"),
		transform:  b.uniform("transform"),
		scale:      b.uniform("scale"),
		ntransform: b.uniform("ntransform"),
		lightPos:   b.uniform("light_position"),
		color:      b.uniform("color"),
		tex:        b.uniform("tex"),
	}
	if m.program, err = b.done(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *ObjectMaterial) Render(pass int, transform geom.Isometry, scale mgl32.Vec3, cam camera.Camera, l light.Light, data *gfx.ObjectData, mesh gfx.Mesh) {
	m.program.Use()
	m.position.Enable()
	m.normal.Enable()
	m.texCoord.Enable()

	// camera and light
	cam.Upload(pass, m.view)
	m.lightPos.SetVec3(l.Position(cam.Eye()))

	// object
	m.transform.SetMat4(transform.Mat4())
	m.ntransform.SetMat3(transform.RotationMat3())
	m.scale.SetMat3(geom.ScaleMat3(scale))
	m.color.SetVec3(data.Color)

	tex := data.Texture
	if tex == nil {
		tex = m.dev.WhiteTexture()
	}
	m.tex.SetInt(0)
	m.dev.BindTexture(0, tex)

	mesh.BindCoords(m.position)
	mesh.BindNormals(m.normal)
	mesh.BindUVs(m.texCoord)
	mesh.BindFaces()

	if data.BackfaceCulling {
		m.dev.SetCulling(true)
	}

	n := mesh.NumPoints()
	if data.SurfaceRendering {
		m.dev.DrawTriangles(n)
	}
	if data.LinesWidth > 0 {
		m.dev.SetLineWidth(data.LinesWidth)
		m.dev.SetPolygonMode(gfx.PolygonLine)
		m.dev.DrawTriangles(n)
		m.dev.SetPolygonMode(gfx.PolygonFill)
		m.dev.SetLineWidth(1)
	}
	if data.PointsSize > 0 {
		m.dev.SetPointSize(data.PointsSize)
		m.dev.SetPolygonMode(gfx.PolygonPoint)
		m.dev.DrawTriangles(n)
		m.dev.SetPolygonMode(gfx.PolygonFill)
		m.dev.SetPointSize(1)
	}

	if data.BackfaceCulling {
		m.dev.SetCulling(false)
	}
	mesh.Unbind()
	m.dev.BindTexture(0, nil)

	m.position.Disable()
	m.normal.Disable()
	m.texCoord.Disable()
}

func (m *ObjectMaterial) Release() { m.program.Delete() }
