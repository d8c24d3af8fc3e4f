package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/grove3d/engine/camera"
	"github.com/hubastard/grove3d/engine/geom"
	"github.com/hubastard/grove3d/engine/gfx"
	"github.com/hubastard/grove3d/engine/light"
	"github.com/hubastard/grove3d/engine/material"
)

// Object is a drawable: a mesh, a pose, a scale and one shared material.
type Object struct {
	Name string

	mesh      gfx.Mesh
	material  *material.Handle
	transform geom.Isometry
	scale     mgl32.Vec3
	data      gfx.ObjectData
	visible   bool
}

// NewObject attaches mat to mesh. A nil material is not drawable until one
// is set.
func NewObject(mesh gfx.Mesh, mat *material.Handle) *Object {
	return &Object{
		mesh:      mesh,
		material:  mat,
		transform: geom.Identity(),
		scale:     mgl32.Vec3{1, 1, 1},
		data:      gfx.DefaultObjectData(),
		visible:   true,
	}
}

func (o *Object) Mesh() gfx.Mesh                 { return o.mesh }
func (o *Object) Material() *material.Handle     { return o.material }
func (o *Object) SetMaterial(h *material.Handle) { o.material = h }

// SetMaterialByName resolves name in mgr. On a miss the object falls back to
// the default material and false is returned.
func (o *Object) SetMaterialByName(mgr *material.Manager, name string) bool {
	if h, ok := mgr.Get(name); ok {
		o.material = h
		return true
	}
	o.material = mgr.Default()
	return false
}

func (o *Object) Transform() geom.Isometry     { return o.transform }
func (o *Object) SetTransform(t geom.Isometry) { o.transform = t }

func (o *Object) SetLocalTranslation(t mgl32.Vec3) { o.transform.Translation = t }
func (o *Object) AppendTranslation(t mgl32.Vec3)   { o.transform = o.transform.AppendTranslation(t) }

// PrependToLocalRotation rotates the object around its own axes by the
// scaled-axis vector axisAngle.
func (o *Object) PrependToLocalRotation(axisAngle mgl32.Vec3) {
	o.transform = o.transform.PrependRotation(axisAngle)
}

func (o *Object) Scale() mgl32.Vec3             { return o.scale }
func (o *Object) SetLocalScale(x, y, z float32) { o.scale = mgl32.Vec3{x, y, z} }

func (o *Object) Data() *gfx.ObjectData         { return &o.data }
func (o *Object) SetColor(r, g, b float32)      { o.data.Color = mgl32.Vec3{r, g, b} }
func (o *Object) SetTexture(t gfx.Texture)      { o.data.Texture = t }
func (o *Object) SetLinesWidth(w float32)       { o.data.LinesWidth = w }
func (o *Object) SetPointsSize(s float32)       { o.data.PointsSize = s }
func (o *Object) SetSurfaceRendering(on bool)   { o.data.SurfaceRendering = on }
func (o *Object) EnableBackfaceCulling(on bool) { o.data.BackfaceCulling = on }

func (o *Object) Visible() bool     { return o.visible }
func (o *Object) SetVisible(v bool) { o.visible = v }

// Render draws the object for one pass through its material.
func (o *Object) Render(pass int, cam camera.Camera, l light.Light) {
	if !o.visible || o.material == nil || o.mesh == nil {
		return
	}
	o.material.Render(pass, o.transform, o.scale, cam, l, &o.data, o.mesh)
}
