package scene

import (
	"slices"

	"github.com/hubastard/grove3d/engine/camera"
	"github.com/hubastard/grove3d/engine/geom"
	"github.com/hubastard/grove3d/engine/gfx"
	"github.com/hubastard/grove3d/engine/light"
	"github.com/hubastard/grove3d/engine/material"
	"github.com/hubastard/grove3d/engine/profiler"
)

// Scene is a flat list of objects drawn with one camera and one light.
type Scene struct {
	dev       gfx.Device
	materials *material.Manager
	objects   []*Object
	Light     light.Light
}

func New(dev gfx.Device, materials *material.Manager) *Scene {
	return &Scene{dev: dev, materials: materials, Light: light.StickToCamera()}
}

func (s *Scene) Objects() []*Object { return s.objects }

// Add appends o. Objects without a material get the default one.
func (s *Scene) Add(o *Object) *Object {
	if o.material == nil {
		o.material = s.materials.Default()
	}
	s.objects = append(s.objects, o)
	return o
}

func (s *Scene) Remove(o *Object) {
	if i := slices.Index(s.objects, o); i >= 0 {
		s.objects = slices.Delete(s.objects, i, i+1)
	}
}

// AddMesh uploads data and adds an object drawn with the default material.
func (s *Scene) AddMesh(data geom.MeshData) (*Object, error) {
	mesh, err := s.dev.NewMesh(data)
	if err != nil {
		return nil, err
	}
	return s.Add(NewObject(mesh, s.materials.Default())), nil
}

func (s *Scene) AddSphere(diameter float32) (*Object, error) {
	return s.AddMesh(geom.Sphere(diameter, 32, 32))
}

func (s *Scene) AddCube(wx, wy, wz float32) (*Object, error) {
	return s.AddMesh(geom.Cube(wx, wy, wz))
}

func (s *Scene) AddQuad(w, h float32) (*Object, error) {
	return s.AddMesh(geom.Quad(w, h))
}

// Render draws every visible object once per camera pass.
func (s *Scene) Render(cam camera.Camera) {
	defer profiler.Start("Scene.Render")()
	for pass := 0; pass < cam.NumPasses(); pass++ {
		cam.StartPass(pass)
		for _, o := range s.objects {
			o.Render(pass, cam, s.Light)
		}
	}
}
