package main

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/grove3d/engine/camera"
	"github.com/hubastard/grove3d/engine/geom"
	"github.com/hubastard/grove3d/engine/gfx"
	"github.com/hubastard/grove3d/engine/light"
	"github.com/hubastard/grove3d/engine/material"
)

const worldNormalsName = "world-normals"

// WorldNormals colors each fragment by its normal rotated into world space,
// so the colors stay fixed to the scene while the object spins.
type WorldNormals struct {
	dev     gfx.Device
	program gfx.Program

	position, normal       gfx.Attrib
	view, transform, scale gfx.Uniform
}

var _ material.Material = (*WorldNormals)(nil)

func NewWorldNormals(dev gfx.Device) (*WorldNormals, error) {
	prog, err := dev.NewProgram(worldNormalsVertexSrc, worldNormalsFragmentSrc)
	if err != nil {
		return nil, err
	}
	prog.Use()

	var errs []error
	attrib := func(name string) gfx.Attrib {
		a, err := prog.Attrib(name)
		if err != nil {
			errs = append(errs, &material.BindingError{Material: worldNormalsName, Kind: "attribute", Name: name, Err: err})
		}
		return a
	}
	uniform := func(name string) gfx.Uniform {
		u, err := prog.Uniform(name)
		if err != nil {
			errs = append(errs, &material.BindingError{Material: worldNormalsName, Kind: "uniform", Name: name, Err: err})
		}
		return u
	}

	m := &WorldNormals{
		dev:       dev,
		program:   prog,
		position:  attrib("position"),
		normal:    attrib("normal"),
		view:      uniform("view"),
		transform: uniform("transform"),
		scale:     uniform("scale"),
	}
	if len(errs) > 0 {
		prog.Delete()
		return nil, errors.Join(errs...)
	}
	return m, nil
}

func (m *WorldNormals) Render(pass int, transform geom.Isometry, scale mgl32.Vec3, cam camera.Camera, _ light.Light, _ *gfx.ObjectData, mesh gfx.Mesh) {
	m.program.Use()
	m.position.Enable()
	m.normal.Enable()

	cam.Upload(pass, m.view)
	m.transform.SetMat4(transform.Mat4())
	m.scale.SetMat3(geom.ScaleMat3(scale))

	mesh.BindCoords(m.position)
	mesh.BindNormals(m.normal)
	mesh.BindFaces()

	m.dev.DrawTriangles(mesh.NumPoints())

	mesh.Unbind()
	m.position.Disable()
	m.normal.Disable()
}

func (m *WorldNormals) Release() { m.program.Delete() }

const worldNormalsVertexSrc = `#version 120
attribute vec3 position;
attribute vec3 normal;
uniform mat4 view;
uniform mat4 transform;
uniform mat3 scale;
varying vec3 ws_normal;

void main() {
    ws_normal   = mat3(transform) * normal;
    gl_Position = view * transform * mat4(scale) * vec4(position, 1.0);
}
`

const worldNormalsFragmentSrc = `#version 120
varying vec3 ws_normal;

void main() {
    gl_FragColor = vec4((normalize(ws_normal) + 1.0) / 2.0, 1.0);
}
`
