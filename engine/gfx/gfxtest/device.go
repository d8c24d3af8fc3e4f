// Package gfxtest provides an in-memory gfx.Device that records the calls a
// material makes. Programs are "compiled" by scanning GLSL declarations, so
// attribute and uniform lookups fail exactly when the name is not declared.
package gfxtest

import (
	"fmt"
	"regexp"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/grove3d/engine/geom"
	"github.com/hubastard/grove3d/engine/gfx"
)

var (
	attribDecl  = regexp.MustCompile(`(?m)^\s*(?:attribute|in)\s+\w+\s+(\w+)\s*;`)
	uniformDecl = regexp.MustCompile(`(?m)^\s*uniform\s+\w+\s+(\w+)\s*(?:\[\s*\d+\s*\])?\s*;`)
)

// Draw is one recorded draw call.
type Draw struct {
	Program *Program
	Count   int
	Mode    gfx.PolygonMode
	// Enabled lists the attribute names enabled at draw time.
	Enabled []string
}

// Device records resources and draw calls. It is not safe for concurrent use,
// matching the single graphics-thread contract.
type Device struct {
	Programs []*Program
	Meshes   []*Mesh
	Draws    []Draw

	PolygonMode gfx.PolygonMode
	Culling     bool
	LineWidth   float32
	PointSize   float32
	Bound       map[int]gfx.Texture

	// FailCompile makes NewProgram return an error.
	FailCompile bool

	current *Program
	white   *Texture
}

var _ gfx.Device = (*Device)(nil)

func NewDevice() *Device {
	return &Device{
		Bound:     map[int]gfx.Texture{},
		LineWidth: 1,
		PointSize: 1,
		white:     &Texture{w: 1, h: 1},
	}
}

func (d *Device) NewProgram(vertexSrc, fragmentSrc string) (gfx.Program, error) {
	if d.FailCompile {
		return nil, fmt.Errorf("vertex shader compile error: forced")
	}
	p := &Program{
		dev:      d,
		attribs:  map[string]*Attrib{},
		uniforms: map[string]*Uniform{},
	}
	for _, m := range attribDecl.FindAllStringSubmatch(vertexSrc, -1) {
		p.attribs[m[1]] = &Attrib{name: m[1], loc: uint32(len(p.attribs))}
	}
	for _, src := range []string{vertexSrc, fragmentSrc} {
		for _, m := range uniformDecl.FindAllStringSubmatch(src, -1) {
			p.uniforms[m[1]] = &Uniform{name: m[1], prog: p}
		}
	}
	d.Programs = append(d.Programs, p)
	return p, nil
}

func (d *Device) NewMesh(data geom.MeshData) (gfx.Mesh, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}
	m := &Mesh{dev: d, data: data.Complete(), Bound: map[string]string{}}
	d.Meshes = append(d.Meshes, m)
	return m, nil
}

func (d *Device) NewTexture(desc gfx.TextureDesc) (gfx.Texture, error) {
	if desc.Width <= 0 || desc.Height <= 0 {
		return nil, fmt.Errorf("texture %dx%d", desc.Width, desc.Height)
	}
	return &Texture{w: desc.Width, h: desc.Height}, nil
}

func (d *Device) WhiteTexture() gfx.Texture { return d.white }

func (d *Device) BindTexture(unit int, t gfx.Texture) {
	if t == nil {
		delete(d.Bound, unit)
		return
	}
	d.Bound[unit] = t
}

func (d *Device) SetPolygonMode(mode gfx.PolygonMode) { d.PolygonMode = mode }
func (d *Device) SetCulling(enabled bool)             { d.Culling = enabled }
func (d *Device) SetLineWidth(w float32)              { d.LineWidth = w }
func (d *Device) SetPointSize(s float32)              { d.PointSize = s }

func (d *Device) DrawTriangles(count int) {
	draw := Draw{Program: d.current, Count: count, Mode: d.PolygonMode}
	if d.current != nil {
		draw.Enabled = d.current.EnabledAttribs()
	}
	d.Draws = append(d.Draws, draw)
}

// Current is the program in use, or nil.
func (d *Device) Current() *Program { return d.current }

// Reset forgets recorded draw calls.
func (d *Device) Reset() { d.Draws = nil }

type Program struct {
	dev      *Device
	attribs  map[string]*Attrib
	uniforms map[string]*Uniform
	Deleted  bool
	Uses     int
}

func (p *Program) Use() {
	if p.Deleted {
		panic("gfxtest: use of deleted program")
	}
	p.Uses++
	p.dev.current = p
}

func (p *Program) Attrib(name string) (gfx.Attrib, error) {
	a, ok := p.attribs[name]
	if !ok {
		return nil, fmt.Errorf("attribute %q: %w", name, gfx.ErrBindingNotFound)
	}
	return a, nil
}

func (p *Program) Uniform(name string) (gfx.Uniform, error) {
	u, ok := p.uniforms[name]
	if !ok {
		return nil, fmt.Errorf("uniform %q: %w", name, gfx.ErrBindingNotFound)
	}
	return u, nil
}

func (p *Program) Delete() {
	p.Deleted = true
	if p.dev.current == p {
		p.dev.current = nil
	}
}

// EnabledAttribs returns the names of currently enabled attributes, sorted by location.
func (p *Program) EnabledAttribs() []string {
	out := make([]string, len(p.attribs))
	n := 0
	for _, a := range p.attribs {
		if a.enabled {
			out[a.loc] = a.name
			n++
		}
	}
	res := make([]string, 0, n)
	for _, s := range out {
		if s != "" {
			res = append(res, s)
		}
	}
	return res
}

// UniformValue returns the last value uploaded to the named uniform.
func (p *Program) UniformValue(name string) (any, bool) {
	u, ok := p.uniforms[name]
	if !ok || u.Value == nil {
		return nil, false
	}
	return u.Value, true
}

type Attrib struct {
	name    string
	loc     uint32
	enabled bool
}

func (a *Attrib) Name() string     { return a.name }
func (a *Attrib) Location() uint32 { return a.loc }
func (a *Attrib) Enable()          { a.enabled = true }
func (a *Attrib) Disable()         { a.enabled = false }
func (a *Attrib) Enabled() bool    { return a.enabled }

type Uniform struct {
	name  string
	prog  *Program
	Value any
}

func (u *Uniform) Name() string { return u.name }

func (u *Uniform) set(v any) {
	if u.prog.dev.current != u.prog {
		panic(fmt.Sprintf("gfxtest: uniform %q set while its program is not in use", u.name))
	}
	u.Value = v
}

func (u *Uniform) SetMat4(m mgl32.Mat4) { u.set(m) }
func (u *Uniform) SetMat3(m mgl32.Mat3) { u.set(m) }
func (u *Uniform) SetVec3(v mgl32.Vec3) { u.set(v) }
func (u *Uniform) SetFloat(f float32)   { u.set(f) }
func (u *Uniform) SetInt(i int32)       { u.set(i) }

// Mesh tracks which stream is bound to which attribute.
type Mesh struct {
	dev        *Device
	data       geom.MeshData
	Bound      map[string]string // stream -> attribute name
	FacesBound bool
	Deleted    bool
}

func (m *Mesh) BindCoords(a gfx.Attrib)  { m.bind("coords", len(m.data.Coords), a) }
func (m *Mesh) BindNormals(a gfx.Attrib) { m.bind("normals", len(m.data.Normals), a) }
func (m *Mesh) BindUVs(a gfx.Attrib)     { m.bind("uvs", len(m.data.UVs), a) }
func (m *Mesh) BindFaces()               { m.FacesBound = true }

func (m *Mesh) Unbind() {
	clear(m.Bound)
	m.FacesBound = false
}

// bind panics on an empty stream: a GL device would point the attribute at
// buffer 0.
func (m *Mesh) bind(stream string, n int, a gfx.Attrib) {
	if n == 0 {
		panic(fmt.Sprintf("gfxtest: %s stream is empty, cannot bind %q", stream, a.Name()))
	}
	m.Bound[stream] = a.Name()
}

// Data is the geometry as uploaded, with missing streams filled in.
func (m *Mesh) Data() geom.MeshData { return m.data }

func (m *Mesh) NumPoints() int { return len(m.data.Faces) }
func (m *Mesh) Delete()        { m.Deleted = true }

// IsBound reports whether any stream or the face buffer is still bound.
func (m *Mesh) IsBound() bool { return m.FacesBound || len(m.Bound) > 0 }

type Texture struct {
	w, h    int
	Deleted bool
}

func (t *Texture) Size() (int, int) { return t.w, t.h }
func (t *Texture) Delete()          { t.Deleted = true }
