package glbackend

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/grove3d/engine/geom"
	"github.com/hubastard/grove3d/engine/gfx"
)

// meshGL keeps one buffer per vertex stream so materials can bind only the
// streams their program declares.
type meshGL struct {
	coords, normals, uvs, faces uint32
	numPts                      int
}

func newMeshGL(data geom.MeshData) *meshGL {
	m := &meshGL{numPts: len(data.Faces)}
	m.coords = arrayBuffer(data.Coords, len(data.Coords)*3*4)
	if len(data.Normals) > 0 {
		m.normals = arrayBuffer(data.Normals, len(data.Normals)*3*4)
	}
	if len(data.UVs) > 0 {
		m.uvs = arrayBuffer(data.UVs, len(data.UVs)*2*4)
	}

	gl.GenBuffers(1, &m.faces)
	if len(data.Faces) > 0 {
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.faces)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data.Faces)*4, gl.Ptr(data.Faces), gl.STATIC_DRAW)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	}
	return m
}

// arrayBuffer uploads a non-empty slice into a new GL_ARRAY_BUFFER.
func arrayBuffer(data any, size int) uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	gl.BindBuffer(gl.ARRAY_BUFFER, id)
	gl.BufferData(gl.ARRAY_BUFFER, size, gl.Ptr(data), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return id
}

func (m *meshGL) BindCoords(a gfx.Attrib)  { bindStream(m.coords, a, 3) }
func (m *meshGL) BindNormals(a gfx.Attrib) { bindStream(m.normals, a, 3) }
func (m *meshGL) BindUVs(a gfx.Attrib)     { bindStream(m.uvs, a, 2) }

func (m *meshGL) BindFaces() { gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.faces) }

func (m *meshGL) Unbind() {
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
}

func (m *meshGL) NumPoints() int { return m.numPts }

func (m *meshGL) Delete() {
	for _, id := range []*uint32{&m.coords, &m.normals, &m.uvs, &m.faces} {
		if *id != 0 {
			gl.DeleteBuffers(1, id)
			*id = 0
		}
	}
}

func bindStream(buf uint32, a gfx.Attrib, size int32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buf)
	gl.VertexAttribPointer(a.Location(), size, gl.FLOAT, false, 0, nil)
}
