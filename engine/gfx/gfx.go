// Package gfx is the narrow graphics-resource layer consumed by materials.
// It exposes shader programs with named attribute and uniform bindings,
// GPU meshes, textures and the draw call. engine/gfx/gl implements it on
// OpenGL; engine/gfx/gfxtest implements it in memory for tests.
package gfx

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/grove3d/engine/geom"
)

// ErrBindingNotFound is returned by Program lookups for names absent from
// the linked program.
var ErrBindingNotFound = errors.New("binding not found")

// Device creates GPU resources and issues draw calls. All methods must be
// called from the thread owning the graphics context.
type Device interface {
	NewProgram(vertexSrc, fragmentSrc string) (Program, error)
	NewMesh(data geom.MeshData) (Mesh, error)
	NewTexture(desc TextureDesc) (Texture, error)

	// WhiteTexture is a 1x1 opaque white texture used for untextured objects.
	WhiteTexture() Texture
	// BindTexture binds t to the given texture unit; nil unbinds.
	BindTexture(unit int, t Texture)

	SetPolygonMode(mode PolygonMode)
	SetCulling(enabled bool)
	SetLineWidth(w float32)
	SetPointSize(s float32)

	// DrawTriangles draws count indices from the currently bound face buffer.
	DrawTriangles(count int)
}

// Program is a compiled and linked vertex+fragment shader pair.
type Program interface {
	Use()
	// Attrib resolves a vertex attribute by name. The error wraps
	// ErrBindingNotFound when the name is absent.
	Attrib(name string) (Attrib, error)
	// Uniform resolves a uniform by name, same contract as Attrib.
	Uniform(name string) (Uniform, error)
	Delete()
}

type Attrib interface {
	Name() string
	Location() uint32
	Enable()
	Disable()
}

// Uniform uploads values to its program. The owning program must be in use.
type Uniform interface {
	Name() string
	SetMat4(m mgl32.Mat4)
	SetMat3(m mgl32.Mat3)
	SetVec3(v mgl32.Vec3)
	SetFloat(f float32)
	SetInt(i int32)
}

// Mesh is geometry resident on the GPU.
type Mesh interface {
	BindCoords(a Attrib)
	BindNormals(a Attrib)
	BindUVs(a Attrib)
	BindFaces()
	// Unbind releases every buffer bound by the Bind* calls.
	Unbind()
	// NumPoints is the number of indices submitted by a draw of the whole mesh.
	NumPoints() int
	Delete()
}

type Texture interface {
	Size() (w, h int)
	Delete()
}

type TextureFormat int

const (
	TextureRGBA8 TextureFormat = iota
)

// TextureDesc describes tightly packed pixel data.
type TextureDesc struct {
	Width, Height int
	Format        TextureFormat
	Pixels        []byte
	MinFilter     string // "nearest" | "linear"
	MagFilter     string
	WrapU, WrapV  string // "clamp" | "repeat"
}

type PolygonMode int

const (
	PolygonFill PolygonMode = iota
	PolygonLine
	PolygonPoint
)

func (m PolygonMode) String() string {
	switch m {
	case PolygonLine:
		return "line"
	case PolygonPoint:
		return "point"
	default:
		return "fill"
	}
}
