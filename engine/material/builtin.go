package material

import "github.com/hubastard/grove3d/engine/gfx"

// Names of the built-in materials registered by every Manager.
const (
	ObjectName  = "object"
	NormalsName = "normals"
	UVsName     = "uvs"
)

// NormalsMaterial colors surfaces by their local-space normal, ignoring lights.
type NormalsMaterial struct {
	*ShaderMaterial
}

func NewNormalsMaterial(dev gfx.Device) (*NormalsMaterial, error) {
	sm, err := NewShaderMaterial(dev, NormalsName, normalsVertexSrc, normalsFragmentSrc, WithNormals())
	if err != nil {
		return nil, err
	}
	return &NormalsMaterial{sm}, nil
}

// UVsMaterial colors surfaces by their texture coordinates.
type UVsMaterial struct {
	*ShaderMaterial
}

func NewUVsMaterial(dev gfx.Device) (*UVsMaterial, error) {
	sm, err := NewShaderMaterial(dev, UVsName, uvsVertexSrc, uvsFragmentSrc, WithUVs())
	if err != nil {
		return nil, err
	}
	return &UVsMaterial{sm}, nil
}
