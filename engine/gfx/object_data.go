package gfx

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/grove3d/engine/colors"
)

// ObjectData is the per-object state a material reads while rendering.
type ObjectData struct {
	Color   mgl32.Vec3
	Texture Texture // nil selects the device's white texture

	SurfaceRendering bool
	BackfaceCulling  bool
	LinesWidth       float32 // > 0 draws the wireframe on top of the surface
	PointsSize       float32 // > 0 draws the vertices as points

	UserData any
}

// DefaultObjectData returns white, surface-only, culled rendering.
func DefaultObjectData() ObjectData {
	return ObjectData{
		Color:            colors.White.RGB(),
		SurfaceRendering: true,
		BackfaceCulling:  true,
	}
}
