// Package camera defines the view/projection contract materials upload from.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/grove3d/engine/gfx"
)

// Camera supplies per-pass view-projection state. A camera may render a
// frame in several passes (stereo eyes, shadow views); materials receive
// the pass index and forward it to Upload.
type Camera interface {
	// Eye is the world-space position of the viewer.
	Eye() mgl32.Vec3
	// Transformation is projection * view for the default pass.
	Transformation() mgl32.Mat4
	NumPasses() int
	StartPass(pass int)
	// Upload writes the view-projection of pass into u. The uniform's
	// program must be in use.
	Upload(pass int, u gfx.Uniform)
	SetViewport(w, h int)
}
