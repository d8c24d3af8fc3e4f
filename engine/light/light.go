package light

import "github.com/go-gl/mathgl/mgl32"

// Light is a point light either fixed in world space or attached to the viewer.
type Light struct {
	stickToCamera bool
	position      mgl32.Vec3
}

func Absolute(pos mgl32.Vec3) Light { return Light{position: pos} }

// StickToCamera places the light at the camera eye every frame.
func StickToCamera() Light { return Light{stickToCamera: true} }

func (l Light) IsStickToCamera() bool { return l.stickToCamera }

// Position resolves the light position for a viewer at eye.
func (l Light) Position(eye mgl32.Vec3) mgl32.Vec3 {
	if l.stickToCamera {
		return eye
	}
	return l.position
}
