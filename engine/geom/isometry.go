package geom

import "github.com/go-gl/mathgl/mgl32"

// Isometry is a rigid pose: rotation followed by translation, no scale.
type Isometry struct {
	Rotation    mgl32.Quat
	Translation mgl32.Vec3
}

func Identity() Isometry {
	return Isometry{Rotation: mgl32.QuatIdent()}
}

func Translation(t mgl32.Vec3) Isometry {
	return Isometry{Rotation: mgl32.QuatIdent(), Translation: t}
}

// Mat4 returns the homogeneous 4x4 matrix of the pose (column-major, GLSL-style).
func (iso Isometry) Mat4() mgl32.Mat4 {
	m := iso.Rotation.Normalize().Mat4()
	m[12], m[13], m[14] = iso.Translation[0], iso.Translation[1], iso.Translation[2]
	return m
}

// RotationMat3 is the normal matrix of the pose.
func (iso Isometry) RotationMat3() mgl32.Mat3 {
	return iso.Rotation.Normalize().Mat4().Mat3()
}

// Mul composes two poses: the result applies other first, then iso.
func (iso Isometry) Mul(other Isometry) Isometry {
	return Isometry{
		Rotation:    iso.Rotation.Mul(other.Rotation).Normalize(),
		Translation: iso.Translation.Add(iso.Rotation.Rotate(other.Translation)),
	}
}

func (iso Isometry) AppendTranslation(t mgl32.Vec3) Isometry {
	iso.Translation = iso.Translation.Add(t)
	return iso
}

// PrependRotation rotates the local frame by the scaled-axis vector axisAngle.
func (iso Isometry) PrependRotation(axisAngle mgl32.Vec3) Isometry {
	angle := axisAngle.Len()
	if angle == 0 {
		return iso
	}
	q := mgl32.QuatRotate(angle, axisAngle.Mul(1/angle))
	iso.Rotation = iso.Rotation.Mul(q).Normalize()
	return iso
}

// ScaleMat3 builds the diagonal matrix of a non-uniform scale.
func ScaleMat3(s mgl32.Vec3) mgl32.Mat3 {
	return mgl32.Diag3(s)
}
