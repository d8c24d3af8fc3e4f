package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/grove3d/engine/gfx"
)

const (
	minDist  = 0.01
	maxPitch = math.Pi - 0.01
)

// ArcBall orbits a target point at a distance, looking at it.
type ArcBall struct {
	At    mgl32.Vec3
	Yaw   float32 // radians around +Y
	Pitch float32 // radians from +Y, in (0, pi)
	Dist  float32
	FovY  float32 // radians
	ZNear float32
	ZFar  float32

	aspect float32
	vp     mgl32.Mat4
	dirty  bool
}

var _ Camera = (*ArcBall)(nil)

// NewArcBall looks from eye toward at with a 45 degree vertical field of view.
func NewArcBall(eye, at mgl32.Vec3) *ArcBall {
	c := &ArcBall{At: at, FovY: mgl32.DegToRad(45), ZNear: 0.1, ZFar: 1024, aspect: 1}
	c.LookAt(eye, at)
	return c
}

// LookAt places the eye and target, deriving yaw, pitch and distance.
func (c *ArcBall) LookAt(eye, at mgl32.Vec3) {
	d := eye.Sub(at)
	c.At = at
	c.Dist = clampDist(d.Len())
	c.Yaw = float32(math.Atan2(float64(d.Z()), float64(d.X())))
	if c.Dist > 0 {
		c.Pitch = float32(math.Acos(float64(d.Y() / d.Len())))
	}
	c.Pitch = clampPitch(c.Pitch)
	c.dirty = true
}

func (c *ArcBall) Eye() mgl32.Vec3 {
	sp, cp := math.Sincos(float64(c.Pitch))
	sy, cy := math.Sincos(float64(c.Yaw))
	off := mgl32.Vec3{float32(cy * sp), float32(cp), float32(sy * sp)}
	return c.At.Add(off.Mul(c.Dist))
}

func (c *ArcBall) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye(), c.At, mgl32.Vec3{0, 1, 0})
}

func (c *ArcBall) Projection() mgl32.Mat4 {
	return mgl32.Perspective(c.FovY, c.aspect, c.ZNear, c.ZFar)
}

func (c *ArcBall) Transformation() mgl32.Mat4 {
	if c.dirty {
		c.Recalculate()
	}
	return c.vp
}

func (c *ArcBall) Recalculate() {
	c.vp = c.Projection().Mul4(c.View())
	c.dirty = false
}

func (c *ArcBall) NumPasses() int     { return 1 }
func (c *ArcBall) StartPass(pass int) {}

func (c *ArcBall) Upload(pass int, u gfx.Uniform) {
	u.SetMat4(c.Transformation())
}

func (c *ArcBall) SetViewport(w, h int) {
	if w < 1 || h < 1 {
		return
	}
	c.aspect = float32(w) / float32(h)
	c.dirty = true
}

func (c *ArcBall) Aspect() float32 { return c.aspect }

func (c *ArcBall) Rotate(dyaw, dpitch float32) {
	c.Yaw += dyaw
	c.Pitch = clampPitch(c.Pitch + dpitch)
	c.dirty = true
}

// Zoom scales the orbit distance; factors below 1 move closer.
func (c *ArcBall) Zoom(factor float32) {
	c.Dist = clampDist(c.Dist * factor)
	c.dirty = true
}

func clampDist(d float32) float32 {
	if d < minDist {
		return minDist
	}
	return d
}

func clampPitch(p float32) float32 {
	if p < 0.01 {
		return 0.01
	}
	if p > maxPitch {
		return maxPitch
	}
	return p
}
