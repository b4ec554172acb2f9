package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera bounds and clamps. The pitch clamp keeps the orbit away from the
// poles so the view never flips.
const (
	MinDistance = 2.0
	MaxDistance = 20.0
	MaxPitch    = 89.0
)

// Camera is an orbit camera: yaw/pitch in degrees around the origin, a
// screen-space pan offset and a zoom distance. It holds no derived state;
// the view matrix and eye position are recomputed from these fields every
// frame.
type Camera struct {
	Yaw      float32
	Pitch    float32
	Pan      mgl32.Vec2
	Distance float32
}

// NewCamera returns the startup pose: slightly above the scene, five units
// out.
func NewCamera() Camera {
	return Camera{
		Yaw:      0,
		Pitch:    30,
		Pan:      mgl32.Vec2{0, 0},
		Distance: 5,
	}
}

// Rotate accumulates a drag delta into yaw and pitch, clamping pitch to
// [-MaxPitch, MaxPitch].
func (c *Camera) Rotate(dyaw, dpitch float32) {
	c.Yaw += dyaw
	c.Pitch += dpitch
	if c.Pitch > MaxPitch {
		c.Pitch = MaxPitch
	}
	if c.Pitch < -MaxPitch {
		c.Pitch = -MaxPitch
	}
}

// PanBy shifts the view sideways/vertically in eye space.
func (c *Camera) PanBy(dx, dy float32) {
	c.Pan = c.Pan.Add(mgl32.Vec2{dx, dy})
}

// Zoom changes the orbit distance, clamped to [MinDistance, MaxDistance].
func (c *Camera) Zoom(delta float32) {
	c.Distance += delta
	if c.Distance < MinDistance {
		c.Distance = MinDistance
	}
	if c.Distance > MaxDistance {
		c.Distance = MaxDistance
	}
}

// ViewMatrix builds the world-to-eye transform: pan and zoom out, then
// orbit rotations. Pure function of the camera fields.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(c.Pan.X(), c.Pan.Y(), -c.Distance).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(c.Pitch))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(c.Yaw)))
}

// Eye returns the camera position in world space, the inverse image of the
// eye-space origin under ViewMatrix.
func (c *Camera) Eye() mgl32.Vec3 {
	return mgl32.HomogRotate3DY(-mgl32.DegToRad(c.Yaw)).
		Mul4(mgl32.HomogRotate3DX(-mgl32.DegToRad(c.Pitch))).
		Mul4x1(mgl32.Vec4{-c.Pan.X(), -c.Pan.Y(), c.Distance, 1}).
		Vec3()
}

// ForwardXZ is the camera's viewing direction projected onto the ground
// plane, unit length. Depends only on yaw.
func (c *Camera) ForwardXZ() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	return mgl32.Vec3{float32(math.Sin(yaw)), 0, float32(-math.Cos(yaw))}
}

// RightXZ is the camera's right direction on the ground plane, unit length.
func (c *Camera) RightXZ() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	return mgl32.Vec3{float32(math.Cos(yaw)), 0, float32(math.Sin(yaw))}
}
