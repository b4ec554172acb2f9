package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestRotateClampsPitch(t *testing.T) {
	c := NewCamera()

	c.Rotate(0, 500)
	assert.Equal(t, float32(MaxPitch), c.Pitch)

	c.Rotate(0, -2000)
	assert.Equal(t, float32(-MaxPitch), c.Pitch)

	// A long alternating drag sequence never escapes the clamp
	for i := 0; i < 100; i++ {
		c.Rotate(13, 37)
		c.Rotate(-5, -91)
		assert.LessOrEqual(t, c.Pitch, float32(MaxPitch))
		assert.GreaterOrEqual(t, c.Pitch, float32(-MaxPitch))
	}
}

func TestZoomClampsDistance(t *testing.T) {
	c := NewCamera()

	for i := 0; i < 50; i++ {
		c.Zoom(1)
	}
	assert.Equal(t, float32(MaxDistance), c.Distance)

	for i := 0; i < 50; i++ {
		c.Zoom(-1)
	}
	assert.Equal(t, float32(MinDistance), c.Distance)

	// Boundary is idempotent
	c.Zoom(-1)
	assert.Equal(t, float32(MinDistance), c.Distance)
}

func TestEyeIsDeterministic(t *testing.T) {
	a := Camera{Yaw: 42, Pitch: -17, Pan: mgl32.Vec2{0.3, -0.1}, Distance: 7}
	b := Camera{Yaw: 42, Pitch: -17, Pan: mgl32.Vec2{0.3, -0.1}, Distance: 7}

	assert.Equal(t, a.Eye(), b.Eye())
	assert.Equal(t, a.ViewMatrix(), b.ViewMatrix())
}

func TestViewMatrixMapsEyeToOrigin(t *testing.T) {
	cameras := []Camera{
		NewCamera(),
		{Yaw: 90, Pitch: 45, Distance: 10},
		{Yaw: -135, Pitch: -80, Pan: mgl32.Vec2{1, 2}, Distance: 3},
		{Yaw: 720, Pitch: 89, Pan: mgl32.Vec2{-0.5, 0.25}, Distance: 20},
	}
	for _, c := range cameras {
		eye := c.Eye()
		got := c.ViewMatrix().Mul4x1(eye.Vec4(1))
		assert.InDelta(t, 0, got.X(), 1e-4)
		assert.InDelta(t, 0, got.Y(), 1e-4)
		assert.InDelta(t, 0, got.Z(), 1e-4)
	}
}

func TestGroundAxes(t *testing.T) {
	c := NewCamera()

	fwd := c.ForwardXZ()
	right := c.RightXZ()

	assert.InDelta(t, 1, float64(fwd.Len()), 1e-6)
	assert.InDelta(t, 1, float64(right.Len()), 1e-6)
	assert.InDelta(t, 0, float64(fwd.Dot(right)), 1e-6)
	assert.Zero(t, fwd.Y())
	assert.Zero(t, right.Y())

	// Default pose looks down -Z with +X to the right
	assert.InDelta(t, -1, float64(fwd.Z()), 1e-6)
	assert.InDelta(t, 1, float64(right.X()), 1e-6)
}

func TestDefaultDistanceWithinBounds(t *testing.T) {
	c := NewCamera()
	assert.GreaterOrEqual(t, c.Distance, float32(MinDistance))
	assert.LessOrEqual(t, c.Distance, float32(MaxDistance))
}
