package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vertexAt(verts []float32, i int) (pos, normal [3]float32, u, v float32) {
	base := i * VertexStride
	copy(pos[:], verts[base:base+3])
	copy(normal[:], verts[base+3:base+6])
	return pos, normal, verts[base+6], verts[base+7]
}

func length(v [3]float32) float64 {
	return math.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2]))
}

func TestCubeLayout(t *testing.T) {
	verts := Cube(1.0)
	require.Equal(t, 36*VertexStride, len(verts))
	assert.Equal(t, 36, VertexCount(verts))

	for i := 0; i < VertexCount(verts); i++ {
		pos, normal, u, v := vertexAt(verts, i)
		for axis := 0; axis < 3; axis++ {
			assert.InDelta(t, 0.5, math.Abs(float64(pos[axis])), 1e-6)
		}
		assert.InDelta(t, 1, length(normal), 1e-6)
		assert.GreaterOrEqual(t, u, float32(0))
		assert.LessOrEqual(t, u, float32(1))
		assert.GreaterOrEqual(t, v, float32(0))
		assert.LessOrEqual(t, v, float32(1))
	}
}

func TestSphereVerticesOnRadius(t *testing.T) {
	const radius = 0.5
	verts := Sphere(radius, 16, 16)
	require.Equal(t, 16*16*6, VertexCount(verts))

	for i := 0; i < VertexCount(verts); i++ {
		pos, normal, _, _ := vertexAt(verts, i)
		assert.InDelta(t, radius, length(pos), 1e-5)
		assert.InDelta(t, 1, length(normal), 1e-5)
		// Outward normal: parallel to the position vector
		for axis := 0; axis < 3; axis++ {
			assert.InDelta(t, float64(pos[axis])/radius, float64(normal[axis]), 1e-5)
		}
	}
}

func TestTorusBounds(t *testing.T) {
	const major, minor = 0.5, 0.2
	verts := Torus(major, minor, 24, 12)
	require.Equal(t, 24*12*6, VertexCount(verts))

	for i := 0; i < VertexCount(verts); i++ {
		pos, normal, u, v := vertexAt(verts, i)

		// Distance from the torus axis stays within the tube sweep
		radial := math.Sqrt(float64(pos[0]*pos[0] + pos[1]*pos[1]))
		assert.GreaterOrEqual(t, radial, float64(major-minor)-1e-5)
		assert.LessOrEqual(t, radial, float64(major+minor)+1e-5)
		assert.LessOrEqual(t, math.Abs(float64(pos[2])), float64(minor)+1e-5)

		assert.InDelta(t, 1, length(normal), 1e-5)
		assert.GreaterOrEqual(t, u, float32(0))
		assert.LessOrEqual(t, u, float32(1))
		assert.GreaterOrEqual(t, v, float32(0))
		assert.LessOrEqual(t, v, float32(1))
	}
}

func TestGeneratorsAreDeterministic(t *testing.T) {
	assert.Equal(t, Cube(2), Cube(2))
	assert.Equal(t, Sphere(1, 8, 8), Sphere(1, 8, 8))
	assert.Equal(t, Torus(0.5, 0.2, 8, 8), Torus(0.5, 0.2, 8, 8))
}
