// Package geometry generates the demo meshes as interleaved vertex arrays:
// position (3), normal (3), texture coordinate (2), eight float32 per
// vertex, triangle list. The generators are pure functions so they can be
// checked without a GL context.
package geometry

import "math"

// VertexStride is the number of float32 per vertex.
const VertexStride = 8

// VertexCount returns how many vertices an interleaved array holds.
func VertexCount(verts []float32) int {
	return len(verts) / VertexStride
}

func appendVertex(dst []float32, px, py, pz, nx, ny, nz, u, v float32) []float32 {
	return append(dst, px, py, pz, nx, ny, nz, u, v)
}

// Cube returns an axis-aligned cube of the given edge length centered on
// the origin. 6 faces, 12 triangles, 36 vertices, flat per-face normals.
func Cube(size float32) []float32 {
	h := size / 2
	// Each face: normal, then the four corners in CCW order seen from
	// outside.
	faces := [6]struct {
		n [3]float32
		c [4][3]float32
	}{
		{[3]float32{0, 0, 1}, [4][3]float32{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}},
		{[3]float32{1, 0, 0}, [4][3]float32{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}},
	}
	uv := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	verts := make([]float32, 0, 36*VertexStride)
	for _, f := range faces {
		for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
			c := f.c[i]
			verts = appendVertex(verts, c[0], c[1], c[2], f.n[0], f.n[1], f.n[2], uv[i][0], uv[i][1])
		}
	}
	return verts
}

// Sphere returns a latitude/longitude sphere of the given radius centered
// on the origin. segments is the slice count around the equator, rings the
// stack count pole to pole. Normals point outward; u wraps with longitude,
// v runs pole to pole.
func Sphere(radius float32, segments, rings int) []float32 {
	verts := make([]float32, 0, segments*rings*6*VertexStride)
	for i := 0; i < rings; i++ {
		lat0 := math.Pi * (float64(i)/float64(rings) - 0.5)
		lat1 := math.Pi * (float64(i+1)/float64(rings) - 0.5)
		for j := 0; j < segments; j++ {
			lon0 := 2 * math.Pi * float64(j) / float64(segments)
			lon1 := 2 * math.Pi * float64(j+1) / float64(segments)

			v00 := sphereVertex(radius, lat0, lon0, float32(j)/float32(segments), float32(i)/float32(rings))
			v10 := sphereVertex(radius, lat0, lon1, float32(j+1)/float32(segments), float32(i)/float32(rings))
			v01 := sphereVertex(radius, lat1, lon0, float32(j)/float32(segments), float32(i+1)/float32(rings))
			v11 := sphereVertex(radius, lat1, lon1, float32(j+1)/float32(segments), float32(i+1)/float32(rings))

			verts = append(verts, v00...)
			verts = append(verts, v10...)
			verts = append(verts, v11...)
			verts = append(verts, v00...)
			verts = append(verts, v11...)
			verts = append(verts, v01...)
		}
	}
	return verts
}

func sphereVertex(radius float32, lat, lon float64, u, v float32) []float32 {
	nx := float32(math.Cos(lat) * math.Cos(lon))
	ny := float32(math.Sin(lat))
	nz := float32(math.Cos(lat) * math.Sin(lon))
	return []float32{radius * nx, radius * ny, radius * nz, nx, ny, nz, u, v}
}

// Torus returns a torus in the XY plane: major is the radius from the
// center to the tube center, minor the tube radius. u follows the major
// sweep, v the tube sweep, both spanning [0,1] once around.
func Torus(major, minor float32, majorSegs, minorSegs int) []float32 {
	verts := make([]float32, 0, majorSegs*minorSegs*6*VertexStride)
	for i := 0; i < majorSegs; i++ {
		for j := 0; j < minorSegs; j++ {
			v00 := torusVertex(major, minor, i, j, majorSegs, minorSegs)
			v10 := torusVertex(major, minor, i+1, j, majorSegs, minorSegs)
			v01 := torusVertex(major, minor, i, j+1, majorSegs, minorSegs)
			v11 := torusVertex(major, minor, i+1, j+1, majorSegs, minorSegs)

			verts = append(verts, v00...)
			verts = append(verts, v10...)
			verts = append(verts, v11...)
			verts = append(verts, v00...)
			verts = append(verts, v11...)
			verts = append(verts, v01...)
		}
	}
	return verts
}

func torusVertex(major, minor float32, i, j, majorSegs, minorSegs int) []float32 {
	theta := 2 * math.Pi * float64(i) / float64(majorSegs)
	phi := 2 * math.Pi * float64(j) / float64(minorSegs)

	x := (float64(major) + float64(minor)*math.Cos(phi)) * math.Cos(theta)
	y := (float64(major) + float64(minor)*math.Cos(phi)) * math.Sin(theta)
	z := float64(minor) * math.Sin(phi)

	nx := math.Cos(theta) * math.Cos(phi)
	ny := math.Sin(theta) * math.Cos(phi)
	nz := math.Sin(phi)

	u := float32(i) / float32(majorSegs)
	v := float32(j) / float32(minorSegs)
	return []float32{float32(x), float32(y), float32(z), float32(nx), float32(ny), float32(nz), u, v}
}
