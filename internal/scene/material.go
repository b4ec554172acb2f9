package scene

import "github.com/go-gl/mathgl/mgl32"

// Material holds the Phong reflectance terms for one object. The values are
// fixed per object except for the cube's alpha, which is animated separately
// (see CubeAlpha).
type Material struct {
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Shininess float32
}

// CubeMaterial is the neutral grey glass-like material for the transparent
// cube.
func CubeMaterial() Material {
	return Material{
		Ambient:   mgl32.Vec3{0.2, 0.2, 0.2},
		Diffuse:   mgl32.Vec3{0.8, 0.8, 0.8},
		Specular:  mgl32.Vec3{1.0, 1.0, 1.0},
		Shininess: 50,
	}
}

// SphereMaterial is polished gold, the textbook constants.
func SphereMaterial() Material {
	return Material{
		Ambient:   mgl32.Vec3{0.24725, 0.1995, 0.0745},
		Diffuse:   mgl32.Vec3{0.75164, 0.60648, 0.22648},
		Specular:  mgl32.Vec3{0.628281, 0.555802, 0.366065},
		Shininess: 128,
	}
}

// TorusMaterial is a plain white surface so the bound texture carries the
// color.
func TorusMaterial() Material {
	return Material{
		Ambient:   mgl32.Vec3{0.2, 0.2, 0.2},
		Diffuse:   mgl32.Vec3{0.9, 0.9, 0.9},
		Specular:  mgl32.Vec3{0.3, 0.3, 0.3},
		Shininess: 32,
	}
}
