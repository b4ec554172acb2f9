package graphics

import "path/filepath"

const (
	WinWidth  = 800
	WinHeight = 600
)

// Asset locations. Shaders and the font are repo assets resolved relative
// to the working directory; the torus texture is expected next to the
// binary (see cmd/gentexture to create one).
const (
	ShadersDir = "assets/shaders"
	FontPath   = "assets/fonts/DejaVuSans.ttf"

	TextureFile = "texture.png"
)

// ShaderPaths returns the vertex/fragment file pair for a shader base name.
func ShaderPaths(name string) (string, string) {
	return filepath.Join(ShadersDir, name+".vert"), filepath.Join(ShadersDir, name+".frag")
}
