package torus

import (
	"fmt"

	"material-scene/internal/geometry"
	"material-scene/internal/graphics"
	renderer "material-scene/internal/graphics/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	majorRadius = 0.5
	minorRadius = 0.2
	majorSegs   = 32
	minorSegs   = 32
)

// Torus draws the textured torus on the right of the scene. The texture is
// the demo's one required startup asset; a missing or unreadable file fails
// Init and aborts startup.
type Torus struct {
	shader  *graphics.Shader
	texture uint32
	vao     uint32
	vbo     uint32
	count   int32
}

func New() *Torus {
	return &Torus{}
}

func (t *Torus) Init() error {
	var err error
	t.shader, err = graphics.NewShader(graphics.ShaderPaths("phong"))
	if err != nil {
		return err
	}

	t.texture, err = graphics.LoadTexture(graphics.TextureFile)
	if err != nil {
		return fmt.Errorf("torus texture %s: %w (run gentexture to create one)", graphics.TextureFile, err)
	}

	verts := geometry.Torus(majorRadius, minorRadius, majorSegs, minorSegs)
	t.count = int32(geometry.VertexCount(verts))
	t.vao, t.vbo = graphics.SetupMeshVAO(verts)
	return nil
}

func (t *Torus) Render(ctx renderer.RenderContext) {
	t.shader.Use()
	model := mgl32.Translate3D(2, 0, 0)
	renderer.SetPhongUniforms(t.shader, ctx, model, ctx.Scene.Torus, 1.0)
	t.shader.SetBool("useTexture", true)
	t.shader.SetInt("tex", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, t.texture)
	gl.BindVertexArray(t.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, t.count)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (t *Torus) Dispose() {
	graphics.DeleteMesh(t.vao, t.vbo)
}
