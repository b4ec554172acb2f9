package cube

import (
	"material-scene/internal/geometry"
	"material-scene/internal/graphics"
	renderer "material-scene/internal/graphics/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Cube draws the transparent cube on the left of the scene. It must be
// rendered after the opaque objects: it blends against whatever is already
// in the framebuffer and does not write depth.
type Cube struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
	count  int32
}

func New() *Cube {
	return &Cube{}
}

// Init compiles the phong shader and uploads the cube mesh.
func (c *Cube) Init() error {
	var err error
	c.shader, err = graphics.NewShader(graphics.ShaderPaths("phong"))
	if err != nil {
		return err
	}

	verts := geometry.Cube(1.0)
	c.count = int32(geometry.VertexCount(verts))
	c.vao, c.vbo = graphics.SetupMeshVAO(verts)
	return nil
}

// Render draws the cube with the frame's animated transparency.
func (c *Cube) Render(ctx renderer.RenderContext) {
	c.shader.Use()
	model := mgl32.Translate3D(-2, 0, 0)
	renderer.SetPhongUniforms(c.shader, ctx, model, ctx.Scene.Cube, ctx.Alpha)
	c.shader.SetBool("useTexture", false)

	gl.Enable(gl.BLEND)
	gl.DepthMask(false)
	gl.BindVertexArray(c.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, c.count)
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
}

// Dispose cleans up OpenGL resources.
func (c *Cube) Dispose() {
	graphics.DeleteMesh(c.vao, c.vbo)
}
