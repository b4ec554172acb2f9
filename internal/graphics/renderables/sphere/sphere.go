package sphere

import (
	"material-scene/internal/geometry"
	"material-scene/internal/graphics"
	renderer "material-scene/internal/graphics/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	radius   = 0.5
	segments = 32
	rings    = 32
)

// Sphere draws the polished gold sphere at the center of the scene.
type Sphere struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
	count  int32
}

func New() *Sphere {
	return &Sphere{}
}

func (s *Sphere) Init() error {
	var err error
	s.shader, err = graphics.NewShader(graphics.ShaderPaths("phong"))
	if err != nil {
		return err
	}

	verts := geometry.Sphere(radius, segments, rings)
	s.count = int32(geometry.VertexCount(verts))
	s.vao, s.vbo = graphics.SetupMeshVAO(verts)
	return nil
}

func (s *Sphere) Render(ctx renderer.RenderContext) {
	s.shader.Use()
	model := mgl32.Ident4()
	renderer.SetPhongUniforms(s.shader, ctx, model, ctx.Scene.Sphere, 1.0)
	s.shader.SetBool("useTexture", false)

	gl.BindVertexArray(s.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, s.count)
}

func (s *Sphere) Dispose() {
	graphics.DeleteMesh(s.vao, s.vbo)
}
